package model

import (
	"time"
)

// OpinionModel mirrors the 'opinions' table. AccountID references the
// authoring account.
type OpinionModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	AccountID   int64   `gorm:"index;not null"`
	Latitude    float64 `gorm:"type:double precision;not null"`
	Longitude   float64 `gorm:"type:double precision;not null"`
	CommentText string  `gorm:"type:text;not null"`
	PostedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OpinionModel) TableName() string {
	return "opinions"
}

// LikeModel mirrors the 'likes' table. The (opinion_id, account_id) pair is
// the composite primary key, so duplicate likes fail at the constraint level.
type LikeModel struct {
	OpinionID int64 `gorm:"primaryKey;autoIncrement:false"`
	AccountID int64 `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}

// TagModel mirrors the 'tags' table. Tags are seeded by migrations and only
// read at runtime.
type TagModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (TagModel) TableName() string {
	return "tags"
}

// OpinionTagModel mirrors the 'opinion_tags' table. The (opinion_id, tag_id)
// pair is the composite primary key.
type OpinionTagModel struct {
	OpinionID int64 `gorm:"primaryKey;autoIncrement:false"`
	TagID     int64 `gorm:"primaryKey;autoIncrement:false"`
}

// TableName explicitly sets the table name for GORM.
func (OpinionTagModel) TableName() string {
	return "opinion_tags"
}
