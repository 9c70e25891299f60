package model

import (
	"time"
)

// QuestionModel mirrors the 'questions' table. StoreID references the
// owning store profile.
type QuestionModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	StoreID      int64   `gorm:"index;not null"`
	Latitude     float64 `gorm:"type:double precision;not null"`
	Longitude    float64 `gorm:"type:double precision;not null"`
	QuestionText string  `gorm:"type:text;not null"`
	Option1Text  string  `gorm:"type:varchar(255);not null"`
	Option2Text  string  `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuestionModel) TableName() string {
	return "questions"
}

// AnswerModel mirrors the 'answers' table. The (account_id, question_id)
// pair is the composite primary key; re-answering updates the row in place.
type AnswerModel struct {
	AccountID      int64 `gorm:"primaryKey;autoIncrement:false"`
	QuestionID     int64 `gorm:"primaryKey;autoIncrement:false"`
	SelectedOption int   `gorm:"not null"`
	AnsweredAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AnswerModel) TableName() string {
	return "answers"
}
