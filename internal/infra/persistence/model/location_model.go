package model

import (
	"time"
)

// LocationModel mirrors the 'locations' table. AccountID references the
// owning store account.
type LocationModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	AccountID    int64   `gorm:"index;not null"`
	Latitude     float64 `gorm:"type:double precision;not null"`
	Longitude    float64 `gorm:"type:double precision;not null"`
	OpeningDate  time.Time
	LocationName string `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
