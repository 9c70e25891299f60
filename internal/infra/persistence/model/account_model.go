package model

import (
	"time"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates the ids
// via bigserial. It is an exported type so it can be shared across repositories.
type AccountModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Email       string `gorm:"type:varchar(255);not null"`
	EmailDigest string `gorm:"type:char(64);unique;not null"`
	AccountType string `gorm:"type:varchar(10);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	UserProfile  *UserProfileModel  `gorm:"foreignKey:AccountID"`
	StoreProfile *StoreProfileModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// UserProfileModel mirrors the 'user_profiles' table. AccountID references accounts.id.
type UserProfileModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	AccountID      int64  `gorm:"unique;not null"`
	Nickname       string `gorm:"type:varchar(100);not null"`
	Introduction   string `gorm:"type:text"`
	GenderCode     *int
	AgeGroupCode   *int
	OccupationCode *int
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

// StoreProfileModel mirrors the 'store_profiles' table. AccountID references accounts.id.
type StoreProfileModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	AccountID    int64  `gorm:"unique;not null"`
	StoreName    string `gorm:"type:varchar(100);not null"`
	Introduction string `gorm:"type:text"`
	StoreURL     string `gorm:"type:varchar(500)"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreProfileModel) TableName() string {
	return "store_profiles"
}
