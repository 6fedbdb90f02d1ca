package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. ID equals the auth user id.
type ProfileModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	Email             string    `gorm:"type:varchar(255);index"`
	Phone             string    `gorm:"type:varchar(32)"`
	FullName          string    `gorm:"type:varchar(150)"`
	AvatarURL         string    `gorm:"type:text"`
	Country           string    `gorm:"type:char(2)"`
	Nationality       string    `gorm:"type:char(2)"`
	City              string    `gorm:"type:varchar(100)"`
	PreferredCurrency string    `gorm:"type:char(3);not null;default:'USD'"`
	Language          string    `gorm:"type:varchar(10);not null;default:'en'"`
	Role              string    `gorm:"type:varchar(20);not null;default:'user'"`
	KYCStatus         string    `gorm:"column:kyc_status;type:varchar(20);not null;default:'NONE'"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
