package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// KYCVerificationModel mirrors the 'kyc_verifications' table.
type KYCVerificationModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	DocumentType    string     `gorm:"type:varchar(30);not null"`
	DocumentNumber  string     `gorm:"type:varchar(100);not null"`
	DocumentKey     string     `gorm:"type:text;not null"`
	ContentType     string     `gorm:"type:varchar(100);not null"`
	Checksum        string     `gorm:"type:char(64);not null"`
	SizeBytes       int64      `gorm:"not null"`
	Status          string     `gorm:"type:varchar(20);not null;index"`
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt      *time.Time
	RejectionReason string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (KYCVerificationModel) TableName() string {
	return "kyc_verifications"
}

// SecurityEventModel mirrors the append-only 'security_events' table.
type SecurityEventModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    *uuid.UUID        `gorm:"type:uuid;index"`
	Type      string            `gorm:"type:varchar(50);not null;index"`
	Severity  string            `gorm:"type:varchar(20);not null"`
	IPAddress string            `gorm:"type:varchar(64)"`
	UserAgent string            `gorm:"type:text"`
	Details   datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SecurityEventModel) TableName() string {
	return "security_events"
}
