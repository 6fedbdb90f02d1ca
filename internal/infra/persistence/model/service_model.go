package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceModel mirrors the 'services' table.
type ServiceModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProviderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	VendorID        *uuid.UUID      `gorm:"type:uuid;index"`
	Title           string          `gorm:"type:varchar(200);not null"`
	Description     string          `gorm:"type:text"`
	Category        string          `gorm:"type:varchar(50);not null;index"`
	Price           decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	Currency        string          `gorm:"type:char(3);not null"`
	PricingUnit     string          `gorm:"type:varchar(20);not null"`
	DurationMinutes int             `gorm:"not null;default:0"`
	City            string          `gorm:"type:varchar(100)"`
	IsActive        bool            `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}

// ServiceBookingModel mirrors the 'service_bookings' table.
type ServiceBookingModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ServiceID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProviderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ScheduledAt  time.Time       `gorm:"not null"`
	Status       string          `gorm:"type:varchar(20);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	Currency     string          `gorm:"type:char(3);not null"`
	Notes        string          `gorm:"type:text"`
	CancelReason string          `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceBookingModel) TableName() string {
	return "service_bookings"
}
