package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// VendorModel mirrors the 'vendors' table. An owner has at most one vendor.
type VendorModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	BusinessName  string    `gorm:"type:varchar(150);not null"`
	Description   string    `gorm:"type:text"`
	Category      string    `gorm:"type:varchar(50)"`
	ContactEmail  string    `gorm:"type:varchar(255)"`
	ContactPhone  string    `gorm:"type:varchar(32)"`
	LogoURL       string    `gorm:"type:text"`
	City          string    `gorm:"type:varchar(100)"`
	Country       string    `gorm:"type:char(2)"`
	Status        string    `gorm:"type:varchar(20);not null;index"`
	Rating        float64   `gorm:"type:numeric(3,2);not null;default:0"`
	FollowerCount int       `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}

// VendorProductModel mirrors the 'vendor_products' table.
type VendorProductModel struct {
	ID                uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID          uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Name              string                      `gorm:"type:varchar(200);not null"`
	Description       string                      `gorm:"type:text"`
	SKU               string                      `gorm:"column:sku;type:varchar(64)"`
	Price             decimal.Decimal             `gorm:"type:numeric(18,4);not null"`
	Currency          string                      `gorm:"type:char(3);not null"`
	InventoryQuantity int                         `gorm:"not null;default:0;check:inventory_quantity >= 0"`
	Images            datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Status            string                      `gorm:"type:varchar(20);not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (VendorProductModel) TableName() string {
	return "vendor_products"
}

// VendorFollowerModel mirrors the 'vendor_followers' join table.
type VendorFollowerModel struct {
	VendorID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorFollowerModel) TableName() string {
	return "vendor_followers"
}
