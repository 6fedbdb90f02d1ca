package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderItemModel is one line of the order, stored inside the items jsonb column.
type OrderItemModel struct {
	ListingID *uuid.UUID      `json:"listing_id,omitempty"`
	ProductID *uuid.UUID      `json:"product_id,omitempty"`
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID                           `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuyerID         uuid.UUID                           `gorm:"type:uuid;not null;index"`
	SellerID        uuid.UUID                           `gorm:"type:uuid;not null;index"`
	VendorID        *uuid.UUID                          `gorm:"type:uuid;index"`
	Items           datatypes.JSONSlice[OrderItemModel] `gorm:"type:jsonb;not null"`
	Subtotal        decimal.Decimal                     `gorm:"type:numeric(18,4);not null"`
	ShippingFee     decimal.Decimal                     `gorm:"type:numeric(18,4);not null;default:0"`
	Total           decimal.Decimal                     `gorm:"type:numeric(18,4);not null"`
	Currency        string                              `gorm:"type:char(3);not null"`
	Status          string                              `gorm:"type:varchar(20);not null;index"`
	ShippingAddress string                              `gorm:"type:text"`
	Notes           string                              `gorm:"type:text"`
	CancelReason    string                              `gorm:"type:text"`
	PaidAt          *time.Time
	DeliveredAt     *time.Time
	CancelledAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
