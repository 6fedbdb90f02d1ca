package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ListingModel mirrors the 'listings' table.
type ListingModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SellerID    uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Title       string                      `gorm:"type:varchar(200);not null"`
	Description string                      `gorm:"type:text"`
	Category    string                      `gorm:"type:varchar(50);not null;index"`
	Price       decimal.Decimal             `gorm:"type:numeric(18,4);not null"`
	Currency    string                      `gorm:"type:char(3);not null"`
	Condition   string                      `gorm:"type:varchar(20);not null"`
	Status      string                      `gorm:"type:varchar(20);not null;index"`
	Images      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	City        string                      `gorm:"type:varchar(100)"`
	Country     string                      `gorm:"type:char(2)"`
	Latitude    *float64                    `gorm:"type:decimal(10,8)"`
	Longitude   *float64                    `gorm:"type:decimal(11,8)"`
	ViewCount   int                         `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}

// SearchQueryModel mirrors the 'search_queries' table.
type SearchQueryModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      *uuid.UUID        `gorm:"type:uuid;index"`
	Query       string            `gorm:"type:text"`
	Filters     datatypes.JSONMap `gorm:"type:jsonb"`
	ResultCount int               `gorm:"not null;default:0"`
	CreatedAt   time.Time         `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SearchQueryModel) TableName() string {
	return "search_queries"
}
