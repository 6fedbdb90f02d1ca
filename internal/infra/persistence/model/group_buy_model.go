package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GroupBuyDealModel mirrors the 'group_buy_deals' table.
type GroupBuyDealModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID           *uuid.UUID      `gorm:"type:uuid"`
	Title               string          `gorm:"type:varchar(200);not null"`
	Description         string          `gorm:"type:text"`
	OriginalPrice       decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	DealPrice           decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	Currency            string          `gorm:"type:char(3);not null"`
	MinParticipants     int             `gorm:"not null"`
	MaxParticipants     int             `gorm:"not null;default:0"`
	CurrentParticipants int             `gorm:"not null;default:0"`
	Status              string          `gorm:"type:varchar(20);not null;index:idx_group_buy_status_ends"`
	EndsAt              time.Time       `gorm:"not null;index:idx_group_buy_status_ends"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (GroupBuyDealModel) TableName() string {
	return "group_buy_deals"
}

// GroupBuyParticipantModel mirrors the 'group_buy_participants' table.
type GroupBuyParticipantModel struct {
	DealID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Quantity int       `gorm:"not null;default:1"`
	JoinedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (GroupBuyParticipantModel) TableName() string {
	return "group_buy_participants"
}
