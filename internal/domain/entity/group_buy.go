package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GroupBuyStatus is the deal lifecycle.
type GroupBuyStatus string

const (
	GroupBuyStatusOpen      GroupBuyStatus = "OPEN"
	GroupBuyStatusConfirmed GroupBuyStatus = "CONFIRMED"
	GroupBuyStatusExpired   GroupBuyStatus = "EXPIRED"
	GroupBuyStatusCancelled GroupBuyStatus = "CANCELLED"
)

// GroupBuyDeal is a discounted vendor offer that unlocks once enough members join.
type GroupBuyDeal struct {
	ID                  uuid.UUID       `json:"id"`
	VendorID            uuid.UUID       `json:"vendor_id"`
	ProductID           *uuid.UUID      `json:"product_id,omitempty"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	OriginalPrice       decimal.Decimal `json:"original_price"`
	DealPrice           decimal.Decimal `json:"deal_price"`
	Currency            string          `json:"currency"`
	MinParticipants     int             `json:"min_participants"`
	MaxParticipants     int             `json:"max_participants"`     // 0 means unlimited.
	CurrentParticipants int             `json:"current_participants"`
	Status              GroupBuyStatus  `json:"status"`
	EndsAt              time.Time       `json:"ends_at"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// IsJoinable reports whether a new member can still join at now.
func (d *GroupBuyDeal) IsJoinable(now time.Time) bool {
	if d.Status != GroupBuyStatusOpen && d.Status != GroupBuyStatusConfirmed {
		return false
	}
	if !now.Before(d.EndsAt) {
		return false
	}

	return d.MaxParticipants == 0 || d.CurrentParticipants < d.MaxParticipants
}

// DiscountPercent returns the saving relative to the original price.
func (d *GroupBuyDeal) DiscountPercent() decimal.Decimal {
	if d.OriginalPrice.IsZero() {
		return decimal.Zero
	}

	return d.OriginalPrice.Sub(d.DealPrice).Div(d.OriginalPrice).Mul(decimal.NewFromInt(100)).Round(1)
}

// GroupBuyParticipant records one member's commitment to a deal.
type GroupBuyParticipant struct {
	DealID   uuid.UUID `json:"deal_id"`
	UserID   uuid.UUID `json:"user_id"`
	Quantity int       `json:"quantity"`
	JoinedAt time.Time `json:"joined_at"`
}
