package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingStatus governs whether a listing is visible in search.
type ListingStatus string

const (
	ListingStatusDraft    ListingStatus = "DRAFT"
	ListingStatusActive   ListingStatus = "ACTIVE"
	ListingStatusReserved ListingStatus = "RESERVED"
	ListingStatusSold     ListingStatus = "SOLD"
	ListingStatusArchived ListingStatus = "ARCHIVED"
)

// ListingCondition describes the state of a second-hand item.
type ListingCondition string

const (
	ConditionNew     ListingCondition = "NEW"
	ConditionLikeNew ListingCondition = "LIKE_NEW"
	ConditionGood    ListingCondition = "GOOD"
	ConditionFair    ListingCondition = "FAIR"
)

// Listing is an item a member offers for sale.
type Listing struct {
	ID          uuid.UUID        `json:"id"`
	SellerID    uuid.UUID        `json:"seller_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Price       decimal.Decimal  `json:"price"`
	Currency    string           `json:"currency"`
	Condition   ListingCondition `json:"condition"`
	Status      ListingStatus    `json:"status"`
	Images      []string         `json:"images"`
	City        string           `json:"city"`
	Country     string           `json:"country"`
	Latitude    *float64         `json:"latitude,omitempty"`
	Longitude   *float64         `json:"longitude,omitempty"`
	ViewCount   int              `json:"view_count"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// HasLocation reports whether the listing can take part in nearby searches.
func (l *Listing) HasLocation() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// ListingFilter narrows listing searches. Zero values mean "no constraint".
type ListingFilter struct {
	Query     string
	Category  string
	Currency  string
	SellerID  *uuid.UUID
	Status    ListingStatus
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	Latitude  *float64
	Longitude *float64
	RadiusKm  float64
	Limit     int
	Offset    int
}

// ListingWithDistance is a search hit; DistanceKm is set for nearby searches.
type ListingWithDistance struct {
	*Listing
	DistanceKm *float64 `json:"distance_km,omitempty"`
}
