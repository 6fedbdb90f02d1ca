package usecase

import (
	"context"
	"time"

	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingInput creates or replaces a listing's editable fields.
type ListingInput struct {
	Title       string                  `json:"title" validate:"required,max=200"`
	Description string                  `json:"description" validate:"max=5000"`
	Category    string                  `json:"category" validate:"required,max=50"`
	Price       decimal.Decimal         `json:"price"`
	Currency    string                  `json:"currency" validate:"required,currency_code"`
	Condition   entity.ListingCondition `json:"condition" validate:"required,oneof=NEW LIKE_NEW GOOD FAIR"`
	Images      []string                `json:"images" validate:"max=10,dive,url"`
	City        string                  `json:"city" validate:"max=100"`
	Country     string                  `json:"country" validate:"omitempty,len=2"`
	Latitude    *float64                `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64                `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Publish     bool                    `json:"publish"`
}

// ListingUsecase manages second-hand listings and search.
type ListingUsecase interface {
	CreateListing(ctx context.Context, sellerID uuid.UUID, input *ListingInput) (*entity.Listing, error)
	UpdateListing(ctx context.Context, sellerID, listingID uuid.UUID, input *ListingInput) (*entity.Listing, error)
	DeleteListing(ctx context.Context, actor Actor, listingID uuid.UUID) error
	GetListing(ctx context.Context, listingID uuid.UUID) (*entity.Listing, error)

	// SearchListings filters listings, optionally by distance, and records the query.
	SearchListings(ctx context.Context, userID *uuid.UUID, filter *entity.ListingFilter) ([]*entity.ListingWithDistance, error)

	PopularSearches(ctx context.Context, since time.Time, limit int) ([]*entity.PopularSearch, error)
}
