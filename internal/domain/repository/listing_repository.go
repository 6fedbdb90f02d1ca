package repository

import (
	"context"

	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrListingNotFound is returned when a listing is not found.
	ErrListingNotFound = errors.New("listing not found")
	// ErrListingStatusConflict is returned when a guarded status update matched no row.
	ErrListingStatusConflict = errors.New("listing status changed concurrently")
)

// BoundingBox is a lat/lon rectangle used to prefilter nearby searches.
type BoundingBox struct {
	MinLat, MinLon float64
	MaxLat, MaxLon float64
}

// ListingRepository defines the interface for listing persistence.
type ListingRepository interface {
	CreateListing(ctx context.Context, listing *entity.Listing) error
	FindListingByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)
	UpdateListing(ctx context.Context, listing *entity.Listing) error
	DeleteListing(ctx context.Context, id uuid.UUID) error

	// SearchListings applies the non-geographic filters. When box is non-nil only
	// listings with coordinates inside it are returned.
	SearchListings(ctx context.Context, filter *entity.ListingFilter, box *BoundingBox) ([]*entity.Listing, error)

	// UpdateListingStatus moves a listing from one status to another and fails with
	// ErrListingStatusConflict when the current status is not from.
	UpdateListingStatus(ctx context.Context, id uuid.UUID, from, to entity.ListingStatus) error

	IncrementViewCount(ctx context.Context, id uuid.UUID) error
}
