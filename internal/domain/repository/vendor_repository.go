package repository

import (
	"context"

	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for vendor persistence.
var (
	// ErrVendorNotFound is returned when a vendor is not found.
	ErrVendorNotFound = errors.New("vendor not found")
	// ErrDuplicateVendor is returned when the owner already has a vendor.
	ErrDuplicateVendor = errors.New("vendor already exists")
	// ErrAlreadyFollowing is returned when the follow relationship already exists.
	ErrAlreadyFollowing = errors.New("already following vendor")
	// ErrNotFollowing is returned when unfollowing a vendor the user does not follow.
	ErrNotFollowing = errors.New("not following vendor")
)

// VendorRepository defines the interface for vendor and follower persistence.
type VendorRepository interface {
	// CreateVendor persists a new vendor.
	CreateVendor(ctx context.Context, vendor *entity.Vendor) error

	// FindVendorByID retrieves a vendor by its unique ID.
	FindVendorByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)

	// FindVendorByOwner retrieves the vendor registered by a user.
	FindVendorByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Vendor, error)

	// UpdateVendor saves the editable storefront fields.
	UpdateVendor(ctx context.Context, vendor *entity.Vendor) error

	// UpdateVendorStatus sets the moderation status.
	UpdateVendorStatus(ctx context.Context, id uuid.UUID, status entity.VendorStatus) error

	// ListVendors lists vendors, optionally filtered by status.
	ListVendors(ctx context.Context, status entity.VendorStatus, limit, offset int) ([]*entity.Vendor, error)

	// AddFollower creates the follow row and increments follower_count.
	AddFollower(ctx context.Context, follower *entity.VendorFollower) error

	// RemoveFollower deletes the follow row and decrements follower_count.
	RemoveFollower(ctx context.Context, vendorID, userID uuid.UUID) error

	// FindFollowerIDs returns the user IDs following a vendor.
	FindFollowerIDs(ctx context.Context, vendorID uuid.UUID) ([]uuid.UUID, error)
}
