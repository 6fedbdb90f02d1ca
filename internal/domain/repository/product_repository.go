package repository

import (
	"context"

	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrProductNotFound is returned when a vendor product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientInventory is returned when a decrement would take stock below zero.
	ErrInsufficientInventory = errors.New("insufficient inventory")
)

// ProductRepository defines the interface for vendor product persistence.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *entity.VendorProduct) error
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.VendorProduct, error)
	UpdateProduct(ctx context.Context, product *entity.VendorProduct) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProductsByVendor(ctx context.Context, vendorID uuid.UUID, status entity.ProductStatus, limit, offset int) ([]*entity.VendorProduct, error)

	// UpdateInventoryQuantity atomically adds delta to the stock and returns the
	// new quantity. The update never takes stock below zero.
	UpdateInventoryQuantity(ctx context.Context, id uuid.UUID, delta int) (int, error)
}
