package usecase

import (
	"context"

	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VendorInput registers or updates a storefront.
type VendorInput struct {
	BusinessName string `json:"business_name" validate:"required,max=200"`
	Description  string `json:"description" validate:"max=5000"`
	Category     string `json:"category" validate:"required,max=50"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone" validate:"omitempty,e164"`
	LogoURL      string `json:"logo_url" validate:"omitempty,url"`
	City         string `json:"city" validate:"max=100"`
	Country      string `json:"country" validate:"omitempty,len=2"`
}

// VendorUsecase manages vendors and their followers.
type VendorUsecase interface {
	RegisterVendor(ctx context.Context, ownerID uuid.UUID, input *VendorInput) (*entity.Vendor, error)
	GetVendor(ctx context.Context, vendorID uuid.UUID) (*entity.Vendor, error)
	GetMyVendor(ctx context.Context, ownerID uuid.UUID) (*entity.Vendor, error)
	UpdateVendor(ctx context.Context, ownerID uuid.UUID, input *VendorInput) (*entity.Vendor, error)
	ListVendors(ctx context.Context, status entity.VendorStatus, limit, offset int) ([]*entity.Vendor, error)

	// ApproveVendor and SuspendVendor are admin moderation actions.
	ApproveVendor(ctx context.Context, actor Actor, vendorID uuid.UUID) (*entity.Vendor, error)
	SuspendVendor(ctx context.Context, actor Actor, vendorID uuid.UUID, reason string) (*entity.Vendor, error)

	FollowVendor(ctx context.Context, userID, vendorID uuid.UUID) error
	UnfollowVendor(ctx context.Context, userID, vendorID uuid.UUID) error
}

// ProductInput creates or replaces a vendor product.
type ProductInput struct {
	Name              string          `json:"name" validate:"required,max=200"`
	Description       string          `json:"description" validate:"max=5000"`
	SKU               string          `json:"sku" validate:"max=64"`
	Price             decimal.Decimal `json:"price"`
	Currency          string          `json:"currency" validate:"required,currency_code"`
	InventoryQuantity int             `json:"inventory_quantity" validate:"min=0"`
	Images            []string        `json:"images" validate:"max=10,dive,url"`
}

// ProductUsecase manages a vendor's catalogue.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, ownerID uuid.UUID, input *ProductInput) (*entity.VendorProduct, error)
	UpdateProduct(ctx context.Context, ownerID, productID uuid.UUID, input *ProductInput) (*entity.VendorProduct, error)
	DeleteProduct(ctx context.Context, ownerID, productID uuid.UUID) error
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.VendorProduct, error)
	ListProducts(ctx context.Context, vendorID uuid.UUID, limit, offset int) ([]*entity.VendorProduct, error)

	// PublishProduct makes the product visible and announces it to the vendor's followers.
	PublishProduct(ctx context.Context, ownerID, productID uuid.UUID) (*entity.VendorProduct, error)

	// UpdateInventoryQuantity applies a stock delta and returns the new quantity.
	UpdateInventoryQuantity(ctx context.Context, ownerID, productID uuid.UUID, delta int) (int, error)
}
