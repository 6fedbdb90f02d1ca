package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VendorStatus is the vendor moderation state.
type VendorStatus string

const (
	VendorStatusPending   VendorStatus = "PENDING"
	VendorStatusApproved  VendorStatus = "APPROVED"
	VendorStatusSuspended VendorStatus = "SUSPENDED"
)

// Vendor is a business storefront owned by a member.
type Vendor struct {
	ID            uuid.UUID    `json:"id"`
	OwnerID       uuid.UUID    `json:"owner_id"`
	BusinessName  string       `json:"business_name"`
	Description   string       `json:"description"`
	Category      string       `json:"category"`
	ContactEmail  string       `json:"contact_email"`
	ContactPhone  string       `json:"contact_phone"`
	LogoURL       string       `json:"logo_url"`
	City          string       `json:"city"`
	Country       string       `json:"country"`
	Status        VendorStatus `json:"status"`
	Rating        float64      `json:"rating"`
	FollowerCount int          `json:"follower_count"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// IsApproved reports whether the vendor may sell.
func (v *Vendor) IsApproved() bool {
	return v.Status == VendorStatusApproved
}

// ProductStatus controls product visibility.
type ProductStatus string

const (
	ProductStatusDraft     ProductStatus = "DRAFT"
	ProductStatusPublished ProductStatus = "PUBLISHED"
	ProductStatusArchived  ProductStatus = "ARCHIVED"
)

// VendorProduct is a stocked item sold by a vendor.
type VendorProduct struct {
	ID                uuid.UUID       `json:"id"`
	VendorID          uuid.UUID       `json:"vendor_id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	SKU               string          `json:"sku"`
	Price             decimal.Decimal `json:"price"`
	Currency          string          `json:"currency"`
	InventoryQuantity int             `json:"inventory_quantity"`
	Images            []string        `json:"images"`
	Status            ProductStatus   `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// InStock reports whether at least qty units are available.
func (p *VendorProduct) InStock(qty int) bool {
	return p.InventoryQuantity >= qty
}

// VendorFollower links a member to a vendor they follow.
type VendorFollower struct {
	VendorID  uuid.UUID `json:"vendor_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
