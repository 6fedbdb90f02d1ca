package usecase

import (
	"context"

	"expatmart/internal/domain/entity"
	"expatmart/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemInput is one vendor product line.
type OrderItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1,max=1000"`
}

// CreateOrderInput orders either a single listing or vendor products.
type CreateOrderInput struct {
	ListingID       *uuid.UUID       `json:"listing_id"`
	Items           []OrderItemInput `json:"items" validate:"omitempty,dive"`
	ShippingFee     decimal.Decimal  `json:"shipping_fee"`
	ShippingAddress string           `json:"shipping_address" validate:"max=500"`
	Notes           string           `json:"notes" validate:"max=1000"`
}

// OrderUsecase manages orders.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, buyerID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)

	// UpdateOrderStatus enforces the order state machine. Cancelling restores
	// inventory and refunds a funded escrow.
	UpdateOrderStatus(ctx context.Context, actor Actor, orderID uuid.UUID, status entity.OrderStatus, reason string) (*entity.Order, error)

	GetOrder(ctx context.Context, actor Actor, orderID uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID, role repository.OrderRole, limit, offset int) ([]*entity.Order, error)
}
