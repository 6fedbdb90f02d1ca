package repository

import (
	"context"

	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRole selects which side of the orders a user is listing.
type OrderRole string

const (
	OrderRoleAny    OrderRole = ""
	OrderRoleBuyer  OrderRole = "buyer"
	OrderRoleSeller OrderRole = "seller"
)

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *entity.Order) error
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByIDForUpdate locks the row until the surrounding transaction ends.
	FindOrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateOrder saves status, timestamps and cancel reason.
	UpdateOrder(ctx context.Context, order *entity.Order) error

	ListOrdersByUser(ctx context.Context, userID uuid.UUID, role OrderRole, limit, offset int) ([]*entity.Order, error)
}
