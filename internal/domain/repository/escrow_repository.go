package repository

import (
	"context"
	"time"

	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrEscrowNotFound is returned when an escrow account is not found.
	ErrEscrowNotFound = errors.New("escrow account not found")
	// ErrLiveEscrowExists is returned when the order already has a PENDING,
	// FUNDED or DISPUTED escrow account.
	ErrLiveEscrowExists = errors.New("order already has a live escrow account")
)

// EscrowRepository defines persistence for escrow accounts.
type EscrowRepository interface {
	CreateEscrow(ctx context.Context, escrow *entity.EscrowAccount) error
	FindEscrowByID(ctx context.Context, id uuid.UUID) (*entity.EscrowAccount, error)

	// FindEscrowByIDForUpdate locks the row until the surrounding transaction ends.
	FindEscrowByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.EscrowAccount, error)

	// FindEscrowByOrderID returns the most recent escrow account of an order.
	FindEscrowByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.EscrowAccount, error)

	// FindEscrowByTransactionIDForUpdate locks the escrow opened for a payment transaction.
	FindEscrowByTransactionIDForUpdate(ctx context.Context, transactionID uuid.UUID) (*entity.EscrowAccount, error)

	// UpdateEscrow saves status, stamps and dispute fields.
	UpdateEscrow(ctx context.Context, escrow *entity.EscrowAccount) error

	// FindDueForAutoRelease lists FUNDED escrows of DELIVERED orders whose
	// auto_release_at is at or before now.
	FindDueForAutoRelease(ctx context.Context, now time.Time, limit int) ([]*entity.EscrowAccount, error)
}
