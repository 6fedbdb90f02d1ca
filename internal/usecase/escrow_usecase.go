package usecase

import (
	"context"
	"time"

	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateEscrowInput opens an escrow account for an order.
type CreateEscrowInput struct {
	OrderID       uuid.UUID
	TransactionID *uuid.UUID
	BuyerID       uuid.UUID
	SellerID      uuid.UUID
	Amount        decimal.Decimal
	Currency      string
}

// EscrowUsecase manages escrow accounts.
type EscrowUsecase interface {
	// CreateEscrowAccount opens a PENDING account and returns the plaintext release code.
	CreateEscrowAccount(ctx context.Context, input *CreateEscrowInput) (*entity.EscrowAccount, string, error)

	FundEscrow(ctx context.Context, escrowID uuid.UUID) (*entity.EscrowAccount, error)

	// ReleaseEscrowFunds pays the seller. Sellers must present the buyer's release code.
	ReleaseEscrowFunds(ctx context.Context, escrowID uuid.UUID, actor Actor, releaseCode string) (*entity.EscrowAccount, error)

	RefundEscrow(ctx context.Context, escrowID uuid.UUID, actor Actor, reason string) (*entity.EscrowAccount, error)
	DisputeEscrow(ctx context.Context, escrowID uuid.UUID, actor Actor, reason string) (*entity.EscrowAccount, error)

	// AutoReleaseDue releases funded escrows of delivered orders past their auto-release time.
	AutoReleaseDue(ctx context.Context, now time.Time) (int, error)

	GetEscrowAccount(ctx context.Context, actor Actor, escrowID uuid.UUID) (*entity.EscrowAccount, error)
	GetEscrowByOrder(ctx context.Context, actor Actor, orderID uuid.UUID) (*entity.EscrowAccount, error)
}
