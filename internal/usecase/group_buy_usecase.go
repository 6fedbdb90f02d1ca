package usecase

import (
	"context"
	"time"

	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GroupBuyInput creates a group buy deal for the caller's vendor.
type GroupBuyInput struct {
	ProductID       *uuid.UUID      `json:"product_id"`
	Title           string          `json:"title" validate:"required,max=200"`
	Description     string          `json:"description" validate:"max=5000"`
	OriginalPrice   decimal.Decimal `json:"original_price"`
	DealPrice       decimal.Decimal `json:"deal_price"`
	Currency        string          `json:"currency" validate:"required,currency_code"`
	MinParticipants int             `json:"min_participants" validate:"required,min=2"`
	MaxParticipants int             `json:"max_participants" validate:"omitempty,gtefield=MinParticipants"`
	EndsAt          time.Time       `json:"ends_at" validate:"required"`
}

// GroupBuyUsecase manages group buy deals.
type GroupBuyUsecase interface {
	CreateDeal(ctx context.Context, ownerID uuid.UUID, input *GroupBuyInput) (*entity.GroupBuyDeal, error)
	GetDeal(ctx context.Context, dealID uuid.UUID) (*entity.GroupBuyDeal, error)
	ListDeals(ctx context.Context, status entity.GroupBuyStatus, limit, offset int) ([]*entity.GroupBuyDeal, error)

	// JoinDeal adds the user; reaching the minimum confirms the deal.
	JoinDeal(ctx context.Context, userID, dealID uuid.UUID, quantity int) (*entity.GroupBuyDeal, error)

	// ExpireDeals closes OPEN deals past their end time and notifies participants.
	ExpireDeals(ctx context.Context, now time.Time) (int, error)
}
