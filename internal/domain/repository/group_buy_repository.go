package repository

import (
	"context"
	"time"

	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrGroupBuyNotFound is returned when a deal is not found.
	ErrGroupBuyNotFound = errors.New("group buy deal not found")
	// ErrAlreadyJoined is returned when a user joins the same deal twice.
	ErrAlreadyJoined = errors.New("already joined group buy")
	// ErrGroupBuyFull is returned when the deal reached max_participants.
	ErrGroupBuyFull = errors.New("group buy deal is full")
	// ErrGroupBuyClosed is returned when the deal is no longer open or has ended.
	ErrGroupBuyClosed = errors.New("group buy deal is closed")
)

// GroupBuyRepository defines persistence for group buy deals and participants.
type GroupBuyRepository interface {
	CreateDeal(ctx context.Context, deal *entity.GroupBuyDeal) error
	FindDealByID(ctx context.Context, id uuid.UUID) (*entity.GroupBuyDeal, error)
	ListDeals(ctx context.Context, status entity.GroupBuyStatus, limit, offset int) ([]*entity.GroupBuyDeal, error)

	// AddParticipant inserts the participant row. Duplicates yield ErrAlreadyJoined.
	AddParticipant(ctx context.Context, participant *entity.GroupBuyParticipant) error

	// IncrementParticipants bumps current_participants when the deal is still open,
	// not past ends_at and below max_participants, and returns the updated deal.
	IncrementParticipants(ctx context.Context, dealID uuid.UUID, now time.Time) (*entity.GroupBuyDeal, error)

	UpdateDealStatus(ctx context.Context, id uuid.UUID, status entity.GroupBuyStatus) error

	// FindExpiredOpenDeals lists OPEN deals whose ends_at is at or before now.
	FindExpiredOpenDeals(ctx context.Context, now time.Time, limit int) ([]*entity.GroupBuyDeal, error)

	FindParticipantIDs(ctx context.Context, dealID uuid.UUID) ([]uuid.UUID, error)
}
