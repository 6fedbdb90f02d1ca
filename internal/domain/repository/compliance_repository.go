package repository

import (
	"context"
	"time"

	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrKYCNotFound is returned when a verification request is not found.
var ErrKYCNotFound = errors.New("kyc verification not found")

// KYCRepository persists identity verification requests.
type KYCRepository interface {
	CreateVerification(ctx context.Context, kyc *entity.KYCVerification) error
	FindVerificationByID(ctx context.Context, id uuid.UUID) (*entity.KYCVerification, error)
	FindLatestVerificationByUser(ctx context.Context, userID uuid.UUID) (*entity.KYCVerification, error)
	UpdateVerification(ctx context.Context, kyc *entity.KYCVerification) error
	ListVerificationsByStatus(ctx context.Context, status entity.KYCStatus, limit, offset int) ([]*entity.KYCVerification, error)
}

// SecurityEventFilter narrows security event listings.
type SecurityEventFilter struct {
	UserID *uuid.UUID
	Type   entity.SecurityEventType
	Since  *time.Time
	Limit  int
	Offset int
}

// SecurityEventRepository persists the security audit trail.
type SecurityEventRepository interface {
	CreateSecurityEvent(ctx context.Context, event *entity.SecurityEvent) error
	ListSecurityEvents(ctx context.Context, filter SecurityEventFilter) ([]*entity.SecurityEvent, error)
}

// SearchQueryRepository persists listing search analytics.
type SearchQueryRepository interface {
	CreateSearchQuery(ctx context.Context, query *entity.SearchQuery) error

	// PopularSearches groups non-empty queries recorded since the given time.
	PopularSearches(ctx context.Context, since time.Time, limit int) ([]*entity.PopularSearch, error)
}
