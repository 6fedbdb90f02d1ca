package impl

import (
	"context"
	"time"

	"expatmart/config"
	"expatmart/internal/domain/currency"
	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/domain/service"
	"expatmart/internal/usecase"
	"expatmart/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// escrowLedger applies escrow state changes with the repository of the
// caller's transaction, so payment, order and escrow flows share one rule set.
// Transitions land in the caller's pendingMetrics.
type escrowLedger struct {
	hasher           service.SecretHasher
	autoReleaseAfter time.Duration
	codeLength       int
	now              func() time.Time
}

func newEscrowLedger(cfg *config.EscrowConfig, hasher service.SecretHasher) *escrowLedger {
	return &escrowLedger{
		hasher:           hasher,
		autoReleaseAfter: cfg.AutoReleaseAfter,
		codeLength:       cfg.ReleaseCodeLength,
		now:              time.Now,
	}
}

// open creates a PENDING account and returns the plaintext release code.
func (l *escrowLedger) open(ctx context.Context, repo repository.EscrowRepository, input *usecase.CreateEscrowInput) (*entity.EscrowAccount, string, error) {
	if input == nil || input.OrderID == uuid.Nil || input.BuyerID == uuid.Nil || input.SellerID == uuid.Nil {
		return nil, "", errors.Wrap(domainerrors.ErrValidationFailed, "order, buyer and seller are required")
	}
	if !input.Amount.IsPositive() {
		return nil, "", errors.Wrap(domainerrors.ErrValidationFailed, "escrow amount must be positive")
	}
	code := currency.Normalize(input.Currency)
	if !currency.IsSupported(code) {
		return nil, "", errors.Wrapf(domainerrors.ErrUnsupportedCurrency, "currency %q", input.Currency)
	}

	releaseCode, err := util.RandomDigits(l.codeLength)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to generate release code")
	}
	hash, err := l.hasher.Hash(releaseCode)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to hash release code")
	}

	now := l.now()
	escrow := &entity.EscrowAccount{
		ID:              uuid.New(),
		OrderID:         input.OrderID,
		TransactionID:   input.TransactionID,
		BuyerID:         input.BuyerID,
		SellerID:        input.SellerID,
		Amount:          input.Amount,
		Currency:        code,
		Status:          entity.EscrowStatusPending,
		ReleaseCodeHash: hash,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := repo.CreateEscrow(ctx, escrow); err != nil {
		if errors.Is(err, repository.ErrLiveEscrowExists) {
			return nil, "", errors.Wrap(domainerrors.ErrConflict, "order already has an open escrow account")
		}

		return nil, "", errors.Wrap(err, "failed to create escrow account")
	}

	return escrow, releaseCode, nil
}

func (l *escrowLedger) fund(ctx context.Context, repo repository.EscrowRepository, escrow *entity.EscrowAccount, pending *pendingMetrics) error {
	now := l.now()
	autoRelease := now.Add(l.autoReleaseAfter)

	return l.transition(ctx, repo, escrow, entity.EscrowStatusFunded, pending, func(e *entity.EscrowAccount) {
		e.FundedAt = &now
		e.AutoReleaseAt = &autoRelease
	})
}

// release pays the seller. releasedBy is nil for scheduled releases.
func (l *escrowLedger) release(ctx context.Context, repo repository.EscrowRepository, escrow *entity.EscrowAccount, releasedBy *uuid.UUID, pending *pendingMetrics) error {
	now := l.now()

	return l.transition(ctx, repo, escrow, entity.EscrowStatusReleased, pending, func(e *entity.EscrowAccount) {
		e.ReleasedAt = &now
		e.ReleasedBy = releasedBy
	})
}

func (l *escrowLedger) refund(ctx context.Context, repo repository.EscrowRepository, escrow *entity.EscrowAccount, reason string, pending *pendingMetrics) error {
	now := l.now()

	return l.transition(ctx, repo, escrow, entity.EscrowStatusRefunded, pending, func(e *entity.EscrowAccount) {
		e.RefundedAt = &now
		e.RefundReason = reason
	})
}

func (l *escrowLedger) dispute(ctx context.Context, repo repository.EscrowRepository, escrow *entity.EscrowAccount, openedBy uuid.UUID, reason string, pending *pendingMetrics) error {
	now := l.now()

	return l.transition(ctx, repo, escrow, entity.EscrowStatusDisputed, pending, func(e *entity.EscrowAccount) {
		e.DisputeReason = reason
		e.DisputeOpenedBy = &openedBy
		e.DisputeOpenedAt = &now
	})
}

func (l *escrowLedger) transition(
	ctx context.Context,
	repo repository.EscrowRepository,
	escrow *entity.EscrowAccount,
	next entity.EscrowStatus,
	pending *pendingMetrics,
	stamp func(*entity.EscrowAccount),
) error {
	from := escrow.Status
	if !from.CanTransitionTo(next) {
		return errors.Wrapf(domainerrors.ErrInvalidStatusTransition, "escrow %s cannot move from %s to %s", escrow.ID, from, next)
	}

	escrow.Status = next
	stamp(escrow)
	escrow.UpdatedAt = l.now()

	if err := repo.UpdateEscrow(ctx, escrow); err != nil {
		return errors.Wrap(err, "failed to update escrow account")
	}
	pending.escrowMoved(from, next)

	return nil
}

// checkReleaseCode compares a presented code with the stored hash.
func (l *escrowLedger) checkReleaseCode(escrow *entity.EscrowAccount, code string) bool {
	if code == "" || escrow.ReleaseCodeHash == "" {
		return false
	}

	return l.hasher.Check(code, escrow.ReleaseCodeHash)
}
