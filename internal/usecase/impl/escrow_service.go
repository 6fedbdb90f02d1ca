package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"expatmart/config"
	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/domain/service"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const autoReleaseBatch = 100

// EscrowServiceParams holds the dependencies of the escrow service.
type EscrowServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	EscrowRepo repository.EscrowRepository
	Gateways   service.GatewayResolver
	Hasher     service.SecretHasher
	Notifier   usecase.NotificationUsecase
	Compliance usecase.ComplianceUsecase
	Metrics    service.MetricsRecorder
	Config     *config.Config
	Logger     *slog.Logger
}

type escrowService struct {
	txManager  repository.TransactionManager
	escrowRepo repository.EscrowRepository
	ledger     *escrowLedger
	refunds    *paymentRefunder
	notifier   usecase.NotificationUsecase
	compliance usecase.ComplianceUsecase
	metrics    service.MetricsRecorder
	logger     *slog.Logger
}

// NewEscrowService creates the escrow service.
func NewEscrowService(params EscrowServiceParams) usecase.EscrowUsecase {
	ledger := newEscrowLedger(params.Config.Escrow, params.Hasher)

	return &escrowService{
		txManager:  params.TxManager,
		escrowRepo: params.EscrowRepo,
		ledger:     ledger,
		refunds:    newPaymentRefunder(params.TxManager, params.Gateways, ledger, params.Metrics, params.Logger),
		notifier:   params.Notifier,
		compliance: params.Compliance,
		metrics:    params.Metrics,
		logger:     params.Logger,
	}
}

// CreateEscrowAccount always starts in PENDING.
func (s *escrowService) CreateEscrowAccount(ctx context.Context, input *usecase.CreateEscrowInput) (*entity.EscrowAccount, string, error) {
	escrow, code, err := s.ledger.open(ctx, s.escrowRepo, input)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("Escrow account created",
		slog.String("escrow_id", escrow.ID.String()),
		slog.String("order_id", escrow.OrderID.String()),
	)

	return escrow, code, nil
}

func (s *escrowService) FundEscrow(ctx context.Context, escrowID uuid.UUID) (*entity.EscrowAccount, error) {
	escrow, err := s.mutate(ctx, escrowID, func(repo repository.EscrowRepository, escrow *entity.EscrowAccount, pending *pendingMetrics) error {
		return s.ledger.fund(ctx, repo, escrow, pending)
	})
	if err != nil {
		return nil, err
	}

	enqueueNotifications(ctx, s.notifier, s.logger,
		notice(escrow.SellerID, entity.NotificationTypeEscrow, "Payment secured", "The buyer's payment is held in escrow. You can ship the order.", escrowData(escrow)),
	)

	return escrow, nil
}

// ReleaseEscrowFunds lets the buyer or an admin release directly; the seller
// must present the buyer's release code.
func (s *escrowService) ReleaseEscrowFunds(ctx context.Context, escrowID uuid.UUID, actor usecase.Actor, releaseCode string) (*entity.EscrowAccount, error) {
	var badCode bool

	escrow, err := s.mutate(ctx, escrowID, func(repo repository.EscrowRepository, escrow *entity.EscrowAccount, pending *pendingMetrics) error {
		switch {
		case actor.IsAdmin(), actor.ID == escrow.BuyerID:
		case actor.ID == escrow.SellerID:
			if !s.ledger.checkReleaseCode(escrow, strings.TrimSpace(releaseCode)) {
				badCode = true

				return errors.Wrap(domainerrors.ErrInvalidReleaseCode, "release code does not match")
			}
		default:
			return errors.Wrap(domainerrors.ErrForbidden, "not a party to this escrow")
		}

		releasedBy := actor.ID

		return s.ledger.release(ctx, repo, escrow, &releasedBy, pending)
	})

	if badCode {
		actorID := actor.ID
		s.compliance.RecordSecurityEvent(ctx, &usecase.SecurityEventInput{
			UserID:   &actorID,
			Type:     entity.SecurityEventInvalidReleaseCode,
			Severity: entity.SeverityMedium,
			Details:  map[string]any{"escrow_id": escrowID.String()},
		})
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("Escrow released",
		slog.String("escrow_id", escrow.ID.String()),
		slog.String("released_by", actor.ID.String()),
	)
	s.notifyRelease(ctx, escrow)

	return escrow, nil
}

// RefundEscrow returns the funds to the buyer. Sellers and admins may refund;
// a buyer may only withdraw an escrow that was never funded. Funds captured by
// a payment transaction go back through the payment's gateway.
func (s *escrowService) RefundEscrow(ctx context.Context, escrowID uuid.UUID, actor usecase.Actor, reason string) (*entity.EscrowAccount, error) {
	current, err := s.escrowRepo.FindEscrowByID(ctx, escrowID)
	if err != nil {
		return nil, translateEscrowError(err)
	}
	if err := authorizeEscrowRefund(actor, current); err != nil {
		return nil, err
	}

	var escrow *entity.EscrowAccount
	if current.TransactionID != nil && current.HoldsFunds() {
		escrow, err = s.refundPayment(ctx, current, reason)
	} else {
		escrow, err = s.mutate(ctx, escrowID, func(repo repository.EscrowRepository, escrow *entity.EscrowAccount, pending *pendingMetrics) error {
			if err := authorizeEscrowRefund(actor, escrow); err != nil {
				return err
			}

			return s.ledger.refund(ctx, repo, escrow, reason, pending)
		})
	}
	if err != nil {
		return nil, err
	}

	enqueueNotifications(ctx, s.notifier, s.logger,
		notice(escrow.BuyerID, entity.NotificationTypeEscrow, "Escrow refunded", "Your payment is being returned.", escrowData(escrow)),
		notice(escrow.SellerID, entity.NotificationTypeEscrow, "Escrow refunded", "The escrow for this order was refunded to the buyer.", escrowData(escrow)),
	)

	return escrow, nil
}

func (s *escrowService) DisputeEscrow(ctx context.Context, escrowID uuid.UUID, actor usecase.Actor, reason string) (*entity.EscrowAccount, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "a dispute reason is required")
	}

	escrow, err := s.mutate(ctx, escrowID, func(repo repository.EscrowRepository, escrow *entity.EscrowAccount, pending *pendingMetrics) error {
		if !actor.IsAdmin() && !escrow.IsParty(actor.ID) {
			return errors.Wrap(domainerrors.ErrForbidden, "not a party to this escrow")
		}

		return s.ledger.dispute(ctx, repo, escrow, actor.ID, reason, pending)
	})
	if err != nil {
		return nil, err
	}

	counterparty := escrow.SellerID
	if actor.ID == escrow.SellerID {
		counterparty = escrow.BuyerID
	}
	enqueueNotifications(ctx, s.notifier, s.logger,
		notice(counterparty, entity.NotificationTypeEscrow, "Dispute opened", reason, escrowData(escrow)),
	)

	return escrow, nil
}

// AutoReleaseDue releases each due escrow in its own transaction.
func (s *escrowService) AutoReleaseDue(ctx context.Context, now time.Time) (int, error) {
	due, err := s.escrowRepo.FindDueForAutoRelease(ctx, now, autoReleaseBatch)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find escrows due for release")
	}

	released := 0
	for _, candidate := range due {
		var didRelease bool
		escrow, err := s.mutate(ctx, candidate.ID, func(repo repository.EscrowRepository, escrow *entity.EscrowAccount, pending *pendingMetrics) error {
			// Re-checked under the row lock; a party may have acted meanwhile.
			if escrow.Status != entity.EscrowStatusFunded {
				return nil
			}
			didRelease = true

			return s.ledger.release(ctx, repo, escrow, nil, pending)
		})
		if err != nil {
			s.logger.Error("Auto-release failed",
				slog.String("escrow_id", candidate.ID.String()),
				slog.Any("error", err),
			)

			continue
		}
		if !didRelease {
			continue
		}
		released++
		s.notifyRelease(ctx, escrow)
	}

	if released > 0 {
		s.logger.Info("Escrows auto-released", slog.Int("count", released))
	}

	return released, nil
}

func (s *escrowService) GetEscrowAccount(ctx context.Context, actor usecase.Actor, escrowID uuid.UUID) (*entity.EscrowAccount, error) {
	escrow, err := s.escrowRepo.FindEscrowByID(ctx, escrowID)
	if err != nil {
		return nil, translateEscrowError(err)
	}
	if !actor.IsAdmin() && !escrow.IsParty(actor.ID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "not a party to this escrow")
	}

	return escrow, nil
}

func (s *escrowService) GetEscrowByOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) (*entity.EscrowAccount, error) {
	escrow, err := s.escrowRepo.FindEscrowByOrderID(ctx, orderID)
	if err != nil {
		return nil, translateEscrowError(err)
	}
	if !actor.IsAdmin() && !escrow.IsParty(actor.ID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "not a party to this escrow")
	}

	return escrow, nil
}

// mutate locks the escrow row and applies fn within one transaction.
// Metrics are emitted after commit.
func (s *escrowService) mutate(
	ctx context.Context,
	escrowID uuid.UUID,
	fn func(repo repository.EscrowRepository, escrow *entity.EscrowAccount, pending *pendingMetrics) error,
) (*entity.EscrowAccount, error) {
	var (
		result  *entity.EscrowAccount
		pending pendingMetrics
	)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewEscrowRepository()

		escrow, err := repo.FindEscrowByIDForUpdate(ctx, escrowID)
		if err != nil {
			return translateEscrowError(err)
		}
		if err := fn(repo, escrow, &pending); err != nil {
			return err
		}
		result = escrow

		return nil
	})
	if err != nil {
		return nil, errors.WithMessage(err, "escrow update failed")
	}
	pending.emit(s.metrics)

	return result, nil
}

// refundPayment refunds the payment that funded the escrow.
func (s *escrowService) refundPayment(ctx context.Context, escrow *entity.EscrowAccount, reason string) (*entity.EscrowAccount, error) {
	result, err := s.refunds.refund(ctx, *escrow.TransactionID, reason, nil)
	if err != nil {
		return nil, errors.WithMessage(err, "escrow refund failed")
	}
	if result.escrow != nil {
		return result.escrow, nil
	}

	refreshed, err := s.escrowRepo.FindEscrowByID(ctx, escrow.ID)
	if err != nil {
		return nil, translateEscrowError(err)
	}

	return refreshed, nil
}

func (s *escrowService) notifyRelease(ctx context.Context, escrow *entity.EscrowAccount) {
	enqueueNotifications(ctx, s.notifier, s.logger,
		notice(escrow.SellerID, entity.NotificationTypeEscrow, "Funds released", "The escrow funds for your order were released to you.", escrowData(escrow)),
		notice(escrow.BuyerID, entity.NotificationTypeEscrow, "Order settled", "The escrow for your order was released to the seller.", escrowData(escrow)),
	)
}

func authorizeEscrowRefund(actor usecase.Actor, escrow *entity.EscrowAccount) error {
	if actor.IsAdmin() || actor.ID == escrow.SellerID ||
		(actor.ID == escrow.BuyerID && escrow.Status == entity.EscrowStatusPending) {
		return nil
	}

	return errors.Wrap(domainerrors.ErrForbidden, "not allowed to refund this escrow")
}

func translateEscrowError(err error) error {
	if errors.Is(err, repository.ErrEscrowNotFound) {
		return errors.Wrap(domainerrors.ErrEscrowNotFound, "escrow account not found")
	}

	return errors.Wrap(err, "failed to load escrow account")
}

func escrowData(escrow *entity.EscrowAccount) map[string]any {
	return map[string]any{
		"escrow_id": escrow.ID.String(),
		"order_id":  escrow.OrderID.String(),
		"status":    string(escrow.Status),
		"amount":    escrow.Amount.String(),
		"currency":  escrow.Currency,
	}
}
