package impl

import (
	"context"
	"log/slog"
	"time"

	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/lifecycle"
	"expatmart/internal/domain/repository"
	"expatmart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// paymentRefunder returns a completed payment to the buyer through its
// gateway. The transaction is claimed as REFUNDING before the provider is
// called, so a repeated or concurrent refund never reaches the provider twice.
type paymentRefunder struct {
	txManager repository.TransactionManager
	gateways  service.GatewayResolver
	ledger    *escrowLedger
	metrics   service.MetricsRecorder
	logger    *slog.Logger
	now       func() time.Time
}

func newPaymentRefunder(
	txManager repository.TransactionManager,
	gateways service.GatewayResolver,
	ledger *escrowLedger,
	metrics service.MetricsRecorder,
	logger *slog.Logger,
) *paymentRefunder {
	return &paymentRefunder{
		txManager: txManager,
		gateways:  gateways,
		ledger:    ledger,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

type refundResult struct {
	txn    *entity.PaymentTransaction
	escrow *entity.EscrowAccount
	// already is set when the payment had been refunded before this call.
	already bool
}

// refund claims, refunds and settles one payment. authorize runs against the
// locked transaction and may be nil.
func (r *paymentRefunder) refund(ctx context.Context, transactionID uuid.UUID, reason string, authorize func(*entity.PaymentTransaction) error) (*refundResult, error) {
	txn, already, err := r.claim(ctx, transactionID, authorize)
	if err != nil {
		return nil, err
	}
	if already {
		return &refundResult{txn: txn, already: true}, nil
	}

	return r.settle(ctx, txn, reason)
}

func (r *paymentRefunder) claim(ctx context.Context, transactionID uuid.UUID, authorize func(*entity.PaymentTransaction) error) (*entity.PaymentTransaction, bool, error) {
	var (
		txn     *entity.PaymentTransaction
		already bool
		pending pendingMetrics
	)

	err := r.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.NewPaymentRepository()

		locked, err := paymentRepo.FindTransactionByIDForUpdate(ctx, transactionID)
		if err != nil {
			return translatePaymentError(err)
		}
		if authorize != nil {
			if err := authorize(locked); err != nil {
				return err
			}
		}
		txn = locked

		switch locked.Status {
		case entity.PaymentStatusRefunded:
			already = true

			return nil
		case entity.PaymentStatusRefunding:
			return errors.Wrap(domainerrors.ErrInvalidStatusTransition, "a refund of this payment is already in progress")
		case entity.PaymentStatusCompleted:
		default:
			return errors.Wrapf(domainerrors.ErrInvalidStatusTransition, "payment is %s, only completed payments can be refunded", locked.Status)
		}

		escrow, err := repoFactory.NewEscrowRepository().FindEscrowByTransactionIDForUpdate(ctx, locked.ID)
		if err != nil && !errors.Is(err, repository.ErrEscrowNotFound) {
			return translateEscrowError(err)
		}
		if escrow != nil && escrow.Status == entity.EscrowStatusReleased {
			return errors.Wrap(domainerrors.ErrInvalidStatusTransition, "escrow was already released to the seller")
		}

		return updatePaymentStatus(ctx, paymentRepo, locked, entity.PaymentStatusRefunding, "", r.now(), &pending)
	})
	if err != nil {
		return nil, false, err
	}
	pending.emit(r.metrics)

	return txn, already, nil
}

// settle calls the gateway for a claimed transaction and then marks the
// transaction and its escrow REFUNDED. A failed gateway call hands the claim
// back so the refund can be retried.
func (r *paymentRefunder) settle(ctx context.Context, txn *entity.PaymentTransaction, reason string) (*refundResult, error) {
	gateway, err := r.gateways.Gateway(txn.Provider)
	if err == nil {
		err = gateway.Refund(ctx, txn, reason)
	}
	if err != nil {
		r.releaseClaim(ctx, txn.ID)

		return nil, errors.Wrapf(domainerrors.ErrPaymentProviderUnavailable, "refund with %s: %v", txn.Provider, err)
	}

	result := &refundResult{}
	var pending pendingMetrics

	err = r.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.NewPaymentRepository()

		locked, err := paymentRepo.FindTransactionByIDForUpdate(ctx, txn.ID)
		if err != nil {
			return translatePaymentError(err)
		}
		if locked.Status != entity.PaymentStatusRefunding {
			return errors.Wrapf(domainerrors.ErrInvalidStatusTransition, "payment is %s, expected a claimed refund", locked.Status)
		}
		if err := updatePaymentStatus(ctx, paymentRepo, locked, entity.PaymentStatusRefunded, reason, r.now(), &pending); err != nil {
			return err
		}
		result.txn = locked

		escrowRepo := repoFactory.NewEscrowRepository()
		escrow, err := escrowRepo.FindEscrowByTransactionIDForUpdate(ctx, locked.ID)
		if errors.Is(err, repository.ErrEscrowNotFound) {
			return nil
		}
		if err != nil {
			return translateEscrowError(err)
		}
		if escrow.Status == entity.EscrowStatusRefunded {
			return nil
		}
		if err := r.ledger.refund(ctx, escrowRepo, escrow, reason, &pending); err != nil {
			return err
		}
		result.escrow = escrow

		return nil
	})
	if err != nil {
		r.logger.Error("Provider refunded a payment that could not be settled",
			slog.String("transaction_id", txn.ID.String()),
			slog.Any("error", err),
		)

		return nil, errors.WithMessage(err, "failed to settle refund")
	}
	pending.emit(r.metrics)

	return result, nil
}

// releaseClaim moves a REFUNDING transaction back to COMPLETED. It runs on a
// detached context so a cancelled request still hands the claim back.
func (r *paymentRefunder) releaseClaim(ctx context.Context, transactionID uuid.UUID) {
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	var pending pendingMetrics
	err := r.txManager.Execute(releaseCtx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.NewPaymentRepository()

		locked, err := paymentRepo.FindTransactionByIDForUpdate(releaseCtx, transactionID)
		if err != nil {
			return translatePaymentError(err)
		}
		if locked.Status != entity.PaymentStatusRefunding {
			return nil
		}

		return updatePaymentStatus(releaseCtx, paymentRepo, locked, entity.PaymentStatusCompleted, "", r.now(), &pending)
	})
	if err != nil {
		r.logger.Error("Failed to release refund claim",
			slog.String("transaction_id", transactionID.String()),
			slog.Any("error", err),
		)

		return
	}
	pending.emit(r.metrics)
}

func updatePaymentStatus(
	ctx context.Context,
	repo repository.PaymentRepository,
	txn *entity.PaymentTransaction,
	status entity.PaymentStatus,
	reason string,
	now time.Time,
	pending *pendingMetrics,
) error {
	txn.Status = status
	if reason != "" {
		txn.FailureReason = reason
	}
	txn.UpdatedAt = now

	if err := repo.UpdateTransaction(ctx, txn); err != nil {
		return errors.Wrap(err, "failed to update payment transaction")
	}
	pending.paymentMoved(txn.Provider, status)

	return nil
}
