package impl

import (
	"context"
	"log/slog"
	"strings"
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
	"go.uber.org/fx"
)

const (
	referenceCodePrefix = "EXM"
	referenceCodeLength = 8
)

// PaymentServiceParams holds the dependencies of the payment service.
type PaymentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PaymentRepo repository.PaymentRepository
	Gateways    service.GatewayResolver
	QRCode      service.QRCodeService
	Hasher      service.SecretHasher
	Notifier    usecase.NotificationUsecase
	Compliance  usecase.ComplianceUsecase
	Metrics     service.MetricsRecorder
	Config      *config.Config
	Logger      *slog.Logger
}

type paymentService struct {
	txManager   repository.TransactionManager
	paymentRepo repository.PaymentRepository
	gateways    service.GatewayResolver
	qrCode      service.QRCodeService
	ledger      *escrowLedger
	refunds     *paymentRefunder
	notifier    usecase.NotificationUsecase
	compliance  usecase.ComplianceUsecase
	metrics     service.MetricsRecorder
	logger      *slog.Logger
	now         func() time.Time
}

// NewPaymentService creates the payment service.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	ledger := newEscrowLedger(params.Config.Escrow, params.Hasher)

	return &paymentService{
		txManager:   params.TxManager,
		paymentRepo: params.PaymentRepo,
		gateways:    params.Gateways,
		qrCode:      params.QRCode,
		ledger:      ledger,
		refunds:     newPaymentRefunder(params.TxManager, params.Gateways, ledger, params.Metrics, params.Logger),
		notifier:    params.Notifier,
		compliance:  params.Compliance,
		metrics:     params.Metrics,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// CreatePayment records a PENDING transaction and escrow for the order, then
// hands the transaction to the provider gateway. The gateway is called outside
// the database transaction. An order has at most one open transaction.
func (s *paymentService) CreatePayment(ctx context.Context, payerID uuid.UUID, input *usecase.CreatePaymentInput) (*usecase.PaymentResult, error) {
	if input == nil || input.OrderID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "order is required")
	}
	if !input.Provider.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown payment provider %q", input.Provider)
	}
	if input.Amount.IsNegative() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "amount must not be negative")
	}

	gateway, err := s.gateways.Gateway(input.Provider)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrPaymentProviderUnavailable, "provider %s: %v", input.Provider, err)
	}

	var (
		txn         *entity.PaymentTransaction
		escrow      *entity.EscrowAccount
		releaseCode string
	)

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, err := repoFactory.NewOrderRepository().FindOrderByIDForUpdate(ctx, input.OrderID)
		if err != nil {
			return translateOrderError(err)
		}
		if order.BuyerID != payerID {
			return errors.Wrap(domainerrors.ErrForbidden, "only the buyer can pay for this order")
		}
		if order.Status != entity.OrderStatusPending {
			return errors.Wrapf(domainerrors.ErrInvalidStatusTransition, "order is %s, not awaiting payment", order.Status)
		}
		if err := checkPaymentAmount(order, input); err != nil {
			return err
		}

		paymentRepo := repoFactory.NewPaymentRepository()
		open, err := paymentRepo.FindOpenTransactionByOrder(ctx, order.ID)
		if err == nil {
			return errors.Wrapf(domainerrors.ErrPaymentInProgress, "transaction %s is %s", open.ID, open.Status)
		}
		if !errors.Is(err, repository.ErrPaymentNotFound) {
			return errors.Wrap(err, "failed to check open payments")
		}

		reference, err := util.ReferenceCode(referenceCodePrefix, referenceCodeLength)
		if err != nil {
			return errors.Wrap(err, "failed to generate reference code")
		}

		now := s.now()
		txn = &entity.PaymentTransaction{
			ID:            uuid.New(),
			OrderID:       order.ID,
			PayerID:       order.BuyerID,
			PayeeID:       order.SellerID,
			Amount:        order.Total,
			Currency:      order.Currency,
			Provider:      input.Provider,
			ReferenceCode: reference,
			Status:        entity.PaymentStatusPending,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := paymentRepo.CreateTransaction(ctx, txn); err != nil {
			return errors.Wrap(err, "failed to create payment transaction")
		}

		escrow, releaseCode, err = s.ledger.open(ctx, repoFactory.NewEscrowRepository(), &usecase.CreateEscrowInput{
			OrderID:       order.ID,
			TransactionID: &txn.ID,
			BuyerID:       order.BuyerID,
			SellerID:      order.SellerID,
			Amount:        order.Total,
			Currency:      order.Currency,
		})

		return err
	})
	if err != nil {
		return nil, errors.WithMessage(err, "create payment failed")
	}
	s.metrics.PaymentTransition(string(txn.Provider), string(txn.Status))

	gatewayResult, gatewayErr := gateway.Initiate(ctx, txn)
	if gatewayErr != nil {
		s.logger.Error("Payment gateway rejected transaction",
			slog.String("transaction_id", txn.ID.String()),
			slog.String("provider", string(txn.Provider)),
			slog.Any("error", gatewayErr),
		)
		if err := s.markFailed(ctx, txn.ID, gatewayErr.Error()); err != nil {
			s.logger.Error("Failed to mark transaction failed", slog.String("transaction_id", txn.ID.String()), slog.Any("error", err))
		}

		return nil, errors.Wrapf(domainerrors.ErrPaymentProviderUnavailable, "provider %s: %v", txn.Provider, gatewayErr)
	}

	var (
		late    bool
		pending pendingMetrics
	)
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.NewPaymentRepository()
		locked, err := paymentRepo.FindTransactionByIDForUpdate(ctx, txn.ID)
		if err != nil {
			return translatePaymentError(err)
		}

		locked.ProviderRef = gatewayResult.ProviderRef
		locked.RedirectURL = gatewayResult.RedirectURL
		locked.Instructions = gatewayResult.Instructions
		locked.Metadata = gatewayResult.Metadata

		if gatewayResult.Status == entity.PaymentStatusCompleted {
			late, err = s.completePayment(ctx, repoFactory, locked, &pending)
			if err != nil {
				return err
			}
			escrow, err = repoFactory.NewEscrowRepository().FindEscrowByID(ctx, escrow.ID)
			if err != nil {
				return translateEscrowError(err)
			}
		} else if err := s.setStatus(ctx, paymentRepo, locked, gatewayResult.Status, "", &pending); err != nil {
			return err
		}
		txn = locked

		return nil
	})
	if err != nil {
		return nil, errors.WithMessage(err, "create payment failed")
	}
	pending.emit(s.metrics)
	if late {
		txn = s.refundLatePayment(ctx, txn)
	}

	result := &usecase.PaymentResult{
		Transaction:          txn,
		Escrow:               escrow,
		RedirectURL:          txn.RedirectURL,
		RequiresVerification: gatewayResult.RequiresVerification || txn.Status == entity.PaymentStatusPendingVerification,
		Instructions:         txn.Instructions,
		ReleaseCode:          releaseCode,
	}

	if txn.Provider.RequiresManualVerification() {
		png, err := s.qrCode.GeneratePaymentQR(&service.PaymentReference{
			TransactionID: txn.ID,
			ReferenceCode: txn.ReferenceCode,
			Amount:        txn.Amount,
			Currency:      txn.Currency,
		})
		if err != nil {
			s.logger.Warn("Failed to generate payment QR code", slog.String("transaction_id", txn.ID.String()), slog.Any("error", err))
		} else {
			result.QRCodePNG = png
		}
	}

	s.logger.Info("Payment created",
		slog.String("transaction_id", txn.ID.String()),
		slog.String("order_id", txn.OrderID.String()),
		slog.String("provider", string(txn.Provider)),
		slog.String("status", string(txn.Status)),
	)
	s.notifyPayment(ctx, txn)

	return result, nil
}

// ProcessPaymentWebhook applies a verified provider event exactly once.
func (s *paymentService) ProcessPaymentWebhook(ctx context.Context, provider entity.PaymentProvider, payload []byte, signature string) (*usecase.WebhookOutcome, error) {
	gateway, err := s.gateways.Gateway(provider)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrPaymentProviderUnavailable, "provider %s: %v", provider, err)
	}

	notification, err := gateway.ParseWebhook(payload, signature)
	if err != nil {
		if errors.Is(err, domainerrors.ErrWebhookSignatureInvalid) {
			s.compliance.RecordSecurityEvent(ctx, &usecase.SecurityEventInput{
				Type:     entity.SecurityEventWebhookSignature,
				Severity: entity.SeverityHigh,
				Details:  map[string]any{"provider": string(provider)},
			})

			return nil, err
		}

		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "malformed %s webhook: %v", provider, err)
	}

	outcome := &usecase.WebhookOutcome{EventID: notification.EventID}
	var (
		changed *entity.PaymentTransaction
		late    bool
		pending pendingMetrics
	)

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.NewPaymentRepository()

		found, err := paymentRepo.FindTransactionByReference(ctx, provider, notification.Reference)
		if err != nil {
			return translatePaymentError(err)
		}

		err = paymentRepo.RecordWebhookEvent(ctx, &entity.PaymentWebhookEvent{
			ID:            uuid.New(),
			Provider:      provider,
			EventID:       notification.EventID,
			EventType:     notification.EventType,
			TransactionID: &found.ID,
			Payload:       payload,
			ProcessedAt:   s.now(),
		})
		if errors.Is(err, repository.ErrDuplicateWebhookEvent) {
			outcome.Duplicate = true
			outcome.TransactionID = &found.ID
			outcome.Status = found.Status

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to record webhook event")
		}

		txn, err := paymentRepo.FindTransactionByIDForUpdate(ctx, found.ID)
		if err != nil {
			return translatePaymentError(err)
		}
		outcome.TransactionID = &txn.ID

		if notification.Amount != nil && !notification.Amount.Equal(txn.Amount) {
			return errors.Wrapf(domainerrors.ErrPaymentAmountMismatch, "webhook amount %s, expected %s", notification.Amount, txn.Amount)
		}
		if notification.Currency != "" && currency.Normalize(notification.Currency) != txn.Currency {
			return errors.Wrapf(domainerrors.ErrPaymentAmountMismatch, "webhook currency %s, expected %s", notification.Currency, txn.Currency)
		}

		if txn.Status.IsFinal() || notification.Status == txn.Status || notification.Status == "" {
			outcome.Status = txn.Status

			return nil
		}

		switch notification.Status {
		case entity.PaymentStatusCompleted:
			late, err = s.completePayment(ctx, repoFactory, txn, &pending)
		case entity.PaymentStatusFailed, entity.PaymentStatusCancelled:
			err = s.failPayment(ctx, repoFactory, txn, notification.Status, notification.FailureCode, &pending)
		default:
			err = s.setStatus(ctx, paymentRepo, txn, notification.Status, "", &pending)
		}
		if err != nil {
			return err
		}
		outcome.Status = txn.Status
		changed = txn

		return nil
	})
	if err != nil {
		return nil, errors.WithMessage(err, "process payment webhook failed")
	}
	pending.emit(s.metrics)

	if outcome.Duplicate {
		s.logger.Info("Duplicate payment webhook ignored",
			slog.String("provider", string(provider)),
			slog.String("event_id", notification.EventID),
		)

		return outcome, nil
	}
	if changed != nil {
		if late {
			changed = s.refundLatePayment(ctx, changed)
			outcome.Status = changed.Status
		}
		s.logger.Info("Payment webhook applied",
			slog.String("provider", string(provider)),
			slog.String("event_id", notification.EventID),
			slog.String("transaction_id", changed.ID.String()),
			slog.String("status", string(changed.Status)),
		)
		s.notifyPayment(ctx, changed)
	}

	return outcome, nil
}

// VerifyPayment confirms or rejects a manually verified payment.
func (s *paymentService) VerifyPayment(ctx context.Context, actor usecase.Actor, transactionID uuid.UUID, approved bool, note string) (*entity.PaymentTransaction, error) {
	var (
		txn     *entity.PaymentTransaction
		late    bool
		pending pendingMetrics
	)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.NewPaymentRepository()

		locked, err := paymentRepo.FindTransactionByIDForUpdate(ctx, transactionID)
		if err != nil {
			return translatePaymentError(err)
		}
		if !actor.IsAdmin() && actor.ID != locked.PayeeID {
			return errors.Wrap(domainerrors.ErrForbidden, "only the seller or an admin can verify this payment")
		}
		if !locked.Provider.RequiresManualVerification() {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "%s payments are not verified manually", locked.Provider)
		}
		if locked.Status != entity.PaymentStatusPendingVerification {
			return errors.Wrapf(domainerrors.ErrInvalidStatusTransition, "payment is %s, not awaiting verification", locked.Status)
		}

		if approved {
			late, err = s.completePayment(ctx, repoFactory, locked, &pending)
		} else {
			err = s.failPayment(ctx, repoFactory, locked, entity.PaymentStatusFailed, strings.TrimSpace(note), &pending)
		}
		if err != nil {
			return err
		}
		txn = locked

		return nil
	})
	if err != nil {
		return nil, errors.WithMessage(err, "verify payment failed")
	}
	pending.emit(s.metrics)
	if late {
		txn = s.refundLatePayment(ctx, txn)
	}

	s.logger.Info("Payment verified",
		slog.String("transaction_id", txn.ID.String()),
		slog.String("verified_by", actor.ID.String()),
		slog.Bool("approved", approved),
	)
	s.notifyPayment(ctx, txn)

	return txn, nil
}

// RefundPayment refunds a completed payment through its gateway and returns
// the escrowed funds to the buyer. Refunding an already refunded payment
// returns it unchanged.
func (s *paymentService) RefundPayment(ctx context.Context, actor usecase.Actor, transactionID uuid.UUID, reason string) (*entity.PaymentTransaction, error) {
	result, err := s.refunds.refund(ctx, transactionID, reason, func(txn *entity.PaymentTransaction) error {
		if !actor.IsAdmin() && actor.ID != txn.PayeeID {
			return errors.Wrap(domainerrors.ErrForbidden, "only the seller or an admin can refund this payment")
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithMessage(err, "refund payment failed")
	}
	if result.already {
		return result.txn, nil
	}

	s.logger.Info("Payment refunded",
		slog.String("transaction_id", result.txn.ID.String()),
		slog.String("refunded_by", actor.ID.String()),
	)
	s.notifyPayment(ctx, result.txn)

	return result.txn, nil
}

func (s *paymentService) GetPayment(ctx context.Context, actor usecase.Actor, transactionID uuid.UUID) (*entity.PaymentTransaction, error) {
	txn, err := s.paymentRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, translatePaymentError(err)
	}
	if !actor.IsAdmin() && actor.ID != txn.PayerID && actor.ID != txn.PayeeID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "not a party to this payment")
	}

	return txn, nil
}

func (s *paymentService) ListPayments(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.PaymentTransaction, error) {
	limit, offset = normalizePage(limit, offset)

	txns, err := s.paymentRepo.ListTransactionsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return txns, nil
}

// completePayment marks the transaction COMPLETED, funds its escrow and moves
// the order to PAID, all with the repositories of the caller's transaction.
// When the order was cancelled meanwhile the payment is claimed for a refund
// instead and late is true; the caller settles it after commit.
func (s *paymentService) completePayment(ctx context.Context, repoFactory repository.RepositoryFactory, txn *entity.PaymentTransaction, pending *pendingMetrics) (bool, error) {
	now := s.now()
	txn.CompletedAt = &now

	orderRepo := repoFactory.NewOrderRepository()
	order, err := orderRepo.FindOrderByIDForUpdate(ctx, txn.OrderID)
	if err != nil {
		return false, translateOrderError(err)
	}
	if order.Status == entity.OrderStatusCancelled {
		if err := s.setStatus(ctx, repoFactory.NewPaymentRepository(), txn, entity.PaymentStatusRefunding, "order was cancelled before the payment completed", pending); err != nil {
			return false, err
		}

		return true, nil
	}

	if err := s.setStatus(ctx, repoFactory.NewPaymentRepository(), txn, entity.PaymentStatusCompleted, "", pending); err != nil {
		return false, err
	}

	escrowRepo := repoFactory.NewEscrowRepository()
	escrow, err := escrowRepo.FindEscrowByTransactionIDForUpdate(ctx, txn.ID)
	if err != nil {
		return false, translateEscrowError(err)
	}
	if escrow.Status == entity.EscrowStatusPending {
		if err := s.ledger.fund(ctx, escrowRepo, escrow, pending); err != nil {
			return false, err
		}
	}

	if order.Status == entity.OrderStatusPending {
		order.Status = entity.OrderStatusPaid
		order.PaidAt = &now
		order.UpdatedAt = now
		if err := orderRepo.UpdateOrder(ctx, order); err != nil {
			return false, errors.Wrap(err, "failed to mark order paid")
		}
	}

	return false, nil
}

// refundLatePayment returns money captured for a cancelled order. On failure
// the transaction is left COMPLETED for a manual refund.
func (s *paymentService) refundLatePayment(ctx context.Context, txn *entity.PaymentTransaction) *entity.PaymentTransaction {
	s.compliance.RecordSecurityEvent(ctx, &usecase.SecurityEventInput{
		UserID:   &txn.PayerID,
		Type:     entity.SecurityEventPaymentAfterCancel,
		Severity: entity.SeverityHigh,
		Details: map[string]any{
			"transaction_id": txn.ID.String(),
			"order_id":       txn.OrderID.String(),
			"provider":       string(txn.Provider),
			"amount":         txn.Amount.String(),
			"currency":       txn.Currency,
		},
	})

	result, err := s.refunds.settle(ctx, txn, txn.FailureReason)
	if err != nil {
		s.logger.Error("Failed to refund payment of a cancelled order",
			slog.String("transaction_id", txn.ID.String()),
			slog.String("order_id", txn.OrderID.String()),
			slog.Any("error", err),
		)
		if errors.Is(err, domainerrors.ErrPaymentProviderUnavailable) {
			txn.Status = entity.PaymentStatusCompleted
		}

		return txn
	}

	return result.txn
}

func (s *paymentService) setStatus(
	ctx context.Context,
	repo repository.PaymentRepository,
	txn *entity.PaymentTransaction,
	status entity.PaymentStatus,
	reason string,
	pending *pendingMetrics,
) error {
	return updatePaymentStatus(ctx, repo, txn, status, reason, s.now(), pending)
}

// failPayment ends an open transaction and closes its escrow if it was never
// funded, so the order can be paid again.
func (s *paymentService) failPayment(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	txn *entity.PaymentTransaction,
	status entity.PaymentStatus,
	reason string,
	pending *pendingMetrics,
) error {
	if err := s.setStatus(ctx, repoFactory.NewPaymentRepository(), txn, status, reason, pending); err != nil {
		return err
	}

	escrowRepo := repoFactory.NewEscrowRepository()
	escrow, err := escrowRepo.FindEscrowByTransactionIDForUpdate(ctx, txn.ID)
	if errors.Is(err, repository.ErrEscrowNotFound) {
		return nil
	}
	if err != nil {
		return translateEscrowError(err)
	}
	if escrow.Status != entity.EscrowStatusPending {
		return nil
	}

	return s.ledger.refund(ctx, escrowRepo, escrow, "payment "+strings.ToLower(string(status)), pending)
}

func (s *paymentService) markFailed(ctx context.Context, transactionID uuid.UUID, reason string) error {
	var pending pendingMetrics

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		txn, err := repoFactory.NewPaymentRepository().FindTransactionByIDForUpdate(ctx, transactionID)
		if err != nil {
			return translatePaymentError(err)
		}

		return s.failPayment(ctx, repoFactory, txn, entity.PaymentStatusFailed, reason, &pending)
	})
	if err != nil {
		return err
	}
	pending.emit(s.metrics)

	return nil
}

func (s *paymentService) notifyPayment(ctx context.Context, txn *entity.PaymentTransaction) {
	data := map[string]any{
		"transaction_id": txn.ID.String(),
		"order_id":       txn.OrderID.String(),
		"reference_code": txn.ReferenceCode,
		"amount":         txn.Amount.String(),
		"currency":       txn.Currency,
		"status":         string(txn.Status),
	}

	switch txn.Status {
	case entity.PaymentStatusCompleted:
		enqueueNotifications(ctx, s.notifier, s.logger,
			notice(txn.PayerID, entity.NotificationTypePayment, "Payment received", "Your payment was received and is held in escrow.", data),
			notice(txn.PayeeID, entity.NotificationTypePayment, "New paid order", "An order was paid. The funds are held in escrow until delivery.", data),
		)
	case entity.PaymentStatusPendingVerification:
		enqueueNotifications(ctx, s.notifier, s.logger,
			notice(txn.PayerID, entity.NotificationTypePayment, "Complete your payment", txn.Instructions, data),
			notice(txn.PayeeID, entity.NotificationTypePayment, "Payment awaiting verification", "Confirm receipt of the payment once the funds arrive.", data),
		)
	case entity.PaymentStatusFailed, entity.PaymentStatusCancelled:
		enqueueNotifications(ctx, s.notifier, s.logger,
			notice(txn.PayerID, entity.NotificationTypePayment, "Payment failed", "Your payment could not be completed.", data),
		)
	case entity.PaymentStatusRefunded:
		enqueueNotifications(ctx, s.notifier, s.logger,
			notice(txn.PayerID, entity.NotificationTypePayment, "Payment refunded", "Your payment was refunded.", data),
		)
	}
}

// checkPaymentAmount requires the request to match the order. A zero amount
// means the order total.
func checkPaymentAmount(order *entity.Order, input *usecase.CreatePaymentInput) error {
	if !input.Amount.IsZero() && !input.Amount.Equal(order.Total) {
		return errors.Wrapf(domainerrors.ErrPaymentAmountMismatch, "amount %s, order total %s", input.Amount, order.Total)
	}
	if input.Currency != "" && currency.Normalize(input.Currency) != order.Currency {
		return errors.Wrapf(domainerrors.ErrPaymentAmountMismatch, "currency %s, order currency %s", input.Currency, order.Currency)
	}

	return nil
}

func translatePaymentError(err error) error {
	if errors.Is(err, repository.ErrPaymentNotFound) {
		return errors.Wrap(domainerrors.ErrPaymentNotFound, "payment transaction not found")
	}

	return errors.Wrap(err, "failed to load payment transaction")
}

func translateOrderError(err error) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
	}

	return errors.Wrap(err, "failed to load order")
}
