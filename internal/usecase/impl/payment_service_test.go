package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"expatmart/config"
	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/domain/service"
	mockRepo "expatmart/internal/mocks/repository"
	mockSvc "expatmart/internal/mocks/service"
	mockUsecase "expatmart/internal/mocks/usecase"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentFixture struct {
	service     *paymentService
	txManager   *mockRepo.MockTransactionManager
	paymentRepo *mockRepo.MockPaymentRepository
	orderRepo   *mockRepo.MockOrderRepository
	escrowRepo  *mockRepo.MockEscrowRepository
	gateways    *mockSvc.MockGatewayResolver
	gateway     *mockSvc.MockPaymentGateway
	qrCode      *mockSvc.MockQRCodeService
	compliance  *mockUsecase.MockComplianceUsecase
	now         time.Time

	order  *entity.Order
	txn    *entity.PaymentTransaction
	escrow *entity.EscrowAccount
}

func createTestPaymentService(t *testing.T) *paymentFixture {
	fx := &paymentFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		paymentRepo: mockRepo.NewMockPaymentRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		escrowRepo:  mockRepo.NewMockEscrowRepository(t),
		gateways:    mockSvc.NewMockGatewayResolver(t),
		gateway:     mockSvc.NewMockPaymentGateway(t),
		qrCode:      mockSvc.NewMockQRCodeService(t),
		compliance:  mockUsecase.NewMockComplianceUsecase(t),
		now:         time.Date(2026, 5, 2, 14, 0, 0, 0, time.UTC),
	}
	hasher := mockSvc.NewMockSecretHasher(t)
	hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("hashed", nil).Maybe()
	notifier := mockUsecase.NewMockNotificationUsecase(t)
	notifier.EXPECT().EnqueueNotification(mock.Anything, mock.Anything).
		Return(&entity.NotificationQueueItem{}, nil).Maybe()

	svc := NewPaymentService(PaymentServiceParams{
		TxManager:   fx.txManager,
		PaymentRepo: fx.paymentRepo,
		Gateways:    fx.gateways,
		QRCode:      fx.qrCode,
		Hasher:      hasher,
		Notifier:    notifier,
		Compliance:  fx.compliance,
		Metrics:     service.NoopMetrics{},
		Config: &config.Config{Escrow: &config.EscrowConfig{
			AutoReleaseAfter:  7 * 24 * time.Hour,
			ReleaseCodeLength: 6,
		}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*paymentService)
	svc.now = func() time.Time { return fx.now }
	svc.ledger.now = svc.now
	fx.service = svc

	fx.order = &entity.Order{
		ID:       uuid.New(),
		BuyerID:  uuid.New(),
		SellerID: uuid.New(),
		Total:    decimal.RequireFromString("249.50"),
		Currency: "EUR",
		Status:   entity.OrderStatusPending,
	}

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewPaymentRepository().Return(fx.paymentRepo).Maybe()
			factory.EXPECT().NewOrderRepository().Return(fx.orderRepo).Maybe()
			factory.EXPECT().NewEscrowRepository().Return(fx.escrowRepo).Maybe()

			return fn(factory)
		}).Maybe()

	return fx
}

// expectStore makes the repositories behave like a single-row store for the
// fixture's order, transaction and escrow.
func (fx *paymentFixture) expectStore() {
	fx.orderRepo.EXPECT().FindOrderByIDForUpdate(mock.Anything, fx.order.ID).Return(fx.order, nil).Maybe()
	fx.orderRepo.EXPECT().UpdateOrder(mock.Anything, mock.Anything).Return(nil).Maybe()

	fx.paymentRepo.EXPECT().CreateTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, txn *entity.PaymentTransaction) error {
			fx.txn = txn

			return nil
		}).Maybe()
	fx.paymentRepo.EXPECT().FindTransactionByIDForUpdate(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.PaymentTransaction, error) {
			return fx.txn, nil
		}).Maybe()
	fx.paymentRepo.EXPECT().UpdateTransaction(mock.Anything, mock.Anything).Return(nil).Maybe()
	fx.paymentRepo.EXPECT().FindOpenTransactionByOrder(mock.Anything, fx.order.ID).
		Return(nil, repository.ErrPaymentNotFound).Maybe()

	fx.escrowRepo.EXPECT().CreateEscrow(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, escrow *entity.EscrowAccount) error {
			fx.escrow = escrow

			return nil
		}).Maybe()
	lookup := func(context.Context, uuid.UUID) (*entity.EscrowAccount, error) {
		if fx.escrow == nil {
			return nil, repository.ErrEscrowNotFound
		}

		return fx.escrow, nil
	}
	fx.escrowRepo.EXPECT().FindEscrowByID(mock.Anything, mock.Anything).RunAndReturn(lookup).Maybe()
	fx.escrowRepo.EXPECT().FindEscrowByIDForUpdate(mock.Anything, mock.Anything).RunAndReturn(lookup).Maybe()
	fx.escrowRepo.EXPECT().FindEscrowByTransactionIDForUpdate(mock.Anything, mock.Anything).RunAndReturn(lookup).Maybe()
	fx.escrowRepo.EXPECT().UpdateEscrow(mock.Anything, mock.Anything).Return(nil).Maybe()
}

// seedCompleted places a completed CHECKOUT payment with a funded escrow in the store.
func (fx *paymentFixture) seedCompleted(status entity.PaymentStatus, provider entity.PaymentProvider) {
	fx.order.Status = entity.OrderStatusPaid
	fx.txn = &entity.PaymentTransaction{
		ID:            uuid.New(),
		OrderID:       fx.order.ID,
		PayerID:       fx.order.BuyerID,
		PayeeID:       fx.order.SellerID,
		Amount:        fx.order.Total,
		Currency:      fx.order.Currency,
		Provider:      provider,
		ProviderRef:   "cko_123",
		ReferenceCode: "EXM-ABCD2345",
		Status:        status,
	}
	escrowStatus := entity.EscrowStatusPending
	if status == entity.PaymentStatusCompleted {
		escrowStatus = entity.EscrowStatusFunded
	}
	fx.escrow = &entity.EscrowAccount{
		ID:            uuid.New(),
		OrderID:       fx.order.ID,
		TransactionID: &fx.txn.ID,
		BuyerID:       fx.order.BuyerID,
		SellerID:      fx.order.SellerID,
		Amount:        fx.order.Total,
		Currency:      fx.order.Currency,
		Status:        escrowStatus,
	}
}

func TestPaymentService_CreatePayment_MockCompletesImmediately(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	fx.expectStore()

	fx.gateways.EXPECT().Gateway(entity.ProviderMock).Return(fx.gateway, nil)
	fx.gateway.EXPECT().Initiate(ctx, mock.Anything).Return(&service.GatewayResult{
		Status:      entity.PaymentStatusCompleted,
		ProviderRef: "mock_1",
		RedirectURL: "https://expatmart.test/payments/success",
	}, nil)

	result, err := fx.service.CreatePayment(ctx, fx.order.BuyerID, &usecase.CreatePaymentInput{
		OrderID:  fx.order.ID,
		Provider: entity.ProviderMock,
		Amount:   decimal.RequireFromString("249.5"),
		Currency: "eur",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, result.Transaction.Status)
	assert.Equal(t, &fx.now, result.Transaction.CompletedAt)
	assert.Equal(t, "https://expatmart.test/payments/success", result.RedirectURL)
	assert.False(t, result.RequiresVerification)
	assert.Len(t, result.ReleaseCode, 6)
	assert.Nil(t, result.QRCodePNG)
	assert.True(t, strings.HasPrefix(result.Transaction.ReferenceCode, "EXM-"))

	require.NotNil(t, result.Escrow)
	assert.Equal(t, entity.EscrowStatusFunded, result.Escrow.Status)
	assert.Equal(t, result.Transaction.ID, *result.Escrow.TransactionID)
	assert.Equal(t, fx.now.Add(7*24*time.Hour), *result.Escrow.AutoReleaseAt)
	assert.Equal(t, entity.OrderStatusPaid, fx.order.Status)
}

func TestPaymentService_CreatePayment_BankTransferAwaitsVerification(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	fx.expectStore()

	fx.gateways.EXPECT().Gateway(entity.ProviderBankTransfer).Return(fx.gateway, nil)
	fx.gateway.EXPECT().Initiate(ctx, mock.Anything).Return(&service.GatewayResult{
		Status:               entity.PaymentStatusPendingVerification,
		Instructions:         "Transfer to IBAN DE00 1234 quoting your reference",
		RequiresVerification: true,
	}, nil)
	fx.qrCode.EXPECT().GeneratePaymentQR(mock.MatchedBy(func(ref *service.PaymentReference) bool {
		return strings.HasPrefix(ref.ReferenceCode, "EXM-") && ref.Amount.Equal(fx.order.Total) && ref.Currency == "EUR"
	})).Return([]byte("png"), nil)

	result, err := fx.service.CreatePayment(ctx, fx.order.BuyerID, &usecase.CreatePaymentInput{
		OrderID:  fx.order.ID,
		Provider: entity.ProviderBankTransfer,
		Currency: "EUR",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPendingVerification, result.Transaction.Status)
	assert.True(t, result.RequiresVerification)
	assert.Contains(t, result.Instructions, "IBAN")
	assert.Equal(t, []byte("png"), result.QRCodePNG)
	assert.Equal(t, entity.EscrowStatusPending, result.Escrow.Status)
	assert.Equal(t, entity.OrderStatusPending, fx.order.Status)
}

func TestPaymentService_CreatePayment_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		payer   func(fx *paymentFixture) uuid.UUID
		amount  string
		status  entity.OrderStatus
		wantErr error
	}{
		{
			name:    "not the buyer",
			payer:   func(fx *paymentFixture) uuid.UUID { return fx.order.SellerID },
			status:  entity.OrderStatusPending,
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "amount mismatch",
			payer:   func(fx *paymentFixture) uuid.UUID { return fx.order.BuyerID },
			amount:  "200",
			status:  entity.OrderStatusPending,
			wantErr: domainerrors.ErrPaymentAmountMismatch,
		},
		{
			name:    "already paid",
			payer:   func(fx *paymentFixture) uuid.UUID { return fx.order.BuyerID },
			status:  entity.OrderStatusPaid,
			wantErr: domainerrors.ErrInvalidStatusTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPaymentService(t)
			ctx := context.Background()
			fx.order.Status = tt.status
			fx.orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, fx.order.ID).Return(fx.order, nil)
			fx.gateways.EXPECT().Gateway(entity.ProviderCheckout).Return(fx.gateway, nil)

			input := &usecase.CreatePaymentInput{OrderID: fx.order.ID, Provider: entity.ProviderCheckout, Currency: "EUR"}
			if tt.amount != "" {
				input.Amount = decimal.RequireFromString(tt.amount)
			}

			_, err := fx.service.CreatePayment(ctx, tt.payer(fx), input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPaymentService_CreatePayment_UnknownOrder(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	orderID := uuid.New()

	fx.gateways.EXPECT().Gateway(entity.ProviderCash).Return(fx.gateway, nil)
	fx.orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.CreatePayment(ctx, uuid.New(), &usecase.CreatePaymentInput{OrderID: orderID, Provider: entity.ProviderCash})

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestPaymentService_CreatePayment_ProviderNotConfigured(t *testing.T) {
	fx := createTestPaymentService(t)

	fx.gateways.EXPECT().Gateway(entity.ProviderCheckout).Return(nil, service.ErrGatewayNotConfigured)

	_, err := fx.service.CreatePayment(context.Background(), uuid.New(), &usecase.CreatePaymentInput{
		OrderID:  uuid.New(),
		Provider: entity.ProviderCheckout,
	})

	assert.ErrorIs(t, err, domainerrors.ErrPaymentProviderUnavailable)
}

func TestPaymentService_CreatePayment_GatewayFailureMarksTransactionFailed(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	fx.expectStore()

	fx.gateways.EXPECT().Gateway(entity.ProviderCheckout).Return(fx.gateway, nil)
	fx.gateway.EXPECT().Initiate(ctx, mock.Anything).Return(nil, errors.New("checkout: 503"))

	_, err := fx.service.CreatePayment(ctx, fx.order.BuyerID, &usecase.CreatePaymentInput{
		OrderID:  fx.order.ID,
		Provider: entity.ProviderCheckout,
	})

	assert.ErrorIs(t, err, domainerrors.ErrPaymentProviderUnavailable)
	require.NotNil(t, fx.txn)
	assert.Equal(t, entity.PaymentStatusFailed, fx.txn.Status)
	assert.Equal(t, "checkout: 503", fx.txn.FailureReason)
}

func TestPaymentService_ProcessPaymentWebhook_Completed(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	fx.expectStore()
	fx.seedCompleted(entity.PaymentStatusProcessing, entity.ProviderCheckout)
	fx.order.Status = entity.OrderStatusPending
	payload := []byte(`{"id":"evt_1"}`)
	amount := fx.order.Total

	fx.gateways.EXPECT().Gateway(entity.ProviderCheckout).Return(fx.gateway, nil)
	fx.gateway.EXPECT().ParseWebhook(payload, "sig").Return(&service.WebhookNotification{
		EventID:   "evt_1",
		EventType: "payment_captured",
		Reference: "cko_123",
		Status:    entity.PaymentStatusCompleted,
		Amount:    &amount,
		Currency:  "eur",
	}, nil)
	fx.paymentRepo.EXPECT().FindTransactionByReference(ctx, entity.ProviderCheckout, "cko_123").Return(fx.txn, nil)
	fx.paymentRepo.EXPECT().RecordWebhookEvent(ctx, mock.MatchedBy(func(event *entity.PaymentWebhookEvent) bool {
		return event.EventID == "evt_1" && *event.TransactionID == fx.txn.ID && string(event.Payload) == `{"id":"evt_1"}`
	})).Return(nil)

	outcome, err := fx.service.ProcessPaymentWebhook(ctx, entity.ProviderCheckout, payload, "sig")

	require.NoError(t, err)
	assert.False(t, outcome.Duplicate)
	assert.Equal(t, entity.PaymentStatusCompleted, outcome.Status)
	assert.Equal(t, fx.txn.ID, *outcome.TransactionID)
	assert.Equal(t, entity.EscrowStatusFunded, fx.escrow.Status)
	assert.Equal(t, entity.OrderStatusPaid, fx.order.Status)
}

func TestPaymentService_ProcessPaymentWebhook_DuplicateIsNoop(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	fx.seedCompleted(entity.PaymentStatusCompleted, entity.ProviderCheckout)

	fx.gateways.EXPECT().Gateway(entity.ProviderCheckout).Return(fx.gateway, nil)
	fx.gateway.EXPECT().ParseWebhook(mock.Anything, "sig").Return(&service.WebhookNotification{
		EventID:   "evt_1",
		Reference: "cko_123",
		Status:    entity.PaymentStatusCompleted,
	}, nil)
	fx.paymentRepo.EXPECT().FindTransactionByReference(ctx, entity.ProviderCheckout, "cko_123").Return(fx.txn, nil)
	fx.paymentRepo.EXPECT().RecordWebhookEvent(ctx, mock.Anything).Return(repository.ErrDuplicateWebhookEvent)

	outcome, err := fx.service.ProcessPaymentWebhook(ctx, entity.ProviderCheckout, []byte(`{}`), "sig")

	require.NoError(t, err)
	assert.True(t, outcome.Duplicate)
	assert.Equal(t, entity.PaymentStatusCompleted, outcome.Status)
	fx.paymentRepo.AssertNotCalled(t, "UpdateTransaction", mock.Anything, mock.Anything)
}

func TestPaymentService_ProcessPaymentWebhook_InvalidSignature(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()

	fx.gateways.EXPECT().Gateway(entity.ProviderCheckout).Return(fx.gateway, nil)
	fx.gateway.EXPECT().ParseWebhook(mock.Anything, "forged").
		Return(nil, errors.Wrap(domainerrors.ErrWebhookSignatureInvalid, "hmac mismatch"))
	fx.compliance.EXPECT().RecordSecurityEvent(ctx, mock.MatchedBy(func(in *usecase.SecurityEventInput) bool {
		return in.Type == entity.SecurityEventWebhookSignature && in.Severity == entity.SeverityHigh
	})).Return()

	_, err := fx.service.ProcessPaymentWebhook(ctx, entity.ProviderCheckout, []byte(`{}`), "forged")

	assert.ErrorIs(t, err, domainerrors.ErrWebhookSignatureInvalid)
}

func TestPaymentService_ProcessPaymentWebhook_Failed(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	fx.expectStore()
	fx.seedCompleted(entity.PaymentStatusProcessing, entity.ProviderCheckout)

	fx.gateways.EXPECT().Gateway(entity.ProviderCheckout).Return(fx.gateway, nil)
	fx.gateway.EXPECT().ParseWebhook(mock.Anything, "sig").Return(&service.WebhookNotification{
		EventID:     "evt_2",
		Reference:   "EXM-ABCD2345",
		Status:      entity.PaymentStatusFailed,
		FailureCode: "card_declined",
	}, nil)
	fx.paymentRepo.EXPECT().FindTransactionByReference(ctx, entity.ProviderCheckout, "EXM-ABCD2345").Return(fx.txn, nil)
	fx.paymentRepo.EXPECT().RecordWebhookEvent(ctx, mock.Anything).Return(nil)

	outcome, err := fx.service.ProcessPaymentWebhook(ctx, entity.ProviderCheckout, []byte(`{}`), "sig")

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusFailed, outcome.Status)
	assert.Equal(t, "card_declined", fx.txn.FailureReason)
	assert.Equal(t, entity.EscrowStatusRefunded, fx.escrow.Status)
	assert.Equal(t, "payment failed", fx.escrow.RefundReason)
}

func TestPaymentService_ProcessPaymentWebhook_AmountMismatch(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	fx.expectStore()
	fx.seedCompleted(entity.PaymentStatusProcessing, entity.ProviderCheckout)
	wrong := decimal.NewFromInt(1)

	fx.gateways.EXPECT().Gateway(entity.ProviderCheckout).Return(fx.gateway, nil)
	fx.gateway.EXPECT().ParseWebhook(mock.Anything, "sig").Return(&service.WebhookNotification{
		EventID:   "evt_3",
		Reference: "cko_123",
		Status:    entity.PaymentStatusCompleted,
		Amount:    &wrong,
	}, nil)
	fx.paymentRepo.EXPECT().FindTransactionByReference(ctx, entity.ProviderCheckout, "cko_123").Return(fx.txn, nil)
	fx.paymentRepo.EXPECT().RecordWebhookEvent(ctx, mock.Anything).Return(nil)

	_, err := fx.service.ProcessPaymentWebhook(ctx, entity.ProviderCheckout, []byte(`{}`), "sig")

	assert.ErrorIs(t, err, domainerrors.ErrPaymentAmountMismatch)
	assert.Equal(t, entity.PaymentStatusProcessing, fx.txn.Status)
}

func TestPaymentService_VerifyPayment(t *testing.T) {
	t.Run("seller approves", func(t *testing.T) {
		fx := createTestPaymentService(t)
		fx.expectStore()
		fx.seedCompleted(entity.PaymentStatusPendingVerification, entity.ProviderBankTransfer)
		fx.order.Status = entity.OrderStatusPending

		txn, err := fx.service.VerifyPayment(context.Background(), usecase.Actor{ID: fx.order.SellerID}, fx.txn.ID, true, "")

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentStatusCompleted, txn.Status)
		assert.Equal(t, entity.EscrowStatusFunded, fx.escrow.Status)
		assert.Equal(t, entity.OrderStatusPaid, fx.order.Status)
	})

	t.Run("admin rejects", func(t *testing.T) {
		fx := createTestPaymentService(t)
		fx.expectStore()
		fx.seedCompleted(entity.PaymentStatusPendingVerification, entity.ProviderCash)
		admin := usecase.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}

		txn, err := fx.service.VerifyPayment(context.Background(), admin, fx.txn.ID, false, " no cash received ")

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentStatusFailed, txn.Status)
		assert.Equal(t, "no cash received", txn.FailureReason)
		assert.Equal(t, entity.EscrowStatusRefunded, fx.escrow.Status)
	})

	t.Run("buyer cannot verify", func(t *testing.T) {
		fx := createTestPaymentService(t)
		fx.expectStore()
		fx.seedCompleted(entity.PaymentStatusPendingVerification, entity.ProviderCash)

		_, err := fx.service.VerifyPayment(context.Background(), usecase.Actor{ID: fx.order.BuyerID}, fx.txn.ID, true, "")

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("gateway payments are not verified manually", func(t *testing.T) {
		fx := createTestPaymentService(t)
		fx.expectStore()
		fx.seedCompleted(entity.PaymentStatusProcessing, entity.ProviderCheckout)

		_, err := fx.service.VerifyPayment(context.Background(), usecase.Actor{ID: fx.order.SellerID}, fx.txn.ID, true, "")

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestPaymentService_RefundPayment(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	fx.expectStore()
	fx.seedCompleted(entity.PaymentStatusCompleted, entity.ProviderCheckout)

	fx.gateways.EXPECT().Gateway(entity.ProviderCheckout).Return(fx.gateway, nil)
	fx.gateway.EXPECT().Refund(ctx, fx.txn, "out of stock").
		RunAndReturn(func(_ context.Context, txn *entity.PaymentTransaction, _ string) error {
			assert.Equal(t, entity.PaymentStatusRefunding, txn.Status)

			return nil
		}).Once()

	txn, err := fx.service.RefundPayment(ctx, usecase.Actor{ID: fx.order.SellerID}, fx.txn.ID, "out of stock")

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusRefunded, txn.Status)
	assert.Equal(t, entity.EscrowStatusRefunded, fx.escrow.Status)
	assert.Equal(t, "out of stock", fx.escrow.RefundReason)

	// A retried request returns the settled refund without calling the provider again.
	again, err := fx.service.RefundPayment(ctx, usecase.Actor{ID: fx.order.SellerID}, fx.txn.ID, "out of stock")

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusRefunded, again.Status)
}

func TestPaymentService_RefundPayment_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		status  entity.PaymentStatus
		escrow  entity.EscrowStatus
		actor   func(fx *paymentFixture) uuid.UUID
		wantErr error
	}{
		{
			name:    "only completed payments",
			status:  entity.PaymentStatusPendingVerification,
			escrow:  entity.EscrowStatusPending,
			actor:   func(fx *paymentFixture) uuid.UUID { return fx.order.SellerID },
			wantErr: domainerrors.ErrInvalidStatusTransition,
		},
		{
			name:    "refund already in flight",
			status:  entity.PaymentStatusRefunding,
			escrow:  entity.EscrowStatusFunded,
			actor:   func(fx *paymentFixture) uuid.UUID { return fx.order.SellerID },
			wantErr: domainerrors.ErrInvalidStatusTransition,
		},
		{
			name:    "escrow already released",
			status:  entity.PaymentStatusCompleted,
			escrow:  entity.EscrowStatusReleased,
			actor:   func(fx *paymentFixture) uuid.UUID { return fx.order.SellerID },
			wantErr: domainerrors.ErrInvalidStatusTransition,
		},
		{
			name:    "buyer cannot refund",
			status:  entity.PaymentStatusCompleted,
			escrow:  entity.EscrowStatusFunded,
			actor:   func(fx *paymentFixture) uuid.UUID { return fx.order.BuyerID },
			wantErr: domainerrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPaymentService(t)
			fx.expectStore()
			fx.seedCompleted(tt.status, entity.ProviderCheckout)
			fx.escrow.Status = tt.escrow

			_, err := fx.service.RefundPayment(context.Background(), usecase.Actor{ID: tt.actor(fx)}, fx.txn.ID, "")

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.status, fx.txn.Status)
			assert.Equal(t, tt.escrow, fx.escrow.Status)
			fx.paymentRepo.AssertNotCalled(t, "UpdateTransaction", mock.Anything, mock.Anything)
		})
	}
}

func TestPaymentService_RefundPayment_GatewayFailureReleasesClaim(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	fx.expectStore()
	fx.seedCompleted(entity.PaymentStatusCompleted, entity.ProviderCheckout)

	fx.gateways.EXPECT().Gateway(entity.ProviderCheckout).Return(fx.gateway, nil)
	fx.gateway.EXPECT().Refund(ctx, fx.txn, "damaged").Return(errors.New("checkout: 502")).Once()

	_, err := fx.service.RefundPayment(ctx, usecase.Actor{ID: fx.order.SellerID}, fx.txn.ID, "damaged")

	assert.ErrorIs(t, err, domainerrors.ErrPaymentProviderUnavailable)
	assert.Equal(t, entity.PaymentStatusCompleted, fx.txn.Status)
	assert.Equal(t, entity.EscrowStatusFunded, fx.escrow.Status)
}

func TestPaymentService_CreatePayment_OpenTransactionRejected(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	open := &entity.PaymentTransaction{ID: uuid.New(), OrderID: fx.order.ID, Status: entity.PaymentStatusProcessing}

	fx.gateways.EXPECT().Gateway(entity.ProviderCheckout).Return(fx.gateway, nil)
	fx.orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, fx.order.ID).Return(fx.order, nil)
	fx.paymentRepo.EXPECT().FindOpenTransactionByOrder(ctx, fx.order.ID).Return(open, nil)

	_, err := fx.service.CreatePayment(ctx, fx.order.BuyerID, &usecase.CreatePaymentInput{
		OrderID:  fx.order.ID,
		Provider: entity.ProviderCheckout,
	})

	assert.ErrorIs(t, err, domainerrors.ErrPaymentInProgress)
	assert.Contains(t, err.Error(), open.ID.String())
}

func TestPaymentService_ProcessPaymentWebhook_FundsEscrowOfTransaction(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	fx.seedCompleted(entity.PaymentStatusProcessing, entity.ProviderCheckout)
	fx.order.Status = entity.OrderStatusPending
	current := fx.escrow
	staleTxn := uuid.New()
	stale := &entity.EscrowAccount{ID: uuid.New(), OrderID: fx.order.ID, TransactionID: &staleTxn, Status: entity.EscrowStatusPending}

	// Lookups by order or id see the newer stale row; only the transaction link finds the right one.
	fx.escrowRepo.EXPECT().FindEscrowByTransactionIDForUpdate(mock.Anything, fx.txn.ID).Return(current, nil)
	fx.escrow = stale
	fx.expectStore()

	fx.gateways.EXPECT().Gateway(entity.ProviderCheckout).Return(fx.gateway, nil)
	fx.gateway.EXPECT().ParseWebhook(mock.Anything, "sig").Return(&service.WebhookNotification{
		EventID:   "evt_7",
		Reference: "cko_123",
		Status:    entity.PaymentStatusCompleted,
	}, nil)
	fx.paymentRepo.EXPECT().FindTransactionByReference(ctx, entity.ProviderCheckout, "cko_123").Return(fx.txn, nil)
	fx.paymentRepo.EXPECT().RecordWebhookEvent(ctx, mock.Anything).Return(nil)

	_, err := fx.service.ProcessPaymentWebhook(ctx, entity.ProviderCheckout, []byte(`{}`), "sig")

	require.NoError(t, err)
	assert.Equal(t, entity.EscrowStatusFunded, current.Status)
	assert.Equal(t, entity.EscrowStatusPending, stale.Status)
}

func TestPaymentService_ProcessPaymentWebhook_CompletedAfterCancel(t *testing.T) {
	const reason = "order was cancelled before the payment completed"

	t.Run("refunded through the gateway", func(t *testing.T) {
		fx := createTestPaymentService(t)
		ctx := context.Background()
		fx.expectStore()
		fx.seedCompleted(entity.PaymentStatusProcessing, entity.ProviderCheckout)
		fx.order.Status = entity.OrderStatusCancelled

		fx.gateways.EXPECT().Gateway(entity.ProviderCheckout).Return(fx.gateway, nil)
		fx.gateway.EXPECT().ParseWebhook(mock.Anything, "sig").Return(&service.WebhookNotification{
			EventID:   "evt_8",
			Reference: "cko_123",
			Status:    entity.PaymentStatusCompleted,
		}, nil)
		fx.paymentRepo.EXPECT().FindTransactionByReference(ctx, entity.ProviderCheckout, "cko_123").Return(fx.txn, nil)
		fx.paymentRepo.EXPECT().RecordWebhookEvent(ctx, mock.Anything).Return(nil)
		fx.gateway.EXPECT().Refund(ctx, fx.txn, reason).Return(nil).Once()
		fx.compliance.EXPECT().RecordSecurityEvent(ctx, mock.MatchedBy(func(in *usecase.SecurityEventInput) bool {
			return in.Type == entity.SecurityEventPaymentAfterCancel &&
				in.Severity == entity.SeverityHigh &&
				*in.UserID == fx.order.BuyerID &&
				in.Details["transaction_id"] == fx.txn.ID.String()
		})).Return().Once()

		outcome, err := fx.service.ProcessPaymentWebhook(ctx, entity.ProviderCheckout, []byte(`{}`), "sig")

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentStatusRefunded, outcome.Status)
		assert.Equal(t, entity.PaymentStatusRefunded, fx.txn.Status)
		assert.Equal(t, entity.EscrowStatusRefunded, fx.escrow.Status)
		assert.Equal(t, entity.OrderStatusCancelled, fx.order.Status)
		fx.orderRepo.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything)
	})

	t.Run("gateway down leaves it completed for a manual refund", func(t *testing.T) {
		fx := createTestPaymentService(t)
		ctx := context.Background()
		fx.expectStore()
		fx.seedCompleted(entity.PaymentStatusPendingVerification, entity.ProviderBankTransfer)
		fx.order.Status = entity.OrderStatusCancelled

		fx.gateways.EXPECT().Gateway(entity.ProviderBankTransfer).Return(fx.gateway, nil)
		fx.gateway.EXPECT().Refund(ctx, fx.txn, reason).Return(errors.New("bank api down")).Once()
		fx.compliance.EXPECT().RecordSecurityEvent(ctx, mock.MatchedBy(func(in *usecase.SecurityEventInput) bool {
			return in.Type == entity.SecurityEventPaymentAfterCancel
		})).Return().Once()

		txn, err := fx.service.VerifyPayment(ctx, usecase.Actor{ID: fx.order.SellerID}, fx.txn.ID, true, "")

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentStatusCompleted, txn.Status)
		assert.Equal(t, entity.PaymentStatusCompleted, fx.txn.Status)
		assert.Equal(t, entity.EscrowStatusPending, fx.escrow.Status)
		assert.Equal(t, entity.OrderStatusCancelled, fx.order.Status)
	})
}

func TestPaymentService_ProcessPaymentWebhook_IgnoredWhileRefunding(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	fx.expectStore()
	fx.seedCompleted(entity.PaymentStatusRefunding, entity.ProviderCheckout)

	fx.gateways.EXPECT().Gateway(entity.ProviderCheckout).Return(fx.gateway, nil)
	fx.gateway.EXPECT().ParseWebhook(mock.Anything, "sig").Return(&service.WebhookNotification{
		EventID:   "evt_9",
		Reference: "cko_123",
		Status:    entity.PaymentStatusCompleted,
	}, nil)
	fx.paymentRepo.EXPECT().FindTransactionByReference(ctx, entity.ProviderCheckout, "cko_123").Return(fx.txn, nil)
	fx.paymentRepo.EXPECT().RecordWebhookEvent(ctx, mock.Anything).Return(nil)

	outcome, err := fx.service.ProcessPaymentWebhook(ctx, entity.ProviderCheckout, []byte(`{}`), "sig")

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusRefunding, outcome.Status)
	fx.paymentRepo.AssertNotCalled(t, "UpdateTransaction", mock.Anything, mock.Anything)
}

func TestPaymentService_MetricsRecordedAfterCommit(t *testing.T) {
	completed := func(fx *paymentFixture) {
		fx.gateways.EXPECT().Gateway(entity.ProviderCheckout).Return(fx.gateway, nil)
		fx.gateway.EXPECT().ParseWebhook(mock.Anything, "sig").Return(&service.WebhookNotification{
			EventID:   "evt_10",
			Reference: "cko_123",
			Status:    entity.PaymentStatusCompleted,
		}, nil)
		fx.paymentRepo.EXPECT().FindTransactionByReference(mock.Anything, entity.ProviderCheckout, "cko_123").Return(fx.txn, nil)
		fx.paymentRepo.EXPECT().RecordWebhookEvent(mock.Anything, mock.Anything).Return(nil)
	}

	t.Run("rolled back transaction records nothing", func(t *testing.T) {
		fx := createTestPaymentService(t)
		metrics := mockSvc.NewMockMetricsRecorder(t)
		fx.service.metrics = metrics
		fx.seedCompleted(entity.PaymentStatusProcessing, entity.ProviderCheckout)
		fx.order.Status = entity.OrderStatusPending
		fx.orderRepo.EXPECT().UpdateOrder(mock.Anything, fx.order).Return(errors.New("deadlock detected"))
		fx.expectStore()
		completed(fx)

		_, err := fx.service.ProcessPaymentWebhook(context.Background(), entity.ProviderCheckout, []byte(`{}`), "sig")

		require.Error(t, err)
		metrics.AssertNotCalled(t, "PaymentTransition", mock.Anything, mock.Anything)
		metrics.AssertNotCalled(t, "EscrowTransition", mock.Anything, mock.Anything)
	})

	t.Run("committed transaction records each change once", func(t *testing.T) {
		fx := createTestPaymentService(t)
		metrics := mockSvc.NewMockMetricsRecorder(t)
		fx.service.metrics = metrics
		fx.seedCompleted(entity.PaymentStatusProcessing, entity.ProviderCheckout)
		fx.order.Status = entity.OrderStatusPending
		fx.expectStore()
		completed(fx)

		inTx := false
		txManager := mockRepo.NewMockTransactionManager(t)
		txManager.EXPECT().
			Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				factory := mockRepo.NewMockRepositoryFactory(t)
				factory.EXPECT().NewPaymentRepository().Return(fx.paymentRepo).Maybe()
				factory.EXPECT().NewOrderRepository().Return(fx.orderRepo).Maybe()
				factory.EXPECT().NewEscrowRepository().Return(fx.escrowRepo).Maybe()

				inTx = true
				defer func() { inTx = false }()

				return fn(factory)
			})
		fx.service.txManager = txManager

		metrics.EXPECT().PaymentTransition(string(entity.ProviderCheckout), string(entity.PaymentStatusCompleted)).
			Run(func(string, string) { assert.False(t, inTx) }).Return().Once()
		metrics.EXPECT().EscrowTransition(string(entity.EscrowStatusPending), string(entity.EscrowStatusFunded)).
			Run(func(string, string) { assert.False(t, inTx) }).Return().Once()

		_, err := fx.service.ProcessPaymentWebhook(context.Background(), entity.ProviderCheckout, []byte(`{}`), "sig")

		require.NoError(t, err)
	})
}

func TestPaymentService_GetPayment(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	fx.seedCompleted(entity.PaymentStatusCompleted, entity.ProviderMock)

	fx.paymentRepo.EXPECT().FindTransactionByID(ctx, fx.txn.ID).Return(fx.txn, nil)
	missing := uuid.New()
	fx.paymentRepo.EXPECT().FindTransactionByID(ctx, missing).Return(nil, repository.ErrPaymentNotFound)

	txn, err := fx.service.GetPayment(ctx, usecase.Actor{ID: fx.order.BuyerID}, fx.txn.ID)
	require.NoError(t, err)
	assert.Equal(t, fx.txn.ID, txn.ID)

	_, err = fx.service.GetPayment(ctx, usecase.Actor{ID: uuid.New()}, fx.txn.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.GetPayment(ctx, usecase.Actor{ID: fx.order.BuyerID}, missing)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)
}

func TestPaymentService_ListPayments_ClampsPage(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.paymentRepo.EXPECT().ListTransactionsByUser(ctx, userID, 100, 0).Return([]*entity.PaymentTransaction{}, nil)

	txns, err := fx.service.ListPayments(ctx, userID, 1000, -5)

	require.NoError(t, err)
	assert.Empty(t, txns)
}
