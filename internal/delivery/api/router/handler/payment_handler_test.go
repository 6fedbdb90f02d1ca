package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	mockUsecase "expatmart/internal/mocks/usecase"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPaymentHandler(t *testing.T) (*PaymentHandler, *mockUsecase.MockPaymentUsecase) {
	paymentUC := mockUsecase.NewMockPaymentUsecase(t)

	return NewPaymentHandler(PaymentHandlerParams{
		PaymentUC: paymentUC,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), paymentUC
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	payerID := uuid.New()
	orderID := uuid.New()

	t.Run("normalises provider and currency", func(t *testing.T) {
		h, paymentUC := createTestPaymentHandler(t)
		paymentUC.EXPECT().
			CreatePayment(mock.Anything, payerID, mock.MatchedBy(func(in *usecase.CreatePaymentInput) bool {
				return in.OrderID == orderID &&
					in.Provider == entity.ProviderBankTransfer &&
					in.Currency == "EUR" &&
					in.Amount.Equal(decimal.RequireFromString("120.50"))
			})).
			Return(&usecase.PaymentResult{RequiresVerification: true, ReleaseCode: "482913"}, nil)

		c, rec := newTestContext(http.MethodPost, "/api/v1/payments",
			jsonBody(`{"order_id":"`+orderID.String()+`","provider":"bank_transfer","amount":"120.50","currency":"eur"}`), &payerID)

		require.NoError(t, h.CreatePayment(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"release_code":"482913"`)
	})

	t.Run("unsupported currency never reaches the use case", func(t *testing.T) {
		h, _ := createTestPaymentHandler(t)

		c, rec := newTestContext(http.MethodPost, "/api/v1/payments",
			jsonBody(`{"order_id":"`+orderID.String()+`","provider":"MOCK","currency":"ABC"}`), &payerID)

		require.NoError(t, h.CreatePayment(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, string(env.Error.Details), `"field":"currency"`)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h, _ := createTestPaymentHandler(t)

		c, rec := newTestContext(http.MethodPost, "/api/v1/payments", jsonBody(`{}`), nil)

		require.NoError(t, h.CreatePayment(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestPaymentHandler_Webhook(t *testing.T) {
	payload := `{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_1"}}}`

	t.Run("passes the raw body and signature through", func(t *testing.T) {
		h, paymentUC := createTestPaymentHandler(t)
		txID := uuid.New()
		paymentUC.EXPECT().
			ProcessPaymentWebhook(mock.Anything, entity.ProviderCheckout, []byte(payload), "sha256=abc").
			Return(&usecase.WebhookOutcome{EventID: "evt_1", TransactionID: &txID, Status: entity.PaymentStatusCompleted}, nil)

		c, rec := newTestContext(http.MethodPost, "/webhooks/payments/checkout", jsonBody(payload), nil)
		c.Request().Header.Set("X-Checkout-Signature", "sha256=abc")
		c.SetParamNames("provider")
		c.SetParamValues("checkout")

		require.NoError(t, h.Webhook(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"event_id":"evt_1"`)
	})

	t.Run("bad signature", func(t *testing.T) {
		h, paymentUC := createTestPaymentHandler(t)
		paymentUC.EXPECT().
			ProcessPaymentWebhook(mock.Anything, entity.ProviderCheckout, mock.Anything, "forged").
			Return(nil, errors.WithStack(domainerrors.ErrWebhookSignatureInvalid))

		c, rec := newTestContext(http.MethodPost, "/webhooks/payments/checkout", jsonBody(payload), nil)
		c.Request().Header.Set("X-Signature", "forged")
		c.SetParamNames("provider")
		c.SetParamValues("checkout")

		require.NoError(t, h.Webhook(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "WEBHOOK_SIGNATURE_INVALID", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("empty body", func(t *testing.T) {
		h, _ := createTestPaymentHandler(t)

		c, rec := newTestContext(http.MethodPost, "/webhooks/payments/mock", jsonBody(""), nil)
		c.SetParamNames("provider")
		c.SetParamValues("mock")

		require.NoError(t, h.Webhook(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPaymentHandler_VerifyPayment(t *testing.T) {
	sellerID := uuid.New()
	txID := uuid.New()
	h, paymentUC := createTestPaymentHandler(t)
	paymentUC.EXPECT().
		VerifyPayment(mock.Anything, usecase.Actor{ID: sellerID, Roles: entity.Roles{entity.RoleUser}}, txID, true, "cash received").
		Return(&entity.PaymentTransaction{ID: txID, Status: entity.PaymentStatusCompleted}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/payments/"+txID.String()+"/verify",
		jsonBody(`{"approved":true,"note":"cash received"}`), &sellerID)
	c.SetParamNames("id")
	c.SetParamValues(txID.String())

	require.NoError(t, h.VerifyPayment(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
