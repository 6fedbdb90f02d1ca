package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"expatmart/config"
	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec_test"

func newTestTransaction(provider entity.PaymentProvider) *entity.PaymentTransaction {
	return &entity.PaymentTransaction{
		ID:            uuid.New(),
		OrderID:       uuid.New(),
		Amount:        decimal.RequireFromString("125.5"),
		Currency:      "AED",
		Provider:      provider,
		ReferenceCode: "EXM-7K2Q9XPA",
		Status:        entity.PaymentStatusPending,
	}
}

func sign(payload []byte) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write(payload)

	return hex.EncodeToString(mac.Sum(nil))
}

func TestGatewayResolver(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name      string
		payments  *config.PaymentsConfig
		provider  entity.PaymentProvider
		wantFound bool
	}{
		{name: "cash always on", payments: nil, provider: entity.ProviderCash, wantFound: true},
		{name: "bank transfer always on", payments: &config.PaymentsConfig{}, provider: entity.ProviderBankTransfer, wantFound: true},
		{name: "mock disabled", payments: &config.PaymentsConfig{}, provider: entity.ProviderMock, wantFound: false},
		{name: "mock enabled", payments: &config.PaymentsConfig{MockEnabled: true}, provider: entity.ProviderMock, wantFound: true},
		{name: "checkout without key", payments: &config.PaymentsConfig{Checkout: config.CheckoutConfig{BaseURL: "https://pay.example"}}, provider: entity.ProviderCheckout, wantFound: false},
		{
			name:      "checkout configured",
			payments:  &config.PaymentsConfig{Checkout: config.CheckoutConfig{BaseURL: "https://pay.example", APIKey: "sk"}},
			provider:  entity.ProviderCheckout,
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewGatewayResolver(&config.Config{Payments: tt.payments}, logger)

			gateway, err := resolver.Gateway(tt.provider)

			if !tt.wantFound {
				assert.ErrorIs(t, err, service.ErrGatewayNotConfigured)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.provider, gateway.Provider())
		})
	}
}

func TestMockGateway_Initiate(t *testing.T) {
	gateway := NewMockGateway(&config.PaymentsConfig{SuccessURL: "https://app.expatmart.test/pay/done?src=app"})
	tx := newTestTransaction(entity.ProviderMock)

	result, err := gateway.Initiate(context.Background(), tx)

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, result.Status)
	assert.Equal(t, "mock_"+tx.ID.String(), result.ProviderRef)
	assert.Contains(t, result.RedirectURL, "src=app")
	assert.Contains(t, result.RedirectURL, "transaction_id="+tx.ID.String())
	assert.False(t, result.RequiresVerification)
}

func TestCheckoutGateway_Initiate(t *testing.T) {
	tx := newTestTransaction(entity.ProviderCheckout)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/sessions", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		var req checkoutSessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "EXM-7K2Q9XPA", req.Reference)
		assert.Equal(t, "125.50", req.Amount)
		assert.Equal(t, "aed", req.Currency)
		assert.Equal(t, tx.ID.String(), req.Metadata["transaction_id"])

		_, _ = w.Write([]byte(`{"id":"cs_123","url":"https://pay.example/c/cs_123","expires_at":"2026-01-01T00:00:00Z"}`))
	}))
	defer server.Close()

	gateway := NewCheckoutGateway(&config.PaymentsConfig{
		SuccessURL: "https://app.expatmart.test/success",
		Checkout:   config.CheckoutConfig{BaseURL: server.URL + "/v1/", APIKey: "sk_test"},
	})

	result, err := gateway.Initiate(context.Background(), tx)

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusProcessing, result.Status)
	assert.Equal(t, "cs_123", result.ProviderRef)
	assert.Equal(t, "https://pay.example/c/cs_123", result.RedirectURL)
}

func TestCheckoutGateway_Initiate_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"currency not enabled"}}`))
	}))
	defer server.Close()

	gateway := NewCheckoutGateway(&config.PaymentsConfig{Checkout: config.CheckoutConfig{BaseURL: server.URL, APIKey: "sk"}})

	_, err := gateway.Initiate(context.Background(), newTestTransaction(entity.ProviderCheckout))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=400 currency not enabled")
}

func TestCheckoutGateway_Refund(t *testing.T) {
	var got checkoutRefundRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/refunds", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":"re_1"}`))
	}))
	defer server.Close()

	gateway := NewCheckoutGateway(&config.PaymentsConfig{Checkout: config.CheckoutConfig{BaseURL: server.URL, APIKey: "sk"}})
	tx := newTestTransaction(entity.ProviderCheckout)
	tx.ProviderRef = "cs_123"

	require.NoError(t, gateway.Refund(context.Background(), tx, "item not delivered"))
	assert.Equal(t, checkoutRefundRequest{SessionID: "cs_123", Amount: "125.50", Reason: "item not delivered"}, got)

	tx.ProviderRef = ""
	assert.Error(t, gateway.Refund(context.Background(), tx, "again"))
}

func TestCheckoutGateway_ParseWebhook(t *testing.T) {
	gateway := NewCheckoutGateway(&config.PaymentsConfig{Checkout: config.CheckoutConfig{WebhookSecret: testWebhookSecret}})

	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_123","reference":"EXM-7K2Q9XPA","status":"paid","amount":"125.50","currency":"aed"}}}`)

	tests := []struct {
		name      string
		signature string
	}{
		{name: "bare hex", signature: sign(payload)},
		{name: "prefixed", signature: "sha256=" + sign(payload)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notification, err := gateway.ParseWebhook(payload, tt.signature)

			require.NoError(t, err)
			assert.Equal(t, "evt_1", notification.EventID)
			assert.Equal(t, "checkout.session.completed", notification.EventType)
			assert.Equal(t, "EXM-7K2Q9XPA", notification.Reference)
			assert.Equal(t, entity.PaymentStatusCompleted, notification.Status)
			assert.Equal(t, "AED", notification.Currency)
			require.NotNil(t, notification.Amount)
			assert.True(t, notification.Amount.Equal(decimal.RequireFromString("125.5")))
		})
	}
}

func TestCheckoutGateway_ParseWebhook_StatusFromEventType(t *testing.T) {
	gateway := NewCheckoutGateway(&config.PaymentsConfig{Checkout: config.CheckoutConfig{WebhookSecret: testWebhookSecret}})
	payload := []byte(`{"id":"evt_2","type":"checkout.session.expired","data":{"id":"cs_9"}}`)

	notification, err := gateway.ParseWebhook(payload, sign(payload))

	require.NoError(t, err)
	assert.Equal(t, "cs_9", notification.Reference)
	assert.Equal(t, entity.PaymentStatusCancelled, notification.Status)
	assert.Nil(t, notification.Amount)
}

func TestCheckoutGateway_ParseWebhook_Rejects(t *testing.T) {
	gateway := NewCheckoutGateway(&config.PaymentsConfig{Checkout: config.CheckoutConfig{WebhookSecret: testWebhookSecret}})
	valid := []byte(`{"id":"evt_1","type":"x","data":{"id":"cs_1","status":"paid"}}`)

	_, err := gateway.ParseWebhook(valid, sign([]byte(`{"tampered":true}`)))
	assert.ErrorIs(t, err, domainerrors.ErrWebhookSignatureInvalid)

	_, err = gateway.ParseWebhook(valid, "not-hex")
	assert.ErrorIs(t, err, domainerrors.ErrWebhookSignatureInvalid)

	_, err = gateway.ParseWebhook(valid, "")
	assert.ErrorIs(t, err, domainerrors.ErrWebhookSignatureInvalid)

	unknown := []byte(`{"id":"evt_3","type":"x","data":{"id":"cs_1","status":"disputed"}}`)
	_, err = gateway.ParseWebhook(unknown, sign(unknown))
	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrWebhookSignatureInvalid))
}

func TestOfflineGateways_Initiate(t *testing.T) {
	cfg := &config.PaymentsConfig{
		BankTransfer: config.BankTransferConfig{
			BankName:      "Emirates NBD",
			AccountName:   "ExpatMart FZ-LLC",
			AccountNumber: "1015553333",
			IBAN:          "AE070331234567890123456",
		},
	}
	tx := newTestTransaction(entity.ProviderBankTransfer)

	bank, err := NewBankTransferGateway(cfg).Initiate(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPendingVerification, bank.Status)
	assert.True(t, bank.RequiresVerification)
	assert.Equal(t, tx.ReferenceCode, bank.ProviderRef)
	assert.Contains(t, bank.Instructions, "Emirates NBD")
	assert.Contains(t, bank.Instructions, "IBAN AE070331234567890123456, SWIFT -.")
	assert.Contains(t, bank.Instructions, "reference EXM-7K2Q9XPA")

	cash, err := NewCashGateway(&config.PaymentsConfig{Cash: config.CashConfig{Instructions: "Hand {amount} to the courier ({reference})"}}).
		Initiate(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPendingVerification, cash.Status)
	assert.Contains(t, cash.Instructions, "(EXM-7K2Q9XPA)")

	_, err = NewCashGateway(cfg).ParseWebhook([]byte(`{}`), "")
	assert.Error(t, err)
}
