package service

import (
	"context"

	"expatmart/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrGatewayNotConfigured is returned when no gateway serves a provider.
var ErrGatewayNotConfigured = errors.New("payment gateway not configured")

// GatewayResult is what a gateway returns when a payment is initiated.
type GatewayResult struct {
	Status               entity.PaymentStatus
	ProviderRef          string
	RedirectURL          string
	Instructions         string
	RequiresVerification bool
	Metadata             map[string]any
}

// WebhookNotification is a verified and parsed provider callback.
type WebhookNotification struct {
	EventID     string
	EventType   string
	Reference   string // Provider reference or our reference code.
	Status      entity.PaymentStatus
	Amount      *decimal.Decimal
	Currency    string
	FailureCode string
}

// PaymentGateway is a provider adapter.
type PaymentGateway interface {
	Provider() entity.PaymentProvider
	Initiate(ctx context.Context, tx *entity.PaymentTransaction) (*GatewayResult, error)
	Refund(ctx context.Context, tx *entity.PaymentTransaction, reason string) error

	// ParseWebhook verifies the signature and extracts the event.
	ParseWebhook(payload []byte, signature string) (*WebhookNotification, error)
}

// GatewayResolver looks up the adapter for a provider.
type GatewayResolver interface {
	Gateway(provider entity.PaymentProvider) (PaymentGateway, error)
}
