package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentProvider selects the gateway used for a transaction.
type PaymentProvider string

const (
	ProviderMock         PaymentProvider = "MOCK"
	ProviderCheckout     PaymentProvider = "CHECKOUT"
	ProviderCash         PaymentProvider = "CASH"
	ProviderBankTransfer PaymentProvider = "BANK_TRANSFER"
)

// IsValid checks if the provider is a known value.
func (p PaymentProvider) IsValid() bool {
	switch p {
	case ProviderMock, ProviderCheckout, ProviderCash, ProviderBankTransfer:
		return true
	default:
		return false
	}
}

// RequiresManualVerification reports whether a human confirms receipt of funds.
func (p PaymentProvider) RequiresManualVerification() bool {
	return p == ProviderCash || p == ProviderBankTransfer
}

// PaymentStatus is the state of a payment transaction.
type PaymentStatus string

const (
	PaymentStatusPending             PaymentStatus = "PENDING"
	PaymentStatusProcessing          PaymentStatus = "PROCESSING"
	PaymentStatusPendingVerification PaymentStatus = "PENDING_VERIFICATION"
	PaymentStatusCompleted           PaymentStatus = "COMPLETED"
	PaymentStatusFailed              PaymentStatus = "FAILED"
	PaymentStatusCancelled           PaymentStatus = "CANCELLED"
	PaymentStatusRefunding           PaymentStatus = "REFUNDING" // Refund claimed, gateway call in flight.
	PaymentStatusRefunded            PaymentStatus = "REFUNDED"
)

// IsFinal reports whether the status can no longer be changed by a webhook.
// REFUNDING belongs to the refund flow until it settles.
func (s PaymentStatus) IsFinal() bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusCancelled,
		PaymentStatusRefunding, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the payment may still complete.
func (s PaymentStatus) IsOpen() bool {
	return s == PaymentStatusPending || s == PaymentStatusProcessing || s == PaymentStatusPendingVerification
}

// PaymentTransaction is one attempt to pay for an order.
type PaymentTransaction struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       uuid.UUID       `json:"order_id"`
	PayerID       uuid.UUID       `json:"payer_id"`
	PayeeID       uuid.UUID       `json:"payee_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Provider      PaymentProvider `json:"provider"`
	ProviderRef   string          `json:"provider_ref,omitempty"`   // Gateway session or charge id.
	ReferenceCode string          `json:"reference_code"`           // Human-readable code quoted on transfers.
	Status        PaymentStatus   `json:"status"`
	RedirectURL   string          `json:"redirect_url,omitempty"`
	Instructions  string          `json:"instructions,omitempty"`
	FailureReason string          `json:"failure_reason,omitempty"`
	Metadata      map[string]any  `json:"metadata,omitempty"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PaymentWebhookEvent is a provider callback kept for idempotency and audit.
type PaymentWebhookEvent struct {
	ID            uuid.UUID       `json:"id"`
	Provider      PaymentProvider `json:"provider"`
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	TransactionID *uuid.UUID      `json:"transaction_id,omitempty"`
	Payload       []byte          `json:"-"`
	ProcessedAt   time.Time       `json:"processed_at"`
}
