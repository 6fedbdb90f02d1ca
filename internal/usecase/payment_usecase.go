package usecase

import (
	"context"

	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePaymentInput starts a payment for an order.
type CreatePaymentInput struct {
	OrderID  uuid.UUID              `json:"order_id" validate:"required"`
	Provider entity.PaymentProvider `json:"provider" validate:"required,oneof=MOCK CHECKOUT CASH BANK_TRANSFER"`
	Amount   decimal.Decimal        `json:"amount"`
	Currency string                 `json:"currency" validate:"required,currency_code"`
}

// PaymentResult is returned to the payer after CreatePayment.
type PaymentResult struct {
	Transaction          *entity.PaymentTransaction `json:"transaction"`
	Escrow               *entity.EscrowAccount      `json:"escrow"`
	RedirectURL          string                     `json:"redirect_url,omitempty"`
	RequiresVerification bool                       `json:"requires_verification"`
	Instructions         string                     `json:"instructions,omitempty"`
	ReleaseCode          string                     `json:"release_code"`           // Shown once; the buyer hands it to the seller on delivery.
	QRCodePNG            []byte                     `json:"qr_png,omitempty"`
}

// WebhookOutcome reports what a webhook changed.
type WebhookOutcome struct {
	EventID       string               `json:"event_id"`
	Duplicate     bool                 `json:"duplicate"`
	TransactionID *uuid.UUID           `json:"transaction_id,omitempty"`
	Status        entity.PaymentStatus `json:"status,omitempty"`
}

// PaymentUsecase orchestrates payments across providers.
type PaymentUsecase interface {
	CreatePayment(ctx context.Context, payerID uuid.UUID, input *CreatePaymentInput) (*PaymentResult, error)

	// ProcessPaymentWebhook verifies and applies a provider callback exactly once.
	ProcessPaymentWebhook(ctx context.Context, provider entity.PaymentProvider, payload []byte, signature string) (*WebhookOutcome, error)

	// VerifyPayment confirms or rejects a CASH or BANK_TRANSFER payment.
	VerifyPayment(ctx context.Context, actor Actor, transactionID uuid.UUID, approved bool, note string) (*entity.PaymentTransaction, error)

	RefundPayment(ctx context.Context, actor Actor, transactionID uuid.UUID, reason string) (*entity.PaymentTransaction, error)
	GetPayment(ctx context.Context, actor Actor, transactionID uuid.UUID) (*entity.PaymentTransaction, error)
	ListPayments(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.PaymentTransaction, error)
}
