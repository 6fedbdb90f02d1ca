package repository

import (
	"context"

	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrPaymentNotFound is returned when a payment transaction is not found.
	ErrPaymentNotFound = errors.New("payment transaction not found")
	// ErrDuplicateWebhookEvent is returned when a provider event was already processed.
	ErrDuplicateWebhookEvent = errors.New("webhook event already processed")
)

// PaymentRepository defines persistence for payment transactions and webhook events.
type PaymentRepository interface {
	CreateTransaction(ctx context.Context, tx *entity.PaymentTransaction) error
	FindTransactionByID(ctx context.Context, id uuid.UUID) (*entity.PaymentTransaction, error)

	// FindTransactionByIDForUpdate locks the row until the surrounding transaction ends.
	FindTransactionByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.PaymentTransaction, error)

	// FindTransactionByReference matches either the provider reference or our reference code.
	FindTransactionByReference(ctx context.Context, provider entity.PaymentProvider, reference string) (*entity.PaymentTransaction, error)

	// FindOpenTransactionByOrder returns a PENDING, PROCESSING or
	// PENDING_VERIFICATION transaction of the order, or ErrPaymentNotFound.
	FindOpenTransactionByOrder(ctx context.Context, orderID uuid.UUID) (*entity.PaymentTransaction, error)

	UpdateTransaction(ctx context.Context, tx *entity.PaymentTransaction) error
	ListTransactionsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.PaymentTransaction, error)

	// RecordWebhookEvent stores a provider event; a repeated (provider, event_id)
	// yields ErrDuplicateWebhookEvent.
	RecordWebhookEvent(ctx context.Context, event *entity.PaymentWebhookEvent) error
}
