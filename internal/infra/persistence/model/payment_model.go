package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PaymentTransactionModel mirrors the 'payment_transactions' table.
type PaymentTransactionModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID       uuid.UUID         `gorm:"type:uuid;not null;index"`
	PayerID       uuid.UUID         `gorm:"type:uuid;not null;index"`
	PayeeID       uuid.UUID         `gorm:"type:uuid;not null"`
	Amount        decimal.Decimal   `gorm:"type:numeric(18,4);not null"`
	Currency      string            `gorm:"type:char(3);not null"`
	Provider      string            `gorm:"type:varchar(20);not null;index:idx_payment_provider_ref"`
	ProviderRef   string            `gorm:"type:varchar(255);index:idx_payment_provider_ref"`
	ReferenceCode string            `gorm:"type:varchar(32);not null;uniqueIndex"`
	Status        string            `gorm:"type:varchar(30);not null"`
	RedirectURL   string            `gorm:"type:text"`
	Instructions  string            `gorm:"type:text"`
	FailureReason string            `gorm:"type:text"`
	Metadata      datatypes.JSONMap `gorm:"type:jsonb"`
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentTransactionModel) TableName() string {
	return "payment_transactions"
}

// PaymentWebhookEventModel mirrors the 'payment_webhook_events' table.
// (provider, event_id) is unique and makes webhook processing idempotent.
type PaymentWebhookEventModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Provider      string         `gorm:"type:varchar(20);not null;uniqueIndex:idx_webhook_provider_event"`
	EventID       string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_webhook_provider_event"`
	EventType     string         `gorm:"type:varchar(100)"`
	TransactionID *uuid.UUID     `gorm:"type:uuid"`
	Payload       datatypes.JSON `gorm:"type:jsonb"`
	ProcessedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentWebhookEventModel) TableName() string {
	return "payment_webhook_events"
}

// EscrowAccountModel mirrors the 'escrow_accounts' table.
type EscrowAccountModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	TransactionID   *uuid.UUID      `gorm:"type:uuid"`
	BuyerID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	SellerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount          decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	Currency        string          `gorm:"type:char(3);not null"`
	Status          string          `gorm:"type:varchar(20);not null;index"`
	ReleaseCodeHash string          `gorm:"type:varchar(100)"`
	FundedAt        *time.Time
	ReleasedAt      *time.Time
	ReleasedBy      *uuid.UUID `gorm:"type:uuid"`
	RefundedAt      *time.Time
	RefundReason    string     `gorm:"type:text"`
	DisputeReason   string     `gorm:"type:text"`
	DisputeOpenedBy *uuid.UUID `gorm:"type:uuid"`
	DisputeOpenedAt *time.Time
	AutoReleaseAt   *time.Time `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (EscrowAccountModel) TableName() string {
	return "escrow_accounts"
}
