package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EscrowStatus is PENDING → FUNDED → RELEASED | REFUNDED | DISPUTED.
// A disputed escrow is settled by release or refund.
type EscrowStatus string

const (
	EscrowStatusPending  EscrowStatus = "PENDING"
	EscrowStatusFunded   EscrowStatus = "FUNDED"
	EscrowStatusReleased EscrowStatus = "RELEASED"
	EscrowStatusRefunded EscrowStatus = "REFUNDED"
	EscrowStatusDisputed EscrowStatus = "DISPUTED"
)

var escrowTransitions = map[EscrowStatus][]EscrowStatus{
	EscrowStatusPending:  {EscrowStatusFunded, EscrowStatusRefunded},
	EscrowStatusFunded:   {EscrowStatusReleased, EscrowStatusRefunded, EscrowStatusDisputed},
	EscrowStatusDisputed: {EscrowStatusReleased, EscrowStatusRefunded},
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s EscrowStatus) CanTransitionTo(next EscrowStatus) bool {
	for _, allowed := range escrowTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// EscrowAccount holds buyer funds until the order is settled.
type EscrowAccount struct {
	ID              uuid.UUID       `json:"id"`
	OrderID         uuid.UUID       `json:"order_id"`
	TransactionID   *uuid.UUID      `json:"transaction_id,omitempty"`
	BuyerID         uuid.UUID       `json:"buyer_id"`
	SellerID        uuid.UUID       `json:"seller_id"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Status          EscrowStatus    `json:"status"`
	ReleaseCodeHash string          `json:"-"`
	FundedAt        *time.Time      `json:"funded_at,omitempty"`
	ReleasedAt      *time.Time      `json:"released_at,omitempty"`
	ReleasedBy      *uuid.UUID      `json:"released_by,omitempty"`
	RefundedAt      *time.Time      `json:"refunded_at,omitempty"`
	RefundReason    string          `json:"refund_reason,omitempty"`
	DisputeReason   string          `json:"dispute_reason,omitempty"`
	DisputeOpenedBy *uuid.UUID      `json:"dispute_opened_by,omitempty"`
	DisputeOpenedAt *time.Time      `json:"dispute_opened_at,omitempty"`
	AutoReleaseAt   *time.Time      `json:"auto_release_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// HoldsFunds reports whether buyer money sits in the escrow.
func (e *EscrowAccount) HoldsFunds() bool {
	return e.Status == EscrowStatusFunded || e.Status == EscrowStatusDisputed
}

// IsParty reports whether userID is the buyer or the seller.
func (e *EscrowAccount) IsParty(userID uuid.UUID) bool {
	return e.BuyerID == userID || e.SellerID == userID
}
