package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingUnit describes how a service is billed.
type PricingUnit string

const (
	PricingFixed   PricingUnit = "FIXED"
	PricingHourly  PricingUnit = "HOURLY"
	PricingSession PricingUnit = "SESSION"
)

// Service is a bookable offering (relocation help, tutoring, cleaning ...).
type Service struct {
	ID              uuid.UUID       `json:"id"`
	ProviderID      uuid.UUID       `json:"provider_id"`
	VendorID        *uuid.UUID      `json:"vendor_id,omitempty"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"`
	Currency        string          `json:"currency"`
	PricingUnit     PricingUnit     `json:"pricing_unit"`
	DurationMinutes int             `json:"duration_minutes"`
	City            string          `json:"city"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BookingStatus is PENDING → CONFIRMED → COMPLETED, CANCELLED from PENDING or CONFIRMED.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// CanTransitionTo reports whether next is a legal successor of s.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCompleted || next == BookingStatusCancelled
	default:
		return false
	}
}

// ServiceBooking is a customer's reservation of a service.
type ServiceBooking struct {
	ID           uuid.UUID       `json:"id"`
	ServiceID    uuid.UUID       `json:"service_id"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	ProviderID   uuid.UUID       `json:"provider_id"`
	ScheduledAt  time.Time       `json:"scheduled_at"`
	Status       BookingStatus   `json:"status"`
	Price        decimal.Decimal `json:"price"`
	Currency     string          `json:"currency"`
	Notes        string          `json:"notes"`
	CancelReason string          `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
