package usecase

import (
	"context"
	"time"

	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceInput creates a bookable service.
type ServiceInput struct {
	Title           string             `json:"title" validate:"required,max=200"`
	Description     string             `json:"description" validate:"max=5000"`
	Category        string             `json:"category" validate:"required,max=50"`
	Price           decimal.Decimal    `json:"price"`
	Currency        string             `json:"currency" validate:"required,currency_code"`
	PricingUnit     entity.PricingUnit `json:"pricing_unit" validate:"required,oneof=FIXED HOURLY SESSION"`
	DurationMinutes int                `json:"duration_minutes" validate:"min=0,max=10080"`
	City            string             `json:"city" validate:"max=100"`
}

// BookingInput reserves a service slot.
type BookingInput struct {
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Notes       string    `json:"notes" validate:"max=1000"`
}

// BookingUsecase manages services and their bookings.
type BookingUsecase interface {
	CreateService(ctx context.Context, providerID uuid.UUID, input *ServiceInput) (*entity.Service, error)
	GetService(ctx context.Context, serviceID uuid.UUID) (*entity.Service, error)
	ListServices(ctx context.Context, category, city string, limit, offset int) ([]*entity.Service, error)

	BookService(ctx context.Context, customerID, serviceID uuid.UUID, input *BookingInput) (*entity.ServiceBooking, error)

	// UpdateBookingStatus lets the provider confirm or complete, and either party cancel.
	UpdateBookingStatus(ctx context.Context, actor Actor, bookingID uuid.UUID, status entity.BookingStatus, reason string) (*entity.ServiceBooking, error)

	ListBookings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ServiceBooking, error)
}
