package repository

import (
	"context"

	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrServiceNotFound is returned when a service offering is not found.
	ErrServiceNotFound = errors.New("service not found")
	// ErrBookingNotFound is returned when a booking is not found.
	ErrBookingNotFound = errors.New("booking not found")
)

// ServiceRepository defines persistence for services and their bookings.
type ServiceRepository interface {
	CreateService(ctx context.Context, service *entity.Service) error
	FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	UpdateService(ctx context.Context, service *entity.Service) error
	ListServices(ctx context.Context, category, city string, limit, offset int) ([]*entity.Service, error)

	CreateBooking(ctx context.Context, booking *entity.ServiceBooking) error
	FindBookingByID(ctx context.Context, id uuid.UUID) (*entity.ServiceBooking, error)

	// UpdateBookingStatus persists the status and cancel reason of a booking.
	UpdateBookingStatus(ctx context.Context, booking *entity.ServiceBooking) error

	ListBookingsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ServiceBooking, error)
}
