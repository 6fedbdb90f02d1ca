package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"expatmart/internal/domain/currency"
	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type bookingService struct {
	serviceRepo repository.ServiceRepository
	vendorRepo  repository.VendorRepository
	notifier    usecase.NotificationUsecase
	logger      *slog.Logger
	now         func() time.Time
}

// NewBookingService creates the service offering and booking service.
func NewBookingService(
	serviceRepo repository.ServiceRepository,
	vendorRepo repository.VendorRepository,
	notifier usecase.NotificationUsecase,
	logger *slog.Logger,
) usecase.BookingUsecase {
	return &bookingService{
		serviceRepo: serviceRepo,
		vendorRepo:  vendorRepo,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateService publishes an active offering. Providers running an approved
// store get the service linked to it.
func (s *bookingService) CreateService(ctx context.Context, providerID uuid.UUID, input *usecase.ServiceInput) (*entity.Service, error) {
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}

	now := s.now()
	offering := &entity.Service{
		ID:              uuid.New(),
		ProviderID:      providerID,
		Title:           strings.TrimSpace(input.Title),
		Description:     strings.TrimSpace(input.Description),
		Category:        strings.TrimSpace(input.Category),
		Price:           input.Price,
		Currency:        currency.Normalize(input.Currency),
		PricingUnit:     input.PricingUnit,
		DurationMinutes: input.DurationMinutes,
		City:            strings.TrimSpace(input.City),
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	vendor, err := s.vendorRepo.FindVendorByOwner(ctx, providerID)
	switch {
	case err == nil && vendor.IsApproved():
		offering.VendorID = &vendor.ID
	case err != nil && !errors.Is(err, repository.ErrVendorNotFound):
		return nil, errors.Wrap(err, "failed to look up provider store")
	}

	if err := s.serviceRepo.CreateService(ctx, offering); err != nil {
		return nil, errors.Wrap(err, "failed to create service")
	}

	s.logger.Info("Service created",
		slog.String("service_id", offering.ID.String()),
		slog.String("provider_id", providerID.String()),
	)

	return offering, nil
}

func (s *bookingService) GetService(ctx context.Context, serviceID uuid.UUID) (*entity.Service, error) {
	offering, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrServiceNotFound, "service not found")
		}

		return nil, errors.Wrap(err, "failed to load service")
	}

	return offering, nil
}

func (s *bookingService) ListServices(ctx context.Context, category, city string, limit, offset int) ([]*entity.Service, error) {
	limit, offset = normalizePage(limit, offset)

	services, err := s.serviceRepo.ListServices(ctx, strings.TrimSpace(category), strings.TrimSpace(city), limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

func (s *bookingService) BookService(ctx context.Context, customerID, serviceID uuid.UUID, input *usecase.BookingInput) (*entity.ServiceBooking, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "booking input is required")
	}

	offering, err := s.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if !offering.IsActive {
		return nil, errors.Wrap(domainerrors.ErrServiceNotFound, "service is no longer offered")
	}
	if offering.ProviderID == customerID {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "cannot book your own service")
	}

	now := s.now()
	if !input.ScheduledAt.After(now) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "booking must be scheduled in the future")
	}

	booking := &entity.ServiceBooking{
		ID:          uuid.New(),
		ServiceID:   offering.ID,
		CustomerID:  customerID,
		ProviderID:  offering.ProviderID,
		ScheduledAt: input.ScheduledAt.UTC(),
		Status:      entity.BookingStatusPending,
		Price:       offering.Price,
		Currency:    offering.Currency,
		Notes:       strings.TrimSpace(input.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.serviceRepo.CreateBooking(ctx, booking); err != nil {
		return nil, errors.Wrap(err, "failed to create booking")
	}

	enqueueNotifications(ctx, s.notifier, s.logger,
		notice(offering.ProviderID, entity.NotificationTypeBooking, "New booking request", offering.Title+" was requested for "+booking.ScheduledAt.Format(time.RFC1123), bookingData(booking)),
	)

	return booking, nil
}

// UpdateBookingStatus lets the provider confirm or complete a booking. Either
// party may cancel while it is PENDING or CONFIRMED.
func (s *bookingService) UpdateBookingStatus(ctx context.Context, actor usecase.Actor, bookingID uuid.UUID, status entity.BookingStatus, reason string) (*entity.ServiceBooking, error) {
	booking, err := s.serviceRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBookingNotFound, "booking not found")
		}

		return nil, errors.Wrap(err, "failed to load booking")
	}

	isProvider := actor.ID == booking.ProviderID || actor.IsAdmin()
	switch status {
	case entity.BookingStatusConfirmed, entity.BookingStatusCompleted:
		if !isProvider {
			return nil, errors.Wrap(domainerrors.ErrForbidden, "only the provider can update this booking")
		}
	case entity.BookingStatusCancelled:
		if !isProvider && actor.ID != booking.CustomerID {
			return nil, errors.Wrap(domainerrors.ErrForbidden, "not a party to this booking")
		}
	default:
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "cannot set booking status %q", status)
	}
	if !booking.Status.CanTransitionTo(status) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidStatusTransition, "booking cannot move from %s to %s", booking.Status, status)
	}

	booking.Status = status
	if status == entity.BookingStatusCancelled {
		booking.CancelReason = strings.TrimSpace(reason)
	}
	booking.UpdatedAt = s.now()

	if err := s.serviceRepo.UpdateBookingStatus(ctx, booking); err != nil {
		return nil, errors.Wrap(err, "failed to update booking")
	}

	recipient := booking.CustomerID
	if actor.ID == booking.CustomerID {
		recipient = booking.ProviderID
	}
	enqueueNotifications(ctx, s.notifier, s.logger,
		notice(recipient, entity.NotificationTypeBooking, bookingTitle(status), bookingMessage(booking), bookingData(booking)),
	)

	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ServiceBooking, error) {
	limit, offset = normalizePage(limit, offset)

	bookings, err := s.serviceRepo.ListBookingsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}

func validateServiceInput(input *usecase.ServiceInput) error {
	if input == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "service input is required")
	}
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Category) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "title and category are required")
	}
	if !input.Price.IsPositive() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "price must be positive")
	}
	if !currency.IsSupported(input.Currency) {
		return errors.Wrapf(domainerrors.ErrUnsupportedCurrency, "currency %q", input.Currency)
	}
	switch input.PricingUnit {
	case entity.PricingFixed, entity.PricingHourly, entity.PricingSession:
	default:
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown pricing unit %q", input.PricingUnit)
	}
	if input.DurationMinutes < 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "duration must not be negative")
	}

	return nil
}

func bookingTitle(status entity.BookingStatus) string {
	switch status {
	case entity.BookingStatusConfirmed:
		return "Booking confirmed"
	case entity.BookingStatusCompleted:
		return "Booking completed"
	default:
		return "Booking cancelled"
	}
}

func bookingMessage(booking *entity.ServiceBooking) string {
	when := booking.ScheduledAt.Format(time.RFC1123)
	if booking.Status == entity.BookingStatusCancelled && booking.CancelReason != "" {
		return "The booking for " + when + " was cancelled: " + booking.CancelReason
	}

	return "Your booking for " + when + " is now " + strings.ToLower(string(booking.Status)) + "."
}

func bookingData(booking *entity.ServiceBooking) map[string]any {
	return map[string]any{
		"booking_id": booking.ID.String(),
		"service_id": booking.ServiceID.String(),
		"status":     string(booking.Status),
	}
}
