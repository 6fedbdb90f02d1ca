package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	mockRepo "expatmart/internal/mocks/repository"
	mockUsecase "expatmart/internal/mocks/usecase"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	service     *bookingService
	serviceRepo *mockRepo.MockServiceRepository
	vendorRepo  *mockRepo.MockVendorRepository
	notifier    *mockUsecase.MockNotificationUsecase
	now         time.Time
}

func createTestBookingService(t *testing.T) *bookingFixture {
	fx := &bookingFixture{
		serviceRepo: mockRepo.NewMockServiceRepository(t),
		vendorRepo:  mockRepo.NewMockVendorRepository(t),
		notifier:    mockUsecase.NewMockNotificationUsecase(t),
		now:         time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	fx.service = NewBookingService(fx.serviceRepo, fx.vendorRepo, fx.notifier, slog.New(slog.NewTextHandler(io.Discard, nil))).(*bookingService)
	fx.service.now = func() time.Time { return fx.now }

	return fx
}

func serviceInput() *usecase.ServiceInput {
	return &usecase.ServiceInput{
		Title:           "Visa paperwork help",
		Category:        "relocation",
		Price:           decimal.NewFromInt(150),
		Currency:        "aed",
		PricingUnit:     entity.PricingSession,
		DurationMinutes: 90,
		City:            "Dubai",
	}
}

func TestBookingService_CreateService(t *testing.T) {
	t.Run("linked to approved store", func(t *testing.T) {
		fx := createTestBookingService(t)
		ctx := context.Background()
		providerID := uuid.New()
		vendor := &entity.Vendor{ID: uuid.New(), OwnerID: providerID, Status: entity.VendorStatusApproved}

		fx.vendorRepo.EXPECT().FindVendorByOwner(ctx, providerID).Return(vendor, nil)
		fx.serviceRepo.EXPECT().CreateService(ctx, mock.AnythingOfType("*entity.Service")).Return(nil)

		offering, err := fx.service.CreateService(ctx, providerID, serviceInput())

		require.NoError(t, err)
		assert.True(t, offering.IsActive)
		assert.Equal(t, "AED", offering.Currency)
		require.NotNil(t, offering.VendorID)
		assert.Equal(t, vendor.ID, *offering.VendorID)
	})

	t.Run("independent provider", func(t *testing.T) {
		fx := createTestBookingService(t)
		ctx := context.Background()
		providerID := uuid.New()

		fx.vendorRepo.EXPECT().FindVendorByOwner(ctx, providerID).Return(nil, repository.ErrVendorNotFound)
		fx.serviceRepo.EXPECT().CreateService(ctx, mock.Anything).Return(nil)

		offering, err := fx.service.CreateService(ctx, providerID, serviceInput())

		require.NoError(t, err)
		assert.Nil(t, offering.VendorID)
	})

	t.Run("invalid input", func(t *testing.T) {
		fx := createTestBookingService(t)
		input := serviceInput()
		input.PricingUnit = "PER_KG"

		_, err := fx.service.CreateService(context.Background(), uuid.New(), input)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestBookingService_BookService(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	offering := &entity.Service{
		ID:         uuid.New(),
		ProviderID: uuid.New(),
		Title:      "Visa paperwork help",
		Price:      decimal.NewFromInt(150),
		Currency:   "AED",
		IsActive:   true,
	}
	customerID := uuid.New()

	fx.serviceRepo.EXPECT().FindServiceByID(ctx, offering.ID).Return(offering, nil)
	fx.serviceRepo.EXPECT().CreateBooking(ctx, mock.AnythingOfType("*entity.ServiceBooking")).Return(nil)
	fx.notifier.EXPECT().EnqueueNotification(ctx, mock.MatchedBy(func(req *usecase.NotificationRequest) bool {
		return req.UserID == offering.ProviderID && req.Type == entity.NotificationTypeBooking
	})).Return(&entity.NotificationQueueItem{}, nil)

	booking, err := fx.service.BookService(ctx, customerID, offering.ID, &usecase.BookingInput{
		ScheduledAt: fx.now.Add(48 * time.Hour),
		Notes:       " second floor ",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, offering.ProviderID, booking.ProviderID)
	assert.True(t, booking.Price.Equal(offering.Price))
	assert.Equal(t, "second floor", booking.Notes)
}

func TestBookingService_BookService_Rejections(t *testing.T) {
	providerID := uuid.New()

	tests := []struct {
		name       string
		customerID uuid.UUID
		active     bool
		offset     time.Duration
		wantErr    error
	}{
		{name: "inactive service", customerID: uuid.New(), active: false, offset: time.Hour, wantErr: domainerrors.ErrServiceNotFound},
		{name: "own service", customerID: providerID, active: true, offset: time.Hour, wantErr: domainerrors.ErrValidationFailed},
		{name: "in the past", customerID: uuid.New(), active: true, offset: -time.Hour, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBookingService(t)
			ctx := context.Background()
			offering := &entity.Service{ID: uuid.New(), ProviderID: providerID, IsActive: tt.active}

			fx.serviceRepo.EXPECT().FindServiceByID(ctx, offering.ID).Return(offering, nil)

			_, err := fx.service.BookService(ctx, tt.customerID, offering.ID, &usecase.BookingInput{ScheduledAt: fx.now.Add(tt.offset)})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBookingService_UpdateBookingStatus(t *testing.T) {
	providerID, customerID := uuid.New(), uuid.New()
	admin := usecase.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}

	tests := []struct {
		name    string
		actor   usecase.Actor
		from    entity.BookingStatus
		to      entity.BookingStatus
		wantErr error
	}{
		{name: "provider confirms", actor: usecase.Actor{ID: providerID}, from: entity.BookingStatusPending, to: entity.BookingStatusConfirmed},
		{name: "provider completes", actor: usecase.Actor{ID: providerID}, from: entity.BookingStatusConfirmed, to: entity.BookingStatusCompleted},
		{name: "customer cancels", actor: usecase.Actor{ID: customerID}, from: entity.BookingStatusConfirmed, to: entity.BookingStatusCancelled},
		{name: "admin cancels", actor: admin, from: entity.BookingStatusPending, to: entity.BookingStatusCancelled},
		{name: "customer cannot confirm", actor: usecase.Actor{ID: customerID}, from: entity.BookingStatusPending, to: entity.BookingStatusConfirmed, wantErr: domainerrors.ErrForbidden},
		{name: "stranger cannot cancel", actor: usecase.Actor{ID: uuid.New()}, from: entity.BookingStatusPending, to: entity.BookingStatusCancelled, wantErr: domainerrors.ErrForbidden},
		{name: "cannot complete pending", actor: usecase.Actor{ID: providerID}, from: entity.BookingStatusPending, to: entity.BookingStatusCompleted, wantErr: domainerrors.ErrInvalidStatusTransition},
		{name: "completed is final", actor: usecase.Actor{ID: providerID}, from: entity.BookingStatusCompleted, to: entity.BookingStatusCancelled, wantErr: domainerrors.ErrInvalidStatusTransition},
		{name: "unknown status", actor: usecase.Actor{ID: providerID}, from: entity.BookingStatusPending, to: "NO_SHOW", wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBookingService(t)
			ctx := context.Background()
			booking := &entity.ServiceBooking{
				ID:          uuid.New(),
				ProviderID:  providerID,
				CustomerID:  customerID,
				ScheduledAt: fx.now.Add(24 * time.Hour),
				Status:      tt.from,
			}

			fx.serviceRepo.EXPECT().FindBookingByID(ctx, booking.ID).Return(booking, nil)
			if tt.wantErr == nil {
				fx.serviceRepo.EXPECT().UpdateBookingStatus(ctx, booking).Return(nil)
				fx.notifier.EXPECT().EnqueueNotification(ctx, mock.Anything).Return(&entity.NotificationQueueItem{}, nil)
			}

			updated, err := fx.service.UpdateBookingStatus(ctx, tt.actor, booking.ID, tt.to, " running late ")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, updated.Status)
		})
	}
}

func TestBookingService_UpdateBookingStatus_CancelNotifiesProvider(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	booking := &entity.ServiceBooking{
		ID:          uuid.New(),
		ProviderID:  uuid.New(),
		CustomerID:  uuid.New(),
		ScheduledAt: fx.now.Add(time.Hour),
		Status:      entity.BookingStatusPending,
	}

	fx.serviceRepo.EXPECT().FindBookingByID(ctx, booking.ID).Return(booking, nil)
	fx.serviceRepo.EXPECT().UpdateBookingStatus(ctx, booking).Return(nil)
	fx.notifier.EXPECT().EnqueueNotification(ctx, mock.MatchedBy(func(req *usecase.NotificationRequest) bool {
		return req.UserID == booking.ProviderID && req.Title == "Booking cancelled"
	})).Return(&entity.NotificationQueueItem{}, nil)

	updated, err := fx.service.UpdateBookingStatus(ctx, usecase.Actor{ID: booking.CustomerID}, booking.ID, entity.BookingStatusCancelled, " plans changed ")

	require.NoError(t, err)
	assert.Equal(t, "plans changed", updated.CancelReason)
}

func TestBookingService_UpdateBookingStatus_NotFound(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.serviceRepo.EXPECT().FindBookingByID(ctx, id).Return(nil, repository.ErrBookingNotFound)

	_, err := fx.service.UpdateBookingStatus(ctx, usecase.Actor{ID: uuid.New()}, id, entity.BookingStatusConfirmed, "")

	assert.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
}

func TestBookingService_ListBookings(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.serviceRepo.EXPECT().ListBookingsByUser(ctx, userID, 100, 0).Return([]*entity.ServiceBooking{}, nil)

	_, err := fx.service.ListBookings(ctx, userID, 500, -1)

	require.NoError(t, err)
}
