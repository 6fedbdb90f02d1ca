package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	mockRepo "expatmart/internal/mocks/repository"
	mockUsecase "expatmart/internal/mocks/usecase"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestVendorService(t *testing.T) (*vendorService, *mockRepo.MockVendorRepository, *mockUsecase.MockNotificationUsecase) {
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	notifier := mockUsecase.NewMockNotificationUsecase(t)
	svc := NewVendorService(vendorRepo, notifier, slog.New(slog.NewTextHandler(io.Discard, nil))).(*vendorService)

	return svc, vendorRepo, notifier
}

func vendorInput() *usecase.VendorInput {
	return &usecase.VendorInput{
		BusinessName: " Mama's Pantry ",
		Category:     "groceries",
		ContactEmail: "Hello@MamasPantry.test",
		Country:      "ae",
	}
}

func TestVendorService_RegisterVendor(t *testing.T) {
	svc, vendorRepo, _ := createTestVendorService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	vendorRepo.EXPECT().FindVendorByOwner(ctx, ownerID).Return(nil, repository.ErrVendorNotFound)
	vendorRepo.EXPECT().CreateVendor(ctx, mock.AnythingOfType("*entity.Vendor")).Return(nil)

	vendor, err := svc.RegisterVendor(ctx, ownerID, vendorInput())

	require.NoError(t, err)
	assert.Equal(t, entity.VendorStatusPending, vendor.Status)
	assert.Equal(t, "Mama's Pantry", vendor.BusinessName)
	assert.Equal(t, "hello@mamaspantry.test", vendor.ContactEmail)
	assert.Equal(t, "AE", vendor.Country)
}

func TestVendorService_RegisterVendor_OnePerOwner(t *testing.T) {
	svc, vendorRepo, _ := createTestVendorService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	vendorRepo.EXPECT().FindVendorByOwner(ctx, ownerID).Return(&entity.Vendor{ID: uuid.New()}, nil)

	_, err := svc.RegisterVendor(ctx, ownerID, vendorInput())

	assert.ErrorIs(t, err, domainerrors.ErrVendorAlreadyExists)
}

func TestVendorService_RegisterVendor_RaceOnCreate(t *testing.T) {
	svc, vendorRepo, _ := createTestVendorService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	vendorRepo.EXPECT().FindVendorByOwner(ctx, ownerID).Return(nil, repository.ErrVendorNotFound)
	vendorRepo.EXPECT().CreateVendor(ctx, mock.Anything).Return(repository.ErrDuplicateVendor)

	_, err := svc.RegisterVendor(ctx, ownerID, vendorInput())

	assert.ErrorIs(t, err, domainerrors.ErrVendorAlreadyExists)
}

func TestVendorService_ApproveVendor(t *testing.T) {
	svc, vendorRepo, notifier := createTestVendorService(t)
	ctx := context.Background()
	vendor := &entity.Vendor{ID: uuid.New(), OwnerID: uuid.New(), BusinessName: "Mama's Pantry", Status: entity.VendorStatusPending}
	admin := usecase.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}

	vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)
	vendorRepo.EXPECT().UpdateVendorStatus(ctx, vendor.ID, entity.VendorStatusApproved).Return(nil)
	notifier.EXPECT().EnqueueNotification(ctx, mock.MatchedBy(func(req *usecase.NotificationRequest) bool {
		return req.UserID == vendor.OwnerID && req.Title == "Store approved"
	})).Return(&entity.NotificationQueueItem{}, nil)

	approved, err := svc.ApproveVendor(ctx, admin, vendor.ID)

	require.NoError(t, err)
	assert.True(t, approved.IsApproved())

	_, err = svc.ApproveVendor(ctx, usecase.Actor{ID: vendor.OwnerID}, vendor.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestVendorService_SuspendVendor(t *testing.T) {
	svc, vendorRepo, notifier := createTestVendorService(t)
	ctx := context.Background()
	vendor := &entity.Vendor{ID: uuid.New(), OwnerID: uuid.New(), BusinessName: "Shop", Status: entity.VendorStatusApproved}
	admin := usecase.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}

	vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)
	vendorRepo.EXPECT().UpdateVendorStatus(ctx, vendor.ID, entity.VendorStatusSuspended).Return(nil)
	notifier.EXPECT().EnqueueNotification(ctx, mock.MatchedBy(func(req *usecase.NotificationRequest) bool {
		return req.Message == "Shop was suspended. Reason: counterfeit goods"
	})).Return(&entity.NotificationQueueItem{}, nil)

	suspended, err := svc.SuspendVendor(ctx, admin, vendor.ID, " counterfeit goods ")

	require.NoError(t, err)
	assert.Equal(t, entity.VendorStatusSuspended, suspended.Status)
}

func TestVendorService_FollowVendor(t *testing.T) {
	svc, vendorRepo, _ := createTestVendorService(t)
	ctx := context.Background()
	vendor := &entity.Vendor{ID: uuid.New(), OwnerID: uuid.New()}
	userID := uuid.New()

	vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil).Times(3)
	vendorRepo.EXPECT().AddFollower(ctx, mock.MatchedBy(func(f *entity.VendorFollower) bool {
		return f.VendorID == vendor.ID && f.UserID == userID
	})).Return(nil).Once()
	vendorRepo.EXPECT().AddFollower(ctx, mock.Anything).Return(repository.ErrAlreadyFollowing).Once()

	require.NoError(t, svc.FollowVendor(ctx, userID, vendor.ID))
	require.NoError(t, svc.FollowVendor(ctx, userID, vendor.ID), "following twice is a no-op")

	err := svc.FollowVendor(ctx, vendor.OwnerID, vendor.ID)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestVendorService_UnfollowVendor(t *testing.T) {
	svc, vendorRepo, _ := createTestVendorService(t)
	ctx := context.Background()
	vendorID, userID := uuid.New(), uuid.New()

	vendorRepo.EXPECT().RemoveFollower(ctx, vendorID, userID).Return(repository.ErrNotFollowing)

	assert.NoError(t, svc.UnfollowVendor(ctx, userID, vendorID))
}

func TestVendorService_GetVendor_NotFound(t *testing.T) {
	svc, vendorRepo, _ := createTestVendorService(t)
	ctx := context.Background()
	vendorID := uuid.New()

	vendorRepo.EXPECT().FindVendorByID(ctx, vendorID).Return(nil, repository.ErrVendorNotFound)

	_, err := svc.GetVendor(ctx, vendorID)

	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestVendorService_ListVendors(t *testing.T) {
	svc, vendorRepo, _ := createTestVendorService(t)
	ctx := context.Background()

	vendorRepo.EXPECT().ListVendors(ctx, entity.VendorStatusPending, 20, 0).Return([]*entity.Vendor{}, nil)

	_, err := svc.ListVendors(ctx, entity.VendorStatusPending, 0, 0)
	require.NoError(t, err)

	_, err = svc.ListVendors(ctx, entity.VendorStatus("BANNED"), 0, 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
