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
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceRegistration{
		FCMToken:   "test-fcm-token",
		DeviceID:   "device-123",
		Platform:   "iOS",
		AppVersion: " 3.1.0 ",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.NotNil(t, device)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, entity.PlatformIOS, device.Platform)
	assert.Equal(t, "3.1.0", device.AppVersion)
	assert.True(t, device.IsActive)
	assert.NotNil(t, device.LastSeenAt)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	existingDevice := &entity.UserDevice{
		ID:       deviceID,
		UserID:   userID,
		FCMToken: "old-token",
		DeviceID: "device-123",
		Platform: entity.PlatformAndroid,
		IsActive: false,
	}

	deviceInfo := &usecase.DeviceRegistration{
		FCMToken:   "new-fcm-token",
		DeviceID:   "device-123",
		Platform:   "android",
		AppVersion: "3.2.0",
	}

	updatedDevice := &entity.UserDevice{
		ID:       deviceID,
		UserID:   userID,
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: entity.PlatformAndroid,
		IsActive: true,
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{existingDevice}, nil)

	fx.deviceRepo.EXPECT().
		RefreshDevice(ctx, deviceID, repository.DeviceRefresh{FCMToken: "new-fcm-token", AppVersion: "3.2.0"}).
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(updatedDevice, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		info *usecase.DeviceRegistration
	}{
		{name: "nil", info: nil},
		{name: "missing token", info: &usecase.DeviceRegistration{DeviceID: "d", Platform: "ios"}},
		{name: "missing device id", info: &usecase.DeviceRegistration{FCMToken: "t", Platform: "ios"}},
		{name: "unknown platform", info: &usecase.DeviceRegistration{FCMToken: "t", DeviceID: "d", Platform: "symbian"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)

			_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), tt.info)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestDeviceService_RegisterDevice_FindError(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceRegistration{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "web",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return(nil, errors.New("database error"))

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "failed to find devices by user")
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		owner     uuid.UUID
		findErr   error
		wantErr   error
		wantWrite bool
	}{
		{name: "success", owner: userID, wantWrite: true},
		{name: "not found", findErr: repository.ErrDeviceNotFound, wantErr: domainerrors.ErrDeviceNotFound},
		{name: "other user's device", owner: uuid.New(), wantErr: domainerrors.ErrDeviceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			ctx := context.Background()
			deviceID := uuid.New()

			if tt.findErr != nil {
				fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, tt.findErr)
			} else {
				fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: tt.owner}, nil)
			}
			if tt.wantWrite {
				fx.deviceRepo.EXPECT().RefreshDevice(ctx, deviceID, repository.DeviceRefresh{FCMToken: "new-fcm-token"}).Return(nil)
			}

			err := fx.service.UpdateFCMToken(ctx, userID, deviceID, "new-fcm-token")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectedDevices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, IsActive: true},
		{ID: uuid.New(), UserID: userID, IsActive: true},
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(expectedDevices, nil)

	devices, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expectedDevices, devices)
}

func TestDeviceService_DeactivateDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: userID, IsActive: true}, nil)

	fx.deviceRepo.EXPECT().
		DeactivateDevice(ctx, deviceID).
		Return(nil)

	err := fx.service.DeactivateDevice(ctx, userID, deviceID)
	require.NoError(t, err)
}

func TestDeviceService_DeactivateDevice_OtherUser(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New(), IsActive: true}, nil)

	err := fx.service.DeactivateDevice(ctx, uuid.New(), deviceID)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}
