package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
	now        func() time.Time
}

func NewDeviceService(deviceRepo repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, reg *usecase.DeviceRegistration) (*entity.UserDevice, error) {
	platform, err := validateRegistration(reg)
	if err != nil {
		return nil, err
	}

	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	for _, device := range devices {
		if device.DeviceID == reg.DeviceID {
			return s.refresh(ctx, device.ID, reg)
		}
	}

	now := s.now()
	device := &entity.UserDevice{
		ID:         uuid.New(),
		UserID:     userID,
		FCMToken:   reg.FCMToken,
		DeviceID:   reg.DeviceID,
		Platform:   platform,
		AppVersion: strings.TrimSpace(reg.AppVersion),
		IsActive:   true,
		LastSeenAt: &now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	s.logger.InfoContext(ctx, "Device registered",
		slog.String("user_id", userID.String()),
		slog.String("platform", string(device.Platform)),
	)

	return device, nil
}

func (s *deviceService) refresh(ctx context.Context, deviceID uuid.UUID, reg *usecase.DeviceRegistration) (*entity.UserDevice, error) {
	err := s.deviceRepo.RefreshDevice(ctx, deviceID, repository.DeviceRefresh{
		FCMToken:   reg.FCMToken,
		AppVersion: strings.TrimSpace(reg.AppVersion),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh device")
	}

	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return device, nil
}

func (s *deviceService) UpdateFCMToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error {
	if strings.TrimSpace(fcmToken) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "fcm token is required")
	}

	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.RefreshDevice(ctx, deviceID, repository.DeviceRefresh{FCMToken: fcmToken}); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// DeactivateDevice stops pushes to the device. The row is kept.
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeactivateDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to deactivate device")
	}

	return nil
}

// ownedDevice treats someone else's device as missing.
func (s *deviceService) ownedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device by ID")
	}
	if device.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
	}

	return device, nil
}

func validateRegistration(reg *usecase.DeviceRegistration) (entity.DevicePlatform, error) {
	if reg == nil || strings.TrimSpace(reg.FCMToken) == "" || strings.TrimSpace(reg.DeviceID) == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "fcm token and device id are required")
	}

	platform, ok := entity.ParseDevicePlatform(reg.Platform)
	if !ok {
		return "", errors.Wrapf(domainerrors.ErrValidationFailed, "unknown platform %q", reg.Platform)
	}

	return platform, nil
}
