package usecase

import (
	"context"

	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRegistration is what a client reports when it obtains a push token.
type DeviceRegistration struct {
	FCMToken   string
	DeviceID   string
	Platform   string
	AppVersion string
}

// DeviceUsecase manages the push targets of a user.
type DeviceUsecase interface {
	// RegisterDevice is idempotent per client device id: a known device gets
	// its token refreshed and is reactivated.
	RegisterDevice(ctx context.Context, userID uuid.UUID, reg *DeviceRegistration) (*entity.UserDevice, error)
	UpdateFCMToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error
	// GetUserDevices lists active devices only.
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
