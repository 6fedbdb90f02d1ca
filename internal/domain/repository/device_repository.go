// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrDeviceNotFound  = errors.New("device not found")
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRefresh updates a known device. An empty AppVersion keeps the stored one.
type DeviceRefresh struct {
	FCMToken   string
	AppVersion string
}

// DeviceRepository persists push targets.
type DeviceRepository interface {
	CreateDevice(ctx context.Context, device *entity.UserDevice) error
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)
	// FindDevicesByUser includes inactive devices.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// RefreshDevice stores a new token, reactivates the device and stamps last_seen_at.
	RefreshDevice(ctx context.Context, deviceID uuid.UUID, refresh DeviceRefresh) error
	DeactivateDevice(ctx context.Context, id uuid.UUID) error
	// DeactivateDevicesByTokens is used when FCM reports tokens as invalid or unregistered.
	DeactivateDevicesByTokens(ctx context.Context, tokens []string) (int64, error)
}
