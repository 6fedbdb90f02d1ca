package postgres

import (
	"context"
	"time"

	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type deviceRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db, now: time.Now}
}

func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return repository.ErrDuplicateDevice
		case isForeignKeyConstraintViolation(err):
			return repository.ErrProfileNotFound
		case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WrapMessage("invalid device registration")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var deviceM model.UserDeviceModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&deviceM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrDeviceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	return repo.findByUser(repo.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	return repo.findByUser(repo.db.WithContext(ctx).Where("user_id = ? AND is_active = ?", userID, true))
}

// findByUser returns the most recently seen devices first.
func (repo *deviceRepository) findByUser(query *gorm.DB) ([]*entity.UserDevice, error) {
	var deviceModels []*model.UserDeviceModel

	if err := query.Order("last_seen_at DESC NULLS LAST").Order("created_at DESC").Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

func (repo *deviceRepository) RefreshDevice(ctx context.Context, deviceID uuid.UUID, refresh repository.DeviceRefresh) error {
	now := repo.now()
	updates := map[string]any{
		"fcm_token":    refresh.FCMToken,
		"is_active":    true,
		"last_seen_at": now,
		"updated_at":   now,
	}
	if refresh.AppVersion != "" {
		updates["app_version"] = refresh.AppVersion
	}

	result := repo.db.WithContext(ctx).Model(&model.UserDeviceModel{}).Where("id = ?", deviceID).Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateDevice
		}

		return errors.Wrap(result.Error, "failed to refresh device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *deviceRepository) DeactivateDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "updated_at": repo.now()})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *deviceRepository) DeactivateDevicesByTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token IN ? AND is_active = ?", tokens, true).
		Updates(map[string]any{"is_active": false, "updated_at": repo.now()})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate devices by tokens")
	}

	return result.RowsAffected, nil
}

func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	if data == nil {
		return nil
	}

	return &entity.UserDevice{
		ID:         data.ID,
		UserID:     data.UserID,
		FCMToken:   data.FCMToken,
		DeviceID:   data.DeviceID,
		Platform:   entity.DevicePlatform(data.Platform),
		AppVersion: data.AppVersion,
		IsActive:   data.IsActive,
		LastSeenAt: data.LastSeenAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	if data == nil {
		return nil
	}

	return &model.UserDeviceModel{
		ID:         data.ID,
		UserID:     data.UserID,
		FCMToken:   data.FCMToken,
		DeviceID:   data.DeviceID,
		Platform:   string(data.Platform),
		AppVersion: data.AppVersion,
		IsActive:   data.IsActive,
		LastSeenAt: data.LastSeenAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
