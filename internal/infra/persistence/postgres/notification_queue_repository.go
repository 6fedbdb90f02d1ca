package postgres

import (
	"context"
	"maps"
	"slices"
	"time"

	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// maxLastErrorLength bounds the stored error text of a failed attempt.
const maxLastErrorLength = 1000

type notificationQueueRepository struct {
	db *gorm.DB
}

// NewNotificationQueueRepository is the constructor for notificationQueueRepository.
func NewNotificationQueueRepository(db *gorm.DB) repository.NotificationQueueRepository {
	return &notificationQueueRepository{db: db}
}

func (repo *notificationQueueRepository) Enqueue(ctx context.Context, item *entity.NotificationQueueItem) error {
	itemM := fromQueueDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to enqueue notification")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// ClaimDue must run inside a transaction: the SKIP LOCKED row locks keep
// concurrent workers from claiming the same rows until commit. Rows stuck in
// PROCESSING past their lease belong to a worker that died mid-batch.
func (repo *notificationQueueRepository) ClaimDue(ctx context.Context, now, staleBefore time.Time, limit int) ([]*entity.NotificationQueueItem, error) {
	var itemModels []*model.NotificationQueueModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{
			Strength: clause.LockingStrengthUpdate,
			Options:  clause.LockingOptionsSkipLocked,
		}).
		Where("(status = ? AND next_attempt_at <= ?) OR (status = ? AND updated_at < ?)",
			string(entity.QueueStatusPending), now,
			string(entity.QueueStatusProcessing), staleBefore).
		Order("next_attempt_at ASC").
		Limit(limit).
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to select due queue items")
	}

	if len(itemModels) == 0 {
		return []*entity.NotificationQueueItem{}, nil
	}

	ids := make([]uuid.UUID, 0, len(itemModels))
	for _, itemM := range itemModels {
		ids = append(ids, itemM.ID)
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationQueueModel{}).
		Where("id IN ?", ids).
		Updates(map[string]any{"status": string(entity.QueueStatusProcessing), "updated_at": now}).Error; err != nil {
		return nil, errors.Wrap(err, "failed to mark queue items processing")
	}

	items := make([]*entity.NotificationQueueItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		item := toQueueDomain(itemM)
		item.Status = entity.QueueStatusProcessing
		item.UpdatedAt = now
		items = append(items, item)
	}

	return items, nil
}

func (repo *notificationQueueRepository) Release(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationQueueModel{}).
		Where("id IN ? AND status = ?", ids, string(entity.QueueStatusProcessing)).
		Updates(map[string]any{
			"status":          string(entity.QueueStatusPending),
			"next_attempt_at": at,
			"updated_at":      at,
		}).Error; err != nil {
		return errors.Wrap(err, "failed to release queue items")
	}

	return nil
}

func (repo *notificationQueueRepository) MarkSent(ctx context.Context, id uuid.UUID, processedAt time.Time) error {
	return repo.update(ctx, id, map[string]any{
		"status":       string(entity.QueueStatusSent),
		"attempts":     gorm.Expr("attempts + 1"),
		"last_error":   "",
		"processed_at": processedAt,
		"updated_at":   processedAt,
	})
}

func (repo *notificationQueueRepository) MarkRetry(ctx context.Context, id uuid.UUID, channels []entity.Channel, attempts int, nextAttemptAt time.Time, lastError string) error {
	return repo.update(ctx, id, map[string]any{
		"status":          string(entity.QueueStatusPending),
		"channels":        channelStrings(channels),
		"attempts":        attempts,
		"next_attempt_at": nextAttemptAt,
		"last_error":      truncate(lastError, maxLastErrorLength),
		"updated_at":      time.Now(),
	})
}

func (repo *notificationQueueRepository) MarkFailed(ctx context.Context, id uuid.UUID, attempts int, lastError string, processedAt time.Time) error {
	return repo.update(ctx, id, map[string]any{
		"status":       string(entity.QueueStatusFailed),
		"attempts":     attempts,
		"last_error":   truncate(lastError, maxLastErrorLength),
		"processed_at": processedAt,
		"updated_at":   processedAt,
	})
}

func (repo *notificationQueueRepository) HasRecent(ctx context.Context, userID uuid.UUID, data map[string]string, since time.Time) (bool, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.NotificationQueueModel{}).
		Where("user_id = ? AND created_at >= ?", userID, since)
	for _, key := range slices.Sorted(maps.Keys(data)) {
		query = query.Where(datatypes.JSONQuery("data").Equals(data[key], key))
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to look up recent notifications")
	}

	return count > 0, nil
}

func (repo *notificationQueueRepository) update(ctx context.Context, id uuid.UUID, values map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationQueueModel{}).
		Where("id = ?", id).
		Updates(values)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update queue item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

func channelStrings(channels []entity.Channel) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(channels))
	for _, c := range channels {
		out = append(out, string(c))
	}

	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}

// --- Mapper Functions ---

func toQueueDomain(data *model.NotificationQueueModel) *entity.NotificationQueueItem {
	channels := make([]entity.Channel, 0, len(data.Channels))
	for _, c := range data.Channels {
		channels = append(channels, entity.Channel(c))
	}

	return &entity.NotificationQueueItem{
		ID:            data.ID,
		UserID:        data.UserID,
		Type:          entity.NotificationType(data.Type),
		Title:         data.Title,
		Message:       data.Message,
		Data:          data.Data,
		Channels:      channels,
		TemplateName:  data.TemplateName,
		Variables:     data.Variables.Data(),
		Status:        entity.QueueStatus(data.Status),
		Attempts:      data.Attempts,
		LastError:     data.LastError,
		NextAttemptAt: data.NextAttemptAt,
		ProcessedAt:   data.ProcessedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromQueueDomain(data *entity.NotificationQueueItem) *model.NotificationQueueModel {
	return &model.NotificationQueueModel{
		ID:            data.ID,
		UserID:        data.UserID,
		Type:          string(data.Type),
		Title:         data.Title,
		Message:       data.Message,
		Data:          data.Data,
		Channels:      channelStrings(data.Channels),
		TemplateName:  data.TemplateName,
		Variables:     datatypes.NewJSONType(data.Variables),
		Status:        string(data.Status),
		Attempts:      data.Attempts,
		LastError:     data.LastError,
		NextAttemptAt: data.NextAttemptAt,
		ProcessedAt:   data.ProcessedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
