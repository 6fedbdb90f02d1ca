package repository

import (
	"context"
	"time"

	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrTemplateNotFound is returned when no active template has the requested name.
	ErrTemplateNotFound = errors.New("notification template not found")
	// ErrPreferenceNotFound is returned when the user never saved preferences.
	ErrPreferenceNotFound = errors.New("notification preference not found")
)

// NotificationRepository defines the interface for inbox and delivery-log operations.
type NotificationRepository interface {
	// CreateNotification persists a new in-app notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// ListNotifications lists a user's notifications, newest first.
	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)

	// CountUnread counts notifications the user has not read.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkAsRead stamps read_at on a notification owned by the user.
	MarkAsRead(ctx context.Context, id, userID uuid.UUID, readAt time.Time) error

	// MarkAllAsRead stamps read_at on every unread notification of the user.
	MarkAllAsRead(ctx context.Context, userID uuid.UUID, readAt time.Time) (int64, error)

	// DeleteNotification removes a notification owned by the user.
	DeleteNotification(ctx context.Context, id, userID uuid.UUID) error

	// BatchCreateDeliveries persists per-channel attempt logs.
	BatchCreateDeliveries(ctx context.Context, deliveries []*entity.NotificationDelivery) error
}

// NotificationPreferenceRepository persists per-user channel switches.
type NotificationPreferenceRepository interface {
	// FindPreferenceByUser returns ErrPreferenceNotFound when the user has no record.
	FindPreferenceByUser(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error)
	UpsertPreference(ctx context.Context, pref *entity.NotificationPreference) error
}

// NotificationTemplateRepository persists notification templates.
type NotificationTemplateRepository interface {
	// FindActiveTemplateByName returns ErrTemplateNotFound for unknown or inactive templates.
	FindActiveTemplateByName(ctx context.Context, name string) (*entity.NotificationTemplate, error)
	UpsertTemplate(ctx context.Context, template *entity.NotificationTemplate) error
	ListTemplates(ctx context.Context) ([]*entity.NotificationTemplate, error)
}

// NotificationQueueRepository is the durable dispatch queue polled by the worker.
type NotificationQueueRepository interface {
	Enqueue(ctx context.Context, item *entity.NotificationQueueItem) error

	// ClaimDue locks up to limit rows with FOR UPDATE SKIP LOCKED and marks them
	// PROCESSING: PENDING rows due at now, and PROCESSING rows last touched
	// before staleBefore whose worker never finished them. Must run inside a
	// transaction.
	ClaimDue(ctx context.Context, now, staleBefore time.Time, limit int) ([]*entity.NotificationQueueItem, error)

	// Release puts claimed rows that were never attempted back to PENDING, due at.
	Release(ctx context.Context, ids []uuid.UUID, at time.Time) error

	MarkSent(ctx context.Context, id uuid.UUID, processedAt time.Time) error

	// MarkRetry puts the row back to PENDING with the channels still to attempt,
	// the new attempt count and due time.
	MarkRetry(ctx context.Context, id uuid.UUID, channels []entity.Channel, attempts int, nextAttemptAt time.Time, lastError string) error

	MarkFailed(ctx context.Context, id uuid.UUID, attempts int, lastError string, processedAt time.Time) error

	// HasRecent reports whether a row for the user created at or after since
	// carries every key/value pair of data.
	HasRecent(ctx context.Context, userID uuid.UUID, data map[string]string, since time.Time) (bool, error)
}
