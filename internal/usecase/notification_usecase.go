package usecase

import (
	"context"

	"expatmart/internal/domain/entity"
	"expatmart/internal/domain/service"

	"github.com/google/uuid"
)

// NotificationRequest describes a notification to dispatch.
type NotificationRequest struct {
	UserID   uuid.UUID               `json:"user_id" validate:"required"`
	Type     entity.NotificationType `json:"type" validate:"required"`
	Title    string                  `json:"title" validate:"required,max=200"`
	Message  string                  `json:"message" validate:"required,max=2000"`
	Data     map[string]any          `json:"data,omitempty"`
	Channels []entity.Channel        `json:"channels"`
}

// TemplatedNotificationRequest dispatches a stored template.
type TemplatedNotificationRequest struct {
	UserID       uuid.UUID         `json:"user_id" validate:"required"`
	TemplateName string            `json:"template_name" validate:"required"`
	Variables    map[string]string `json:"variables,omitempty"`
	Data         map[string]any    `json:"data,omitempty"`
	Channels     []entity.Channel  `json:"channels,omitempty"`                // Defaults to the template's channels.
}

// ChannelResult is the outcome of one channel attempt.
type ChannelResult struct {
	Channel           entity.Channel `json:"channel"`
	Success           bool           `json:"success"`
	ProviderMessageID string         `json:"provider_message_id,omitempty"`
	Error             string         `json:"error,omitempty"`
}

// DispatchResult aggregates a multi-channel dispatch.
// Success is true only when every attempted channel succeeded.
type DispatchResult struct {
	Success        bool             `json:"success"`
	NotificationID *uuid.UUID       `json:"notification_id,omitempty"`
	Results        []ChannelResult  `json:"results"`
	Skipped        []entity.Channel `json:"skipped,omitempty"`
}

// Attempted returns the channels that were actually tried, in order.
func (r *DispatchResult) Attempted() []entity.Channel {
	out := make([]entity.Channel, 0, len(r.Results))
	for _, res := range r.Results {
		out = append(out, res.Channel)
	}

	return out
}

// QueueStats summarises one ProcessQueue run.
type QueueStats struct {
	Claimed int `json:"claimed"`
	Sent    int `json:"sent"`
	Retried int `json:"retried"`
	Failed  int `json:"failed"`
}

// NotificationUsecase dispatches notifications over the configured channels.
type NotificationUsecase interface {
	// SendNotification dispatches over a single channel.
	SendNotification(ctx context.Context, req *NotificationRequest, channel entity.Channel) (*DispatchResult, error)

	// SendMultiChannelNotification filters the requested channels by the user's
	// preferences and attempts each remaining channel independently.
	SendMultiChannelNotification(ctx context.Context, req *NotificationRequest) (*DispatchResult, error)

	// SendTemplatedNotification renders an active template and dispatches it.
	SendTemplatedNotification(ctx context.Context, req *TemplatedNotificationRequest) (*DispatchResult, error)

	// CreateNotification inserts an in-app inbox row.
	CreateNotification(ctx context.Context, userID uuid.UUID, notificationType entity.NotificationType, title, message string, data map[string]any) (*entity.Notification, error)

	// EnqueueNotification stores the request in the durable queue.
	EnqueueNotification(ctx context.Context, req *NotificationRequest) (*entity.NotificationQueueItem, error)

	// EnqueueTemplatedNotification stores a templated request in the durable queue.
	EnqueueTemplatedNotification(ctx context.Context, req *TemplatedNotificationRequest) (*entity.NotificationQueueItem, error)

	// ProcessQueue claims due queue rows and dispatches them.
	ProcessQueue(ctx context.Context, batchSize int) (*QueueStats, error)

	// HandleEvent fans a marketplace event out to its recipients through the queue.
	HandleEvent(ctx context.Context, event *service.MarketplaceEvent) error
}

// PreferenceInput updates notification preferences. Nil fields are left unchanged.
type PreferenceInput struct {
	EmailEnabled *bool                      `json:"email_enabled"`
	SMSEnabled   *bool                      `json:"sms_enabled"`
	PushEnabled  *bool                      `json:"push_enabled"`
	InAppEnabled *bool                      `json:"in_app_enabled"`
	MutedTypes   *[]entity.NotificationType `json:"muted_types"`
}

// TemplateInput creates or replaces a template by name.
type TemplateInput struct {
	Name            string                  `json:"name" validate:"required,max=100"`
	Type            entity.NotificationType `json:"type" validate:"required"`
	TitleTemplate   string                  `json:"title_template" validate:"required"`
	BodyTemplate    string                  `json:"body_template" validate:"required"`
	DefaultChannels []entity.Channel        `json:"default_channels"`
	IsActive        bool                    `json:"is_active"`
}

// InboxUsecase manages a user's in-app notifications, preferences and templates.
type InboxUsecase interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error

	// GetPreferences returns defaults when the user has no stored record.
	GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, input *PreferenceInput) (*entity.NotificationPreference, error)

	UpsertTemplate(ctx context.Context, input *TemplateInput) (*entity.NotificationTemplate, error)
	ListTemplates(ctx context.Context) ([]*entity.NotificationTemplate, error)
}
