package impl

import (
	"context"
	"log/slog"

	"expatmart/internal/domain/entity"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
)

// enqueueNotifications hands committed state changes to the notification queue.
// Failures are logged; the business operation already succeeded.
func enqueueNotifications(ctx context.Context, notifier usecase.NotificationUsecase, logger *slog.Logger, reqs ...*usecase.NotificationRequest) {
	for _, req := range reqs {
		if req == nil || req.UserID == uuid.Nil {
			continue
		}
		if _, err := notifier.EnqueueNotification(ctx, req); err != nil {
			logger.Warn("Failed to enqueue notification",
				slog.String("user_id", req.UserID.String()),
				slog.String("type", string(req.Type)),
				slog.Any("error", err),
			)
		}
	}
}

func notice(userID uuid.UUID, notificationType entity.NotificationType, title, message string, data map[string]any) *usecase.NotificationRequest {
	return &usecase.NotificationRequest{
		UserID:   userID,
		Type:     notificationType,
		Title:    title,
		Message:  message,
		Data:     data,
		Channels: []entity.Channel{entity.ChannelInApp, entity.ChannelPush, entity.ChannelEmail},
	}
}
