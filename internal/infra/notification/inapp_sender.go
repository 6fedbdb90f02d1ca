package notification

import (
	"context"
	"time"

	"expatmart/internal/domain/entity"
	"expatmart/internal/domain/repository"
	"expatmart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type inAppSender struct {
	notificationRepo repository.NotificationRepository
	now              func() time.Time
}

// NewInAppSender creates the IN_APP channel adapter, which writes the inbox row.
func NewInAppSender(notificationRepo repository.NotificationRepository) service.ChannelSender {
	return &inAppSender{
		notificationRepo: notificationRepo,
		now:              time.Now,
	}
}

func (s *inAppSender) Channel() entity.Channel {
	return entity.ChannelInApp
}

func (s *inAppSender) Send(ctx context.Context, msg *service.ChannelMessage) (*service.ChannelReceipt, error) {
	now := s.now()
	notification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    msg.UserID,
		Type:      msg.Type,
		Title:     msg.Title,
		Message:   msg.Body,
		Data:      msg.Data,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create in-app notification")
	}

	return &service.ChannelReceipt{
		ProviderMessageID: notification.ID.String(),
		NotificationID:    &notification.ID,
	}, nil
}
