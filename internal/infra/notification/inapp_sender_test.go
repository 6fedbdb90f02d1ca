package notification

import (
	"context"
	"testing"

	"expatmart/internal/domain/entity"
	"expatmart/internal/domain/service"
	mockRepo "expatmart/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInAppSender_Send(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	sender := NewInAppSender(notificationRepo)

	ctx := context.Background()
	userID := uuid.New()

	var saved *entity.Notification
	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		RunAndReturn(func(_ context.Context, n *entity.Notification) error {
			saved = n

			return nil
		})

	receipt, err := sender.Send(ctx, &service.ChannelMessage{
		UserID: userID,
		Type:   entity.NotificationTypeEscrow,
		Title:  "Funds held",
		Body:   "Payment is held in escrow.",
		Data:   map[string]any{"order_id": "o-9"},
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, userID, saved.UserID)
	assert.Equal(t, "Payment is held in escrow.", saved.Message)
	assert.Nil(t, saved.ReadAt)
	assert.Equal(t, &saved.ID, receipt.NotificationID)
}

func TestInAppSender_Send_RepoError(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	sender := NewInAppSender(notificationRepo)

	notificationRepo.EXPECT().CreateNotification(mock.Anything, mock.Anything).Return(errors.New("db down"))

	receipt, err := sender.Send(context.Background(), &service.ChannelMessage{UserID: uuid.New()})

	assert.Nil(t, receipt)
	assert.Error(t, err)
}
