package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	mockRepo "expatmart/internal/mocks/repository"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type inboxFixture struct {
	service          *inboxService
	notificationRepo *mockRepo.MockNotificationRepository
	preferenceRepo   *mockRepo.MockNotificationPreferenceRepository
	templateRepo     *mockRepo.MockNotificationTemplateRepository
	now              time.Time
}

func createTestInboxService(t *testing.T) *inboxFixture {
	fx := &inboxFixture{
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		preferenceRepo:   mockRepo.NewMockNotificationPreferenceRepository(t),
		templateRepo:     mockRepo.NewMockNotificationTemplateRepository(t),
		now:              time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC),
	}

	svc := NewInboxService(fx.notificationRepo, fx.preferenceRepo, fx.templateRepo,
		slog.New(slog.NewTextHandler(io.Discard, nil))).(*inboxService)
	svc.now = func() time.Time { return fx.now }
	fx.service = svc

	return fx
}

func TestInboxService_ListNotifications_ClampsPage(t *testing.T) {
	fx := createTestInboxService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().ListNotifications(ctx, userID, true, maxPageSize, 0).
		Return([]*entity.Notification{{ID: uuid.New(), UserID: userID}}, nil)

	items, err := fx.service.ListNotifications(ctx, userID, true, 5000, -3)

	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestInboxService_MarkAsRead(t *testing.T) {
	ctx := context.Background()
	userID, notificationID := uuid.New(), uuid.New()

	t.Run("owned notification", func(t *testing.T) {
		fx := createTestInboxService(t)
		fx.notificationRepo.EXPECT().MarkAsRead(ctx, notificationID, userID, fx.now).Return(nil)

		assert.NoError(t, fx.service.MarkAsRead(ctx, userID, notificationID))
	})

	t.Run("someone else's notification", func(t *testing.T) {
		fx := createTestInboxService(t)
		fx.notificationRepo.EXPECT().MarkAsRead(ctx, notificationID, userID, fx.now).
			Return(repository.ErrNotificationNotFound)

		err := fx.service.MarkAsRead(ctx, userID, notificationID)
		assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
	})
}

func TestInboxService_DeleteNotification_WrapsStorageErrors(t *testing.T) {
	fx := createTestInboxService(t)
	ctx := context.Background()
	userID, notificationID := uuid.New(), uuid.New()

	fx.notificationRepo.EXPECT().DeleteNotification(ctx, notificationID, userID).
		Return(errors.New("connection refused"))

	err := fx.service.DeleteNotification(ctx, userID, notificationID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrNotificationNotFound)
	assert.Contains(t, err.Error(), "failed to delete notification")
}

func TestInboxService_GetPreferences_DefaultsWhenMissing(t *testing.T) {
	fx := createTestInboxService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.preferenceRepo.EXPECT().FindPreferenceByUser(ctx, userID).Return(nil, repository.ErrPreferenceNotFound)

	pref, err := fx.service.GetPreferences(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, pref.UserID)
	assert.True(t, pref.EmailEnabled)
	assert.True(t, pref.PushEnabled)
	assert.Empty(t, pref.MutedTypes)
}

func TestInboxService_UpdatePreferences(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	off := false

	t.Run("security cannot be muted", func(t *testing.T) {
		fx := createTestInboxService(t)
		muted := []entity.NotificationType{entity.NotificationTypePromotion, entity.NotificationTypeSecurity}

		fx.preferenceRepo.EXPECT().FindPreferenceByUser(ctx, userID).Return(nil, repository.ErrPreferenceNotFound)
		fx.preferenceRepo.EXPECT().UpsertPreference(ctx, mock.AnythingOfType("*entity.NotificationPreference")).Return(nil)

		pref, err := fx.service.UpdatePreferences(ctx, userID, &usecase.PreferenceInput{
			SMSEnabled: &off,
			MutedTypes: &muted,
		})

		require.NoError(t, err)
		assert.False(t, pref.SMSEnabled)
		assert.True(t, pref.EmailEnabled)
		assert.Equal(t, []entity.NotificationType{entity.NotificationTypePromotion}, pref.MutedTypes)
		assert.Equal(t, fx.now, pref.UpdatedAt)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		fx := createTestInboxService(t)
		muted := []entity.NotificationType{"BIRTHDAY"}

		fx.preferenceRepo.EXPECT().FindPreferenceByUser(ctx, userID).
			Return(entity.DefaultNotificationPreference(userID), nil)

		_, err := fx.service.UpdatePreferences(ctx, userID, &usecase.PreferenceInput{MutedTypes: &muted})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestInboxService_UpsertTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("channels default to all and are deduplicated", func(t *testing.T) {
		fx := createTestInboxService(t)
		fx.templateRepo.EXPECT().UpsertTemplate(ctx, mock.AnythingOfType("*entity.NotificationTemplate")).Return(nil)

		tmpl, err := fx.service.UpsertTemplate(ctx, &usecase.TemplateInput{
			Name:          "  order_shipped ",
			Type:          entity.NotificationTypeOrderUpdate,
			TitleTemplate: "Order {{order_id}} shipped",
			BodyTemplate:  "Hi {{name}}",
			IsActive:      true,
		})

		require.NoError(t, err)
		assert.Equal(t, "order_shipped", tmpl.Name)
		assert.ElementsMatch(t, entity.AllChannels, tmpl.DefaultChannels)
	})

	t.Run("invalid type", func(t *testing.T) {
		fx := createTestInboxService(t)

		_, err := fx.service.UpsertTemplate(ctx, &usecase.TemplateInput{Name: "x", Type: "NOPE"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
