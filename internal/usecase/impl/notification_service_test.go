package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"expatmart/config"
	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/domain/service"
	mockRepo "expatmart/internal/mocks/repository"
	mockSvc "expatmart/internal/mocks/service"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationFixture struct {
	service          *notificationService
	txManager        *mockRepo.MockTransactionManager
	notificationRepo *mockRepo.MockNotificationRepository
	preferenceRepo   *mockRepo.MockNotificationPreferenceRepository
	templateRepo     *mockRepo.MockNotificationTemplateRepository
	queueRepo        *mockRepo.MockNotificationQueueRepository
	profileRepo      *mockRepo.MockProfileRepository
	senders          map[entity.Channel]*mockSvc.MockChannelSender
	now              time.Time
}

// fakeRenderer only understands the compact {{name}} form.
type fakeRenderer struct{}

func (fakeRenderer) Render(template string, vars map[string]string) string {
	for k, v := range vars {
		template = strings.ReplaceAll(template, "{{"+k+"}}", v)
	}

	return template
}

func createTestNotificationService(t *testing.T, channels ...entity.Channel) *notificationFixture {
	fx := &notificationFixture{
		txManager:        mockRepo.NewMockTransactionManager(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		preferenceRepo:   mockRepo.NewMockNotificationPreferenceRepository(t),
		templateRepo:     mockRepo.NewMockNotificationTemplateRepository(t),
		queueRepo:        mockRepo.NewMockNotificationQueueRepository(t),
		profileRepo:      mockRepo.NewMockProfileRepository(t),
		senders:          make(map[entity.Channel]*mockSvc.MockChannelSender),
		now:              time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	if len(channels) == 0 {
		channels = entity.AllChannels
	}
	senders := make([]service.ChannelSender, 0, len(channels))
	for _, channel := range channels {
		sender := mockSvc.NewMockChannelSender(t)
		sender.EXPECT().Channel().Return(channel)
		fx.senders[channel] = sender
		senders = append(senders, sender)
	}

	cfg := &config.Config{Notifications: &config.NotificationsConfig{
		BatchSize:      10,
		MaxAttempts:    3,
		RetryBaseDelay: time.Minute,
		RetryMaxDelay:  10 * time.Minute,

		ProcessingLease: 5 * time.Minute,
	}}

	svc := NewNotificationService(NotificationServiceParams{
		TxManager:        fx.txManager,
		NotificationRepo: fx.notificationRepo,
		PreferenceRepo:   fx.preferenceRepo,
		TemplateRepo:     fx.templateRepo,
		QueueRepo:        fx.queueRepo,
		ProfileRepo:      fx.profileRepo,
		Senders:          senders,
		Renderer:         fakeRenderer{},
		Metrics:          service.NoopMetrics{},
		Config:           cfg,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*notificationService)
	svc.now = func() time.Time { return fx.now }
	fx.service = svc

	return fx
}

func (fx *notificationFixture) expectProfile(userID uuid.UUID) {
	fx.profileRepo.EXPECT().FindProfileByID(mock.Anything, userID).
		Return(&entity.Profile{ID: userID, Email: "ana@example.com", Phone: "+971500000000"}, nil).Maybe()
}

func (fx *notificationFixture) expectSend(channel entity.Channel, messageID string) {
	fx.senders[channel].EXPECT().Send(mock.Anything, mock.Anything).
		Return(&service.ChannelReceipt{ProviderMessageID: messageID}, nil).Once()
}

func TestNotificationService_SendMultiChannel_NoPreferenceAttemptsAllRequested(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.preferenceRepo.EXPECT().FindPreferenceByUser(ctx, userID).Return(nil, repository.ErrPreferenceNotFound)
	fx.expectProfile(userID)
	fx.expectSend(entity.ChannelEmail, "email-1")
	fx.expectSend(entity.ChannelSMS, "sms-1")
	fx.notificationRepo.EXPECT().BatchCreateDeliveries(ctx, mock.MatchedBy(func(d []*entity.NotificationDelivery) bool {
		return len(d) == 2
	})).Return(nil)

	result, err := fx.service.SendMultiChannelNotification(ctx, &usecase.NotificationRequest{
		UserID:   userID,
		Type:     entity.NotificationTypeOrderUpdate,
		Title:    "Order shipped",
		Message:  "Your order is on its way",
		Channels: []entity.Channel{entity.ChannelEmail, entity.ChannelSMS, entity.ChannelEmail},
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, []entity.Channel{entity.ChannelEmail, entity.ChannelSMS}, result.Attempted())
	assert.Empty(t, result.Skipped)
}

func TestNotificationService_SendMultiChannel_AttemptsExactlyEnabledChannels(t *testing.T) {
	requested := []entity.Channel{entity.ChannelEmail, entity.ChannelSMS, entity.ChannelPush, entity.ChannelInApp}

	tests := []struct {
		name    string
		pref    func(p *entity.NotificationPreference)
		attempt []entity.Channel
		skipped []entity.Channel
	}{
		{
			name:    "all enabled",
			pref:    func(p *entity.NotificationPreference) {},
			attempt: requested,
		},
		{
			name: "email and sms disabled",
			pref: func(p *entity.NotificationPreference) {
				p.EmailEnabled = false
				p.SMSEnabled = false
			},
			attempt: []entity.Channel{entity.ChannelPush, entity.ChannelInApp},
			skipped: []entity.Channel{entity.ChannelEmail, entity.ChannelSMS},
		},
		{
			name: "only in-app",
			pref: func(p *entity.NotificationPreference) {
				p.EmailEnabled = false
				p.SMSEnabled = false
				p.PushEnabled = false
			},
			attempt: []entity.Channel{entity.ChannelInApp},
			skipped: []entity.Channel{entity.ChannelEmail, entity.ChannelSMS, entity.ChannelPush},
		},
		{
			name: "type muted",
			pref: func(p *entity.NotificationPreference) {
				p.MutedTypes = []entity.NotificationType{entity.NotificationTypePromotion}
			},
			attempt: []entity.Channel{},
			skipped: requested,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNotificationService(t)
			ctx := context.Background()
			userID := uuid.New()

			pref := entity.DefaultNotificationPreference(userID)
			tt.pref(pref)
			fx.preferenceRepo.EXPECT().FindPreferenceByUser(ctx, userID).Return(pref, nil)
			fx.expectProfile(userID)
			for _, channel := range tt.attempt {
				fx.expectSend(channel, string(channel)+"-id")
			}
			fx.notificationRepo.EXPECT().BatchCreateDeliveries(ctx, mock.Anything).Return(nil)

			result, err := fx.service.SendMultiChannelNotification(ctx, &usecase.NotificationRequest{
				UserID:   userID,
				Type:     entity.NotificationTypePromotion,
				Title:    "Weekend deals",
				Message:  "New products from vendors you follow",
				Channels: requested,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.attempt, result.Attempted())
			assert.Equal(t, len(tt.skipped), len(result.Skipped))
			for _, channel := range tt.skipped {
				assert.Contains(t, result.Skipped, channel)
			}
		})
	}
}

func TestNotificationService_SendMultiChannel_SecurityIgnoresMutedTypes(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	pref := entity.DefaultNotificationPreference(userID)
	pref.MutedTypes = []entity.NotificationType{entity.NotificationTypeSecurity}
	fx.preferenceRepo.EXPECT().FindPreferenceByUser(ctx, userID).Return(pref, nil)
	fx.expectSend(entity.ChannelPush, "push-1")
	fx.notificationRepo.EXPECT().BatchCreateDeliveries(ctx, mock.Anything).Return(nil)

	result, err := fx.service.SendMultiChannelNotification(ctx, &usecase.NotificationRequest{
		UserID:   userID,
		Type:     entity.NotificationTypeSecurity,
		Title:    "New sign-in",
		Message:  "A new device signed in",
		Channels: []entity.Channel{entity.ChannelPush},
	})

	require.NoError(t, err)
	assert.Equal(t, []entity.Channel{entity.ChannelPush}, result.Attempted())
}

func TestNotificationService_SendMultiChannel_ChannelFailureDoesNotAbortOthers(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	fx.preferenceRepo.EXPECT().FindPreferenceByUser(ctx, userID).Return(nil, repository.ErrPreferenceNotFound)
	fx.expectProfile(userID)
	fx.senders[entity.ChannelEmail].EXPECT().Send(mock.Anything, mock.Anything).
		Return(nil, errors.New("smtp relay down"))
	fx.senders[entity.ChannelInApp].EXPECT().Send(mock.Anything, mock.Anything).
		Return(&service.ChannelReceipt{NotificationID: &notificationID}, nil)
	fx.notificationRepo.EXPECT().BatchCreateDeliveries(ctx, mock.MatchedBy(func(d []*entity.NotificationDelivery) bool {
		return len(d) == 2 && d[0].Status == entity.DeliveryStatusFailed && d[1].Status == entity.DeliveryStatusSent
	})).Return(nil)

	result, err := fx.service.SendMultiChannelNotification(ctx, &usecase.NotificationRequest{
		UserID:   userID,
		Type:     entity.NotificationTypePayment,
		Title:    "Payment received",
		Message:  "We received your payment",
		Channels: []entity.Channel{entity.ChannelEmail, entity.ChannelInApp},
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	require.Len(t, result.Results, 2)
	assert.False(t, result.Results[0].Success)
	assert.Equal(t, "smtp relay down", result.Results[0].Error)
	assert.True(t, result.Results[1].Success)
	assert.Equal(t, &notificationID, result.NotificationID)
}

func TestNotificationService_SendMultiChannel_MissingAdapterFails(t *testing.T) {
	fx := createTestNotificationService(t, entity.ChannelInApp)
	ctx := context.Background()
	userID := uuid.New()

	fx.preferenceRepo.EXPECT().FindPreferenceByUser(ctx, userID).Return(nil, repository.ErrPreferenceNotFound)
	fx.notificationRepo.EXPECT().BatchCreateDeliveries(ctx, mock.Anything).Return(nil)

	result, err := fx.service.SendMultiChannelNotification(ctx, &usecase.NotificationRequest{
		UserID:   userID,
		Type:     entity.NotificationTypeSystem,
		Title:    "Maintenance",
		Message:  "Tonight",
		Channels: []entity.Channel{entity.ChannelPush},
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, errChannelNotConfigured, result.Results[0].Error)
}

func TestNotificationService_SendMultiChannel_Validation(t *testing.T) {
	fx := createTestNotificationService(t, entity.ChannelInApp)
	ctx := context.Background()

	_, err := fx.service.SendMultiChannelNotification(ctx, &usecase.NotificationRequest{
		UserID: uuid.New(),
		Type:   "UNKNOWN",
		Title:  "x",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.SendMultiChannelNotification(ctx, &usecase.NotificationRequest{
		UserID:   uuid.New(),
		Type:     entity.NotificationTypeSystem,
		Title:    "x",
		Channels: []entity.Channel{"FAX"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_SendNotification_SingleChannel(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.preferenceRepo.EXPECT().FindPreferenceByUser(ctx, userID).Return(nil, repository.ErrPreferenceNotFound)
	fx.expectSend(entity.ChannelPush, "push-1")
	fx.notificationRepo.EXPECT().BatchCreateDeliveries(ctx, mock.Anything).Return(nil)

	result, err := fx.service.SendNotification(ctx, &usecase.NotificationRequest{
		UserID:   userID,
		Type:     entity.NotificationTypeMessage,
		Title:    "New message",
		Message:  "Hi",
		Channels: []entity.Channel{entity.ChannelEmail, entity.ChannelSMS},
	}, entity.ChannelPush)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, []entity.Channel{entity.ChannelPush}, result.Attempted())
	assert.Equal(t, "push-1", result.Results[0].ProviderMessageID)
}

func TestNotificationService_SendTemplatedNotification(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.templateRepo.EXPECT().FindActiveTemplateByName(ctx, "order_shipped").Return(&entity.NotificationTemplate{
		Name:            "order_shipped",
		Type:            entity.NotificationTypeOrderUpdate,
		TitleTemplate:   "Order {{order}} shipped",
		BodyTemplate:    "Hi {{name}}, order {{order}} is on its way",
		DefaultChannels: []entity.Channel{entity.ChannelInApp},
		IsActive:        true,
	}, nil)
	fx.preferenceRepo.EXPECT().FindPreferenceByUser(ctx, userID).Return(nil, repository.ErrPreferenceNotFound)
	fx.senders[entity.ChannelInApp].EXPECT().Send(mock.Anything, mock.MatchedBy(func(msg *service.ChannelMessage) bool {
		return msg.Title == "Order A-17 shipped" && msg.Body == "Hi Ana, order A-17 is on its way"
	})).Return(&service.ChannelReceipt{}, nil)
	fx.notificationRepo.EXPECT().BatchCreateDeliveries(ctx, mock.Anything).Return(nil)

	result, err := fx.service.SendTemplatedNotification(ctx, &usecase.TemplatedNotificationRequest{
		UserID:       userID,
		TemplateName: "order_shipped",
		Variables:    map[string]string{"order": "A-17", "name": "Ana"},
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, []entity.Channel{entity.ChannelInApp}, result.Attempted())
}

func TestNotificationService_SendTemplatedNotification_TemplateNotFound(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.templateRepo.EXPECT().FindActiveTemplateByName(ctx, "missing").Return(nil, repository.ErrTemplateNotFound)

	_, err := fx.service.SendTemplatedNotification(ctx, &usecase.TemplatedNotificationRequest{
		UserID:       uuid.New(),
		TemplateName: "missing",
	})

	assert.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
}

func TestNotificationService_CreateNotification(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
		return n.UserID == userID && n.Type == entity.NotificationTypeEscrow && n.ReadAt == nil
	})).Return(nil)

	notification, err := fx.service.CreateNotification(ctx, userID, entity.NotificationTypeEscrow, "Funds released", "", map[string]any{"escrow_id": "e1"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, notification.ID)
	assert.Equal(t, fx.now, notification.CreatedAt)
}

func TestNotificationService_EnqueueNotification(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.queueRepo.EXPECT().Enqueue(ctx, mock.MatchedBy(func(item *entity.NotificationQueueItem) bool {
		return item.Status == entity.QueueStatusPending && item.Attempts == 0 && item.NextAttemptAt.Equal(fx.now)
	})).Return(nil)

	item, err := fx.service.EnqueueNotification(ctx, &usecase.NotificationRequest{
		UserID:   userID,
		Type:     entity.NotificationTypeBooking,
		Title:    "Booking confirmed",
		Message:  "See you soon",
		Channels: []entity.Channel{entity.ChannelPush, entity.ChannelPush},
	})

	require.NoError(t, err)
	assert.Equal(t, []entity.Channel{entity.ChannelPush}, item.Channels)
}

func (fx *notificationFixture) expectClaim(t *testing.T, items []*entity.NotificationQueueItem) {
	fx.expectClaimThen(t, items, func() {})
}

// expectClaimThen runs after once the claim transaction has committed.
func (fx *notificationFixture) expectClaimThen(t *testing.T, items []*entity.NotificationQueueItem, after func()) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			queue := mockRepo.NewMockNotificationQueueRepository(t)
			factory.EXPECT().NewNotificationQueueRepository().Return(queue)
			queue.EXPECT().ClaimDue(ctx, fx.now, fx.now.Add(-5*time.Minute), 10).Return(items, nil)

			err := fn(factory)
			after()

			return err
		})
}

func TestNotificationService_ProcessQueue_SentRetriedAndFailed(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	sent := &entity.NotificationQueueItem{ID: uuid.New(), UserID: uuid.New(), Type: entity.NotificationTypeSystem, Title: "ok", Channels: []entity.Channel{entity.ChannelInApp}}
	retry := &entity.NotificationQueueItem{ID: uuid.New(), UserID: uuid.New(), Type: entity.NotificationTypeSystem, Title: "retry", Channels: []entity.Channel{entity.ChannelPush, entity.ChannelInApp}, Attempts: 1}
	exhausted := &entity.NotificationQueueItem{ID: uuid.New(), UserID: uuid.New(), Type: entity.NotificationTypeSystem, Title: "fail", Channels: []entity.Channel{entity.ChannelPush}, Attempts: 2}

	fx.expectClaim(t, []*entity.NotificationQueueItem{sent, retry, exhausted})
	fx.preferenceRepo.EXPECT().FindPreferenceByUser(ctx, mock.Anything).Return(nil, repository.ErrPreferenceNotFound)
	fx.notificationRepo.EXPECT().BatchCreateDeliveries(ctx, mock.Anything).Return(nil)
	fx.senders[entity.ChannelInApp].EXPECT().Send(mock.Anything, mock.Anything).Return(&service.ChannelReceipt{}, nil).Times(2)
	fx.senders[entity.ChannelPush].EXPECT().Send(mock.Anything, mock.Anything).Return(nil, errors.New("fcm unavailable")).Times(2)

	fx.queueRepo.EXPECT().MarkSent(ctx, sent.ID, fx.now).Return(nil)
	// attempts=2 -> base * 2^1
	fx.queueRepo.EXPECT().MarkRetry(ctx, retry.ID, []entity.Channel{entity.ChannelPush}, 2, fx.now.Add(2*time.Minute), "PUSH: fcm unavailable").Return(nil)
	fx.queueRepo.EXPECT().MarkFailed(ctx, exhausted.ID, 3, "PUSH: fcm unavailable", fx.now).Return(nil)

	stats, err := fx.service.ProcessQueue(ctx, 0)

	require.NoError(t, err)
	assert.Equal(t, &usecase.QueueStats{Claimed: 3, Sent: 1, Retried: 1, Failed: 1}, stats)
}

func TestNotificationService_ProcessQueue_PermanentErrorFailsImmediately(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	item := &entity.NotificationQueueItem{ID: uuid.New(), UserID: uuid.New(), TemplateName: "gone"}
	fx.expectClaim(t, []*entity.NotificationQueueItem{item})
	fx.templateRepo.EXPECT().FindActiveTemplateByName(ctx, "gone").Return(nil, repository.ErrTemplateNotFound)
	fx.queueRepo.EXPECT().MarkFailed(ctx, item.ID, 1, mock.AnythingOfType("string"), fx.now).Return(nil)

	stats, err := fx.service.ProcessQueue(ctx, 0)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Failed)
}

func TestNotificationService_ProcessQueue_CancelReleasesUnprocessed(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := &entity.NotificationQueueItem{ID: uuid.New(), UserID: uuid.New(), Channels: []entity.Channel{entity.ChannelInApp}}
	second := &entity.NotificationQueueItem{ID: uuid.New(), UserID: uuid.New(), Channels: []entity.Channel{entity.ChannelInApp}}

	fx.expectClaimThen(t, []*entity.NotificationQueueItem{first, second}, cancel)
	fx.queueRepo.EXPECT().
		Release(mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }), []uuid.UUID{first.ID, second.ID}, fx.now).
		Return(nil)

	stats, err := fx.service.ProcessQueue(ctx, 0)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, &usecase.QueueStats{Claimed: 2}, stats)
}

func TestNotificationService_ProcessQueue_LeaseDefaultsWhenUnset(t *testing.T) {
	fx := createTestNotificationService(t)
	fx.service.cfg.ProcessingLease = 0

	assert.Equal(t, defaultProcessingLease, fx.service.processingLease())
}

func TestNotificationService_Backoff(t *testing.T) {
	fx := createTestNotificationService(t, entity.ChannelInApp)

	assert.Equal(t, time.Minute, fx.service.backoff(1))
	assert.Equal(t, 2*time.Minute, fx.service.backoff(2))
	assert.Equal(t, 8*time.Minute, fx.service.backoff(4))
	assert.Equal(t, 10*time.Minute, fx.service.backoff(5))
}

func TestNotificationService_HandleEvent(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	first, second := uuid.New(), uuid.New()

	fx.queueRepo.EXPECT().Enqueue(ctx, mock.MatchedBy(func(item *entity.NotificationQueueItem) bool {
		return item.Type == entity.NotificationTypePromotion && len(item.Channels) == 1 && item.Channels[0] == entity.ChannelPush
	})).Return(nil).Times(2)

	err := fx.service.HandleEvent(ctx, &service.MarketplaceEvent{
		RequestID:    "req-1",
		Type:         service.EventProductPublished,
		RecipientIDs: []string{first.String(), "not-a-uuid", second.String()},
		Title:        "New arrival",
		Message:      "Spice Bazaar published Saffron 5g",
		Channels:     []string{"push"},
	})

	require.NoError(t, err)
}

func TestNotificationService_HandleEvent_EnqueueErrorIsReturned(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.queueRepo.EXPECT().Enqueue(ctx, mock.Anything).Return(errors.New("db down"))

	err := fx.service.HandleEvent(ctx, &service.MarketplaceEvent{
		Type:             service.EventNotificationFanout,
		NotificationType: string(entity.NotificationTypeGroupBuy),
		RecipientIDs:     []string{uuid.NewString()},
		TemplateName:     "group_buy_confirmed",
	})

	assert.Error(t, err)
}
