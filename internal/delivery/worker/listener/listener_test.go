package listener

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"expatmart/config"
	"expatmart/internal/domain/entity"
	"expatmart/internal/infra/realtime"
	mockRepo "expatmart/internal/mocks/repository"
	mockUsecase "expatmart/internal/mocks/usecase"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type fixture struct {
	listener       *Listener
	notificationUC *mockUsecase.MockNotificationUsecase
	queueRepo      *mockRepo.MockNotificationQueueRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := realtime.NewClient(&config.Config{Supabase: &config.SupabaseConfig{
		URL:      "http://localhost:54321",
		Realtime: config.RealtimeConfig{Schema: "public", HeartbeatInterval: time.Minute, ReconnectDelay: time.Second},
	}}, logger)
	require.NoError(t, err)

	fx := &fixture{
		notificationUC: mockUsecase.NewMockNotificationUsecase(t),
		queueRepo:      mockRepo.NewMockNotificationQueueRepository(t),
	}
	fx.listener = New(Params{
		Client:         client,
		NotificationUC: fx.notificationUC,
		QueueRepo:      fx.queueRepo,
		Logger:         logger,
	})

	return fx
}

func change(table, record, oldRecord string, at time.Time) *realtime.Change {
	return &realtime.Change{
		Schema:          "public",
		Table:           table,
		Type:            "UPDATE",
		CommitTimestamp: at,
		Record:          gjson.Parse(record),
		OldRecord:       gjson.Parse(oldRecord),
	}
}

func TestListener_OnMessage(t *testing.T) {
	recipientID := uuid.New()
	senderID := uuid.New()
	listingID := uuid.New()

	t.Run("notifies the recipient", func(t *testing.T) {
		fx := newFixture(t)
		fx.notificationUC.EXPECT().
			EnqueueNotification(mock.Anything, mock.MatchedBy(func(req *usecase.NotificationRequest) bool {
				return req.UserID == recipientID &&
					req.Type == entity.NotificationTypeMessage &&
					req.Message == "Is the sofa still available?" &&
					req.Data["listing_id"] == listingID.String() &&
					req.Data["sender_id"] == senderID.String() &&
					assert.ObjectsAreEqual([]entity.Channel{entity.ChannelPush, entity.ChannelInApp}, req.Channels)
			})).
			Return(&entity.NotificationQueueItem{}, nil)

		record := `{"id":"` + uuid.NewString() + `","sender_id":"` + senderID.String() + `","recipient_id":"` + recipientID.String() +
			`","listing_id":"` + listingID.String() + `","body":"Is the sofa   still available?"}`
		fx.listener.onMessage(context.Background(), change("messages", record, "", time.Time{}))
	})

	t.Run("null listing is omitted", func(t *testing.T) {
		fx := newFixture(t)
		fx.notificationUC.EXPECT().
			EnqueueNotification(mock.Anything, mock.MatchedBy(func(req *usecase.NotificationRequest) bool {
				_, has := req.Data["listing_id"]

				return !has
			})).
			Return(&entity.NotificationQueueItem{}, nil)

		record := `{"id":"m1","sender_id":"` + senderID.String() + `","recipient_id":"` + recipientID.String() + `","listing_id":null,"body":"hello"}`
		fx.listener.onMessage(context.Background(), change("messages", record, "", time.Time{}))
	})

	t.Run("missing recipient is skipped", func(t *testing.T) {
		fx := newFixture(t)

		fx.listener.onMessage(context.Background(), change("messages", `{"id":"m1","body":"hello"}`, "", time.Time{}))
	})
}

func TestListener_OnOrderUpdate(t *testing.T) {
	buyerID := uuid.New()
	orderID := uuid.New()
	committed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	record := `{"id":"` + orderID.String() + `","buyer_id":"` + buyerID.String() + `","status":"DELIVERED"}`

	t.Run("status change notifies the buyer", func(t *testing.T) {
		fx := newFixture(t)
		fx.queueRepo.EXPECT().
			HasRecent(mock.Anything, buyerID, map[string]string{"order_id": orderID.String()}, committed.Add(-dedupeWindow)).
			Return(false, nil)
		fx.notificationUC.EXPECT().
			EnqueueNotification(mock.Anything, mock.MatchedBy(func(req *usecase.NotificationRequest) bool {
				return req.UserID == buyerID &&
					req.Type == entity.NotificationTypeOrderUpdate &&
					req.Message == "Your order is now delivered." &&
					req.Data["status"] == "DELIVERED"
			})).
			Return(&entity.NotificationQueueItem{}, nil)

		fx.listener.onOrderUpdate(context.Background(), change("orders", record, `{"status":"FULFILLING"}`, committed))
	})

	t.Run("already notified by the API", func(t *testing.T) {
		fx := newFixture(t)
		fx.queueRepo.EXPECT().
			HasRecent(mock.Anything, buyerID, mock.Anything, mock.Anything).
			Return(true, nil)

		fx.listener.onOrderUpdate(context.Background(), change("orders", record, `{"status":"FULFILLING"}`, committed))
	})

	t.Run("lookup failure still notifies", func(t *testing.T) {
		fx := newFixture(t)
		fx.queueRepo.EXPECT().
			HasRecent(mock.Anything, buyerID, mock.Anything, mock.Anything).
			Return(false, errors.New("timeout"))
		fx.notificationUC.EXPECT().
			EnqueueNotification(mock.Anything, mock.Anything).
			Return(nil, errors.New("queue unavailable"))

		fx.listener.onOrderUpdate(context.Background(), change("orders", record, `{"status":"FULFILLING"}`, committed))
	})

	t.Run("unchanged status", func(t *testing.T) {
		fx := newFixture(t)

		fx.listener.onOrderUpdate(context.Background(), change("orders", record, `{"status":"DELIVERED"}`, committed))
	})

	t.Run("old record without status", func(t *testing.T) {
		fx := newFixture(t)

		fx.listener.onOrderUpdate(context.Background(), change("orders", record, `{"id":"`+orderID.String()+`"}`, committed))
	})
}

func TestListener_OnBookingUpdate(t *testing.T) {
	customerID := uuid.New()
	bookingID := uuid.New()
	now := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)

	fx := newFixture(t)
	fx.listener.now = func() time.Time { return now }
	fx.queueRepo.EXPECT().
		HasRecent(mock.Anything, customerID, map[string]string{"booking_id": bookingID.String()}, now.Add(-dedupeWindow)).
		Return(false, nil)
	fx.notificationUC.EXPECT().
		EnqueueNotification(mock.Anything, mock.MatchedBy(func(req *usecase.NotificationRequest) bool {
			return req.UserID == customerID &&
				req.Type == entity.NotificationTypeBooking &&
				req.Title == "Booking confirmed"
		})).
		Return(&entity.NotificationQueueItem{}, nil)

	record := `{"id":"` + bookingID.String() + `","customer_id":"` + customerID.String() + `","service_id":"s1","status":"CONFIRMED"}`
	fx.listener.onBookingUpdate(context.Background(), change("service_bookings", record, `{"status":"PENDING"}`, time.Time{}))
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "hello there", preview("  hello\n there "))

	long := preview(strings.Repeat("é", previewLength+10))
	assert.Equal(t, previewLength, len([]rune(long)))
	assert.True(t, strings.HasSuffix(long, "…"))
}
