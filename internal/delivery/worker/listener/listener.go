// Package listener turns realtime row changes into user notifications.
package listener

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"expatmart/internal/domain/entity"
	"expatmart/internal/domain/repository"
	"expatmart/internal/infra/realtime"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/fx"
)

const (
	// Notifications enqueued by the API for the same row within this window
	// suppress the realtime one.
	dedupeWindow = 2 * time.Minute

	previewLength = 120
)

// Listener notifies users about chat messages and status changes written
// directly to the database.
type Listener struct {
	client    *realtime.Client
	notifier  usecase.NotificationUsecase
	queueRepo repository.NotificationQueueRepository
	logger    *slog.Logger
	now       func() time.Time
}

// Params holds dependencies for the Listener
type Params struct {
	fx.In

	Client         *realtime.Client
	NotificationUC usecase.NotificationUsecase
	QueueRepo      repository.NotificationQueueRepository
	Logger         *slog.Logger
}

// New binds the listener's handlers on the client.
func New(params Params) *Listener {
	l := &Listener{
		client:    params.Client,
		notifier:  params.NotificationUC,
		queueRepo: params.QueueRepo,
		logger:    params.Logger,
		now:       time.Now,
	}

	params.Client.On("messages", "INSERT", l.onMessage)
	params.Client.On("service_bookings", "UPDATE", l.onBookingUpdate)
	params.Client.On("orders", "UPDATE", l.onOrderUpdate)

	return l
}

// Run blocks until ctx is cancelled.
func (l *Listener) Run(ctx context.Context) error {
	return l.client.Run(ctx)
}

func (l *Listener) onMessage(ctx context.Context, change *realtime.Change) {
	recipientID, ok := parseID(change.Record.Get("recipient_id"))
	if !ok {
		l.logger.Warn("Message without recipient", slog.String("message_id", change.Record.Get("id").String()))

		return
	}

	data := map[string]any{
		"message_id": change.Record.Get("id").String(),
		"sender_id":  change.Record.Get("sender_id").String(),
	}
	if listingID := change.Record.Get("listing_id"); listingID.Type == gjson.String {
		data["listing_id"] = listingID.String()
	}

	l.enqueue(ctx, &usecase.NotificationRequest{
		UserID:   recipientID,
		Type:     entity.NotificationTypeMessage,
		Title:    "New message",
		Message:  preview(change.Record.Get("body").String()),
		Data:     data,
		Channels: []entity.Channel{entity.ChannelPush, entity.ChannelInApp},
	})
}

func (l *Listener) onBookingUpdate(ctx context.Context, change *realtime.Change) {
	status, changed := statusChange(change)
	if !changed {
		return
	}

	customerID, ok := parseID(change.Record.Get("customer_id"))
	if !ok {
		return
	}

	bookingID := change.Record.Get("id").String()
	if l.recentlyNotified(ctx, customerID, "booking_id", bookingID, change) {
		return
	}

	l.enqueue(ctx, &usecase.NotificationRequest{
		UserID:  customerID,
		Type:    entity.NotificationTypeBooking,
		Title:   "Booking " + strings.ToLower(status),
		Message: "Your booking is now " + strings.ToLower(status) + ".",
		Data: map[string]any{
			"booking_id": bookingID,
			"service_id": change.Record.Get("service_id").String(),
			"status":     status,
		},
	})
}

func (l *Listener) onOrderUpdate(ctx context.Context, change *realtime.Change) {
	status, changed := statusChange(change)
	if !changed {
		return
	}

	buyerID, ok := parseID(change.Record.Get("buyer_id"))
	if !ok {
		return
	}

	orderID := change.Record.Get("id").String()
	if l.recentlyNotified(ctx, buyerID, "order_id", orderID, change) {
		return
	}

	l.enqueue(ctx, &usecase.NotificationRequest{
		UserID:  buyerID,
		Type:    entity.NotificationTypeOrderUpdate,
		Title:   "Order update",
		Message: "Your order is now " + strings.ToLower(status) + ".",
		Data: map[string]any{
			"order_id": orderID,
			"status":   status,
		},
	})
}

// recentlyNotified reports whether the user already has a queued notification
// about the row. Lookup failures fall through to sending.
func (l *Listener) recentlyNotified(ctx context.Context, userID uuid.UUID, key, id string, change *realtime.Change) bool {
	at := change.CommitTimestamp
	if at.IsZero() {
		at = l.now()
	}

	found, err := l.queueRepo.HasRecent(ctx, userID, map[string]string{key: id}, at.Add(-dedupeWindow))
	if err != nil {
		l.logger.Warn("Failed to check recent notifications",
			slog.String("table", change.Table),
			slog.String(key, id),
			slog.Any("error", err),
		)

		return false
	}

	return found
}

func (l *Listener) enqueue(ctx context.Context, req *usecase.NotificationRequest) {
	if _, err := l.notifier.EnqueueNotification(ctx, req); err != nil {
		l.logger.Error("Failed to enqueue realtime notification",
			slog.String("user_id", req.UserID.String()),
			slog.String("type", string(req.Type)),
			slog.Any("error", err),
		)
	}
}

// statusChange returns the new status when the update moved it.
// Without a full replica identity old_record lacks the status and nothing is reported.
func statusChange(change *realtime.Change) (string, bool) {
	status := change.Record.Get("status").String()
	previous := change.OldRecord.Get("status")
	if status == "" || !previous.Exists() || previous.String() == status {
		return status, false
	}

	return status, true
}

func parseID(value gjson.Result) (uuid.UUID, bool) {
	id, err := uuid.Parse(value.String())
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}

func preview(body string) string {
	body = strings.Join(strings.Fields(body), " ")
	if utf8.RuneCountInString(body) <= previewLength {
		return body
	}

	return string([]rune(body)[:previewLength-1]) + "…"
}
