package service

import (
	"context"
	"time"
)

// EventType names a marketplace event carried over Pub/Sub.
type EventType string

const (
	// EventNotificationFanout asks the worker to notify every recipient.
	EventNotificationFanout EventType = "notification.fanout"
	// EventProductPublished announces a new vendor product to followers.
	EventProductPublished EventType = "vendor.product_published"
	// EventGroupBuyUpdated announces a group buy status change to participants.
	EventGroupBuyUpdated EventType = "group_buy.updated"
)

// MarketplaceEvent is processed by the worker's push endpoint. Events with
// the same Type and SubjectID are delivered in publish order when the
// transport supports ordering.
type MarketplaceEvent struct {
	RequestID        string            `json:"request_id,omitempty"`
	Type             EventType         `json:"type"`
	SubjectID        string            `json:"subject_id,omitempty"`
	RecipientIDs     []string          `json:"recipient_ids"`
	NotificationType string            `json:"notification_type"`
	Title            string            `json:"title,omitempty"`
	Message          string            `json:"message,omitempty"`
	TemplateName     string            `json:"template_name,omitempty"`
	Variables        map[string]string `json:"variables,omitempty"`
	Data             map[string]any    `json:"data,omitempty"`
	Channels         []string          `json:"channels,omitempty"`
	OccurredAt       time.Time         `json:"occurred_at"`
}

// OrderingKey groups events that must not overtake each other.
func (e *MarketplaceEvent) OrderingKey() string {
	if e.SubjectID == "" {
		return ""
	}

	return string(e.Type) + ":" + e.SubjectID
}

type EventPublisher interface {
	// PublishEvent blocks until the transport accepted the event.
	PublishEvent(ctx context.Context, event *MarketplaceEvent) error
	Close() error
}
