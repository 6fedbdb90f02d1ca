package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Channel is a notification delivery medium.
type Channel string

const (
	ChannelEmail Channel = "EMAIL"
	ChannelSMS   Channel = "SMS"
	ChannelPush  Channel = "PUSH"
	ChannelInApp Channel = "IN_APP"
)

// AllChannels lists every channel in dispatch order.
var AllChannels = []Channel{ChannelInApp, ChannelPush, ChannelEmail, ChannelSMS}

// IsValid checks if the channel is a known value.
func (c Channel) IsValid() bool {
	switch c {
	case ChannelEmail, ChannelSMS, ChannelPush, ChannelInApp:
		return true
	default:
		return false
	}
}

// ParseChannel converts a loosely formatted string ("push", "in-app") into a Channel.
func ParseChannel(s string) (Channel, bool) {
	c := Channel(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")))
	return c, c.IsValid()
}

// NotificationType classifies notifications for templating and muting.
type NotificationType string

const (
	NotificationTypeOrderUpdate NotificationType = "ORDER_UPDATE"
	NotificationTypePayment     NotificationType = "PAYMENT"
	NotificationTypeEscrow      NotificationType = "ESCROW"
	NotificationTypeMessage     NotificationType = "MESSAGE"
	NotificationTypeBooking     NotificationType = "BOOKING"
	NotificationTypeGroupBuy    NotificationType = "GROUP_BUY"
	NotificationTypeKYC         NotificationType = "KYC"
	NotificationTypeSecurity    NotificationType = "SECURITY"
	NotificationTypePromotion   NotificationType = "PROMOTION"
	NotificationTypeSystem      NotificationType = "SYSTEM"
)

// IsValid checks if the type is a known value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeOrderUpdate, NotificationTypePayment, NotificationTypeEscrow,
		NotificationTypeMessage, NotificationTypeBooking, NotificationTypeGroupBuy,
		NotificationTypeKYC, NotificationTypeSecurity, NotificationTypePromotion,
		NotificationTypeSystem:
		return true
	default:
		return false
	}
}

// Mutable reports whether users may silence this type. Security alerts always go out.
func (t NotificationType) Mutable() bool {
	return t != NotificationTypeSecurity
}

// Notification is an in-app inbox entry.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Data      map[string]any   `json:"data,omitempty"`
	ReadAt    *time.Time       `json:"read_at,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// IsRead reports whether the user has opened the notification.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

// NotificationPreference holds a user's channel switches.
type NotificationPreference struct {
	UserID       uuid.UUID          `json:"user_id"`
	EmailEnabled bool               `json:"email_enabled"`
	SMSEnabled   bool               `json:"sms_enabled"`
	PushEnabled  bool               `json:"push_enabled"`
	InAppEnabled bool               `json:"in_app_enabled"`
	MutedTypes   []NotificationType `json:"muted_types"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// DefaultNotificationPreference is what a user without a stored record sees.
func DefaultNotificationPreference(userID uuid.UUID) *NotificationPreference {
	return &NotificationPreference{
		UserID:       userID,
		EmailEnabled: true,
		SMSEnabled:   true,
		PushEnabled:  true,
		InAppEnabled: true,
		MutedTypes:   []NotificationType{},
	}
}

// Allows reports whether the given channel is switched on.
func (p *NotificationPreference) Allows(c Channel) bool {
	switch c {
	case ChannelEmail:
		return p.EmailEnabled
	case ChannelSMS:
		return p.SMSEnabled
	case ChannelPush:
		return p.PushEnabled
	case ChannelInApp:
		return p.InAppEnabled
	default:
		return false
	}
}

// IsMuted reports whether the user silenced the type.
func (p *NotificationPreference) IsMuted(t NotificationType) bool {
	if !t.Mutable() {
		return false
	}
	for _, muted := range p.MutedTypes {
		if muted == t {
			return true
		}
	}

	return false
}

// NotificationTemplate is a stored title/body pair with {{placeholders}}.
type NotificationTemplate struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	Type            NotificationType `json:"type"`
	TitleTemplate   string           `json:"title_template"`
	BodyTemplate    string           `json:"body_template"`
	DefaultChannels []Channel        `json:"default_channels"`
	IsActive        bool             `json:"is_active"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// DeliveryStatus is the outcome of one channel attempt.
type DeliveryStatus string

const (
	DeliveryStatusSent    DeliveryStatus = "SENT"
	DeliveryStatusFailed  DeliveryStatus = "FAILED"
	DeliveryStatusSkipped DeliveryStatus = "SKIPPED"
)

// NotificationDelivery logs a single channel attempt.
type NotificationDelivery struct {
	ID                uuid.UUID        `json:"id"`
	UserID            uuid.UUID        `json:"user_id"`
	NotificationID    *uuid.UUID       `json:"notification_id,omitempty"`     // Inbox row, when the IN_APP channel created one.
	Type              NotificationType `json:"type"`
	Channel           Channel          `json:"channel"`
	Status            DeliveryStatus   `json:"status"`
	ProviderMessageID string           `json:"provider_message_id,omitempty"`
	ErrorMessage      string           `json:"error_message,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
}

// QueueStatus tracks a durable queue row.
type QueueStatus string

const (
	QueueStatusPending    QueueStatus = "PENDING"
	QueueStatusProcessing QueueStatus = "PROCESSING"
	QueueStatusSent       QueueStatus = "SENT"
	QueueStatusFailed     QueueStatus = "FAILED"
)

// NotificationQueueItem is a notification waiting to be dispatched by the worker.
type NotificationQueueItem struct {
	ID            uuid.UUID         `json:"id"`
	UserID        uuid.UUID         `json:"user_id"`
	Type          NotificationType  `json:"type"`
	Title         string            `json:"title"`
	Message       string            `json:"message"`
	Data          map[string]any    `json:"data,omitempty"`
	Channels      []Channel         `json:"channels"`
	TemplateName  string            `json:"template_name,omitempty"`
	Variables     map[string]string `json:"variables,omitempty"`
	Status        QueueStatus       `json:"status"`
	Attempts      int               `json:"attempts"`
	LastError     string            `json:"last_error,omitempty"`
	NextAttemptAt time.Time         `json:"next_attempt_at"`
	ProcessedAt   *time.Time        `json:"processed_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
