package service

import (
	"context"

	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
)

// PushPayload is one notification rendered for every device of a batch.
type PushPayload struct {
	Type  entity.NotificationType
	Title string
	Body  string
	Data  map[string]string
}

// PushResult counts per-token outcomes. InvalidTokens lists the tokens the
// provider reported as unregistered or malformed.
type PushResult struct {
	Success       int
	Failure       int
	InvalidTokens []string
}

// PushService sends one payload to at most 500 tokens per call.
type PushService interface {
	SendMulticast(ctx context.Context, tokens []string, payload *PushPayload) (*PushResult, error)
}

// ChannelMessage is what a channel adapter delivers to one recipient.
type ChannelMessage struct {
	UserID uuid.UUID
	Type   entity.NotificationType
	Title  string
	Body   string
	Data   map[string]any
	Email  string // Resolved from the recipient profile, empty when unknown.
	Phone  string
}

// ChannelReceipt describes a successful delivery.
type ChannelReceipt struct {
	ProviderMessageID string
	NotificationID    *uuid.UUID // Set by the in-app channel.
}

// ChannelSender delivers a message over a single channel.
type ChannelSender interface {
	Channel() entity.Channel
	Send(ctx context.Context, msg *ChannelMessage) (*ChannelReceipt, error)
}

// TemplateRenderer substitutes {{name}} placeholders.
type TemplateRenderer interface {
	Render(template string, vars map[string]string) string
}
