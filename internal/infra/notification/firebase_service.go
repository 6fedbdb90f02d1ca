// Package notification contains the channel adapters used by the notification dispatcher.
package notification

import (
	"context"
	"strings"

	"expatmart/config"
	"expatmart/internal/domain/entity"
	"expatmart/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// MaxPushBatchSize is the FCM multicast limit.
const MaxPushBatchSize = 500

type multicastClient interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastClient
}

// NewFirebaseService uses application default credentials when no
// credentials file is configured.
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.PushService, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

func (s *firebaseService) SendMulticast(ctx context.Context, tokens []string, payload *service.PushPayload) (*service.PushResult, error) {
	if len(tokens) == 0 {
		return &service.PushResult{}, nil
	}
	if len(tokens) > MaxPushBatchSize {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), MaxPushBatchSize)
	}

	resp, err := s.client.SendEachForMulticast(ctx, multicastMessage(tokens, payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.PushResult{Success: resp.SuccessCount, Failure: resp.FailureCount}
	for i, r := range resp.Responses {
		if r.Error != nil && (messaging.IsInvalidArgument(r.Error) || messaging.IsUnregistered(r.Error)) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[i])
		}
	}

	return result, nil
}

// multicastMessage maps the notification type onto platform delivery hints.
// Transactional types wake the device; promotions collapse into one.
func multicastMessage(tokens []string, payload *service.PushPayload) *messaging.MulticastMessage {
	urgent := isUrgent(payload.Type)
	channel := strings.ToLower(string(payload.Type))

	android := &messaging.AndroidConfig{
		Priority: "normal",
		Notification: &messaging.AndroidNotification{
			ChannelID: channel,
		},
	}
	apns := &messaging.APNSConfig{
		Headers: map[string]string{"apns-priority": "5"},
		Payload: &messaging.APNSPayload{
			Aps: &messaging.Aps{ThreadID: channel},
		},
	}
	if urgent {
		android.Priority = "high"
		apns.Headers["apns-priority"] = "10"
		apns.Payload.Aps.Sound = "default"
	}
	if payload.Type == entity.NotificationTypePromotion {
		android.CollapseKey = channel
		apns.Headers["apns-collapse-id"] = channel
	}

	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data:    payload.Data,
		Android: android,
		APNS:    apns,
	}
}

func isUrgent(t entity.NotificationType) bool {
	switch t {
	case entity.NotificationTypePayment,
		entity.NotificationTypeEscrow,
		entity.NotificationTypeOrderUpdate,
		entity.NotificationTypeMessage,
		entity.NotificationTypeBooking,
		entity.NotificationTypeSecurity:
		return true
	default:
		return false
	}
}
