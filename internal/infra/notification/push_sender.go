package notification

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"expatmart/config"
	"expatmart/internal/domain/entity"
	"expatmart/internal/domain/repository"
	"expatmart/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrNoActiveDevices is returned when the recipient has no device to push to.
var ErrNoActiveDevices = errors.New("no active devices")

type pushSender struct {
	push       service.PushService
	deviceRepo repository.DeviceRepository
	batchSize  int
	logger     *slog.Logger
}

// NewPushSender creates the PUSH channel adapter. push may be nil when Firebase
// is not configured; every send then fails.
func NewPushSender(push service.PushService, deviceRepo repository.DeviceRepository, cfg *config.Config, logger *slog.Logger) service.ChannelSender {
	batchSize := MaxPushBatchSize
	if cfg.Notifications != nil && cfg.Notifications.PushBatchSize > 0 && cfg.Notifications.PushBatchSize < MaxPushBatchSize {
		batchSize = cfg.Notifications.PushBatchSize
	}

	return &pushSender{
		push:       push,
		deviceRepo: deviceRepo,
		batchSize:  batchSize,
		logger:     logger,
	}
}

func (s *pushSender) Channel() entity.Channel {
	return entity.ChannelPush
}

// Send pushes to every active device of the recipient in FCM-sized batches and
// deactivates the devices whose tokens FCM rejects.
func (s *pushSender) Send(ctx context.Context, msg *service.ChannelMessage) (*service.ChannelReceipt, error) {
	if s.push == nil {
		return nil, errors.New("push service not configured")
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, msg.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load devices")
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if device.Deliverable() {
			tokens = append(tokens, device.FCMToken)
		}
	}
	if len(tokens) == 0 {
		return nil, ErrNoActiveDevices
	}
	payload := &service.PushPayload{
		Type:  msg.Type,
		Title: msg.Title,
		Body:  msg.Body,
		Data:  pushData(msg),
	}

	var success, failure int
	var invalid []string
	for batch := range slices.Chunk(tokens, s.batchSize) {
		result, err := s.push.SendMulticast(ctx, batch, payload)
		if err != nil {
			s.logger.WarnContext(ctx, "Push batch failed",
				slog.String("user_id", msg.UserID.String()),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			failure += len(batch)

			continue
		}
		success += result.Success
		failure += result.Failure
		invalid = append(invalid, result.InvalidTokens...)
	}

	s.removeInvalidTokens(ctx, invalid)

	if success == 0 {
		return nil, errors.Errorf("push failed on all %d devices", len(tokens))
	}

	return &service.ChannelReceipt{
		ProviderMessageID: fmt.Sprintf("fcm:%d/%d", success, success+failure),
	}, nil
}

func (s *pushSender) removeInvalidTokens(ctx context.Context, tokens []string) {
	if len(tokens) == 0 {
		return
	}

	deactivated, err := s.deviceRepo.DeactivateDevicesByTokens(ctx, tokens)
	if err != nil {
		s.logger.Warn("Failed to deactivate invalid push tokens",
			slog.Int("count", len(tokens)),
			slog.Any("error", err),
		)

		return
	}

	s.logger.Info("Deactivated devices with invalid push tokens", slog.Int64("count", deactivated))
}

// pushData flattens the payload into the string map FCM requires.
func pushData(msg *service.ChannelMessage) map[string]string {
	data := make(map[string]string, len(msg.Data)+1)
	for k, v := range msg.Data {
		if v == nil {
			continue
		}
		data[k] = fmt.Sprint(v)
	}
	data["type"] = string(msg.Type)

	return data
}
