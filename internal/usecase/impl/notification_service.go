package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"expatmart/config"
	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/lifecycle"
	"expatmart/internal/domain/repository"
	"expatmart/internal/domain/service"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	errChannelNotConfigured = "channel not configured"

	defaultProcessingLease = 10 * time.Minute
)

// NotificationServiceParams holds the dependencies of the notification dispatcher.
type NotificationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	NotificationRepo repository.NotificationRepository
	PreferenceRepo   repository.NotificationPreferenceRepository
	TemplateRepo     repository.NotificationTemplateRepository
	QueueRepo        repository.NotificationQueueRepository
	ProfileRepo      repository.ProfileRepository
	Senders          []service.ChannelSender `group:"channel_senders"`
	Renderer         service.TemplateRenderer
	Metrics          service.MetricsRecorder
	Config           *config.Config
	Logger           *slog.Logger
}

type notificationService struct {
	txManager        repository.TransactionManager
	notificationRepo repository.NotificationRepository
	preferenceRepo   repository.NotificationPreferenceRepository
	templateRepo     repository.NotificationTemplateRepository
	queueRepo        repository.NotificationQueueRepository
	profileRepo      repository.ProfileRepository
	senders          map[entity.Channel]service.ChannelSender
	renderer         service.TemplateRenderer
	metrics          service.MetricsRecorder
	cfg              *config.NotificationsConfig
	logger           *slog.Logger
	now              func() time.Time
}

// NewNotificationService creates the multi-channel notification dispatcher.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	senders := make(map[entity.Channel]service.ChannelSender, len(params.Senders))
	for _, sender := range params.Senders {
		senders[sender.Channel()] = sender
	}

	return &notificationService{
		txManager:        params.TxManager,
		notificationRepo: params.NotificationRepo,
		preferenceRepo:   params.PreferenceRepo,
		templateRepo:     params.TemplateRepo,
		queueRepo:        params.QueueRepo,
		profileRepo:      params.ProfileRepo,
		senders:          senders,
		renderer:         params.Renderer,
		metrics:          params.Metrics,
		cfg:              params.Config.Notifications,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// SendNotification dispatches over one channel, still honoring preferences.
func (s *notificationService) SendNotification(ctx context.Context, req *usecase.NotificationRequest, channel entity.Channel) (*usecase.DispatchResult, error) {
	if req == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "notification request is required")
	}
	single := *req
	single.Channels = []entity.Channel{channel}

	return s.SendMultiChannelNotification(ctx, &single)
}

// SendMultiChannelNotification attempts every requested channel the user allows.
func (s *notificationService) SendMultiChannelNotification(ctx context.Context, req *usecase.NotificationRequest) (*usecase.DispatchResult, error) {
	if err := validateNotificationRequest(req); err != nil {
		return nil, err
	}

	channels, err := normalizeChannels(req.Channels)
	if err != nil {
		return nil, err
	}

	pref, err := s.preferenceRepo.FindPreferenceByUser(ctx, req.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrPreferenceNotFound) {
			return nil, errors.Wrap(err, "failed to load notification preferences")
		}
		// No record: every requested channel is attempted.
		pref = nil
	}

	result := &usecase.DispatchResult{Results: make([]usecase.ChannelResult, 0, len(channels))}
	attempt := make([]entity.Channel, 0, len(channels))
	for _, channel := range channels {
		if pref != nil && (!pref.Allows(channel) || pref.IsMuted(req.Type)) {
			result.Skipped = append(result.Skipped, channel)

			continue
		}
		attempt = append(attempt, channel)
	}

	msg := &service.ChannelMessage{
		UserID: req.UserID,
		Type:   req.Type,
		Title:  req.Title,
		Body:   req.Message,
		Data:   req.Data,
	}
	if needsContact(attempt) {
		s.resolveContact(ctx, msg)
	}

	deliveries := make([]*entity.NotificationDelivery, 0, len(attempt))
	for _, channel := range attempt {
		channelResult, receipt := s.dispatch(ctx, channel, msg)
		result.Results = append(result.Results, channelResult)

		delivery := &entity.NotificationDelivery{
			ID:                uuid.New(),
			UserID:            req.UserID,
			Type:              req.Type,
			Channel:           channel,
			Status:            entity.DeliveryStatusSent,
			ProviderMessageID: channelResult.ProviderMessageID,
			ErrorMessage:      channelResult.Error,
			CreatedAt:         s.now(),
		}
		if !channelResult.Success {
			delivery.Status = entity.DeliveryStatusFailed
		}
		if receipt != nil && receipt.NotificationID != nil {
			result.NotificationID = receipt.NotificationID
			delivery.NotificationID = receipt.NotificationID
		}
		deliveries = append(deliveries, delivery)
	}

	for _, channel := range result.Skipped {
		deliveries = append(deliveries, &entity.NotificationDelivery{
			ID:        uuid.New(),
			UserID:    req.UserID,
			Type:      req.Type,
			Channel:   channel,
			Status:    entity.DeliveryStatusSkipped,
			CreatedAt: s.now(),
		})
	}

	if len(deliveries) > 0 {
		if err := s.notificationRepo.BatchCreateDeliveries(ctx, deliveries); err != nil {
			// Delivery logs are best effort.
			s.logger.Warn("Failed to record notification deliveries",
				slog.String("user_id", req.UserID.String()),
				slog.Any("error", err),
			)
		}
	}

	result.Success = true
	for _, res := range result.Results {
		if !res.Success {
			result.Success = false

			break
		}
	}

	s.logger.Debug("Notification dispatched",
		slog.String("user_id", req.UserID.String()),
		slog.String("type", string(req.Type)),
		slog.Int("attempted", len(result.Results)),
		slog.Int("skipped", len(result.Skipped)),
		slog.Bool("success", result.Success),
	)

	return result, nil
}

// dispatch runs one channel adapter. Failures are reported in the result, never returned.
func (s *notificationService) dispatch(ctx context.Context, channel entity.Channel, msg *service.ChannelMessage) (usecase.ChannelResult, *service.ChannelReceipt) {
	res := usecase.ChannelResult{Channel: channel}

	sender, ok := s.senders[channel]
	if !ok {
		res.Error = errChannelNotConfigured
		s.metrics.NotificationAttempt(string(channel), string(entity.DeliveryStatusFailed))

		return res, nil
	}

	receipt, err := sender.Send(ctx, msg)
	if err != nil {
		res.Error = err.Error()
		s.metrics.NotificationAttempt(string(channel), string(entity.DeliveryStatusFailed))
		s.logger.Warn("Notification channel failed",
			slog.String("channel", string(channel)),
			slog.String("user_id", msg.UserID.String()),
			slog.Any("error", err),
		)

		return res, nil
	}

	res.Success = true
	if receipt != nil {
		res.ProviderMessageID = receipt.ProviderMessageID
	}
	s.metrics.NotificationAttempt(string(channel), string(entity.DeliveryStatusSent))

	return res, receipt
}

func (s *notificationService) resolveContact(ctx context.Context, msg *service.ChannelMessage) {
	profile, err := s.profileRepo.FindProfileByID(ctx, msg.UserID)
	if err != nil {
		// The EMAIL and SMS adapters fail on their own when the contact is missing.
		s.logger.Warn("Failed to resolve recipient contact",
			slog.String("user_id", msg.UserID.String()),
			slog.Any("error", err),
		)

		return
	}
	msg.Email = profile.Email
	msg.Phone = profile.Phone
}

// SendTemplatedNotification renders an active template and dispatches it.
func (s *notificationService) SendTemplatedNotification(ctx context.Context, req *usecase.TemplatedNotificationRequest) (*usecase.DispatchResult, error) {
	rendered, err := s.renderTemplated(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.SendMultiChannelNotification(ctx, rendered)
}

func (s *notificationService) renderTemplated(ctx context.Context, req *usecase.TemplatedNotificationRequest) (*usecase.NotificationRequest, error) {
	if req == nil || req.UserID == uuid.Nil || strings.TrimSpace(req.TemplateName) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "user and template name are required")
	}

	tpl, err := s.templateRepo.FindActiveTemplateByName(ctx, req.TemplateName)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrTemplateNotFound, "template %q", req.TemplateName)
		}

		return nil, errors.Wrap(err, "failed to load notification template")
	}

	channels := req.Channels
	if len(channels) == 0 {
		channels = tpl.DefaultChannels
	}

	return &usecase.NotificationRequest{
		UserID:   req.UserID,
		Type:     tpl.Type,
		Title:    s.renderer.Render(tpl.TitleTemplate, req.Variables),
		Message:  s.renderer.Render(tpl.BodyTemplate, req.Variables),
		Data:     req.Data,
		Channels: channels,
	}, nil
}

// CreateNotification inserts an in-app inbox row.
func (s *notificationService) CreateNotification(
	ctx context.Context,
	userID uuid.UUID,
	notificationType entity.NotificationType,
	title, message string,
	data map[string]any,
) (*entity.Notification, error) {
	if userID == uuid.Nil || !notificationType.IsValid() || strings.TrimSpace(title) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "user, valid type and title are required")
	}

	now := s.now()
	notification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      notificationType,
		Title:     title,
		Message:   message,
		Data:      data,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	return notification, nil
}

// EnqueueNotification stores the request in the durable queue.
func (s *notificationService) EnqueueNotification(ctx context.Context, req *usecase.NotificationRequest) (*entity.NotificationQueueItem, error) {
	if err := validateNotificationRequest(req); err != nil {
		return nil, err
	}
	channels, err := normalizeChannels(req.Channels)
	if err != nil {
		return nil, err
	}

	item := s.newQueueItem(req.UserID, channels)
	item.Type = req.Type
	item.Title = req.Title
	item.Message = req.Message
	item.Data = req.Data

	if err := s.queueRepo.Enqueue(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to enqueue notification")
	}

	return item, nil
}

// EnqueueTemplatedNotification stores a templated request; rendering happens at dispatch.
func (s *notificationService) EnqueueTemplatedNotification(ctx context.Context, req *usecase.TemplatedNotificationRequest) (*entity.NotificationQueueItem, error) {
	if req == nil || req.UserID == uuid.Nil || strings.TrimSpace(req.TemplateName) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "user and template name are required")
	}
	for _, channel := range req.Channels {
		if !channel.IsValid() {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown channel %q", channel)
		}
	}

	item := s.newQueueItem(req.UserID, req.Channels)
	item.TemplateName = req.TemplateName
	item.Variables = req.Variables
	item.Data = req.Data

	if err := s.queueRepo.Enqueue(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to enqueue templated notification")
	}

	return item, nil
}

func (s *notificationService) newQueueItem(userID uuid.UUID, channels []entity.Channel) *entity.NotificationQueueItem {
	now := s.now()

	return &entity.NotificationQueueItem{
		ID:            uuid.New(),
		UserID:        userID,
		Channels:      channels,
		Status:        entity.QueueStatusPending,
		NextAttemptAt: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ProcessQueue claims due rows in a short transaction, then dispatches each one.
func (s *notificationService) ProcessQueue(ctx context.Context, batchSize int) (*usecase.QueueStats, error) {
	if batchSize <= 0 {
		batchSize = s.cfg.BatchSize
	}

	var items []*entity.NotificationQueueItem
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		now := s.now()
		claimed, err := repoFactory.NewNotificationQueueRepository().ClaimDue(ctx, now, now.Add(-s.processingLease()), batchSize)
		if err != nil {
			return errors.Wrap(err, "failed to claim notification queue")
		}
		items = claimed

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to process notification queue")
	}

	stats := &usecase.QueueStats{Claimed: len(items)}
	for i, item := range items {
		if ctx.Err() != nil {
			s.releaseUnprocessed(ctx, items[i:])

			return stats, errors.Wrap(ctx.Err(), "notification queue interrupted")
		}
		s.processItem(ctx, item, stats)
	}

	if stats.Claimed > 0 {
		s.logger.Info("Notification queue processed",
			slog.Int("claimed", stats.Claimed),
			slog.Int("sent", stats.Sent),
			slog.Int("retried", stats.Retried),
			slog.Int("failed", stats.Failed),
		)
	}

	return stats, nil
}

// releaseUnprocessed hands claimed rows back to the queue when the poll is
// cancelled before reaching them. The caller's context is already done.
func (s *notificationService) releaseUnprocessed(ctx context.Context, items []*entity.NotificationQueueItem) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := s.queueRepo.Release(releaseCtx, ids, s.now()); err != nil {
		s.logger.Error("Failed to release claimed queue items",
			slog.Int("count", len(ids)),
			slog.Any("error", err),
		)

		return
	}

	s.logger.Warn("Queue poll interrupted, released unprocessed items", slog.Int("count", len(ids)))
}

func (s *notificationService) processingLease() time.Duration {
	if s.cfg.ProcessingLease > 0 {
		return s.cfg.ProcessingLease
	}

	return defaultProcessingLease
}

func (s *notificationService) processItem(ctx context.Context, item *entity.NotificationQueueItem, stats *usecase.QueueStats) {
	started := s.now()
	attempts := item.Attempts + 1

	result, err := s.dispatchQueued(ctx, item)
	switch {
	case err == nil && result.Success:
		if markErr := s.queueRepo.MarkSent(ctx, item.ID, s.now()); markErr != nil {
			s.logger.Error("Failed to mark queue item sent", slog.String("id", item.ID.String()), slog.Any("error", markErr))
		}
		stats.Sent++
		s.metrics.QueueProcessed(string(entity.QueueStatusSent), s.now().Sub(started))

		return
	case err != nil && isPermanent(err):
		s.failItem(ctx, item, attempts, err.Error(), stats, started)

		return
	}

	lastError := ""
	remaining := item.Channels
	if err != nil {
		lastError = err.Error()
	} else {
		remaining, lastError = failedChannels(result)
	}

	if attempts >= s.cfg.MaxAttempts {
		s.failItem(ctx, item, attempts, lastError, stats, started)

		return
	}

	next := s.now().Add(s.backoff(attempts))
	if markErr := s.queueRepo.MarkRetry(ctx, item.ID, remaining, attempts, next, lastError); markErr != nil {
		s.logger.Error("Failed to reschedule queue item", slog.String("id", item.ID.String()), slog.Any("error", markErr))
	}
	stats.Retried++
	s.metrics.QueueProcessed("RETRY", s.now().Sub(started))
}

func (s *notificationService) failItem(ctx context.Context, item *entity.NotificationQueueItem, attempts int, lastError string, stats *usecase.QueueStats, started time.Time) {
	if markErr := s.queueRepo.MarkFailed(ctx, item.ID, attempts, lastError, s.now()); markErr != nil {
		s.logger.Error("Failed to mark queue item failed", slog.String("id", item.ID.String()), slog.Any("error", markErr))
	}
	stats.Failed++
	s.metrics.QueueProcessed(string(entity.QueueStatusFailed), s.now().Sub(started))
	s.logger.Warn("Notification gave up",
		slog.String("id", item.ID.String()),
		slog.Int("attempts", attempts),
		slog.String("last_error", lastError),
	)
}

func (s *notificationService) dispatchQueued(ctx context.Context, item *entity.NotificationQueueItem) (*usecase.DispatchResult, error) {
	if item.TemplateName != "" {
		return s.SendTemplatedNotification(ctx, &usecase.TemplatedNotificationRequest{
			UserID:       item.UserID,
			TemplateName: item.TemplateName,
			Variables:    item.Variables,
			Data:         item.Data,
			Channels:     item.Channels,
		})
	}

	return s.SendMultiChannelNotification(ctx, &usecase.NotificationRequest{
		UserID:   item.UserID,
		Type:     item.Type,
		Title:    item.Title,
		Message:  item.Message,
		Data:     item.Data,
		Channels: item.Channels,
	})
}

// backoff returns base * 2^(attempts-1), capped at the configured maximum.
func (s *notificationService) backoff(attempts int) time.Duration {
	delay := float64(s.cfg.RetryBaseDelay) * math.Pow(2, float64(attempts-1))
	if delay > float64(s.cfg.RetryMaxDelay) {
		return s.cfg.RetryMaxDelay
	}

	return time.Duration(delay)
}

// HandleEvent fans a marketplace event out to its recipients through the queue.
func (s *notificationService) HandleEvent(ctx context.Context, event *service.MarketplaceEvent) error {
	if event == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "event is required")
	}

	notificationType := entity.NotificationType(event.NotificationType)
	if !notificationType.IsValid() {
		notificationType = defaultTypeForEvent(event.Type)
	}

	channels := make([]entity.Channel, 0, len(event.Channels))
	for _, raw := range event.Channels {
		if channel, ok := entity.ParseChannel(raw); ok {
			channels = append(channels, channel)
		}
	}

	var enqueued int
	for _, rawID := range event.RecipientIDs {
		userID, err := uuid.Parse(rawID)
		if err != nil {
			s.logger.Warn("Skipping invalid event recipient",
				slog.String("request_id", event.RequestID),
				slog.String("recipient", rawID),
			)

			continue
		}

		if event.TemplateName != "" {
			_, err = s.EnqueueTemplatedNotification(ctx, &usecase.TemplatedNotificationRequest{
				UserID:       userID,
				TemplateName: event.TemplateName,
				Variables:    event.Variables,
				Data:         event.Data,
				Channels:     channels,
			})
		} else {
			_, err = s.EnqueueNotification(ctx, &usecase.NotificationRequest{
				UserID:   userID,
				Type:     notificationType,
				Title:    event.Title,
				Message:  event.Message,
				Data:     event.Data,
				Channels: channels,
			})
		}
		if err != nil {
			return errors.Wrapf(err, "failed to enqueue event for recipient %s", userID)
		}
		enqueued++
	}

	s.logger.Info("Marketplace event fanned out",
		slog.String("request_id", event.RequestID),
		slog.String("event_type", string(event.Type)),
		slog.Int("recipients", enqueued),
	)

	return nil
}

func defaultTypeForEvent(eventType service.EventType) entity.NotificationType {
	switch eventType {
	case service.EventProductPublished:
		return entity.NotificationTypePromotion
	case service.EventGroupBuyUpdated:
		return entity.NotificationTypeGroupBuy
	default:
		return entity.NotificationTypeSystem
	}
}

func validateNotificationRequest(req *usecase.NotificationRequest) error {
	if req == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "notification request is required")
	}
	if req.UserID == uuid.Nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "user id is required")
	}
	if !req.Type.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown notification type %q", req.Type)
	}
	if strings.TrimSpace(req.Title) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "title is required")
	}

	return nil
}

// normalizeChannels removes duplicates while keeping the caller's order.
// An empty list means every channel.
func normalizeChannels(channels []entity.Channel) ([]entity.Channel, error) {
	if len(channels) == 0 {
		return append([]entity.Channel(nil), entity.AllChannels...), nil
	}

	seen := make(map[entity.Channel]struct{}, len(channels))
	out := make([]entity.Channel, 0, len(channels))
	for _, channel := range channels {
		if !channel.IsValid() {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown channel %q", channel)
		}
		if _, dup := seen[channel]; dup {
			continue
		}
		seen[channel] = struct{}{}
		out = append(out, channel)
	}

	return out, nil
}

func needsContact(channels []entity.Channel) bool {
	for _, channel := range channels {
		if channel == entity.ChannelEmail || channel == entity.ChannelSMS {
			return true
		}
	}

	return false
}

func failedChannels(result *usecase.DispatchResult) ([]entity.Channel, string) {
	var (
		channels []entity.Channel
		messages []string
	)
	for _, res := range result.Results {
		if res.Success {
			continue
		}
		channels = append(channels, res.Channel)
		messages = append(messages, string(res.Channel)+": "+res.Error)
	}

	return channels, strings.Join(messages, "; ")
}

// isPermanent reports errors that retrying cannot fix.
func isPermanent(err error) bool {
	return errors.Is(err, domainerrors.ErrValidationFailed) || errors.Is(err, domainerrors.ErrTemplateNotFound)
}
