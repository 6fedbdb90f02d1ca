package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type inboxService struct {
	notificationRepo repository.NotificationRepository
	preferenceRepo   repository.NotificationPreferenceRepository
	templateRepo     repository.NotificationTemplateRepository
	logger           *slog.Logger
	now              func() time.Time
}

// NewInboxService creates the in-app inbox, preference and template service.
func NewInboxService(
	notificationRepo repository.NotificationRepository,
	preferenceRepo repository.NotificationPreferenceRepository,
	templateRepo repository.NotificationTemplateRepository,
	logger *slog.Logger,
) usecase.InboxUsecase {
	return &inboxService{
		notificationRepo: notificationRepo,
		preferenceRepo:   preferenceRepo,
		templateRepo:     templateRepo,
		logger:           logger,
		now:              time.Now,
	}
}

func (s *inboxService) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	limit, offset = normalizePage(limit, offset)

	notifications, err := s.notificationRepo.ListNotifications(ctx, userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

func (s *inboxService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkAsRead only touches notifications owned by the user.
func (s *inboxService) MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := s.notificationRepo.MarkAsRead(ctx, notificationID, userID, s.now()); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return errors.Wrap(domainerrors.ErrNotificationNotFound, "notification not found")
		}

		return errors.Wrap(err, "failed to mark notification as read")
	}

	return nil
}

func (s *inboxService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	updated, err := s.notificationRepo.MarkAllAsRead(ctx, userID, s.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark notifications as read")
	}

	return updated, nil
}

func (s *inboxService) DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := s.notificationRepo.DeleteNotification(ctx, notificationID, userID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return errors.Wrap(domainerrors.ErrNotificationNotFound, "notification not found")
		}

		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}

// GetPreferences returns defaults when the user has no stored record.
func (s *inboxService) GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error) {
	pref, err := s.preferenceRepo.FindPreferenceByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			return entity.DefaultNotificationPreference(userID), nil
		}

		return nil, errors.Wrap(err, "failed to load notification preferences")
	}

	return pref, nil
}

func (s *inboxService) UpdatePreferences(ctx context.Context, userID uuid.UUID, input *usecase.PreferenceInput) (*entity.NotificationPreference, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "preference input is required")
	}

	pref, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.EmailEnabled != nil {
		pref.EmailEnabled = *input.EmailEnabled
	}
	if input.SMSEnabled != nil {
		pref.SMSEnabled = *input.SMSEnabled
	}
	if input.PushEnabled != nil {
		pref.PushEnabled = *input.PushEnabled
	}
	if input.InAppEnabled != nil {
		pref.InAppEnabled = *input.InAppEnabled
	}
	if input.MutedTypes != nil {
		muted := make([]entity.NotificationType, 0, len(*input.MutedTypes))
		for _, t := range *input.MutedTypes {
			if !t.IsValid() {
				return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown notification type %q", t)
			}
			if !t.Mutable() {
				continue
			}
			muted = append(muted, t)
		}
		pref.MutedTypes = muted
	}
	pref.UpdatedAt = s.now()

	if err := s.preferenceRepo.UpsertPreference(ctx, pref); err != nil {
		return nil, errors.Wrap(err, "failed to save notification preferences")
	}

	s.logger.Info("Notification preferences updated", slog.String("user_id", userID.String()))

	return pref, nil
}

func (s *inboxService) UpsertTemplate(ctx context.Context, input *usecase.TemplateInput) (*entity.NotificationTemplate, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" || !input.Type.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "template name and a valid type are required")
	}
	channels, err := normalizeChannels(input.DefaultChannels)
	if err != nil {
		return nil, err
	}

	now := s.now()
	template := &entity.NotificationTemplate{
		ID:              uuid.New(),
		Name:            strings.TrimSpace(input.Name),
		Type:            input.Type,
		TitleTemplate:   input.TitleTemplate,
		BodyTemplate:    input.BodyTemplate,
		DefaultChannels: channels,
		IsActive:        input.IsActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.templateRepo.UpsertTemplate(ctx, template); err != nil {
		return nil, errors.Wrap(err, "failed to save notification template")
	}

	return template, nil
}

func (s *inboxService) ListTemplates(ctx context.Context) ([]*entity.NotificationTemplate, error) {
	templates, err := s.templateRepo.ListTemplates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notification templates")
	}

	return templates, nil
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
