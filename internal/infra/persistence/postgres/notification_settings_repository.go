package postgres

import (
	"context"

	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type notificationPreferenceRepository struct {
	db *gorm.DB
}

// NewNotificationPreferenceRepository is the constructor for notificationPreferenceRepository.
func NewNotificationPreferenceRepository(db *gorm.DB) repository.NotificationPreferenceRepository {
	return &notificationPreferenceRepository{db: db}
}

func (repo *notificationPreferenceRepository) FindPreferenceByUser(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreference, error) {
	var prefM model.NotificationPreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&prefM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification preference")
	}

	muted := make([]entity.NotificationType, 0, len(prefM.MutedTypes))
	for _, t := range prefM.MutedTypes {
		muted = append(muted, entity.NotificationType(t))
	}

	return &entity.NotificationPreference{
		UserID:       prefM.UserID,
		EmailEnabled: prefM.EmailEnabled,
		SMSEnabled:   prefM.SMSEnabled,
		PushEnabled:  prefM.PushEnabled,
		InAppEnabled: prefM.InAppEnabled,
		MutedTypes:   muted,
		UpdatedAt:    prefM.UpdatedAt,
	}, nil
}

func (repo *notificationPreferenceRepository) UpsertPreference(ctx context.Context, pref *entity.NotificationPreference) error {
	muted := make([]string, 0, len(pref.MutedTypes))
	for _, t := range pref.MutedTypes {
		muted = append(muted, string(t))
	}

	prefM := &model.NotificationPreferenceModel{
		UserID:       pref.UserID,
		EmailEnabled: pref.EmailEnabled,
		SMSEnabled:   pref.SMSEnabled,
		PushEnabled:  pref.PushEnabled,
		InAppEnabled: pref.InAppEnabled,
		MutedTypes:   muted,
		UpdatedAt:    pref.UpdatedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"email_enabled", "sms_enabled", "push_enabled", "in_app_enabled", "muted_types", "updated_at",
			}),
		}).
		Create(prefM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert notification preference")
	}

	return nil
}

type notificationTemplateRepository struct {
	db *gorm.DB
}

// NewNotificationTemplateRepository is the constructor for notificationTemplateRepository.
func NewNotificationTemplateRepository(db *gorm.DB) repository.NotificationTemplateRepository {
	return &notificationTemplateRepository{db: db}
}

func (repo *notificationTemplateRepository) FindActiveTemplateByName(ctx context.Context, name string) (*entity.NotificationTemplate, error) {
	var templateM model.NotificationTemplateModel

	if err := repo.db.WithContext(ctx).
		Where("name = ? AND is_active = ?", name, true).
		First(&templateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification template")
	}

	return toTemplateDomain(&templateM), nil
}

// UpsertTemplate inserts or replaces the template with the same name.
func (repo *notificationTemplateRepository) UpsertTemplate(ctx context.Context, template *entity.NotificationTemplate) error {
	channels := make([]string, 0, len(template.DefaultChannels))
	for _, c := range template.DefaultChannels {
		channels = append(channels, string(c))
	}

	templateM := &model.NotificationTemplateModel{
		ID:              template.ID,
		Name:            template.Name,
		Type:            string(template.Type),
		TitleTemplate:   template.TitleTemplate,
		BodyTemplate:    template.BodyTemplate,
		DefaultChannels: channels,
		IsActive:        template.IsActive,
		CreatedAt:       template.CreatedAt,
		UpdatedAt:       template.UpdatedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"type", "title_template", "body_template", "default_channels", "is_active", "updated_at",
			}),
		}).
		Create(templateM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert notification template")
	}

	return nil
}

func (repo *notificationTemplateRepository) ListTemplates(ctx context.Context) ([]*entity.NotificationTemplate, error) {
	var templateModels []*model.NotificationTemplateModel

	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&templateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notification templates")
	}

	templates := make([]*entity.NotificationTemplate, 0, len(templateModels))
	for _, templateM := range templateModels {
		templates = append(templates, toTemplateDomain(templateM))
	}

	return templates, nil
}

func toTemplateDomain(data *model.NotificationTemplateModel) *entity.NotificationTemplate {
	channels := make([]entity.Channel, 0, len(data.DefaultChannels))
	for _, c := range data.DefaultChannels {
		channels = append(channels, entity.Channel(c))
	}

	return &entity.NotificationTemplate{
		ID:              data.ID,
		Name:            data.Name,
		Type:            entity.NotificationType(data.Type),
		TitleTemplate:   data.TitleTemplate,
		BodyTemplate:    data.BodyTemplate,
		DefaultChannels: channels,
		IsActive:        data.IsActive,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
