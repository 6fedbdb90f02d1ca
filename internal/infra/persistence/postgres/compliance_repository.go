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
)

type kycRepository struct {
	db *gorm.DB
}

// NewKYCRepository is the constructor for kycRepository.
func NewKYCRepository(db *gorm.DB) repository.KYCRepository {
	return &kycRepository{db: db}
}

func (repo *kycRepository) CreateVerification(ctx context.Context, kyc *entity.KYCVerification) error {
	kycM := fromKYCDomain(kyc)

	if err := repo.db.WithContext(ctx).Create(kycM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create kyc verification")
	}

	kyc.ID = kycM.ID
	kyc.CreatedAt = kycM.CreatedAt
	kyc.UpdatedAt = kycM.UpdatedAt

	return nil
}

func (repo *kycRepository) FindVerificationByID(ctx context.Context, id uuid.UUID) (*entity.KYCVerification, error) {
	return repo.find(repo.db.WithContext(ctx).Scopes(forUpdate).Where("id = ?", id))
}

func (repo *kycRepository) FindLatestVerificationByUser(ctx context.Context, userID uuid.UUID) (*entity.KYCVerification, error) {
	return repo.find(repo.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC"))
}

func (repo *kycRepository) find(query *gorm.DB) (*entity.KYCVerification, error) {
	var kycM model.KYCVerificationModel

	if err := query.Take(&kycM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKYCNotFound
		}

		return nil, errors.Wrap(err, "failed to find kyc verification")
	}

	return toKYCDomain(&kycM), nil
}

func (repo *kycRepository) UpdateVerification(ctx context.Context, kyc *entity.KYCVerification) error {
	result := repo.db.WithContext(ctx).
		Model(&model.KYCVerificationModel{}).
		Where("id = ?", kyc.ID).
		Select("status", "reviewed_by", "reviewed_at", "rejection_reason", "updated_at").
		Updates(fromKYCDomain(kyc))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update kyc verification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrKYCNotFound
	}

	return nil
}

// ListVerificationsByStatus lists oldest first so reviewers work the queue in order.
func (repo *kycRepository) ListVerificationsByStatus(ctx context.Context, status entity.KYCStatus, limit, offset int) ([]*entity.KYCVerification, error) {
	var kycModels []*model.KYCVerificationModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at ASC").
		Scopes(paginate(limit, offset)).
		Find(&kycModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list kyc verifications")
	}

	verifications := make([]*entity.KYCVerification, 0, len(kycModels))
	for _, kycM := range kycModels {
		verifications = append(verifications, toKYCDomain(kycM))
	}

	return verifications, nil
}

type securityEventRepository struct {
	db *gorm.DB
}

// NewSecurityEventRepository is the constructor for securityEventRepository.
func NewSecurityEventRepository(db *gorm.DB) repository.SecurityEventRepository {
	return &securityEventRepository{db: db}
}

func (repo *securityEventRepository) CreateSecurityEvent(ctx context.Context, event *entity.SecurityEvent) error {
	eventM := &model.SecurityEventModel{
		ID:        event.ID,
		UserID:    event.UserID,
		Type:      string(event.Type),
		Severity:  string(event.Severity),
		IPAddress: event.IPAddress,
		UserAgent: event.UserAgent,
		Details:   event.Details,
		CreatedAt: event.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create security event")
	}
	event.ID = eventM.ID

	return nil
}

func (repo *securityEventRepository) ListSecurityEvents(ctx context.Context, filter repository.SecurityEventFilter) ([]*entity.SecurityEvent, error) {
	var eventModels []*model.SecurityEventModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}
	if filter.Since != nil {
		query = query.Where("created_at >= ?", *filter.Since)
	}

	if err := query.Scopes(paginate(filter.Limit, filter.Offset)).Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list security events")
	}

	events := make([]*entity.SecurityEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, &entity.SecurityEvent{
			ID:        eventM.ID,
			UserID:    eventM.UserID,
			Type:      entity.SecurityEventType(eventM.Type),
			Severity:  entity.SecuritySeverity(eventM.Severity),
			IPAddress: eventM.IPAddress,
			UserAgent: eventM.UserAgent,
			Details:   eventM.Details,
			CreatedAt: eventM.CreatedAt,
		})
	}

	return events, nil
}

// --- Mapper Functions ---

func toKYCDomain(data *model.KYCVerificationModel) *entity.KYCVerification {
	if data == nil {
		return nil
	}

	return &entity.KYCVerification{
		ID:              data.ID,
		UserID:          data.UserID,
		DocumentType:    entity.DocumentType(data.DocumentType),
		DocumentNumber:  data.DocumentNumber,
		DocumentKey:     data.DocumentKey,
		ContentType:     data.ContentType,
		Checksum:        data.Checksum,
		SizeBytes:       data.SizeBytes,
		Status:          entity.KYCStatus(data.Status),
		ReviewedBy:      data.ReviewedBy,
		ReviewedAt:      data.ReviewedAt,
		RejectionReason: data.RejectionReason,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromKYCDomain(data *entity.KYCVerification) *model.KYCVerificationModel {
	if data == nil {
		return nil
	}

	return &model.KYCVerificationModel{
		ID:              data.ID,
		UserID:          data.UserID,
		DocumentType:    string(data.DocumentType),
		DocumentNumber:  data.DocumentNumber,
		DocumentKey:     data.DocumentKey,
		ContentType:     data.ContentType,
		Checksum:        data.Checksum,
		SizeBytes:       data.SizeBytes,
		Status:          string(data.Status),
		ReviewedBy:      data.ReviewedBy,
		ReviewedAt:      data.ReviewedAt,
		RejectionReason: data.RejectionReason,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
