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

// editableProfileColumns are overwritten when the profile already exists.
var editableProfileColumns = []string{
	"email", "phone", "full_name", "avatar_url", "country", "nationality",
	"city", "preferred_currency", "language", "updated_at",
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// UpsertProfile never touches role or kyc_status of an existing row.
func (repo *profileRepository) UpsertProfile(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(editableProfileColumns),
		}).
		Create(profileM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert profile")
	}

	return nil
}

func (repo *profileRepository) UpdateKYCStatus(ctx context.Context, id uuid.UUID, status entity.KYCStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Update("kyc_status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update kyc status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:                data.ID,
		Email:             data.Email,
		Phone:             data.Phone,
		FullName:          data.FullName,
		AvatarURL:         data.AvatarURL,
		Country:           data.Country,
		Nationality:       data.Nationality,
		City:              data.City,
		PreferredCurrency: data.PreferredCurrency,
		Language:          data.Language,
		Role:              entity.Role(data.Role),
		KYCStatus:         entity.KYCStatus(data.KYCStatus),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:                data.ID,
		Email:             data.Email,
		Phone:             data.Phone,
		FullName:          data.FullName,
		AvatarURL:         data.AvatarURL,
		Country:           data.Country,
		Nationality:       data.Nationality,
		City:              data.City,
		PreferredCurrency: data.PreferredCurrency,
		Language:          data.Language,
		Role:              data.Role.String(),
		KYCStatus:         string(data.KYCStatus),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
