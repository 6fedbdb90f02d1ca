package postgres

import (
	"context"
	"time"

	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vendorRepository implements the repository.VendorRepository interface.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{db: db}
}

// CreateVendor persists a new vendor.
func (repo *vendorRepository) CreateVendor(ctx context.Context, vendor *entity.Vendor) error {
	vendorM := fromVendorDomain(vendor)

	if err := repo.db.WithContext(ctx).Create(vendorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateVendor
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required vendor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor")
	}

	vendor.ID = vendorM.ID
	vendor.CreatedAt = vendorM.CreatedAt
	vendor.UpdatedAt = vendorM.UpdatedAt

	return nil
}

// FindVendorByID retrieves a vendor by its unique ID.
func (repo *vendorRepository) FindVendorByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindVendorByOwner retrieves the vendor registered by a user.
func (repo *vendorRepository) FindVendorByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Vendor, error) {
	return repo.findOne(ctx, "owner_id = ?", ownerID)
}

func (repo *vendorRepository) findOne(ctx context.Context, where string, arg any) (*entity.Vendor, error) {
	var vendorM model.VendorModel

	if err := repo.db.WithContext(ctx).
		Where(where, arg).
		First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor")
	}

	return toVendorDomain(&vendorM), nil
}

// UpdateVendor saves the editable storefront fields.
func (repo *vendorRepository) UpdateVendor(ctx context.Context, vendor *entity.Vendor) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", vendor.ID).
		Select("business_name", "description", "category", "contact_email", "contact_phone",
			"logo_url", "city", "country", "updated_at").
		Updates(fromVendorDomain(vendor))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update vendor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// UpdateVendorStatus sets the moderation status.
func (repo *vendorRepository) UpdateVendorStatus(ctx context.Context, id uuid.UUID, status entity.VendorStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update vendor status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// ListVendors lists vendors, optionally filtered by status.
func (repo *vendorRepository) ListVendors(ctx context.Context, status entity.VendorStatus, limit, offset int) ([]*entity.Vendor, error) {
	var vendorModels []*model.VendorModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	if err := query.Scopes(paginate(limit, offset)).Find(&vendorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	vendors := make([]*entity.Vendor, 0, len(vendorModels))
	for _, vendorM := range vendorModels {
		vendors = append(vendors, toVendorDomain(vendorM))
	}

	return vendors, nil
}

// AddFollower creates the follow row and increments follower_count atomically.
func (repo *vendorRepository) AddFollower(ctx context.Context, follower *entity.VendorFollower) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		followerM := &model.VendorFollowerModel{
			VendorID:  follower.VendorID,
			UserID:    follower.UserID,
			CreatedAt: follower.CreatedAt,
		}
		if err := tx.Create(followerM).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return repository.ErrAlreadyFollowing
			}
			if isForeignKeyConstraintViolation(err) {
				return repository.ErrVendorNotFound
			}

			return errors.Wrap(err, "failed to create follower")
		}

		if err := tx.Model(&model.VendorModel{}).
			Where("id = ?", follower.VendorID).
			UpdateColumn("follower_count", gorm.Expr("follower_count + 1")).Error; err != nil {
			return errors.Wrap(err, "failed to increment follower count")
		}

		return nil
	})
}

// RemoveFollower deletes the follow row and decrements follower_count atomically.
func (repo *vendorRepository) RemoveFollower(ctx context.Context, vendorID, userID uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("vendor_id = ? AND user_id = ?", vendorID, userID).
			Delete(&model.VendorFollowerModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete follower")
		}
		if result.RowsAffected == 0 {
			return repository.ErrNotFollowing
		}

		if err := tx.Model(&model.VendorModel{}).
			Where("id = ?", vendorID).
			UpdateColumn("follower_count", gorm.Expr("GREATEST(follower_count - 1, 0)")).Error; err != nil {
			return errors.Wrap(err, "failed to decrement follower count")
		}

		return nil
	})
}

// FindFollowerIDs returns the user IDs following a vendor.
func (repo *vendorRepository) FindFollowerIDs(ctx context.Context, vendorID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.VendorFollowerModel{}).
		Where("vendor_id = ?", vendorID).
		Pluck("user_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find follower IDs")
	}

	return ids, nil
}

// --- Mapper Functions ---

func toVendorDomain(data *model.VendorModel) *entity.Vendor {
	if data == nil {
		return nil
	}

	return &entity.Vendor{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		BusinessName:  data.BusinessName,
		Description:   data.Description,
		Category:      data.Category,
		ContactEmail:  data.ContactEmail,
		ContactPhone:  data.ContactPhone,
		LogoURL:       data.LogoURL,
		City:          data.City,
		Country:       data.Country,
		Status:        entity.VendorStatus(data.Status),
		Rating:        data.Rating,
		FollowerCount: data.FollowerCount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromVendorDomain(data *entity.Vendor) *model.VendorModel {
	if data == nil {
		return nil
	}

	return &model.VendorModel{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		BusinessName:  data.BusinessName,
		Description:   data.Description,
		Category:      data.Category,
		ContactEmail:  data.ContactEmail,
		ContactPhone:  data.ContactPhone,
		LogoURL:       data.LogoURL,
		City:          data.City,
		Country:       data.Country,
		Status:        string(data.Status),
		Rating:        data.Rating,
		FollowerCount: data.FollowerCount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
