package postgres

import (
	"context"
	"strings"
	"time"

	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

func (repo *listingRepository) CreateListing(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid listing data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

func (repo *listingRepository) FindListingByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

func (repo *listingRepository) UpdateListing(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", listing.ID).
		Select("title", "description", "category", "price", "currency", "condition",
			"status", "images", "city", "country", "latitude", "longitude", "updated_at").
		Updates(listingM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// DeleteListing soft-deletes the listing.
func (repo *listingRepository) DeleteListing(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ListingModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

func (repo *listingRepository) SearchListings(ctx context.Context, filter *entity.ListingFilter, box *repository.BoundingBox) ([]*entity.Listing, error) {
	var listingModels []*model.ListingModel

	query := repo.db.WithContext(ctx).Model(&model.ListingModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Currency != "" {
		query = query.Where("currency = ?", filter.Currency)
	}
	if filter.SellerID != nil {
		query = query.Where("seller_id = ?", *filter.SellerID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if box != nil {
		query = query.
			Where("latitude IS NOT NULL AND longitude IS NOT NULL").
			Where("latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat).
			Where("longitude BETWEEN ? AND ?", box.MinLon, box.MaxLon)
	}

	if err := query.
		Order("created_at DESC").
		Scopes(paginate(filter.Limit, filter.Offset)).
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search listings")
	}

	listings := make([]*entity.Listing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

func (repo *listingRepository) UpdateListingStatus(ctx context.Context, id uuid.UUID, from, to entity.ListingStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{"status": string(to), "updated_at": time.Now()})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update listing status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingStatusConflict
	}

	return nil
}

func (repo *listingRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		return errors.Wrap(err, "failed to increment view count")
	}

	return nil
}

// escapeLike escapes the LIKE wildcards of user input.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	return &entity.Listing{
		ID:          data.ID,
		SellerID:    data.SellerID,
		Title:       data.Title,
		Description: data.Description,
		Category:    data.Category,
		Price:       data.Price,
		Currency:    data.Currency,
		Condition:   entity.ListingCondition(data.Condition),
		Status:      entity.ListingStatus(data.Status),
		Images:      []string(data.Images),
		City:        data.City,
		Country:     data.Country,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		ViewCount:   data.ViewCount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}

	return &model.ListingModel{
		ID:          data.ID,
		SellerID:    data.SellerID,
		Title:       data.Title,
		Description: data.Description,
		Category:    data.Category,
		Price:       data.Price,
		Currency:    data.Currency,
		Condition:   string(data.Condition),
		Status:      string(data.Status),
		Images:      data.Images,
		City:        data.City,
		Country:     data.Country,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		ViewCount:   data.ViewCount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
