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

const updateInventorySQL = `UPDATE vendor_products
SET inventory_quantity = inventory_quantity + ?, updated_at = now()
WHERE id = ? AND deleted_at IS NULL AND inventory_quantity + ? >= 0
RETURNING inventory_quantity`

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.VendorProduct) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVendorNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("inventory cannot be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.VendorProduct, error) {
	var productM model.VendorProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// UpdateProduct saves the catalogue fields. Inventory only moves through
// UpdateInventoryQuantity.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.VendorProduct) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorProductModel{}).
		Where("id = ?", product.ID).
		Select("name", "description", "sku", "price", "currency", "images", "status", "updated_at").
		Updates(fromProductDomain(product))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VendorProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) ListProductsByVendor(ctx context.Context, vendorID uuid.UUID, status entity.ProductStatus, limit, offset int) ([]*entity.VendorProduct, error) {
	var productModels []*model.VendorProductModel

	query := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	if err := query.Scopes(paginate(limit, offset)).Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by vendor")
	}

	products := make([]*entity.VendorProduct, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// UpdateInventoryQuantity adds delta in a single guarded UPDATE so concurrent
// orders cannot oversell.
func (repo *productRepository) UpdateInventoryQuantity(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	var quantity int

	result := repo.db.WithContext(ctx).Raw(updateInventorySQL, delta, id, delta).Scan(&quantity)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to update inventory quantity")
	}
	if result.RowsAffected > 0 {
		return quantity, nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.VendorProductModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to check product")
	}
	if count == 0 {
		return 0, repository.ErrProductNotFound
	}

	return 0, repository.ErrInsufficientInventory
}

// --- Mapper Functions ---

func toProductDomain(data *model.VendorProductModel) *entity.VendorProduct {
	if data == nil {
		return nil
	}

	return &entity.VendorProduct{
		ID:                data.ID,
		VendorID:          data.VendorID,
		Name:              data.Name,
		Description:       data.Description,
		SKU:               data.SKU,
		Price:             data.Price,
		Currency:          data.Currency,
		InventoryQuantity: data.InventoryQuantity,
		Images:            []string(data.Images),
		Status:            entity.ProductStatus(data.Status),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.VendorProduct) *model.VendorProductModel {
	if data == nil {
		return nil
	}

	return &model.VendorProductModel{
		ID:                data.ID,
		VendorID:          data.VendorID,
		Name:              data.Name,
		Description:       data.Description,
		SKU:               data.SKU,
		Price:             data.Price,
		Currency:          data.Currency,
		InventoryQuantity: data.InventoryQuantity,
		Images:            data.Images,
		Status:            string(data.Status),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
