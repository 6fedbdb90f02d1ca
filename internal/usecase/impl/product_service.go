package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"expatmart/internal/domain/currency"
	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/domain/service"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type productService struct {
	productRepo repository.ProductRepository
	vendorRepo  repository.VendorRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// NewProductService creates the vendor product service.
func NewProductService(
	productRepo repository.ProductRepository,
	vendorRepo repository.VendorRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		vendorRepo:  vendorRepo,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *productService) CreateProduct(ctx context.Context, ownerID uuid.UUID, input *usecase.ProductInput) (*entity.VendorProduct, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	vendor, err := s.ownedVendor(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !vendor.IsApproved() {
		return nil, errors.Wrap(domainerrors.ErrVendorNotApproved, "store is not approved")
	}

	now := s.now()
	product := &entity.VendorProduct{
		ID:                uuid.New(),
		VendorID:          vendor.ID,
		Status:            entity.ProductStatusDraft,
		InventoryQuantity: input.InventoryQuantity,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	applyProductInput(product, input)

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, ownerID, productID uuid.UUID, input *usecase.ProductInput) (*entity.VendorProduct, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, _, err := s.ownedProduct(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}

	// Stock only moves through UpdateInventoryQuantity.
	applyProductInput(product, input)
	product.UpdatedAt = s.now()

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, ownerID, productID uuid.UUID) error {
	if _, _, err := s.ownedProduct(ctx, ownerID, productID); err != nil {
		return err
	}

	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		return translateProductError(err)
	}

	return nil
}

func (s *productService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.VendorProduct, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, translateProductError(err)
	}

	return product, nil
}

// ListProducts returns the published catalogue of a vendor.
func (s *productService) ListProducts(ctx context.Context, vendorID uuid.UUID, limit, offset int) ([]*entity.VendorProduct, error) {
	limit, offset = normalizePage(limit, offset)

	products, err := s.productRepo.ListProductsByVendor(ctx, vendorID, entity.ProductStatusPublished, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// PublishProduct makes the product visible and publishes a
// vendor.product_published event for the vendor's followers. A failed publish
// is logged; the product stays published.
func (s *productService) PublishProduct(ctx context.Context, ownerID, productID uuid.UUID) (*entity.VendorProduct, error) {
	product, vendor, err := s.ownedProduct(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}
	if !vendor.IsApproved() {
		return nil, errors.Wrap(domainerrors.ErrVendorNotApproved, "store is not approved")
	}
	if product.Status == entity.ProductStatusPublished {
		return product, nil
	}

	product.Status = entity.ProductStatusPublished
	product.UpdatedAt = s.now()
	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to publish product")
	}

	s.announce(ctx, vendor, product)

	return product, nil
}

func (s *productService) UpdateInventoryQuantity(ctx context.Context, ownerID, productID uuid.UUID, delta int) (int, error) {
	if _, _, err := s.ownedProduct(ctx, ownerID, productID); err != nil {
		return 0, err
	}

	quantity, err := s.productRepo.UpdateInventoryQuantity(ctx, productID, delta)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientInventory) {
			return 0, errors.Wrapf(domainerrors.ErrInsufficientInventory, "cannot remove %d units", -delta)
		}

		return 0, translateProductError(err)
	}

	return quantity, nil
}

func (s *productService) announce(ctx context.Context, vendor *entity.Vendor, product *entity.VendorProduct) {
	followers, err := s.vendorRepo.FindFollowerIDs(ctx, vendor.ID)
	if err != nil {
		s.logger.Warn("Failed to load vendor followers", slog.String("vendor_id", vendor.ID.String()), slog.Any("error", err))

		return
	}
	if len(followers) == 0 {
		return
	}

	recipients := make([]string, 0, len(followers))
	for _, id := range followers {
		recipients = append(recipients, id.String())
	}

	event := &service.MarketplaceEvent{
		Type:             service.EventProductPublished,
		SubjectID:        vendor.ID.String(),
		RecipientIDs:     recipients,
		NotificationType: string(entity.NotificationTypePromotion),
		Title:            "New from " + vendor.BusinessName,
		Message:          product.Name + " is now available.",
		Data: map[string]any{
			"vendor_id":  vendor.ID.String(),
			"product_id": product.ID.String(),
		},
		OccurredAt: s.now(),
	}
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish product event",
			slog.String("product_id", product.ID.String()),
			slog.Int("recipients", len(recipients)),
			slog.Any("error", err),
		)

		return
	}

	s.logger.Info("Product published",
		slog.String("product_id", product.ID.String()),
		slog.Int("followers", len(recipients)),
	)
}

func (s *productService) ownedVendor(ctx context.Context, ownerID uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByOwner(ctx, ownerID)
	if err != nil {
		return nil, translateVendorError(err)
	}

	return vendor, nil
}

// ownedProduct loads a product and checks that ownerID runs its vendor.
func (s *productService) ownedProduct(ctx context.Context, ownerID, productID uuid.UUID) (*entity.VendorProduct, *entity.Vendor, error) {
	vendor, err := s.ownedVendor(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, nil, translateProductError(err)
	}
	if product.VendorID != vendor.ID {
		return nil, nil, errors.Wrap(domainerrors.ErrForbidden, "product belongs to another store")
	}

	return product, vendor, nil
}

func validateProductInput(input *usecase.ProductInput) error {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "product name is required")
	}
	if !input.Price.IsPositive() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "price must be positive")
	}
	if !currency.IsSupported(input.Currency) {
		return errors.Wrapf(domainerrors.ErrUnsupportedCurrency, "currency %q", input.Currency)
	}
	if input.InventoryQuantity < 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "inventory must not be negative")
	}

	return nil
}

func applyProductInput(product *entity.VendorProduct, input *usecase.ProductInput) {
	product.Name = strings.TrimSpace(input.Name)
	product.Description = strings.TrimSpace(input.Description)
	product.SKU = strings.TrimSpace(input.SKU)
	product.Price = input.Price
	product.Currency = currency.Normalize(input.Currency)
	product.Images = input.Images
}
