package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/domain/service"
	mockRepo "expatmart/internal/mocks/repository"
	mockSvc "expatmart/internal/mocks/service"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productFixture struct {
	service     *productService
	productRepo *mockRepo.MockProductRepository
	vendorRepo  *mockRepo.MockVendorRepository
	publisher   *mockSvc.MockEventPublisher
	vendor      *entity.Vendor
}

func createTestProductService(t *testing.T) *productFixture {
	fx := &productFixture{
		productRepo: mockRepo.NewMockProductRepository(t),
		vendorRepo:  mockRepo.NewMockVendorRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		vendor: &entity.Vendor{
			ID:           uuid.New(),
			OwnerID:      uuid.New(),
			BusinessName: "Seoul Mart",
			Status:       entity.VendorStatusApproved,
		},
	}
	fx.service = NewProductService(fx.productRepo, fx.vendorRepo, fx.publisher, slog.New(slog.NewTextHandler(io.Discard, nil))).(*productService)
	fx.vendorRepo.EXPECT().FindVendorByOwner(mock.Anything, fx.vendor.OwnerID).Return(fx.vendor, nil).Maybe()

	return fx
}

func productInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:              "Gochujang 500g",
		Price:             decimal.RequireFromString("6.90"),
		Currency:          "sgd",
		InventoryQuantity: 24,
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().CreateProduct(ctx, mock.AnythingOfType("*entity.VendorProduct")).Return(nil)

	product, err := fx.service.CreateProduct(ctx, fx.vendor.OwnerID, productInput())

	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusDraft, product.Status)
	assert.Equal(t, fx.vendor.ID, product.VendorID)
	assert.Equal(t, "SGD", product.Currency)
	assert.Equal(t, 24, product.InventoryQuantity)
}

func TestProductService_CreateProduct_VendorNotApproved(t *testing.T) {
	fx := createTestProductService(t)
	fx.vendor.Status = entity.VendorStatusPending

	_, err := fx.service.CreateProduct(context.Background(), fx.vendor.OwnerID, productInput())

	assert.ErrorIs(t, err, domainerrors.ErrVendorNotApproved)
}

func TestProductService_CreateProduct_NoStore(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	stranger := uuid.New()

	fx.vendorRepo.EXPECT().FindVendorByOwner(ctx, stranger).Return(nil, repository.ErrVendorNotFound)

	_, err := fx.service.CreateProduct(ctx, stranger, productInput())

	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestProductService_UpdateProduct_KeepsStock(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	product := &entity.VendorProduct{ID: uuid.New(), VendorID: fx.vendor.ID, InventoryQuantity: 3}

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().UpdateProduct(ctx, product).Return(nil)

	updated, err := fx.service.UpdateProduct(ctx, fx.vendor.OwnerID, product.ID, productInput())

	require.NoError(t, err)
	assert.Equal(t, "Gochujang 500g", updated.Name)
	assert.Equal(t, 3, updated.InventoryQuantity)
}

func TestProductService_OtherStoresProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	product := &entity.VendorProduct{ID: uuid.New(), VendorID: uuid.New()}

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil).Twice()

	err := fx.service.DeleteProduct(ctx, fx.vendor.OwnerID, product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.UpdateInventoryQuantity(ctx, fx.vendor.OwnerID, product.ID, 5)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProductService_PublishProduct_AnnouncesToFollowers(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	product := &entity.VendorProduct{ID: uuid.New(), VendorID: fx.vendor.ID, Name: "Kimchi 1kg", Status: entity.ProductStatusDraft}
	followers := []uuid.UUID{uuid.New(), uuid.New()}

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().UpdateProduct(ctx, product).Return(nil)
	fx.vendorRepo.EXPECT().FindFollowerIDs(ctx, fx.vendor.ID).Return(followers, nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.MatchedBy(func(event *service.MarketplaceEvent) bool {
		return event.Type == service.EventProductPublished &&
			len(event.RecipientIDs) == 2 &&
			event.RecipientIDs[0] == followers[0].String() &&
			event.NotificationType == string(entity.NotificationTypePromotion) &&
			event.Title == "New from Seoul Mart" &&
			event.Data["product_id"] == product.ID.String()
	})).Return(nil)

	published, err := fx.service.PublishProduct(ctx, fx.vendor.OwnerID, product.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusPublished, published.Status)
}

func TestProductService_PublishProduct_NoFollowersNoEvent(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	product := &entity.VendorProduct{ID: uuid.New(), VendorID: fx.vendor.ID, Status: entity.ProductStatusDraft}

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().UpdateProduct(ctx, product).Return(nil)
	fx.vendorRepo.EXPECT().FindFollowerIDs(ctx, fx.vendor.ID).Return(nil, nil)

	_, err := fx.service.PublishProduct(ctx, fx.vendor.OwnerID, product.ID)

	require.NoError(t, err)
	fx.publisher.AssertNotCalled(t, "PublishEvent", mock.Anything, mock.Anything)
}

func TestProductService_PublishProduct_PublisherFailureIsNotFatal(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	product := &entity.VendorProduct{ID: uuid.New(), VendorID: fx.vendor.ID, Status: entity.ProductStatusArchived}

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().UpdateProduct(ctx, product).Return(nil)
	fx.vendorRepo.EXPECT().FindFollowerIDs(ctx, fx.vendor.ID).Return([]uuid.UUID{uuid.New()}, nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.Anything).Return(errors.New("pubsub unavailable"))

	published, err := fx.service.PublishProduct(ctx, fx.vendor.OwnerID, product.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusPublished, published.Status)
}

func TestProductService_UpdateInventoryQuantity(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	product := &entity.VendorProduct{ID: uuid.New(), VendorID: fx.vendor.ID, InventoryQuantity: 2}

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil).Twice()
	fx.productRepo.EXPECT().UpdateInventoryQuantity(ctx, product.ID, 10).Return(12, nil)
	fx.productRepo.EXPECT().UpdateInventoryQuantity(ctx, product.ID, -20).Return(0, repository.ErrInsufficientInventory)

	quantity, err := fx.service.UpdateInventoryQuantity(ctx, fx.vendor.OwnerID, product.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 12, quantity)

	_, err = fx.service.UpdateInventoryQuantity(ctx, fx.vendor.OwnerID, product.ID, -20)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientInventory)
}

func TestProductService_ListProducts_OnlyPublished(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().ListProductsByVendor(ctx, fx.vendor.ID, entity.ProductStatusPublished, 50, 10).
		Return([]*entity.VendorProduct{{ID: uuid.New()}}, nil)

	products, err := fx.service.ListProducts(ctx, fx.vendor.ID, 50, 10)

	require.NoError(t, err)
	assert.Len(t, products, 1)
}
