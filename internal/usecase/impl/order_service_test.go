package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"expatmart/config"
	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/domain/service"
	mockRepo "expatmart/internal/mocks/repository"
	mockSvc "expatmart/internal/mocks/service"
	mockUsecase "expatmart/internal/mocks/usecase"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	service     *orderService
	orderRepo   *mockRepo.MockOrderRepository
	vendorRepo  *mockRepo.MockVendorRepository
	listingRepo *mockRepo.MockListingRepository
	productRepo *mockRepo.MockProductRepository
	escrowRepo  *mockRepo.MockEscrowRepository
	paymentRepo *mockRepo.MockPaymentRepository
	gateways    *mockSvc.MockGatewayResolver
	gateway     *mockSvc.MockPaymentGateway
	notifier    *mockUsecase.MockNotificationUsecase
	now         time.Time
}

func createTestOrderService(t *testing.T) *orderFixture {
	fx := &orderFixture{
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		vendorRepo:  mockRepo.NewMockVendorRepository(t),
		listingRepo: mockRepo.NewMockListingRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		escrowRepo:  mockRepo.NewMockEscrowRepository(t),
		paymentRepo: mockRepo.NewMockPaymentRepository(t),
		gateways:    mockSvc.NewMockGatewayResolver(t),
		gateway:     mockSvc.NewMockPaymentGateway(t),
		notifier:    mockUsecase.NewMockNotificationUsecase(t),
		now:         time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
	}
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewOrderRepository().Return(fx.orderRepo).Maybe()
			factory.EXPECT().NewListingRepository().Return(fx.listingRepo).Maybe()
			factory.EXPECT().NewProductRepository().Return(fx.productRepo).Maybe()
			factory.EXPECT().NewEscrowRepository().Return(fx.escrowRepo).Maybe()
			factory.EXPECT().NewPaymentRepository().Return(fx.paymentRepo).Maybe()

			return fn(factory)
		}).Maybe()

	svc := NewOrderService(OrderServiceParams{
		TxManager:  txManager,
		OrderRepo:  fx.orderRepo,
		VendorRepo: fx.vendorRepo,
		EscrowRepo: fx.escrowRepo,
		Gateways:   fx.gateways,
		Hasher:     mockSvc.NewMockSecretHasher(t),
		Notifier:   fx.notifier,
		Metrics:    service.NoopMetrics{},
		Config:     &config.Config{Escrow: &config.EscrowConfig{AutoReleaseAfter: time.Hour, ReleaseCodeLength: 6}},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*orderService)
	svc.now = func() time.Time { return fx.now }
	svc.ledger.now = svc.now
	svc.refunds.now = svc.now
	fx.service = svc

	fx.notifier.EXPECT().EnqueueNotification(mock.Anything, mock.Anything).
		Return(&entity.NotificationQueueItem{}, nil).Maybe()

	return fx
}

func TestOrderService_CreateOrder_FromListing(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	listing := &entity.Listing{
		ID:       uuid.New(),
		SellerID: uuid.New(),
		Title:    "IKEA desk",
		Price:    decimal.RequireFromString("80"),
		Currency: "EUR",
		Status:   entity.ListingStatusActive,
	}

	fx.listingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)
	fx.listingRepo.EXPECT().UpdateListingStatus(ctx, listing.ID, entity.ListingStatusActive, entity.ListingStatusReserved).Return(nil)
	fx.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	order, err := fx.service.CreateOrder(ctx, buyerID, &usecase.CreateOrderInput{
		ListingID:   &listing.ID,
		ShippingFee: decimal.RequireFromString("12.50"),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, listing.SellerID, order.SellerID)
	assert.Equal(t, "EUR", order.Currency)
	assert.Equal(t, "80", order.Subtotal.String())
	assert.Equal(t, "92.5", order.Total.String())
	require.Len(t, order.Items, 1)
	assert.Equal(t, listing.ID, *order.Items[0].ListingID)
}

func TestOrderService_CreateOrder_ListingTakenConcurrently(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	listing := &entity.Listing{ID: uuid.New(), SellerID: uuid.New(), Status: entity.ListingStatusActive, Currency: "EUR"}

	fx.listingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)
	fx.listingRepo.EXPECT().UpdateListingStatus(ctx, listing.ID, entity.ListingStatusActive, entity.ListingStatusReserved).
		Return(repository.ErrListingStatusConflict)

	_, err := fx.service.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{ListingID: &listing.ID})

	assert.ErrorIs(t, err, domainerrors.ErrListingUnavailable)
}

func TestOrderService_CreateOrder_OwnListing(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	sellerID := uuid.New()
	listing := &entity.Listing{ID: uuid.New(), SellerID: sellerID, Status: entity.ListingStatusActive}

	fx.listingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)

	_, err := fx.service.CreateOrder(ctx, sellerID, &usecase.CreateOrderInput{ListingID: &listing.ID})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_CreateOrder_FromProductsReservesInventory(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	vendor := &entity.Vendor{ID: uuid.New(), OwnerID: uuid.New(), Status: entity.VendorStatusApproved}
	spice := &entity.VendorProduct{ID: uuid.New(), VendorID: vendor.ID, Name: "Sumac", Price: decimal.RequireFromString("4.25"), Currency: "AED", Status: entity.ProductStatusPublished}
	rice := &entity.VendorProduct{ID: uuid.New(), VendorID: vendor.ID, Name: "Basmati 5kg", Price: decimal.RequireFromString("32"), Currency: "AED", Status: entity.ProductStatusPublished}

	fx.productRepo.EXPECT().FindProductByID(ctx, spice.ID).Return(spice, nil)
	fx.productRepo.EXPECT().FindProductByID(ctx, rice.ID).Return(rice, nil)
	fx.productRepo.EXPECT().UpdateInventoryQuantity(ctx, spice.ID, -3).Return(7, nil)
	fx.productRepo.EXPECT().UpdateInventoryQuantity(ctx, rice.ID, -1).Return(0, nil)
	fx.vendorRepo.EXPECT().FindVendorByID(ctx, vendor.ID).Return(vendor, nil)
	fx.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	order, err := fx.service.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductID: spice.ID, Quantity: 2},
			{ProductID: rice.ID, Quantity: 1},
			{ProductID: spice.ID, Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, vendor.OwnerID, order.SellerID)
	assert.Equal(t, vendor.ID, *order.VendorID)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, "44.75", order.Subtotal.String())
	assert.Equal(t, "44.75", order.Total.String())
}

func TestOrderService_CreateOrder_InsufficientInventory(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	product := &entity.VendorProduct{ID: uuid.New(), VendorID: uuid.New(), Name: "Halloumi", Currency: "EUR", Status: entity.ProductStatusPublished}

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().UpdateInventoryQuantity(ctx, product.ID, -5).Return(0, repository.ErrInsufficientInventory)

	_, err := fx.service.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: product.ID, Quantity: 5}},
	})

	assert.ErrorIs(t, err, domainerrors.ErrInsufficientInventory)
}

func TestOrderService_CreateOrder_MixedVendors(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	a := &entity.VendorProduct{ID: uuid.New(), VendorID: uuid.New(), Currency: "EUR", Status: entity.ProductStatusPublished}
	b := &entity.VendorProduct{ID: uuid.New(), VendorID: uuid.New(), Currency: "EUR", Status: entity.ProductStatusPublished}

	fx.productRepo.EXPECT().FindProductByID(ctx, a.ID).Return(a, nil)
	fx.productRepo.EXPECT().FindProductByID(ctx, b.ID).Return(b, nil)
	fx.productRepo.EXPECT().UpdateInventoryQuantity(ctx, a.ID, -1).Return(4, nil)

	_, err := fx.service.CreateOrder(ctx, uuid.New(), &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: a.ID, Quantity: 1}, {ProductID: b.ID, Quantity: 1}},
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	fx := createTestOrderService(t)
	listingID := uuid.New()

	tests := []struct {
		name  string
		input *usecase.CreateOrderInput
	}{
		{name: "nil", input: nil},
		{name: "nothing ordered", input: &usecase.CreateOrderInput{}},
		{name: "listing and products", input: &usecase.CreateOrderInput{
			ListingID: &listingID,
			Items:     []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
		}},
		{name: "negative shipping", input: &usecase.CreateOrderInput{ListingID: &listingID, ShippingFee: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.CreateOrder(context.Background(), uuid.New(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestOrderService_UpdateOrderStatus_Lifecycle(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.OrderStatus
		to      entity.OrderStatus
		actor   func(o *entity.Order) usecase.Actor
		wantErr error
	}{
		{
			name:  "seller starts fulfilment",
			from:  entity.OrderStatusPaid,
			to:    entity.OrderStatusFulfilling,
			actor: func(o *entity.Order) usecase.Actor { return usecase.Actor{ID: o.SellerID} },
		},
		{
			name:    "buyer cannot fulfil",
			from:    entity.OrderStatusPaid,
			to:      entity.OrderStatusFulfilling,
			actor:   func(o *entity.Order) usecase.Actor { return usecase.Actor{ID: o.BuyerID} },
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "seller cannot mark paid",
			from:    entity.OrderStatusPending,
			to:      entity.OrderStatusPaid,
			actor:   func(o *entity.Order) usecase.Actor { return usecase.Actor{ID: o.SellerID} },
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "cannot skip fulfilment",
			from:    entity.OrderStatusPaid,
			to:      entity.OrderStatusDelivered,
			actor:   func(o *entity.Order) usecase.Actor { return usecase.Actor{ID: o.SellerID} },
			wantErr: domainerrors.ErrInvalidStatusTransition,
		},
		{
			name:    "delivered is terminal",
			from:    entity.OrderStatusDelivered,
			to:      entity.OrderStatusCancelled,
			actor:   func(o *entity.Order) usecase.Actor { return usecase.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}} },
			wantErr: domainerrors.ErrInvalidStatusTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()
			order := &entity.Order{ID: uuid.New(), BuyerID: uuid.New(), SellerID: uuid.New(), Status: tt.from}

			fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil).Maybe()
			fx.orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil).Maybe()
			if tt.wantErr == nil {
				fx.orderRepo.EXPECT().UpdateOrder(ctx, order).Return(nil)
			}

			updated, err := fx.service.UpdateOrderStatus(ctx, tt.actor(order), order.ID, tt.to, "")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, order.Status)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, updated.Status)
		})
	}
}

func TestOrderService_UpdateOrderStatus_DeliveredSellsListing(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	listingID := uuid.New()
	order := &entity.Order{
		ID:       uuid.New(),
		BuyerID:  uuid.New(),
		SellerID: uuid.New(),
		Status:   entity.OrderStatusFulfilling,
		Items:    []entity.OrderItem{{ListingID: &listingID, Quantity: 1}},
	}

	fx.orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.listingRepo.EXPECT().UpdateListingStatus(ctx, listingID, entity.ListingStatusReserved, entity.ListingStatusSold).Return(nil)
	fx.orderRepo.EXPECT().UpdateOrder(ctx, order).Return(nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, usecase.Actor{ID: order.SellerID}, order.ID, entity.OrderStatusDelivered, "")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, updated.Status)
	assert.Equal(t, &fx.now, updated.DeliveredAt)
}

func TestOrderService_UpdateOrderStatus_CancelRestoresInventoryAndRefundsEscrow(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	productID := uuid.New()
	order := &entity.Order{
		ID:       uuid.New(),
		BuyerID:  uuid.New(),
		SellerID: uuid.New(),
		Status:   entity.OrderStatusPaid,
		Items:    []entity.OrderItem{{ProductID: &productID, Quantity: 4}},
	}
	escrow := &entity.EscrowAccount{ID: uuid.New(), OrderID: order.ID, Status: entity.EscrowStatusFunded}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.productRepo.EXPECT().UpdateInventoryQuantity(ctx, productID, 4).Return(9, nil)
	fx.escrowRepo.EXPECT().FindEscrowByOrderID(ctx, order.ID).Return(escrow, nil)
	fx.escrowRepo.EXPECT().FindEscrowByIDForUpdate(ctx, escrow.ID).Return(escrow, nil)
	fx.escrowRepo.EXPECT().UpdateEscrow(ctx, escrow).Return(nil)
	fx.orderRepo.EXPECT().UpdateOrder(ctx, order).Return(nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, usecase.Actor{ID: order.BuyerID}, order.ID, entity.OrderStatusCancelled, " changed my mind ")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.Status)
	assert.Equal(t, "changed my mind", updated.CancelReason)
	assert.Equal(t, entity.EscrowStatusRefunded, escrow.Status)
	assert.Equal(t, "changed my mind", escrow.RefundReason)
}

func TestOrderService_UpdateOrderStatus_CancelWithoutEscrow(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	listingID := uuid.New()
	order := &entity.Order{
		ID:       uuid.New(),
		BuyerID:  uuid.New(),
		SellerID: uuid.New(),
		Status:   entity.OrderStatusPending,
		Items:    []entity.OrderItem{{ListingID: &listingID, Quantity: 1}},
	}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.listingRepo.EXPECT().UpdateListingStatus(ctx, listingID, entity.ListingStatusReserved, entity.ListingStatusActive).Return(nil)
	fx.escrowRepo.EXPECT().FindEscrowByOrderID(ctx, order.ID).Return(nil, repository.ErrEscrowNotFound)
	fx.orderRepo.EXPECT().UpdateOrder(ctx, order).Return(nil)

	_, err := fx.service.UpdateOrderStatus(ctx, usecase.Actor{ID: order.SellerID}, order.ID, entity.OrderStatusCancelled, "")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
}

func TestOrderService_BuyerCannotCancelWhileFulfilling(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), BuyerID: uuid.New(), SellerID: uuid.New(), Status: entity.OrderStatusFulfilling}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.UpdateOrderStatus(ctx, usecase.Actor{ID: order.BuyerID}, order.ID, entity.OrderStatusCancelled, "")

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

// paidOrder sets up a PAID order whose escrow holds a completed card payment.
func (fx *orderFixture) paidOrder() (*entity.Order, *entity.PaymentTransaction, *entity.EscrowAccount) {
	order := &entity.Order{
		ID:       uuid.New(),
		BuyerID:  uuid.New(),
		SellerID: uuid.New(),
		Total:    decimal.RequireFromString("120"),
		Currency: "EUR",
		Status:   entity.OrderStatusPaid,
	}
	txn := &entity.PaymentTransaction{
		ID:       uuid.New(),
		OrderID:  order.ID,
		PayerID:  order.BuyerID,
		PayeeID:  order.SellerID,
		Provider: entity.ProviderCheckout,
		Amount:   order.Total,
		Currency: order.Currency,
		Status:   entity.PaymentStatusCompleted,
	}
	escrow := &entity.EscrowAccount{
		ID:            uuid.New(),
		OrderID:       order.ID,
		TransactionID: &txn.ID,
		BuyerID:       order.BuyerID,
		SellerID:      order.SellerID,
		Amount:        order.Total,
		Currency:      order.Currency,
		Status:        entity.EscrowStatusFunded,
	}

	fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil).Maybe()
	fx.orderRepo.EXPECT().FindOrderByIDForUpdate(mock.Anything, order.ID).Return(order, nil).Maybe()
	fx.orderRepo.EXPECT().UpdateOrder(mock.Anything, order).Return(nil).Maybe()
	fx.paymentRepo.EXPECT().FindTransactionByIDForUpdate(mock.Anything, txn.ID).Return(txn, nil).Maybe()
	fx.paymentRepo.EXPECT().UpdateTransaction(mock.Anything, txn).Return(nil).Maybe()
	fx.escrowRepo.EXPECT().FindEscrowByOrderID(mock.Anything, order.ID).Return(escrow, nil).Maybe()
	fx.escrowRepo.EXPECT().FindEscrowByIDForUpdate(mock.Anything, escrow.ID).Return(escrow, nil).Maybe()
	fx.escrowRepo.EXPECT().FindEscrowByTransactionIDForUpdate(mock.Anything, txn.ID).Return(escrow, nil).Maybe()
	fx.escrowRepo.EXPECT().UpdateEscrow(mock.Anything, escrow).Return(nil).Maybe()
	fx.gateways.EXPECT().Gateway(entity.ProviderCheckout).Return(fx.gateway, nil).Maybe()

	return order, txn, escrow
}

func TestOrderService_CancelPaidOrderRefundsThroughGateway(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order, txn, escrow := fx.paidOrder()

	fx.gateway.EXPECT().Refund(mock.Anything, txn, "seller out of stock").Return(nil).Once()

	updated, err := fx.service.UpdateOrderStatus(ctx, usecase.Actor{ID: order.SellerID}, order.ID, entity.OrderStatusCancelled, "seller out of stock")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.Status)
	assert.Equal(t, entity.PaymentStatusRefunded, txn.Status)
	assert.Equal(t, entity.EscrowStatusRefunded, escrow.Status)
	assert.Equal(t, "seller out of stock", escrow.RefundReason)

	// A later refund request finds the payment settled and leaves the provider alone.
	result, err := fx.service.refunds.refund(ctx, txn.ID, "duplicate", nil)

	require.NoError(t, err)
	assert.True(t, result.already)
	assert.Equal(t, entity.PaymentStatusRefunded, result.txn.Status)
}

func TestOrderService_CancelPaidOrderKeepsOrderWhenGatewayFails(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order, txn, escrow := fx.paidOrder()

	fx.gateway.EXPECT().Refund(mock.Anything, txn, "order cancelled").Return(errors.New("stripe: timeout")).Once()

	_, err := fx.service.UpdateOrderStatus(ctx, usecase.Actor{ID: order.BuyerID}, order.ID, entity.OrderStatusCancelled, "")

	assert.ErrorIs(t, err, domainerrors.ErrPaymentProviderUnavailable)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)
	assert.Equal(t, entity.PaymentStatusCompleted, txn.Status)
	assert.Equal(t, entity.EscrowStatusFunded, escrow.Status)
}

func TestOrderService_CancelRejectsPaymentLandingMidCancel(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), BuyerID: uuid.New(), SellerID: uuid.New(), Status: entity.OrderStatusPending}
	txnID := uuid.New()
	before := &entity.EscrowAccount{ID: uuid.New(), OrderID: order.ID, TransactionID: &txnID, Status: entity.EscrowStatusPending}
	after := &entity.EscrowAccount{ID: before.ID, OrderID: order.ID, TransactionID: &txnID, Status: entity.EscrowStatusFunded}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().FindOrderByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.escrowRepo.EXPECT().FindEscrowByOrderID(ctx, order.ID).Return(before, nil)
	fx.escrowRepo.EXPECT().FindEscrowByIDForUpdate(ctx, before.ID).Return(after, nil)

	_, err := fx.service.UpdateOrderStatus(ctx, usecase.Actor{ID: order.BuyerID}, order.ID, entity.OrderStatusCancelled, "")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	assert.Equal(t, entity.EscrowStatusFunded, after.Status)
}

func TestOrderService_GetOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), BuyerID: uuid.New(), SellerID: uuid.New()}
	missing := uuid.New()

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().FindOrderByID(ctx, missing).Return(nil, repository.ErrOrderNotFound)

	got, err := fx.service.GetOrder(ctx, usecase.Actor{ID: order.SellerID}, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, got)

	_, err = fx.service.GetOrder(ctx, usecase.Actor{ID: uuid.New()}, order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.GetOrder(ctx, usecase.Actor{ID: order.BuyerID}, missing)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.orderRepo.EXPECT().ListOrdersByUser(ctx, userID, repository.OrderRoleSeller, 20, 40).Return([]*entity.Order{{ID: uuid.New()}}, nil)

	orders, err := fx.service.ListOrders(ctx, userID, repository.OrderRoleSeller, 0, 40)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	_, err = fx.service.ListOrders(ctx, userID, repository.OrderRole("courier"), 10, 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
