package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"expatmart/config"
	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/domain/service"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderServiceParams holds the dependencies of the order service.
type OrderServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	OrderRepo  repository.OrderRepository
	VendorRepo repository.VendorRepository
	EscrowRepo repository.EscrowRepository
	Gateways   service.GatewayResolver
	Hasher     service.SecretHasher
	Notifier   usecase.NotificationUsecase
	Metrics    service.MetricsRecorder
	Config     *config.Config
	Logger     *slog.Logger
}

type orderService struct {
	txManager  repository.TransactionManager
	orderRepo  repository.OrderRepository
	vendorRepo repository.VendorRepository
	escrowRepo repository.EscrowRepository
	ledger     *escrowLedger
	refunds    *paymentRefunder
	notifier   usecase.NotificationUsecase
	metrics    service.MetricsRecorder
	logger     *slog.Logger
	now        func() time.Time
}

// NewOrderService creates the order service.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	ledger := newEscrowLedger(params.Config.Escrow, params.Hasher)

	return &orderService{
		txManager:  params.TxManager,
		orderRepo:  params.OrderRepo,
		vendorRepo: params.VendorRepo,
		escrowRepo: params.EscrowRepo,
		ledger:     ledger,
		refunds:    newPaymentRefunder(params.TxManager, params.Gateways, ledger, params.Metrics, params.Logger),
		notifier:   params.Notifier,
		metrics:    params.Metrics,
		logger:     params.Logger,
		now:        time.Now,
	}
}

// CreateOrder reserves the listing or the product stock and records a PENDING
// order in one transaction.
func (s *orderService) CreateOrder(ctx context.Context, buyerID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "order input is required")
	}
	if (input.ListingID == nil) == (len(input.Items) == 0) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "order either a listing or vendor products")
	}
	if input.ShippingFee.IsNegative() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "shipping fee must not be negative")
	}

	now := s.now()
	order := &entity.Order{
		ID:              uuid.New(),
		BuyerID:         buyerID,
		ShippingFee:     input.ShippingFee,
		Status:          entity.OrderStatusPending,
		ShippingAddress: strings.TrimSpace(input.ShippingAddress),
		Notes:           strings.TrimSpace(input.Notes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		if input.ListingID != nil {
			err = s.reserveListing(ctx, repoFactory.NewListingRepository(), order, *input.ListingID)
		} else {
			err = s.reserveProducts(ctx, repoFactory.NewProductRepository(), order, input.Items)
		}
		if err != nil {
			return err
		}

		order.Subtotal = decimal.Zero
		for _, item := range order.Items {
			order.Subtotal = order.Subtotal.Add(item.LineTotal())
		}
		order.Total = order.Subtotal.Add(order.ShippingFee)

		if err := repoFactory.NewOrderRepository().CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithMessage(err, "create order failed")
	}

	s.logger.Info("Order created",
		slog.String("order_id", order.ID.String()),
		slog.String("buyer_id", buyerID.String()),
		slog.String("total", order.Total.String()),
		slog.String("currency", order.Currency),
	)
	enqueueNotifications(ctx, s.notifier, s.logger,
		notice(order.SellerID, entity.NotificationTypeOrderUpdate, "New order", "You received a new order.", orderData(order)),
	)

	return order, nil
}

func (s *orderService) reserveListing(ctx context.Context, listingRepo repository.ListingRepository, order *entity.Order, listingID uuid.UUID) error {
	listing, err := listingRepo.FindListingByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return errors.Wrap(domainerrors.ErrListingNotFound, "listing not found")
		}

		return errors.Wrap(err, "failed to load listing")
	}
	if listing.SellerID == order.BuyerID {
		return errors.Wrap(domainerrors.ErrValidationFailed, "cannot order your own listing")
	}
	if listing.Status != entity.ListingStatusActive {
		return errors.Wrapf(domainerrors.ErrListingUnavailable, "listing is %s", listing.Status)
	}

	err = listingRepo.UpdateListingStatus(ctx, listing.ID, entity.ListingStatusActive, entity.ListingStatusReserved)
	if errors.Is(err, repository.ErrListingStatusConflict) {
		return errors.Wrap(domainerrors.ErrListingUnavailable, "listing was reserved by another buyer")
	}
	if err != nil {
		return errors.Wrap(err, "failed to reserve listing")
	}

	order.SellerID = listing.SellerID
	order.Currency = listing.Currency
	order.Items = []entity.OrderItem{{
		ListingID: &listing.ID,
		Title:     listing.Title,
		Quantity:  1,
		UnitPrice: listing.Price,
	}}

	return nil
}

// reserveProducts decrements stock for each line. All lines must come from
// one approved vendor and share a currency.
func (s *orderService) reserveProducts(ctx context.Context, productRepo repository.ProductRepository, order *entity.Order, items []usecase.OrderItemInput) error {
	quantities := make(map[uuid.UUID]int, len(items))
	ordered := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be positive")
		}
		if _, seen := quantities[item.ProductID]; !seen {
			ordered = append(ordered, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}

	var vendorID uuid.UUID
	for _, productID := range ordered {
		product, err := productRepo.FindProductByID(ctx, productID)
		if err != nil {
			return translateProductError(err)
		}
		if product.Status != entity.ProductStatusPublished {
			return errors.Wrapf(domainerrors.ErrProductNotFound, "product %s is not on sale", product.ID)
		}

		switch {
		case vendorID == uuid.Nil:
			vendorID = product.VendorID
			order.Currency = product.Currency
		case product.VendorID != vendorID:
			return errors.Wrap(domainerrors.ErrValidationFailed, "all items must come from one vendor")
		case product.Currency != order.Currency:
			return errors.Wrap(domainerrors.ErrValidationFailed, "all items must share a currency")
		}

		qty := quantities[productID]
		if _, err := productRepo.UpdateInventoryQuantity(ctx, product.ID, -qty); err != nil {
			if errors.Is(err, repository.ErrInsufficientInventory) {
				return errors.Wrapf(domainerrors.ErrInsufficientInventory, "%s: %d requested", product.Name, qty)
			}

			return errors.Wrap(err, "failed to reserve inventory")
		}

		order.Items = append(order.Items, entity.OrderItem{
			ProductID: &product.ID,
			Title:     product.Name,
			Quantity:  qty,
			UnitPrice: product.Price,
		})
	}

	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return errors.Wrap(domainerrors.ErrVendorNotFound, "vendor not found")
		}

		return errors.Wrap(err, "failed to load vendor")
	}
	if !vendor.IsApproved() {
		return errors.Wrap(domainerrors.ErrVendorNotApproved, "vendor is not accepting orders")
	}
	if vendor.OwnerID == order.BuyerID {
		return errors.Wrap(domainerrors.ErrValidationFailed, "cannot order from your own store")
	}

	order.SellerID = vendor.OwnerID
	order.VendorID = &vendor.ID

	return nil
}

// UpdateOrderStatus moves the order through its state machine. PAID is set by
// payments and is reserved to admins here. Cancelling a paid order refunds the
// payment through its gateway first; the order stays as it was if that fails.
func (s *orderService) UpdateOrderStatus(ctx context.Context, actor usecase.Actor, orderID uuid.UUID, status entity.OrderStatus, reason string) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown order status %q", status)
	}

	var (
		order    *entity.Order
		refunded *entity.EscrowAccount
		pending  pendingMetrics
	)

	if status == entity.OrderStatusCancelled {
		var err error
		refunded, err = s.refundPaidOrder(ctx, actor, orderID, cancelReason(reason))
		if err != nil {
			return nil, errors.WithMessage(err, "update order status failed")
		}
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		locked, err := orderRepo.FindOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			return translateOrderError(err)
		}
		if err := authorizeOrderTransition(actor, locked, status); err != nil {
			return err
		}
		if !locked.Status.CanTransitionTo(status) {
			return errors.Wrapf(domainerrors.ErrInvalidStatusTransition, "order cannot move from %s to %s", locked.Status, status)
		}

		now := s.now()
		switch status {
		case entity.OrderStatusPaid:
			locked.PaidAt = &now
		case entity.OrderStatusDelivered:
			locked.DeliveredAt = &now
			if err := s.settleListings(ctx, repoFactory.NewListingRepository(), locked, entity.ListingStatusSold); err != nil {
				return err
			}
		case entity.OrderStatusCancelled:
			locked.CancelledAt = &now
			locked.CancelReason = strings.TrimSpace(reason)
			if err := s.restoreInventory(ctx, repoFactory, locked); err != nil {
				return err
			}
			closed, err := s.closeEscrow(ctx, repoFactory.NewEscrowRepository(), locked, &pending)
			if err != nil {
				return err
			}
			if closed != nil {
				refunded = closed
			}
		}

		locked.Status = status
		locked.UpdatedAt = now
		if err := orderRepo.UpdateOrder(ctx, locked); err != nil {
			return errors.Wrap(err, "failed to update order")
		}
		order = locked

		return nil
	})
	if err != nil {
		return nil, errors.WithMessage(err, "update order status failed")
	}
	pending.emit(s.metrics)

	s.logger.Info("Order status updated",
		slog.String("order_id", order.ID.String()),
		slog.String("status", string(order.Status)),
		slog.String("actor_id", actor.ID.String()),
	)
	s.notifyStatus(ctx, actor, order, refunded)

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, translateOrderError(err)
	}
	if !actor.IsAdmin() && !order.IsParty(actor.ID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "not a party to this order")
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID, role repository.OrderRole, limit, offset int) ([]*entity.Order, error) {
	switch role {
	case repository.OrderRoleAny, repository.OrderRoleBuyer, repository.OrderRoleSeller:
	default:
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown order role %q", role)
	}
	limit, offset = normalizePage(limit, offset)

	orders, err := s.orderRepo.ListOrdersByUser(ctx, userID, role, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (s *orderService) restoreInventory(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order) error {
	productRepo := repoFactory.NewProductRepository()
	for _, item := range order.Items {
		if item.ProductID == nil {
			continue
		}
		if _, err := productRepo.UpdateInventoryQuantity(ctx, *item.ProductID, item.Quantity); err != nil {
			return errors.Wrapf(err, "failed to restore inventory of %s", item.ProductID)
		}
	}

	return s.settleListings(ctx, repoFactory.NewListingRepository(), order, entity.ListingStatusActive)
}

// settleListings moves reserved listings of the order to next. A listing the
// seller already changed is left alone.
func (s *orderService) settleListings(ctx context.Context, listingRepo repository.ListingRepository, order *entity.Order, next entity.ListingStatus) error {
	for _, item := range order.Items {
		if item.ListingID == nil {
			continue
		}
		err := listingRepo.UpdateListingStatus(ctx, *item.ListingID, entity.ListingStatusReserved, next)
		if err != nil && !errors.Is(err, repository.ErrListingStatusConflict) && !errors.Is(err, repository.ErrListingNotFound) {
			return errors.Wrap(err, "failed to update listing status")
		}
	}

	return nil
}

// refundPaidOrder refunds the payment held in the order's escrow ahead of a
// cancellation. It returns nil when no captured payment is held.
func (s *orderService) refundPaidOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID, reason string) (*entity.EscrowAccount, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, translateOrderError(err)
	}
	if err := authorizeOrderTransition(actor, order, entity.OrderStatusCancelled); err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(entity.OrderStatusCancelled) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidStatusTransition, "order cannot move from %s to %s", order.Status, entity.OrderStatusCancelled)
	}

	escrow, err := s.escrowRepo.FindEscrowByOrderID(ctx, order.ID)
	if errors.Is(err, repository.ErrEscrowNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translateEscrowError(err)
	}
	if escrow.TransactionID == nil || !escrow.HoldsFunds() {
		return nil, nil
	}

	result, err := s.refunds.refund(ctx, *escrow.TransactionID, reason, nil)
	if err != nil {
		return nil, err
	}

	return result.escrow, nil
}

// closeEscrow refunds an escrow that holds no captured payment. A funded
// escrow backed by a payment is refunded by refundPaidOrder; finding one here
// means the payment completed while the order was being cancelled.
func (s *orderService) closeEscrow(ctx context.Context, escrowRepo repository.EscrowRepository, order *entity.Order, pending *pendingMetrics) (*entity.EscrowAccount, error) {
	escrow, err := escrowRepo.FindEscrowByOrderID(ctx, order.ID)
	if errors.Is(err, repository.ErrEscrowNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translateEscrowError(err)
	}

	escrow, err = escrowRepo.FindEscrowByIDForUpdate(ctx, escrow.ID)
	if err != nil {
		return nil, translateEscrowError(err)
	}
	if escrow.TransactionID != nil && escrow.HoldsFunds() {
		return nil, errors.Wrap(domainerrors.ErrInvalidStatusTransition, "the order was paid while cancelling, try again")
	}
	if !escrow.Status.CanTransitionTo(entity.EscrowStatusRefunded) {
		return nil, nil
	}

	if err := s.ledger.refund(ctx, escrowRepo, escrow, cancelReason(order.CancelReason), pending); err != nil {
		return nil, err
	}

	return escrow, nil
}

func (s *orderService) notifyStatus(ctx context.Context, actor usecase.Actor, order *entity.Order, refunded *entity.EscrowAccount) {
	data := orderData(order)

	var reqs []*usecase.NotificationRequest
	switch order.Status {
	case entity.OrderStatusPaid:
		reqs = append(reqs, notice(order.SellerID, entity.NotificationTypeOrderUpdate, "Order paid", "Your order was paid and can be prepared.", data))
	case entity.OrderStatusFulfilling:
		reqs = append(reqs, notice(order.BuyerID, entity.NotificationTypeOrderUpdate, "Order on its way", "The seller is preparing your order.", data))
	case entity.OrderStatusDelivered:
		reqs = append(reqs, notice(order.BuyerID, entity.NotificationTypeOrderUpdate, "Order delivered", "Your order was delivered. Share your release code with the seller to settle the escrow.", data))
	case entity.OrderStatusCancelled:
		message := "The order was cancelled."
		if order.CancelReason != "" {
			message = "The order was cancelled: " + order.CancelReason
		}
		if actor.ID != order.BuyerID {
			reqs = append(reqs, notice(order.BuyerID, entity.NotificationTypeOrderUpdate, "Order cancelled", message, data))
		}
		if actor.ID != order.SellerID {
			reqs = append(reqs, notice(order.SellerID, entity.NotificationTypeOrderUpdate, "Order cancelled", message, data))
		}
		if refunded != nil {
			reqs = append(reqs, notice(order.BuyerID, entity.NotificationTypeEscrow, "Escrow refunded", "Your payment is being returned.", escrowData(refunded)))
		}
	}

	enqueueNotifications(ctx, s.notifier, s.logger, reqs...)
}

func authorizeOrderTransition(actor usecase.Actor, order *entity.Order, next entity.OrderStatus) error {
	if actor.IsAdmin() {
		return nil
	}

	switch next {
	case entity.OrderStatusFulfilling, entity.OrderStatusDelivered:
		if actor.ID == order.SellerID {
			return nil
		}
	case entity.OrderStatusCancelled:
		if actor.ID == order.SellerID {
			return nil
		}
		if actor.ID == order.BuyerID && (order.Status == entity.OrderStatusPending || order.Status == entity.OrderStatusPaid) {
			return nil
		}
	}

	return errors.Wrapf(domainerrors.ErrForbidden, "not allowed to mark this order %s", next)
}

func cancelReason(reason string) string {
	if reason = strings.TrimSpace(reason); reason != "" {
		return reason
	}

	return "order cancelled"
}

func translateProductError(err error) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
	}

	return errors.Wrap(err, "failed to load product")
}

func orderData(order *entity.Order) map[string]any {
	return map[string]any{
		"order_id": order.ID.String(),
		"status":   string(order.Status),
		"total":    order.Total.String(),
		"currency": order.Currency,
	}
}
