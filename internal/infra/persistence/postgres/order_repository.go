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

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid order data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.find(repo.db.WithContext(ctx), id)
}

func (repo *orderRepository) FindOrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.find(repo.db.WithContext(ctx).Scopes(forUpdate), id)
}

func (repo *orderRepository) find(db *gorm.DB, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := db.Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// UpdateOrder saves status, timestamps and cancel reason.
func (repo *orderRepository) UpdateOrder(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Select("status", "cancel_reason", "paid_at", "delivered_at", "cancelled_at", "updated_at").
		Updates(fromOrderDomain(order))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) ListOrdersByUser(ctx context.Context, userID uuid.UUID, role repository.OrderRole, limit, offset int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	switch role {
	case repository.OrderRoleBuyer:
		query = query.Where("buyer_id = ?", userID)
	case repository.OrderRoleSeller:
		query = query.Where("seller_id = ?", userID)
	default:
		query = query.Where("buyer_id = ? OR seller_id = ?", userID, userID)
	}

	if err := query.Scopes(paginate(limit, offset)).Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ListingID: item.ListingID,
			ProductID: item.ProductID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &entity.Order{
		ID:              data.ID,
		BuyerID:         data.BuyerID,
		SellerID:        data.SellerID,
		VendorID:        data.VendorID,
		Items:           items,
		Subtotal:        data.Subtotal,
		ShippingFee:     data.ShippingFee,
		Total:           data.Total,
		Currency:        data.Currency,
		Status:          entity.OrderStatus(data.Status),
		ShippingAddress: data.ShippingAddress,
		Notes:           data.Notes,
		CancelReason:    data.CancelReason,
		PaidAt:          data.PaidAt,
		DeliveredAt:     data.DeliveredAt,
		CancelledAt:     data.CancelledAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ListingID: item.ListingID,
			ProductID: item.ProductID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		BuyerID:         data.BuyerID,
		SellerID:        data.SellerID,
		VendorID:        data.VendorID,
		Items:           items,
		Subtotal:        data.Subtotal,
		ShippingFee:     data.ShippingFee,
		Total:           data.Total,
		Currency:        data.Currency,
		Status:          string(data.Status),
		ShippingAddress: data.ShippingAddress,
		Notes:           data.Notes,
		CancelReason:    data.CancelReason,
		PaidAt:          data.PaidAt,
		DeliveredAt:     data.DeliveredAt,
		CancelledAt:     data.CancelledAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
