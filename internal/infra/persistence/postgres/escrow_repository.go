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

type escrowRepository struct {
	db *gorm.DB
}

// NewEscrowRepository is the constructor for escrowRepository.
func NewEscrowRepository(db *gorm.DB) repository.EscrowRepository {
	return &escrowRepository{db: db}
}

func (repo *escrowRepository) CreateEscrow(ctx context.Context, escrow *entity.EscrowAccount) error {
	escrowM := fromEscrowDomain(escrow)

	if err := repo.db.WithContext(ctx).Create(escrowM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrLiveEscrowExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create escrow account")
	}

	escrow.ID = escrowM.ID
	escrow.CreatedAt = escrowM.CreatedAt
	escrow.UpdatedAt = escrowM.UpdatedAt

	return nil
}

func (repo *escrowRepository) FindEscrowByID(ctx context.Context, id uuid.UUID) (*entity.EscrowAccount, error) {
	return repo.find(repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *escrowRepository) FindEscrowByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.EscrowAccount, error) {
	return repo.find(repo.db.WithContext(ctx).Scopes(forUpdate).Where("id = ?", id))
}

// FindEscrowByOrderID returns the most recent escrow account of an order.
func (repo *escrowRepository) FindEscrowByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.EscrowAccount, error) {
	return repo.find(repo.db.WithContext(ctx).Where("order_id = ?", orderID).Order("created_at DESC"))
}

func (repo *escrowRepository) FindEscrowByTransactionIDForUpdate(ctx context.Context, transactionID uuid.UUID) (*entity.EscrowAccount, error) {
	return repo.find(repo.db.WithContext(ctx).Scopes(forUpdate).Where("transaction_id = ?", transactionID))
}

func (repo *escrowRepository) find(query *gorm.DB) (*entity.EscrowAccount, error) {
	var escrowM model.EscrowAccountModel

	if err := query.Take(&escrowM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEscrowNotFound
		}

		return nil, errors.Wrap(err, "failed to find escrow account")
	}

	return toEscrowDomain(&escrowM), nil
}

func (repo *escrowRepository) UpdateEscrow(ctx context.Context, escrow *entity.EscrowAccount) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EscrowAccountModel{}).
		Where("id = ?", escrow.ID).
		Select("transaction_id", "status", "release_code_hash", "funded_at", "released_at",
			"released_by", "refunded_at", "refund_reason", "dispute_reason", "dispute_opened_by",
			"dispute_opened_at", "auto_release_at", "updated_at").
		Updates(fromEscrowDomain(escrow))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update escrow account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEscrowNotFound
	}

	return nil
}

// FindDueForAutoRelease joins orders so only delivered goods are released.
func (repo *escrowRepository) FindDueForAutoRelease(ctx context.Context, now time.Time, limit int) ([]*entity.EscrowAccount, error) {
	var escrowModels []*model.EscrowAccountModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN orders ON orders.id = escrow_accounts.order_id").
		Where("escrow_accounts.status = ?", string(entity.EscrowStatusFunded)).
		Where("orders.status = ?", string(entity.OrderStatusDelivered)).
		Where("escrow_accounts.auto_release_at <= ?", now).
		Order("escrow_accounts.auto_release_at ASC").
		Limit(limit).
		Find(&escrowModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find escrows due for auto release")
	}

	escrows := make([]*entity.EscrowAccount, 0, len(escrowModels))
	for _, escrowM := range escrowModels {
		escrows = append(escrows, toEscrowDomain(escrowM))
	}

	return escrows, nil
}

// --- Mapper Functions ---

func toEscrowDomain(data *model.EscrowAccountModel) *entity.EscrowAccount {
	if data == nil {
		return nil
	}

	return &entity.EscrowAccount{
		ID:              data.ID,
		OrderID:         data.OrderID,
		TransactionID:   data.TransactionID,
		BuyerID:         data.BuyerID,
		SellerID:        data.SellerID,
		Amount:          data.Amount,
		Currency:        data.Currency,
		Status:          entity.EscrowStatus(data.Status),
		ReleaseCodeHash: data.ReleaseCodeHash,
		FundedAt:        data.FundedAt,
		ReleasedAt:      data.ReleasedAt,
		ReleasedBy:      data.ReleasedBy,
		RefundedAt:      data.RefundedAt,
		RefundReason:    data.RefundReason,
		DisputeReason:   data.DisputeReason,
		DisputeOpenedBy: data.DisputeOpenedBy,
		DisputeOpenedAt: data.DisputeOpenedAt,
		AutoReleaseAt:   data.AutoReleaseAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromEscrowDomain(data *entity.EscrowAccount) *model.EscrowAccountModel {
	if data == nil {
		return nil
	}

	return &model.EscrowAccountModel{
		ID:              data.ID,
		OrderID:         data.OrderID,
		TransactionID:   data.TransactionID,
		BuyerID:         data.BuyerID,
		SellerID:        data.SellerID,
		Amount:          data.Amount,
		Currency:        data.Currency,
		Status:          string(data.Status),
		ReleaseCodeHash: data.ReleaseCodeHash,
		FundedAt:        data.FundedAt,
		ReleasedAt:      data.ReleasedAt,
		ReleasedBy:      data.ReleasedBy,
		RefundedAt:      data.RefundedAt,
		RefundReason:    data.RefundReason,
		DisputeReason:   data.DisputeReason,
		DisputeOpenedBy: data.DisputeOpenedBy,
		DisputeOpenedAt: data.DisputeOpenedAt,
		AutoReleaseAt:   data.AutoReleaseAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
