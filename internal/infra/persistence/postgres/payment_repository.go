package postgres

import (
	"context"

	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var openPaymentStatuses = []string{
	string(entity.PaymentStatusPending),
	string(entity.PaymentStatusProcessing),
	string(entity.PaymentStatusPendingVerification),
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (repo *paymentRepository) CreateTransaction(ctx context.Context, tx *entity.PaymentTransaction) error {
	txM := fromPaymentDomain(tx)

	if err := repo.db.WithContext(ctx).Create(txM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("payment reference code already used")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment transaction")
	}

	tx.ID = txM.ID
	tx.CreatedAt = txM.CreatedAt
	tx.UpdatedAt = txM.UpdatedAt

	return nil
}

func (repo *paymentRepository) FindTransactionByID(ctx context.Context, id uuid.UUID) (*entity.PaymentTransaction, error) {
	return repo.find(repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *paymentRepository) FindTransactionByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.PaymentTransaction, error) {
	return repo.find(repo.db.WithContext(ctx).Scopes(forUpdate).Where("id = ?", id))
}

// FindTransactionByReference matches either the provider reference or our reference code.
func (repo *paymentRepository) FindTransactionByReference(ctx context.Context, provider entity.PaymentProvider, reference string) (*entity.PaymentTransaction, error) {
	return repo.find(repo.db.WithContext(ctx).
		Scopes(forUpdate).
		Where("provider = ? AND (provider_ref = ? OR reference_code = ?)", string(provider), reference, reference))
}

func (repo *paymentRepository) FindOpenTransactionByOrder(ctx context.Context, orderID uuid.UUID) (*entity.PaymentTransaction, error) {
	return repo.find(repo.db.WithContext(ctx).
		Where("order_id = ? AND status IN ?", orderID, openPaymentStatuses).
		Order("created_at DESC"))
}

func (repo *paymentRepository) find(query *gorm.DB) (*entity.PaymentTransaction, error) {
	var txM model.PaymentTransactionModel

	if err := query.First(&txM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment transaction")
	}

	return toPaymentDomain(&txM), nil
}

func (repo *paymentRepository) UpdateTransaction(ctx context.Context, tx *entity.PaymentTransaction) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentTransactionModel{}).
		Where("id = ?", tx.ID).
		Select("status", "provider_ref", "redirect_url", "instructions", "failure_reason",
			"metadata", "completed_at", "updated_at").
		Updates(fromPaymentDomain(tx))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update payment transaction")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

func (repo *paymentRepository) ListTransactionsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.PaymentTransaction, error) {
	var txModels []*model.PaymentTransactionModel

	if err := repo.db.WithContext(ctx).
		Where("payer_id = ? OR payee_id = ?", userID, userID).
		Order("created_at DESC").
		Scopes(paginate(limit, offset)).
		Find(&txModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payment transactions")
	}

	txs := make([]*entity.PaymentTransaction, 0, len(txModels))
	for _, txM := range txModels {
		txs = append(txs, toPaymentDomain(txM))
	}

	return txs, nil
}

// RecordWebhookEvent inserts with ON CONFLICT DO NOTHING so a replayed
// (provider, event_id) is detected without aborting the surrounding transaction.
func (repo *paymentRepository) RecordWebhookEvent(ctx context.Context, event *entity.PaymentWebhookEvent) error {
	eventM := &model.PaymentWebhookEventModel{
		ID:            event.ID,
		Provider:      string(event.Provider),
		EventID:       event.EventID,
		EventType:     event.EventType,
		TransactionID: event.TransactionID,
		Payload:       datatypes.JSON(event.Payload),
		ProcessedAt:   event.ProcessedAt,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "provider"}, {Name: "event_id"}},
			DoNothing: true,
		}).
		Create(eventM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to record webhook event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDuplicateWebhookEvent
	}

	return nil
}

// --- Mapper Functions ---

func toPaymentDomain(data *model.PaymentTransactionModel) *entity.PaymentTransaction {
	if data == nil {
		return nil
	}

	return &entity.PaymentTransaction{
		ID:            data.ID,
		OrderID:       data.OrderID,
		PayerID:       data.PayerID,
		PayeeID:       data.PayeeID,
		Amount:        data.Amount,
		Currency:      data.Currency,
		Provider:      entity.PaymentProvider(data.Provider),
		ProviderRef:   data.ProviderRef,
		ReferenceCode: data.ReferenceCode,
		Status:        entity.PaymentStatus(data.Status),
		RedirectURL:   data.RedirectURL,
		Instructions:  data.Instructions,
		FailureReason: data.FailureReason,
		Metadata:      data.Metadata,
		CompletedAt:   data.CompletedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromPaymentDomain(data *entity.PaymentTransaction) *model.PaymentTransactionModel {
	if data == nil {
		return nil
	}

	return &model.PaymentTransactionModel{
		ID:            data.ID,
		OrderID:       data.OrderID,
		PayerID:       data.PayerID,
		PayeeID:       data.PayeeID,
		Amount:        data.Amount,
		Currency:      data.Currency,
		Provider:      string(data.Provider),
		ProviderRef:   data.ProviderRef,
		ReferenceCode: data.ReferenceCode,
		Status:        string(data.Status),
		RedirectURL:   data.RedirectURL,
		Instructions:  data.Instructions,
		FailureReason: data.FailureReason,
		Metadata:      data.Metadata,
		CompletedAt:   data.CompletedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
