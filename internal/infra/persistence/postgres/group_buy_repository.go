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

var joinableStatuses = []string{string(entity.GroupBuyStatusOpen), string(entity.GroupBuyStatusConfirmed)}

type groupBuyRepository struct {
	db *gorm.DB
}

// NewGroupBuyRepository is the constructor for groupBuyRepository.
func NewGroupBuyRepository(db *gorm.DB) repository.GroupBuyRepository {
	return &groupBuyRepository{db: db}
}

func (repo *groupBuyRepository) CreateDeal(ctx context.Context, deal *entity.GroupBuyDeal) error {
	dealM := fromDealDomain(deal)

	if err := repo.db.WithContext(ctx).Create(dealM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVendorNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid group buy data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create group buy deal")
	}

	deal.ID = dealM.ID
	deal.CreatedAt = dealM.CreatedAt
	deal.UpdatedAt = dealM.UpdatedAt

	return nil
}

func (repo *groupBuyRepository) FindDealByID(ctx context.Context, id uuid.UUID) (*entity.GroupBuyDeal, error) {
	var dealM model.GroupBuyDealModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dealM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupBuyNotFound
		}

		return nil, errors.Wrap(err, "failed to find group buy deal by ID")
	}

	return toDealDomain(&dealM), nil
}

func (repo *groupBuyRepository) ListDeals(ctx context.Context, status entity.GroupBuyStatus, limit, offset int) ([]*entity.GroupBuyDeal, error) {
	var dealModels []*model.GroupBuyDealModel

	query := repo.db.WithContext(ctx).Order("ends_at ASC")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	if err := query.Scopes(paginate(limit, offset)).Find(&dealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list group buy deals")
	}

	return toDealDomains(dealModels), nil
}

func (repo *groupBuyRepository) AddParticipant(ctx context.Context, participant *entity.GroupBuyParticipant) error {
	participantM := &model.GroupBuyParticipantModel{
		DealID:   participant.DealID,
		UserID:   participant.UserID,
		Quantity: participant.Quantity,
		JoinedAt: participant.JoinedAt,
	}

	if err := repo.db.WithContext(ctx).Create(participantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAlreadyJoined
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGroupBuyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add participant")
	}

	return nil
}

// IncrementParticipants is a single guarded UPDATE. When it matches no row the
// deal is reloaded to tell a missing, closed or full deal apart.
func (repo *groupBuyRepository) IncrementParticipants(ctx context.Context, dealID uuid.UUID, now time.Time) (*entity.GroupBuyDeal, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.GroupBuyDealModel{}).
		Where("id = ? AND status IN ? AND ends_at > ?", dealID, joinableStatuses, now).
		Where("max_participants = 0 OR current_participants < max_participants").
		Updates(map[string]any{
			"current_participants": gorm.Expr("current_participants + 1"),
			"updated_at":           now,
		})

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to increment participants")
	}

	var dealM model.GroupBuyDealModel
	if err := repo.db.WithContext(ctx).
		Scopes(onPrimary).
		Where("id = ?", dealID).
		First(&dealM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupBuyNotFound
		}

		return nil, errors.Wrap(err, "failed to reload group buy deal")
	}

	deal := toDealDomain(&dealM)
	if result.RowsAffected == 0 {
		return nil, joinRejection(deal, now)
	}

	return deal, nil
}

func joinRejection(deal *entity.GroupBuyDeal, now time.Time) error {
	if deal.Status != entity.GroupBuyStatusOpen && deal.Status != entity.GroupBuyStatusConfirmed {
		return repository.ErrGroupBuyClosed
	}
	if !now.Before(deal.EndsAt) {
		return repository.ErrGroupBuyClosed
	}

	return repository.ErrGroupBuyFull
}

func (repo *groupBuyRepository) UpdateDealStatus(ctx context.Context, id uuid.UUID, status entity.GroupBuyStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GroupBuyDealModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update group buy status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGroupBuyNotFound
	}

	return nil
}

func (repo *groupBuyRepository) FindExpiredOpenDeals(ctx context.Context, now time.Time, limit int) ([]*entity.GroupBuyDeal, error) {
	var dealModels []*model.GroupBuyDealModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND ends_at <= ?", string(entity.GroupBuyStatusOpen), now).
		Order("ends_at ASC").
		Limit(limit).
		Find(&dealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find expired deals")
	}

	return toDealDomains(dealModels), nil
}

func (repo *groupBuyRepository) FindParticipantIDs(ctx context.Context, dealID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.GroupBuyParticipantModel{}).
		Where("deal_id = ?", dealID).
		Order("joined_at ASC").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find participant IDs")
	}

	return ids, nil
}

// --- Mapper Functions ---

func toDealDomains(dealModels []*model.GroupBuyDealModel) []*entity.GroupBuyDeal {
	deals := make([]*entity.GroupBuyDeal, 0, len(dealModels))
	for _, dealM := range dealModels {
		deals = append(deals, toDealDomain(dealM))
	}

	return deals
}

func toDealDomain(data *model.GroupBuyDealModel) *entity.GroupBuyDeal {
	if data == nil {
		return nil
	}

	return &entity.GroupBuyDeal{
		ID:                  data.ID,
		VendorID:            data.VendorID,
		ProductID:           data.ProductID,
		Title:               data.Title,
		Description:         data.Description,
		OriginalPrice:       data.OriginalPrice,
		DealPrice:           data.DealPrice,
		Currency:            data.Currency,
		MinParticipants:     data.MinParticipants,
		MaxParticipants:     data.MaxParticipants,
		CurrentParticipants: data.CurrentParticipants,
		Status:              entity.GroupBuyStatus(data.Status),
		EndsAt:              data.EndsAt,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromDealDomain(data *entity.GroupBuyDeal) *model.GroupBuyDealModel {
	if data == nil {
		return nil
	}

	return &model.GroupBuyDealModel{
		ID:                  data.ID,
		VendorID:            data.VendorID,
		ProductID:           data.ProductID,
		Title:               data.Title,
		Description:         data.Description,
		OriginalPrice:       data.OriginalPrice,
		DealPrice:           data.DealPrice,
		Currency:            data.Currency,
		MinParticipants:     data.MinParticipants,
		MaxParticipants:     data.MaxParticipants,
		CurrentParticipants: data.CurrentParticipants,
		Status:              string(data.Status),
		EndsAt:              data.EndsAt,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
