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
	"go.uber.org/fx"
)

const expireBatch = 100

// GroupBuyServiceParams holds the dependencies of the group buy service.
type GroupBuyServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	GroupBuyRepo repository.GroupBuyRepository
	VendorRepo   repository.VendorRepository
	ProductRepo  repository.ProductRepository
	Publisher    service.EventPublisher
	Notifier     usecase.NotificationUsecase
	Logger       *slog.Logger
}

type groupBuyService struct {
	txManager    repository.TransactionManager
	groupBuyRepo repository.GroupBuyRepository
	vendorRepo   repository.VendorRepository
	productRepo  repository.ProductRepository
	publisher    service.EventPublisher
	notifier     usecase.NotificationUsecase
	logger       *slog.Logger
	now          func() time.Time
}

// NewGroupBuyService creates the group buy service.
func NewGroupBuyService(params GroupBuyServiceParams) usecase.GroupBuyUsecase {
	return &groupBuyService{
		txManager:    params.TxManager,
		groupBuyRepo: params.GroupBuyRepo,
		vendorRepo:   params.VendorRepo,
		productRepo:  params.ProductRepo,
		publisher:    params.Publisher,
		notifier:     params.Notifier,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (s *groupBuyService) CreateDeal(ctx context.Context, ownerID uuid.UUID, input *usecase.GroupBuyInput) (*entity.GroupBuyDeal, error) {
	now := s.now()
	if err := validateGroupBuyInput(input, now); err != nil {
		return nil, err
	}

	vendor, err := s.vendorRepo.FindVendorByOwner(ctx, ownerID)
	if err != nil {
		return nil, translateVendorError(err)
	}
	if !vendor.IsApproved() {
		return nil, errors.Wrap(domainerrors.ErrVendorNotApproved, "store is not approved")
	}
	if input.ProductID != nil {
		product, err := s.productRepo.FindProductByID(ctx, *input.ProductID)
		if err != nil {
			return nil, translateProductError(err)
		}
		if product.VendorID != vendor.ID {
			return nil, errors.Wrap(domainerrors.ErrForbidden, "product belongs to another store")
		}
	}

	deal := &entity.GroupBuyDeal{
		ID:              uuid.New(),
		VendorID:        vendor.ID,
		ProductID:       input.ProductID,
		Title:           strings.TrimSpace(input.Title),
		Description:     strings.TrimSpace(input.Description),
		OriginalPrice:   input.OriginalPrice,
		DealPrice:       input.DealPrice,
		Currency:        currency.Normalize(input.Currency),
		MinParticipants: input.MinParticipants,
		MaxParticipants: input.MaxParticipants,
		Status:          entity.GroupBuyStatusOpen,
		EndsAt:          input.EndsAt.UTC(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.groupBuyRepo.CreateDeal(ctx, deal); err != nil {
		return nil, errors.Wrap(err, "failed to create group buy deal")
	}

	s.logger.Info("Group buy deal created",
		slog.String("deal_id", deal.ID.String()),
		slog.String("vendor_id", vendor.ID.String()),
		slog.Int("min_participants", deal.MinParticipants),
	)

	return deal, nil
}

func (s *groupBuyService) GetDeal(ctx context.Context, dealID uuid.UUID) (*entity.GroupBuyDeal, error) {
	deal, err := s.groupBuyRepo.FindDealByID(ctx, dealID)
	if err != nil {
		return nil, translateGroupBuyError(err)
	}

	return deal, nil
}

func (s *groupBuyService) ListDeals(ctx context.Context, status entity.GroupBuyStatus, limit, offset int) ([]*entity.GroupBuyDeal, error) {
	switch status {
	case "", entity.GroupBuyStatusOpen, entity.GroupBuyStatusConfirmed, entity.GroupBuyStatusExpired, entity.GroupBuyStatusCancelled:
	default:
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown group buy status %q", status)
	}
	limit, offset = normalizePage(limit, offset)

	deals, err := s.groupBuyRepo.ListDeals(ctx, status, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list group buy deals")
	}

	return deals, nil
}

// JoinDeal inserts the participant and bumps the counter in one transaction.
// The deal is confirmed by the join that reaches the minimum.
func (s *groupBuyService) JoinDeal(ctx context.Context, userID, dealID uuid.UUID, quantity int) (*entity.GroupBuyDeal, error) {
	if quantity <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be positive")
	}

	var (
		deal      *entity.GroupBuyDeal
		confirmed bool
	)
	now := s.now()

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewGroupBuyRepository()

		current, err := repo.FindDealByID(ctx, dealID)
		if err != nil {
			return translateGroupBuyError(err)
		}
		if !current.IsJoinable(now) {
			if current.MaxParticipants != 0 && current.CurrentParticipants >= current.MaxParticipants {
				return errors.Wrap(domainerrors.ErrGroupBuyFull, "deal is full")
			}

			return errors.Wrap(domainerrors.ErrGroupBuyClosed, "deal is no longer open")
		}

		err = repo.AddParticipant(ctx, &entity.GroupBuyParticipant{DealID: dealID, UserID: userID, Quantity: quantity, JoinedAt: now})
		if errors.Is(err, repository.ErrAlreadyJoined) {
			return errors.Wrap(domainerrors.ErrAlreadyJoined, "already joined this deal")
		}
		if err != nil {
			return errors.Wrap(err, "failed to add participant")
		}

		updated, err := repo.IncrementParticipants(ctx, dealID, now)
		switch {
		case errors.Is(err, repository.ErrGroupBuyFull):
			return errors.Wrap(domainerrors.ErrGroupBuyFull, "deal filled up")
		case errors.Is(err, repository.ErrGroupBuyClosed):
			return errors.Wrap(domainerrors.ErrGroupBuyClosed, "deal closed while joining")
		case errors.Is(err, repository.ErrGroupBuyNotFound):
			return translateGroupBuyError(err)
		case err != nil:
			return errors.Wrap(err, "failed to count participant")
		}

		if updated.Status == entity.GroupBuyStatusOpen && updated.CurrentParticipants >= updated.MinParticipants {
			if err := repo.UpdateDealStatus(ctx, dealID, entity.GroupBuyStatusConfirmed); err != nil {
				return errors.Wrap(err, "failed to confirm deal")
			}
			updated.Status = entity.GroupBuyStatusConfirmed
			confirmed = true
		}
		deal = updated

		return nil
	})
	if err != nil {
		return nil, errors.WithMessage(err, "join group buy failed")
	}

	s.logger.Info("Group buy joined",
		slog.String("deal_id", dealID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("participants", deal.CurrentParticipants),
	)
	if confirmed {
		s.announce(ctx, deal, "Deal unlocked", deal.Title+" reached its minimum and is confirmed at "+currency.FormatCurrency(deal.DealPrice, deal.Currency)+".")
	}

	return deal, nil
}

// ExpireDeals closes OPEN deals past their end time. A deal that fails to
// close is logged and retried on the next run.
func (s *groupBuyService) ExpireDeals(ctx context.Context, now time.Time) (int, error) {
	deals, err := s.groupBuyRepo.FindExpiredOpenDeals(ctx, now, expireBatch)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find expired deals")
	}

	expired := 0
	for _, deal := range deals {
		if err := s.groupBuyRepo.UpdateDealStatus(ctx, deal.ID, entity.GroupBuyStatusExpired); err != nil {
			s.logger.Error("Failed to expire deal", slog.String("deal_id", deal.ID.String()), slog.Any("error", err))

			continue
		}
		deal.Status = entity.GroupBuyStatusExpired
		expired++

		s.announce(ctx, deal, "Deal expired", deal.Title+" ended without enough participants. You were not charged.")
	}

	if expired > 0 {
		s.logger.Info("Group buy deals expired", slog.Int("count", expired))
	}

	return expired, nil
}

// announce publishes a group_buy.updated event to the participants. When the
// publisher is unavailable the notifications are queued directly.
func (s *groupBuyService) announce(ctx context.Context, deal *entity.GroupBuyDeal, title, message string) {
	participants, err := s.groupBuyRepo.FindParticipantIDs(ctx, deal.ID)
	if err != nil {
		s.logger.Warn("Failed to load deal participants", slog.String("deal_id", deal.ID.String()), slog.Any("error", err))

		return
	}
	if len(participants) == 0 {
		return
	}

	data := map[string]any{
		"deal_id": deal.ID.String(),
		"status":  string(deal.Status),
	}
	recipients := make([]string, 0, len(participants))
	for _, id := range participants {
		recipients = append(recipients, id.String())
	}

	err = s.publisher.PublishEvent(ctx, &service.MarketplaceEvent{
		Type:             service.EventGroupBuyUpdated,
		SubjectID:        deal.ID.String(),
		RecipientIDs:     recipients,
		NotificationType: string(entity.NotificationTypeGroupBuy),
		Title:            title,
		Message:          message,
		Data:             data,
		OccurredAt:       s.now(),
	})
	if err == nil {
		return
	}

	s.logger.Warn("Failed to publish group buy event, queueing directly",
		slog.String("deal_id", deal.ID.String()),
		slog.Any("error", err),
	)
	reqs := make([]*usecase.NotificationRequest, 0, len(participants))
	for _, id := range participants {
		reqs = append(reqs, notice(id, entity.NotificationTypeGroupBuy, title, message, data))
	}
	enqueueNotifications(ctx, s.notifier, s.logger, reqs...)
}

func validateGroupBuyInput(input *usecase.GroupBuyInput, now time.Time) error {
	if input == nil || strings.TrimSpace(input.Title) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "deal title is required")
	}
	if !input.DealPrice.IsPositive() || !input.OriginalPrice.IsPositive() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "prices must be positive")
	}
	if !input.DealPrice.LessThan(input.OriginalPrice) {
		return errors.Wrap(domainerrors.ErrValidationFailed, "deal price must be below the original price")
	}
	if !currency.IsSupported(input.Currency) {
		return errors.Wrapf(domainerrors.ErrUnsupportedCurrency, "currency %q", input.Currency)
	}
	if input.MinParticipants < 2 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "a group buy needs at least 2 participants")
	}
	if input.MaxParticipants != 0 && input.MaxParticipants < input.MinParticipants {
		return errors.Wrap(domainerrors.ErrValidationFailed, "max participants is below the minimum")
	}
	if !input.EndsAt.After(now) {
		return errors.Wrap(domainerrors.ErrValidationFailed, "deal must end in the future")
	}

	return nil
}

func translateGroupBuyError(err error) error {
	if errors.Is(err, repository.ErrGroupBuyNotFound) {
		return errors.Wrap(domainerrors.ErrGroupBuyNotFound, "group buy deal not found")
	}

	return errors.Wrap(err, "failed to load group buy deal")
}
