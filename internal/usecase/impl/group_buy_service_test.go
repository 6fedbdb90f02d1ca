package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

type groupBuyFixture struct {
	service      *groupBuyService
	groupBuyRepo *mockRepo.MockGroupBuyRepository
	vendorRepo   *mockRepo.MockVendorRepository
	productRepo  *mockRepo.MockProductRepository
	publisher    *mockSvc.MockEventPublisher
	notifier     *mockUsecase.MockNotificationUsecase
	vendor       *entity.Vendor
	now          time.Time
}

func createTestGroupBuyService(t *testing.T) *groupBuyFixture {
	fx := &groupBuyFixture{
		groupBuyRepo: mockRepo.NewMockGroupBuyRepository(t),
		vendorRepo:   mockRepo.NewMockVendorRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		notifier:     mockUsecase.NewMockNotificationUsecase(t),
		vendor:       &entity.Vendor{ID: uuid.New(), OwnerID: uuid.New(), Status: entity.VendorStatusApproved},
		now:          time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
	}
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewGroupBuyRepository().Return(fx.groupBuyRepo).Maybe()

			return fn(factory)
		}).Maybe()

	fx.service = NewGroupBuyService(GroupBuyServiceParams{
		TxManager:    txManager,
		GroupBuyRepo: fx.groupBuyRepo,
		VendorRepo:   fx.vendorRepo,
		ProductRepo:  fx.productRepo,
		Publisher:    fx.publisher,
		Notifier:     fx.notifier,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*groupBuyService)
	fx.service.now = func() time.Time { return fx.now }
	fx.vendorRepo.EXPECT().FindVendorByOwner(mock.Anything, fx.vendor.OwnerID).Return(fx.vendor, nil).Maybe()

	return fx
}

func (fx *groupBuyFixture) dealInput() *usecase.GroupBuyInput {
	return &usecase.GroupBuyInput{
		Title:           "Bulk basmati rice",
		OriginalPrice:   decimal.NewFromInt(40),
		DealPrice:       decimal.NewFromInt(28),
		Currency:        "aed",
		MinParticipants: 5,
		MaxParticipants: 20,
		EndsAt:          fx.now.Add(72 * time.Hour),
	}
}

func (fx *groupBuyFixture) openDeal(current int) *entity.GroupBuyDeal {
	return &entity.GroupBuyDeal{
		ID:                  uuid.New(),
		VendorID:            fx.vendor.ID,
		Title:               "Bulk basmati rice",
		DealPrice:           decimal.NewFromInt(28),
		Currency:            "AED",
		MinParticipants:     3,
		MaxParticipants:     10,
		CurrentParticipants: current,
		Status:              entity.GroupBuyStatusOpen,
		EndsAt:              fx.now.Add(time.Hour),
	}
}

func TestGroupBuyService_CreateDeal(t *testing.T) {
	fx := createTestGroupBuyService(t)
	ctx := context.Background()

	fx.groupBuyRepo.EXPECT().CreateDeal(ctx, mock.AnythingOfType("*entity.GroupBuyDeal")).Return(nil)

	deal, err := fx.service.CreateDeal(ctx, fx.vendor.OwnerID, fx.dealInput())

	require.NoError(t, err)
	assert.Equal(t, entity.GroupBuyStatusOpen, deal.Status)
	assert.Equal(t, fx.vendor.ID, deal.VendorID)
	assert.Equal(t, "AED", deal.Currency)
	assert.Equal(t, "30", deal.DiscountPercent().String())
}

func TestGroupBuyService_CreateDeal_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.GroupBuyInput)
	}{
		{name: "deal price not lower", mutate: func(in *usecase.GroupBuyInput) { in.DealPrice = in.OriginalPrice }},
		{name: "single participant", mutate: func(in *usecase.GroupBuyInput) { in.MinParticipants = 1 }},
		{name: "max below min", mutate: func(in *usecase.GroupBuyInput) { in.MaxParticipants = 3 }},
		{name: "already ended", mutate: func(in *usecase.GroupBuyInput) { in.EndsAt = in.EndsAt.Add(-100 * time.Hour) }},
		{name: "missing title", mutate: func(in *usecase.GroupBuyInput) { in.Title = " " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestGroupBuyService(t)
			input := fx.dealInput()
			tt.mutate(input)

			_, err := fx.service.CreateDeal(context.Background(), fx.vendor.OwnerID, input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestGroupBuyService_CreateDeal_ProductOfAnotherStore(t *testing.T) {
	fx := createTestGroupBuyService(t)
	ctx := context.Background()
	productID := uuid.New()
	input := fx.dealInput()
	input.ProductID = &productID

	fx.productRepo.EXPECT().FindProductByID(ctx, productID).Return(&entity.VendorProduct{ID: productID, VendorID: uuid.New()}, nil)

	_, err := fx.service.CreateDeal(ctx, fx.vendor.OwnerID, input)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestGroupBuyService_JoinDeal(t *testing.T) {
	fx := createTestGroupBuyService(t)
	ctx := context.Background()
	deal := fx.openDeal(0)
	userID := uuid.New()

	fx.groupBuyRepo.EXPECT().FindDealByID(ctx, deal.ID).Return(deal, nil)
	fx.groupBuyRepo.EXPECT().AddParticipant(ctx, mock.MatchedBy(func(p *entity.GroupBuyParticipant) bool {
		return p.DealID == deal.ID && p.UserID == userID && p.Quantity == 2
	})).Return(nil)
	fx.groupBuyRepo.EXPECT().IncrementParticipants(ctx, deal.ID, fx.now).Return(&entity.GroupBuyDeal{
		ID:                  deal.ID,
		MinParticipants:     3,
		CurrentParticipants: 1,
		Status:              entity.GroupBuyStatusOpen,
	}, nil)

	joined, err := fx.service.JoinDeal(ctx, userID, deal.ID, 2)

	require.NoError(t, err)
	assert.Equal(t, 1, joined.CurrentParticipants)
	assert.Equal(t, entity.GroupBuyStatusOpen, joined.Status)
	fx.publisher.AssertNotCalled(t, "PublishEvent", mock.Anything, mock.Anything)
}

func TestGroupBuyService_JoinDeal_ReachingMinimumConfirms(t *testing.T) {
	fx := createTestGroupBuyService(t)
	ctx := context.Background()
	deal := fx.openDeal(2)
	participants := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	fx.groupBuyRepo.EXPECT().FindDealByID(ctx, deal.ID).Return(deal, nil)
	fx.groupBuyRepo.EXPECT().AddParticipant(ctx, mock.Anything).Return(nil)
	fx.groupBuyRepo.EXPECT().IncrementParticipants(ctx, deal.ID, fx.now).Return(&entity.GroupBuyDeal{
		ID:                  deal.ID,
		Title:               deal.Title,
		DealPrice:           deal.DealPrice,
		Currency:            deal.Currency,
		MinParticipants:     3,
		CurrentParticipants: 3,
		Status:              entity.GroupBuyStatusOpen,
	}, nil)
	fx.groupBuyRepo.EXPECT().UpdateDealStatus(ctx, deal.ID, entity.GroupBuyStatusConfirmed).Return(nil)
	fx.groupBuyRepo.EXPECT().FindParticipantIDs(ctx, deal.ID).Return(participants, nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.MatchedBy(func(event *service.MarketplaceEvent) bool {
		return event.Type == service.EventGroupBuyUpdated &&
			event.SubjectID == deal.ID.String() &&
			len(event.RecipientIDs) == 3 &&
			event.Title == "Deal unlocked" &&
			event.Data["status"] == string(entity.GroupBuyStatusConfirmed)
	})).Return(nil)

	joined, err := fx.service.JoinDeal(ctx, participants[2], deal.ID, 1)

	require.NoError(t, err)
	assert.Equal(t, entity.GroupBuyStatusConfirmed, joined.Status)
}

func TestGroupBuyService_JoinDeal_Rejections(t *testing.T) {
	t.Run("already joined", func(t *testing.T) {
		fx := createTestGroupBuyService(t)
		ctx := context.Background()
		deal := fx.openDeal(1)

		fx.groupBuyRepo.EXPECT().FindDealByID(ctx, deal.ID).Return(deal, nil)
		fx.groupBuyRepo.EXPECT().AddParticipant(ctx, mock.Anything).Return(repository.ErrAlreadyJoined)

		_, err := fx.service.JoinDeal(ctx, uuid.New(), deal.ID, 1)

		assert.ErrorIs(t, err, domainerrors.ErrAlreadyJoined)
	})

	t.Run("filled concurrently", func(t *testing.T) {
		fx := createTestGroupBuyService(t)
		ctx := context.Background()
		deal := fx.openDeal(9)

		fx.groupBuyRepo.EXPECT().FindDealByID(ctx, deal.ID).Return(deal, nil)
		fx.groupBuyRepo.EXPECT().AddParticipant(ctx, mock.Anything).Return(nil)
		fx.groupBuyRepo.EXPECT().IncrementParticipants(ctx, deal.ID, fx.now).Return(nil, repository.ErrGroupBuyFull)

		_, err := fx.service.JoinDeal(ctx, uuid.New(), deal.ID, 1)

		assert.ErrorIs(t, err, domainerrors.ErrGroupBuyFull)
		assert.NotErrorIs(t, err, domainerrors.ErrGroupBuyClosed)
	})

	t.Run("closed concurrently", func(t *testing.T) {
		fx := createTestGroupBuyService(t)
		ctx := context.Background()
		deal := fx.openDeal(2)

		fx.groupBuyRepo.EXPECT().FindDealByID(ctx, deal.ID).Return(deal, nil)
		fx.groupBuyRepo.EXPECT().AddParticipant(ctx, mock.Anything).Return(nil)
		fx.groupBuyRepo.EXPECT().IncrementParticipants(ctx, deal.ID, fx.now).Return(nil, repository.ErrGroupBuyClosed)

		_, err := fx.service.JoinDeal(ctx, uuid.New(), deal.ID, 1)

		assert.ErrorIs(t, err, domainerrors.ErrGroupBuyClosed)
		assert.NotErrorIs(t, err, domainerrors.ErrGroupBuyFull)
	})

	t.Run("deleted concurrently", func(t *testing.T) {
		fx := createTestGroupBuyService(t)
		ctx := context.Background()
		deal := fx.openDeal(2)

		fx.groupBuyRepo.EXPECT().FindDealByID(ctx, deal.ID).Return(deal, nil)
		fx.groupBuyRepo.EXPECT().AddParticipant(ctx, mock.Anything).Return(nil)
		fx.groupBuyRepo.EXPECT().IncrementParticipants(ctx, deal.ID, fx.now).Return(nil, repository.ErrGroupBuyNotFound)

		_, err := fx.service.JoinDeal(ctx, uuid.New(), deal.ID, 1)

		assert.ErrorIs(t, err, domainerrors.ErrGroupBuyNotFound)
	})

	t.Run("already full", func(t *testing.T) {
		fx := createTestGroupBuyService(t)
		ctx := context.Background()
		deal := fx.openDeal(10)

		fx.groupBuyRepo.EXPECT().FindDealByID(ctx, deal.ID).Return(deal, nil)

		_, err := fx.service.JoinDeal(ctx, uuid.New(), deal.ID, 1)

		assert.ErrorIs(t, err, domainerrors.ErrGroupBuyFull)
	})

	t.Run("past end time", func(t *testing.T) {
		fx := createTestGroupBuyService(t)
		ctx := context.Background()
		deal := fx.openDeal(1)
		deal.EndsAt = fx.now.Add(-time.Minute)

		fx.groupBuyRepo.EXPECT().FindDealByID(ctx, deal.ID).Return(deal, nil)

		_, err := fx.service.JoinDeal(ctx, uuid.New(), deal.ID, 1)

		assert.ErrorIs(t, err, domainerrors.ErrGroupBuyClosed)
	})

	t.Run("unknown deal", func(t *testing.T) {
		fx := createTestGroupBuyService(t)
		ctx := context.Background()
		id := uuid.New()

		fx.groupBuyRepo.EXPECT().FindDealByID(ctx, id).Return(nil, repository.ErrGroupBuyNotFound)

		_, err := fx.service.JoinDeal(ctx, uuid.New(), id, 1)

		assert.ErrorIs(t, err, domainerrors.ErrGroupBuyNotFound)
	})

	t.Run("zero quantity", func(t *testing.T) {
		fx := createTestGroupBuyService(t)

		_, err := fx.service.JoinDeal(context.Background(), uuid.New(), uuid.New(), 0)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestGroupBuyService_ExpireDeals(t *testing.T) {
	fx := createTestGroupBuyService(t)
	ctx := context.Background()
	expired := fx.openDeal(1)
	stuck := fx.openDeal(2)
	member := uuid.New()

	fx.groupBuyRepo.EXPECT().FindExpiredOpenDeals(ctx, fx.now, expireBatch).Return([]*entity.GroupBuyDeal{expired, stuck}, nil)
	fx.groupBuyRepo.EXPECT().UpdateDealStatus(ctx, expired.ID, entity.GroupBuyStatusExpired).Return(nil)
	fx.groupBuyRepo.EXPECT().UpdateDealStatus(ctx, stuck.ID, entity.GroupBuyStatusExpired).Return(errors.New("deadlock"))
	fx.groupBuyRepo.EXPECT().FindParticipantIDs(ctx, expired.ID).Return([]uuid.UUID{member}, nil)
	fx.publisher.EXPECT().PublishEvent(ctx, mock.Anything).Return(errors.New("topic unavailable"))
	fx.notifier.EXPECT().EnqueueNotification(ctx, mock.MatchedBy(func(req *usecase.NotificationRequest) bool {
		return req.UserID == member && req.Type == entity.NotificationTypeGroupBuy && req.Title == "Deal expired"
	})).Return(&entity.NotificationQueueItem{}, nil)

	count, err := fx.service.ExpireDeals(ctx, fx.now)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, entity.GroupBuyStatusExpired, expired.Status)
	assert.Equal(t, entity.GroupBuyStatusOpen, stuck.Status)
}

func TestGroupBuyService_ListDeals(t *testing.T) {
	fx := createTestGroupBuyService(t)
	ctx := context.Background()

	fx.groupBuyRepo.EXPECT().ListDeals(ctx, entity.GroupBuyStatusOpen, 20, 0).Return([]*entity.GroupBuyDeal{}, nil)

	_, err := fx.service.ListDeals(ctx, entity.GroupBuyStatusOpen, 0, 0)
	require.NoError(t, err)

	_, err = fx.service.ListDeals(ctx, "HALF_PRICE", 0, 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
