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
	mockRepo "expatmart/internal/mocks/repository"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestListingService(t *testing.T) (*listingService, *mockRepo.MockListingRepository, *mockRepo.MockSearchQueryRepository) {
	listingRepo := mockRepo.NewMockListingRepository(t)
	searchRepo := mockRepo.NewMockSearchQueryRepository(t)
	cfg := &config.Config{Listings: &config.ListingsConfig{DefaultRadiusKm: 10, MaxRadiusKm: 50}}

	svc := NewListingService(listingRepo, searchRepo, cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*listingService)
	fixed := time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	return svc, listingRepo, searchRepo
}

func validListingInput() *usecase.ListingInput {
	return &usecase.ListingInput{
		Title:     "  Bosch washing machine ",
		Category:  "appliances",
		Price:     decimal.RequireFromString("150"),
		Currency:  "eur",
		Condition: entity.ConditionGood,
		City:      "Lisbon",
		Country:   "pt",
	}
}

func ptr[T any](v T) *T {
	return &v
}

// located places a listing at the given coordinates.
func located(lat, lon float64) *entity.Listing {
	return &entity.Listing{ID: uuid.New(), Status: entity.ListingStatusActive, Latitude: ptr(lat), Longitude: ptr(lon)}
}

func TestListingService_CreateListing(t *testing.T) {
	svc, listingRepo, _ := createTestListingService(t)
	ctx := context.Background()
	sellerID := uuid.New()

	listingRepo.EXPECT().CreateListing(ctx, mock.AnythingOfType("*entity.Listing")).Return(nil).Twice()

	draft, err := svc.CreateListing(ctx, sellerID, validListingInput())
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusDraft, draft.Status)
	assert.Equal(t, "Bosch washing machine", draft.Title)
	assert.Equal(t, "EUR", draft.Currency)
	assert.Equal(t, "PT", draft.Country)
	assert.Equal(t, sellerID, draft.SellerID)

	input := validListingInput()
	input.Publish = true
	active, err := svc.CreateListing(ctx, sellerID, input)
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusActive, active.Status)
}

func TestListingService_CreateListing_Validation(t *testing.T) {
	svc, _, _ := createTestListingService(t)

	tests := []struct {
		name    string
		mutate  func(in *usecase.ListingInput)
		wantErr error
	}{
		{"missing title", func(in *usecase.ListingInput) { in.Title = " " }, domainerrors.ErrValidationFailed},
		{"zero price", func(in *usecase.ListingInput) { in.Price = decimal.Zero }, domainerrors.ErrValidationFailed},
		{"unknown currency", func(in *usecase.ListingInput) { in.Currency = "BTC" }, domainerrors.ErrUnsupportedCurrency},
		{"unknown condition", func(in *usecase.ListingInput) { in.Condition = "BROKEN" }, domainerrors.ErrValidationFailed},
		{"latitude only", func(in *usecase.ListingInput) { in.Latitude = ptr(38.7) }, domainerrors.ErrValidationFailed},
		{"latitude out of range", func(in *usecase.ListingInput) { in.Latitude, in.Longitude = ptr(91.0), ptr(0.0) }, domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validListingInput()
			tt.mutate(input)

			_, err := svc.CreateListing(context.Background(), uuid.New(), input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListingService_UpdateListing(t *testing.T) {
	svc, listingRepo, _ := createTestListingService(t)
	ctx := context.Background()
	sellerID := uuid.New()
	listing := &entity.Listing{ID: uuid.New(), SellerID: sellerID, Status: entity.ListingStatusDraft}

	listingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil).Twice()
	listingRepo.EXPECT().UpdateListing(ctx, listing).Return(nil)

	input := validListingInput()
	input.Publish = true
	updated, err := svc.UpdateListing(ctx, sellerID, listing.ID, input)
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusActive, updated.Status)
	assert.Equal(t, "appliances", updated.Category)

	_, err = svc.UpdateListing(ctx, uuid.New(), listing.ID, validListingInput())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestListingService_UpdateListing_ReservedIsLocked(t *testing.T) {
	svc, listingRepo, _ := createTestListingService(t)
	ctx := context.Background()
	sellerID := uuid.New()
	listing := &entity.Listing{ID: uuid.New(), SellerID: sellerID, Status: entity.ListingStatusReserved}

	listingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)

	_, err := svc.UpdateListing(ctx, sellerID, listing.ID, validListingInput())

	assert.ErrorIs(t, err, domainerrors.ErrListingUnavailable)
}

func TestListingService_DeleteListing(t *testing.T) {
	svc, listingRepo, _ := createTestListingService(t)
	ctx := context.Background()
	listing := &entity.Listing{ID: uuid.New(), SellerID: uuid.New(), Status: entity.ListingStatusActive}
	admin := usecase.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}

	listingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil).Twice()
	listingRepo.EXPECT().DeleteListing(ctx, listing.ID).Return(nil)

	err := svc.DeleteListing(ctx, usecase.Actor{ID: uuid.New()}, listing.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	require.NoError(t, svc.DeleteListing(ctx, admin, listing.ID))
}

func TestListingService_GetListing_CountsView(t *testing.T) {
	svc, listingRepo, _ := createTestListingService(t)
	ctx := context.Background()
	listing := &entity.Listing{ID: uuid.New(), ViewCount: 4}
	missing := uuid.New()

	listingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)
	listingRepo.EXPECT().IncrementViewCount(ctx, listing.ID).Return(nil)
	listingRepo.EXPECT().FindListingByID(ctx, missing).Return(nil, repository.ErrListingNotFound)

	got, err := svc.GetListing(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.ViewCount)

	_, err = svc.GetListing(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestListingService_SearchListings_Plain(t *testing.T) {
	svc, listingRepo, searchRepo := createTestListingService(t)
	ctx := context.Background()
	userID := uuid.New()
	minPrice := decimal.NewFromInt(10)

	listingRepo.EXPECT().SearchListings(ctx, mock.MatchedBy(func(f *entity.ListingFilter) bool {
		return f.Query == "Sofa" && f.Status == entity.ListingStatusActive && f.Currency == "EUR" && f.Limit == 20
	}), (*repository.BoundingBox)(nil)).Return([]*entity.Listing{{ID: uuid.New()}, {ID: uuid.New()}}, nil)
	searchRepo.EXPECT().CreateSearchQuery(ctx, mock.MatchedBy(func(q *entity.SearchQuery) bool {
		return q.Query == "sofa" && q.ResultCount == 2 && *q.UserID == userID && q.Filters["min_price"] == "10"
	})).Return(nil)

	results, err := svc.SearchListings(ctx, &userID, &entity.ListingFilter{Query: " Sofa ", Currency: "eur", MinPrice: &minPrice})

	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Nil(t, results[0].DistanceKm)
}

func TestListingService_SearchListings_NearbyOrdersByDistance(t *testing.T) {
	svc, listingRepo, searchRepo := createTestListingService(t)
	ctx := context.Background()

	// Center: Dubai Marina. Roughly 2 km, 6 km and 40 km away.
	near := located(25.0900, 55.1400)
	mid := located(25.1200, 55.1800)
	far := located(25.2700, 55.4500)
	unlocated := &entity.Listing{ID: uuid.New(), Status: entity.ListingStatusActive}

	listingRepo.EXPECT().SearchListings(ctx, mock.MatchedBy(func(f *entity.ListingFilter) bool {
		return f.Limit == nearbyCandidateLimit && f.Offset == 0
	}), mock.MatchedBy(func(box *repository.BoundingBox) bool {
		return box != nil && box.MinLat < 25.08 && box.MaxLat > 25.08 && box.MinLon < 55.14 && box.MaxLon > 55.14
	})).Return([]*entity.Listing{far, mid, unlocated, near}, nil)
	searchRepo.EXPECT().CreateSearchQuery(ctx, mock.Anything).Return(nil)

	results, err := svc.SearchListings(ctx, nil, &entity.ListingFilter{Latitude: ptr(25.0800), Longitude: ptr(55.1400)})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, near.ID, results[0].ID)
	assert.Equal(t, mid.ID, results[1].ID)
	assert.InDelta(t, 1.11, *results[0].DistanceKm, 0.05)
	assert.Less(t, *results[1].DistanceKm, 10.0)
}

func TestListingService_SearchListings_NearbyPaginates(t *testing.T) {
	svc, listingRepo, searchRepo := createTestListingService(t)
	ctx := context.Background()
	a, b, c := located(0, 0.001), located(0, 0.002), located(0, 0.003)

	listingRepo.EXPECT().SearchListings(ctx, mock.Anything, mock.Anything).Return([]*entity.Listing{c, a, b}, nil)
	searchRepo.EXPECT().CreateSearchQuery(ctx, mock.Anything).Return(errors.New("insert failed"))

	results, err := svc.SearchListings(ctx, nil, &entity.ListingFilter{
		Latitude: ptr(0.0), Longitude: ptr(0.0), RadiusKm: 500, Limit: 1, Offset: 1,
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, b.ID, results[0].ID)
}

func TestListingService_SearchListings_Validation(t *testing.T) {
	svc, _, _ := createTestListingService(t)
	ctx := context.Background()
	low, high := decimal.NewFromInt(5), decimal.NewFromInt(50)

	_, err := svc.SearchListings(ctx, nil, &entity.ListingFilter{MinPrice: &high, MaxPrice: &low})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.SearchListings(ctx, nil, &entity.ListingFilter{Latitude: ptr(1.0)})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.SearchListings(ctx, nil, &entity.ListingFilter{Currency: "XXX"})
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedCurrency)
}

func TestListingService_PopularSearches(t *testing.T) {
	svc, _, searchRepo := createTestListingService(t)
	ctx := context.Background()
	since := time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC)

	searchRepo.EXPECT().PopularSearches(ctx, since, maxPopularLimit).Return([]*entity.PopularSearch{{Query: "bike", Count: 12}}, nil)

	popular, err := svc.PopularSearches(ctx, since, 500)

	require.NoError(t, err)
	assert.Equal(t, "bike", popular[0].Query)
}
