package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"expatmart/config"
	"expatmart/internal/domain/currency"
	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

const (
	// nearbyCandidateLimit caps the rows read from the bounding box before
	// distances are computed and the page is cut.
	nearbyCandidateLimit = 500

	defaultPopularLimit = 10
	maxPopularLimit     = 50
	maxListingImages    = 10
)

type listingService struct {
	listingRepo     repository.ListingRepository
	searchQueryRepo repository.SearchQueryRepository
	defaultRadiusKm float64
	maxRadiusKm     float64
	logger          *slog.Logger
	now             func() time.Time
}

// NewListingService creates the listing service.
func NewListingService(
	listingRepo repository.ListingRepository,
	searchQueryRepo repository.SearchQueryRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ListingUsecase {
	return &listingService{
		listingRepo:     listingRepo,
		searchQueryRepo: searchQueryRepo,
		defaultRadiusKm: cfg.Listings.DefaultRadiusKm,
		maxRadiusKm:     cfg.Listings.MaxRadiusKm,
		logger:          logger,
		now:             time.Now,
	}
}

func (s *listingService) CreateListing(ctx context.Context, sellerID uuid.UUID, input *usecase.ListingInput) (*entity.Listing, error) {
	if err := validateListingInput(input); err != nil {
		return nil, err
	}

	now := s.now()
	listing := &entity.Listing{
		ID:        uuid.New(),
		SellerID:  sellerID,
		Status:    entity.ListingStatusDraft,
		CreatedAt: now,
	}
	applyListingInput(listing, input)
	listing.UpdatedAt = now
	if input.Publish {
		listing.Status = entity.ListingStatusActive
	}

	if err := s.listingRepo.CreateListing(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to create listing")
	}

	s.logger.Info("Listing created",
		slog.String("listing_id", listing.ID.String()),
		slog.String("seller_id", sellerID.String()),
		slog.String("status", string(listing.Status)),
	)

	return listing, nil
}

func (s *listingService) UpdateListing(ctx context.Context, sellerID, listingID uuid.UUID, input *usecase.ListingInput) (*entity.Listing, error) {
	if err := validateListingInput(input); err != nil {
		return nil, err
	}

	listing, err := s.findListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.SellerID != sellerID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the seller can edit this listing")
	}
	if listing.Status == entity.ListingStatusReserved || listing.Status == entity.ListingStatusSold {
		return nil, errors.Wrapf(domainerrors.ErrListingUnavailable, "listing is %s", listing.Status)
	}

	applyListingInput(listing, input)
	if input.Publish && listing.Status == entity.ListingStatusDraft {
		listing.Status = entity.ListingStatusActive
	}
	listing.UpdatedAt = s.now()

	if err := s.listingRepo.UpdateListing(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to update listing")
	}

	return listing, nil
}

func (s *listingService) DeleteListing(ctx context.Context, actor usecase.Actor, listingID uuid.UUID) error {
	listing, err := s.findListing(ctx, listingID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && listing.SellerID != actor.ID {
		return errors.Wrap(domainerrors.ErrForbidden, "only the seller can delete this listing")
	}
	if listing.Status == entity.ListingStatusReserved {
		return errors.Wrap(domainerrors.ErrListingUnavailable, "listing is reserved by an open order")
	}

	if err := s.listingRepo.DeleteListing(ctx, listingID); err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return errors.Wrap(domainerrors.ErrListingNotFound, "listing not found")
		}

		return errors.Wrap(err, "failed to delete listing")
	}

	s.logger.Info("Listing deleted", slog.String("listing_id", listingID.String()), slog.String("actor_id", actor.ID.String()))

	return nil
}

// GetListing also counts the view; a failed count is only logged.
func (s *listingService) GetListing(ctx context.Context, listingID uuid.UUID) (*entity.Listing, error) {
	listing, err := s.findListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if err := s.listingRepo.IncrementViewCount(ctx, listingID); err != nil {
		s.logger.Warn("Failed to count listing view", slog.String("listing_id", listingID.String()), slog.Any("error", err))
	} else {
		listing.ViewCount++
	}

	return listing, nil
}

// SearchListings runs a filtered search. With a center point, listings are
// prefiltered by a bounding box, measured with the haversine formula and
// returned nearest first.
func (s *listingService) SearchListings(ctx context.Context, userID *uuid.UUID, filter *entity.ListingFilter) ([]*entity.ListingWithDistance, error) {
	f := entity.ListingFilter{}
	if filter != nil {
		f = *filter
	}
	f.Query = strings.TrimSpace(f.Query)
	f.Category = strings.TrimSpace(f.Category)
	if f.Status == "" {
		f.Status = entity.ListingStatusActive
	}
	if f.Currency != "" {
		f.Currency = currency.Normalize(f.Currency)
		if !currency.IsSupported(f.Currency) {
			return nil, errors.Wrapf(domainerrors.ErrUnsupportedCurrency, "currency %q", f.Currency)
		}
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "min price is above max price")
	}
	if (f.Latitude == nil) != (f.Longitude == nil) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "latitude and longitude must be given together")
	}
	f.Limit, f.Offset = normalizePage(f.Limit, f.Offset)

	var (
		results []*entity.ListingWithDistance
		err     error
	)
	if f.Latitude != nil {
		results, err = s.searchNearby(ctx, &f)
	} else {
		results, err = s.searchPlain(ctx, &f)
	}
	if err != nil {
		return nil, err
	}

	s.recordSearch(ctx, userID, &f, len(results))

	return results, nil
}

func (s *listingService) PopularSearches(ctx context.Context, since time.Time, limit int) ([]*entity.PopularSearch, error) {
	if limit <= 0 {
		limit = defaultPopularLimit
	}
	if limit > maxPopularLimit {
		limit = maxPopularLimit
	}

	popular, err := s.searchQueryRepo.PopularSearches(ctx, since, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load popular searches")
	}

	return popular, nil
}

func (s *listingService) searchPlain(ctx context.Context, f *entity.ListingFilter) ([]*entity.ListingWithDistance, error) {
	listings, err := s.listingRepo.SearchListings(ctx, f, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search listings")
	}

	results := make([]*entity.ListingWithDistance, 0, len(listings))
	for _, listing := range listings {
		results = append(results, &entity.ListingWithDistance{Listing: listing})
	}

	return results, nil
}

func (s *listingService) searchNearby(ctx context.Context, f *entity.ListingFilter) ([]*entity.ListingWithDistance, error) {
	lat, lon := *f.Latitude, *f.Longitude
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "coordinates out of range")
	}
	if f.RadiusKm <= 0 {
		f.RadiusKm = s.defaultRadiusKm
	}
	if f.RadiusKm > s.maxRadiusKm {
		f.RadiusKm = s.maxRadiusKm
	}

	center := orb.Point{lon, lat}
	radiusM := f.RadiusKm * 1000
	bound := geo.NewBoundAroundPoint(center, radiusM)
	box := &repository.BoundingBox{
		MinLat: bound.Min.Lat(),
		MinLon: bound.Min.Lon(),
		MaxLat: bound.Max.Lat(),
		MaxLon: bound.Max.Lon(),
	}

	candidates := *f
	candidates.Limit = nearbyCandidateLimit
	candidates.Offset = 0

	listings, err := s.listingRepo.SearchListings(ctx, &candidates, box)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search nearby listings")
	}

	hits := make([]*entity.ListingWithDistance, 0, len(listings))
	for _, listing := range listings {
		if !listing.HasLocation() {
			continue
		}
		distanceM := geo.DistanceHaversine(center, orb.Point{*listing.Longitude, *listing.Latitude})
		if distanceM > radiusM {
			continue
		}
		distanceKm := distanceM / 1000
		hits = append(hits, &entity.ListingWithDistance{Listing: listing, DistanceKm: &distanceKm})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return *hits[i].DistanceKm < *hits[j].DistanceKm
	})

	if f.Offset >= len(hits) {
		return []*entity.ListingWithDistance{}, nil
	}
	end := f.Offset + f.Limit
	if end > len(hits) {
		end = len(hits)
	}

	return hits[f.Offset:end], nil
}

// recordSearch stores the query for analytics. Failures are logged.
func (s *listingService) recordSearch(ctx context.Context, userID *uuid.UUID, f *entity.ListingFilter, resultCount int) {
	filters := map[string]any{"status": string(f.Status)}
	if f.Category != "" {
		filters["category"] = f.Category
	}
	if f.Currency != "" {
		filters["currency"] = f.Currency
	}
	if f.MinPrice != nil {
		filters["min_price"] = f.MinPrice.String()
	}
	if f.MaxPrice != nil {
		filters["max_price"] = f.MaxPrice.String()
	}
	if f.Latitude != nil {
		filters["latitude"] = *f.Latitude
		filters["longitude"] = *f.Longitude
		filters["radius_km"] = f.RadiusKm
	}

	query := &entity.SearchQuery{
		ID:          uuid.New(),
		UserID:      userID,
		Query:       strings.ToLower(f.Query),
		Filters:     filters,
		ResultCount: resultCount,
		CreatedAt:   s.now(),
	}
	if err := s.searchQueryRepo.CreateSearchQuery(ctx, query); err != nil {
		s.logger.Warn("Failed to record search query", slog.Any("error", err))
	}
}

func (s *listingService) findListing(ctx context.Context, listingID uuid.UUID) (*entity.Listing, error) {
	listing, err := s.listingRepo.FindListingByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrListingNotFound, "listing not found")
		}

		return nil, errors.Wrap(err, "failed to load listing")
	}

	return listing, nil
}

func validateListingInput(input *usecase.ListingInput) error {
	if input == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "listing input is required")
	}
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Category) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "title and category are required")
	}
	if !input.Price.IsPositive() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "price must be positive")
	}
	if !currency.IsSupported(input.Currency) {
		return errors.Wrapf(domainerrors.ErrUnsupportedCurrency, "currency %q", input.Currency)
	}
	switch input.Condition {
	case entity.ConditionNew, entity.ConditionLikeNew, entity.ConditionGood, entity.ConditionFair:
	default:
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown condition %q", input.Condition)
	}
	if len(input.Images) > maxListingImages {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "at most %d images", maxListingImages)
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return errors.Wrap(domainerrors.ErrValidationFailed, "latitude and longitude must be given together")
	}
	if input.Latitude != nil && (*input.Latitude < -90 || *input.Latitude > 90 || *input.Longitude < -180 || *input.Longitude > 180) {
		return errors.Wrap(domainerrors.ErrValidationFailed, "coordinates out of range")
	}

	return nil
}

func applyListingInput(listing *entity.Listing, input *usecase.ListingInput) {
	listing.Title = strings.TrimSpace(input.Title)
	listing.Description = strings.TrimSpace(input.Description)
	listing.Category = strings.TrimSpace(input.Category)
	listing.Price = input.Price
	listing.Currency = currency.Normalize(input.Currency)
	listing.Condition = input.Condition
	listing.Images = input.Images
	listing.City = strings.TrimSpace(input.City)
	listing.Country = strings.ToUpper(strings.TrimSpace(input.Country))
	listing.Latitude = input.Latitude
	listing.Longitude = input.Longitude
}
