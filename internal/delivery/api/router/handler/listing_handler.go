package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"expatmart/internal/delivery/api/middleware"
	"expatmart/internal/delivery/api/response"
	"expatmart/internal/domain/entity"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	defaultPopularWindow = 7 * 24 * time.Hour
	defaultPopularLimit  = 10
)

// ListingHandler serves second-hand listings.
type ListingHandler struct {
	listingUC usecase.ListingUsecase
}

func NewListingHandler(listingUC usecase.ListingUsecase) *ListingHandler {
	return &ListingHandler{listingUC: listingUC}
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.ListingInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	listing, err := h.listingUC.CreateListing(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, listing)
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listingID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	var req usecase.ListingInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	listing, err := h.listingUC.UpdateListing(c.Request().Context(), userID, listingID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing)
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listingID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	if err := h.listingUC.DeleteListing(c.Request().Context(), actor, listingID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	listingID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	listing, err := h.listingUC.GetListing(c.Request().Context(), listingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing)
}

// SearchListings accepts q, category, currency, seller_id, status, min_price,
// max_price, lat, lng, radius_km, limit and offset.
func (h *ListingHandler) SearchListings(c echo.Context) error {
	filter, err := listingFilterFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	listings, err := h.listingUC.SearchListings(c.Request().Context(), userID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, listings, filter.Limit, filter.Offset)
}

func (h *ListingHandler) PopularSearches(c echo.Context) error {
	window := defaultPopularWindow
	limit := defaultPopularLimit
	days := 0
	if err := echo.QueryParamsBinder(c).Int("days", &days).Int("limit", &limit).BindError(); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "days and limit must be integers")
	}
	if days > 0 {
		window = time.Duration(days) * 24 * time.Hour
	}
	limit = min(max(limit, 1), maxPageSize)

	searches, err := h.listingUC.PopularSearches(c.Request().Context(), time.Now().Add(-window), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, searches)
}

func listingFilterFromQuery(c echo.Context) (*entity.ListingFilter, error) {
	limit, offset, err := pageParams(c)
	if err != nil {
		return nil, errors.New("limit and offset must be integers")
	}

	filter := &entity.ListingFilter{
		Query:    strings.TrimSpace(c.QueryParam("q")),
		Category: c.QueryParam("category"),
		Currency: strings.ToUpper(c.QueryParam("currency")),
		Status:   entity.ListingStatus(strings.ToUpper(c.QueryParam("status"))),
		Limit:    limit,
		Offset:   offset,
	}

	if raw := c.QueryParam("seller_id"); raw != "" {
		sellerID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("seller_id must be a UUID")
		}
		filter.SellerID = &sellerID
	}

	if filter.MinPrice, err = optionalDecimal(c, "min_price"); err != nil {
		return nil, err
	}
	if filter.MaxPrice, err = optionalDecimal(c, "max_price"); err != nil {
		return nil, err
	}
	if filter.Latitude, err = optionalFloat(c, "lat"); err != nil {
		return nil, err
	}
	if filter.Longitude, err = optionalFloat(c, "lng"); err != nil {
		return nil, err
	}
	if (filter.Latitude == nil) != (filter.Longitude == nil) {
		return nil, errors.New("lat and lng must be given together")
	}

	radius, err := optionalFloat(c, "radius_km")
	if err != nil {
		return nil, err
	}
	if radius != nil {
		filter.RadiusKm = *radius
	}

	return filter, nil
}

func optionalDecimal(c echo.Context, name string) (*decimal.Decimal, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, errors.Errorf("%s must be a number", name)
	}

	return &d, nil
}

func optionalFloat(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.Errorf("%s must be a number", name)
	}

	return &f, nil
}
