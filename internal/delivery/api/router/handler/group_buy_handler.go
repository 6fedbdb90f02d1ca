package handler

import (
	"net/http"
	"strings"

	"expatmart/internal/delivery/api/middleware"
	"expatmart/internal/delivery/api/response"
	"expatmart/internal/domain/entity"
	"expatmart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// GroupBuyHandler serves group buy deals.
type GroupBuyHandler struct {
	groupBuyUC usecase.GroupBuyUsecase
}

func NewGroupBuyHandler(groupBuyUC usecase.GroupBuyUsecase) *GroupBuyHandler {
	return &GroupBuyHandler{groupBuyUC: groupBuyUC}
}

// JoinDealRequest reserves units in a deal.
type JoinDealRequest struct {
	Quantity int `json:"quantity" validate:"omitempty,min=1,max=100"`
}

func (h *GroupBuyHandler) CreateDeal(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.GroupBuyInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deal input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	deal, err := h.groupBuyUC.CreateDeal(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, deal)
}

func (h *GroupBuyHandler) GetDeal(c echo.Context) error {
	dealID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid deal ID")
	}

	deal, err := h.groupBuyUC.GetDeal(c.Request().Context(), dealID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, deal)
}

// ListDeals defaults to OPEN deals.
func (h *GroupBuyHandler) ListDeals(c echo.Context) error {
	limit, offset, err := pageParams(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "limit and offset must be integers")
	}

	status := entity.GroupBuyStatusOpen
	if raw := c.QueryParam("status"); raw != "" {
		status = entity.GroupBuyStatus(strings.ToUpper(raw))
	}

	deals, err := h.groupBuyUC.ListDeals(c.Request().Context(), status, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, deals, limit, offset)
}

func (h *GroupBuyHandler) JoinDeal(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	dealID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid deal ID")
	}

	var req JoinDealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid join input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	deal, err := h.groupBuyUC.JoinDeal(c.Request().Context(), userID, dealID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, deal)
}
