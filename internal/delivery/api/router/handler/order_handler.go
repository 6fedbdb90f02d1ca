package handler

import (
	"net/http"
	"strings"

	"expatmart/internal/delivery/api/middleware"
	"expatmart/internal/delivery/api/response"
	"expatmart/internal/domain/entity"
	"expatmart/internal/domain/repository"
	"expatmart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OrderHandler serves order placement and fulfilment.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

func NewOrderHandler(orderUC usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

// UpdateOrderStatusRequest moves an order along its state machine.
type UpdateOrderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required,oneof=PAID FULFILLING DELIVERED CANCELLED"`
	Reason string             `json:"reason" validate:"max=500"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.CreateOrderInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}
	if (req.ListingID == nil) == (len(req.Items) == 0) {
		return response.BadRequest(c, "VALIDATION_FAILED", "Provide either listing_id or items")
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ListOrders accepts ?role=buyer|seller; both sides are listed by default.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, offset, err := pageParams(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "limit and offset must be integers")
	}

	role := repository.OrderRole(strings.ToLower(c.QueryParam("role")))
	switch role {
	case repository.OrderRoleAny, repository.OrderRoleBuyer, repository.OrderRoleSeller:
	default:
		return response.BadRequest(c, "INVALID_QUERY", "role must be buyer or seller")
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), userID, role, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, orders, limit, offset)
}

func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), actor, orderID, req.Status, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
