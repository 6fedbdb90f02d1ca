package handler

import (
	"net/http"

	"expatmart/internal/delivery/api/middleware"
	"expatmart/internal/delivery/api/response"
	"expatmart/internal/domain/entity"
	"expatmart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// BookingHandler serves bookable services and their bookings.
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
}

func NewBookingHandler(bookingUC usecase.BookingUsecase) *BookingHandler {
	return &BookingHandler{bookingUC: bookingUC}
}

// UpdateBookingStatusRequest confirms, completes or cancels a booking.
type UpdateBookingStatusRequest struct {
	Status entity.BookingStatus `json:"status" validate:"required,oneof=CONFIRMED COMPLETED CANCELLED"`
	Reason string               `json:"reason" validate:"max=500"`
}

func (h *BookingHandler) CreateService(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.ServiceInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	svc, err := h.bookingUC.CreateService(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, svc)
}

func (h *BookingHandler) GetService(c echo.Context) error {
	serviceID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid service ID")
	}

	svc, err := h.bookingUC.GetService(c.Request().Context(), serviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, svc)
}

// ListServices accepts ?category= and ?city=.
func (h *BookingHandler) ListServices(c echo.Context) error {
	limit, offset, err := pageParams(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "limit and offset must be integers")
	}

	services, err := h.bookingUC.ListServices(c.Request().Context(), c.QueryParam("category"), c.QueryParam("city"), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, services, limit, offset)
}

func (h *BookingHandler) BookService(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	serviceID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid service ID")
	}

	var req usecase.BookingInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	booking, err := h.bookingUC.BookService(c.Request().Context(), userID, serviceID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, booking)
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, offset, err := pageParams(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "limit and offset must be integers")
	}

	bookings, err := h.bookingUC.ListBookings(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, bookings, limit, offset)
}

func (h *BookingHandler) UpdateBookingStatus(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookingID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	var req UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	booking, err := h.bookingUC.UpdateBookingStatus(c.Request().Context(), actor, bookingID, req.Status, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, booking)
}
