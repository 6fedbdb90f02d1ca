package handler

import (
	"context"
	"net/http"

	"expatmart/internal/delivery/api/middleware"
	"expatmart/internal/delivery/api/response"
	"expatmart/internal/domain/entity"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// EscrowHandler serves escrow lookups and the release, refund and dispute actions.
type EscrowHandler struct {
	escrowUC usecase.EscrowUsecase
}

func NewEscrowHandler(escrowUC usecase.EscrowUsecase) *EscrowHandler {
	return &EscrowHandler{escrowUC: escrowUC}
}

// ReleaseEscrowRequest carries the buyer's release code; admins may omit it.
type ReleaseEscrowRequest struct {
	ReleaseCode string `json:"release_code" validate:"omitempty,alphanum,max=32"`
}

// EscrowReasonRequest is used by refund and dispute.
type EscrowReasonRequest struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

func (h *EscrowHandler) GetEscrow(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	escrowID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid escrow ID")
	}

	account, err := h.escrowUC.GetEscrowAccount(c.Request().Context(), actor, escrowID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account)
}

func (h *EscrowHandler) GetEscrowByOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	account, err := h.escrowUC.GetEscrowByOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account)
}

func (h *EscrowHandler) ReleaseEscrow(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	escrowID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid escrow ID")
	}

	var req ReleaseEscrowRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid release input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	account, err := h.escrowUC.ReleaseEscrowFunds(c.Request().Context(), escrowID, actor, req.ReleaseCode)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account)
}

func (h *EscrowHandler) RefundEscrow(c echo.Context) error {
	return h.withReason(c, h.escrowUC.RefundEscrow)
}

func (h *EscrowHandler) DisputeEscrow(c echo.Context) error {
	return h.withReason(c, h.escrowUC.DisputeEscrow)
}

type escrowReasonAction func(ctx context.Context, escrowID uuid.UUID, actor usecase.Actor, reason string) (*entity.EscrowAccount, error)

func (h *EscrowHandler) withReason(c echo.Context, action escrowReasonAction) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	escrowID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid escrow ID")
	}

	var req EscrowReasonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid escrow input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	account, err := action(c.Request().Context(), escrowID, actor, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account)
}
