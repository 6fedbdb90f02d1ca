package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"expatmart/internal/delivery/api/middleware"
	"expatmart/internal/delivery/api/response"
	deliverycontext "expatmart/internal/delivery/context"
	"expatmart/internal/domain/entity"
	"expatmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Providers sign webhooks with one of these headers.
var signatureHeaders = []string{"X-Signature", "X-Checkout-Signature", "Webhook-Signature"}

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves payment creation, verification and provider webhooks.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// VerifyPaymentRequest confirms or rejects an offline payment.
type VerifyPaymentRequest struct {
	Approved bool   `json:"approved"`
	Note     string `json:"note" validate:"max=500"`
}

// RefundPaymentRequest carries the refund reason.
type RefundPaymentRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.CreatePaymentInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	req.Provider = entity.PaymentProvider(strings.ToUpper(string(req.Provider)))
	req.Currency = strings.ToUpper(req.Currency)
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.paymentUC.CreatePayment(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

func (h *PaymentHandler) GetPayment(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	txID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid payment ID")
	}

	tx, err := h.paymentUC.GetPayment(c.Request().Context(), actor, txID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tx)
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, offset, err := pageParams(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "limit and offset must be integers")
	}

	txs, err := h.paymentUC.ListPayments(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, txs, limit, offset)
}

func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	txID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid payment ID")
	}

	var req VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	tx, err := h.paymentUC.VerifyPayment(c.Request().Context(), actor, txID, req.Approved, req.Note)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tx)
}

func (h *PaymentHandler) RefundPayment(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	txID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid payment ID")
	}

	var req RefundPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refund input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	tx, err := h.paymentUC.RefundPayment(c.Request().Context(), actor, txID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tx)
}

// Webhook receives provider callbacks. The raw body is passed through
// untouched because the signature covers the exact bytes.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	provider := entity.PaymentProvider(strings.ToUpper(c.Param("provider")))

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unable to read webhook body")
	}
	if len(payload) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "Webhook body is empty")
	}

	var signature string
	for _, header := range signatureHeaders {
		if signature = c.Request().Header.Get(header); signature != "" {
			break
		}
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	outcome, err := h.paymentUC.ProcessPaymentWebhook(ctx, provider, payload, signature)
	if err != nil {
		logger.Warn("Payment webhook rejected",
			slog.String("provider", string(provider)),
			slog.Any("error", err),
		)

		return response.HandleAppError(c, err)
	}

	logger.Info("Payment webhook processed",
		slog.String("provider", string(provider)),
		slog.String("event_id", outcome.EventID),
		slog.Bool("duplicate", outcome.Duplicate),
	)

	return response.Success(c, http.StatusOK, outcome)
}
