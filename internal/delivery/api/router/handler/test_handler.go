package handler

import (
	"net/http"

	"expatmart/internal/delivery/api/middleware"
	"expatmart/internal/delivery/api/response"
	"expatmart/internal/domain/entity"
	"expatmart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware and channel validation
type TestHandler struct {
	notificationUC usecase.NotificationUsecase
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(notificationUC usecase.NotificationUsecase) *TestHandler {
	return &TestHandler{notificationUC: notificationUC}
}

// TestAuthMiddleware tests the authentication middleware
// This endpoint requires a valid JWT token in the Authorization header
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	roles, ok := middleware.GetRoles(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User roles not found in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Authentication middleware test successful",
		"userID":  userID,
		"email":   middleware.GetEmail(c),
		"roles":   roles,
		"status":  "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}

// TestNotificationRequest selects the channels to exercise; empty means all.
type TestNotificationRequest struct {
	Channels []entity.Channel `json:"channels" validate:"dive,oneof=EMAIL SMS PUSH IN_APP"`
}

// TestNotification sends a notification to the caller over the requested channels
// and reports every channel outcome.
func (h *TestHandler) TestNotification(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	var req TestNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid test notification input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.notificationUC.SendMultiChannelNotification(c.Request().Context(), &usecase.NotificationRequest{
		UserID:   userID,
		Type:     entity.NotificationTypeSystem,
		Title:    "Test notification",
		Message:  "If you can read this, notifications reach you on this channel.",
		Channels: req.Channels,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
