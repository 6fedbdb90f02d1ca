package handler

import (
	"log/slog"
	"net/http"

	"expatmart/internal/delivery/api/middleware"
	"expatmart/internal/delivery/api/response"
	"expatmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	InboxUC        usecase.InboxUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the in-app inbox, preferences and the admin
// dispatch endpoints.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	inboxUC        usecase.InboxUsecase
	logger         *slog.Logger
}

func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		inboxUC:        params.InboxUC,
		logger:         params.Logger,
	}
}

// SendNotificationRequest dispatches immediately unless Queue is set.
type SendNotificationRequest struct {
	usecase.NotificationRequest
	Queue bool `json:"queue"`
}

// SendTemplatedRequest dispatches a stored template.
type SendTemplatedRequest struct {
	usecase.TemplatedNotificationRequest
	Queue bool `json:"queue"`
}

// ListNotifications accepts ?unread=true.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, offset, err := pageParams(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "limit and offset must be integers")
	}
	var unreadOnly bool
	if err := echo.QueryParamsBinder(c).Bool("unread", &unreadOnly).BindError(); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "unread must be a boolean")
	}

	notifications, err := h.inboxUC.ListNotifications(c.Request().Context(), userID, unreadOnly, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, notifications, limit, offset)
}

func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	count, err := h.inboxUC.GetUnreadCount(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count})
}

func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	notificationID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.inboxUC.MarkAsRead(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, message("Notification marked as read"))
}

func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	updated, err := h.inboxUC.MarkAllAsRead(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": updated})
}

func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	notificationID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.inboxUC.DeleteNotification(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *NotificationHandler) GetPreferences(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	prefs, err := h.inboxUC.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs)
}

func (h *NotificationHandler) UpdatePreferences(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.PreferenceInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}

	prefs, err := h.inboxUC.UpdatePreferences(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs)
}

// Admin endpoints

func (h *NotificationHandler) ListTemplates(c echo.Context) error {
	templates, err := h.inboxUC.ListTemplates(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, templates)
}

func (h *NotificationHandler) UpsertTemplate(c echo.Context) error {
	var req usecase.TemplateInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid template input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	tmpl, err := h.inboxUC.UpsertTemplate(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tmpl)
}

// SendNotification dispatches to one user now, or queues it for the worker.
func (h *NotificationHandler) SendNotification(c echo.Context) error {
	var req SendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&req.NotificationRequest); err != nil {
		return response.ValidationError(c, err)
	}

	ctx := c.Request().Context()
	if req.Queue {
		item, err := h.notificationUC.EnqueueNotification(ctx, &req.NotificationRequest)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusAccepted, item)
	}

	result, err := h.notificationUC.SendMultiChannelNotification(ctx, &req.NotificationRequest)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

func (h *NotificationHandler) SendTemplatedNotification(c echo.Context) error {
	var req SendTemplatedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&req.TemplatedNotificationRequest); err != nil {
		return response.ValidationError(c, err)
	}

	ctx := c.Request().Context()
	if req.Queue {
		item, err := h.notificationUC.EnqueueTemplatedNotification(ctx, &req.TemplatedNotificationRequest)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusAccepted, item)
	}

	result, err := h.notificationUC.SendTemplatedNotification(ctx, &req.TemplatedNotificationRequest)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
