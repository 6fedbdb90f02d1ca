// Package response writes the JSON envelope every API endpoint answers with.
package response

import (
	"net/http"

	"expatmart/internal/delivery/api/validator"
	deliverycontext "expatmart/internal/delivery/context"
	domainerrors "expatmart/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Paged is a list read with limit/offset. NextOffset is set when the page
// came back full and more rows may follow.
type Paged struct {
	Items      any  `json:"items"`
	Count      int  `json:"count"`
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
	NextOffset *int `json:"next_offset,omitempty"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Page answers 200 with a Paged body. A nil slice is sent as [].
func Page[T any](c echo.Context, items []T, limit, offset int) error {
	if items == nil {
		items = []T{}
	}

	page := Paged{Items: items, Count: len(items), Limit: limit, Offset: offset}
	if limit > 0 && len(items) == limit {
		next := offset + limit
		page.NextOffset = &next
	}

	return Success(c, http.StatusOK, page)
}

// Error drops details on 401, 403 and 5xx so they never leak internals.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError is a malformed body or query, before validation runs.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// ValidationError lists the rejected fields when err came from echo.Context.Validate.
func ValidationError(c echo.Context, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed", verrs)
	}

	return Error(c, http.StatusBadRequest, "VALIDATION_FAILED", err.Error(), nil)
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders domain errors. Anything else is returned to echo's
// error handler so it is logged and answered with a generic 500.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	if appErr.HTTPCode() == http.StatusTooManyRequests || appErr.HTTPCode() == http.StatusServiceUnavailable {
		c.Response().Header().Set("Retry-After", "30")
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
}
