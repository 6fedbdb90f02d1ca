package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	ErrProfileUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROFILE_UPDATE_FAILED",
		"Failed to update profile",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired access token",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests, please slow down",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrUnsupportedCurrency = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_CURRENCY",
		"Currency is not supported",
		"",
	)

	// Catalogue-related errors
	ErrListingNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_FOUND",
		"Listing not found",
		"",
	)

	ErrListingUnavailable = NewBaseError(
		http.StatusConflict,
		"LISTING_UNAVAILABLE",
		"Listing is no longer available",
		"",
	)

	ErrVendorNotFound = NewBaseError(
		http.StatusNotFound,
		"VENDOR_NOT_FOUND",
		"Vendor not found",
		"",
	)

	ErrVendorAlreadyExists = NewBaseError(
		http.StatusConflict,
		"VENDOR_ALREADY_EXISTS",
		"You already registered a vendor",
		"",
	)

	ErrVendorNotApproved = NewBaseError(
		http.StatusForbidden,
		"VENDOR_NOT_APPROVED",
		"Vendor is not approved",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrInsufficientInventory = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_INVENTORY",
		"Not enough stock for this product",
		"",
	)

	ErrServiceNotFound = NewBaseError(
		http.StatusNotFound,
		"SERVICE_NOT_FOUND",
		"Service not found",
		"",
	)

	ErrBookingNotFound = NewBaseError(
		http.StatusNotFound,
		"BOOKING_NOT_FOUND",
		"Booking not found",
		"",
	)

	ErrGroupBuyNotFound = NewBaseError(
		http.StatusNotFound,
		"GROUP_BUY_NOT_FOUND",
		"Group buy deal not found",
		"",
	)

	ErrGroupBuyClosed = NewBaseError(
		http.StatusConflict,
		"GROUP_BUY_CLOSED",
		"Group buy deal is closed",
		"",
	)

	ErrGroupBuyFull = NewBaseError(
		http.StatusConflict,
		"GROUP_BUY_FULL",
		"Group buy deal is full",
		"",
	)

	ErrAlreadyJoined = NewBaseError(
		http.StatusConflict,
		"GROUP_BUY_ALREADY_JOINED",
		"You already joined this deal",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"This status change is not allowed",
		"",
	)

	// Payment-related errors
	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"Payment not found",
		"",
	)

	ErrPaymentAmountMismatch = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_AMOUNT_MISMATCH",
		"Payment amount or currency does not match the order",
		"",
	)

	ErrPaymentInProgress = NewBaseError(
		http.StatusConflict,
		"PAYMENT_IN_PROGRESS",
		"A payment for this order is already in progress",
		"",
	)

	ErrPaymentProviderUnavailable = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_PROVIDER_UNAVAILABLE",
		"Payment provider is unavailable",
		"",
	)

	ErrWebhookSignatureInvalid = NewBaseError(
		http.StatusUnauthorized,
		"WEBHOOK_SIGNATURE_INVALID",
		"Webhook signature is invalid",
		"",
	)

	// Escrow-related errors
	ErrEscrowNotFound = NewBaseError(
		http.StatusNotFound,
		"ESCROW_NOT_FOUND",
		"Escrow account not found",
		"",
	)

	ErrInvalidReleaseCode = NewBaseError(
		http.StatusForbidden,
		"INVALID_RELEASE_CODE",
		"Release code is incorrect",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrTemplateNotFound = NewBaseError(
		http.StatusNotFound,
		"TEMPLATE_NOT_FOUND",
		"Notification template not found",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// Compliance-related errors
	ErrKYCNotFound = NewBaseError(
		http.StatusNotFound,
		"KYC_NOT_FOUND",
		"Verification request not found",
		"",
	)

	ErrKYCAlreadyPending = NewBaseError(
		http.StatusConflict,
		"KYC_ALREADY_PENDING",
		"A verification request is already under review",
		"",
	)

	ErrDocumentTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"DOCUMENT_TOO_LARGE",
		"Document exceeds the maximum size",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
