package handler

import (
	"io"
	"net/http"
	"strings"
	"time"

	"expatmart/config"
	"expatmart/internal/delivery/api/middleware"
	"expatmart/internal/delivery/api/response"
	"expatmart/internal/domain/entity"
	"expatmart/internal/domain/repository"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// KYCDocumentField is the multipart field holding the identity document.
const KYCDocumentField = "document"

// ComplianceHandlerParams holds dependencies for ComplianceHandler, injected by Fx.
type ComplianceHandlerParams struct {
	fx.In

	ComplianceUC usecase.ComplianceUsecase
	Config       *config.Config
}

// ComplianceHandler serves KYC submission and review plus the security audit trail.
type ComplianceHandler struct {
	complianceUC    usecase.ComplianceUsecase
	maxDocumentSize int64
}

func NewComplianceHandler(params ComplianceHandlerParams) *ComplianceHandler {
	return &ComplianceHandler{
		complianceUC:    params.ComplianceUC,
		maxDocumentSize: params.Config.Storage.MaxDocumentSize,
	}
}

// ReviewKYCRequest approves or rejects a pending verification.
type ReviewKYCRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason" validate:"required_if=Approve false,max=500"`
}

// SubmitKYC accepts multipart/form-data with document_type, document_number
// and the document file.
func (h *ComplianceHandler) SubmitKYC(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	documentType := entity.DocumentType(strings.ToUpper(c.FormValue("document_type")))
	if documentType == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "document_type is required")
	}

	fileHeader, err := c.FormFile(KYCDocumentField)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "document file is required")
	}
	if h.maxDocumentSize > 0 && fileHeader.Size > h.maxDocumentSize {
		return response.Error(c, http.StatusRequestEntityTooLarge, "DOCUMENT_TOO_LARGE", "Document exceeds the maximum allowed size", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unable to read document")
	}
	defer file.Close()

	var reader io.Reader = file
	if h.maxDocumentSize > 0 {
		reader = io.LimitReader(file, h.maxDocumentSize+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unable to read document")
	}

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = http.DetectContentType(data)
	}

	kyc, err := h.complianceUC.SubmitKYC(c.Request().Context(), userID, &usecase.KYCSubmission{
		DocumentType:   documentType,
		DocumentNumber: c.FormValue("document_number"),
		ContentType:    contentType,
		Data:           data,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, kyc)
}

func (h *ComplianceHandler) GetKYCStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	kyc, err := h.complianceUC.GetKYCStatus(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, kyc)
}

func (h *ComplianceHandler) ListPendingKYC(c echo.Context) error {
	limit, offset, err := pageParams(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "limit and offset must be integers")
	}

	pending, err := h.complianceUC.ListPendingKYC(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, pending, limit, offset)
}

func (h *ComplianceHandler) ReviewKYC(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	verificationID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid verification ID")
	}

	var req ReviewKYCRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	kyc, err := h.complianceUC.ReviewKYC(c.Request().Context(), actor, verificationID, req.Approve, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, kyc)
}

// ListSecurityEvents accepts user_id, type and since (RFC 3339).
func (h *ComplianceHandler) ListSecurityEvents(c echo.Context) error {
	limit, offset, err := pageParams(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "limit and offset must be integers")
	}

	filter := repository.SecurityEventFilter{
		Type:   entity.SecurityEventType(strings.ToUpper(c.QueryParam("type"))),
		Limit:  limit,
		Offset: offset,
	}
	if raw := c.QueryParam("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "user_id must be a UUID")
		}
		filter.UserID = &userID
	}
	if raw := c.QueryParam("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "since must be an RFC 3339 timestamp")
		}
		filter.Since = &since
	}

	events, err := h.complianceUC.ListSecurityEvents(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, events, limit, offset)
}
