package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"expatmart/config"
	"expatmart/internal/domain/entity"
	mockUsecase "expatmart/internal/mocks/usecase"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestComplianceHandler(t *testing.T, maxSize int64) (*ComplianceHandler, *mockUsecase.MockComplianceUsecase) {
	complianceUC := mockUsecase.NewMockComplianceUsecase(t)

	return NewComplianceHandler(ComplianceHandlerParams{
		ComplianceUC: complianceUC,
		Config:       &config.Config{Storage: &config.StorageConfig{MaxDocumentSize: maxSize}},
	}), complianceUC
}

func multipartKYC(t *testing.T, documentType string, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("document_type", documentType))
	require.NoError(t, w.WriteField("document_number", "X1234567"))
	if data != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="document"; filename="passport.pdf"`)
		header.Set("Content-Type", contentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestComplianceHandler_SubmitKYC(t *testing.T) {
	userID := uuid.New()
	pdf := []byte("%PDF-1.7 passport scan")

	t.Run("forwards the document", func(t *testing.T) {
		h, complianceUC := createTestComplianceHandler(t, 1024)
		complianceUC.EXPECT().
			SubmitKYC(mock.Anything, userID, mock.MatchedBy(func(s *usecase.KYCSubmission) bool {
				return s.DocumentType == entity.DocumentPassport &&
					s.DocumentNumber == "X1234567" &&
					s.ContentType == "application/pdf" &&
					bytes.Equal(s.Data, pdf)
			})).
			Return(&entity.KYCVerification{ID: uuid.New(), UserID: userID, Status: entity.KYCStatusPending}, nil)

		body, contentType := multipartKYC(t, "passport", "application/pdf", pdf)
		c, rec := newTestContext(http.MethodPost, "/api/v1/me/kyc", body, &userID)
		c.Request().Header.Set(echo.HeaderContentType, contentType)

		require.NoError(t, h.SubmitKYC(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("sniffs a generic content type", func(t *testing.T) {
		h, complianceUC := createTestComplianceHandler(t, 1024)
		complianceUC.EXPECT().
			SubmitKYC(mock.Anything, userID, mock.MatchedBy(func(s *usecase.KYCSubmission) bool {
				return s.ContentType == "application/pdf"
			})).
			Return(&entity.KYCVerification{}, nil)

		body, contentType := multipartKYC(t, "PASSPORT", echo.MIMEOctetStream, pdf)
		c, rec := newTestContext(http.MethodPost, "/api/v1/me/kyc", body, &userID)
		c.Request().Header.Set(echo.HeaderContentType, contentType)

		require.NoError(t, h.SubmitKYC(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("too large", func(t *testing.T) {
		h, _ := createTestComplianceHandler(t, 8)

		body, contentType := multipartKYC(t, "PASSPORT", "application/pdf", pdf)
		c, rec := newTestContext(http.MethodPost, "/api/v1/me/kyc", body, &userID)
		c.Request().Header.Set(echo.HeaderContentType, contentType)

		require.NoError(t, h.SubmitKYC(c))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		h, _ := createTestComplianceHandler(t, 1024)

		body, contentType := multipartKYC(t, "PASSPORT", "", nil)
		c, rec := newTestContext(http.MethodPost, "/api/v1/me/kyc", body, &userID)
		c.Request().Header.Set(echo.HeaderContentType, contentType)

		require.NoError(t, h.SubmitKYC(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestComplianceHandler_ReviewKYC(t *testing.T) {
	adminID := uuid.New()
	verificationID := uuid.New()

	t.Run("rejection needs a reason", func(t *testing.T) {
		h, _ := createTestComplianceHandler(t, 1024)

		c, rec := newTestContext(http.MethodPost, "/api/v1/admin/kyc/x/review", jsonBody(`{"approve":false}`), &adminID, "admin")
		c.SetParamNames("id")
		c.SetParamValues(verificationID.String())

		require.NoError(t, h.ReviewKYC(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("approve", func(t *testing.T) {
		h, complianceUC := createTestComplianceHandler(t, 1024)
		complianceUC.EXPECT().
			ReviewKYC(mock.Anything, mock.MatchedBy(func(a usecase.Actor) bool { return a.ID == adminID && a.IsAdmin() }), verificationID, true, "").
			Return(&entity.KYCVerification{ID: verificationID, Status: entity.KYCStatusApproved}, nil)

		c, rec := newTestContext(http.MethodPost, "/api/v1/admin/kyc/x/review", jsonBody(`{"approve":true}`), &adminID, "admin")
		c.SetParamNames("id")
		c.SetParamValues(verificationID.String())

		require.NoError(t, h.ReviewKYC(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
