package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "expatmart/internal/delivery/context"
	"expatmart/internal/domain/entity"
	"expatmart/internal/domain/service"
	mockSvc "expatmart/internal/mocks/service"
	mockUsecase "expatmart/internal/mocks/usecase"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	middleware *AuthMiddleware
	verifier   *mockSvc.MockTokenVerifier
	compliance *mockUsecase.MockComplianceUsecase
	echo       *echo.Echo
}

func createTestAuthMiddleware(t *testing.T) *authFixture {
	fx := &authFixture{
		verifier:   mockSvc.NewMockTokenVerifier(t),
		compliance: mockUsecase.NewMockComplianceUsecase(t),
		echo:       echo.New(),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx.middleware = NewAuthMiddleware(fx.verifier, fx.compliance, logger)

	return fx
}

func (fx *authFixture) serve(t *testing.T, authHeader string, handler echo.HandlerFunc, mws ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me/profile", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetPath("/api/v1/me/profile")

	h := handler
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	require.NoError(t, h(c))

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	t.Run("missing header", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)

		rec := fx.serve(t, "", func(c echo.Context) error {
			t.Fatal("handler must not run")

			return nil
		}, fx.middleware.Authenticate)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
	})

	t.Run("not a bearer token", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)

		rec := fx.serve(t, "Basic abc", func(c echo.Context) error { return nil }, fx.middleware.Authenticate)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "TOKEN_INVALID", errorCode(t, rec))
	})

	t.Run("rejected token records a security event", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)
		fx.verifier.EXPECT().VerifyToken("bad").Return(nil, errors.New("token is expired"))
		fx.compliance.EXPECT().
			RecordSecurityEvent(mock.Anything, mock.MatchedBy(func(in *usecase.SecurityEventInput) bool {
				return in.Type == entity.SecurityEventInvalidToken && in.UserID == nil
			})).
			Return()

		rec := fx.serve(t, "Bearer bad", func(c echo.Context) error { return nil }, fx.middleware.Authenticate)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token exposes the actor", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)
		fx.verifier.EXPECT().VerifyToken("good").Return(&service.Claims{
			UserID: userID,
			Email:  "lena@example.com",
			Roles:  []string{"user", "admin"},
		}, nil)

		rec := fx.serve(t, "Bearer good", func(c echo.Context) error {
			actor, ok := GetActor(c)
			require.True(t, ok)
			assert.Equal(t, userID, actor.ID)
			assert.True(t, actor.IsAdmin())
			assert.Equal(t, "lena@example.com", GetEmail(c))

			ctxUserID, ok := deliverycontext.GetUserIDFromContext(c.Request().Context())
			assert.True(t, ok)
			assert.Equal(t, userID, ctxUserID)

			return c.NoContent(http.StatusNoContent)
		}, fx.middleware.Authenticate)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	t.Run("anonymous passes through", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)

		rec := fx.serve(t, "", func(c echo.Context) error {
			_, ok := GetUserID(c)
			assert.False(t, ok)

			return c.NoContent(http.StatusOK)
		}, fx.middleware.OptionalAuthenticate)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid token is ignored", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)
		fx.verifier.EXPECT().VerifyToken("bad").Return(nil, errors.New("signature is invalid"))

		rec := fx.serve(t, "Bearer bad", func(c echo.Context) error {
			_, ok := GetUserID(c)
			assert.False(t, ok)

			return c.NoContent(http.StatusOK)
		}, fx.middleware.OptionalAuthenticate)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	userID := uuid.New()

	t.Run("missing role is forbidden", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)
		fx.verifier.EXPECT().VerifyToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"user"}}, nil)
		fx.compliance.EXPECT().
			RecordSecurityEvent(mock.Anything, mock.MatchedBy(func(in *usecase.SecurityEventInput) bool {
				return in.Type == entity.SecurityEventForbiddenAccess && *in.UserID == userID
			})).
			Return()

		rec := fx.serve(t, "Bearer good", func(c echo.Context) error {
			t.Fatal("handler must not run")

			return nil
		}, fx.middleware.Authenticate, fx.middleware.RequireRole(entity.RoleAdmin))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", errorCode(t, rec))
	})

	t.Run("role present", func(t *testing.T) {
		fx := createTestAuthMiddleware(t)
		fx.verifier.EXPECT().VerifyToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"user", "admin"}}, nil)

		rec := fx.serve(t, "Bearer good", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}, fx.middleware.Authenticate, fx.middleware.RequireRole(entity.RoleAdmin))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
