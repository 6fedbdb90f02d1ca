package middleware

import (
	"log/slog"
	"strings"

	"expatmart/internal/delivery/api/response"
	deliverycontext "expatmart/internal/delivery/context"
	"expatmart/internal/domain/entity"
	"expatmart/internal/domain/service"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keyUserID = "userID"
	keyRoles  = "roles"
	keyEmail  = "email"
)

// AuthMiddleware validates access tokens issued by the auth backend.
type AuthMiddleware struct {
	verifier   service.TokenVerifier
	compliance usecase.ComplianceUsecase
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, compliance usecase.ComplianceUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, compliance: compliance, logger: logger}
}

// Authenticate rejects requests without a valid Bearer token and stores the
// caller's identity on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		claims, err := m.verifier.VerifyToken(tokenString)
		if err != nil {
			m.logger.Debug("Rejected access token", slog.Any("error", err))
			m.record(c, nil, entity.SecurityEventInvalidToken, entity.SeverityLow, map[string]any{
				"path": c.Path(),
			})

			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired access token")
		}

		SetIdentity(c, claims)

		return next(c)
	}
}

// OptionalAuthenticate identifies the caller when a valid token is present
// and lets anonymous requests through otherwise.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, found := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
		if !found || tokenString == "" {
			return next(c)
		}

		if claims, err := m.verifier.VerifyToken(tokenString); err == nil {
			SetIdentity(c, claims)
		}

		return next(c)
	}
}

// RequireRole must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !roles.Grants(requiredRole) {
				userID, _ := GetUserID(c)
				m.record(c, &userID, entity.SecurityEventForbiddenAccess, entity.SeverityMedium, map[string]any{
					"path":          c.Path(),
					"required_role": requiredRole.String(),
				})

				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) record(c echo.Context, userID *uuid.UUID, eventType entity.SecurityEventType, severity entity.SecuritySeverity, details map[string]any) {
	if m.compliance == nil {
		return
	}

	m.compliance.RecordSecurityEvent(c.Request().Context(), &usecase.SecurityEventInput{
		UserID:    userID,
		Type:      eventType,
		Severity:  severity,
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
		Details:   details,
	})
}

// SetIdentity stores verified claims on the echo context and tags the
// request context with the caller.
func SetIdentity(c echo.Context, claims *service.Claims) {
	c.Set(keyUserID, claims.UserID)
	c.Set(keyRoles, claims.Roles)
	c.Set(keyEmail, claims.Email)

	req := c.Request()
	c.SetRequest(req.WithContext(deliverycontext.WithUserID(req.Context(), claims.UserID)))
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(keyUserID).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}

// GetRoles returns the authenticated user's roles.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(keyRoles).([]string)
	if !ok {
		return nil, false
	}

	return entity.RolesFromStrings(roles), true
}

// GetEmail returns the email claim, which may be empty for phone sign-ups.
func GetEmail(c echo.Context) string {
	email, _ := c.Get(keyEmail).(string)

	return email
}

// GetActor bundles the caller identity for use cases that authorize by role.
func GetActor(c echo.Context) (usecase.Actor, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		return usecase.Actor{}, false
	}
	roles, _ := GetRoles(c)

	return usecase.Actor{ID: userID, Roles: roles}, true
}
