package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"expatmart/config"
	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/service"
)

const defaultAudience = "authenticated"

// supabaseClaims mirrors the access token issued by Supabase Auth.
// Marketplace roles live in app_metadata, which only the service role can write.
type supabaseClaims struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
	AppMetadata struct {
		Roles []string `json:"roles"`
	} `json:"app_metadata"`
	jwt.RegisteredClaims
}

// jwtService verifies HS256 access tokens signed with the project's JWT secret.
type jwtService struct {
	secret   []byte
	audience string
	leeway   time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.Supabase == nil || cfg.Supabase.JWTSecret == "" {
		return nil, errors.New("supabase jwt secret must be provided")
	}

	audience := cfg.Supabase.JWTAudience
	if audience == "" {
		audience = defaultAudience
	}

	return &jwtService{
		secret:   []byte(cfg.Supabase.JWTSecret),
		audience: audience,
		leeway:   30 * time.Second,
	}, nil
}

// VerifyToken checks the signature, expiry and audience of an access token.
func (s *jwtService) VerifyToken(tokenString string) (*service.Claims, error) {
	var claims supabaseClaims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.leeway),
	)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "subject is not a user id")
	}

	return &service.Claims{
		UserID:           userID,
		Email:            claims.Email,
		Phone:            claims.Phone,
		Roles:            marketplaceRoles(claims.AppMetadata.Roles),
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}

// marketplaceRoles keeps the known roles and always grants RoleUser.
func marketplaceRoles(raw []string) []string {
	roles := []string{entity.RoleUser.String()}
	for _, role := range entity.RolesFromStrings(raw) {
		if role != entity.RoleUser {
			roles = append(roles, role.String())
		}
	}

	return roles
}
