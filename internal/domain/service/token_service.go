package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the access-token claims issued by the auth backend.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Phone  string
	Roles  []string
	jwt.RegisteredClaims
}

// TokenVerifier validates access tokens issued by the hosted auth service.
type TokenVerifier interface {
	// VerifyToken checks signature, expiry and audience of a token string.
	VerifyToken(tokenString string) (*Claims, error)
}
