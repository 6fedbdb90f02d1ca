package entity

import (
	"time"

	"github.com/google/uuid"
)

// KYCStatus mirrors the latest identity verification outcome on the profile.
type KYCStatus string

const (
	KYCStatusNone     KYCStatus = "NONE"
	KYCStatusPending  KYCStatus = "PENDING"
	KYCStatusApproved KYCStatus = "APPROVED"
	KYCStatusRejected KYCStatus = "REJECTED"
)

// Profile is the marketplace-side record of an authenticated user.
// Its ID equals the auth user ID (the JWT subject).
type Profile struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	FullName          string    `json:"full_name"`
	AvatarURL         string    `json:"avatar_url"`
	Country           string    `json:"country"`            // ISO 3166 alpha-2 country of residence.
	Nationality       string    `json:"nationality"`        // ISO 3166 alpha-2 country of origin.
	City              string    `json:"city"`
	PreferredCurrency string    `json:"preferred_currency"`
	Language          string    `json:"language"`
	Role              Role      `json:"role"`
	KYCStatus         KYCStatus `json:"kyc_status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
