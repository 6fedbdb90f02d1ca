package usecase

import (
	"context"

	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileInput updates the editable parts of a profile.
type ProfileInput struct {
	FullName          string `json:"full_name" validate:"max=200"`
	Phone             string `json:"phone" validate:"omitempty,e164"`
	AvatarURL         string `json:"avatar_url" validate:"omitempty,url"`
	Country           string `json:"country" validate:"omitempty,len=2"`
	Nationality       string `json:"nationality" validate:"omitempty,len=2"`
	City              string `json:"city" validate:"max=100"`
	PreferredCurrency string `json:"preferred_currency" validate:"omitempty,currency_code"`
	Language          string `json:"language" validate:"omitempty,bcp47_language_tag"`
}

// ProfileUsecase manages the caller's marketplace profile.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// UpsertProfile creates the profile on first use. Email comes from the access token.
	UpsertProfile(ctx context.Context, userID uuid.UUID, email string, input *ProfileInput) (*entity.Profile, error)
}
