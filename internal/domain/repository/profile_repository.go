package repository

import (
	"context"

	"expatmart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when no profile exists for the user.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists marketplace profiles.
type ProfileRepository interface {
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// UpsertProfile inserts the profile or updates the editable columns of an existing one.
	UpsertProfile(ctx context.Context, profile *entity.Profile) error

	UpdateKYCStatus(ctx context.Context, id uuid.UUID, status entity.KYCStatus) error
}
