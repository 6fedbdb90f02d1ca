// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"expatmart/config"
	"expatmart/internal/domain/currency"
	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager       repository.TransactionManager
	defaultCurrency string
	logger          *slog.Logger
	now             func() time.Time
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	defaultCurrency := "USD"
	if cfg.Payments != nil && cfg.Payments.DefaultCurrency != "" {
		defaultCurrency = currency.Normalize(cfg.Payments.DefaultCurrency)
	}

	return &profileService{
		txManager:       txManager,
		defaultCurrency: defaultCurrency,
		logger:          logger,
		now:             time.Now,
	}
}

// GetProfile retrieves the marketplace profile of the user.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	srv.logger.Debug("Getting profile", "userID", userID)

	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewProfileRepository().FindProfileByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
			}

			return errors.Wrap(err, "failed to find profile")
		}
		profile = found

		return nil
	})

	if err != nil {
		return nil, errors.WithMessage(err, "failed to get profile")
	}

	return profile, nil
}

// UpsertProfile creates the profile on first use and applies the non-empty
// fields of input. Role and KYC status are never taken from input.
func (srv *profileService) UpsertProfile(ctx context.Context, userID uuid.UUID, email string, input *usecase.ProfileInput) (*entity.Profile, error) {
	if input == nil {
		input = &usecase.ProfileInput{}
	}
	if input.PreferredCurrency != "" && !currency.IsSupported(input.PreferredCurrency) {
		return nil, errors.Wrapf(domainerrors.ErrUnsupportedCurrency, "currency %q", input.PreferredCurrency)
	}

	srv.logger.Info("Upserting profile", "userID", userID)

	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()
		now := srv.now()

		// 1. Load the existing profile or start a new one
		existing, err := profileRepo.FindProfileByID(ctx, userID)
		switch {
		case err == nil:
			profile = existing
		case errors.Is(err, repository.ErrProfileNotFound):
			profile = &entity.Profile{
				ID:                userID,
				Role:              entity.RoleUser,
				KYCStatus:         entity.KYCStatusNone,
				PreferredCurrency: srv.defaultCurrency,
				Language:          "en",
				CreatedAt:         now,
			}
		default:
			return errors.Wrap(err, "failed to find profile")
		}

		// 2. Apply the changes
		if email = strings.ToLower(strings.TrimSpace(email)); email != "" {
			profile.Email = email
		}
		applyProfileInput(profile, input)
		profile.UpdatedAt = now

		// 3. Save
		if err := profileRepo.UpsertProfile(ctx, profile); err != nil {
			return errors.Wrap(domainerrors.ErrProfileUpdateFailed, err.Error())
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("failed to upsert profile", "error", err)

		return nil, errors.WithMessage(err, "failed to upsert profile")
	}

	return profile, nil
}

func applyProfileInput(profile *entity.Profile, input *usecase.ProfileInput) {
	if v := strings.TrimSpace(input.FullName); v != "" {
		profile.FullName = v
	}
	if v := strings.TrimSpace(input.Phone); v != "" {
		profile.Phone = v
	}
	if v := strings.TrimSpace(input.AvatarURL); v != "" {
		profile.AvatarURL = v
	}
	if v := strings.TrimSpace(input.Country); v != "" {
		profile.Country = strings.ToUpper(v)
	}
	if v := strings.TrimSpace(input.Nationality); v != "" {
		profile.Nationality = strings.ToUpper(v)
	}
	if v := strings.TrimSpace(input.City); v != "" {
		profile.City = v
	}
	if input.PreferredCurrency != "" {
		profile.PreferredCurrency = currency.Normalize(input.PreferredCurrency)
	}
	if v := strings.TrimSpace(input.Language); v != "" {
		profile.Language = v
	}
}
