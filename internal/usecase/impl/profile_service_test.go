package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"expatmart/config"
	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	mockRepo "expatmart/internal/mocks/repository"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	profileRepo *mockRepo.MockProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Payments: &config.PaymentsConfig{DefaultCurrency: "aed"}}
	service := NewProfileService(txManager, cfg, logger)

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().NewProfileRepository().Return(profileRepo)

			return fn(mockFactory)
		}).Maybe()

	return profileServiceFixtures{
		service:     service,
		txManager:   txManager,
		profileRepo: profileRepo,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := &entity.Profile{
		ID:       userID,
		Email:    "test@example.com",
		FullName: "Test User",
	}

	fx.profileRepo.EXPECT().FindProfileByID(ctx, userID).Return(expected, nil)

	profile, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, profile)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindProfileByID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	profile, err := fx.service.GetProfile(ctx, userID)

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_UpsertProfile_FirstUse(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindProfileByID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().UpsertProfile(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)

	profile, err := fx.service.UpsertProfile(ctx, userID, " New.Member@Example.com ", &usecase.ProfileInput{
		FullName:    "Amara Okafor",
		Country:     "ae",
		Nationality: "ng",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, profile.ID)
	assert.Equal(t, "new.member@example.com", profile.Email)
	assert.Equal(t, entity.RoleUser, profile.Role)
	assert.Equal(t, entity.KYCStatusNone, profile.KYCStatus)
	assert.Equal(t, "AED", profile.PreferredCurrency)
	assert.Equal(t, "AE", profile.Country)
	assert.Equal(t, "NG", profile.Nationality)
}

func TestProfileService_UpsertProfile_KeepsProtectedFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Profile{
		ID:                userID,
		Email:             "old@example.com",
		FullName:          "Old Name",
		City:              "Dubai",
		Role:              entity.RoleVendor,
		KYCStatus:         entity.KYCStatusApproved,
		PreferredCurrency: "AED",
	}

	fx.profileRepo.EXPECT().FindProfileByID(ctx, userID).Return(existing, nil)
	fx.profileRepo.EXPECT().UpsertProfile(ctx, existing).Return(nil)

	profile, err := fx.service.UpsertProfile(ctx, userID, "", &usecase.ProfileInput{
		FullName:          "New Name",
		PreferredCurrency: "eur",
	})

	require.NoError(t, err)
	assert.Equal(t, "old@example.com", profile.Email)
	assert.Equal(t, "New Name", profile.FullName)
	assert.Equal(t, "Dubai", profile.City)
	assert.Equal(t, "EUR", profile.PreferredCurrency)
	assert.Equal(t, entity.RoleVendor, profile.Role)
	assert.Equal(t, entity.KYCStatusApproved, profile.KYCStatus)
}

func TestProfileService_UpsertProfile_UnsupportedCurrency(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.UpsertProfile(context.Background(), uuid.New(), "a@b.c", &usecase.ProfileInput{PreferredCurrency: "XXX"})

	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedCurrency)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestProfileService_UpsertProfile_SaveFails(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindProfileByID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().UpsertProfile(ctx, mock.Anything).Return(errors.New("connection reset"))

	profile, err := fx.service.UpsertProfile(ctx, userID, "a@example.com", nil)

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrProfileUpdateFailed)
}
