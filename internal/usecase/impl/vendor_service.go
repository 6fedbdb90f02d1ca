package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type vendorService struct {
	vendorRepo repository.VendorRepository
	notifier   usecase.NotificationUsecase
	logger     *slog.Logger
	now        func() time.Time
}

// NewVendorService creates the vendor service.
func NewVendorService(vendorRepo repository.VendorRepository, notifier usecase.NotificationUsecase, logger *slog.Logger) usecase.VendorUsecase {
	return &vendorService{
		vendorRepo: vendorRepo,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

// RegisterVendor creates a PENDING storefront. A member owns at most one.
func (s *vendorService) RegisterVendor(ctx context.Context, ownerID uuid.UUID, input *usecase.VendorInput) (*entity.Vendor, error) {
	if err := validateVendorInput(input); err != nil {
		return nil, err
	}

	existing, err := s.vendorRepo.FindVendorByOwner(ctx, ownerID)
	if err != nil && !errors.Is(err, repository.ErrVendorNotFound) {
		return nil, errors.Wrap(err, "failed to check existing vendor")
	}
	if existing != nil {
		return nil, errors.Wrap(domainerrors.ErrVendorAlreadyExists, "you already run a store")
	}

	now := s.now()
	vendor := &entity.Vendor{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Status:    entity.VendorStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyVendorInput(vendor, input)

	if err := s.vendorRepo.CreateVendor(ctx, vendor); err != nil {
		if errors.Is(err, repository.ErrDuplicateVendor) {
			return nil, errors.Wrap(domainerrors.ErrVendorAlreadyExists, "you already run a store")
		}

		return nil, errors.Wrap(err, "failed to create vendor")
	}

	s.logger.Info("Vendor registered",
		slog.String("vendor_id", vendor.ID.String()),
		slog.String("owner_id", ownerID.String()),
	)

	return vendor, nil
}

func (s *vendorService) GetVendor(ctx context.Context, vendorID uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, translateVendorError(err)
	}

	return vendor, nil
}

func (s *vendorService) GetMyVendor(ctx context.Context, ownerID uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByOwner(ctx, ownerID)
	if err != nil {
		return nil, translateVendorError(err)
	}

	return vendor, nil
}

func (s *vendorService) UpdateVendor(ctx context.Context, ownerID uuid.UUID, input *usecase.VendorInput) (*entity.Vendor, error) {
	if err := validateVendorInput(input); err != nil {
		return nil, err
	}

	vendor, err := s.vendorRepo.FindVendorByOwner(ctx, ownerID)
	if err != nil {
		return nil, translateVendorError(err)
	}

	applyVendorInput(vendor, input)
	vendor.UpdatedAt = s.now()

	if err := s.vendorRepo.UpdateVendor(ctx, vendor); err != nil {
		return nil, errors.Wrap(err, "failed to update vendor")
	}

	return vendor, nil
}

func (s *vendorService) ListVendors(ctx context.Context, status entity.VendorStatus, limit, offset int) ([]*entity.Vendor, error) {
	switch status {
	case "", entity.VendorStatusPending, entity.VendorStatusApproved, entity.VendorStatusSuspended:
	default:
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown vendor status %q", status)
	}
	limit, offset = normalizePage(limit, offset)

	vendors, err := s.vendorRepo.ListVendors(ctx, status, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	return vendors, nil
}

func (s *vendorService) ApproveVendor(ctx context.Context, actor usecase.Actor, vendorID uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.moderate(ctx, actor, vendorID, entity.VendorStatusApproved)
	if err != nil {
		return nil, err
	}

	enqueueNotifications(ctx, s.notifier, s.logger,
		notice(vendor.OwnerID, entity.NotificationTypeSystem, "Store approved", vendor.BusinessName+" is now live on the marketplace.", vendorData(vendor)),
	)

	return vendor, nil
}

func (s *vendorService) SuspendVendor(ctx context.Context, actor usecase.Actor, vendorID uuid.UUID, reason string) (*entity.Vendor, error) {
	vendor, err := s.moderate(ctx, actor, vendorID, entity.VendorStatusSuspended)
	if err != nil {
		return nil, err
	}

	message := vendor.BusinessName + " was suspended."
	if reason = strings.TrimSpace(reason); reason != "" {
		message += " Reason: " + reason
	}
	enqueueNotifications(ctx, s.notifier, s.logger,
		notice(vendor.OwnerID, entity.NotificationTypeSystem, "Store suspended", message, vendorData(vendor)),
	)

	return vendor, nil
}

// FollowVendor is idempotent.
func (s *vendorService) FollowVendor(ctx context.Context, userID, vendorID uuid.UUID) error {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return translateVendorError(err)
	}
	if vendor.OwnerID == userID {
		return errors.Wrap(domainerrors.ErrValidationFailed, "cannot follow your own store")
	}

	err = s.vendorRepo.AddFollower(ctx, &entity.VendorFollower{VendorID: vendorID, UserID: userID, CreatedAt: s.now()})
	if err != nil && !errors.Is(err, repository.ErrAlreadyFollowing) {
		return errors.Wrap(err, "failed to follow vendor")
	}

	return nil
}

// UnfollowVendor is idempotent.
func (s *vendorService) UnfollowVendor(ctx context.Context, userID, vendorID uuid.UUID) error {
	err := s.vendorRepo.RemoveFollower(ctx, vendorID, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFollowing) {
		return errors.Wrap(err, "failed to unfollow vendor")
	}

	return nil
}

func (s *vendorService) moderate(ctx context.Context, actor usecase.Actor, vendorID uuid.UUID, status entity.VendorStatus) (*entity.Vendor, error) {
	if !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "vendor moderation requires an admin")
	}

	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, translateVendorError(err)
	}
	if vendor.Status == status {
		return vendor, nil
	}

	if err := s.vendorRepo.UpdateVendorStatus(ctx, vendorID, status); err != nil {
		return nil, translateVendorError(err)
	}
	vendor.Status = status
	vendor.UpdatedAt = s.now()

	s.logger.Info("Vendor moderated",
		slog.String("vendor_id", vendorID.String()),
		slog.String("status", string(status)),
		slog.String("admin_id", actor.ID.String()),
	)

	return vendor, nil
}

func validateVendorInput(input *usecase.VendorInput) error {
	if input == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "vendor input is required")
	}
	if strings.TrimSpace(input.BusinessName) == "" || strings.TrimSpace(input.Category) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "business name and category are required")
	}

	return nil
}

func applyVendorInput(vendor *entity.Vendor, input *usecase.VendorInput) {
	vendor.BusinessName = strings.TrimSpace(input.BusinessName)
	vendor.Description = strings.TrimSpace(input.Description)
	vendor.Category = strings.TrimSpace(input.Category)
	vendor.ContactEmail = strings.ToLower(strings.TrimSpace(input.ContactEmail))
	vendor.ContactPhone = strings.TrimSpace(input.ContactPhone)
	vendor.LogoURL = strings.TrimSpace(input.LogoURL)
	vendor.City = strings.TrimSpace(input.City)
	vendor.Country = strings.ToUpper(strings.TrimSpace(input.Country))
}

func translateVendorError(err error) error {
	if errors.Is(err, repository.ErrVendorNotFound) {
		return errors.Wrap(domainerrors.ErrVendorNotFound, "vendor not found")
	}

	return errors.Wrap(err, "failed to load vendor")
}

func vendorData(vendor *entity.Vendor) map[string]any {
	return map[string]any{
		"vendor_id": vendor.ID.String(),
		"status":    string(vendor.Status),
	}
}
