package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	"expatmart/config"
	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/domain/service"
	"expatmart/internal/usecase"
	"expatmart/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var documentExtensions = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

// ComplianceServiceParams holds the dependencies of the compliance service.
type ComplianceServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	KYCRepo           repository.KYCRepository
	SecurityEventRepo repository.SecurityEventRepository
	Storage           service.DocumentStorage
	Notifier          usecase.NotificationUsecase
	Config            *config.Config
	Logger            *slog.Logger
}

type complianceService struct {
	txManager         repository.TransactionManager
	kycRepo           repository.KYCRepository
	securityEventRepo repository.SecurityEventRepository
	storage           service.DocumentStorage
	notifier          usecase.NotificationUsecase
	cfg               *config.StorageConfig
	logger            *slog.Logger
	now               func() time.Time
}

// NewComplianceService creates the KYC and security audit service.
func NewComplianceService(params ComplianceServiceParams) usecase.ComplianceUsecase {
	return &complianceService{
		txManager:         params.TxManager,
		kycRepo:           params.KYCRepo,
		securityEventRepo: params.SecurityEventRepo,
		storage:           params.Storage,
		notifier:          params.Notifier,
		cfg:               params.Config.Storage,
		logger:            params.Logger,
		now:               time.Now,
	}
}

// SubmitKYC stores the document in the bucket, then records the verification
// and flips the profile to PENDING in one transaction. The stored object is
// removed again when the transaction fails.
func (s *complianceService) SubmitKYC(ctx context.Context, userID uuid.UUID, submission *usecase.KYCSubmission) (*entity.KYCVerification, error) {
	ext, err := s.validateSubmission(submission)
	if err != nil {
		return nil, err
	}

	latest, err := s.kycRepo.FindLatestVerificationByUser(ctx, userID)
	switch {
	case err == nil && latest.Status == entity.KYCStatusPending:
		return nil, errors.Wrap(domainerrors.ErrKYCAlreadyPending, "verification already under review")
	case err == nil && latest.Status == entity.KYCStatusApproved:
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "identity already verified")
	case err != nil && !errors.Is(err, repository.ErrKYCNotFound):
		return nil, errors.Wrap(err, "failed to load latest verification")
	}

	now := s.now()
	kyc := &entity.KYCVerification{
		ID:             uuid.New(),
		UserID:         userID,
		DocumentType:   submission.DocumentType,
		DocumentNumber: strings.TrimSpace(submission.DocumentNumber),
		ContentType:    submission.ContentType,
		Checksum:       util.ChecksumBytes(submission.Data),
		SizeBytes:      int64(len(submission.Data)),
		Status:         entity.KYCStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	kyc.DocumentKey = path.Join(s.cfg.KYCPrefix, userID.String(), kyc.ID.String()+ext)

	if err := s.storage.Put(ctx, kyc.DocumentKey, submission.Data, submission.ContentType); err != nil {
		return nil, errors.Wrap(err, "failed to store document")
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewKYCRepository().CreateVerification(ctx, kyc); err != nil {
			return errors.Wrap(err, "failed to create verification")
		}
		if err := repoFactory.NewProfileRepository().UpdateKYCStatus(ctx, userID, entity.KYCStatusPending); err != nil {
			return errors.Wrap(err, "failed to update profile kyc status")
		}

		return nil
	})
	if err != nil {
		if delErr := s.storage.Delete(ctx, kyc.DocumentKey); delErr != nil {
			s.logger.Warn("Failed to remove orphaned document", slog.String("key", kyc.DocumentKey), slog.Any("error", delErr))
		}

		return nil, errors.WithMessage(err, "submit kyc failed")
	}

	s.logger.Info("KYC submitted",
		slog.String("user_id", userID.String()),
		slog.String("document_type", string(kyc.DocumentType)),
		slog.String("size", util.FormatBytes(kyc.SizeBytes)),
	)

	return kyc, nil
}

func (s *complianceService) GetKYCStatus(ctx context.Context, userID uuid.UUID) (*entity.KYCVerification, error) {
	kyc, err := s.kycRepo.FindLatestVerificationByUser(ctx, userID)
	if err != nil {
		return nil, translateKYCError(err)
	}

	return kyc, nil
}

// ReviewKYC approves or rejects a PENDING verification. A rejection needs a reason.
func (s *complianceService) ReviewKYC(ctx context.Context, actor usecase.Actor, verificationID uuid.UUID, approve bool, reason string) (*entity.KYCVerification, error) {
	if !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only admins review identity documents")
	}
	reason = strings.TrimSpace(reason)
	if !approve && reason == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "a rejection reason is required")
	}

	var kyc *entity.KYCVerification
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		kycRepo := repoFactory.NewKYCRepository()

		found, err := kycRepo.FindVerificationByID(ctx, verificationID)
		if err != nil {
			return translateKYCError(err)
		}
		if found.Status != entity.KYCStatusPending {
			return errors.Wrapf(domainerrors.ErrInvalidStatusTransition, "verification is already %s", found.Status)
		}

		now := s.now()
		found.Status = entity.KYCStatusRejected
		found.RejectionReason = reason
		if approve {
			found.Status = entity.KYCStatusApproved
			found.RejectionReason = ""
		}
		found.ReviewedBy = &actor.ID
		found.ReviewedAt = &now
		found.UpdatedAt = now

		if err := kycRepo.UpdateVerification(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update verification")
		}
		if err := repoFactory.NewProfileRepository().UpdateKYCStatus(ctx, found.UserID, found.Status); err != nil {
			return errors.Wrap(err, "failed to update profile kyc status")
		}
		kyc = found

		return nil
	})
	if err != nil {
		return nil, errors.WithMessage(err, "review kyc failed")
	}

	s.RecordSecurityEvent(ctx, &usecase.SecurityEventInput{
		UserID:   &kyc.UserID,
		Type:     entity.SecurityEventKYCReviewed,
		Severity: entity.SeverityLow,
		Details: map[string]any{
			"verification_id": kyc.ID.String(),
			"reviewed_by":     actor.ID.String(),
			"status":          string(kyc.Status),
		},
	})

	title, message := "Identity verified", "Your identity document was approved."
	if !approve {
		title, message = "Identity verification rejected", "Your identity document was rejected: "+reason
	}
	enqueueNotifications(ctx, s.notifier, s.logger,
		notice(kyc.UserID, entity.NotificationTypeKYC, title, message, map[string]any{"verification_id": kyc.ID.String()}),
	)

	return kyc, nil
}

func (s *complianceService) ListPendingKYC(ctx context.Context, limit, offset int) ([]*entity.KYCVerification, error) {
	limit, offset = normalizePage(limit, offset)

	pending, err := s.kycRepo.ListVerificationsByStatus(ctx, entity.KYCStatusPending, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending verifications")
	}

	return pending, nil
}

func (s *complianceService) RecordSecurityEvent(ctx context.Context, input *usecase.SecurityEventInput) {
	if input == nil {
		return
	}

	event := &entity.SecurityEvent{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Type:      input.Type,
		Severity:  input.Severity,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
		Details:   input.Details,
		CreatedAt: s.now(),
	}
	if event.Severity == "" {
		event.Severity = entity.SeverityLow
	}

	if err := s.securityEventRepo.CreateSecurityEvent(ctx, event); err != nil {
		s.logger.Error("Failed to record security event",
			slog.String("type", string(event.Type)),
			slog.String("severity", string(event.Severity)),
			slog.Any("error", err),
		)

		return
	}

	if event.Severity == entity.SeverityHigh {
		s.logger.Warn("Security event recorded",
			slog.String("type", string(event.Type)),
			slog.String("ip", event.IPAddress),
		)
	}
}

func (s *complianceService) ListSecurityEvents(ctx context.Context, filter repository.SecurityEventFilter) ([]*entity.SecurityEvent, error) {
	filter.Limit, filter.Offset = normalizePage(filter.Limit, filter.Offset)

	events, err := s.securityEventRepo.ListSecurityEvents(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list security events")
	}

	return events, nil
}

func (s *complianceService) validateSubmission(submission *usecase.KYCSubmission) (string, error) {
	if submission == nil || len(submission.Data) == 0 {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "document is required")
	}
	if !submission.DocumentType.IsValid() {
		return "", errors.Wrapf(domainerrors.ErrValidationFailed, "unknown document type %q", submission.DocumentType)
	}
	if strings.TrimSpace(submission.DocumentNumber) == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "document number is required")
	}
	if size := int64(len(submission.Data)); size > s.cfg.MaxDocumentSize {
		return "", errors.Wrapf(domainerrors.ErrDocumentTooLarge, "%s exceeds %s", util.FormatBytes(size), util.FormatBytes(s.cfg.MaxDocumentSize))
	}

	ext, ok := documentExtensions[submission.ContentType]
	if !ok {
		return "", errors.Wrapf(domainerrors.ErrValidationFailed, "unsupported content type %q", submission.ContentType)
	}

	return ext, nil
}

func translateKYCError(err error) error {
	if errors.Is(err, repository.ErrKYCNotFound) {
		return errors.Wrap(domainerrors.ErrKYCNotFound, "verification not found")
	}

	return errors.Wrap(err, "failed to load verification")
}
