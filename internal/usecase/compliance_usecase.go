package usecase

import (
	"context"

	"expatmart/internal/domain/entity"
	"expatmart/internal/domain/repository"

	"github.com/google/uuid"
)

// KYCSubmission carries an uploaded identity document.
type KYCSubmission struct {
	DocumentType   entity.DocumentType
	DocumentNumber string
	ContentType    string
	Data           []byte
}

// SecurityEventInput records a security occurrence.
type SecurityEventInput struct {
	UserID    *uuid.UUID
	Type      entity.SecurityEventType
	Severity  entity.SecuritySeverity
	IPAddress string
	UserAgent string
	Details   map[string]any
}

// ComplianceUsecase covers identity verification and the security audit trail.
type ComplianceUsecase interface {
	SubmitKYC(ctx context.Context, userID uuid.UUID, submission *KYCSubmission) (*entity.KYCVerification, error)
	GetKYCStatus(ctx context.Context, userID uuid.UUID) (*entity.KYCVerification, error)
	ReviewKYC(ctx context.Context, actor Actor, verificationID uuid.UUID, approve bool, reason string) (*entity.KYCVerification, error)
	ListPendingKYC(ctx context.Context, limit, offset int) ([]*entity.KYCVerification, error)

	// RecordSecurityEvent never fails the caller's flow; errors are logged.
	RecordSecurityEvent(ctx context.Context, input *SecurityEventInput)
	ListSecurityEvents(ctx context.Context, filter repository.SecurityEventFilter) ([]*entity.SecurityEvent, error)
}
