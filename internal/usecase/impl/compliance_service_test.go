package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"expatmart/config"
	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	mockRepo "expatmart/internal/mocks/repository"
	mockSvc "expatmart/internal/mocks/service"
	mockUsecase "expatmart/internal/mocks/usecase"
	"expatmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type complianceFixture struct {
	service           *complianceService
	kycRepo           *mockRepo.MockKYCRepository
	profileRepo       *mockRepo.MockProfileRepository
	securityEventRepo *mockRepo.MockSecurityEventRepository
	storage           *mockSvc.MockDocumentStorage
	notifier          *mockUsecase.MockNotificationUsecase
	now               time.Time
}

func createTestComplianceService(t *testing.T) *complianceFixture {
	fx := &complianceFixture{
		kycRepo:           mockRepo.NewMockKYCRepository(t),
		profileRepo:       mockRepo.NewMockProfileRepository(t),
		securityEventRepo: mockRepo.NewMockSecurityEventRepository(t),
		storage:           mockSvc.NewMockDocumentStorage(t),
		notifier:          mockUsecase.NewMockNotificationUsecase(t),
		now:               time.Date(2026, 4, 20, 10, 0, 0, 0, time.UTC),
	}
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewKYCRepository().Return(fx.kycRepo).Maybe()
			factory.EXPECT().NewProfileRepository().Return(fx.profileRepo).Maybe()

			return fn(factory)
		}).Maybe()

	fx.service = NewComplianceService(ComplianceServiceParams{
		TxManager:         txManager,
		KYCRepo:           fx.kycRepo,
		SecurityEventRepo: fx.securityEventRepo,
		Storage:           fx.storage,
		Notifier:          fx.notifier,
		Config:            &config.Config{Storage: &config.StorageConfig{KYCPrefix: "kyc/", MaxDocumentSize: 1024}},
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*complianceService)
	fx.service.now = func() time.Time { return fx.now }

	return fx
}

func passportSubmission() *usecase.KYCSubmission {
	return &usecase.KYCSubmission{
		DocumentType:   entity.DocumentPassport,
		DocumentNumber: " P1234567 ",
		ContentType:    "image/png",
		Data:           []byte("fake png bytes"),
	}
}

func TestComplianceService_SubmitKYC(t *testing.T) {
	fx := createTestComplianceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.kycRepo.EXPECT().FindLatestVerificationByUser(ctx, userID).Return(nil, repository.ErrKYCNotFound)
	fx.storage.EXPECT().Put(ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "kyc/"+userID.String()+"/") && strings.HasSuffix(key, ".png")
	}), []byte("fake png bytes"), "image/png").Return(nil)
	fx.kycRepo.EXPECT().CreateVerification(ctx, mock.AnythingOfType("*entity.KYCVerification")).Return(nil)
	fx.profileRepo.EXPECT().UpdateKYCStatus(ctx, userID, entity.KYCStatusPending).Return(nil)

	kyc, err := fx.service.SubmitKYC(ctx, userID, passportSubmission())

	require.NoError(t, err)
	assert.Equal(t, entity.KYCStatusPending, kyc.Status)
	assert.Equal(t, "P1234567", kyc.DocumentNumber)
	assert.Equal(t, int64(14), kyc.SizeBytes)
	assert.Len(t, kyc.Checksum, 64)
}

func TestComplianceService_SubmitKYC_RemovesDocumentOnFailure(t *testing.T) {
	fx := createTestComplianceService(t)
	ctx := context.Background()
	userID := uuid.New()
	var storedKey string

	fx.kycRepo.EXPECT().FindLatestVerificationByUser(ctx, userID).Return(nil, repository.ErrKYCNotFound)
	fx.storage.EXPECT().Put(ctx, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, key string, _ []byte, _ string) error {
			storedKey = key

			return nil
		})
	fx.kycRepo.EXPECT().CreateVerification(ctx, mock.Anything).Return(errors.New("unique violation"))
	fx.storage.EXPECT().Delete(ctx, mock.MatchedBy(func(key string) bool { return key == storedKey })).Return(nil)

	_, err := fx.service.SubmitKYC(ctx, userID, passportSubmission())

	assert.Error(t, err)
}

func TestComplianceService_SubmitKYC_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *usecase.KYCSubmission)
		latest  *entity.KYCVerification
		wantErr error
	}{
		{name: "too large", mutate: func(s *usecase.KYCSubmission) { s.Data = make([]byte, 2048) }, wantErr: domainerrors.ErrDocumentTooLarge},
		{name: "unknown type", mutate: func(s *usecase.KYCSubmission) { s.DocumentType = "LIBRARY_CARD" }, wantErr: domainerrors.ErrValidationFailed},
		{name: "bad content type", mutate: func(s *usecase.KYCSubmission) { s.ContentType = "image/gif" }, wantErr: domainerrors.ErrValidationFailed},
		{name: "empty document", mutate: func(s *usecase.KYCSubmission) { s.Data = nil }, wantErr: domainerrors.ErrValidationFailed},
		{name: "already pending", latest: &entity.KYCVerification{Status: entity.KYCStatusPending}, wantErr: domainerrors.ErrKYCAlreadyPending},
		{name: "already approved", latest: &entity.KYCVerification{Status: entity.KYCStatusApproved}, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestComplianceService(t)
			ctx := context.Background()
			userID := uuid.New()
			submission := passportSubmission()
			if tt.mutate != nil {
				tt.mutate(submission)
			}
			if tt.latest != nil {
				fx.kycRepo.EXPECT().FindLatestVerificationByUser(ctx, userID).Return(tt.latest, nil)
			}

			_, err := fx.service.SubmitKYC(ctx, userID, submission)

			assert.ErrorIs(t, err, tt.wantErr)
			fx.storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestComplianceService_ReviewKYC(t *testing.T) {
	admin := usecase.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}

	t.Run("approve", func(t *testing.T) {
		fx := createTestComplianceService(t)
		ctx := context.Background()
		kyc := &entity.KYCVerification{ID: uuid.New(), UserID: uuid.New(), Status: entity.KYCStatusPending}

		fx.kycRepo.EXPECT().FindVerificationByID(ctx, kyc.ID).Return(kyc, nil)
		fx.kycRepo.EXPECT().UpdateVerification(ctx, kyc).Return(nil)
		fx.profileRepo.EXPECT().UpdateKYCStatus(ctx, kyc.UserID, entity.KYCStatusApproved).Return(nil)
		fx.securityEventRepo.EXPECT().CreateSecurityEvent(ctx, mock.MatchedBy(func(e *entity.SecurityEvent) bool {
			return e.Type == entity.SecurityEventKYCReviewed && *e.UserID == kyc.UserID
		})).Return(nil)
		fx.notifier.EXPECT().EnqueueNotification(ctx, mock.MatchedBy(func(req *usecase.NotificationRequest) bool {
			return req.UserID == kyc.UserID && req.Type == entity.NotificationTypeKYC && req.Title == "Identity verified"
		})).Return(&entity.NotificationQueueItem{}, nil)

		reviewed, err := fx.service.ReviewKYC(ctx, admin, kyc.ID, true, "")

		require.NoError(t, err)
		assert.Equal(t, entity.KYCStatusApproved, reviewed.Status)
		assert.Equal(t, admin.ID, *reviewed.ReviewedBy)
		assert.Equal(t, fx.now, *reviewed.ReviewedAt)
	})

	t.Run("reject", func(t *testing.T) {
		fx := createTestComplianceService(t)
		ctx := context.Background()
		kyc := &entity.KYCVerification{ID: uuid.New(), UserID: uuid.New(), Status: entity.KYCStatusPending}

		fx.kycRepo.EXPECT().FindVerificationByID(ctx, kyc.ID).Return(kyc, nil)
		fx.kycRepo.EXPECT().UpdateVerification(ctx, kyc).Return(nil)
		fx.profileRepo.EXPECT().UpdateKYCStatus(ctx, kyc.UserID, entity.KYCStatusRejected).Return(nil)
		fx.securityEventRepo.EXPECT().CreateSecurityEvent(ctx, mock.Anything).Return(nil)
		fx.notifier.EXPECT().EnqueueNotification(ctx, mock.MatchedBy(func(req *usecase.NotificationRequest) bool {
			return req.Message == "Your identity document was rejected: photo is blurry"
		})).Return(&entity.NotificationQueueItem{}, nil)

		reviewed, err := fx.service.ReviewKYC(ctx, admin, kyc.ID, false, " photo is blurry ")

		require.NoError(t, err)
		assert.Equal(t, entity.KYCStatusRejected, reviewed.Status)
		assert.Equal(t, "photo is blurry", reviewed.RejectionReason)
	})

	t.Run("already reviewed", func(t *testing.T) {
		fx := createTestComplianceService(t)
		ctx := context.Background()
		kyc := &entity.KYCVerification{ID: uuid.New(), Status: entity.KYCStatusApproved}

		fx.kycRepo.EXPECT().FindVerificationByID(ctx, kyc.ID).Return(kyc, nil)

		_, err := fx.service.ReviewKYC(ctx, admin, kyc.ID, false, "second look")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	})

	t.Run("rejection needs reason", func(t *testing.T) {
		fx := createTestComplianceService(t)

		_, err := fx.service.ReviewKYC(context.Background(), admin, uuid.New(), false, "  ")

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("not an admin", func(t *testing.T) {
		fx := createTestComplianceService(t)

		_, err := fx.service.ReviewKYC(context.Background(), usecase.Actor{ID: uuid.New()}, uuid.New(), true, "")

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestComplianceService_RecordSecurityEvent_SwallowsErrors(t *testing.T) {
	fx := createTestComplianceService(t)
	ctx := context.Background()

	fx.securityEventRepo.EXPECT().CreateSecurityEvent(ctx, mock.MatchedBy(func(e *entity.SecurityEvent) bool {
		return e.Severity == entity.SeverityLow && e.CreatedAt.Equal(fx.now)
	})).Return(errors.New("db down"))

	assert.NotPanics(t, func() {
		fx.service.RecordSecurityEvent(ctx, &usecase.SecurityEventInput{Type: entity.SecurityEventRateLimited, IPAddress: "203.0.113.7"})
		fx.service.RecordSecurityEvent(ctx, nil)
	})
}

func TestComplianceService_ListSecurityEvents_ClampsPage(t *testing.T) {
	fx := createTestComplianceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.securityEventRepo.EXPECT().ListSecurityEvents(ctx, repository.SecurityEventFilter{UserID: &userID, Limit: 100, Offset: 0}).
		Return([]*entity.SecurityEvent{}, nil)

	_, err := fx.service.ListSecurityEvents(ctx, repository.SecurityEventFilter{UserID: &userID, Limit: 999, Offset: -3})

	require.NoError(t, err)
}

func TestComplianceService_GetKYCStatus_None(t *testing.T) {
	fx := createTestComplianceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.kycRepo.EXPECT().FindLatestVerificationByUser(ctx, userID).Return(nil, repository.ErrKYCNotFound)

	_, err := fx.service.GetKYCStatus(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrKYCNotFound)
}
