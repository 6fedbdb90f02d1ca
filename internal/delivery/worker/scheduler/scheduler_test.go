package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"expatmart/config"
	mockUsecase "expatmart/internal/mocks/usecase"
	"expatmart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	scheduler      *Scheduler
	notificationUC *mockUsecase.MockNotificationUsecase
	escrowUC       *mockUsecase.MockEscrowUsecase
	groupBuyUC     *mockUsecase.MockGroupBuyUsecase
}

func testConfig() *config.Config {
	return &config.Config{
		Notifications: &config.NotificationsConfig{BatchSize: 25},
		Scheduler: &config.SchedulerConfig{
			NotificationQueue: "@every 10s",
			EscrowAutoRelease: "@every 15m",
			GroupBuyExpiry:    "*/5 * * * *",
		},
	}
}

func newFixture(t *testing.T, cfg *config.Config) (*fixture, error) {
	t.Helper()

	fx := &fixture{
		notificationUC: mockUsecase.NewMockNotificationUsecase(t),
		escrowUC:       mockUsecase.NewMockEscrowUsecase(t),
		groupBuyUC:     mockUsecase.NewMockGroupBuyUsecase(t),
	}

	s, err := New(Params{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: fx.notificationUC,
		EscrowUC:       fx.escrowUC,
		GroupBuyUC:     fx.groupBuyUC,
	})
	fx.scheduler = s

	return fx, err
}

func TestNew_RegistersEveryJob(t *testing.T) {
	fx, err := newFixture(t, testConfig())
	require.NoError(t, err)

	assert.Len(t, fx.scheduler.cron.Entries(), 3)
}

func TestNew_InvalidSpec(t *testing.T) {
	cfg := testConfig()
	cfg.Scheduler.EscrowAutoRelease = "every now and then"

	_, err := newFixture(t, cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), JobEscrowAutoRelease)
}

func TestScheduler_Jobs(t *testing.T) {
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	t.Run("queue uses the configured batch size", func(t *testing.T) {
		fx, err := newFixture(t, testConfig())
		require.NoError(t, err)
		fx.notificationUC.EXPECT().
			ProcessQueue(mock.Anything, 25).
			Return(&usecase.QueueStats{Claimed: 3, Sent: 2, Retried: 1}, nil)

		require.NoError(t, fx.scheduler.processQueue(context.Background()))
	})

	t.Run("escrow auto release uses the clock", func(t *testing.T) {
		fx, err := newFixture(t, testConfig())
		require.NoError(t, err)
		fx.scheduler.now = func() time.Time { return now }
		fx.escrowUC.EXPECT().AutoReleaseDue(mock.Anything, now).Return(2, nil)

		require.NoError(t, fx.scheduler.autoReleaseEscrow(context.Background()))
	})

	t.Run("group buy expiry error is returned", func(t *testing.T) {
		fx, err := newFixture(t, testConfig())
		require.NoError(t, err)
		fx.scheduler.now = func() time.Time { return now }
		fx.groupBuyUC.EXPECT().ExpireDeals(mock.Anything, now).Return(0, errors.New("db down"))

		require.Error(t, fx.scheduler.expireGroupBuys(context.Background()))
	})
}

func TestScheduler_WrapSwallowsErrors(t *testing.T) {
	fx, err := newFixture(t, testConfig())
	require.NoError(t, err)

	var gotCtx context.Context
	job := fx.scheduler.wrap("sample", func(ctx context.Context) error {
		gotCtx = ctx

		return errors.New("boom")
	})

	assert.NotPanics(t, job)
	assert.Equal(t, fx.scheduler.ctx, gotCtx)
}

func TestScheduler_StartStop(t *testing.T) {
	fx, err := newFixture(t, testConfig())
	require.NoError(t, err)

	fx.scheduler.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, fx.scheduler.Stop(ctx))
	assert.Error(t, fx.scheduler.ctx.Err())
}
