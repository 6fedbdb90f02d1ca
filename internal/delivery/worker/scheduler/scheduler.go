// Package scheduler runs the worker's periodic jobs.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"expatmart/config"
	"expatmart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const (
	JobNotificationQueue = "notification_queue"
	JobEscrowAutoRelease = "escrow_auto_release"
	JobGroupBuyExpiry    = "group_buy_expiry"
)

// Scheduler wraps a cron runner. Overlapping runs of the same job are skipped.
type Scheduler struct {
	cron      *cron.Cron
	logger    *slog.Logger
	batchSize int
	now       func() time.Time

	notificationUC usecase.NotificationUsecase
	escrowUC       usecase.EscrowUsecase
	groupBuyUC     usecase.GroupBuyUsecase

	ctx    context.Context
	cancel context.CancelFunc
}

// Params holds dependencies for the Scheduler
type Params struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
	EscrowUC       usecase.EscrowUsecase
	GroupBuyUC     usecase.GroupBuyUsecase
}

// New registers every job. An invalid cron spec is a startup error.
func New(params Params) (*Scheduler, error) {
	cronLogger := &slogAdapter{logger: params.Logger}
	ctx, cancel := context.WithCancel(context.Background())

	s := &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		logger:         params.Logger,
		batchSize:      params.Config.Notifications.BatchSize,
		now:            time.Now,
		notificationUC: params.NotificationUC,
		escrowUC:       params.EscrowUC,
		groupBuyUC:     params.GroupBuyUC,
		ctx:            ctx,
		cancel:         cancel,
	}

	jobs := []struct {
		name string
		spec string
		run  func(context.Context) error
	}{
		{JobNotificationQueue, params.Config.Scheduler.NotificationQueue, s.processQueue},
		{JobEscrowAutoRelease, params.Config.Scheduler.EscrowAutoRelease, s.autoReleaseEscrow},
		{JobGroupBuyExpiry, params.Config.Scheduler.GroupBuyExpiry, s.expireGroupBuys},
	}
	for _, job := range jobs {
		if _, err := s.cron.AddFunc(job.spec, s.wrap(job.name, job.run)); err != nil {
			cancel()

			return nil, errors.Wrapf(err, "invalid schedule %q for job %s", job.spec, job.name)
		}
	}

	return s, nil
}

// Start runs the jobs in the background.
func (s *Scheduler) Start() {
	s.logger.Info("Starting scheduler", slog.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()
}

// Stop cancels running jobs and waits for them to return or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	stopped := s.cron.Stop()

	select {
	case <-stopped.Done():
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "scheduler jobs did not finish")
	}
}

func (s *Scheduler) wrap(name string, run func(context.Context) error) func() {
	return func() {
		start := time.Now()
		if err := run(s.ctx); err != nil {
			s.logger.Error("Scheduled job failed",
				slog.String("job", name),
				slog.Duration("duration", time.Since(start)),
				slog.Any("error", err),
			)
		}
	}
}

func (s *Scheduler) processQueue(ctx context.Context) error {
	stats, err := s.notificationUC.ProcessQueue(ctx, s.batchSize)
	if err != nil {
		return err
	}

	if stats != nil && stats.Claimed > 0 {
		s.logger.Info("Notification queue processed",
			slog.Int("claimed", stats.Claimed),
			slog.Int("sent", stats.Sent),
			slog.Int("retried", stats.Retried),
			slog.Int("failed", stats.Failed),
		)
	}

	return nil
}

func (s *Scheduler) autoReleaseEscrow(ctx context.Context) error {
	released, err := s.escrowUC.AutoReleaseDue(ctx, s.now())
	if err != nil {
		return err
	}

	if released > 0 {
		s.logger.Info("Escrow accounts auto-released", slog.Int("count", released))
	}

	return nil
}

func (s *Scheduler) expireGroupBuys(ctx context.Context) error {
	expired, err := s.groupBuyUC.ExpireDeals(ctx, s.now())
	if err != nil {
		return err
	}

	if expired > 0 {
		s.logger.Info("Group buy deals expired", slog.Int("count", expired))
	}

	return nil
}

// slogAdapter satisfies cron.Logger. Routine scheduling chatter goes to debug.
type slogAdapter struct {
	logger *slog.Logger
}

func (a *slogAdapter) Info(msg string, keysAndValues ...any) {
	a.logger.Debug("cron: "+msg, keysAndValues...)
}

func (a *slogAdapter) Error(err error, msg string, keysAndValues ...any) {
	a.logger.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
