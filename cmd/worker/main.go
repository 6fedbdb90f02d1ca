package main

import (
	"context"
	"log/slog"
	"os"

	"expatmart/config"
	"expatmart/internal/delivery"
	"expatmart/internal/delivery/worker"
	"expatmart/internal/delivery/worker/handler"
	"expatmart/internal/delivery/worker/listener"
	"expatmart/internal/delivery/worker/scheduler"
	"expatmart/internal/domain/repository"
	"expatmart/internal/domain/service"
	"expatmart/internal/infra/auth"
	logs "expatmart/internal/infra/log"
	"expatmart/internal/infra/metrics"
	"expatmart/internal/infra/notification"
	"expatmart/internal/infra/persistence/postgres"
	"expatmart/internal/infra/pubsub"
	"expatmart/internal/infra/realtime"
	"expatmart/internal/infra/storage"
	"expatmart/internal/usecase"
	"expatmart/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			metrics.New,
			metrics.NewRecorder,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewProfileRepository,
			postgres.NewDeviceRepository,
			postgres.NewNotificationRepository,
			postgres.NewNotificationPreferenceRepository,
			postgres.NewNotificationTemplateRepository,
			postgres.NewNotificationQueueRepository,
			postgres.NewVendorRepository,
			postgres.NewProductRepository,
			postgres.NewGroupBuyRepository,
			postgres.NewEscrowRepository,
			postgres.NewKYCRepository,
			postgres.NewSecurityEventRepository,
		),
	)
}

func injectService() fx.Option {
	group := fx.ResultTags(`group:"channel_senders"`)

	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			newFirebaseService,
			notification.NewTemplateRenderer,
			storage.NewDocumentStorage,
			fx.Annotate(notification.NewEmailSender, group),
			fx.Annotate(notification.NewSMSSender, group),
			fx.Annotate(notification.NewPushSender, group),
			fx.Annotate(notification.NewInAppSender, group),
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.PushService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
			impl.NewComplianceService,
			impl.NewEscrowService,
			impl.NewGroupBuyService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			scheduler.New,
			newListener,
		),
	)
}

// newListener returns nil when realtime is disabled.
func newListener(
	cfg *config.Config,
	notificationUC usecase.NotificationUsecase,
	queueRepo repository.NotificationQueueRepository,
	logger *slog.Logger,
) (*listener.Listener, error) {
	if cfg.Supabase == nil || !cfg.Supabase.Realtime.Enabled {
		logger.Info("Realtime listener disabled")

		return nil, nil
	}

	client, err := realtime.NewClient(cfg, logger)
	if err != nil {
		return nil, err
	}

	return listener.New(listener.Params{
		Client:         client,
		NotificationUC: notificationUC,
		QueueRepo:      queueRepo,
		Logger:         logger,
	}), nil
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
