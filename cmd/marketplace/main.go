package main

import (
	"context"
	"log/slog"
	"os"

	"expatmart/config"
	"expatmart/internal/delivery"
	"expatmart/internal/delivery/api"
	"expatmart/internal/delivery/api/middleware"
	"expatmart/internal/delivery/api/router/handler"
	"expatmart/internal/domain/service"
	"expatmart/internal/infra/auth"
	"expatmart/internal/infra/exchange"
	logs "expatmart/internal/infra/log"
	"expatmart/internal/infra/metrics"
	"expatmart/internal/infra/notification"
	"expatmart/internal/infra/payment"
	"expatmart/internal/infra/persistence/postgres"
	"expatmart/internal/infra/pubsub"
	"expatmart/internal/infra/qrcode"
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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
			exchange.NewRedisClient,
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
			postgres.NewListingRepository,
			postgres.NewSearchQueryRepository,
			postgres.NewVendorRepository,
			postgres.NewProductRepository,
			postgres.NewServiceRepository,
			postgres.NewGroupBuyRepository,
			postgres.NewOrderRepository,
			postgres.NewPaymentRepository,
			postgres.NewEscrowRepository,
			postgres.NewKYCRepository,
			postgres.NewSecurityEventRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newFirebaseService,
			newQRCodeService,
			notification.NewTemplateRenderer,
			payment.NewGatewayResolver,
			exchange.NewRateCache,
			exchange.NewRateProvider,
			storage.NewDocumentStorage,
		),
		channelSenders(),
	)
}

// channelSenders registers one sender per notification channel.
func channelSenders() fx.Option {
	group := fx.ResultTags(`group:"channel_senders"`)

	return fx.Provide(
		fx.Annotate(notification.NewEmailSender, group),
		fx.Annotate(notification.NewSMSSender, group),
		fx.Annotate(notification.NewPushSender, group),
		fx.Annotate(notification.NewInAppSender, group),
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

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewDeviceService,
			impl.NewNotificationService,
			impl.NewInboxService,
			impl.NewCurrencyService,
			impl.NewListingService,
			impl.NewVendorService,
			impl.NewProductService,
			impl.NewBookingService,
			impl.NewGroupBuyService,
			impl.NewOrderService,
			impl.NewPaymentService,
			impl.NewEscrowService,
			impl.NewComplianceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			newRateLimiter,
		),
	)
}

// newRateLimiter returns nil when rate limiting is disabled.
func newRateLimiter(cfg *config.Config, compliance usecase.ComplianceUsecase, logger *slog.Logger) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit, compliance, logger)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewTestHandler,
			handler.NewProfileHandler,
			handler.NewDeviceHandler,
			handler.NewListingHandler,
			handler.NewVendorHandler,
			handler.NewOrderHandler,
			handler.NewPaymentHandler,
			handler.NewEscrowHandler,
			handler.NewBookingHandler,
			handler.NewGroupBuyHandler,
			handler.NewNotificationHandler,
			handler.NewComplianceHandler,
			handler.NewCurrencyHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
