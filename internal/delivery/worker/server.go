package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"expatmart/config"
	"expatmart/internal/delivery"
	"expatmart/internal/delivery/middleware"
	"expatmart/internal/delivery/worker/handler"
	"expatmart/internal/delivery/worker/listener"
	"expatmart/internal/delivery/worker/scheduler"
	"expatmart/internal/domain/lifecycle"
	"expatmart/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg       *config.Config
	logger    *slog.Logger
	server    *echo.Echo
	scheduler *scheduler.Scheduler
	listener  *listener.Listener
	cancel    context.CancelFunc
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
	Scheduler   *scheduler.Scheduler
	Listener    *listener.Listener `optional:"true"`
	Metrics     *metrics.Metrics   `optional:"true"`
}

// NewServer creates the worker HTTP server and ties the scheduler and
// realtime listener to its lifecycle.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true

	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	if params.Metrics != nil && params.Cfg.Metrics != nil && params.Cfg.Metrics.Enabled {
		e.GET(params.Cfg.Metrics.Path, echo.WrapHandler(params.Metrics.Handler()))
	}

	// Pub/Sub push endpoint
	e.POST("/push", params.PushHandler.HandlePush)

	srv := &workerServer{
		cfg:       params.Cfg,
		logger:    params.Logger,
		server:    e,
		scheduler: params.Scheduler,
		listener:  params.Listener,
	}

	params.Lc.Append(fx.Hook{
		OnStart: srv.start,
		OnStop:  srv.stop,
	})

	return srv, nil
}

// start launches the background jobs; the HTTP listener is started by Serve.
func (s *workerServer) start(context.Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.scheduler.Start()

	if s.listener != nil {
		go func() {
			if err := s.listener.Run(ctx); err != nil {
				s.logger.Error("Realtime listener stopped", slog.Any("error", err))
			}
		}()
	}

	return nil
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker server and its jobs
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	if s.cancel != nil {
		s.cancel()
	}
	if err := s.scheduler.Stop(shutdownCtx); err != nil {
		s.logger.Warn("Scheduler did not stop cleanly", slog.Any("error", err))
	}

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
