package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"expatmart/config"
	"expatmart/internal/delivery"
	apimiddleware "expatmart/internal/delivery/api/middleware"
	"expatmart/internal/delivery/api/router"
	"expatmart/internal/delivery/api/validator"
	"expatmart/internal/delivery/middleware"
	"expatmart/internal/domain/lifecycle"
	"expatmart/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Metrics `optional:"true"`
	RouterParams router.RouterParams
}

// NewServer builds the public API. Upload routes skip the global body limit
// because document handlers enforce their own.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	cfg := params.Cfg

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	applyTimeouts(e.Server, cfg.HTTP.Timeouts)

	e.Use(middlewareChain(params)...)
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(e)
	r.RegisterTestRoutes(e)

	srv := &apiServer{
		cfg:    cfg,
		logger: params.Logger.With(slog.String("server", "api")),
		server: e,
	}

	limiterCtx, stopLimiter := context.WithCancel(context.Background())
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if limiter := params.RouterParams.RateLimiter; limiter != nil {
				go limiter.Run(limiterCtx)
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopLimiter()

			return srv.stop(ctx)
		},
	})

	return srv, nil
}

// middlewareChain orders the global middleware. Request IDs must exist before
// the logger runs, and metrics sit inside the logger so it sees rendered errors.
func middlewareChain(params ServerParams) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
	}
	if params.Metrics != nil {
		chain = append(chain, apimiddleware.NewMetricsMiddleware(params.Metrics).Handle)
	}

	return append(chain,
		echomiddleware.CORS(),
		echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
			Skipper: router.IsUploadRoute,
			Limit:   params.Cfg.HTTP.MaxRequestBodySize,
		}),
	)
}

func applyTimeouts(server *http.Server, timeouts config.HTTPTimeouts) {
	server.ReadTimeout = timeouts.ReadTimeout
	server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	server.WriteTimeout = timeouts.WriteTimeout
	server.IdleTimeout = timeouts.IdleTimeout
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Listening", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
