// Package pubsub publishes marketplace events for the worker.
package pubsub

import (
	"context"
	"log/slog"

	"expatmart/config"
	"expatmart/internal/domain/constants"
	"expatmart/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrPublisherDisabled is returned by the no-op publisher so callers queue
// the notifications themselves.
var ErrPublisherDisabled = errors.New("event publishing disabled")

type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishEvent(ctx context.Context, event *service.MarketplaceEvent) error {
	if event != nil {
		p.logger.DebugContext(ctx, "[NoopPubSub] Event dropped", slog.String("event_type", string(event.Type)))
	}

	return ErrPublisherDisabled
}

func (p *noopPublisher) Close() error {
	return nil
}

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the transport from pubsub.provider. An empty
// provider disables publishing.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, events fall back to the notification queue")

		return &noopPublisher{logger: logger}, nil
	}

	publisher, err := buildPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Event publisher ready",
		slog.String("provider", cfg.Provider),
		slog.String("topic_id", cfg.TopicID),
		slog.Bool("ordering", cfg.OrderingEnabled),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func buildPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, cfg.PublishTimeout, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
