package pubsub

import (
	"context"
	"log/slog"
	"time"

	"expatmart/config"
	"expatmart/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	ordered   bool
	timeout   time.Duration
	logger    *slog.Logger
}

// NewGooglePubSubPublisher fails when the topic does not exist; topics are
// provisioned outside the service.
func NewGooglePubSubPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topic := "projects/" + cfg.ProjectID + "/topics/" + cfg.TopicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", cfg.TopicID)
	}

	publisher := client.Publisher(cfg.TopicID)
	publisher.EnableMessageOrdering = cfg.OrderingEnabled

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		ordered:   cfg.OrderingEnabled,
		timeout:   cfg.PublishTimeout,
		logger:    logger.With(slog.String("topic_id", cfg.TopicID)),
	}, nil
}

func (p *googlePubSubPublisher) PublishEvent(ctx context.Context, event *service.MarketplaceEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	msg := &pubsub.Message{Data: data, Attributes: attributes}
	if p.ordered {
		msg.OrderingKey = event.OrderingKey()
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	serverID, err := p.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		// A failed ordered publish pauses its key until resumed.
		if msg.OrderingKey != "" {
			p.publisher.ResumePublish(msg.OrderingKey)
		}

		return errors.Wrapf(err, "failed to publish %s", event.Type)
	}

	p.logger.DebugContext(ctx, "[GooglePubSub] Event published",
		slog.String("event_type", string(event.Type)),
		slog.String("subject_id", event.SubjectID),
		slog.Int("recipient_count", len(event.RecipientIDs)),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages before closing the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.Wrap(p.client.Close(), "failed to close pubsub client")
}
