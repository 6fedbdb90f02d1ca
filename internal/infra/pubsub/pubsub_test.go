package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expatmart/config"
	"expatmart/internal/domain/constants"
	"expatmart/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishEvent(t *testing.T) {
	event := &service.MarketplaceEvent{
		RequestID:        "req-1",
		Type:             service.EventGroupBuyUpdated,
		SubjectID:        "deal-7",
		RecipientIDs:     []string{"a", "b"},
		NotificationType: "GROUP_BUY",
		Title:            "Deal confirmed",
		Message:          "Your group buy reached its target.",
		OccurredAt:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))

		var msg PushMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		assert.Equal(t, localSubscription, msg.Subscription)
		assert.NotEmpty(t, msg.Message.MessageID)
		assert.Equal(t, "group_buy.updated", msg.Message.Attributes[AttrEventType])
		assert.Equal(t, "req-1", msg.Message.Attributes[AttrRequestID])
		assert.Equal(t, "deal-7", msg.Message.Attributes[AttrSubjectID])
		assert.Equal(t, "group_buy.updated:deal-7", msg.Message.OrderingKey)

		data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
		require.NoError(t, err)
		var got service.MarketplaceEvent
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, *event, got)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, time.Second, testLogger())

	require.NoError(t, publisher.PublishEvent(context.Background(), event))
	require.NoError(t, publisher.Close())
}

func TestLocalHTTPPublisher_PublishEvent_WorkerRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, time.Second, testLogger())

	err := publisher.PublishEvent(context.Background(), &service.MarketplaceEvent{Type: service.EventNotificationFanout})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Error(t, publisher.PublishEvent(context.Background(), nil))
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
		noop    bool
	}{
		{name: "not configured", cfg: nil, noop: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "events"}, wantErr: "project ID"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)

			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: testLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			lc.RequireStart().RequireStop()

			if tt.noop {
				assert.ErrorIs(t, publisher.PublishEvent(context.Background(), &service.MarketplaceEvent{}), ErrPublisherDisabled)
			}
		})
	}
}
