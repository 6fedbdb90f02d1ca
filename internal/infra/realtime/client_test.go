package realtime

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"expatmart/config"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func testConfig(url string) *config.Config {
	return &config.Config{Supabase: &config.SupabaseConfig{
		URL:            url,
		ServiceRoleKey: "service-key",
		Realtime: config.RealtimeConfig{
			Enabled:           true,
			Schema:            "public",
			HeartbeatInterval: time.Hour,
			ReconnectDelay:    10 * time.Millisecond,
		},
	}}
}

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()

	client, err := NewClient(testConfig(url), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client
}

func TestWebsocketURL(t *testing.T) {
	tests := []struct {
		name    string
		project string
		want    string
		wantErr bool
	}{
		{name: "https", project: "https://abc.supabase.co", want: "wss://abc.supabase.co/realtime/v1/websocket?apikey=key&vsn=1.0.0"},
		{name: "http with trailing slash", project: "http://localhost:54321/", want: "ws://localhost:54321/realtime/v1/websocket?apikey=key&vsn=1.0.0"},
		{name: "unsupported scheme", project: "ftp://example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := websocketURL(tt.project, "key")
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewClient_RequiresURL(t *testing.T) {
	_, err := NewClient(&config.Config{Supabase: &config.SupabaseConfig{}}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.Error(t, err)
}

func TestClient_JoinMessages(t *testing.T) {
	client := newTestClient(t, "http://localhost")
	noop := func(context.Context, *Change) {}
	client.On("messages", "insert", noop)
	client.On("orders", "UPDATE", noop)
	client.On("messages", "DELETE", noop)

	msgs := client.joinMessages()

	require.Len(t, msgs, 2)
	assert.Equal(t, "realtime:public:messages", msgs[0].Topic)
	assert.Equal(t, "realtime:public:orders", msgs[1].Topic)
	assert.Equal(t, eventJoin, msgs[0].Event)
	assert.Equal(t, msgs[0].Ref, msgs[0].JoinRef)
	assert.NotEqual(t, msgs[0].Ref, msgs[1].Ref)

	cfg := msgs[0].Payload.(map[string]any)["config"].(map[string]any)
	changes := cfg["postgres_changes"].([]map[string]string)
	require.Len(t, changes, 2)
	assert.Equal(t, "INSERT", changes[0]["event"])
	assert.Equal(t, "DELETE", changes[1]["event"])
}

func TestClient_Dispatch(t *testing.T) {
	client := newTestClient(t, "http://localhost")

	var inserts, updates, all []*Change
	client.On("messages", "INSERT", func(_ context.Context, ch *Change) { inserts = append(inserts, ch) })
	client.On("orders", "UPDATE", func(_ context.Context, ch *Change) { updates = append(updates, ch) })
	client.On("orders", "*", func(_ context.Context, ch *Change) { all = append(all, ch) })

	ctx := context.Background()
	client.dispatch(ctx, []byte(`{"topic":"realtime:public:messages","event":"postgres_changes","payload":{"data":{"schema":"public","table":"messages","type":"INSERT","commit_timestamp":"2026-03-01T10:00:00Z","record":{"id":"m1","body":"hi"}}}}`))
	client.dispatch(ctx, []byte(`{"topic":"realtime:public:orders","event":"UPDATE","payload":{"schema":"public","table":"orders","type":"UPDATE","record":{"status":"DELIVERED"},"old_record":{"status":"FULFILLING"}}}`))
	client.dispatch(ctx, []byte(`{"topic":"realtime:public:orders","event":"phx_reply","payload":{"status":"ok","response":{}}}`))
	client.dispatch(ctx, []byte(`not json`))

	require.Len(t, inserts, 1)
	assert.Equal(t, "hi", inserts[0].Record.Get("body").String())
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), inserts[0].CommitTimestamp.UTC())

	require.Len(t, updates, 1)
	assert.Equal(t, "FULFILLING", updates[0].OldRecord.Get("status").String())
	assert.Len(t, all, 1)
}

func TestClient_Run(t *testing.T) {
	upgrader := websocket.Upgrader{}
	var connections atomic.Int32
	joined := make(chan string, 4)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/realtime/v1/websocket", r.URL.Path)
		assert.Equal(t, "service-key", r.URL.Query().Get("apikey"))

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		joined <- gjson.GetBytes(raw, "topic").String()

		// The first session drops right after joining to exercise reconnects.
		if connections.Add(1) == 1 {
			return
		}

		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"topic":"realtime:public:messages","event":"phx_reply","payload":{"status":"ok"},"ref":"1"}`))
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"topic":"realtime:public:messages","event":"postgres_changes","payload":{"data":{"schema":"public","table":"messages","type":"INSERT","record":{"id":"m1"}}}}`))

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	received := make(chan *Change, 1)
	client.On("messages", "INSERT", func(_ context.Context, ch *Change) { received <- ch })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- client.Run(ctx) }()

	select {
	case ch := <-received:
		assert.Equal(t, "m1", ch.Record.Get("id").String())
	case <-time.After(5 * time.Second):
		t.Fatal("no change received")
	}

	assert.Equal(t, "realtime:public:messages", <-joined)
	assert.Equal(t, "realtime:public:messages", <-joined)
	assert.GreaterOrEqual(t, connections.Load(), int32(2))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
}
