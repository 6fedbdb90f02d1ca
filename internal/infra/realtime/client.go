// Package realtime subscribes to postgres row changes over the Supabase
// Realtime websocket (Phoenix channel protocol).
package realtime

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"expatmart/config"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const (
	protocolVersion = "1.0.0"
	writeTimeout    = 10 * time.Second

	eventJoin            = "phx_join"
	eventReply           = "phx_reply"
	eventError           = "phx_error"
	eventClose           = "phx_close"
	eventHeartbeat       = "heartbeat"
	eventPostgresChanges = "postgres_changes"
)

// Change is one row change delivered by the server.
type Change struct {
	Schema          string
	Table           string
	Type            string // INSERT, UPDATE or DELETE
	CommitTimestamp time.Time
	Record          gjson.Result
	OldRecord       gjson.Result
}

// Handler consumes changes. Handlers run on the read loop, one at a time.
type Handler func(ctx context.Context, change *Change)

type binding struct {
	table   string
	event   string
	handler Handler
}

type message struct {
	Topic   string `json:"topic"`
	Event   string `json:"event"`
	Payload any    `json:"payload"`
	Ref     string `json:"ref"`
	JoinRef string `json:"join_ref,omitempty"`
}

// Client keeps a websocket session open, rejoining every bound table after a reconnect.
type Client struct {
	url       string
	apiKey    string
	schema    string
	heartbeat time.Duration
	reconnect time.Duration
	dialer    *websocket.Dialer
	logger    *slog.Logger

	mu       sync.RWMutex
	bindings []binding
	ref      atomic.Uint64
}

// NewClient derives the websocket endpoint from the Supabase project URL.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.Supabase == nil || cfg.Supabase.URL == "" {
		return nil, errors.New("supabase url is required for realtime")
	}

	apiKey := cfg.Supabase.ServiceRoleKey
	if apiKey == "" {
		apiKey = cfg.Supabase.AnonKey
	}

	endpoint, err := websocketURL(cfg.Supabase.URL, apiKey)
	if err != nil {
		return nil, err
	}

	rt := cfg.Supabase.Realtime

	return &Client{
		url:       endpoint,
		apiKey:    apiKey,
		schema:    rt.Schema,
		heartbeat: rt.HeartbeatInterval,
		reconnect: rt.ReconnectDelay,
		dialer:    &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
		logger:    logger,
	}, nil
}

func websocketURL(projectURL, apiKey string) (string, error) {
	u, err := url.Parse(projectURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid supabase url")
	}

	switch u.Scheme {
	case "https", "wss":
		u.Scheme = "wss"
	case "http", "ws":
		u.Scheme = "ws"
	default:
		return "", errors.Errorf("unsupported supabase url scheme %q", u.Scheme)
	}

	u.Path = strings.TrimRight(u.Path, "/") + "/realtime/v1/websocket"
	query := url.Values{}
	query.Set("apikey", apiKey)
	query.Set("vsn", protocolVersion)
	u.RawQuery = query.Encode()

	return u.String(), nil
}

// On binds handler to changes of table. event is INSERT, UPDATE, DELETE or "*".
// Bindings must be registered before Run.
func (c *Client) On(table, event string, handler Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.bindings = append(c.bindings, binding{table: table, event: strings.ToUpper(event), handler: handler})
}

// Run keeps a session open until ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	for {
		err := c.session(ctx)
		if ctx.Err() != nil {
			return nil
		}

		c.logger.Warn("Realtime connection lost, reconnecting",
			slog.Any("error", err),
			slog.Duration("delay", c.reconnect),
		)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(c.reconnect):
		}
	}
}

func (c *Client) session(ctx context.Context) error {
	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return errors.Wrap(err, "failed to dial realtime")
	}

	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Closing the socket unblocks ReadMessage.
	go func() {
		<-sessionCtx.Done()
		_ = conn.Close()
	}()

	var writeMu sync.Mutex
	write := func(msg *message) error {
		writeMu.Lock()
		defer writeMu.Unlock()

		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))

		return errors.WithStack(conn.WriteJSON(msg))
	}

	for _, msg := range c.joinMessages() {
		if err := write(msg); err != nil {
			return errors.Wrapf(err, "failed to join %s", msg.Topic)
		}
	}
	c.logger.Info("Realtime connected", slog.String("schema", c.schema))

	go func() {
		ticker := time.NewTicker(c.heartbeat)
		defer ticker.Stop()

		for {
			select {
			case <-sessionCtx.Done():
				return
			case <-ticker.C:
				if err := write(&message{Topic: "phoenix", Event: eventHeartbeat, Payload: map[string]any{}, Ref: c.nextRef()}); err != nil {
					c.logger.Warn("Realtime heartbeat failed", slog.Any("error", err))
					cancel()

					return
				}
			}
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return errors.Wrap(err, "realtime read failed")
		}
		c.dispatch(sessionCtx, raw)
	}
}

func (c *Client) nextRef() string {
	return strconv.FormatUint(c.ref.Add(1), 10)
}

func (c *Client) topic(table string) string {
	return "realtime:" + c.schema + ":" + table
}

// joinMessages builds one phx_join per table, in first-bound order.
func (c *Client) joinMessages() []*message {
	c.mu.RLock()
	defer c.mu.RUnlock()

	changes := make(map[string][]map[string]string)
	var tables []string
	for _, b := range c.bindings {
		if _, ok := changes[b.table]; !ok {
			tables = append(tables, b.table)
		}
		changes[b.table] = append(changes[b.table], map[string]string{
			"event":  b.event,
			"schema": c.schema,
			"table":  b.table,
		})
	}

	msgs := make([]*message, 0, len(tables))
	for _, table := range tables {
		ref := c.nextRef()
		msgs = append(msgs, &message{
			Topic: c.topic(table),
			Event: eventJoin,
			Payload: map[string]any{
				"config": map[string]any{
					"broadcast":        map[string]any{"self": false},
					"presence":         map[string]any{"key": ""},
					"postgres_changes": changes[table],
				},
				"access_token": c.apiKey,
			},
			Ref:     ref,
			JoinRef: ref,
		})
	}

	return msgs
}

func (c *Client) dispatch(ctx context.Context, raw []byte) {
	if !gjson.ValidBytes(raw) {
		c.logger.Warn("Realtime sent an invalid frame")

		return
	}

	frame := gjson.ParseBytes(raw)
	topic := frame.Get("topic").String()

	var data gjson.Result
	switch event := frame.Get("event").String(); event {
	case eventReply:
		if status := frame.Get("payload.status").String(); status != "ok" {
			c.logger.Warn("Realtime request rejected",
				slog.String("topic", topic),
				slog.String("status", status),
				slog.String("response", frame.Get("payload.response").Raw),
			)
		}

		return
	case eventError, eventClose:
		c.logger.Warn("Realtime channel closed", slog.String("topic", topic), slog.String("event", event))

		return
	case eventPostgresChanges:
		data = frame.Get("payload.data")
	case "INSERT", "UPDATE", "DELETE":
		data = frame.Get("payload")
	default:
		return
	}

	change := parseChange(data)
	if change.Table == "" {
		return
	}

	c.mu.RLock()
	bindings := c.bindings
	c.mu.RUnlock()

	for _, b := range bindings {
		if b.table == change.Table && (b.event == "*" || b.event == change.Type) {
			b.handler(ctx, change)
		}
	}
}

func parseChange(data gjson.Result) *Change {
	change := &Change{
		Schema:    data.Get("schema").String(),
		Table:     data.Get("table").String(),
		Type:      strings.ToUpper(data.Get("type").String()),
		Record:    data.Get("record"),
		OldRecord: data.Get("old_record"),
	}
	if ts := data.Get("commit_timestamp"); ts.Exists() {
		change.CommitTimestamp = ts.Time()
	}

	return change
}
