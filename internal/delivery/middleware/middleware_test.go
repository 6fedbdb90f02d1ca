package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"expatmart/config"
	deliverycontext "expatmart/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "reuses a client id", header: "req-123_abc", wantSame: true},
		{name: "generates when missing", header: ""},
		{name: "replaces ids with spaces", header: "req 123"},
		{name: "replaces oversized ids", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			err := mw.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, ctxID)
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				_, parseErr := uuid.Parse(got)
				assert.NoError(t, parseErr)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	newLogger := func(debug bool) (*LoggerMiddleware, *bytes.Buffer) {
		var buf bytes.Buffer
		cfg := &config.Config{Metrics: &config.MetricsConfig{Path: "/metrics"}}
		cfg.Env.Debug = debug

		return NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg), &buf
	}

	serve := func(m *LoggerMiddleware, path string, handler echo.HandlerFunc) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), httptest.NewRecorder())
		_ = m.Handle(handler)(c)
	}

	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	boom := func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway, "upstream") }

	t.Run("debug logs requests with the caller", func(t *testing.T) {
		m, buf := newLogger(true)
		userID := uuid.New()

		serve(m, "/api/v1/listings", func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(deliverycontext.WithUserID(req.Context(), userID)))

			return c.NoContent(http.StatusOK)
		})

		assert.Contains(t, buf.String(), "uri=/api/v1/listings")
		assert.Contains(t, buf.String(), "user_id="+userID.String())
	})

	t.Run("debug skips health checks", func(t *testing.T) {
		m, buf := newLogger(true)

		serve(m, "/health", ok)
		serve(m, "/metrics", ok)

		assert.Empty(t, buf.String())
	})

	t.Run("production logs only server errors", func(t *testing.T) {
		m, buf := newLogger(false)

		serve(m, "/api/v1/listings", ok)
		assert.Empty(t, buf.String())

		serve(m, "/api/v1/listings", boom)
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "status=502")
	})
}
