package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"expatmart/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), &buf
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("failed query", func(t *testing.T) {
		l, buf := newTestGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn(`SELECT * FROM "orders"`), errors.New("deadlock detected"))

		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "deadlock detected")
	})

	t.Run("record not found and cancellation are silent", func(t *testing.T) {
		l, buf := newTestGormLogger(true)
		l.Trace(ctx, time.Now(), sqlFn(`SELECT 1`), gorm.ErrRecordNotFound)
		l.Trace(ctx, time.Now(), sqlFn(`SELECT 1`), errors.Wrap(context.Canceled, "query"))

		assert.NotContains(t, buf.String(), "level=ERROR")
	})

	t.Run("slow query", func(t *testing.T) {
		l, buf := newTestGormLogger(false)
		l.Trace(ctx, time.Now().Add(-time.Second), sqlFn(`SELECT * FROM "listings"`), nil)

		assert.Contains(t, buf.String(), "Slow query")
	})

	t.Run("fast query only in debug", func(t *testing.T) {
		l, buf := newTestGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn(`SELECT 1`), nil)
		assert.Empty(t, buf.String())

		l, buf = newTestGormLogger(true)
		l.Trace(ctx, time.Now(), sqlFn(`SELECT 1`), nil)
		assert.Contains(t, buf.String(), "level=DEBUG")
	})
}

func TestRedactSQL(t *testing.T) {
	got := redactSQL(`insert INTO "kyc_verifications" ("document_url") VALUES ('kyc/passport.pdf')`)
	assert.Equal(t, `INSERT "kyc_verifications" [redacted]`, got)

	long := `SELECT * FROM "listings" WHERE title = '` + strings.Repeat("x", 3000) + `'`
	assert.LessOrEqual(t, len(redactSQL(long)), maxLoggedSQLLength+3)
}
