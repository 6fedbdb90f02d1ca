package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB opens gorm on top of sqlmock and verifies every expectation on cleanup.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})

	return db, mock
}

func TestPoolWait(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	_, _, ok := poolWait(prev, prev)
	assert.False(t, ok)

	level, attrs, ok := poolWait(prev, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond})
	require.True(t, ok)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Equal(t, "waits", attrs[0].Key)
	assert.Equal(t, int64(2), attrs[0].Value.Int64())

	level, _, ok = poolWait(prev, sql.DBStats{WaitCount: 11, WaitDuration: 2 * time.Second})
	require.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)
}
