package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"expatmart/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_RoundTrip(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := NewBlobStorage(bucket, "kyc")
	ctx := context.Background()

	require.NoError(t, storage.Put(ctx, "user-1/passport.pdf", []byte("%PDF-1.7"), "application/pdf"))

	exists, err := bucket.Exists(ctx, "kyc/user-1/passport.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	attrs, err := bucket.Attributes(ctx, "kyc/user-1/passport.pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", attrs.ContentType)

	data, err := storage.Get(ctx, "/user-1/passport.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), data)

	require.NoError(t, storage.Delete(ctx, "user-1/passport.pdf"))
	require.NoError(t, storage.Delete(ctx, "user-1/passport.pdf"))

	_, err = storage.Get(ctx, "user-1/passport.pdf")
	assert.True(t, errors.Is(err, ErrDocumentNotFound))
}

func TestBlobStorage_RejectsInvalidKeys(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := NewBlobStorage(bucket, "")
	ctx := context.Background()

	for _, key := range []string{"", "/", "../etc/passwd", "a/../../b"} {
		assert.Error(t, storage.Put(ctx, key, []byte("x"), "text/plain"), key)
	}
}

func TestNewDocumentStorage_DefaultsToMemory(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	storage, err := NewDocumentStorage(StorageParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{Storage: &config.StorageConfig{KYCPrefix: "kyc/"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	lc.RequireStart()
	require.NoError(t, storage.Put(context.Background(), "doc", []byte("x"), "text/plain"))
	lc.RequireStop()
}

func TestNewDocumentStorage_BadURL(t *testing.T) {
	_, err := NewDocumentStorage(StorageParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{Storage: &config.StorageConfig{BucketURL: "nosuchscheme://bucket"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.Error(t, err)
}
