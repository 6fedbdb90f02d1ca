// Package storage keeps uploaded documents in a gocloud blob bucket.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"expatmart/config"
	"expatmart/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

// ErrDocumentNotFound is returned by Get for an unknown key.
var ErrDocumentNotFound = errors.New("document not found")

type blobStorage struct {
	bucket *blob.Bucket
	prefix string
}

// StorageParams holds dependencies for the document storage
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewDocumentStorage opens the bucket named by storage.bucketUrl, e.g.
// "file:///var/lib/expatmart/docs", "gs://bucket" or "s3://bucket?region=...".
// Without one, documents live in memory and vanish on restart.
func NewDocumentStorage(params StorageParams) (service.DocumentStorage, error) {
	bucketURL := defaultBucketURL
	prefix := ""
	if cfg := params.Config.Storage; cfg != nil {
		if cfg.BucketURL != "" {
			bucketURL = cfg.BucketURL
		}
		prefix = cfg.KYCPrefix
	}
	if bucketURL == defaultBucketURL {
		params.Logger.Warn("Document storage not configured, using in-memory bucket")
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStorage(bucket, prefix), nil
}

// NewBlobStorage stores documents in bucket under prefix.
func NewBlobStorage(bucket *blob.Bucket, prefix string) service.DocumentStorage {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return &blobStorage{bucket: bucket, prefix: prefix}
}

func (s *blobStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	objectKey, err := s.objectKey(key)
	if err != nil {
		return err
	}

	err = s.bucket.WriteAll(ctx, objectKey, data, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "failed to write %s", objectKey)
	}

	return nil
}

func (s *blobStorage) Get(ctx context.Context, key string) ([]byte, error) {
	objectKey, err := s.objectKey(key)
	if err != nil {
		return nil, err
	}

	data, err := s.bucket.ReadAll(ctx, objectKey)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, errors.Wrap(ErrDocumentNotFound, objectKey)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", objectKey)
	}

	return data, nil
}

// Delete is idempotent.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	objectKey, err := s.objectKey(key)
	if err != nil {
		return err
	}

	err = s.bucket.Delete(ctx, objectKey)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", objectKey)
	}

	return nil
}

func (s *blobStorage) objectKey(key string) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" || strings.Contains(key, "..") {
		return "", errors.Errorf("invalid document key %q", key)
	}

	return s.prefix + key, nil
}
