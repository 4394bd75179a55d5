// Package storage keeps uploaded reservation documents in a gocloud blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"funnel/config"
	"funnel/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets when no bucket is configured
)

const defaultBucketURL = "mem://"

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// NewBlobStorage wraps an opened bucket. References are publicBaseURL joined with the
// object key, or the bare key when publicBaseURL is empty.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.DocumentStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload streams r into the bucket under key.
func (s *blobStorage) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	// Cancelling the writer context aborts the write instead of committing a partial object.
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "open writer for %s", key)
	}

	written, err := io.Copy(w, r)
	if err != nil {
		cancel()
		_ = w.Close()

		return "", errors.Wrapf(err, "write %s", key)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "commit %s", key)
	}

	s.logger.InfoContext(ctx, "[Storage] Document stored",
		slog.String("key", key),
		slog.Int64("bytes", written),
	)

	return s.reference(key)
}

func (s *blobStorage) reference(key string) (string, error) {
	if s.publicBaseURL == "" {
		return key, nil
	}

	ref, err := url.JoinPath(s.publicBaseURL, key)
	if err != nil {
		return "", errors.Wrap(err, "build document reference")
	}

	return ref, nil
}

// Params holds dependencies for DocumentStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and registers its shutdown.
func New(params Params) (service.DocumentStorage, error) {
	bucketURL := defaultBucketURL
	publicBaseURL := ""
	if params.Config.Storage != nil {
		if params.Config.Storage.BucketURL != "" {
			bucketURL = params.Config.Storage.BucketURL
		}
		publicBaseURL = params.Config.Storage.PublicBaseURL
	}
	if bucketURL == defaultBucketURL {
		params.Logger.Warn("Document bucket not configured, uploads are kept in memory")
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStorage(bucket, publicBaseURL, params.Logger), nil
}
