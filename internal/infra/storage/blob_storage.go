// Package storage stores uploaded files in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"appname/config"
	"appname/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	urlExpiry     time.Duration
}

// NewBlobStorage wraps an opened bucket as an AvatarStorage.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string, urlExpiry time.Duration) service.AvatarStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		urlExpiry:     urlExpiry,
	}
}

func (s *blobStorage) Put(ctx context.Context, key, contentType string, r io.Reader) (int64, error) {
	// Cancelling the writer's context before Close aborts the upload.
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to open writer for %s", key)
	}

	n, err := io.Copy(w, r)
	if err != nil {
		cancel()
		_ = w.Close()

		return 0, errors.Wrapf(err, "failed to write %s", key)
	}

	if err := w.Close(); err != nil {
		return 0, errors.Wrapf(err, "failed to commit %s", key)
	}

	return n, nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// URL signs the key when the bucket supports it and otherwise joins it to the
// configured public prefix.
func (s *blobStorage) URL(ctx context.Context, key string) (string, error) {
	signed, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{Expiry: s.urlExpiry})
	if err == nil {
		return signed, nil
	}
	if gcerrors.Code(err) != gcerrors.Unimplemented {
		return "", errors.Wrapf(err, "failed to sign url for %s", key)
	}
	if s.publicBaseURL == "" {
		return "", errors.Errorf("bucket cannot sign urls and no public base url is configured")
	}

	return s.publicBaseURL + "/" + (&url.URL{Path: key}).EscapedPath(), nil
}

// BucketParams holds dependencies for the avatar bucket, injected by Fx
type BucketParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewAvatarStorage opens the configured bucket and closes it on shutdown.
func NewAvatarStorage(params BucketParams) (service.AvatarStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil {
		cfg = &config.StorageConfig{}
	}

	bucketURL := cfg.BucketURL
	if bucketURL == "" {
		params.Logger.Warn("Storage bucket not configured, uploads are kept in memory")
		bucketURL = defaultBucketURL
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing storage bucket")

			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket, cfg.PublicBaseURL, cfg.SignedURLExpiry), nil
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAvatarStorage),
)
