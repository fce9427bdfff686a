package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"appname/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestBlobStorage_PutAndDelete(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := NewBlobStorage(bucket, "https://cdn.example.com/media/", time.Hour)
	ctx := context.Background()

	n, err := storage.Put(ctx, "avatars/u1/a.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(9), n)

	attrs, err := bucket.Attributes(ctx, "avatars/u1/a.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	require.NoError(t, storage.Delete(ctx, "avatars/u1/a.png"))

	exists, err := bucket.Exists(ctx, "avatars/u1/a.png")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a missing object is not an error
	assert.NoError(t, storage.Delete(ctx, "avatars/u1/a.png"))
}

func TestBlobStorage_PutFailureLeavesNoObject(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := NewBlobStorage(bucket, "", time.Hour)
	ctx := context.Background()

	_, err := storage.Put(ctx, "avatars/u1/broken.png", "image/png", failingReader{})
	require.Error(t, err)

	exists, err := bucket.Exists(ctx, "avatars/u1/broken.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorage_URL(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	ctx := context.Background()

	storage := NewBlobStorage(bucket, "https://cdn.example.com/media/", time.Hour)
	url, err := storage.URL(ctx, "avatars/u1/a b.png")
	require.NoError(t, err)
	assert.NotEmpty(t, url)

	if strings.HasPrefix(url, "https://cdn.example.com/media/") {
		assert.Equal(t, "https://cdn.example.com/media/avatars/u1/a%20b.png", url)
	}
}

func TestNewAvatarStorage_DefaultsToMemory(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	storage, err := NewAvatarStorage(BucketParams{
		Lc:     lc,
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	_, err = storage.Put(context.Background(), "avatars/u1/a.png", "image/png", strings.NewReader("x"))
	require.NoError(t, err)

	lc.RequireStart().RequireStop()
}

func TestNewAvatarStorage_InvalidURL(t *testing.T) {
	_, err := NewAvatarStorage(BucketParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Storage: &config.StorageConfig{BucketURL: "nosuchscheme://bucket"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}
