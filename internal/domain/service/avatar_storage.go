package service

import (
	"context"
	"io"
)

// AvatarStorage stores uploaded avatar images by key.
type AvatarStorage interface {
	// Put writes the content under key and returns the number of bytes stored.
	Put(ctx context.Context, key, contentType string, r io.Reader) (int64, error)

	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// URL returns a location the object can be fetched from.
	URL(ctx context.Context, key string) (string, error)
}
