package object

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotFound is returned by Open when no object exists at the key.
var ErrNotFound = errors.New("object not found")

// Info describes one stored object. CreatedAt carries whatever creation or
// modification timestamp the backend exposes.
type Info struct {
	Key       string
	CreatedAt time.Time
}

// Store is the contract for path-addressed binary storage. Keys use forward
// slashes regardless of backend. Put overwrites an existing key. ResolveURL
// returns a publicly reachable URL when the backend can make the object
// public, falling back to a time-limited signed URL. List returns the
// objects under a prefix in no guaranteed order; callers impose ordering.
type Store interface {
	Put(ctx context.Context, key string, contentType string, r io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	ResolveURL(ctx context.Context, key string) (string, error)
	List(ctx context.Context, prefix string) ([]Info, error)
}
