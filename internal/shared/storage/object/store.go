package object

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Open when no object exists under the key.
var ErrNotFound = errors.New("object not found")

// ObjectStore defines the contract for saving and retrieving keyed objects.
type ObjectStore interface {
	// Put replaces the object at key with the reader's contents.
	Put(ctx context.Context, key string, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// List returns keys matching a doublestar pattern, relative to the store root.
	List(ctx context.Context, pattern string) ([]string, error)
}
