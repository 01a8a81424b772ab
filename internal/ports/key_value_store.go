package ports

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KeyValueStore.Get for unset keys.
var ErrKeyNotFound = errors.New("key not found")

// Port: a string key-value store, the server-side counterpart of browser
// local storage.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
