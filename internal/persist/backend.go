// Package persist stores the task collection in a key-value backend.
package persist

import (
	"context"
	"errors"
)

// DefaultKey is the storage key the collection is written under.
const DefaultKey = "tasks"

// ErrQuotaExceeded is returned by backends that refuse a write because it
// would exceed their capacity.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Backend defines the key-value operations the adapter needs.
// Values are opaque serialized text blobs.
// The adapter never imports a concrete backend directly.
type Backend interface {
	// Get returns the value stored under key.
	// ok is false if the key has never been written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key, value string) error

	// Close releases any resources held by the backend.
	Close() error
}
