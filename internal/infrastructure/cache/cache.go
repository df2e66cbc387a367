package cache

import (
	"context"
	"time"
)

// Store is a key-value cache with per-key expiration. Implementations
// must be safe for concurrent use.
type Store interface {
	// Get retrieves a value by key. The second return is false when the
	// key is missing or expired.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a key-value pair with an expiration. A zero expiration
	// means no expiry.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Incr atomically increments the integer stored at key, creating it
	// at zero first when missing, and returns the new value.
	Incr(ctx context.Context, key string) (int64, error)
}
