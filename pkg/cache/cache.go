package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache layer. It allows
// swapping implementations (Redis in production, in-memory in tests).
//
// Deliberately absent: any pattern/prefix delete. An exact-match
// key-value cache cannot enumerate keys soundly, so invalidation of
// parameterized list keys goes through generation counters (Increment)
// instead of wildcard deletion.
type Cache interface {
	// Get reads key and unmarshals it into dest.
	// Returns: (found bool, error)
	// - found = true: cache hit, data unmarshaled into dest
	// - found = false: cache miss, dest untouched
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes exact keys.
	Delete(ctx context.Context, keys ...string) error

	// Increment atomically bumps a counter key and returns the new
	// value. Counters start at 0, so the first bump yields 1.
	Increment(ctx context.Context, key string) (int64, error)

	// GetInt64 reads a counter key. Missing counters read as 0.
	GetInt64(ctx context.Context, key string) (int64, error)

	Exists(ctx context.Context, key string) (bool, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	TTL(ctx context.Context, key string) (time.Duration, error)

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
