package common

import (
	"context"
	"time"
)

// CacheInterface defines the contract for cache implementations.
// Values are stored JSON encoded so every implementation round-trips typed values.
type CacheInterface interface {
	// Set stores a value in cache with the given key and duration
	Set(ctx context.Context, key string, value interface{}, duration time.Duration) error

	// Get decodes the cached value into dest.
	// Returns true if the key was found.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Delete removes a value from cache by key
	Delete(ctx context.Context, key string) error

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}

// GetOrLoad returns the cached value for key, or loads, stores and returns it.
// Cache failures are not fatal: the loader result is returned regardless.
func GetOrLoad[T any](ctx context.Context, c CacheInterface, key string, duration time.Duration, loader func() (T, error)) (T, bool, error) {
	var cached T
	if found, err := c.Get(ctx, key, &cached); err == nil && found {
		return cached, true, nil
	}

	val, err := loader()
	if err != nil {
		return val, false, err
	}

	_ = c.Set(ctx, key, val, duration)
	return val, false, nil
}
