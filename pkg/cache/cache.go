package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Cache is a generic read-through cache for display projections
// (user directory, business rules). Balances are never cached: a
// wallet snapshot is stale the moment it is rendered.
type Cache interface {
	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get unmarshals the cached value into target, or returns ErrMiss.
	Get(ctx context.Context, key string, target interface{}) error
	// Delete removes the key.
	Delete(ctx context.Context, key string) error
}
