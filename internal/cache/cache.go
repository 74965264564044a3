package cache

import (
	"context"
	"time"
)

// Cache is a JSON value cache. A nil Cache everywhere means caching is
// simply off (no Redis configured).
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	// Invalidate removes every entry whose key matches the glob pattern,
	// ex: "recommend:*" after a refit.
	Invalidate(ctx context.Context, pattern string) error
}
