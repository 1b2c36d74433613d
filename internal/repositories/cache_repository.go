package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface fronts the short-lived dashboard cache.
// A miss is reported as an error by the underlying client.
type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
}
