package usecase

import (
	"context"
	"time"
)

// DiscoveryCache is the subset of the cache the browse path needs. A nil
// implementation is valid; callers must treat the cache as best-effort.
type DiscoveryCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
