// Package cache provides the TTL stores used to memoize search responses,
// the per-offer index behind the seat-map flow, and airport lookups.
// Memoization is an optimization only; callers stay correct without hits.
package cache

import (
	"context"
	"time"
)

// Store is a TTL key/value store. Get reports a miss for expired or unknown
// keys; backends degrade to a miss on infrastructure errors rather than
// surfacing them to the caller.
type Store[T any] interface {
	Get(ctx context.Context, key string) (T, bool)
	Set(ctx context.Context, key string, value T, ttl time.Duration)
}
