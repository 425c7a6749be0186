package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a shared Redis instance, letting multiple
// service replicas share one search cache. Values are stored as JSON.
type Redis[T any] struct {
	client *redis.Client
	prefix string
}

func NewRedis[T any](client *redis.Client, prefix string) *Redis[T] {
	return &Redis[T]{client: client, prefix: prefix}
}

func (r *Redis[T]) Get(ctx context.Context, key string) (T, bool) {
	var zero T

	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "redis cache read failed", "key", key, "error", err)
		}
		return zero, false
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		slog.WarnContext(ctx, "redis cache entry undecodable", "key", key, "error", err)
		return zero, false
	}
	return value, true
}

func (r *Redis[T]) Set(ctx context.Context, key string, value T, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.WarnContext(ctx, "redis cache encode failed", "key", key, "error", err)
		return
	}
	if err := r.client.Set(ctx, r.prefix+key, data, ttl).Err(); err != nil {
		slog.WarnContext(ctx, "redis cache write failed", "key", key, "error", err)
	}
}
