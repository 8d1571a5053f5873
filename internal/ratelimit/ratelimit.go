// Package ratelimit counts write requests per caller in fixed windows.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Limiter interface {
	// Allow records one hit for key and reports whether it is within limit.
	// When it is not, retryAfter is the time left in the current window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, retryAfter time.Duration, err error)
}

// RedisLimiter keeps one counter per key and window in Redis, so limits hold
// across server instances.
type RedisLimiter struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisLimiter(client redis.UniversalClient) *RedisLimiter {
	return &RedisLimiter{client: client, prefix: "ratelimit:"}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	k := l.prefix + key

	count, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, 0, fmt.Errorf("incr %s: %w", k, err)
	}
	if count == 1 {
		if err := l.client.PExpire(ctx, k, window).Err(); err != nil {
			return false, 0, fmt.Errorf("expire %s: %w", k, err)
		}
	}
	if count <= int64(limit) {
		return true, 0, nil
	}

	ttl, err := l.client.PTTL(ctx, k).Result()
	if err != nil {
		return false, 0, fmt.Errorf("ttl %s: %w", k, err)
	}
	if ttl < 0 {
		// The expiry was lost; start a new window.
		l.client.PExpire(ctx, k, window)
		ttl = window
	}
	return false, ttl, nil
}
