package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultWindow      = 15 * time.Minute
	defaultMaxRequests = 100
)

// FixedWindowLimiter implements per-client fixed-window rate limiting backed
// by Redis. Key format: ratelimit:<client>. The first request in a window
// creates the counter with the window as its TTL; the window resets when the
// key expires.
type FixedWindowLimiter struct {
	client *redis.Client
	window time.Duration
	max    int64
}

// NewFixedWindowLimiter creates a limiter allowing max requests per window.
// Non-positive arguments fall back to 100 requests per 15 minutes.
func NewFixedWindowLimiter(client *redis.Client, window time.Duration, max int64) *FixedWindowLimiter {
	if window <= 0 {
		window = defaultWindow
	}
	if max <= 0 {
		max = defaultMaxRequests
	}
	return &FixedWindowLimiter{client: client, window: window, max: max}
}

// Allow records one request for the client and reports whether it is within
// the window's budget.
func (l *FixedWindowLimiter) Allow(ctx context.Context, clientKey string) (bool, error) {
	key := "ratelimit:" + clientKey

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("ratelimit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("ratelimit expire: %w", err)
		}
	}
	return n <= l.max, nil
}
