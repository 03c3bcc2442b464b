// Package ratelimit implements a fixed-window request limiter on Redis.
package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Redis key prefix
const keyPrefix = "ratelimit:"

// Limiter counts requests per key in fixed windows
type Limiter struct {
	redis  *redis.Client
	scope  string
	limit  int
	window time.Duration
}

// NewLimiter creates a limiter allowing limit requests per window for each
// key. The scope separates the counters of different limiters.
func NewLimiter(client *redis.Client, scope string, limit int, window time.Duration) *Limiter {
	return &Limiter{
		redis:  client,
		scope:  scope,
		limit:  limit,
		window: window,
	}
}

// Allow records a request for key and reports whether it is within the limit
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	k := keyPrefix + l.scope + ":" + key
	count, err := l.redis.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit: %w", err)
	}

	if count == 1 {
		if err := l.redis.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return count <= int64(l.limit), nil
}

// Middleware rejects requests over the limit with 429, keyed by client IP.
// Requests pass when Redis is unavailable.
func Middleware(l *Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := l.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				c.Logger().Warnf("rate limiter unavailable: %v", err)
				return next(c)
			}
			if !ok {
				return echo.NewHTTPError(http.StatusTooManyRequests)
			}
			return next(c)
		}
	}
}
