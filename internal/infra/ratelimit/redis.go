package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"giftsafer/internal/pkg/config"
)

// RedisWindow is a fixed-window counter for multi-instance
// deployments. Unlike SlidingWindow it counts denied attempts too;
// the window resets when the key expires.
type RedisWindow struct {
	client *redis.Client
	window time.Duration
	max    int
}

func NewRedisWindow(client *redis.Client, cfg config.RateLimitConfig) *RedisWindow {
	return &RedisWindow{
		client: client,
		window: cfg.Window,
		max:    cfg.MaxRequests,
	}
}

func (w *RedisWindow) Allow(ctx context.Context, identity string) bool {
	key := "ratelimit:" + identity

	count, err := w.client.Incr(ctx, key).Result()
	if err != nil {
		// Fail open: an unreachable counter should not take the
		// endpoint down with it.
		slog.Warn("rate limit counter unavailable", slog.String("error", err.Error()))
		return true
	}

	if count == 1 {
		if err := w.client.Expire(ctx, key, w.window).Err(); err != nil {
			slog.Warn("failed to set rate limit expiry", slog.String("error", err.Error()))
		}
	}

	return count <= int64(w.max)
}

func (w *RedisWindow) Window() (int, int) {
	return w.max, int(w.window.Seconds())
}
