package bootstrap

import (
	"giftsafer/internal/infra/ratelimit"
	"giftsafer/internal/pkg/clock"
	"giftsafer/internal/pkg/config"
	"giftsafer/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RateLimitModule = fx.Module("ratelimit",
	fx.Provide(
		NewRateLimiter,
	),
)

func NewRateLimiter(cfg config.Config, clk clock.Clock) commands.RateLimiter {
	if cfg.RateLimit.Backend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return ratelimit.NewRedisWindow(client, cfg.RateLimit)
	}
	return ratelimit.NewSlidingWindow(cfg.RateLimit, clk)
}
