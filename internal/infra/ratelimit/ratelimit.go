// Package ratelimit provides fixed-window request counters for the HTTP API.
package ratelimit

import (
	"log/slog"

	"plantcare/config"
	"plantcare/internal/domain/constants"
	"plantcare/internal/domain/service"
	"plantcare/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Limiters holds one limiter per route class.
type Limiters struct {
	fx.Out

	Auth service.RateLimiter `name:"authRateLimiter"`
	API  service.RateLimiter `name:"apiRateLimiter"`
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Redis  *redis.Client `optional:"true"`
}

// New builds the auth and API limiters for the configured provider.
func New(params Params) (Limiters, error) {
	cfg := params.Config.RateLimit

	switch cfg.Provider {
	case constants.RateLimitProviderMemory:
		return Limiters{
			Auth: NewMemoryLimiter(cfg.Auth.Interval, cfg.Auth.MaxRequests),
			API:  NewMemoryLimiter(cfg.API.Interval, cfg.API.MaxRequests),
		}, nil
	case constants.RateLimitProviderRedis:
		if params.Redis == nil {
			return Limiters{}, errors.New("redis rate limit provider selected without a redis client")
		}
		params.Logger.Info("Using redis rate limit store", slog.String("addr", cfg.Redis.Addr))

		return Limiters{
			Auth: NewRedisLimiter(params.Redis, "ratelimit:auth", cfg.Auth.Interval, cfg.Auth.MaxRequests),
			API:  NewRedisLimiter(params.Redis, "ratelimit:api", cfg.API.Interval, cfg.API.MaxRequests),
		}, nil
	default:
		return Limiters{}, errors.Errorf("unknown rate limit provider %q", cfg.Provider)
	}
}
