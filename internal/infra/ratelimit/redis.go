package ratelimit

import (
	"context"
	"time"

	"plantcare/config"
	"plantcare/internal/domain/constants"
	"plantcare/internal/domain/lifecycle"
	"plantcare/internal/domain/service"
	"plantcare/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// incrWithExpiry starts the window on the first hit and reports the count and remaining TTL.
var incrWithExpiry = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {count, redis.call("PTTL", KEYS[1])}
`)

type redisLimiter struct {
	client      redis.Scripter
	prefix      string
	interval    time.Duration
	maxRequests int
	now         func() time.Time
}

// NewRedisLimiter returns a fixed-window limiter whose counters live in Redis,
// so every replica shares the same quota.
func NewRedisLimiter(client redis.Scripter, prefix string, interval time.Duration, maxRequests int) service.RateLimiter {
	return &redisLimiter{
		client:      client,
		prefix:      prefix,
		interval:    interval,
		maxRequests: maxRequests,
		now:         time.Now,
	}
}

func (l *redisLimiter) Check(ctx context.Context, identifier string) (service.RateLimitResult, error) {
	res, err := incrWithExpiry.Run(ctx, l.client, []string{l.prefix + ":" + identifier}, l.interval.Milliseconds()).Int64Slice()
	if err != nil {
		return service.RateLimitResult{}, errors.Wrap(err, "rate limit counter")
	}

	count, ttl := int(res[0]), time.Duration(res[1])*time.Millisecond
	if ttl < 0 {
		ttl = l.interval
	}

	remaining := max(l.maxRequests-count, 0)

	return service.RateLimitResult{
		Allowed:   count <= l.maxRequests,
		Remaining: remaining,
		ResetAt:   l.now().Add(ttl),
	}, nil
}

// RedisParams defines the required parameters
type RedisParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// NewRedisClient opens the shared rate limit store when the redis provider is selected.
// It returns a nil client otherwise.
func NewRedisClient(params RedisParams) (*redis.Client, error) {
	cfg := params.Config.RateLimit
	if cfg.Provider != constants.RateLimitProviderRedis {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
