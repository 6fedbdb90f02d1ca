package exchange

import (
	"context"
	"encoding/json"
	"time"

	"expatmart/config"
	"expatmart/internal/domain/currency"
	"expatmart/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	defaultKeyPrefix = "expatmart:"
	defaultRatesTTL  = time.Hour
)

// NewRedisClient connects to Redis, or returns nil when it is not configured.
func NewRedisClient(lc fx.Lifecycle, cfg *config.Config) *redis.Client {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client
}

type redisRateCache struct {
	client    redis.Cmdable
	keyPrefix string
}

// NewRateCache wraps client as a rate cache. A nil client disables caching.
func NewRateCache(client *redis.Client, cfg *config.Config) service.RateCache {
	if client == nil {
		return nil
	}

	return newRedisRateCache(client, cfg)
}

func newRedisRateCache(client redis.Cmdable, cfg *config.Config) *redisRateCache {
	prefix := defaultKeyPrefix
	if cfg.Redis != nil && cfg.Redis.KeyPrefix != "" {
		prefix = cfg.Redis.KeyPrefix
	}

	return &redisRateCache{client: client, keyPrefix: prefix}
}

func (c *redisRateCache) key(base string) string {
	return c.keyPrefix + "rates:" + currency.Normalize(base)
}

func (c *redisRateCache) GetRates(ctx context.Context, base string) (map[string]decimal.Decimal, bool, error) {
	raw, err := c.client.Get(ctx, c.key(base)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to read cached rates")
	}

	var rates map[string]decimal.Decimal
	if err := json.Unmarshal(raw, &rates); err != nil {
		// A corrupt entry is a miss; the next fetch overwrites it.
		return nil, false, nil
	}

	return rates, true, nil
}

func (c *redisRateCache) SetRates(ctx context.Context, base string, rates map[string]decimal.Decimal, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultRatesTTL
	}

	raw, err := json.Marshal(rates)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := c.client.Set(ctx, c.key(base), raw, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to cache rates")
	}

	return nil
}
