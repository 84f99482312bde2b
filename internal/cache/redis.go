package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rpgo/pension-fund-comparator/internal/calculation"
	"github.com/rpgo/pension-fund-comparator/internal/domain"
)

const keyPrefix = "rpcompare:projection:"

// RedisCache shares projections between server instances. Results are
// stored as JSON; decimals round-trip exactly as strings.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger calculation.Logger
}

// RedisOptions configures NewRedisCache.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewRedisCache connects lazily; use Ping to check the server at startup.
func NewRedisCache(opts RedisOptions, logger calculation.Logger) *RedisCache {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return &RedisCache{client: rdb, ttl: opts.TTL, logger: logger}
}

// Ping checks connectivity.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (r *RedisCache) Close() error {
	return r.client.Close()
}

// Get returns the cached projection. Any redis or decoding failure is
// logged and treated as a miss.
func (r *RedisCache) Get(ctx context.Context, key string) (*domain.ComparisonResult, bool) {
	raw, err := r.client.Get(ctx, RedisKey(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warnf("redis get %s: %v", key, err)
		}
		return nil, false
	}
	var res domain.ComparisonResult
	if err := json.Unmarshal(raw, &res); err != nil {
		r.logger.Warnf("redis decode %s: %v", key, err)
		return nil, false
	}
	return &res, true
}

// Set stores the projection with the configured TTL.
func (r *RedisCache) Set(ctx context.Context, key string, result *domain.ComparisonResult) {
	if result == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		r.logger.Warnf("redis encode %s: %v", key, err)
		return
	}
	if err := r.client.Set(ctx, RedisKey(key), raw, r.ttl).Err(); err != nil {
		r.logger.Warnf("redis set %s: %v", key, err)
	}
}

// RedisKey namespaces a projection key.
func RedisKey(key string) string {
	return keyPrefix + key
}
