// Package cache provides memoization stores for projection results.
package cache

import (
	"context"
	"fmt"

	"github.com/rpgo/pension-fund-comparator/internal/calculation"
	"github.com/rpgo/pension-fund-comparator/internal/config"
)

var (
	_ calculation.ResultCache = (*MemoryCache)(nil)
	_ calculation.ResultCache = (*RedisCache)(nil)
)

// FromConfig builds the cache selected by cfg.CacheBackend. It returns a nil
// cache for "none" and a close function that is always safe to call.
func FromConfig(ctx context.Context, cfg *config.AppConfig, logger calculation.Logger) (calculation.ResultCache, func() error, error) {
	noop := func() error { return nil }
	switch cfg.CacheBackend {
	case config.CacheBackendNone:
		return nil, noop, nil
	case config.CacheBackendMemory:
		return NewMemoryCache(cfg.CacheTTL), noop, nil
	case config.CacheBackendRedis:
		rc := NewRedisCache(RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.CacheTTL,
		}, logger)
		if err := rc.Ping(ctx); err != nil {
			rc.Close()
			return nil, noop, fmt.Errorf("connecting to redis at %s: %w", cfg.RedisAddr, err)
		}
		return rc, rc.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}
}
