package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rpgo/pension-fund-comparator/internal/domain"
)

// MemoryCache keeps projections in process memory with a TTL.
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates an in-process cache. Expired entries are purged
// every 2*ttl.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{store: gocache.New(ttl, 2*ttl)}
}

// Get returns a deep copy of the cached result so callers cannot mutate it.
func (m *MemoryCache) Get(_ context.Context, key string) (*domain.ComparisonResult, bool) {
	v, ok := m.store.Get(key)
	if !ok {
		return nil, false
	}
	res, ok := v.(*domain.ComparisonResult)
	if !ok {
		return nil, false
	}
	return res.Clone(), true
}

// Set stores a deep copy of result under key.
func (m *MemoryCache) Set(_ context.Context, key string, result *domain.ComparisonResult) {
	if result == nil {
		return
	}
	m.store.SetDefault(key, result.Clone())
}

// Len reports the number of live entries.
func (m *MemoryCache) Len() int {
	return m.store.ItemCount()
}
