// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"etf_dashboard/internal/feature/candles/domain"
	"etf_dashboard/internal/feature/candles/domain/entity"
	"etf_dashboard/internal/feature/candles/usecase"
)

// CachingMarketRepository decorates a MarketRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingMarketRepository struct {
	inner     usecase.MarketRepository
	rdb       *redis.Client
	ttl       time.Duration
	ttlFn     func() time.Duration
	namespace string
}

var (
	_ usecase.MarketRepository = (*CachingMarketRepository)(nil)
	_ usecase.CacheRefresher   = (*CachingMarketRepository)(nil)
)

// NewCachingMarketRepository decorates a MarketRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "history".
func NewCachingMarketRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MarketRepository, namespace string) *CachingMarketRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "history"
	}
	return &CachingMarketRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// WithTTLFunc makes the TTL of each write computed at write time, e.g. the
// time left until the next market close. A non-positive result falls back to ttl.
func (c *CachingMarketRepository) WithTTLFunc(fn func() time.Duration) *CachingMarketRepository {
	c.ttlFn = fn
	return c
}

func (c *CachingMarketRepository) entryTTL() time.Duration {
	if c.ttlFn != nil {
		if d := c.ttlFn(); d > 0 {
			return d
		}
	}
	return c.ttl
}

// GetHistory retrieves a price history, checking the cache first then falling back to the provider.
// Empty histories are never cached so a transient provider gap does not stick.
func (c *CachingMarketRepository) GetHistory(ctx context.Context, symbol string, period entity.Period) (entity.History, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.GetHistory(ctx, symbol, period)
	}

	key := c.cacheKey(symbol, period)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.History
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the provider
	out, err := c.inner.GetHistory(ctx, symbol, period)
	if err != nil {
		return out, err
	}

	// 3) Store in cache (best effort)
	if !out.Empty() {
		c.store(ctx, key, out)
	}
	return out, nil
}

// Refresh re-fetches a history from the provider and overwrites its cache entry.
// The existing entry is kept when the provider fails or returns no rows.
func (c *CachingMarketRepository) Refresh(ctx context.Context, symbol string, period entity.Period) error {
	out, err := c.inner.GetHistory(ctx, symbol, period)
	if err != nil {
		return err
	}
	if out.Empty() {
		return fmt.Errorf("%s: %w", symbol, domain.ErrEmptyDataset)
	}
	if c.rdb == nil {
		return nil
	}

	b, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	return c.rdb.Set(ctx, c.cacheKey(symbol, period), b, c.entryTTL()).Err()
}

func (c *CachingMarketRepository) store(ctx context.Context, key string, h entity.History) {
	b, err := json.Marshal(h)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, b, c.entryTTL()).Err(); err != nil {
		slog.Warn("failed to cache history", "key", key, "error", err)
	}
}

// cacheKey generates a cache key for a specific query.
func (c *CachingMarketRepository) cacheKey(symbol string, period entity.Period) string {
	return fmt.Sprintf("%s:%s:%s",
		c.namespace,
		safe(symbol),
		safe(period.String()),
	)
}

// safe escapes characters that are problematic for Redis keys.
// ':' separates the key segments; glob characters are replaced so keys stay matchable from redis-cli.
func safe(s string) string {
	return keyEscaper.Replace(s)
}

var keyEscaper = strings.NewReplacer(
	" ", "_",
	":", "_",
	"*", "_",
	"?", "_",
	"[", "_",
	"]", "_",
)
