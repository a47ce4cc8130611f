// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	candlesusecase "etf_dashboard/internal/feature/candles/usecase"
	"etf_dashboard/internal/platform/cache"
	"etf_dashboard/internal/platform/config"
	"etf_dashboard/internal/platform/externalapi/yahoo"
	infrahttp "etf_dashboard/internal/platform/http"
)

// NewMarket creates a fully configured YahooMarket with its own HTTP client.
func NewMarket(cfg config.MarketConfig) *yahoo.YahooMarket {
	ycfg := yahoo.Config{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
	}
	return yahoo.NewYahooMarket(ycfg, infrahttp.NewHTTPClient(cfg.Timeout, cfg.MaxConnsPerHost))
}

// NewCachedMarket wraps inner with the Redis history cache. Entries expire
// after cfg.TTL or at the next US market settlement, whichever comes first.
func NewCachedMarket(rdb *redis.Client, cfg config.CacheConfig, inner candlesusecase.MarketRepository) *cache.CachingMarketRepository {
	return cache.NewCachingMarketRepository(rdb, cfg.TTL, inner, cfg.Namespace).
		WithTTLFunc(settleCappedTTL(cfg.TTL, time.Now))
}

func settleCappedTTL(limit time.Duration, now func() time.Time) func() time.Duration {
	return func() time.Duration {
		if d := cache.TimeUntilNextSettle(now()); d < limit {
			return d
		}
		return limit
	}
}
