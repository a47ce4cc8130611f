package usecase

import (
	"context"
	"log/slog"

	"etf_dashboard/internal/feature/candles/domain/entity"
	"etf_dashboard/internal/shared/ratelimiter"
)

// CacheRefresher は外部APIから価格履歴を取得し直し、キャッシュを置き換える操作を抽象化します。
// 取得に失敗した場合、既存のキャッシュは残ります。
type CacheRefresher interface {
	Refresh(ctx context.Context, symbol string, period entity.Period) error
}

// WarmupUsecase は外部APIから価格履歴を取得し直し、キャッシュを最新の状態に保つユースケースです。
type WarmupUsecase struct {
	cache       CacheRefresher
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewWarmupUsecase は新しい WarmupUsecase を作成します。
func NewWarmupUsecase(cache CacheRefresher, rateLimiter ratelimiter.RateLimiterInterface) *WarmupUsecase {
	return &WarmupUsecase{cache: cache, rateLimiter: rateLimiter}
}

// WarmAll は指定された全銘柄の価格履歴を取得し直します。
// APIのレートリミットを考慮して、リクエスト間に適切な待機時間を設けます。
// 戻り値は失敗した銘柄の数です。
func (wu *WarmupUsecase) WarmAll(ctx context.Context, symbols []string, period entity.Period) (int, error) {
	failed := 0
	for _, s := range symbols {
		if err := wu.rateLimiter.WaitIfNeeded(ctx); err != nil {
			return failed, err
		}
		if err := wu.cache.Refresh(ctx, s, period); err != nil {
			// 1つの銘柄でエラーが発生しても処理を止めずにログに出力し、次の処理を続ける
			slog.Error("failed to warm cache", "symbol", s, "period", period, "error", err)
			failed++
		}
	}
	slog.Info("cache warmup finished", "symbols", len(symbols), "failed", failed, "period", period)
	return failed, nil
}
