package di

import (
	"context"
	"log/slog"

	candles "etf_dashboard/internal/feature/candles/domain/entity"
	"etf_dashboard/internal/platform/scheduler"
)

// CodeLister lists the catalogue tickers to keep warm.
type CodeLister interface {
	ListActiveCodes(ctx context.Context) ([]string, error)
}

// Warmer refreshes cached histories.
type Warmer interface {
	WarmAll(ctx context.Context, symbols []string, period candles.Period) (int, error)
}

// NewWarmJob returns the scheduled job that re-fetches every active
// catalogue symbol plus the benchmark for period.
func NewWarmJob(w Warmer, codes CodeLister, benchmark string, period candles.Period) scheduler.Job {
	return func(ctx context.Context) {
		symbols, err := codes.ListActiveCodes(ctx)
		if err != nil {
			slog.Error("cache warmup: failed to list symbols", "error", err)
			return
		}
		symbols = appendMissing(symbols, benchmark)

		if _, err := w.WarmAll(ctx, symbols, period); err != nil {
			slog.Warn("cache warmup interrupted", "error", err)
		}
	}
}

func appendMissing(symbols []string, s string) []string {
	if s == "" {
		return symbols
	}
	for _, x := range symbols {
		if x == s {
			return symbols
		}
	}
	return append(symbols, s)
}
