// Package usecase はETFのリスク分析のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"etf_dashboard/internal/feature/analysis/domain/calculator"
	"etf_dashboard/internal/feature/analysis/domain/entity"
	"etf_dashboard/internal/feature/analysis/presenter"
	candles "etf_dashboard/internal/feature/candles/domain/entity"
	candlesusecase "etf_dashboard/internal/feature/candles/usecase"
)

// DefaultBenchmark is the S&P 500 index.
const DefaultBenchmark = "^GSPC"

// MarketRepository は日足履歴を取得するリポジトリのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	GetHistory(ctx context.Context, symbol string, period candles.Period) (candles.History, error)
}

// CategoryDirectory はカタログに登録された銘柄カテゴリを提供します。
// プロバイダがカテゴリを返さない場合の補完に使用します。
type CategoryDirectory interface {
	Categories(ctx context.Context) (map[string]string, error)
}

// Analyzer は分析ユースケースのインターフェースです。計測ミドルウェアが同じ形でラップします。
type Analyzer interface {
	Analyze(ctx context.Context, symbols []string, period string) (entity.Report, error)
}

// Options は分析のパラメータです。Benchmark と InitialInvestment はゼロ値の場合にデフォルトが使われます。
// RiskFreeRate はゼロも有効な値としてそのまま使います。
type Options struct {
	Benchmark         string
	RiskFreeRate      float64
	InitialInvestment float64
}

func (o Options) withDefaults() Options {
	if o.Benchmark == "" {
		o.Benchmark = DefaultBenchmark
	}
	if o.InitialInvestment == 0 {
		o.InitialInvestment = calculator.DefaultInitialInvestment
	}
	return o
}

// analysisUsecase は選択された銘柄を順番に取得・計算し、比較表を組み立てます。
type analysisUsecase struct {
	market     MarketRepository
	categories CategoryDirectory
	opts       Options
	now        func() time.Time
}

var _ Analyzer = (*analysisUsecase)(nil)

// NewAnalysisUsecase はanalysisUsecaseの新しいインスタンスを生成します。
// categories は nil でも構いません。
func NewAnalysisUsecase(market MarketRepository, categories CategoryDirectory, opts Options) *analysisUsecase {
	return &analysisUsecase{
		market:     market,
		categories: categories,
		opts:       opts.withDefaults(),
		now:        time.Now,
	}
}

// Analyze は銘柄ごとに履歴を取得してリスク指標を計算します。
// 1銘柄の失敗はNoticeとして記録され、残りの銘柄の処理は継続されます。
// エラーを返すのは期間が不正な場合のみです。
func (au *analysisUsecase) Analyze(ctx context.Context, symbols []string, period string) (entity.Report, error) {
	p, err := candles.ParsePeriod(period)
	if err != nil {
		return entity.Report{}, err
	}

	report := entity.Report{
		RequestID:    uuid.New(),
		Period:       p,
		Benchmark:    au.opts.Benchmark,
		RiskFreeRate: au.opts.RiskFreeRate,
		GeneratedAt:  au.now(),
	}
	log := slog.With("request_id", report.RequestID.String(), "period", p.String())

	selected := entity.NormalizeSymbols(symbols)
	if len(selected) == 0 {
		report.Table = presenter.BuildTable(nil)
		return report, nil
	}

	cats := au.loadCategories(ctx, log)
	bench := &benchmark{symbol: au.opts.Benchmark, period: p, market: au.market}

	for _, symbol := range selected {
		sr, notice := au.analyzeOne(ctx, symbol, p, bench, cats)
		if notice != nil {
			if notice.Kind == entity.NoticeNoData {
				log.Warn("no data for symbol", "symbol", symbol)
			} else {
				log.Error("symbol analysis failed", "symbol", symbol, "error", notice.Message)
			}
			report.Notices = append(report.Notices, *notice)
			continue
		}
		log.Info("symbol analysed",
			"symbol", symbol,
			"return_pct", sr.Summary.HistoricalReturn,
			"volatility", sr.Summary.Volatility,
			"beta", sr.Summary.Beta,
		)
		report.Symbols = append(report.Symbols, sr)
	}

	report.Table = presenter.BuildTable(report.Summaries())
	return report, nil
}

func (au *analysisUsecase) analyzeOne(
	ctx context.Context,
	symbol string,
	p candles.Period,
	bench *benchmark,
	cats map[string]string,
) (entity.SymbolReport, *entity.Notice) {
	h, err := au.market.GetHistory(ctx, symbol, p)
	if err != nil {
		return entity.SymbolReport{}, errorNotice(symbol, err)
	}
	if h.Empty() {
		return entity.SymbolReport{}, &entity.Notice{
			Symbol:  symbol,
			Kind:    entity.NoticeNoData,
			Message: fmt.Sprintf("no data found for %s", symbol),
		}
	}

	bh, err := bench.get(ctx)
	if err != nil {
		return entity.SymbolReport{}, errorNotice(symbol, fmt.Errorf("benchmark %s: %w", bench.symbol, err))
	}

	summary, err := calculator.Compute(h, bh, au.opts.RiskFreeRate)
	if err != nil {
		return entity.SymbolReport{}, errorNotice(symbol, err)
	}

	if h.Info.Category == "" {
		h.Info.Category = cats[symbol]
	}
	return entity.SymbolReport{
		Symbol:            symbol,
		Info:              h.Info,
		Summary:           summary,
		Chart:             candlesusecase.BuildChart(h),
		InitialInvestment: au.opts.InitialInvestment,
		FinalValue:        calculator.GrowthOf(au.opts.InitialInvestment, summary.HistoricalReturn),
	}, nil
}

func (au *analysisUsecase) loadCategories(ctx context.Context, log *slog.Logger) map[string]string {
	if au.categories == nil {
		return nil
	}
	cats, err := au.categories.Categories(ctx)
	if err != nil {
		log.Warn("category lookup failed", "error", err)
		return nil
	}
	return cats
}

func errorNotice(symbol string, err error) *entity.Notice {
	return &entity.Notice{
		Symbol:  symbol,
		Kind:    entity.NoticeError,
		Message: fmt.Sprintf("failed to retrieve data for %s: %v", symbol, err),
	}
}

// benchmark fetches the benchmark history at most once per request.
type benchmark struct {
	symbol  string
	period  candles.Period
	market  MarketRepository
	loaded  bool
	history candles.History
	err     error
}

func (b *benchmark) get(ctx context.Context) (candles.History, error) {
	if !b.loaded {
		b.history, b.err = b.market.GetHistory(ctx, b.symbol, b.period)
		b.loaded = true
	}
	return b.history, b.err
}
