package di

import (
	analysisusecase "etf_dashboard/internal/feature/analysis/usecase"
	"etf_dashboard/internal/platform/config"
	"etf_dashboard/internal/platform/metrics"
)

// NewAnalyzer creates the analysis use case wrapped with request metrics.
// categories may be nil.
func NewAnalyzer(
	market analysisusecase.MarketRepository,
	categories analysisusecase.CategoryDirectory,
	cfg config.MarketConfig,
	m metrics.Analysis,
) analysisusecase.Analyzer {
	uc := analysisusecase.NewAnalysisUsecase(market, categories, AnalysisOptions(cfg))
	return analysisusecase.NewInstrumentingMiddleware(m.Requests, m.Duration, m.Outcomes, uc)
}

// AnalysisOptions maps the market configuration onto the analysis options.
func AnalysisOptions(cfg config.MarketConfig) analysisusecase.Options {
	return analysisusecase.Options{
		Benchmark:         cfg.Benchmark,
		RiskFreeRate:      cfg.RiskFreeRate,
		InitialInvestment: cfg.InitialInvestment,
	}
}
