// Package calculator computes return and risk metrics of a price history
// against a benchmark. Undefined metrics are NaN.
package calculator

import (
	"fmt"
	"math"

	"etf_dashboard/internal/feature/analysis/domain"
	"etf_dashboard/internal/feature/analysis/domain/entity"
	candles "etf_dashboard/internal/feature/candles/domain/entity"
	"etf_dashboard/internal/shared/stats"
)

// DefaultRiskFreeRate is the annual US risk-free rate used in the CAPM alpha.
const DefaultRiskFreeRate = 0.0427

// DefaultInitialInvestment is the amount grown by the historical return.
const DefaultInitialInvestment = 100.0

// HistoricalReturn returns (last - first) / first * 100.
func HistoricalReturn(closes []float64) (float64, error) {
	if len(closes) < 2 {
		return math.NaN(), fmt.Errorf("%w: %d points", domain.ErrInsufficientData, len(closes))
	}
	first, last := closes[0], closes[len(closes)-1]
	if first == 0 {
		return math.NaN(), nil
	}
	return (last - first) / first * 100, nil
}

// AnnualizedVolatility returns the sample standard deviation of simple
// returns scaled by sqrt(252), as a fraction. NaN with fewer than two returns.
func AnnualizedVolatility(closes []float64) float64 {
	return stats.StdDev(stats.PctChange(closes)) * math.Sqrt(stats.TradingDaysPerYear)
}

// DatedReturn is the simple return realised on Date.
type DatedReturn struct {
	Date  string
	Value float64
}

// Returns computes the simple returns of h keyed by trading date.
// The first candle has no return and is dropped.
func Returns(h candles.History) []DatedReturn {
	if len(h.Candles) < 2 {
		return nil
	}
	out := make([]DatedReturn, 0, len(h.Candles)-1)
	for i := 1; i < len(h.Candles); i++ {
		prev, cur := h.Candles[i-1].Close, h.Candles[i].Close
		out = append(out, DatedReturn{
			Date:  h.Candles[i].Time.Format("2006-01-02"),
			Value: cur/prev - 1,
		})
	}
	return out
}

// Pair aligns two return series on the dates present in both, keeping the
// order of xs.
func Pair(xs, ys []DatedReturn) (a, b []float64) {
	byDate := make(map[string]float64, len(ys))
	for _, y := range ys {
		byDate[y.Date] = y.Value
	}
	for _, x := range xs {
		if y, ok := byDate[x.Date]; ok {
			a = append(a, x.Value)
			b = append(b, y)
		}
	}
	return a, b
}

// Beta returns cov(target, benchmark) / var(benchmark) over the
// pairwise-complete returns. Fewer than two pairs or zero variance on
// either side yields NaN.
func Beta(target, benchmark candles.History) float64 {
	a, b := Pair(Returns(target), Returns(benchmark))
	if len(a) < 2 {
		return math.NaN()
	}
	varA, varB := stats.Variance(a), stats.Variance(b)
	if varA == 0 || varB == 0 {
		return math.NaN()
	}
	return stats.Covariance(a, b) / varB
}

// Alpha returns histReturn - (rf + beta * (meanBench - rf)).
//
// histReturn is a percentage over the period while rf is an annual fraction
// and meanBench a mean daily return; the units are combined as-is.
func Alpha(histReturn, beta, meanBench, rf float64) float64 {
	if math.IsNaN(beta) {
		return math.NaN()
	}
	return histReturn - (rf + beta*(meanBench-rf))
}

// MeanReturn returns the mean simple return of closes, NaN with fewer than two points.
func MeanReturn(closes []float64) float64 {
	return stats.Mean(stats.PctChange(closes))
}

// GrowthOf returns what initial becomes after a return of returnPct percent.
func GrowthOf(initial, returnPct float64) float64 {
	return initial * (1 + returnPct/100)
}

// Compute derives the RiskSummary of target against benchmark.
// A target with fewer than two points returns ErrInsufficientData.
// A short or empty benchmark leaves Beta and Alpha as NaN.
func Compute(target, benchmark candles.History, rf float64) (entity.RiskSummary, error) {
	closes := target.Closes()
	ret, err := HistoricalReturn(closes)
	if err != nil {
		return entity.RiskSummary{}, fmt.Errorf("%s: %w", target.Symbol, err)
	}

	beta := Beta(target, benchmark)
	return entity.RiskSummary{
		Symbol:           target.Symbol,
		HistoricalReturn: ret,
		Volatility:       AnnualizedVolatility(closes),
		Beta:             beta,
		Alpha:            Alpha(ret, beta, MeanReturn(benchmark.Closes()), rf),
	}, nil
}
