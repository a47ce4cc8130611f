// Package entity defines the domain models for the analysis feature.
package entity

import (
	"time"

	"github.com/google/uuid"

	candles "etf_dashboard/internal/feature/candles/domain/entity"
)

// RiskSummary holds the return and risk metrics of one symbol over the
// requested period. It lives for a single request and is never persisted.
type RiskSummary struct {
	Symbol           string
	HistoricalReturn float64 // percent, not annualized
	Volatility       float64 // annualized, as a fraction
	Beta             float64 // against the benchmark; NaN when undefined
	Alpha            float64 // NaN when Beta is NaN
}

// VolatilityPct returns the annualized volatility as a percentage.
func (r RiskSummary) VolatilityPct() float64 {
	return r.Volatility * 100
}

// SymbolReport is everything shown for one successfully analysed symbol.
type SymbolReport struct {
	Symbol            string
	Info              candles.FundInfo
	Summary           RiskSummary
	Chart             candles.Chart
	InitialInvestment float64
	FinalValue        float64 // InitialInvestment grown by HistoricalReturn
}

// NoticeKind classifies a per-symbol outcome that did not produce a report.
type NoticeKind string

const (
	// NoticeNoData means the provider returned no rows for the symbol.
	NoticeNoData NoticeKind = "no_data"
	// NoticeError means fetching or computing failed.
	NoticeError NoticeKind = "error"
)

// Notice is a non-fatal per-symbol outcome.
type Notice struct {
	Symbol  string
	Kind    NoticeKind
	Message string
}

// Report is the result of one analysis request.
type Report struct {
	RequestID    uuid.UUID
	Period       candles.Period
	Benchmark    string
	RiskFreeRate float64
	GeneratedAt  time.Time
	Symbols      []SymbolReport
	Notices      []Notice
	Table        SummaryTable
}

// Summaries returns the RiskSummary of every analysed symbol, in request order.
func (r Report) Summaries() []RiskSummary {
	out := make([]RiskSummary, len(r.Symbols))
	for i, s := range r.Symbols {
		out[i] = s.Summary
	}
	return out
}
