package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSymbols(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "nil", in: nil, want: []string{}},
		{name: "upper-cases and trims", in: []string{" spy ", "Qqq"}, want: []string{"SPY", "QQQ"}},
		{name: "splits commas", in: []string{"SPY,QQQ", "GLD"}, want: []string{"SPY", "QQQ", "GLD"}},
		{name: "drops duplicates keeping order", in: []string{"GLD", "spy", "gld"}, want: []string{"GLD", "SPY"}},
		{name: "drops blanks", in: []string{"", " , ", "AGG"}, want: []string{"AGG"}},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeSymbols(tt.in))
		})
	}
}

func TestReport_Summaries(t *testing.T) {
	t.Parallel()

	r := Report{Symbols: []SymbolReport{
		{Symbol: "SPY", Summary: RiskSummary{Symbol: "SPY", Volatility: 0.12}},
		{Symbol: "AGG", Summary: RiskSummary{Symbol: "AGG", Beta: math.NaN()}},
	}}

	got := r.Summaries()
	assert.Len(t, got, 2)
	assert.Equal(t, "SPY", got[0].Symbol)
	assert.InDelta(t, 12.0, got[0].VolatilityPct(), 1e-9)
	assert.Equal(t, "AGG", got[1].Symbol)
}

func TestColumn_Title(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Historical Return (%)", ColumnReturn.Title())
	assert.Equal(t, "Annualized Volatility (%)", ColumnVolatility.Title())
	assert.Equal(t, "Beta", ColumnBeta.Title())
	assert.Equal(t, "Alpha", ColumnAlpha.Title())
	assert.Equal(t, "other", Column("other").Title())
}
