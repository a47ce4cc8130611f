package dto

import (
	"etf_dashboard/internal/api"
	"etf_dashboard/internal/feature/candles/domain/entity"
)

// NotAvailable is shown in place of metadata the provider did not supply.
const NotAvailable = "N/A"

// NewFundInfoResponse converts FundInfo, filling blanks with NotAvailable.
func NewFundInfoResponse(info entity.FundInfo) FundInfoResponse {
	return FundInfoResponse{
		Name:           orNA(info.LongName),
		Category:       orNA(info.Category),
		Currency:       orNA(info.Currency),
		Exchange:       orNA(info.Exchange),
		InstrumentType: orNA(info.InstrumentType),
	}
}

// NewChartResponse converts a Chart into its wire form.
func NewChartResponse(ch entity.Chart) ChartResponse {
	h := ch.History
	out := ChartResponse{
		Symbol:  h.Symbol,
		Period:  h.Period.String(),
		Info:    NewFundInfoResponse(h.Info),
		Candles: make([]CandleResponse, 0, len(h.Candles)),
	}
	for i, x := range h.Candles {
		out.Candles = append(out.Candles, CandleResponse{
			Time:   x.Time.Format("2006-01-02"),
			Open:   x.Open,
			High:   x.High,
			Low:    x.Low,
			Close:  x.Close,
			Volume: x.Volume,
			MA20:   at(ch.MA20, i),
			Upper:  at(ch.Upper, i),
			Lower:  at(ch.Lower, i),
		})
	}
	return out
}

func at(vs []float64, i int) *float64 {
	if i >= len(vs) {
		return nil
	}
	return api.NullableFloat(vs[i])
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
