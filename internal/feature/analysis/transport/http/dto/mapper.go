package dto

import (
	"etf_dashboard/internal/api"
	"etf_dashboard/internal/feature/analysis/domain/entity"
	candlesdto "etf_dashboard/internal/feature/candles/transport/http/dto"
)

// NewReportResponse converts a Report into its wire form. Slices are never nil.
func NewReportResponse(r entity.Report) ReportResponse {
	out := ReportResponse{
		RequestID:    r.RequestID.String(),
		Period:       r.Period.String(),
		Benchmark:    r.Benchmark,
		RiskFreeRate: r.RiskFreeRate,
		GeneratedAt:  r.GeneratedAt,
		Symbols:      make([]SymbolReportResponse, 0, len(r.Symbols)),
		Notices:      make([]NoticeResponse, 0, len(r.Notices)),
		Table:        NewTableResponse(r.Table),
	}
	for _, s := range r.Symbols {
		out.Symbols = append(out.Symbols, SymbolReportResponse{
			Symbol:            s.Symbol,
			Info:              candlesdto.NewFundInfoResponse(s.Info),
			Summary:           NewSummaryResponse(s.Summary),
			InitialInvestment: s.InitialInvestment,
			FinalValue:        api.NullableFloat(s.FinalValue),
			Chart:             candlesdto.NewChartResponse(s.Chart),
		})
	}
	for _, n := range r.Notices {
		out.Notices = append(out.Notices, NoticeResponse{
			Symbol:  n.Symbol,
			Kind:    string(n.Kind),
			Message: n.Message,
		})
	}
	return out
}

// NewSummaryResponse converts a RiskSummary; volatility is reported in percent.
func NewSummaryResponse(s entity.RiskSummary) SummaryResponse {
	return SummaryResponse{
		HistoricalReturn:     api.NullableFloat(s.HistoricalReturn),
		AnnualizedVolatility: api.NullableFloat(s.VolatilityPct()),
		Beta:                 api.NullableFloat(s.Beta),
		Alpha:                api.NullableFloat(s.Alpha),
	}
}

// NewTableResponse converts the summary table.
func NewTableResponse(t entity.SummaryTable) TableResponse {
	out := TableResponse{
		Columns: make([]ColumnResponse, 0, len(t.Columns)),
		Rows:    make([]RowResponse, 0, len(t.Rows)),
	}
	for _, c := range t.Columns {
		out.Columns = append(out.Columns, ColumnResponse{Key: string(c), Title: c.Title()})
	}
	for _, row := range t.Rows {
		cells := make([]CellResponse, 0, len(row.Cells))
		for _, c := range row.Cells {
			cells = append(cells, CellResponse{
				Value:      api.NullableFloat(c.Value),
				Text:       c.Text,
				Background: c.Background,
				Foreground: c.Foreground,
			})
		}
		out.Rows = append(out.Rows, RowResponse{Symbol: row.Symbol, Cells: cells})
	}
	return out
}
