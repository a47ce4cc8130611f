package presenter

import (
	"etf_dashboard/internal/feature/analysis/domain/entity"
)

// column binds a table column to its palette, formatter and value accessor.
type column struct {
	id      entity.Column
	palette Palette
	format  func(float64) string
	value   func(entity.RiskSummary) float64
}

var columns = []column{
	{entity.ColumnReturn, Greens, FormatPercent, func(r entity.RiskSummary) float64 { return r.HistoricalReturn }},
	{entity.ColumnVolatility, Oranges, FormatPercent, entity.RiskSummary.VolatilityPct},
	{entity.ColumnBeta, Blues, FormatFixed, func(r entity.RiskSummary) float64 { return r.Beta }},
	{entity.ColumnAlpha, Purples, FormatFixed, func(r entity.RiskSummary) float64 { return r.Alpha }},
}

// BuildTable formats summaries into the comparison table, one row per
// summary in the given order. Each column is colour-scaled independently.
func BuildTable(summaries []entity.RiskSummary) entity.SummaryTable {
	t := entity.SummaryTable{
		Columns: make([]entity.Column, len(columns)),
		Rows:    make([]entity.SummaryRow, len(summaries)),
	}
	for j, col := range columns {
		t.Columns[j] = col.id
	}
	for i, s := range summaries {
		t.Rows[i] = entity.SummaryRow{Symbol: s.Symbol, Cells: make([]entity.Cell, len(columns))}
	}

	for j, col := range columns {
		values := make([]float64, len(summaries))
		for i, s := range summaries {
			values[i] = col.value(s)
		}
		scale := NewScale(col.palette, values)

		for i, v := range values {
			cell := entity.Cell{Value: v, Text: col.format(v)}
			if bg, ok := scale.Color(v); ok {
				cell.Background = bg.Hex()
				cell.Foreground = TextColor(bg).Hex()
			}
			t.Rows[i].Cells[j] = cell
		}
	}
	return t
}
