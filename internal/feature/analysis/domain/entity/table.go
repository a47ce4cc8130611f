package entity

// Column identifies one metric column of the summary table.
type Column string

const (
	ColumnReturn     Column = "historical_return"
	ColumnVolatility Column = "annualized_volatility"
	ColumnBeta       Column = "beta"
	ColumnAlpha      Column = "alpha"
)

// Columns lists the metric columns in display order.
var Columns = []Column{ColumnReturn, ColumnVolatility, ColumnBeta, ColumnAlpha}

// Title is the column header shown to users.
func (c Column) Title() string {
	switch c {
	case ColumnReturn:
		return "Historical Return (%)"
	case ColumnVolatility:
		return "Annualized Volatility (%)"
	case ColumnBeta:
		return "Beta"
	case ColumnAlpha:
		return "Alpha"
	}
	return string(c)
}

// Cell is one formatted, colour-scaled value of the summary table.
// Background and Foreground are empty for cells that are not coloured.
type Cell struct {
	Value      float64
	Text       string
	Background string
	Foreground string
}

// SummaryRow is the table row of one symbol. Cells follow Columns.
type SummaryRow struct {
	Symbol string
	Cells  []Cell
}

// SummaryTable is the comparative table of every analysed symbol.
type SummaryTable struct {
	Columns []Column
	Rows    []SummaryRow
}

// Empty reports whether the table has no rows.
func (t SummaryTable) Empty() bool {
	return len(t.Rows) == 0
}
