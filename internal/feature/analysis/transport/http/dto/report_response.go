// Package dto defines data transfer objects for the analysis HTTP API.
package dto

import (
	"time"

	candlesdto "etf_dashboard/internal/feature/candles/transport/http/dto"
)

// SummaryResponse はリスク指標です。未定義の値は null になります。
// annualized_volatility はパーセント表記です。
type SummaryResponse struct {
	HistoricalReturn     *float64 `json:"historical_return"`
	AnnualizedVolatility *float64 `json:"annualized_volatility"`
	Beta                 *float64 `json:"beta"`
	Alpha                *float64 `json:"alpha"`
}

// SymbolReportResponse は1銘柄分の分析結果です。
type SymbolReportResponse struct {
	Symbol            string                      `json:"symbol"`
	Info              candlesdto.FundInfoResponse `json:"info"`
	Summary           SummaryResponse             `json:"summary"`
	InitialInvestment float64                     `json:"initial_investment"`
	FinalValue        *float64                    `json:"final_value"`
	Chart             candlesdto.ChartResponse    `json:"chart"`
}

// NoticeResponse は銘柄ごとの警告またはエラーです。
type NoticeResponse struct {
	Symbol  string `json:"symbol"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ColumnResponse は比較表の列見出しです。
type ColumnResponse struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// CellResponse は整形済みのセルです。色付けされないセルでは色が省略されます。
type CellResponse struct {
	Value      *float64 `json:"value"`
	Text       string   `json:"text"`
	Background string   `json:"background,omitempty"`
	Foreground string   `json:"foreground,omitempty"`
}

// RowResponse は比較表の1行です。
type RowResponse struct {
	Symbol string         `json:"symbol"`
	Cells  []CellResponse `json:"cells"`
}

// TableResponse は比較表です。
type TableResponse struct {
	Columns []ColumnResponse `json:"columns"`
	Rows    []RowResponse    `json:"rows"`
}

// ReportResponse は /api/analysis のレスポンスDTOです。
type ReportResponse struct {
	RequestID    string                 `json:"request_id"`
	Period       string                 `json:"period"`
	Benchmark    string                 `json:"benchmark"`
	RiskFreeRate float64                `json:"risk_free_rate"`
	GeneratedAt  time.Time              `json:"generated_at"`
	Symbols      []SymbolReportResponse `json:"symbols"`
	Notices      []NoticeResponse       `json:"notices"`
	Table        TableResponse          `json:"table"`
}
