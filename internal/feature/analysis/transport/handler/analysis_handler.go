// Package handler はanalysisフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"etf_dashboard/internal/api"
	"etf_dashboard/internal/feature/analysis/domain/entity"
	"etf_dashboard/internal/feature/analysis/transport/http/dto"
	"etf_dashboard/internal/feature/analysis/transport/web"
	candlesdomain "etf_dashboard/internal/feature/candles/domain"
	candles "etf_dashboard/internal/feature/candles/domain/entity"
)

// PageTitle is shown in the browser tab and as the page heading.
const PageTitle = "ETF Risk Dashboard"

// Analyzer は分析ユースケースのインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type Analyzer interface {
	Analyze(ctx context.Context, symbols []string, period string) (entity.Report, error)
}

// SymbolLister は選択肢として表示する銘柄コードを提供します。
type SymbolLister interface {
	ListActiveCodes(ctx context.Context) ([]string, error)
}

// AnalysisHandler は分析APIとダッシュボード画面のリクエストを処理します。
type AnalysisHandler struct {
	uc      Analyzer
	symbols SymbolLister
}

// NewAnalysisHandler はAnalysisHandlerの新しいインスタンスを生成します。
func NewAnalysisHandler(uc Analyzer, symbols SymbolLister) *AnalysisHandler {
	return &AnalysisHandler{uc: uc, symbols: symbols}
}

// GetAnalysis は選択された銘柄のリスク分析をJSONで返します。
// 銘柄単位の失敗は notices に含まれ、ステータスは200のままです。
//
// エンドポイント例:
// GET /api/analysis?symbols=SPY,QQQ&period=1y
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	symbols := c.QueryArray("symbols")
	period := c.DefaultQuery("period", candles.DefaultPeriod.String())

	report, err := h.uc.Analyze(c.Request.Context(), symbols, period)
	if err != nil {
		c.JSON(statusFor(err), api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewReportResponse(report))
}

// option is one entry of a select box.
type option struct {
	Value    string
	Selected bool
}

// dashboardView is the data the dashboard template renders.
type dashboardView struct {
	Title     string
	Catalogue []option
	Periods   []option
	Error     string
	Report    *dto.ReportResponse
}

// Dashboard はフォームと分析結果を含むHTMLページを返します。
// フォームは同じURLに選択内容をGETで送信します。
//
// エンドポイント例:
// GET /?symbols=SPY&symbols=QQQ&period=1y
func (h *AnalysisHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	symbols := c.QueryArray("symbols")
	period := c.DefaultQuery("period", candles.DefaultPeriod.String())

	view := dashboardView{Title: PageTitle}
	status := http.StatusOK

	report, err := h.uc.Analyze(ctx, symbols, period)
	if err != nil {
		status = statusFor(err)
		view.Error = err.Error()
		period = candles.DefaultPeriod.String()
	} else {
		resp := dto.NewReportResponse(report)
		view.Report = &resp
		period = report.Period.String()
	}

	view.Catalogue = h.catalogue(ctx, symbols)
	view.Periods = periodOptions(period)
	c.HTML(status, web.DashboardTemplate, view)
}

// catalogue lists the selectable symbols, keeping any selected symbol that
// is not in the catalogue so the form re-submits it.
func (h *AnalysisHandler) catalogue(ctx context.Context, selected []string) []option {
	var codes []string
	if h.symbols != nil {
		var err error
		codes, err = h.symbols.ListActiveCodes(ctx)
		if err != nil {
			slog.Warn("symbol catalogue unavailable", "error", err)
		}
	}

	chosen := make(map[string]bool)
	for _, s := range entity.NormalizeSymbols(selected) {
		chosen[s] = true
	}

	out := make([]option, 0, len(codes)+len(chosen))
	listed := make(map[string]bool, len(codes))
	for _, code := range codes {
		listed[code] = true
		out = append(out, option{Value: code, Selected: chosen[code]})
	}
	for _, s := range entity.NormalizeSymbols(selected) {
		if !listed[s] {
			out = append(out, option{Value: s, Selected: true})
		}
	}
	return out
}

func periodOptions(selected string) []option {
	out := make([]option, 0, len(candles.Periods))
	for _, p := range candles.Periods {
		out = append(out, option{Value: p.String(), Selected: p.String() == selected})
	}
	return out
}

func statusFor(err error) int {
	if errors.Is(err, candlesdomain.ErrInvalidPeriod) {
		return http.StatusBadRequest
	}
	slog.Error("analysis failed", "error", err)
	return http.StatusInternalServerError
}
