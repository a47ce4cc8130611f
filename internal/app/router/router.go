// Package router はHTTPルーティングを組み立てます。
package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	analysishandler "etf_dashboard/internal/feature/analysis/transport/handler"
	"etf_dashboard/internal/feature/analysis/transport/web"
	candleshandler "etf_dashboard/internal/feature/candles/transport/handler"
	symbollisthandler "etf_dashboard/internal/feature/symbollist/transport/handler"
	"etf_dashboard/internal/platform/http/handler"
)

// Handlers はルーターに登録するハンドラー群です。
// Health が nil の場合は依存チェックなしのヘルスチェックを使い、
// Metrics が nil の場合 /metrics は公開しません。
type Handlers struct {
	Analysis *analysishandler.AnalysisHandler
	Candles  *candleshandler.CandlesHandler
	Symbols  *symbollisthandler.SymbolHandler
	Health   gin.HandlerFunc
	Metrics  http.Handler
}

// NewRouter はすべてのエンドポイントを登録したginエンジンを返します。
func NewRouter(h Handlers) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)

	health := h.Health
	if health == nil {
		health = handler.Health(nil)
	}
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.OPTIONS("/healthz", health)

	// ダッシュボード画面
	r.GET("/", h.Analysis.Dashboard)

	api := r.Group("/api")
	{
		api.GET("/analysis", h.Analysis.GetAnalysis)
		api.GET("/history/:symbol", h.Candles.GetHistory)
		api.GET("/symbols", h.Symbols.List)
	}

	if h.Metrics != nil {
		r.GET("/metrics", gin.WrapH(h.Metrics))
	}

	return r, nil
}
