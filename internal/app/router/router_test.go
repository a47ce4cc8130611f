package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etf_dashboard/internal/feature/analysis/domain/entity"
	analysishandler "etf_dashboard/internal/feature/analysis/transport/handler"
	"etf_dashboard/internal/feature/analysis/presenter"
	candles "etf_dashboard/internal/feature/candles/domain/entity"
	candleshandler "etf_dashboard/internal/feature/candles/transport/handler"
	symbolentity "etf_dashboard/internal/feature/symbollist/domain/entity"
	symbollisthandler "etf_dashboard/internal/feature/symbollist/transport/handler"
)

type stubAnalyzer struct{}

func (stubAnalyzer) Analyze(ctx context.Context, symbols []string, period string) (entity.Report, error) {
	return entity.Report{Period: candles.DefaultPeriod, Table: presenter.BuildTable(nil)}, nil
}

type stubCandles struct{}

func (stubCandles) GetChart(ctx context.Context, symbol, period string) (candles.Chart, error) {
	return candles.Chart{History: candles.History{Symbol: symbol}}, nil
}

type stubSymbols struct{}

func (stubSymbols) ListActiveSymbols(ctx context.Context) ([]symbolentity.Symbol, error) {
	return symbolentity.DefaultCatalogue, nil
}

func (stubSymbols) ListActiveCodes(ctx context.Context) ([]string, error) {
	return []string{"SPY"}, nil
}

func newTestRouter(t *testing.T, metrics http.Handler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r, err := NewRouter(Handlers{
		Analysis: analysishandler.NewAnalysisHandler(stubAnalyzer{}, stubSymbols{}),
		Candles:  candleshandler.NewCandlesHandler(stubCandles{}),
		Symbols:  symbollisthandler.NewSymbolHandler(stubSymbols{}),
		Metrics:  metrics,
	})
	require.NoError(t, err)
	return r
}

// TestNewRouter_Routes はすべてのエンドポイントが登録され応答することを検証します。
func TestNewRouter_Routes(t *testing.T) {
	t.Parallel()

	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})
	r := newTestRouter(t, metrics)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodHead, "/healthz", http.StatusOK},
		{http.MethodOptions, "/healthz", http.StatusNoContent},
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/api/analysis?symbols=SPY", http.StatusOK},
		{http.MethodGet, "/api/history/spy?period=3mo", http.StatusOK},
		{http.MethodGet, "/api/symbols", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(tt.method, tt.path, nil)
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestNewRouter_WithoutMetrics(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
