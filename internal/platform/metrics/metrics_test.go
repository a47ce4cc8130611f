package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnalysis_ExposedByHandler(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	m := NewAnalysis(reg, "etf", "analysis")

	m.Requests.With("method", "Analyze", "error", "false").Add(1)
	m.Duration.With("method", "Analyze", "error", "false").Observe(0.25)
	m.Outcomes.With("outcome", "no_data").Add(2)

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `etf_analysis_request_count{error="false",method="Analyze"} 1`)
	assert.Contains(t, string(body), `etf_analysis_request_duration_seconds_count{error="false",method="Analyze"} 1`)
	assert.Contains(t, string(body), `etf_analysis_symbol_outcomes_total{outcome="no_data"} 2`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNewAnalysis_DuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	NewAnalysis(reg, "etf", "analysis")

	assert.Panics(t, func() { NewAnalysis(reg, "etf", "analysis") })
}
