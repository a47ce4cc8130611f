package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/go-kit/kit/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etf_dashboard/internal/feature/analysis/domain/entity"
	"etf_dashboard/internal/feature/analysis/usecase"
)

// recorder collects metric values keyed by their joined label values.
type recorder struct {
	mu     sync.Mutex
	values map[string]float64
	counts map[string]int
}

func newRecorder() *recorder {
	return &recorder{values: map[string]float64{}, counts: map[string]int{}}
}

func (r *recorder) add(key string, v float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] += v
	r.counts[key]++
}

type fakeCounter struct {
	rec *recorder
	lvs []string
}

func (c fakeCounter) With(labelValues ...string) metrics.Counter {
	return fakeCounter{rec: c.rec, lvs: append(append([]string{}, c.lvs...), labelValues...)}
}

func (c fakeCounter) Add(delta float64) { c.rec.add(strings.Join(c.lvs, ","), delta) }

type fakeHistogram struct {
	rec *recorder
	lvs []string
}

func (h fakeHistogram) With(labelValues ...string) metrics.Histogram {
	return fakeHistogram{rec: h.rec, lvs: append(append([]string{}, h.lvs...), labelValues...)}
}

func (h fakeHistogram) Observe(value float64) { h.rec.add(strings.Join(h.lvs, ","), value) }

type mockAnalyzer struct {
	AnalyzeFunc func(ctx context.Context, symbols []string, period string) (entity.Report, error)
}

func (m *mockAnalyzer) Analyze(ctx context.Context, symbols []string, period string) (entity.Report, error) {
	return m.AnalyzeFunc(ctx, symbols, period)
}

func TestInstrumentingMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("records request and symbol outcomes", func(t *testing.T) {
		t.Parallel()
		count, duration, outcomes := newRecorder(), newRecorder(), newRecorder()
		next := &mockAnalyzer{AnalyzeFunc: func(ctx context.Context, symbols []string, period string) (entity.Report, error) {
			return entity.Report{
				Symbols: []entity.SymbolReport{{Symbol: "SPY"}, {Symbol: "QQQ"}},
				Notices: []entity.Notice{{Symbol: "ZZZZ", Kind: entity.NoticeNoData}},
			}, nil
		}}
		mw := usecase.NewInstrumentingMiddleware(fakeCounter{rec: count}, fakeHistogram{rec: duration}, fakeCounter{rec: outcomes}, next)

		report, err := mw.Analyze(context.Background(), []string{"SPY", "QQQ", "ZZZZ"}, "1mo")

		require.NoError(t, err)
		assert.Len(t, report.Symbols, 2)
		assert.Equal(t, 1.0, count.values["method,Analyze,error,false"])
		assert.Equal(t, 1, duration.counts["method,Analyze,error,false"])
		assert.Equal(t, 2.0, outcomes.values["outcome,ok"])
		assert.Equal(t, 1.0, outcomes.values["outcome,no_data"])
	})

	t.Run("records errors", func(t *testing.T) {
		t.Parallel()
		count, duration, outcomes := newRecorder(), newRecorder(), newRecorder()
		next := &mockAnalyzer{AnalyzeFunc: func(ctx context.Context, symbols []string, period string) (entity.Report, error) {
			return entity.Report{}, errors.New("invalid period")
		}}
		mw := usecase.NewInstrumentingMiddleware(fakeCounter{rec: count}, fakeHistogram{rec: duration}, fakeCounter{rec: outcomes}, next)

		_, err := mw.Analyze(context.Background(), nil, "2w")

		assert.Error(t, err)
		assert.Equal(t, 1.0, count.values["method,Analyze,error,true"])
		assert.Empty(t, outcomes.values)
	})
}
