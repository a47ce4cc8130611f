package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/go-kit/kit/metrics"

	"etf_dashboard/internal/feature/analysis/domain/entity"
)

// instrumentingMiddleware wraps an Analyzer and records request metrics.
type instrumentingMiddleware struct {
	reqCount      metrics.Counter
	reqDuration   metrics.Histogram
	symbolOutcome metrics.Counter
	next          Analyzer
}

// NewInstrumentingMiddleware returns an Analyzer that records the count and
// duration of every call plus one outcome per requested symbol
// ("ok", "no_data" or "error").
func NewInstrumentingMiddleware(reqCount metrics.Counter, reqDuration metrics.Histogram, symbolOutcome metrics.Counter, next Analyzer) Analyzer {
	return &instrumentingMiddleware{
		reqCount:      reqCount,
		reqDuration:   reqDuration,
		symbolOutcome: symbolOutcome,
		next:          next,
	}
}

func (m *instrumentingMiddleware) Analyze(ctx context.Context, symbols []string, period string) (report entity.Report, err error) {
	defer func(begin time.Time) {
		m.recordMetrics("Analyze", begin, err)
		if err == nil {
			m.recordOutcomes(report)
		}
	}(time.Now())
	return m.next.Analyze(ctx, symbols, period)
}

func (m *instrumentingMiddleware) recordMetrics(method string, begin time.Time, err error) {
	labels := []string{
		"method", method,
		"error", strconv.FormatBool(err != nil),
	}
	m.reqCount.With(labels...).Add(1)
	m.reqDuration.With(labels...).Observe(time.Since(begin).Seconds())
}

func (m *instrumentingMiddleware) recordOutcomes(report entity.Report) {
	if len(report.Symbols) > 0 {
		m.symbolOutcome.With("outcome", "ok").Add(float64(len(report.Symbols)))
	}
	for _, n := range report.Notices {
		m.symbolOutcome.With("outcome", string(n.Kind)).Add(1)
	}
}
