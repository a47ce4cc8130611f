// Package metrics wires go-kit metrics to a Prometheus registry and exposes
// it over HTTP.
package metrics

import (
	"net/http"

	"github.com/go-kit/kit/metrics"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// Analysis holds the collectors of the analysis use case.
type Analysis struct {
	Requests metrics.Counter   // labels: method, error
	Duration metrics.Histogram // labels: method, error
	Outcomes metrics.Counter   // labels: outcome
}

// NewAnalysis registers the analysis collectors on reg.
func NewAnalysis(reg prometheus.Registerer, namespace, subsystem string) Analysis {
	methodError := []string{"method", "error"}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_count",
		Help:      "Number of analysis requests.",
	}, methodError)
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Duration of analysis requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, methodError)
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "symbol_outcomes_total",
		Help:      "Analysed symbols by outcome (ok, no_data, error).",
	}, []string{"outcome"})

	reg.MustRegister(requests, duration, outcomes)

	return Analysis{
		Requests: kitprometheus.NewCounter(requests),
		Duration: kitprometheus.NewHistogram(duration),
		Outcomes: kitprometheus.NewCounter(outcomes),
	}
}
