// Package metrics exposes Prometheus collectors for the search engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SearchMetrics counts search turns and catalog failures.
type SearchMetrics struct {
	registry *prometheus.Registry

	searchesTotal   *prometheus.CounterVec
	searchDuration  prometheus.Histogram
	catalogFailures prometheus.Counter
	resultsReturned prometheus.Histogram
}

func NewSearchMetrics() *SearchMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	m := &SearchMetrics{
		registry: registry,
		searchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "casafinder",
				Subsystem: "search",
				Name:      "requests_total",
				Help:      "Search turns by outcome.",
			},
			[]string{"outcome"},
		),
		searchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "casafinder",
				Subsystem: "search",
				Name:      "duration_seconds",
				Help:      "End-to-end search duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
		),
		catalogFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "casafinder",
				Subsystem: "catalog",
				Name:      "failures_total",
				Help:      "Catalog fetches that failed past the retry budget.",
			},
		),
		resultsReturned: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "casafinder",
				Subsystem: "search",
				Name:      "results_returned",
				Help:      "Matches returned per search.",
				Buckets:   []float64{0, 1, 2, 3, 5, 8, 10},
			},
		),
	}
	registry.MustRegister(m.searchesTotal, m.searchDuration, m.catalogFailures, m.resultsReturned)
	return m
}

// ObserveSearch records one completed search turn.
func (m *SearchMetrics) ObserveSearch(outcome string, seconds float64, results int) {
	if m == nil {
		return
	}
	m.searchesTotal.WithLabelValues(outcome).Inc()
	m.searchDuration.Observe(seconds)
	m.resultsReturned.Observe(float64(results))
}

// ObserveCatalogFailure records one hard catalog failure.
func (m *SearchMetrics) ObserveCatalogFailure() {
	if m == nil {
		return
	}
	m.catalogFailures.Inc()
}

// Handler serves the registry in Prometheus text format.
func (m *SearchMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
