package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's instruments on a private registry so several
// servers can live in one process.
type Metrics struct {
	registry      *prometheus.Registry
	calculations  *prometheus.CounterVec
	queries       *prometheus.CounterVec
	queryDuration prometheus.Histogram
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "percent_calculations_total",
			Help: "Calculations served, by mode and outcome.",
		}, []string{"mode", "outcome"}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "percent_queries_total",
			Help: "Assistant questions settled, by outcome.",
		}, []string{"outcome"}),
		queryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "percent_query_duration_seconds",
			Help:    "Time taken to settle an assistant question.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.calculations,
		m.queries,
		m.queryDuration,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
