package bench

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/sortsearch"
)

// PrometheusCollector implements sortsearch.MetricsCollector on a private
// registry. Results can be exported as a node-exporter textfile; nothing is
// served over the network.
type PrometheusCollector struct {
	registry *prometheus.Registry
	latency  *prometheus.HistogramVec
	queries  *prometheus.CounterVec
	meanMs   *prometheus.GaugeVec
}

// NewPrometheusCollector creates a collector with its own registry.
func NewPrometheusCollector() *PrometheusCollector {
	p := &PrometheusCollector{
		registry: prometheus.NewRegistry(),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sortsearch_search_latency_seconds",
			Help:    "Latency of a batched search call",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"strategy", "status"}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sortsearch_queries_total",
			Help: "Total queries answered",
		}, []string{"strategy"}),
		meanMs: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sortsearch_bench_mean_milliseconds",
			Help: "Mean time per search call of a benchmark cell",
		}, []string{"strategy", "side", "a_size", "v_size"}),
	}

	p.registry.MustRegister(p.latency, p.queries, p.meanMs)
	return p
}

// RecordSearch implements sortsearch.MetricsCollector.
func (p *PrometheusCollector) RecordSearch(kind sortsearch.StrategyKind, _, m int, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	p.latency.WithLabelValues(kind.String(), status).Observe(d.Seconds())
	if err == nil {
		p.queries.WithLabelValues(kind.String()).Add(float64(m))
	}
}

// ObserveResult records the mean of a finished benchmark cell.
// Pass it to Run with WithObserver.
func (p *PrometheusCollector) ObserveResult(r Result) {
	p.meanMs.WithLabelValues(
		r.Strategy.String(),
		r.Side.String(),
		strconv.Itoa(r.N),
		strconv.Itoa(r.M),
	).Set(Milliseconds(r.Mean))
}

// Registry returns the underlying registry.
func (p *PrometheusCollector) Registry() *prometheus.Registry {
	return p.registry
}

// WriteTextfile writes every metric in the text exposition format to path.
func (p *PrometheusCollector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, p.registry)
}
