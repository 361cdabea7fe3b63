package sievego

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements MetricsCollector on top of a Prometheus
// registry.
type PrometheusCollector struct {
	generates *prometheus.CounterVec
	errors    prometheus.Counter
	duration  prometheus.Histogram
	primes    prometheus.Counter
	segments  prometheus.Counter
	fallbacks prometheus.Counter
}

// NewPrometheusCollector creates and registers the sievego metric set on
// reg. If reg is nil, prometheus.DefaultRegisterer is used.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &PrometheusCollector{
		generates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sievego",
			Name:      "generate_total",
			Help:      "Completed generate operations by execution mode.",
		}, []string{"mode"}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sievego",
			Name:      "generate_errors_total",
			Help:      "Failed generate operations.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sievego",
			Name:      "generate_duration_seconds",
			Help:      "Generate operation latency.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		primes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sievego",
			Name:      "primes_produced_total",
			Help:      "Primes produced across all generate operations.",
		}),
		segments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sievego",
			Name:      "segments_completed_total",
			Help:      "Segments completed by segmented runs.",
		}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sievego",
			Name:      "parallel_fallbacks_total",
			Help:      "Parallel dispatch failures recovered sequentially.",
		}),
	}

	reg.MustRegister(c.generates, c.errors, c.duration, c.primes, c.segments, c.fallbacks)

	return c
}

// RecordGenerate implements MetricsCollector.
func (c *PrometheusCollector) RecordGenerate(mode Mode, count int, duration time.Duration, err error) {
	c.generates.WithLabelValues(mode.String()).Inc()
	c.duration.Observe(duration.Seconds())
	if err != nil {
		c.errors.Inc()
		return
	}
	c.primes.Add(float64(count))
}

// RecordSegments implements MetricsCollector.
func (c *PrometheusCollector) RecordSegments(segments int) {
	c.segments.Add(float64(segments))
}

// RecordFallback implements MetricsCollector.
func (c *PrometheusCollector) RecordFallback(error) {
	c.fallbacks.Inc()
}
