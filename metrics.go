package sievego

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; a
// Prometheus implementation ships as PrometheusCollector.
type MetricsCollector interface {
	// RecordGenerate is called after each generate operation.
	// mode is the mode that actually ran (after fallback), count is the
	// number of primes produced, err is nil if successful.
	RecordGenerate(mode Mode, count int, duration time.Duration, err error)

	// RecordSegments is called with the number of segments completed by a
	// segmented run (sequential or parallel).
	RecordSegments(segments int)

	// RecordFallback is called when the parallel path degrades to the
	// sequential path. err is the dispatch error that triggered it.
	RecordFallback(err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGenerate(Mode, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSegments(int)                             {}
func (NoopMetricsCollector) RecordFallback(error)                           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GenerateCount      atomic.Int64
	GenerateErrors     atomic.Int64
	GenerateTotalNanos atomic.Int64
	PrimesProduced     atomic.Int64
	SegmentsCompleted  atomic.Int64
	Fallbacks          atomic.Int64
}

// RecordGenerate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGenerate(mode Mode, count int, duration time.Duration, err error) {
	b.GenerateCount.Add(1)
	b.GenerateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GenerateErrors.Add(1)
		return
	}
	b.PrimesProduced.Add(int64(count))
}

// RecordSegments implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSegments(segments int) {
	b.SegmentsCompleted.Add(int64(segments))
}

// RecordFallback implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFallback(error) {
	b.Fallbacks.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		GenerateCount:     b.GenerateCount.Load(),
		GenerateErrors:    b.GenerateErrors.Load(),
		PrimesProduced:    b.PrimesProduced.Load(),
		SegmentsCompleted: b.SegmentsCompleted.Load(),
		Fallbacks:         b.Fallbacks.Load(),
	}
	if stats.GenerateCount > 0 {
		stats.GenerateAvgNanos = b.GenerateTotalNanos.Load() / stats.GenerateCount
	}
	return stats
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GenerateCount     int64
	GenerateErrors    int64
	GenerateAvgNanos  int64
	PrimesProduced    int64
	SegmentsCompleted int64
	Fallbacks         int64
}
