package sievego

import (
	"log/slog"

	"github.com/hupe1980/sievego/engine"
	"github.com/hupe1980/sievego/progress"
	"github.com/hupe1980/sievego/sieve"
)

// Selection thresholds. These are configuration, not hard-coded magic: both
// can be overridden per Generator, and WithForceMode bypasses selection
// entirely.
const (
	// SegmentedThreshold is the bound at and above which the segmented
	// sieve replaces the classic full-range sieve.
	SegmentedThreshold = 10_000_000

	// ParallelThreshold is the bound at and above which a parallel request
	// is honored. Below it the per-worker chunks are too small for the
	// dispatch overhead to pay off.
	ParallelThreshold = 500_000_000

	// DefaultSegmentSize is the default width of one segment.
	DefaultSegmentSize = sieve.DefaultSegmentSize
)

// Mode identifies which sieving algorithm runs.
type Mode int

const (
	// ModeAuto selects the algorithm from the bound and thresholds.
	ModeAuto Mode = iota
	// ModeClassic forces the full-range odd-only sieve.
	ModeClassic
	// ModeSegmented forces the sequential segmented sieve.
	ModeSegmented
	// ModeParallel forces the parallel segmented sieve.
	ModeParallel
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeClassic:
		return "classic"
	case ModeSegmented:
		return "segmented"
	case ModeParallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// ParseMode maps a mode name to its Mode. Unknown names map to ModeAuto.
func ParseMode(s string) Mode {
	switch s {
	case "classic":
		return ModeClassic
	case "segmented":
		return ModeSegmented
	case "parallel":
		return ModeParallel
	default:
		return ModeAuto
	}
}

type options struct {
	parallel           bool
	forceMode          Mode
	segmentSize        int
	workers            int
	segmentedThreshold int
	parallelThreshold  int
	progress           progress.Callback
	runnerFactory      func() engine.Runner
	logger             *Logger
	metricsCollector   MetricsCollector
}

// Option configures a Generator.
type Option func(*options)

// WithParallel enables the parallel segmented sieve for bounds at or above
// the parallel threshold. Parallelism never changes correctness, only
// latency.
func WithParallel(parallel bool) Option {
	return func(o *options) {
		o.parallel = parallel
	}
}

// WithForceMode forces a specific algorithm regardless of the bound.
func WithForceMode(mode Mode) Option {
	return func(o *options) {
		o.forceMode = mode
	}
}

// WithSegmentSize sets the segment width for the segmented paths.
// Non-positive values select DefaultSegmentSize.
func WithSegmentSize(size int) Option {
	return func(o *options) {
		o.segmentSize = size
	}
}

// WithWorkers sets the parallel worker count. Non-positive selects the
// default, max(1, NumCPU-1); the count is always clamped to the number of
// segments.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithSegmentedThreshold overrides SegmentedThreshold for this Generator.
func WithSegmentedThreshold(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.segmentedThreshold = n
		}
	}
}

// WithParallelThreshold overrides ParallelThreshold for this Generator.
func WithParallelThreshold(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.parallelThreshold = n
		}
	}
}

// WithProgress attaches a progress callback.
//
// The classic sieve reports once per outer marking iteration; the segmented
// paths report deltas of completed segments, summing to the exact segment
// count per call regardless of worker count. Pass nil to disable reporting.
func WithProgress(cb progress.Callback) Option {
	return func(o *options) {
		o.progress = cb
	}
}

// WithRunner overrides how the parallel engine schedules worker tasks.
// The factory is invoked once per parallel generate.
func WithRunner(factory func() engine.Runner) Option {
	return func(o *options) {
		o.runnerFactory = factory
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		forceMode:          ModeAuto,
		segmentSize:        DefaultSegmentSize,
		segmentedThreshold: SegmentedThreshold,
		parallelThreshold:  ParallelThreshold,
		logger:             NoopLogger(),
		metricsCollector:   NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.segmentSize <= 0 {
		o.segmentSize = DefaultSegmentSize
	}
	return o
}
