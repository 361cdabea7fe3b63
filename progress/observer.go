package progress

import (
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Noop returns a Callback that discards all deltas.
func Noop() Callback {
	return func(int) {}
}

// LoggingObserver adapts a slog.Logger to the Callback contract, emitting a
// structured line with completed/total counts. Emission is throttled so a
// tight sieving loop cannot flood the log.
type LoggingObserver struct {
	logger *slog.Logger
	total  int

	mu        sync.Mutex
	completed int
	sometimes rate.Sometimes
}

// NewLoggingObserver creates a LoggingObserver reporting against total work
// units, logging at most once per interval (plus the first delta).
func NewLoggingObserver(logger *slog.Logger, total int, interval time.Duration) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &LoggingObserver{
		logger:    logger,
		total:     total,
		sometimes: rate.Sometimes{First: 1, Interval: interval},
	}
}

// Update implements the Callback contract; pass o.Update as the callback.
func (o *LoggingObserver) Update(delta int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.completed += delta
	completed := o.completed
	o.sometimes.Do(func() {
		o.logger.Info("sieve progress",
			"completed", completed,
			"total", o.total,
		)
	})
}

// Completed returns the number of work units observed so far.
func (o *LoggingObserver) Completed() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.completed
}
