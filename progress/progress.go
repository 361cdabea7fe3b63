// Package progress defines the progress-reporting contract shared by all
// execution modes.
//
// A reporter is a capability, not a concrete type: anything invocable with an
// integer delta. The sequential drivers call the callback synchronously on
// the calling goroutine; the parallel engine increments a shared Counter and
// a Monitor polls it, forwarding deltas to the same callback contract so
// callers see a uniform interface regardless of execution mode.
package progress

import (
	"sync"
	"sync/atomic"
	"time"
)

// Callback receives progress deltas. Implementations must be fast; they are
// invoked on the sieving goroutine in sequential mode.
type Callback func(delta int)

// Counter is a monotonically increasing completed-work counter shared by
// concurrent workers. The zero value is ready to use.
type Counter struct {
	completed atomic.Int64
}

// Add records delta units of completed work.
func (c *Counter) Add(delta int) {
	c.completed.Add(int64(delta))
}

// Load returns the completed-work total.
func (c *Counter) Load() int64 {
	return c.completed.Load()
}

// DefaultPollInterval is how often a Monitor observes its Counter.
const DefaultPollInterval = 100 * time.Millisecond

// Monitor forwards Counter movement to a Callback from a dedicated
// goroutine. It never touches sieve state and never blocks workers: workers
// only perform atomic increments, the monitor only reads.
//
// Stop must be called (and returns) before results are handed to the caller,
// including on error paths, so that no callback fires after the run returns.
type Monitor struct {
	counter  *Counter
	cb       Callback
	interval time.Duration

	lastSeen int64
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// StartMonitor begins polling counter every interval, reporting deltas since
// the last observation to cb. A non-positive interval selects
// DefaultPollInterval.
func StartMonitor(counter *Counter, cb Callback, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	m := &Monitor{
		counter:  counter,
		cb:       cb,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go m.run()
	return m
}

func (m *Monitor) run() {
	defer close(m.doneCh)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			// Final observation so deltas sum to the full work total
			// even when the last increment landed between ticks.
			m.flush()
			return
		case <-ticker.C:
			m.flush()
		}
	}
}

func (m *Monitor) flush() {
	current := m.counter.Load()
	if current > m.lastSeen {
		m.cb(int(current - m.lastSeen))
		m.lastSeen = current
	}
}

// Stop signals the monitor and waits for it to exit, at most timeout. The
// bounded join guarantees a stuck callback can never block returning results
// that are already complete. Stop is idempotent.
func (m *Monitor) Stop(timeout time.Duration) {
	m.stopOnce.Do(func() {
		close(m.stopCh)
	})
	if timeout <= 0 {
		<-m.doneCh
		return
	}
	select {
	case <-m.doneCh:
	case <-time.After(timeout):
	}
}
