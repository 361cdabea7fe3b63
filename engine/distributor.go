package engine

import (
	"context"
	"errors"
	"runtime"

	"github.com/hupe1980/sievego/progress"
	"github.com/hupe1980/sievego/sieve"
)

// Distributor partitions segment sieving across a fixed set of workers.
type Distributor struct {
	segmentSize int
	numWorkers  int
	counter     *progress.Counter
	runner      func() Runner
}

// DistributorOption configures a Distributor.
type DistributorOption func(*Distributor)

// WithWorkers sets the worker count. Non-positive selects the default,
// max(1, NumCPU-1); the count is always clamped to the segment count since a
// worker beyond the number of segments is wasteful.
func WithWorkers(n int) DistributorOption {
	return func(d *Distributor) {
		d.numWorkers = n
	}
}

// WithCounter attaches a shared progress counter, incremented once per
// completed segment across all workers.
func WithCounter(c *progress.Counter) DistributorOption {
	return func(d *Distributor) {
		d.counter = c
	}
}

// WithRunner overrides how worker tasks are scheduled. The factory is called
// once per Sieve invocation.
func WithRunner(factory func() Runner) DistributorOption {
	return func(d *Distributor) {
		d.runner = factory
	}
}

// NewDistributor creates a Distributor sieving segments of segmentSize.
func NewDistributor(segmentSize int, optFns ...DistributorOption) *Distributor {
	if segmentSize <= 0 {
		segmentSize = sieve.DefaultSegmentSize
	}
	d := &Distributor{
		segmentSize: segmentSize,
		numWorkers:  DefaultWorkers(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(d)
		}
	}
	if d.numWorkers <= 0 {
		d.numWorkers = DefaultWorkers()
	}
	if d.runner == nil {
		workers := d.numWorkers
		d.runner = func() Runner { return NewGroupRunner(workers) }
	}
	return d
}

// DefaultWorkers returns the default parallel worker count: one less than
// the available parallelism, leaving a CPU for the orchestrating goroutine
// and the progress monitor, and never less than 1.
func DefaultWorkers() int {
	if n := runtime.NumCPU() - 1; n > 1 {
		return n
	}
	return 1
}

// Sieve generates all primes below n in parallel and returns the merged,
// globally ordered sequence.
//
// basePrimes must cover sqrt(n) (see sieve.BasePrimes); it is shared
// read-only by every worker. On dispatch failure the returned error matches
// ErrDispatch and no result is produced; the caller is expected to fall back
// to sieve.Segmented over the same parameters.
func (d *Distributor) Sieve(ctx context.Context, n int, basePrimes []int) ([]int, error) {
	if n < 0 {
		return nil, &sieve.ErrInvalidBound{N: n}
	}
	if n <= 2 {
		return nil, nil
	}

	segments := sieve.SegmentCount(n, d.segmentSize)

	workers := d.numWorkers
	if workers > segments {
		workers = segments
	}
	if workers < 1 {
		workers = 1
	}

	// ceil(segments / workers); contiguous chunks partition [0, segments)
	// exactly, with no overlap and no gaps.
	chunkSize := (segments + workers - 1) / workers

	streams := make([][]int, workers)
	runner := d.runner()

	for i := 0; i < workers; i++ {
		startSeg := i * chunkSize
		if startSeg >= segments {
			// Remaining workers have no chunk; they are not created.
			streams = streams[:i]
			break
		}
		endSeg := startSeg + chunkSize
		if endSeg > segments {
			endSeg = segments
		}

		slot := i
		task := func() error {
			streams[slot] = sieveChunk(startSeg, endSeg, n, d.segmentSize, basePrimes, d.counter)
			return ctx.Err()
		}
		if err := runner.Go(task); err != nil {
			// Runner.Go contracts that a failed dispatch ran no part of
			// the task; waiting drains anything already scheduled.
			_ = runner.Wait()
			return nil, &ErrWorkerDispatch{Workers: workers, cause: err}
		}
	}

	if err := runner.Wait(); err != nil {
		// Cancellation is the caller's decision, not a dispatch failure;
		// it must not trigger a sequential fallback.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, &ErrWorkerDispatch{Workers: workers, cause: err}
	}

	return Merge(streams), nil
}

// sieveChunk is the worker entry point: it sieves the contiguous segment
// span [startSeg, endSeg) and returns the primes found, ordered. Pure given
// its inputs aside from the counter side effect.
func sieveChunk(startSeg, endSeg, n, segmentSize int, basePrimes []int, counter *progress.Counter) []int {
	var primes []int

	buf := sieve.GetBuffer(segmentSize)
	defer sieve.PutBuffer(buf)

	for segIdx := startSeg; segIdx < endSeg; segIdx++ {
		low := segIdx * segmentSize
		high := low + segmentSize
		if high > n {
			high = n
		}

		if high > 2 {
			primes = append(primes, sieve.Segment(low, high, basePrimes, buf)...)
		}

		// Segments entirely below 2 still advance the counter so total
		// progress equals the segment count exactly.
		if counter != nil {
			counter.Add(1)
		}
	}

	return primes
}
