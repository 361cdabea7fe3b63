package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sievego/progress"
	"github.com/hupe1980/sievego/sieve"
)

// failingRunner simulates an environment that cannot start workers.
type failingRunner struct{}

func (failingRunner) Go(func() error) error { return errors.New("no parallelism available") }
func (failingRunner) Wait() error           { return nil }

func TestDistributor_MatchesSequential(t *testing.T) {
	bounds := []int{3, 10, 30, 50, 100, 1000, 5000, 100_000}
	sizes := []int{1, 10, 100, 1000, sieve.DefaultSegmentSize}
	workerCounts := []int{1, 2, 4}

	ctx := context.Background()

	for _, n := range bounds {
		want, err := sieve.Segmented(n, sieve.DefaultSegmentSize, nil)
		require.NoError(t, err)

		base, err := sieve.BasePrimes(n)
		require.NoError(t, err)

		for _, size := range sizes {
			for _, workers := range workerCounts {
				d := NewDistributor(size, WithWorkers(workers))
				got, err := d.Sieve(ctx, n, base)
				require.NoError(t, err)
				assert.Equal(t, want, got, "n=%d segmentSize=%d workers=%d", n, size, workers)
			}
		}
	}
}

func TestDistributor_EmptyBounds(t *testing.T) {
	ctx := context.Background()
	d := NewDistributor(10, WithWorkers(2))

	for _, n := range []int{0, 1, 2} {
		got, err := d.Sieve(ctx, n, nil)
		require.NoError(t, err)
		assert.Empty(t, got, "n=%d", n)
	}
}

func TestDistributor_NegativeBound(t *testing.T) {
	d := NewDistributor(10)
	_, err := d.Sieve(context.Background(), -1, nil)
	require.ErrorIs(t, err, sieve.ErrNegativeBound)
}

func TestDistributor_CounterTotal(t *testing.T) {
	n := 100_000
	size := 1000
	base, err := sieve.BasePrimes(n)
	require.NoError(t, err)

	for _, workers := range []int{1, 2, 4, 7} {
		var counter progress.Counter
		d := NewDistributor(size, WithWorkers(workers), WithCounter(&counter))

		_, err := d.Sieve(context.Background(), n, base)
		require.NoError(t, err)

		// Every segment advances the counter exactly once, including
		// segments below 2, regardless of how chunks fell.
		assert.Equal(t, int64(sieve.SegmentCount(n, size)), counter.Load(), "workers=%d", workers)
	}
}

func TestDistributor_WorkersClampedToSegments(t *testing.T) {
	// 10 segments, 64 requested workers: the result must still be exact.
	n := 100
	base, err := sieve.BasePrimes(n)
	require.NoError(t, err)

	want, err := sieve.Segmented(n, 10, nil)
	require.NoError(t, err)

	d := NewDistributor(10, WithWorkers(64))
	got, err := d.Sieve(context.Background(), n, base)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDistributor_DispatchFailure(t *testing.T) {
	base, err := sieve.BasePrimes(1000)
	require.NoError(t, err)

	d := NewDistributor(100, WithWorkers(2), WithRunner(func() Runner {
		return failingRunner{}
	}))

	got, err := d.Sieve(context.Background(), 1000, base)
	require.Error(t, err)
	assert.Nil(t, got)

	// The failure is the named dispatch variant, so callers can fall back.
	assert.ErrorIs(t, err, ErrDispatch)

	var dispatch *ErrWorkerDispatch
	require.ErrorAs(t, err, &dispatch)
	assert.Equal(t, 2, dispatch.Workers)
}

func TestDistributor_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	base, err := sieve.BasePrimes(10_000)
	require.NoError(t, err)

	d := NewDistributor(100, WithWorkers(2))
	_, err = d.Sieve(ctx, 10_000, base)
	require.Error(t, err)

	// Cancellation is not a dispatch failure and must not suggest fallback.
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrDispatch)
}

func TestDefaultWorkers(t *testing.T) {
	assert.GreaterOrEqual(t, DefaultWorkers(), 1)
}

func BenchmarkDistributor(b *testing.B) {
	n := 1_000_000
	base, err := sieve.BasePrimes(n)
	if err != nil {
		b.Fatal(err)
	}
	d := NewDistributor(100_000, WithWorkers(4))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Sieve(context.Background(), n, base)
	}
}
