package sievego

import (
	"context"
	"errors"
	"time"

	"github.com/hupe1980/sievego/engine"
	"github.com/hupe1980/sievego/progress"
	"github.com/hupe1980/sievego/sieve"
)

// monitorStopTimeout bounds the join of the progress monitor so a stuck
// callback can never block returning results that are already complete.
const monitorStopTimeout = time.Second

// Generator produces ordered prime sequences. It is safe for concurrent use:
// all per-call state lives on the stack of Generate.
type Generator struct {
	opts options
}

// New creates a Generator with the given options.
func New(optFns ...Option) *Generator {
	return &Generator{
		opts: applyOptions(optFns),
	}
}

// Generate returns all primes below n in strictly increasing order.
//
// It returns ErrNegativeBound when n < 0 and an empty result when n <= 2.
// The returned sequence for a given n never varies with execution mode,
// worker count, or progress/reporting failures — only latency does.
func (g *Generator) Generate(ctx context.Context, n int) ([]int, error) {
	start := time.Now()

	mode := g.selectMode(n)

	primes, ran, err := g.run(ctx, n, mode)

	g.opts.metricsCollector.RecordGenerate(ran, len(primes), time.Since(start), err)
	g.opts.logger.LogGenerate(ctx, n, ran, len(primes), time.Since(start), err)

	return primes, err
}

// selectMode applies the threshold policy, honoring a forced mode.
func (g *Generator) selectMode(n int) Mode {
	if g.opts.forceMode != ModeAuto {
		return g.opts.forceMode
	}
	switch {
	case n < g.opts.segmentedThreshold:
		return ModeClassic
	case g.opts.parallel && n >= g.opts.parallelThreshold:
		return ModeParallel
	default:
		return ModeSegmented
	}
}

func (g *Generator) run(ctx context.Context, n int, mode Mode) ([]int, Mode, error) {
	if n < 0 {
		return nil, mode, &sieve.ErrInvalidBound{N: n}
	}
	if n <= 2 {
		return nil, mode, nil
	}

	g.opts.logger.LogSelection(ctx, n, mode, sieve.SegmentCount(n, g.opts.segmentSize))

	switch mode {
	case ModeClassic:
		primes, err := sieve.Classic(n, g.classicHook())
		return primes, mode, err

	case ModeSegmented:
		primes, err := g.runSegmented(n)
		return primes, mode, err

	case ModeParallel:
		primes, err := g.runParallel(ctx, n)
		if err != nil {
			if !errors.Is(err, ErrDispatch) {
				return nil, mode, err
			}
			// Parallel execution is an optimization, never a correctness
			// requirement: degrade to the sequential path with identical
			// output.
			g.opts.logger.LogFallback(ctx, n, err)
			g.opts.metricsCollector.RecordFallback(err)
			primes, err = g.runSegmented(n)
			return primes, ModeSegmented, err
		}
		return primes, mode, nil

	default:
		primes, err := sieve.Classic(n, g.classicHook())
		return primes, ModeClassic, err
	}
}

// classicHook adapts the classic sieve's per-iteration hook to the delta
// callback contract.
func (g *Generator) classicHook() func(int) {
	cb := g.opts.progress
	if cb == nil {
		return nil
	}
	return func(int) {
		cb(1)
	}
}

func (g *Generator) runSegmented(n int) ([]int, error) {
	var hook func(int)
	if cb := g.opts.progress; cb != nil {
		hook = func(delta int) {
			cb(delta)
		}
	}

	primes, err := sieve.Segmented(n, g.opts.segmentSize, hook)
	if err == nil {
		g.opts.metricsCollector.RecordSegments(sieve.SegmentCount(n, g.opts.segmentSize))
	}
	return primes, err
}

func (g *Generator) runParallel(ctx context.Context, n int) ([]int, error) {
	basePrimes, err := sieve.BasePrimes(n)
	if err != nil {
		return nil, err
	}

	distOpts := []engine.DistributorOption{
		engine.WithWorkers(g.opts.workers),
	}

	// The shared counter is the only mutable state workers touch; the
	// monitor forwards its movement to the caller's callback from a
	// dedicated goroutine.
	var monitor *progress.Monitor
	if cb := g.opts.progress; cb != nil {
		counter := &progress.Counter{}
		monitor = progress.StartMonitor(counter, cb, progress.DefaultPollInterval)
		distOpts = append(distOpts, engine.WithCounter(counter))
	}

	if g.opts.runnerFactory != nil {
		distOpts = append(distOpts, engine.WithRunner(g.opts.runnerFactory))
	}

	primes, err := engine.NewDistributor(g.opts.segmentSize, distOpts...).Sieve(ctx, n, basePrimes)

	// Stop and join the monitor before results are returned, error path
	// included.
	if monitor != nil {
		monitor.Stop(monitorStopTimeout)
	}

	if err != nil {
		return nil, err
	}

	g.opts.metricsCollector.RecordSegments(sieve.SegmentCount(n, g.opts.segmentSize))
	return primes, nil
}

// Generate returns all primes below n in strictly increasing order using a
// one-shot Generator. See Generator.Generate.
func Generate(ctx context.Context, n int, optFns ...Option) ([]int, error) {
	return New(optFns...).Generate(ctx, n)
}
