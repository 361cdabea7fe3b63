// Package sievego enumerates prime numbers below a bound with a segmented,
// odd-only Sieve of Eratosthenes.
//
// Sievego scales from trivial bounds to the hundreds of millions while
// keeping memory at O(sqrt(n) + segment size): segments are sieved against a
// shared base-prime list with a reusable buffer, and the parallel engine
// partitions segments across workers whose ordered streams are combined by a
// k-way merge — never a full re-sort.
//
// # Quick Start
//
//	ctx := context.Background()
//	primes, err := sievego.Generate(ctx, 1_000_000)
//
// Large bounds with parallel workers and progress reporting:
//
//	gen := sievego.New(
//	    sievego.WithParallel(true),
//	    sievego.WithProgress(func(delta int) { bar.Add(delta) }),
//	)
//	primes, err := gen.Generate(ctx, 800_000_000)
//
// # Mode Selection
//
// Generate selects the cheapest correct algorithm for the bound:
//
//   - n < SegmentedThreshold: classic full-range sieve
//   - larger n: sequential segmented sieve
//   - parallel enabled and n >= ParallelThreshold: parallel segmented sieve
//
// WithForceMode overrides the selection for any bound. Parallel execution is
// an optimization, never a correctness requirement: if worker dispatch fails
// the generator transparently falls back to the sequential path with
// identical output.
//
// # Supporting Packages
//
//   - sieve: the odd-only sieving kernels
//   - engine: parallel work distribution and ordered merge
//   - progress: the progress-reporting contract and monitor
//   - snapshot: compressed persistence of generated runs
//   - primeset: compact membership queries over a generated run
package sievego
