package sievego_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/sievego"
)

// Example demonstrates generating all primes below a bound.
func Example() {
	primes, err := sievego.Generate(context.Background(), 30)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(primes)
	// Output: [2 3 5 7 11 13 17 19 23 29]
}

// Example_generator demonstrates a reusable Generator with fixed options.
func Example_generator() {
	gen := sievego.New(
		sievego.WithParallel(true),
		sievego.WithWorkers(4),
	)

	primes, err := gen.Generate(context.Background(), 100)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found %d primes below 100, largest is %d\n", len(primes), primes[len(primes)-1])
	// Output: Found 25 primes below 100, largest is 97
}

// Example_forceMode demonstrates pinning a specific execution mode.
func Example_forceMode() {
	primes, err := sievego.Generate(context.Background(), 50,
		sievego.WithForceMode(sievego.ModeSegmented),
		sievego.WithSegmentSize(10),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(primes)
	// Output: [2 3 5 7 11 13 17 19 23 29 31 37 41 43 47]
}

// Example_progress demonstrates observing segment completion.
func Example_progress() {
	completed := 0
	_, err := sievego.Generate(context.Background(), 1000,
		sievego.WithForceMode(sievego.ModeSegmented),
		sievego.WithSegmentSize(100),
		sievego.WithProgress(func(delta int) {
			completed += delta
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Completed %d segments\n", completed)
	// Output: Completed 10 segments
}

// Example_metrics demonstrates in-memory metrics collection.
func Example_metrics() {
	metrics := &sievego.BasicMetricsCollector{}

	_, err := sievego.Generate(context.Background(), 1000,
		sievego.WithMetricsCollector(metrics),
	)
	if err != nil {
		log.Fatal(err)
	}

	stats := metrics.GetStats()
	fmt.Printf("Runs: %d, primes produced: %d\n", stats.GenerateCount, stats.PrimesProduced)
	// Output: Runs: 1, primes produced: 168
}
