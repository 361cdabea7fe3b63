// Command primes generates all prime numbers below a bound.
//
//	primes [flags] <n>
//
// The prime list goes to stdout; progress and the performance summary go to
// stderr so the output stays pipeable.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hupe1980/sievego"
	"github.com/hupe1980/sievego/config"
	"github.com/hupe1980/sievego/internal/term"
	"github.com/hupe1980/sievego/sieve"
	"github.com/hupe1980/sievego/snapshot"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showProgress = flag.Bool("progress", false, "show a progress bar on stderr")
		parallel     = flag.Bool("parallel", false, "use parallel workers (for large n)")
		quiet        = flag.Bool("quiet", false, "only print the prime count")
		mode         = flag.String("mode", "auto", "force algorithm: auto, classic, segmented or parallel")
		configPath   = flag.String("config", "", "path to a YAML tuning config")
		workers      = flag.Int("workers", 0, "parallel worker count (0 = NumCPU-1)")
		segmentSize  = flag.Int("segment-size", 0, "segment width (0 = default)")
		snapshotPath = flag.String("snapshot", "", "write the generated run to this snapshot file")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return fmt.Errorf("expected exactly one argument: the bound n")
	}
	n, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid bound %q: %w", flag.Arg(0), err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *workers > 0 {
		cfg.Sieve.Workers = *workers
	}
	if *segmentSize > 0 {
		cfg.Sieve.SegmentSize = *segmentSize
	}
	if *parallel {
		cfg.Sieve.Parallel = true
	}

	logger := newLogger(cfg.Logging)

	if cfg.Sieve.Parallel && n < cfg.Sieve.ParallelThreshold && sievego.ParseMode(*mode) == sievego.ModeAuto {
		fmt.Fprintf(os.Stderr, "[WARN] -parallel ignored: n=%d is below threshold %d\n",
			n, cfg.Sieve.ParallelThreshold)
	}

	opts := []sievego.Option{
		sievego.WithParallel(cfg.Sieve.Parallel),
		sievego.WithForceMode(sievego.ParseMode(*mode)),
		sievego.WithSegmentSize(cfg.Sieve.SegmentSize),
		sievego.WithWorkers(cfg.Sieve.Workers),
		sievego.WithSegmentedThreshold(cfg.Sieve.SegmentedThreshold),
		sievego.WithParallelThreshold(cfg.Sieve.ParallelThreshold),
		sievego.WithLogger(logger),
	}

	var bar *term.Bar
	if *showProgress {
		bar = term.NewBar(os.Stderr, "Generating primes", progressTotal(n, cfg.Sieve.SegmentSize, *mode, cfg.Sieve.SegmentedThreshold))
		opts = append(opts, sievego.WithProgress(bar.Add))
	}

	start := time.Now()
	primes, err := sievego.Generate(context.Background(), n, opts...)
	elapsed := time.Since(start)

	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	if len(primes) == 0 {
		fmt.Println("No primes less than", n)
		return nil
	}

	if *quiet {
		fmt.Println(len(primes))
	} else {
		fmt.Printf("Primes less than %d: %s\n", n, joinInts(primes))
		fmt.Printf("Total primes: %d\n", len(primes))
	}

	if *snapshotPath != "" {
		if err := writeSnapshot(*snapshotPath, n, primes); err != nil {
			return err
		}
	}

	perSec := float64(len(primes)) / elapsed.Seconds()
	fmt.Fprintf(os.Stderr, "Done! Largest prime < %d is %d. Generated %d primes in %.3fs (%.0f primes/s).\n",
		n, primes[len(primes)-1], len(primes), elapsed.Seconds(), perSec)

	return nil
}

func newLogger(cfg config.LoggingConfig) *sievego.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	if cfg.Format == "json" {
		return sievego.NewJSONLogger(level)
	}
	return sievego.NewTextLogger(level)
}

// progressTotal returns the number of work units the progress callback will
// report: outer iterations for the classic sieve, segments otherwise.
func progressTotal(n, segmentSize int, mode string, segmentedThreshold int) int {
	classic := sievego.ParseMode(mode) == sievego.ModeClassic ||
		(sievego.ParseMode(mode) == sievego.ModeAuto && n < segmentedThreshold)
	if classic {
		limit := sieve.Isqrt(n)
		if limit < 3 {
			return 0
		}
		return (limit-3)/2 + 1
	}
	return sieve.SegmentCount(n, segmentSize)
}

func writeSnapshot(path string, n int, primes []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot %s: %w", path, err)
	}
	if err := snapshot.Write(f, n, primes); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return f.Close()
}

func joinInts(vals []int) string {
	var sb strings.Builder
	for i, v := range vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}
