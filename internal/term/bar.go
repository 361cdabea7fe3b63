// Package term renders a terminal progress bar. It consumes only the
// progress callback contract; the sieve core never depends on it.
package term

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const defaultWidth = 40

// Bar is a single-line terminal progress bar with rate and ETA estimates.
// Repaints are throttled so high-frequency deltas do not flood the terminal.
type Bar struct {
	out   io.Writer
	desc  string
	total int
	width int
	start time.Time

	mu        sync.Mutex
	completed int
	repaint   rate.Sometimes
}

// NewBar creates a Bar reporting against total work units, writing to out.
func NewBar(out io.Writer, desc string, total int) *Bar {
	return &Bar{
		out:     out,
		desc:    desc,
		total:   total,
		width:   defaultWidth,
		start:   time.Now(),
		repaint: rate.Sometimes{First: 1, Interval: 50 * time.Millisecond},
	}
}

// Add advances the bar by delta units. Safe to call from the progress
// monitor goroutine.
func (b *Bar) Add(delta int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.completed += delta
	b.repaint.Do(func() {
		b.render()
	})
}

// Finish snaps the bar to 100% and terminates the line.
func (b *Bar) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.completed = b.total
	b.render()
	fmt.Fprintln(b.out)
}

func (b *Bar) render() {
	if b.total == 0 {
		return
	}

	percent := float64(b.completed) / float64(b.total)
	if percent > 1 {
		percent = 1
	}
	filled := int(percent * float64(b.width))
	bar := strings.Repeat("=", filled) + strings.Repeat(" ", b.width-filled)

	elapsed := time.Since(b.start).Seconds()
	var perSec float64
	if elapsed > 0 {
		perSec = float64(b.completed) / elapsed
	}

	fmt.Fprintf(b.out, "\r%s: [%s] %3.0f%% | %d/%d | %s | eta %s    ",
		b.desc, bar, percent*100, b.completed, b.total,
		formatRate(perSec), formatETA(b.total-b.completed, perSec),
	)
}

func formatRate(perSec float64) string {
	switch {
	case perSec >= 1_000_000:
		return fmt.Sprintf("%.1fM/s", perSec/1_000_000)
	case perSec >= 1_000:
		return fmt.Sprintf("%.1fK/s", perSec/1_000)
	default:
		return fmt.Sprintf("%.0f/s", perSec)
	}
}

func formatETA(remaining int, perSec float64) string {
	if perSec <= 0 || remaining <= 0 {
		return "0s"
	}
	secs := int(float64(remaining) / perSec)
	switch {
	case secs >= 3600:
		return fmt.Sprintf("%dh%dm", secs/3600, (secs%3600)/60)
	case secs >= 60:
		return fmt.Sprintf("%dm%ds", secs/60, secs%60)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}
