package sievego

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with sievego-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithBound adds the bound field to the logger.
func (l *Logger) WithBound(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("bound", n),
	}
}

// WithMode adds the execution mode field to the logger.
func (l *Logger) WithMode(mode Mode) *Logger {
	return &Logger{
		Logger: l.Logger.With("mode", mode.String()),
	}
}

// WithWorkers adds a worker count field to the logger.
func (l *Logger) WithWorkers(workers int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", workers),
	}
}

// LogGenerate logs a completed generate operation.
func (l *Logger) LogGenerate(ctx context.Context, n int, mode Mode, count int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "generate failed",
			"bound", n,
			"mode", mode.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "generate completed",
			"bound", n,
			"mode", mode.String(),
			"primes", count,
			"duration", duration,
		)
	}
}

// LogFallback logs a parallel-to-sequential fallback.
func (l *Logger) LogFallback(ctx context.Context, n int, err error) {
	l.WarnContext(ctx, "parallel dispatch failed, falling back to sequential sieve",
		"bound", n,
		"error", err,
	)
}

// LogSelection logs the algorithm selected for a bound.
func (l *Logger) LogSelection(ctx context.Context, n int, mode Mode, segments int) {
	l.DebugContext(ctx, "algorithm selected",
		"bound", n,
		"mode", mode.String(),
		"segments", segments,
	)
}
