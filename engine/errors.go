package engine

import (
	"errors"
	"fmt"
)

// ErrDispatch is the sentinel for worker dispatch failures. Callers match it
// with errors.Is and recover by running the sequential path.
var ErrDispatch = errors.New("worker dispatch failed")

// ErrWorkerDispatch reports a failure to start parallel workers.
//
// The underlying cause (if any) can be accessed via errors.Unwrap; the error
// also matches ErrDispatch.
type ErrWorkerDispatch struct {
	Workers int
	cause   error
}

func (e *ErrWorkerDispatch) Error() string {
	return fmt.Sprintf("dispatching %d workers: %v", e.Workers, e.cause)
}

func (e *ErrWorkerDispatch) Unwrap() error { return e.cause }

func (e *ErrWorkerDispatch) Is(target error) bool { return target == ErrDispatch }
