package sieve

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeBound is returned when the requested bound is negative.
	ErrNegativeBound = errors.New("bound must be non-negative")
)

// ErrInvalidBound reports the offending bound value.
//
// The underlying sentinel can be matched via errors.Is(err, ErrNegativeBound).
type ErrInvalidBound struct {
	N int
}

func (e *ErrInvalidBound) Error() string {
	return fmt.Sprintf("invalid bound: %d", e.N)
}

func (e *ErrInvalidBound) Unwrap() error { return ErrNegativeBound }
