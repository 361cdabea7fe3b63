package sievego

import (
	"github.com/hupe1980/sievego/engine"
	"github.com/hupe1980/sievego/sieve"
)

// ErrNegativeBound is returned when Generate is called with a negative
// bound. Match with errors.Is; the concrete *sieve.ErrInvalidBound carries
// the offending value via errors.As.
var ErrNegativeBound = sieve.ErrNegativeBound

// ErrDispatch reports a parallel worker dispatch failure. It is recovered
// internally by falling back to the sequential path and is never surfaced
// from Generate; it is exported so custom Runner implementations and logs
// can classify it.
var ErrDispatch = engine.ErrDispatch
