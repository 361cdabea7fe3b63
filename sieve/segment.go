package sieve

import "bytes"

// Segment sieves the range [low, high) against a fixed base-prime list and
// returns the primes found in [max(low, 2), high), in increasing order.
//
// basePrimes must contain the odd primes up to sqrt(high) (see BasePrimes).
// buf is a caller-owned marking buffer of at least (high-low+1)/2 bytes; it
// is reset here on every call so a single allocation can be reused across
// segments. Results never depend on another segment's intermediate state,
// only on basePrimes, so segments may be sieved in any order or concurrently
// as long as each goroutine owns its buffer.
func Segment(low, high int, basePrimes []int, buf []byte) []int {
	var primes []int

	// 2 is the only even prime and lives outside the odd-only buffer.
	if low <= 2 && high > 2 {
		primes = append(primes, 2)
	}

	// Index i represents oddLow + 2*i, where oddLow is the first odd
	// number >= max(low, 3).
	oddLow := low
	if oddLow < 3 {
		oddLow = 3
	}
	if oddLow%2 == 0 {
		oddLow++
	}
	if oddLow >= high {
		return primes
	}

	segLen := (high - oddLow + 1) / 2
	if segLen <= 0 {
		return primes
	}

	for i := 0; i < segLen; i++ {
		buf[i] = 1
	}

	for _, p := range basePrimes {
		// First odd multiple of p in [oddLow, high) that is >= p*p.
		// Multiples below p*p were already confirmed composite (or prime)
		// by smaller base primes.
		start := ((oddLow + p - 1) / p) * p
		if start < p*p {
			start = p * p
		}
		if start%2 == 0 {
			start += p
		}
		if start >= high {
			continue
		}

		// Step by p in index space: each index step covers two numeric
		// units, and 2p is the gap between consecutive odd multiples.
		for j := (start - oddLow) / 2; j < segLen; j += p {
			buf[j] = 0
		}
	}

	data := buf[:segLen]
	idx := 0
	for {
		pos := bytes.IndexByte(data[idx:], 1)
		if pos == -1 {
			break
		}
		idx += pos
		primes = append(primes, oddLow+2*idx)
		idx++
		if idx >= segLen {
			break
		}
	}

	return primes
}
