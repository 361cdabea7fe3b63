package sieve

import (
	"bytes"
	"math"
)

// Classic generates all primes below n using a full-range odd-only sieve.
//
// The marking buffer holds one byte per odd number in [3, n); index i
// represents the value 2i+3. Composites of each surviving candidate up to
// sqrt(n) are marked starting at its square (odd*odd is odd), stepping by the
// candidate in index space since each index step covers two numeric units.
//
// hook, if non-nil, is invoked once per outer iteration with the current
// index offset. It is purely observational and has no effect on the output.
//
// Returns ErrNegativeBound (wrapped in *ErrInvalidBound) when n < 0 and an
// empty result when n <= 2.
func Classic(n int, hook func(int)) ([]int, error) {
	if n < 0 {
		return nil, &ErrInvalidBound{N: n}
	}
	if n <= 2 {
		return nil, nil
	}
	if n <= 3 {
		return []int{2}, nil
	}

	// Count of odd numbers in [3, n).
	size := (n - 3 + 1) / 2
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = 1
	}

	limit := Isqrt(n)
	for current := 3; current <= limit; current += 2 {
		if buf[(current-3)/2] == 1 {
			// current*current is odd, so it maps cleanly into the buffer.
			startIdx := (current*current - 3) / 2
			for j := startIdx; j < size; j += current {
				buf[j] = 0
			}
		}
		if hook != nil {
			hook((current - 3) / 2)
		}
	}

	// Over-allocating slightly via the prime counting estimate avoids
	// re-growth during extraction.
	estimated := int(float64(n)/math.Log(float64(n))*1.1) + 1
	primes := make([]int, 0, estimated)
	primes = append(primes, 2)

	idx := 0
	for {
		pos := bytes.IndexByte(buf[idx:], 1)
		if pos == -1 {
			break
		}
		idx += pos
		primes = append(primes, 2*idx+3)
		idx++
		if idx >= size {
			break
		}
	}

	return primes, nil
}

// Isqrt returns the integer square root of n, i.e. the largest r with
// r*r <= n. Returns 0 for negative n.
func Isqrt(n int) int {
	if n < 0 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// BasePrimes returns the odd primes usable as base primes when sieving
// segments of [0, n): all primes p with 2 < p <= sqrt(n). The prime 2 is
// excluded since even candidates never enter the odd-only buffer.
//
// The returned slice is never mutated by this package and may be shared
// across goroutines without synchronization.
func BasePrimes(n int) ([]int, error) {
	if n < 0 {
		return nil, &ErrInvalidBound{N: n}
	}
	all, err := Classic(Isqrt(n)+1, nil)
	if err != nil {
		return nil, err
	}
	odd := make([]int, 0, len(all))
	for _, p := range all {
		if p > 2 {
			odd = append(odd, p)
		}
	}
	return odd, nil
}
