package sieve

import "math"

// Segmented generates all primes below n by driving Segment across fixed
// width segments in increasing index order with one reused buffer. Memory
// stays at O(sqrt(n) + segmentSize) instead of O(n), and each segment's
// working set is cache friendly.
//
// Segment outputs are concatenated directly: segments tile [0, n) as
// disjoint increasing ranges, so the concatenation is already globally
// ordered.
//
// hook, if non-nil, receives a delta of 1 after every completed segment,
// including segments lying entirely below 2, so deltas always sum to the
// total segment count.
func Segmented(n, segmentSize int, hook func(int)) ([]int, error) {
	if n < 0 {
		return nil, &ErrInvalidBound{N: n}
	}
	if n <= 2 {
		return nil, nil
	}
	if segmentSize <= 0 {
		segmentSize = DefaultSegmentSize
	}

	basePrimes, err := BasePrimes(n)
	if err != nil {
		return nil, err
	}

	segments := (n + segmentSize - 1) / segmentSize

	estimated := int(float64(n)/math.Log(float64(n))*1.1) + 1
	primes := make([]int, 0, estimated)

	buf := GetBuffer(segmentSize)
	defer PutBuffer(buf)

	for segIdx := 0; segIdx < segments; segIdx++ {
		low := segIdx * segmentSize
		high := low + segmentSize
		if high > n {
			high = n
		}

		if high > 2 {
			primes = append(primes, Segment(low, high, basePrimes, buf)...)
		}

		if hook != nil {
			hook(1)
		}
	}

	return primes, nil
}

// SegmentCount returns the number of fixed-width segments tiling [0, n).
func SegmentCount(n, segmentSize int) int {
	if n <= 0 {
		return 0
	}
	if segmentSize <= 0 {
		segmentSize = DefaultSegmentSize
	}
	return (n + segmentSize - 1) / segmentSize
}
