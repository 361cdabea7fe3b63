// Package sieve implements the core Sieve of Eratosthenes kernels.
//
// All kernels are odd-only: the marking buffer represents odd candidates
// exclusively, halving memory and marking work since even numbers above 2 are
// never prime. The prime 2 is handled as a special case outside the buffer.
//
// Three entry points build on one another:
//
//   - Classic: full-range sieve, used standalone for small bounds and to
//     produce the base-prime list up to sqrt(n) for segmentation.
//   - Segment: sieves one contiguous range with a reusable buffer and a fixed
//     base-prime list. The unit of work shared by the sequential driver and
//     the parallel engine — there is exactly one sieving implementation.
//   - Segmented: drives Segment across all segments in index order with one
//     reused buffer, keeping memory at O(sqrt(n) + segmentSize).
package sieve
