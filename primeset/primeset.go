// Package primeset provides a compact, queryable representation of a
// generated prime run.
//
// A Set stores the primes in a compressed Roaring bitmap, trading the dense
// []int slice (8 bytes per prime) for a structure that answers membership
// and rank queries directly and typically takes an order of magnitude less
// memory for large bounds.
package primeset

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Set is an immutable set of primes below a fixed bound.
type Set struct {
	bound int
	bm    *roaring64.Bitmap
}

// FromSlice builds a Set from a strictly increasing prime sequence below
// bound, as produced by sievego.Generate.
func FromSlice(bound int, primes []int) *Set {
	bm := roaring64.New()
	for _, p := range primes {
		bm.Add(uint64(p))
	}
	bm.RunOptimize()
	return &Set{bound: bound, bm: bm}
}

// Bound returns the exclusive upper bound the set was generated for.
func (s *Set) Bound() int { return s.bound }

// Contains reports whether v is prime. v must be below Bound for the answer
// to be meaningful; values at or beyond the bound report false.
func (s *Set) Contains(v int) bool {
	if v < 0 || v >= s.bound {
		return false
	}
	return s.bm.Contains(uint64(v))
}

// Cardinality returns the number of primes in the set.
func (s *Set) Cardinality() int {
	return int(s.bm.GetCardinality())
}

// Max returns the largest prime in the set, or 0 if the set is empty.
func (s *Set) Max() int {
	if s.bm.IsEmpty() {
		return 0
	}
	return int(s.bm.Maximum())
}

// Rank returns the number of primes less than or equal to v — the prime
// counting function over the stored run.
func (s *Set) Rank(v int) int {
	if v < 0 {
		return 0
	}
	return int(s.bm.Rank(uint64(v)))
}

// Slice materializes the set back into a strictly increasing []int.
func (s *Set) Slice() []int {
	out := make([]int, 0, s.bm.GetCardinality())
	it := s.bm.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// SizeInBytes reports the serialized size of the underlying bitmap, useful
// for comparing against the dense slice representation.
func (s *Set) SizeInBytes() int {
	return int(s.bm.GetSizeInBytes())
}
