package denseset

import (
	"math/bits"
	"sort"
)

// Set is a vertex set over [0, v), backed by either a dense bitset or a
// sparse hash map depending on the expected size, chosen transparently by
// New using the V/3 heuristic from §5/§9.
type Set struct {
	v      int
	bits   []uint64 // non-nil when dense
	sparse map[int]struct{}
}

// New returns an empty Set over [0, v). If expected size is unknown, pass -1
// to always use the dense representation (the safe, allocation-stable
// default used by the attractor's common case where most of the graph can
// end up in the set).
func New(v int, expected int) *Set {
	if expected < 0 || expected*3 >= v {
		return &Set{v: v, bits: make([]uint64, (v+63)/64)}
	}
	return &Set{v: v, sparse: make(map[int]struct{}, expected)}
}

// Contains reports whether x is in the set.
func (s *Set) Contains(x int) bool {
	if s.bits != nil {
		return s.bits[x/64]&(1<<uint(x%64)) != 0
	}
	_, ok := s.sparse[x]
	return ok
}

// Add inserts x into the set. Returns true if x was not already present.
func (s *Set) Add(x int) bool {
	if s.Contains(x) {
		return false
	}
	if s.bits != nil {
		s.bits[x/64] |= 1 << uint(x%64)
	} else {
		s.sparse[x] = struct{}{}
	}
	return true
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	if s.bits != nil {
		n := 0
		for _, w := range s.bits {
			n += bits.OnesCount64(w)
		}
		return n
	}
	return len(s.sparse)
}

// Each calls f for every element currently in the set, in ascending order.
func (s *Set) Each(f func(x int)) {
	if s.bits != nil {
		for i, w := range s.bits {
			for w != 0 {
				b := bits.TrailingZeros64(w)
				f(i*64 + b)
				w &= w - 1
			}
		}
		return
	}
	xs := make([]int, 0, len(s.sparse))
	for x := range s.sparse {
		xs = append(xs, x)
	}
	sort.Ints(xs)
	for _, x := range xs {
		f(x)
	}
}
