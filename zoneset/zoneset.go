package zoneset

import (
	"sort"

	"github.com/katalvlaran/zonealgebra/bound"
	"github.com/katalvlaran/zonealgebra/zone"
)

// ZoneSet is an ordered sequence of zones whose union represents a subset
// of the timed-interval space. The sequence is not kept canonical on its
// own; call Filter to reduce it to a bmin-sorted antichain.
type ZoneSet[T bound.Numeric[T]] []zone.Zone[T]

// New returns an empty ZoneSet.
func New[T bound.Numeric[T]]() ZoneSet[T] {
	return ZoneSet[T]{}
}

// Of builds a ZoneSet from the given zones, dropping any that are empty.
func Of[T bound.Numeric[T]](zs ...zone.Zone[T]) ZoneSet[T] {
	s := make(ZoneSet[T], 0, len(zs))
	for _, z := range zs {
		s = s.Add(z)
	}
	return s
}

// Add appends z to the set, silently dropping it if z.IsNonEmpty() is
// false. The receiver is not mutated; the extended set is returned.
func (s ZoneSet[T]) Add(z zone.Zone[T]) ZoneSet[T] {
	if !z.IsNonEmpty() {
		return s
	}
	return append(s, z)
}

// Equal reports syntactic equality of two zone sets: the same zones in
// the same order. Sets representing the same union through different
// sequences are not Equal; canonicalize both with Filter first to
// compare antichains.
func Equal[T bound.Numeric[T]](s1, s2 ZoneSet[T]) bool {
	if len(s1) != len(s2) {
		return false
	}
	for i := range s1 {
		if !zone.Equal(s1[i], s2[i]) {
			return false
		}
	}

	return true
}

// Clone returns a shallow copy of s; since Zone is a value type this is
// a full independent copy.
func (s ZoneSet[T]) Clone() ZoneSet[T] {
	out := make(ZoneSet[T], len(s))
	copy(out, s)
	return out
}

// sortByBmin returns a copy of s sorted ascending by begin lower bound,
// the ordering required at the entry of intersection, includes, and
// filter.
func sortByBmin[T bound.Numeric[T]](s ZoneSet[T]) ZoneSet[T] {
	out := s.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		return bound.LowerLess(out[i].Bmin(), out[j].Bmin())
	})
	return out
}

// sortByEmin returns a copy of s sorted ascending by end lower bound, the
// ordering concatenation requires on its left operand.
func sortByEmin[T bound.Numeric[T]](s ZoneSet[T]) ZoneSet[T] {
	out := s.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		return bound.LowerLess(out[i].Emin(), out[j].Emin())
	})
	return out
}
