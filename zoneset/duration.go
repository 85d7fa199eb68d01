package zoneset

import (
	"github.com/katalvlaran/zonealgebra/bound"
	"github.com/katalvlaran/zonealgebra/zone"
)

// DurationRestriction intersects every zone's duration dimension with
// [dmin, dmax], drops empties, and returns a bmin-sorted antichain.
func DurationRestriction[T bound.Numeric[T]](s ZoneSet[T], dmin bound.LowerBound[T], dmax bound.UpperBound[T]) ZoneSet[T] {
	out := make(ZoneSet[T], 0, len(s))
	for _, z := range s {
		out = out.Add(zone.DurationRestriction(z, dmin, dmax))
	}

	return Filter(sortByBmin(out))
}

// DurationRestrictionOpenClosed is the scalar convenience form (a, b]:
// it maps to lower.open(a), upper.closed(b).
func DurationRestrictionOpenClosed[T bound.Numeric[T]](s ZoneSet[T], a, b T) ZoneSet[T] {
	return DurationRestriction(s, bound.LowerOpen(a), bound.UpperClosed(b))
}
