package zone

import "github.com/katalvlaran/zonealgebra/bound"

// Make builds a Zone directly from its six bounds. The caller is
// responsible for any semantic consistency between begin/end/duration;
// callers that need a guarantee should check IsNonEmpty afterward.
func Make[T bound.Numeric[T]](bmin bound.LowerBound[T], bmax bound.UpperBound[T], emin bound.LowerBound[T], emax bound.UpperBound[T], dmin bound.LowerBound[T], dmax bound.UpperBound[T]) Zone[T] {
	return Zone[T]{bmin: bmin, bmax: bmax, emin: emin, emax: emax, dmin: dmin, dmax: dmax}
}

// MakeValues builds a Zone from six finite numeric values in the order
// (bmin, bmax, emin, emax, dmin, dmax) and six matching flags where true
// means the bound is closed (admits its endpoint) and false means open.
// This is the constructor the robustness sweep uses to assemble its
// all-closed reference lines and segments.
func MakeValues[T bound.Numeric[T]](values [6]T, closed [6]bool) Zone[T] {
	lower := func(v T, c bool) bound.LowerBound[T] {
		if c {
			return bound.LowerClosed(v)
		}
		return bound.LowerOpen(v)
	}
	upper := func(v T, c bool) bound.UpperBound[T] {
		if c {
			return bound.UpperClosed(v)
		}
		return bound.UpperOpen(v)
	}

	return Zone[T]{
		bmin: lower(values[0], closed[0]), bmax: upper(values[1], closed[1]),
		emin: lower(values[2], closed[2]), emax: upper(values[3], closed[3]),
		dmin: lower(values[4], closed[4]), dmax: upper(values[5], closed[5]),
	}
}

// MakeValuesClosed builds a Zone from six finite values with every bound
// closed.
func MakeValuesClosed[T bound.Numeric[T]](values [6]T) Zone[T] {
	return MakeValues(values, [6]bool{true, true, true, true, true, true})
}

// Universal returns the zone placing no constraint on any of the three
// dimensions: it is the identity element for Intersection and the
// top element of the Includes order.
func Universal[T bound.Numeric[T]]() Zone[T] {
	return Zone[T]{
		bmin: bound.LowerUnbounded[T](), bmax: bound.UpperUnbounded[T](),
		emin: bound.LowerUnbounded[T](), emax: bound.UpperUnbounded[T](),
		dmin: bound.LowerUnbounded[T](), dmax: bound.UpperUnbounded[T](),
	}
}

// MakeFromPeriod builds the zone of a single exact timed interval
// [begin, end]: both edges are pinned exactly and the duration is pinned
// to end-begin as a closed point in all three dimensions. This is the
// "both anchor" reading of a period and is the strictest of the
// MakeFromPeriod* family.
func MakeFromPeriod[T bound.Numeric[T]](begin, end T) Zone[T] {
	d := end.Sub(begin)
	return Zone[T]{
		bmin: bound.LowerClosed(begin), bmax: bound.UpperClosed(begin),
		emin: bound.LowerClosed(end), emax: bound.UpperClosed(end),
		dmin: bound.LowerClosed(d), dmax: bound.UpperClosed(d),
	}
}

// MakeFromPeriodBothAnchor is an alias of MakeFromPeriod: both the begin
// and end edges of the period are anchored exactly.
func MakeFromPeriodBothAnchor[T bound.Numeric[T]](begin, end T) Zone[T] {
	return MakeFromPeriod(begin, end)
}

// MakeFromPeriodRiseAnchor builds the zone of intervals that begin
// exactly at begin but whose end (and therefore duration) is only
// lower-bounded by end: the end/duration upper edges are left unbounded.
// This models a period known only by its rising edge.
func MakeFromPeriodRiseAnchor[T bound.Numeric[T]](begin, end T) Zone[T] {
	d := end.Sub(begin)
	return Zone[T]{
		bmin: bound.LowerClosed(begin), bmax: bound.UpperClosed(begin),
		emin: bound.LowerClosed(end), emax: bound.UpperUnbounded[T](),
		dmin: bound.LowerClosed(d), dmax: bound.UpperUnbounded[T](),
	}
}

// MakeFromPeriodFallAnchor builds the zone of intervals that end exactly
// at end but whose begin is only upper-bounded by begin (so the duration
// is only lower-bounded by end-begin): the begin lower edge and the
// duration upper edge are left unbounded. This models a period known only
// by its falling edge, dual to MakeFromPeriodRiseAnchor.
func MakeFromPeriodFallAnchor[T bound.Numeric[T]](begin, end T) Zone[T] {
	d := end.Sub(begin)
	return Zone[T]{
		bmin: bound.LowerUnbounded[T](), bmax: bound.UpperClosed(begin),
		emin: bound.LowerClosed(end), emax: bound.UpperClosed(end),
		dmin: bound.LowerClosed(d), dmax: bound.UpperUnbounded[T](),
	}
}
