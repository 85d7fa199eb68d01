package zone

import "github.com/katalvlaran/zonealgebra/bound"

// Includes reports whether z1 contains every timed interval admitted by
// z2, i.e. z2's constraint on each dimension is at least as tight as
// z1's. This is a per-bound containment check and does not itself
// consult IsNonEmpty, so an empty z2 is reported as included only when
// each of its bounds is at least as tight as z1's.
func Includes[T bound.Numeric[T]](z1, z2 Zone[T]) bool {
	return !bound.LowerLess(z2.bmin, z1.bmin) &&
		!bound.UpperLess(z1.bmax, z2.bmax) &&
		!bound.LowerLess(z2.emin, z1.emin) &&
		!bound.UpperLess(z1.emax, z2.emax) &&
		!bound.LowerLess(z2.dmin, z1.dmin) &&
		!bound.UpperLess(z1.dmax, z2.dmax)
}

// Equal reports syntactic equality: the six bounds of z1 and z2 are
// pairwise equal. Two zones describing the same region through different
// bounds (for example a duration bound that is implied rather than
// stated) are not Equal.
func Equal[T bound.Numeric[T]](z1, z2 Zone[T]) bool {
	return bound.LowerEqual(z1.bmin, z2.bmin) &&
		bound.UpperEqual(z1.bmax, z2.bmax) &&
		bound.LowerEqual(z1.emin, z2.emin) &&
		bound.UpperEqual(z1.emax, z2.emax) &&
		bound.LowerEqual(z1.dmin, z2.dmin) &&
		bound.UpperEqual(z1.dmax, z2.dmax)
}

// Intersection returns the zone admitting exactly the timed intervals
// admitted by both z1 and z2: each dimension's bounds are tightened
// independently via bound.LowerIntersection / bound.UpperIntersection.
// The result may be empty (IsNonEmpty false) if z1 and z2 do not overlap.
func Intersection[T bound.Numeric[T]](z1, z2 Zone[T]) Zone[T] {
	return Zone[T]{
		bmin: bound.LowerIntersection(z1.bmin, z2.bmin),
		bmax: bound.UpperIntersection(z1.bmax, z2.bmax),
		emin: bound.LowerIntersection(z1.emin, z2.emin),
		emax: bound.UpperIntersection(z1.emax, z2.emax),
		dmin: bound.LowerIntersection(z1.dmin, z2.dmin),
		dmax: bound.UpperIntersection(z1.dmax, z2.dmax),
	}
}

// Concatenation returns the zone of intervals formed by running z1 then
// z2 back to back: the begin edge is z1's, the end edge is z2's, and the
// duration is the sum of the two durations. The meeting point (z1's end,
// z2's begin) must itself be consistent, so the combined zone's
// achievable begin/end/duration ranges are re-checked by the caller via
// IsNonEmpty; Concatenation itself always returns a structurally well
// formed Zone, empty or not.
func Concatenation[T bound.Numeric[T]](z1, z2 Zone[T]) Zone[T] {
	return Zone[T]{
		bmin: z1.bmin,
		bmax: z1.bmax,
		emin: z2.emin,
		emax: z2.emax,
		dmin: bound.LowerAdd(z1.dmin, z2.dmin),
		dmax: bound.UpperAdd(z1.dmax, z2.dmax),
	}
}

// DurationRestriction returns z with its duration dimension additionally
// constrained to [dmin, dmax], narrowed via intersection against z's
// existing duration bounds.
func DurationRestriction[T bound.Numeric[T]](z Zone[T], dmin bound.LowerBound[T], dmax bound.UpperBound[T]) Zone[T] {
	z.dmin = bound.LowerIntersection(z.dmin, dmin)
	z.dmax = bound.UpperIntersection(z.dmax, dmax)

	return z
}

// DurationRestrictionValue is a convenience overload of DurationRestriction
// taking closed scalar duration bounds, as needed by modal operators that
// restrict duration to a single closed interval [dmin, dmax].
func DurationRestrictionValue[T bound.Numeric[T]](z Zone[T], dmin, dmax T) Zone[T] {
	return DurationRestriction(z, bound.LowerClosed(dmin), bound.UpperClosed(dmax))
}
