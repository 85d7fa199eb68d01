package zoneset

import (
	"github.com/katalvlaran/zonealgebra/bound"
	"github.com/katalvlaran/zonealgebra/zone"
)

// diamondRewrite applies f to every zone of s independently and returns
// the filtered, bmin-sorted result. All six diamond operators share this
// shape: rewrite each zone's six bounds, then canonicalize.
func diamondRewrite[T bound.Numeric[T]](s ZoneSet[T], f func(zone.Zone[T]) zone.Zone[T]) ZoneSet[T] {
	out := make(ZoneSet[T], 0, len(s))
	for _, z := range s {
		out = out.Add(f(z))
	}

	return Filter(sortByBmin(out))
}

// boxFromDiamond derives a box operator from its diamond dual:
// box_op(S, l, u) = complementation(diamond_op(complementation(S), l, u)).
func boxFromDiamond[T bound.Numeric[T]](s ZoneSet[T], l bound.LowerBound[T], u bound.UpperBound[T], diamond func(ZoneSet[T], bound.LowerBound[T], bound.UpperBound[T]) ZoneSet[T]) ZoneSet[T] {
	return Complementation(diamond(Complementation(s), l, u))
}

// DiamondMeets rewrites every zone of s to describe intervals of duration
// within [l, u] that begin where an interval admitted by s ends.
func DiamondMeets[T bound.Numeric[T]](s ZoneSet[T], l bound.LowerBound[T], u bound.UpperBound[T]) ZoneSet[T] {
	return diamondRewrite(s, func(z zone.Zone[T]) zone.Zone[T] {
		return zone.Make(z.Emin(), z.Emax(), bound.LowerUnbounded[T](), bound.UpperUnbounded[T](), l, u)
	})
}

// BoxMeets is the universal dual of DiamondMeets.
func BoxMeets[T bound.Numeric[T]](s ZoneSet[T], l bound.LowerBound[T], u bound.UpperBound[T]) ZoneSet[T] {
	return boxFromDiamond(s, l, u, DiamondMeets[T])
}

// DiamondMetBy rewrites every zone of s to describe intervals of duration
// within [l, u] that end where an interval admitted by s begins.
func DiamondMetBy[T bound.Numeric[T]](s ZoneSet[T], l bound.LowerBound[T], u bound.UpperBound[T]) ZoneSet[T] {
	return diamondRewrite(s, func(z zone.Zone[T]) zone.Zone[T] {
		return zone.Make(bound.LowerUnbounded[T](), bound.UpperUnbounded[T](), z.Bmin(), z.Bmax(), l, u)
	})
}

// BoxMetBy is the universal dual of DiamondMetBy.
func BoxMetBy[T bound.Numeric[T]](s ZoneSet[T], l bound.LowerBound[T], u bound.UpperBound[T]) ZoneSet[T] {
	return boxFromDiamond(s, l, u, DiamondMetBy[T])
}

// DiamondStartedBy rewrites every zone of s to describe intervals that
// start together with, and are extended by [l, u] beyond, an interval
// admitted by s.
func DiamondStartedBy[T bound.Numeric[T]](s ZoneSet[T], l bound.LowerBound[T], u bound.UpperBound[T]) ZoneSet[T] {
	return diamondRewrite(s, func(z zone.Zone[T]) zone.Zone[T] {
		return zone.Make(z.Bmin(), z.Bmax(),
			bound.LowerAdd(z.Emin(), l), bound.UpperAdd(z.Emax(), u),
			bound.LowerAdd(z.Dmin(), l), bound.UpperAdd(z.Dmax(), u))
	})
}

// BoxStartedBy is the universal dual of DiamondStartedBy.
func BoxStartedBy[T bound.Numeric[T]](s ZoneSet[T], l bound.LowerBound[T], u bound.UpperBound[T]) ZoneSet[T] {
	return boxFromDiamond(s, l, u, DiamondStartedBy[T])
}

// DiamondStarts rewrites every zone of s to describe intervals that
// start together with, and are shortened by [l, u] within, an interval
// admitted by s.
func DiamondStarts[T bound.Numeric[T]](s ZoneSet[T], l bound.LowerBound[T], u bound.UpperBound[T]) ZoneSet[T] {
	return diamondRewrite(s, func(z zone.Zone[T]) zone.Zone[T] {
		return zone.Make(z.Bmin(), z.Bmax(),
			bound.LowerMinusUpper(z.Emin(), u), bound.UpperMinusLower(z.Emax(), l),
			bound.LowerMinusUpper(z.Dmin(), u), bound.UpperMinusLower(z.Dmax(), l))
	})
}

// BoxStarts is the universal dual of DiamondStarts.
func BoxStarts[T bound.Numeric[T]](s ZoneSet[T], l bound.LowerBound[T], u bound.UpperBound[T]) ZoneSet[T] {
	return boxFromDiamond(s, l, u, DiamondStarts[T])
}

// DiamondFinishedBy rewrites every zone of s to describe intervals that
// end together with, and are preceded by [l, u] before, an interval
// admitted by s.
func DiamondFinishedBy[T bound.Numeric[T]](s ZoneSet[T], l bound.LowerBound[T], u bound.UpperBound[T]) ZoneSet[T] {
	return diamondRewrite(s, func(z zone.Zone[T]) zone.Zone[T] {
		return zone.Make(
			bound.LowerMinusUpper(z.Bmin(), u), bound.UpperMinusLower(z.Bmax(), l),
			z.Emin(), z.Emax(),
			bound.LowerAdd(z.Dmin(), l), bound.UpperAdd(z.Dmax(), u))
	})
}

// BoxFinishedBy is the universal dual of DiamondFinishedBy.
func BoxFinishedBy[T bound.Numeric[T]](s ZoneSet[T], l bound.LowerBound[T], u bound.UpperBound[T]) ZoneSet[T] {
	return boxFromDiamond(s, l, u, DiamondFinishedBy[T])
}

// DiamondFinishes rewrites every zone of s to describe intervals that end
// together with, and are preceded within [l, u] by, an interval admitted
// by s. The duration lower bound is additionally floored at a strictly
// positive duration, since a finishing interval can never be degenerate.
func DiamondFinishes[T bound.Numeric[T]](s ZoneSet[T], l bound.LowerBound[T], u bound.UpperBound[T]) ZoneSet[T] {
	var zero T
	floor := bound.LowerOpen(zero)
	return diamondRewrite(s, func(z zone.Zone[T]) zone.Zone[T] {
		dmin := bound.LowerIntersection(floor, bound.LowerMinusUpper(z.Dmin(), u))
		return zone.Make(
			bound.LowerAdd(z.Bmin(), l), bound.UpperAdd(z.Bmax(), u),
			z.Emin(), z.Emax(),
			dmin, bound.UpperMinusLower(z.Dmax(), l))
	})
}

// BoxFinishes is the universal dual of DiamondFinishes.
func BoxFinishes[T bound.Numeric[T]](s ZoneSet[T], l bound.LowerBound[T], u bound.UpperBound[T]) ZoneSet[T] {
	return boxFromDiamond(s, l, u, DiamondFinishes[T])
}

// offset is the convenience-form (a, b] mapping to lower.open(a),
// upper.closed(b) shared by every scalar modal-operator overload.
func offset[T bound.Numeric[T]](a, b T) (bound.LowerBound[T], bound.UpperBound[T]) {
	return bound.LowerOpen(a), bound.UpperClosed(b)
}

// DiamondMeetsValue is the scalar-offset convenience form of DiamondMeets.
func DiamondMeetsValue[T bound.Numeric[T]](s ZoneSet[T], a, b T) ZoneSet[T] {
	l, u := offset(a, b)
	return DiamondMeets(s, l, u)
}

// DiamondMetByValue is the scalar-offset convenience form of DiamondMetBy.
func DiamondMetByValue[T bound.Numeric[T]](s ZoneSet[T], a, b T) ZoneSet[T] {
	l, u := offset(a, b)
	return DiamondMetBy(s, l, u)
}

// DiamondStartedByValue is the scalar-offset convenience form of
// DiamondStartedBy.
func DiamondStartedByValue[T bound.Numeric[T]](s ZoneSet[T], a, b T) ZoneSet[T] {
	l, u := offset(a, b)
	return DiamondStartedBy(s, l, u)
}

// DiamondStartsValue is the scalar-offset convenience form of
// DiamondStarts.
func DiamondStartsValue[T bound.Numeric[T]](s ZoneSet[T], a, b T) ZoneSet[T] {
	l, u := offset(a, b)
	return DiamondStarts(s, l, u)
}

// DiamondFinishedByValue is the scalar-offset convenience form of
// DiamondFinishedBy.
func DiamondFinishedByValue[T bound.Numeric[T]](s ZoneSet[T], a, b T) ZoneSet[T] {
	l, u := offset(a, b)
	return DiamondFinishedBy(s, l, u)
}

// DiamondFinishesValue is the scalar-offset convenience form of
// DiamondFinishes.
func DiamondFinishesValue[T bound.Numeric[T]](s ZoneSet[T], a, b T) ZoneSet[T] {
	l, u := offset(a, b)
	return DiamondFinishes(s, l, u)
}

// BoxMeetsValue is the scalar-offset convenience form of BoxMeets.
func BoxMeetsValue[T bound.Numeric[T]](s ZoneSet[T], a, b T) ZoneSet[T] {
	l, u := offset(a, b)
	return BoxMeets(s, l, u)
}

// BoxMetByValue is the scalar-offset convenience form of BoxMetBy.
func BoxMetByValue[T bound.Numeric[T]](s ZoneSet[T], a, b T) ZoneSet[T] {
	l, u := offset(a, b)
	return BoxMetBy(s, l, u)
}

// BoxStartedByValue is the scalar-offset convenience form of
// BoxStartedBy.
func BoxStartedByValue[T bound.Numeric[T]](s ZoneSet[T], a, b T) ZoneSet[T] {
	l, u := offset(a, b)
	return BoxStartedBy(s, l, u)
}

// BoxStartsValue is the scalar-offset convenience form of BoxStarts.
func BoxStartsValue[T bound.Numeric[T]](s ZoneSet[T], a, b T) ZoneSet[T] {
	l, u := offset(a, b)
	return BoxStarts(s, l, u)
}

// BoxFinishedByValue is the scalar-offset convenience form of
// BoxFinishedBy.
func BoxFinishedByValue[T bound.Numeric[T]](s ZoneSet[T], a, b T) ZoneSet[T] {
	l, u := offset(a, b)
	return BoxFinishedBy(s, l, u)
}

// BoxFinishesValue is the scalar-offset convenience form of BoxFinishes.
func BoxFinishesValue[T bound.Numeric[T]](s ZoneSet[T], a, b T) ZoneSet[T] {
	l, u := offset(a, b)
	return BoxFinishes(s, l, u)
}
