package zone

import "github.com/katalvlaran/zonealgebra/bound"

// Zone is a tuple (bmin, bmax, emin, emax, dmin, dmax) describing the set
// of timed intervals (b, e) with b in [bmin, bmax], e in [emin, emax], and
// duration d = e − b in [dmin, dmax] (each respecting its own strictness).
//
// Zone is a value type; the zero Zone is the degenerate point at the
// numeric domain's zero in every dimension and is itself non-empty (all
// six bounds default-construct as closed at T's zero), so callers that
// need an empty placeholder should test IsNonEmpty rather than relying on
// the zero value.
type Zone[T bound.Numeric[T]] struct {
	bmin bound.LowerBound[T]
	bmax bound.UpperBound[T]
	emin bound.LowerBound[T]
	emax bound.UpperBound[T]
	dmin bound.LowerBound[T]
	dmax bound.UpperBound[T]
}

// Bmin returns the begin-dimension lower bound.
func (z Zone[T]) Bmin() bound.LowerBound[T] { return z.bmin }

// Bmax returns the begin-dimension upper bound.
func (z Zone[T]) Bmax() bound.UpperBound[T] { return z.bmax }

// Emin returns the end-dimension lower bound.
func (z Zone[T]) Emin() bound.LowerBound[T] { return z.emin }

// Emax returns the end-dimension upper bound.
func (z Zone[T]) Emax() bound.UpperBound[T] { return z.emax }

// Dmin returns the duration-dimension lower bound.
func (z Zone[T]) Dmin() bound.LowerBound[T] { return z.dmin }

// Dmax returns the duration-dimension upper bound.
func (z Zone[T]) Dmax() bound.UpperBound[T] { return z.dmax }

// IsNonEmpty reports whether the zone's six constraints are jointly
// satisfiable: each of the three (lower, upper) axis pairs must overlap,
// AND the duration range achievable from begin/end ([emin−bmax,
// emax−bmin]) must overlap the declared [dmin, dmax]. Because b and e
// each range over a convex interval, the achievable d = e−b range is
// the full continuum [emin−bmax, emax−bmin], so overlap with
// [dmin,dmax] is both necessary and sufficient for a witnessing (b,e)
// pair to exist.
func (z Zone[T]) IsNonEmpty() bool {
	if !bound.Overlap(z.bmin, z.bmax) {
		return false
	}
	if !bound.Overlap(z.emin, z.emax) {
		return false
	}
	if !bound.Overlap(z.dmin, z.dmax) {
		return false
	}
	derivedDmin := bound.LowerMinusUpper(z.emin, z.bmax)
	derivedDmax := bound.UpperMinusLower(z.emax, z.bmin)
	lo := bound.LowerIntersection(z.dmin, derivedDmin)
	up := bound.UpperIntersection(z.dmax, derivedDmax)
	return bound.Overlap(lo, up)
}
