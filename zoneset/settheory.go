package zoneset

import (
	"github.com/katalvlaran/zonealgebra/bound"
	"github.com/katalvlaran/zonealgebra/zone"
)

// complementZone decomposes the complement of a single zone's conjunction
// of six half-space constraints into six zones, each unbounded in five
// dimensions and constraining the remaining one to the complement of z's
// corresponding bound. This is the De Morgan expansion of NOT(c1 AND c2
// AND ... AND c6) into (NOT c1) OR (NOT c2) OR ... OR (NOT c6).
func complementZone[T bound.Numeric[T]](z zone.Zone[T]) ZoneSet[T] {
	u := zone.Universal[T]()
	out := New[T]()

	bmax := u.Bmax()
	emin, emax := u.Emin(), u.Emax()
	dmin, dmax := u.Dmin(), u.Dmax()
	out = out.Add(zone.Make(u.Bmin(), z.Bmin().Complement(), emin, emax, dmin, dmax))
	out = out.Add(zone.Make(z.Bmax().Complement(), bmax, emin, emax, dmin, dmax))

	bmin := u.Bmin()
	out = out.Add(zone.Make(bmin, bmax, u.Emin(), z.Emin().Complement(), dmin, dmax))
	out = out.Add(zone.Make(bmin, bmax, z.Emax().Complement(), u.Emax(), dmin, dmax))

	out = out.Add(zone.Make(bmin, bmax, emin, emax, u.Dmin(), z.Dmin().Complement()))
	out = out.Add(zone.Make(bmin, bmax, emin, emax, z.Dmax().Complement(), u.Dmax()))

	return Filter(sortByBmin(out))
}

// Complementation returns the zone set admitting exactly the timed
// intervals NOT admitted by any zone of s.
func Complementation[T bound.Numeric[T]](s ZoneSet[T]) ZoneSet[T] {
	result := Of(zone.Universal[T]())
	for _, z := range s {
		result = Intersection(result, complementZone(z))
	}

	return result
}

// SetDifference returns the zone set of timed intervals admitted by s1
// but not by s2, computed by folding s1 through the single-zone
// complement of each member of s2, filtering after every step to keep
// the intermediate antichain bounded.
func SetDifference[T bound.Numeric[T]](s1, s2 ZoneSet[T]) ZoneSet[T] {
	result := Filter(sortByBmin(s1))
	for _, z := range s2 {
		result = Filter(Intersection(result, complementZone(z)))
	}

	return result
}

// SetUnion returns the filtered, bmin-sorted union of s1 and s2.
func SetUnion[T bound.Numeric[T]](s1, s2 ZoneSet[T]) ZoneSet[T] {
	merged := make(ZoneSet[T], 0, len(s1)+len(s2))
	merged = append(merged, s1...)
	merged = append(merged, s2...)

	return Filter(sortByBmin(merged))
}

// TransitiveClosure computes the least fixpoint of X ↦ S ∪ (X ∘ S)
// starting from X = S, where ∘ is Concatenation. Each iteration advances
// the frontier to the newly produced compositions (rather than
// recomputing from the original seed every time) so the loop converges
// as fast as the operand allows. Termination depends on the operand: for
// operands whose reachable compositions admit a finite antichain the
// loop halts; otherwise it does not, and the caller is responsible for
// bounding it externally.
func TransitiveClosure[T bound.Numeric[T]](s ZoneSet[T]) ZoneSet[T] {
	zplus := Filter(sortByBmin(s))
	zlast := zplus

	for {
		znext := Concatenation(zlast, s)
		if Includes(zplus, znext) {
			break
		}
		zlast = znext
		zplus = SetUnion(zplus, znext)
	}

	return zplus
}
