package zoneset

import (
	"github.com/katalvlaran/zonealgebra/bound"
	"github.com/katalvlaran/zonealgebra/zone"
)

// sweep drives the shared two-pointer construction behind Intersection
// and Concatenation. left is pre-sorted by leftKey (bmin for
// intersection, emin for concatenation); right is pre-sorted by bmin.
// leftEvict extracts the upper bound used to decide when a left-side
// zone can no longer interact with the advancing right side (bmax for
// intersection, emax for concatenation); combine produces the candidate
// output zone from a (left, right) pair, always in that argument order
// so concatenation's asymmetry is preserved regardless of which side
// triggered the combination.
func sweep[T bound.Numeric[T]](
	left, right ZoneSet[T],
	leftKey func(zone.Zone[T]) bound.LowerBound[T],
	leftEvict func(zone.Zone[T]) bound.UpperBound[T],
	combine func(l, r zone.Zone[T]) zone.Zone[T],
) ZoneSet[T] {
	var active1, active2, activeR, out ZoneSet[T]

	settle := func(currentKey bound.LowerBound[T]) {
		kept := activeR[:0:0]
		for _, zr := range activeR {
			if bound.UpperBeforeLower(zr.Bmax(), currentKey) {
				out = append(out, zr)
			} else {
				kept = append(kept, zr)
			}
		}
		activeR = kept
	}

	mergeIntoActiveR := func(kid zone.Zone[T], currentKey bound.LowerBound[T]) {
		if !kid.IsNonEmpty() {
			return
		}
		for _, zr := range activeR {
			if zone.Includes(zr, kid) {
				return
			}
		}
		kept := activeR[:0:0]
		for _, zr := range activeR {
			if !zone.Includes(kid, zr) {
				kept = append(kept, zr)
			}
		}
		activeR = append(kept, kid)
		settle(currentKey)
	}

	i, j := 0, 0
	for i < len(left) || j < len(right) {
		advanceLeft := false
		switch {
		case i < len(left) && j < len(right):
			advanceLeft = bound.LowerLess(leftKey(left[i]), right[j].Bmin())
		case i < len(left):
			advanceLeft = true
		default:
			advanceLeft = false
		}

		if advanceLeft {
			z1 := left[i]
			i++
			currentKey := leftKey(z1)
			active1 = append(active1, z1)

			kept := active2[:0:0]
			for _, z2 := range active2 {
				if !bound.UpperBeforeLower(z2.Bmax(), currentKey) {
					kept = append(kept, z2)
				}
			}
			active2 = kept

			for _, z2 := range active2 {
				mergeIntoActiveR(combine(z1, z2), currentKey)
			}
		} else {
			z2 := right[j]
			j++
			currentKey := z2.Bmin()
			active2 = append(active2, z2)

			kept := active1[:0:0]
			for _, z1 := range active1 {
				if !bound.UpperBeforeLower(leftEvict(z1), currentKey) {
					kept = append(kept, z1)
				}
			}
			active1 = kept

			for _, z1 := range active1 {
				mergeIntoActiveR(combine(z1, z2), currentKey)
			}
		}
	}

	out = append(out, activeR...)

	return sortByBmin(out)
}

// Intersection returns the zone set admitting exactly the timed
// intervals admitted by both s1 and s2, reduced to a bmin-sorted
// antichain.
func Intersection[T bound.Numeric[T]](s1, s2 ZoneSet[T]) ZoneSet[T] {
	left := sortByBmin(s1)
	right := sortByBmin(s2)

	return Filter(sweep(left, right,
		func(z zone.Zone[T]) bound.LowerBound[T] { return z.Bmin() },
		func(z zone.Zone[T]) bound.UpperBound[T] { return z.Bmax() },
		zone.Intersection[T],
	))
}

// Concatenation returns the zone set of intervals formed by running some
// zone of s1 then some zone of s2 back to back, reduced to a
// bmin-sorted antichain.
func Concatenation[T bound.Numeric[T]](s1, s2 ZoneSet[T]) ZoneSet[T] {
	left := sortByEmin(s1)
	right := sortByBmin(s2)

	return Filter(sweep(left, right,
		func(z zone.Zone[T]) bound.LowerBound[T] { return z.Emin() },
		func(z zone.Zone[T]) bound.UpperBound[T] { return z.Emax() },
		zone.Concatenation[T],
	))
}
