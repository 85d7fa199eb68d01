package zoneset

import (
	"github.com/katalvlaran/zonealgebra/bound"
	"github.com/katalvlaran/zonealgebra/zone"
)

// Filter reduces s to an equivalent bmin-sorted antichain: no element of
// the result is included in another, and the union of the result equals
// the union of s. Filter is idempotent.
//
// The algorithm is a single streaming pass, over a bmin-sorted copy of s,
// maintaining a set of not-yet-emitted, pairwise-incomparable zones
// ("active"). Settling the prefix early (step 3) is an optimization only;
// correctness does not depend on the caller pre-sorting s.
func Filter[T bound.Numeric[T]](s ZoneSet[T]) ZoneSet[T] {
	active := make(ZoneSet[T], 0, len(s))
	out := make(ZoneSet[T], 0, len(s))

	for _, z1 := range sortByBmin(s) {
		subsumed := false
		for _, z2 := range active {
			if zone.Includes(z2, z1) {
				subsumed = true
				break
			}
		}
		if subsumed {
			continue
		}

		kept := active[:0:0]
		for _, z2 := range active {
			if !zone.Includes(z1, z2) {
				kept = append(kept, z2)
			}
		}
		kept = append(kept, z1)

		settled := kept[:0:0]
		for _, z2 := range kept {
			if bound.UpperBeforeLower(z2.Bmax(), z1.Bmin()) {
				out = append(out, z2)
			} else {
				settled = append(settled, z2)
			}
		}
		active = settled
	}

	out = append(out, active...)

	return sortByBmin(out)
}
