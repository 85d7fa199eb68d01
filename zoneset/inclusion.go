package zoneset

import (
	"github.com/katalvlaran/zonealgebra/bound"
	"github.com/katalvlaran/zonealgebra/zone"
)

// Includes reports whether every zone in s2 is included in some single
// zone of s1. This is the piecewise inclusion matching the semantics of
// filter-reduced antichains; it is not the same as the semantic
// containment of unions. An empty s2 trivially holds; an empty s1 with
// non-empty s2 fails.
func Includes[T bound.Numeric[T]](s1, s2 ZoneSet[T]) bool {
	left := sortByBmin(s1)
	right := sortByBmin(s2)

	i1 := 0
	active1 := make(ZoneSet[T], 0, len(left))
	for _, z2 := range right {
		for i1 < len(left) && bound.LowerBeforeUpper(left[i1].Bmin(), z2.Bmax()) {
			active1 = append(active1, left[i1])
			i1++
		}

		kept := active1[:0:0]
		for _, z1 := range active1 {
			if !bound.UpperBeforeLower(z1.Bmax(), z2.Bmin()) {
				kept = append(kept, z1)
			}
		}
		active1 = kept

		found := false
		for _, z1 := range active1 {
			if zone.Includes(z1, z2) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
