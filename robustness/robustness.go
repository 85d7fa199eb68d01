package robustness

import (
	"sort"

	"github.com/katalvlaran/zonealgebra/bound"
	"github.com/katalvlaran/zonealgebra/zoneset"
)

// point is one endpoint pair collected from the intersected zone set: a
// position on the begin/end axis (pos) together with the corresponding
// end/begin-axis coordinate it is paired with (counterpart).
type point[T bound.Numeric[T]] struct {
	pos         T
	counterpart T
}

// Translate computes (robLeft, robRight): the largest leftward and
// rightward horizontal translation of the nominal interval [l, u] — read
// as the constant-duration line (scopeStart, scopeEnd, scopeStart,
// scopeEnd, u-l, u-l) — that remains contained in s. Both results are
// non-negative and are zero when the untranslated line is not itself
// contained in s.
func Translate[T bound.Numeric[T]](s zoneset.ZoneSet[T], scopeStart, scopeEnd, l, u T) (robLeft, robRight T) {
	dur := u.Sub(l)
	line := zoneset.New[T]().AddValuesClosed([6]T{scopeStart, scopeEnd, scopeStart, scopeEnd, dur, dur})
	inter := zoneset.Intersection(s, line)

	var left, right []point[T]
	for _, z := range inter {
		sp, spOK := z.Bmin().Value()
		ep, epOK := z.Bmax().Value()
		esp, espOK := z.Emin().Value()
		eep, eepOK := z.Emax().Value()
		if !spOK || !epOK || !espOK || !eepOK {
			continue
		}
		if sp.Cmp(l) >= 0 {
			right = append(right, point[T]{pos: sp, counterpart: esp})
		}
		if sp.Cmp(l) <= 0 {
			left = append(left, point[T]{pos: sp, counterpart: esp})
		}
		if ep.Cmp(l) >= 0 {
			right = append(right, point[T]{pos: ep, counterpart: eep})
		}
		if ep.Cmp(l) <= 0 {
			left = append(left, point[T]{pos: ep, counterpart: eep})
		}
	}

	sort.Slice(right, func(i, j int) bool { return right[i].pos.Cmp(right[j].pos) < 0 })
	sort.Slice(left, func(i, j int) bool { return left[i].pos.Cmp(left[j].pos) < 0 })

	old, eold := l, u
	for _, p := range right {
		segment := zoneset.New[T]().AddValuesClosed([6]T{old, p.pos, eold, p.counterpart, dur, dur})
		if !zoneset.Includes(inter, segment) {
			break
		}
		old, eold = p.pos, p.counterpart
	}
	robRight = old.Sub(l)

	old, eold = l, u
	for i := len(left) - 1; i >= 0; i-- {
		p := left[i]
		segment := zoneset.New[T]().AddValuesClosed([6]T{p.pos, old, p.counterpart, eold, dur, dur})
		if !zoneset.Includes(inter, segment) {
			break
		}
		old, eold = p.pos, p.counterpart
	}
	robLeft = l.Sub(old)

	return robLeft, robRight
}

// TranslateFloat64 is the Float64-instantiated convenience wrapper
// around Translate, the shape most analyzers use since the robustness
// translation is an approximate diagnostic rather than an exact
// symbolic computation.
func TranslateFloat64(s zoneset.ZoneSet[bound.Float64], scopeStart, scopeEnd, l, u bound.Float64) (robLeft, robRight bound.Float64) {
	return Translate(s, scopeStart, scopeEnd, l, u)
}

// TranslateRationalAsFloat64 converts a rational zone set to its
// floating-point counterpart and computes the translation there. Exact
// callers that want rational slack values should instantiate Translate
// with bound.Rational directly instead.
func TranslateRationalAsFloat64(s zoneset.ZoneSet[bound.Rational], scopeStart, scopeEnd, l, u bound.Float64) (robLeft, robRight bound.Float64) {
	return Translate(zoneset.ToFloat64(s), scopeStart, scopeEnd, l, u)
}
