package bound

// kind distinguishes a finite bound from the two possible "infinite"
// readings a single-dimension constraint can take once De Morgan
// complementation has been applied to it:
//
//   - unbounded: the constraint never rules anything out (−∞ for a lower
//     bound, +∞ for an upper bound).
//   - impossible: the constraint can never be satisfied by any value
//     (+∞ for a lower bound, −∞ for an upper bound). This arises from
//     complementing an unbounded bound — e.g. complementing "e > −∞"
//     (always true) yields "e ≤ −∞" (never true) — and lets Overlap/
//     IsNonEmpty recognize the resulting zone as empty without requiring
//     the numeric domain to represent actual infinities.
type kind int8

const (
	kindFinite kind = iota
	kindUnbounded
	kindImpossible
)

// LowerBound is a constraint "x > value" (strict/open) or "x >= value"
// (non-strict/closed) on the begin, end, or duration dimension of a Zone;
// or one of the two infinite readings above.
type LowerBound[T Numeric[T]] struct {
	kind   kind
	value  T
	strict bool
}

// UpperBound is the dual of LowerBound: "x < value" (strict) or
// "x <= value" (non-strict), or one of the two infinite readings.
type UpperBound[T Numeric[T]] struct {
	kind   kind
	value  T
	strict bool
}

// LowerOpen builds the constraint x > v.
func LowerOpen[T Numeric[T]](v T) LowerBound[T] {
	return LowerBound[T]{kind: kindFinite, value: v, strict: true}
}

// LowerClosed builds the constraint x >= v.
func LowerClosed[T Numeric[T]](v T) LowerBound[T] {
	return LowerBound[T]{kind: kindFinite, value: v, strict: false}
}

// LowerUnbounded builds the always-true lower constraint (x > −∞).
func LowerUnbounded[T Numeric[T]]() LowerBound[T] {
	return LowerBound[T]{kind: kindUnbounded}
}

// lowerImpossible builds the never-true lower constraint; reachable only
// by complementing an UpperUnbounded bound.
func lowerImpossible[T Numeric[T]]() LowerBound[T] {
	return LowerBound[T]{kind: kindImpossible}
}

// UpperOpen builds the constraint x < v.
func UpperOpen[T Numeric[T]](v T) UpperBound[T] {
	return UpperBound[T]{kind: kindFinite, value: v, strict: true}
}

// UpperClosed builds the constraint x <= v.
func UpperClosed[T Numeric[T]](v T) UpperBound[T] {
	return UpperBound[T]{kind: kindFinite, value: v, strict: false}
}

// UpperUnbounded builds the always-true upper constraint (x < +∞).
func UpperUnbounded[T Numeric[T]]() UpperBound[T] {
	return UpperBound[T]{kind: kindUnbounded}
}

// upperImpossible builds the never-true upper constraint; reachable only
// by complementing a LowerUnbounded bound.
func upperImpossible[T Numeric[T]]() UpperBound[T] {
	return UpperBound[T]{kind: kindImpossible}
}

// Value returns the finite value and true, or the zero value and false
// when the bound is unbounded or impossible.
func (a LowerBound[T]) Value() (T, bool) { return a.value, a.kind == kindFinite }

// Value returns the finite value and true, or the zero value and false
// when the bound is unbounded or impossible.
func (a UpperBound[T]) Value() (T, bool) { return a.value, a.kind == kindFinite }

// Strict reports whether the bound is open (strict inequality).
// Unbounded and impossible bounds report false.
func (a LowerBound[T]) Strict() bool { return a.kind == kindFinite && a.strict }

// Strict reports whether the bound is open (strict inequality).
func (a UpperBound[T]) Strict() bool { return a.kind == kindFinite && a.strict }

// IsUnbounded reports whether the bound imposes no constraint.
func (a LowerBound[T]) IsUnbounded() bool { return a.kind == kindUnbounded }

// IsUnbounded reports whether the bound imposes no constraint.
func (a UpperBound[T]) IsUnbounded() bool { return a.kind == kindUnbounded }

// IsImpossible reports whether the bound can never be satisfied.
func (a LowerBound[T]) IsImpossible() bool { return a.kind == kindImpossible }

// IsImpossible reports whether the bound can never be satisfied.
func (a UpperBound[T]) IsImpossible() bool { return a.kind == kindImpossible }

// Complement turns "x >= v" into "x < v" (and "x > v" into "x <= v"),
// producing the dual UpperBound with the dual strictness.
func (a LowerBound[T]) Complement() UpperBound[T] {
	switch a.kind {
	case kindUnbounded:
		return upperImpossible[T]()
	case kindImpossible:
		return UpperUnbounded[T]()
	default:
		return UpperBound[T]{kind: kindFinite, value: a.value, strict: !a.strict}
	}
}

// Complement is the dual of LowerBound.Complement.
func (a UpperBound[T]) Complement() LowerBound[T] {
	switch a.kind {
	case kindUnbounded:
		return lowerImpossible[T]()
	case kindImpossible:
		return LowerUnbounded[T]()
	default:
		return LowerBound[T]{kind: kindFinite, value: a.value, strict: !a.strict}
	}
}

func lowerRank[T Numeric[T]](a LowerBound[T]) int {
	switch a.kind {
	case kindUnbounded:
		return -1
	case kindImpossible:
		return 1
	default:
		return 0
	}
}

func upperRank[T Numeric[T]](a UpperBound[T]) int {
	switch a.kind {
	case kindImpossible:
		return -1
	case kindUnbounded:
		return 1
	default:
		return 0
	}
}

// LowerLess is the total order used to sort zones by bmin and to decide
// which of two lower bounds is tighter. At equal finite value, closed
// sorts before open (a closed bound admits the boundary value, so the
// half-line it describes starts no later than the open one's).
func LowerLess[T Numeric[T]](a, b LowerBound[T]) bool {
	ra, rb := lowerRank(a), lowerRank(b)
	if ra != rb {
		return ra < rb
	}
	if ra != 0 {
		return false
	}
	if c := a.value.Cmp(b.value); c != 0 {
		return c < 0
	}
	return !a.strict && b.strict
}

// UpperLess is the dual order for upper bounds. At equal finite value,
// open sorts before closed.
func UpperLess[T Numeric[T]](a, b UpperBound[T]) bool {
	ra, rb := upperRank(a), upperRank(b)
	if ra != rb {
		return ra < rb
	}
	if ra != 0 {
		return false
	}
	if c := a.value.Cmp(b.value); c != 0 {
		return c < 0
	}
	return a.strict && !b.strict
}

// LowerEqual reports syntactic equality of two lower bounds.
func LowerEqual[T Numeric[T]](a, b LowerBound[T]) bool {
	if a.kind != b.kind {
		return false
	}
	return a.kind != kindFinite || (a.strict == b.strict && a.value.Cmp(b.value) == 0)
}

// UpperEqual reports syntactic equality of two upper bounds.
func UpperEqual[T Numeric[T]](a, b UpperBound[T]) bool {
	if a.kind != b.kind {
		return false
	}
	return a.kind != kindFinite || (a.strict == b.strict && a.value.Cmp(b.value) == 0)
}

// LowerIntersection returns the tighter (greater) of two lower bounds.
func LowerIntersection[T Numeric[T]](a, b LowerBound[T]) LowerBound[T] {
	if LowerLess(a, b) {
		return b
	}
	return a
}

// UpperIntersection returns the tighter (lesser) of two upper bounds.
func UpperIntersection[T Numeric[T]](a, b UpperBound[T]) UpperBound[T] {
	if UpperLess(a, b) {
		return a
	}
	return b
}

// LowerAdd lifts addition over lower bounds: unbounded/impossible absorb,
// and strictness combines via OR (the sum is closed only if both
// operands are closed).
func LowerAdd[T Numeric[T]](a, b LowerBound[T]) LowerBound[T] {
	if a.kind == kindImpossible || b.kind == kindImpossible {
		return lowerImpossible[T]()
	}
	if a.kind == kindUnbounded || b.kind == kindUnbounded {
		return LowerUnbounded[T]()
	}
	return LowerBound[T]{kind: kindFinite, value: a.value.Add(b.value), strict: a.strict || b.strict}
}

// UpperAdd is the dual of LowerAdd.
func UpperAdd[T Numeric[T]](a, b UpperBound[T]) UpperBound[T] {
	if a.kind == kindImpossible || b.kind == kindImpossible {
		return upperImpossible[T]()
	}
	if a.kind == kindUnbounded || b.kind == kindUnbounded {
		return UpperUnbounded[T]()
	}
	return UpperBound[T]{kind: kindFinite, value: a.value.Add(b.value), strict: a.strict || b.strict}
}

// LowerMinusUpper computes the lower endpoint of a difference range,
// e.g. the smallest achievable e−b given e >= lo and b <= up. Infinite
// operands absorb exactly like LowerAdd.
func LowerMinusUpper[T Numeric[T]](lo LowerBound[T], up UpperBound[T]) LowerBound[T] {
	if lo.kind == kindImpossible || up.kind == kindImpossible {
		return lowerImpossible[T]()
	}
	if lo.kind == kindUnbounded || up.kind == kindUnbounded {
		return LowerUnbounded[T]()
	}
	return LowerBound[T]{kind: kindFinite, value: lo.value.Sub(up.value), strict: lo.strict || up.strict}
}

// UpperMinusLower computes the upper endpoint of a difference range,
// e.g. the largest achievable e−b given e <= up and b >= lo.
func UpperMinusLower[T Numeric[T]](up UpperBound[T], lo LowerBound[T]) UpperBound[T] {
	if up.kind == kindImpossible || lo.kind == kindImpossible {
		return upperImpossible[T]()
	}
	if up.kind == kindUnbounded || lo.kind == kindUnbounded {
		return UpperUnbounded[T]()
	}
	return UpperBound[T]{kind: kindFinite, value: up.value.Sub(lo.value), strict: up.strict || lo.strict}
}

// Overlap reports whether the interval described by lo and up admits at
// least one value — i.e. whether lo and up are jointly satisfiable. This
// is the core non-emptiness primitive: a Zone is non-empty iff each of
// its three (lower, upper) axis pairs overlaps AND the derived duration
// range overlaps [dmin, dmax] (see zone.IsNonEmpty).
func Overlap[T Numeric[T]](lo LowerBound[T], up UpperBound[T]) bool {
	if lo.kind == kindImpossible || up.kind == kindImpossible {
		return false
	}
	if lo.kind == kindUnbounded || up.kind == kindUnbounded {
		return true
	}
	switch c := lo.value.Cmp(up.value); {
	case c < 0:
		return true
	case c > 0:
		return false
	default:
		return !lo.strict && !up.strict
	}
}

// LowerBeforeUpper is the value-order comparison the zoneset inclusion
// sweep uses to decide whether a lower-bound endpoint precedes an
// upper-bound endpoint on the timeline. At equal finite values it counts
// as "before" only when both bounds are closed, so a zone whose begin is
// pinned to a single point still passes the guard for itself.
func LowerBeforeUpper[T Numeric[T]](lo LowerBound[T], up UpperBound[T]) bool {
	loNeg, loPos := lo.kind == kindUnbounded, lo.kind == kindImpossible
	upNeg, upPos := up.kind == kindImpossible, up.kind == kindUnbounded
	loRank := rankOf(loNeg, loPos)
	upRank := rankOf(upNeg, upPos)
	if loRank != upRank {
		return loRank < upRank
	}
	if loRank != 0 {
		return false
	}
	if c := lo.value.Cmp(up.value); c != 0 {
		return c < 0
	}
	return !lo.strict && !up.strict
}

// UpperBeforeLower is the symmetric comparison for an upper-bound
// endpoint preceding a lower-bound endpoint; equivalently "the two sides
// can no longer overlap."
func UpperBeforeLower[T Numeric[T]](up UpperBound[T], lo LowerBound[T]) bool {
	return !Overlap(lo, up)
}

func rankOf(neg, pos bool) int {
	switch {
	case neg:
		return -1
	case pos:
		return 1
	default:
		return 0
	}
}

// String renders a diagnostic form such as "[3" or "(-inf".
func (a LowerBound[T]) String() string {
	switch a.kind {
	case kindUnbounded:
		return "(-inf"
	case kindImpossible:
		return "(+inf!"
	default:
		if a.strict {
			return "(" + a.value.String()
		}
		return "[" + a.value.String()
	}
}

// String renders a diagnostic form such as "10]" or "+inf)".
func (a UpperBound[T]) String() string {
	switch a.kind {
	case kindUnbounded:
		return "+inf)"
	case kindImpossible:
		return "-inf!)"
	default:
		if a.strict {
			return a.value.String() + ")"
		}
		return a.value.String() + "]"
	}
}
