package zoneset

import (
	"github.com/katalvlaran/zonealgebra/bound"
	"github.com/katalvlaran/zonealgebra/zone"
)

func convertLower[T1 bound.Numeric[T1], T2 bound.Numeric[T2]](lo bound.LowerBound[T1], conv func(T1) T2) bound.LowerBound[T2] {
	if lo.IsImpossible() {
		return bound.UpperUnbounded[T2]().Complement()
	}
	if lo.IsUnbounded() {
		return bound.LowerUnbounded[T2]()
	}
	v, _ := lo.Value()
	if lo.Strict() {
		return bound.LowerOpen(conv(v))
	}
	return bound.LowerClosed(conv(v))
}

func convertUpper[T1 bound.Numeric[T1], T2 bound.Numeric[T2]](up bound.UpperBound[T1], conv func(T1) T2) bound.UpperBound[T2] {
	if up.IsImpossible() {
		return bound.LowerUnbounded[T2]().Complement()
	}
	if up.IsUnbounded() {
		return bound.UpperUnbounded[T2]()
	}
	v, _ := up.Value()
	if up.Strict() {
		return bound.UpperOpen(conv(v))
	}
	return bound.UpperClosed(conv(v))
}

// ToFloat64 converts a rational zone set to its floating-point
// counterpart, converting each of the six bounds element-wise and
// preserving strictness flags and unbounded/impossible state.
func ToFloat64(s ZoneSet[bound.Rational]) ZoneSet[bound.Float64] {
	out := make(ZoneSet[bound.Float64], 0, len(s))
	conv := func(r bound.Rational) bound.Float64 { return bound.Float64(r.Float64()) }
	for _, z := range s {
		out = out.Add(zone.Make(
			convertLower[bound.Rational, bound.Float64](z.Bmin(), conv),
			convertUpper[bound.Rational, bound.Float64](z.Bmax(), conv),
			convertLower[bound.Rational, bound.Float64](z.Emin(), conv),
			convertUpper[bound.Rational, bound.Float64](z.Emax(), conv),
			convertLower[bound.Rational, bound.Float64](z.Dmin(), conv),
			convertUpper[bound.Rational, bound.Float64](z.Dmax(), conv),
		))
	}

	return out
}

// ToRational converts a floating-point zone set to the rational
// instantiation, converting each of the six bounds element-wise and
// preserving strictness flags and unbounded/impossible state. The
// conversion is exact with respect to the IEEE-754 value of each
// float64; it does not recover whatever decimal the float approximates.
func ToRational(s ZoneSet[bound.Float64]) ZoneSet[bound.Rational] {
	out := make(ZoneSet[bound.Rational], 0, len(s))
	conv := func(f bound.Float64) bound.Rational { return bound.RationalFromFloat64(float64(f)) }
	for _, z := range s {
		out = out.Add(zone.Make(
			convertLower[bound.Float64, bound.Rational](z.Bmin(), conv),
			convertUpper[bound.Float64, bound.Rational](z.Bmax(), conv),
			convertLower[bound.Float64, bound.Rational](z.Emin(), conv),
			convertUpper[bound.Float64, bound.Rational](z.Emax(), conv),
			convertLower[bound.Float64, bound.Rational](z.Dmin(), conv),
			convertUpper[bound.Float64, bound.Rational](z.Dmax(), conv),
		))
	}

	return out
}
