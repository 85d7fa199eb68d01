package zone

import "github.com/katalvlaran/zonealgebra/bound"

// MakeFromPeriodString is the decimal-rational string variant of
// MakeFromPeriod, available only for the rational instantiation: since
// Go resolves this function at compile time against bound.Rational
// specifically, a non-rational caller simply cannot reach it, which is
// the compile-time analogue of the "inert for non-rational types"
// requirement.
func MakeFromPeriodString(begin, end string) (Zone[bound.Rational], error) {
	b, err := bound.ParseRational(begin)
	if err != nil {
		return Zone[bound.Rational]{}, err
	}
	e, err := bound.ParseRational(end)
	if err != nil {
		return Zone[bound.Rational]{}, err
	}

	return MakeFromPeriod(b, e), nil
}

// MakeFromPeriodRiseAnchorString is the string variant of
// MakeFromPeriodRiseAnchor.
func MakeFromPeriodRiseAnchorString(begin, end string) (Zone[bound.Rational], error) {
	b, err := bound.ParseRational(begin)
	if err != nil {
		return Zone[bound.Rational]{}, err
	}
	e, err := bound.ParseRational(end)
	if err != nil {
		return Zone[bound.Rational]{}, err
	}

	return MakeFromPeriodRiseAnchor(b, e), nil
}

// MakeFromPeriodFallAnchorString is the string variant of
// MakeFromPeriodFallAnchor.
func MakeFromPeriodFallAnchorString(begin, end string) (Zone[bound.Rational], error) {
	b, err := bound.ParseRational(begin)
	if err != nil {
		return Zone[bound.Rational]{}, err
	}
	e, err := bound.ParseRational(end)
	if err != nil {
		return Zone[bound.Rational]{}, err
	}

	return MakeFromPeriodFallAnchor(b, e), nil
}

// MakeFromPeriodBothAnchorString is the string variant of
// MakeFromPeriodBothAnchor.
func MakeFromPeriodBothAnchorString(begin, end string) (Zone[bound.Rational], error) {
	return MakeFromPeriodString(begin, end)
}
