package zoneset

import "github.com/katalvlaran/zonealgebra/bound"

// offsetString parses the decimal-rational convenience form (a, b] into
// lower.open(a), upper.closed(b), available only for the rational
// instantiation.
func offsetString(a, b string) (bound.LowerBound[bound.Rational], bound.UpperBound[bound.Rational], error) {
	qa, err := bound.ParseRational(a)
	if err != nil {
		return bound.LowerBound[bound.Rational]{}, bound.UpperBound[bound.Rational]{}, err
	}
	qb, err := bound.ParseRational(b)
	if err != nil {
		return bound.LowerBound[bound.Rational]{}, bound.UpperBound[bound.Rational]{}, err
	}

	return bound.LowerOpen(qa), bound.UpperClosed(qb), nil
}

// DurationRestrictionString is the decimal-rational string variant of
// DurationRestrictionOpenClosed.
func DurationRestrictionString(s ZoneSet[bound.Rational], a, b string) (ZoneSet[bound.Rational], error) {
	l, u, err := offsetString(a, b)
	if err != nil {
		return nil, err
	}

	return DurationRestriction(s, l, u), nil
}

// DiamondMeetsString is the decimal-rational string variant of
// DiamondMeets.
func DiamondMeetsString(s ZoneSet[bound.Rational], a, b string) (ZoneSet[bound.Rational], error) {
	l, u, err := offsetString(a, b)
	if err != nil {
		return nil, err
	}

	return DiamondMeets(s, l, u), nil
}

// DiamondMetByString is the decimal-rational string variant of
// DiamondMetBy.
func DiamondMetByString(s ZoneSet[bound.Rational], a, b string) (ZoneSet[bound.Rational], error) {
	l, u, err := offsetString(a, b)
	if err != nil {
		return nil, err
	}

	return DiamondMetBy(s, l, u), nil
}

// DiamondStartedByString is the decimal-rational string variant of
// DiamondStartedBy.
func DiamondStartedByString(s ZoneSet[bound.Rational], a, b string) (ZoneSet[bound.Rational], error) {
	l, u, err := offsetString(a, b)
	if err != nil {
		return nil, err
	}

	return DiamondStartedBy(s, l, u), nil
}

// DiamondStartsString is the decimal-rational string variant of
// DiamondStarts.
func DiamondStartsString(s ZoneSet[bound.Rational], a, b string) (ZoneSet[bound.Rational], error) {
	l, u, err := offsetString(a, b)
	if err != nil {
		return nil, err
	}

	return DiamondStarts(s, l, u), nil
}

// DiamondFinishedByString is the decimal-rational string variant of
// DiamondFinishedBy.
func DiamondFinishedByString(s ZoneSet[bound.Rational], a, b string) (ZoneSet[bound.Rational], error) {
	l, u, err := offsetString(a, b)
	if err != nil {
		return nil, err
	}

	return DiamondFinishedBy(s, l, u), nil
}

// DiamondFinishesString is the decimal-rational string variant of
// DiamondFinishes.
func DiamondFinishesString(s ZoneSet[bound.Rational], a, b string) (ZoneSet[bound.Rational], error) {
	l, u, err := offsetString(a, b)
	if err != nil {
		return nil, err
	}

	return DiamondFinishes(s, l, u), nil
}

// BoxMeetsString is the decimal-rational string variant of BoxMeets.
func BoxMeetsString(s ZoneSet[bound.Rational], a, b string) (ZoneSet[bound.Rational], error) {
	l, u, err := offsetString(a, b)
	if err != nil {
		return nil, err
	}

	return BoxMeets(s, l, u), nil
}

// BoxMetByString is the decimal-rational string variant of BoxMetBy.
func BoxMetByString(s ZoneSet[bound.Rational], a, b string) (ZoneSet[bound.Rational], error) {
	l, u, err := offsetString(a, b)
	if err != nil {
		return nil, err
	}

	return BoxMetBy(s, l, u), nil
}

// BoxStartedByString is the decimal-rational string variant of
// BoxStartedBy.
func BoxStartedByString(s ZoneSet[bound.Rational], a, b string) (ZoneSet[bound.Rational], error) {
	l, u, err := offsetString(a, b)
	if err != nil {
		return nil, err
	}

	return BoxStartedBy(s, l, u), nil
}

// BoxStartsString is the decimal-rational string variant of BoxStarts.
func BoxStartsString(s ZoneSet[bound.Rational], a, b string) (ZoneSet[bound.Rational], error) {
	l, u, err := offsetString(a, b)
	if err != nil {
		return nil, err
	}

	return BoxStarts(s, l, u), nil
}

// BoxFinishedByString is the decimal-rational string variant of
// BoxFinishedBy.
func BoxFinishedByString(s ZoneSet[bound.Rational], a, b string) (ZoneSet[bound.Rational], error) {
	l, u, err := offsetString(a, b)
	if err != nil {
		return nil, err
	}

	return BoxFinishedBy(s, l, u), nil
}

// BoxFinishesString is the decimal-rational string variant of
// BoxFinishes.
func BoxFinishesString(s ZoneSet[bound.Rational], a, b string) (ZoneSet[bound.Rational], error) {
	l, u, err := offsetString(a, b)
	if err != nil {
		return nil, err
	}

	return BoxFinishes(s, l, u), nil
}
