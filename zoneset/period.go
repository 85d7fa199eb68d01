package zoneset

import (
	"github.com/katalvlaran/zonealgebra/bound"
	"github.com/katalvlaran/zonealgebra/zone"
)

// AddValues appends the zone built from six finite values and six
// closed-flags (see zone.MakeValues), dropping it if empty.
func (s ZoneSet[T]) AddValues(values [6]T, closed [6]bool) ZoneSet[T] {
	return s.Add(zone.MakeValues(values, closed))
}

// AddValuesClosed appends the all-closed zone built from six finite
// values, dropping it if empty.
func (s ZoneSet[T]) AddValuesClosed(values [6]T) ZoneSet[T] {
	return s.Add(zone.MakeValuesClosed(values))
}

// AddFromPeriod appends the exact-period zone for [begin, end].
func (s ZoneSet[T]) AddFromPeriod(begin, end T) ZoneSet[T] {
	return s.Add(zone.MakeFromPeriod(begin, end))
}

// AddFromPeriodRiseAnchor appends the rise-anchored period zone for
// [begin, end].
func (s ZoneSet[T]) AddFromPeriodRiseAnchor(begin, end T) ZoneSet[T] {
	return s.Add(zone.MakeFromPeriodRiseAnchor(begin, end))
}

// AddFromPeriodFallAnchor appends the fall-anchored period zone for
// [begin, end].
func (s ZoneSet[T]) AddFromPeriodFallAnchor(begin, end T) ZoneSet[T] {
	return s.Add(zone.MakeFromPeriodFallAnchor(begin, end))
}

// AddFromPeriodBothAnchor appends the both-anchored period zone for
// [begin, end]; it is equivalent to AddFromPeriod.
func (s ZoneSet[T]) AddFromPeriodBothAnchor(begin, end T) ZoneSet[T] {
	return s.Add(zone.MakeFromPeriodBothAnchor(begin, end))
}

// AddFromPeriodString is the decimal-rational string variant of
// AddFromPeriod, available only for the rational instantiation.
func AddFromPeriodString(s ZoneSet[bound.Rational], begin, end string) (ZoneSet[bound.Rational], error) {
	z, err := zone.MakeFromPeriodString(begin, end)
	if err != nil {
		return nil, err
	}

	return s.Add(z), nil
}

// AddFromPeriodRiseAnchorString is the decimal-rational string variant of
// AddFromPeriodRiseAnchor.
func AddFromPeriodRiseAnchorString(s ZoneSet[bound.Rational], begin, end string) (ZoneSet[bound.Rational], error) {
	z, err := zone.MakeFromPeriodRiseAnchorString(begin, end)
	if err != nil {
		return nil, err
	}

	return s.Add(z), nil
}

// AddFromPeriodFallAnchorString is the decimal-rational string variant of
// AddFromPeriodFallAnchor.
func AddFromPeriodFallAnchorString(s ZoneSet[bound.Rational], begin, end string) (ZoneSet[bound.Rational], error) {
	z, err := zone.MakeFromPeriodFallAnchorString(begin, end)
	if err != nil {
		return nil, err
	}

	return s.Add(z), nil
}

// AddFromPeriodBothAnchorString is the decimal-rational string variant of
// AddFromPeriodBothAnchor.
func AddFromPeriodBothAnchorString(s ZoneSet[bound.Rational], begin, end string) (ZoneSet[bound.Rational], error) {
	z, err := zone.MakeFromPeriodBothAnchorString(begin, end)
	if err != nil {
		return nil, err
	}

	return s.Add(z), nil
}
