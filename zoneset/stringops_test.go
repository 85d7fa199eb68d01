package zoneset_test

import (
	"testing"

	"github.com/katalvlaran/zonealgebra/bound"
	"github.com/katalvlaran/zonealgebra/zone"
	"github.com/katalvlaran/zonealgebra/zoneset"
	"github.com/stretchr/testify/assert"
)

func rationalFixture() zoneset.ZoneSet[bound.Rational] {
	z := zone.MakeFromPeriod(bound.RationalFromInt(0), bound.RationalFromInt(3))
	return zoneset.Of(z)
}

func TestDurationRestrictionString_MatchesValueForm(t *testing.T) {
	s := rationalFixture()

	want := zoneset.DurationRestrictionOpenClosed[bound.Rational](s, bound.RationalFromInt(1), bound.RationalFromInt(2))
	got, err := zoneset.DurationRestrictionString(s, "1", "2")
	assert.NoError(t, err)
	assert.Equal(t, want.String(), got.String())
}

func TestDurationRestrictionString_PropagatesParseError(t *testing.T) {
	s := rationalFixture()
	_, err := zoneset.DurationRestrictionString(s, "garbage", "2")
	assert.ErrorIs(t, err, bound.ErrInvalidRational)
}

func TestModalStringOperators_MatchValueForm(t *testing.T) {
	s := rationalFixture()
	a, b := bound.RationalFromInt(1), bound.RationalFromInt(2)

	cases := []struct {
		name      string
		viaString func(zoneset.ZoneSet[bound.Rational], string, string) (zoneset.ZoneSet[bound.Rational], error)
		viaValue  func(zoneset.ZoneSet[bound.Rational], bound.Rational, bound.Rational) zoneset.ZoneSet[bound.Rational]
	}{
		{"DiamondMeets", zoneset.DiamondMeetsString, zoneset.DiamondMeetsValue[bound.Rational]},
		{"DiamondMetBy", zoneset.DiamondMetByString, zoneset.DiamondMetByValue[bound.Rational]},
		{"DiamondStartedBy", zoneset.DiamondStartedByString, zoneset.DiamondStartedByValue[bound.Rational]},
		{"DiamondStarts", zoneset.DiamondStartsString, zoneset.DiamondStartsValue[bound.Rational]},
		{"DiamondFinishedBy", zoneset.DiamondFinishedByString, zoneset.DiamondFinishedByValue[bound.Rational]},
		{"DiamondFinishes", zoneset.DiamondFinishesString, zoneset.DiamondFinishesValue[bound.Rational]},
		{"BoxMeets", zoneset.BoxMeetsString, zoneset.BoxMeetsValue[bound.Rational]},
		{"BoxMetBy", zoneset.BoxMetByString, zoneset.BoxMetByValue[bound.Rational]},
		{"BoxStartedBy", zoneset.BoxStartedByString, zoneset.BoxStartedByValue[bound.Rational]},
		{"BoxStarts", zoneset.BoxStartsString, zoneset.BoxStartsValue[bound.Rational]},
		{"BoxFinishedBy", zoneset.BoxFinishedByString, zoneset.BoxFinishedByValue[bound.Rational]},
		{"BoxFinishes", zoneset.BoxFinishesString, zoneset.BoxFinishesValue[bound.Rational]},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want := tc.viaValue(s, a, b)
			got, err := tc.viaString(s, "1", "2")
			assert.NoError(t, err)
			assert.Equal(t, want.String(), got.String())
		})
	}
}

func TestModalStringOperators_PropagateParseError(t *testing.T) {
	s := rationalFixture()
	_, err := zoneset.DiamondMeetsString(s, "1", "not-a-number")
	assert.ErrorIs(t, err, bound.ErrInvalidRational)
}
