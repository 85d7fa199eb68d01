package zoneset_test

import (
	"testing"

	"github.com/katalvlaran/zonealgebra/bound"
	"github.com/katalvlaran/zonealgebra/zone"
	"github.com/katalvlaran/zonealgebra/zoneset"
	"github.com/stretchr/testify/assert"
)

func TestIncludes_Reflexive(t *testing.T) {
	s := zoneset.Of(zone.MakeFromPeriod[bound.Float64](0, 1), zone.MakeFromPeriod[bound.Float64](5, 6))
	assert.True(t, zoneset.Includes(s, s))
}

func TestIncludes_EmptyRightTrivial(t *testing.T) {
	s := zoneset.Of(zone.MakeFromPeriod[bound.Float64](0, 1))
	assert.True(t, zoneset.Includes(s, zoneset.New[bound.Float64]()))
}

func TestIncludes_EmptyLeftFailsOnNonEmptyRight(t *testing.T) {
	s := zoneset.Of(zone.MakeFromPeriod[bound.Float64](0, 1))
	assert.False(t, zoneset.Includes(zoneset.New[bound.Float64](), s))
}

func TestIncludes_PiecewiseInclusion(t *testing.T) {
	outer := zone.Make[bound.Float64](
		bound.LowerClosed[bound.Float64](0), bound.UpperClosed[bound.Float64](10),
		bound.LowerClosed[bound.Float64](0), bound.UpperClosed[bound.Float64](10),
		bound.LowerClosed[bound.Float64](0), bound.UpperClosed[bound.Float64](10),
	)
	inner := zone.Make[bound.Float64](
		bound.LowerClosed[bound.Float64](1), bound.UpperClosed[bound.Float64](2),
		bound.LowerClosed[bound.Float64](3), bound.UpperClosed[bound.Float64](4),
		bound.LowerClosed[bound.Float64](2), bound.UpperClosed[bound.Float64](3),
	)
	s1 := zoneset.Of(outer)
	s2 := zoneset.Of(inner)
	assert.True(t, zoneset.Includes(s1, s2))
	assert.False(t, zoneset.Includes(s2, s1))
}

func TestIncludes_NotSemanticUnionInclusion(t *testing.T) {
	// Two halves whose union covers inner, but neither single zone of s1
	// includes it on its own: piecewise inclusion must fail.
	left := zone.Make[bound.Float64](
		bound.LowerClosed[bound.Float64](0), bound.UpperClosed[bound.Float64](1),
		bound.LowerClosed[bound.Float64](0), bound.UpperClosed[bound.Float64](10),
		bound.LowerClosed[bound.Float64](0), bound.UpperClosed[bound.Float64](10),
	)
	right := zone.Make[bound.Float64](
		bound.LowerClosed[bound.Float64](1), bound.UpperClosed[bound.Float64](2),
		bound.LowerClosed[bound.Float64](0), bound.UpperClosed[bound.Float64](10),
		bound.LowerClosed[bound.Float64](0), bound.UpperClosed[bound.Float64](10),
	)
	straddle := zone.Make[bound.Float64](
		bound.LowerClosed[bound.Float64](0), bound.UpperClosed[bound.Float64](2),
		bound.LowerClosed[bound.Float64](0), bound.UpperClosed[bound.Float64](10),
		bound.LowerClosed[bound.Float64](0), bound.UpperClosed[bound.Float64](10),
	)
	s1 := zoneset.Of(left, right)
	s2 := zoneset.Of(straddle)
	assert.False(t, zoneset.Includes(s1, s2))
}
