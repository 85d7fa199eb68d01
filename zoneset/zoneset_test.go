package zoneset_test

import (
	"testing"

	"github.com/katalvlaran/zonealgebra/bound"
	"github.com/katalvlaran/zonealgebra/zone"
	"github.com/katalvlaran/zonealgebra/zoneset"
	"github.com/stretchr/testify/assert"
)

func TestAdd_DropsEmptyZones(t *testing.T) {
	empty := zone.Make[bound.Float64](
		bound.LowerClosed[bound.Float64](0), bound.UpperClosed[bound.Float64](0),
		bound.LowerClosed[bound.Float64](10), bound.UpperClosed[bound.Float64](10),
		bound.LowerClosed[bound.Float64](0), bound.UpperClosed[bound.Float64](1),
	)
	assert.False(t, empty.IsNonEmpty())

	s := zoneset.New[bound.Float64]().Add(empty)
	assert.Empty(t, s)
}

func TestOf_KeepsNonEmptyZones(t *testing.T) {
	z := zone.MakeFromPeriod[bound.Float64](0, 1)
	s := zoneset.Of(z)
	assert.Len(t, s, 1)
}

func TestEqual_IsSyntactic(t *testing.T) {
	a := zone.MakeFromPeriod[bound.Float64](0, 1)
	b := zone.MakeFromPeriod[bound.Float64](5, 6)

	assert.True(t, zoneset.Equal(zoneset.Of(a, b), zoneset.Of(a, b)))
	assert.False(t, zoneset.Equal(zoneset.Of(a, b), zoneset.Of(b, a)))
	assert.False(t, zoneset.Equal(zoneset.Of(a), zoneset.Of(a, b)))

	canonical := zoneset.Filter(zoneset.Of(b, a))
	assert.True(t, zoneset.Equal(canonical, zoneset.Of(a, b)))
}
