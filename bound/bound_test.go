package bound_test

import (
	"testing"

	"github.com/katalvlaran/zonealgebra/bound"
	"github.com/stretchr/testify/assert"
)

func TestLowerLess_FiniteOrdering(t *testing.T) {
	three := bound.LowerClosed[bound.Float64](3)
	five := bound.LowerClosed[bound.Float64](5)
	assert.True(t, bound.LowerLess(three, five))
	assert.False(t, bound.LowerLess(five, three))
	assert.False(t, bound.LowerLess(three, three))
}

func TestLowerLess_TieBreakClosedBeforeOpen(t *testing.T) {
	closed := bound.LowerClosed[bound.Float64](3)
	open := bound.LowerOpen[bound.Float64](3)
	assert.True(t, bound.LowerLess(closed, open))
	assert.False(t, bound.LowerLess(open, closed))
}

func TestUpperLess_TieBreakOpenBeforeClosed(t *testing.T) {
	closed := bound.UpperClosed[bound.Float64](3)
	open := bound.UpperOpen[bound.Float64](3)
	assert.True(t, bound.UpperLess(open, closed))
	assert.False(t, bound.UpperLess(closed, open))
}

func TestUnboundedOrdering(t *testing.T) {
	unb := bound.LowerUnbounded[bound.Float64]()
	finite := bound.LowerClosed[bound.Float64](-1000)
	assert.True(t, bound.LowerLess(unb, finite))
	assert.False(t, bound.LowerLess(finite, unb))

	unbU := bound.UpperUnbounded[bound.Float64]()
	finiteU := bound.UpperClosed[bound.Float64](1000)
	assert.True(t, bound.UpperLess(finiteU, unbU))
}

func TestComplement_DualStrictness(t *testing.T) {
	lo := bound.LowerClosed[bound.Float64](4)
	up := lo.Complement()
	v, ok := up.Value()
	assert.True(t, ok)
	assert.Equal(t, bound.Float64(4), v)
	assert.True(t, up.Strict())

	back := up.Complement()
	assert.True(t, bound.LowerEqual(lo, back))
}

func TestComplement_UnboundedBecomesImpossible(t *testing.T) {
	unb := bound.LowerUnbounded[bound.Float64]()
	comp := unb.Complement()
	assert.True(t, comp.IsImpossible())

	back := comp.Complement()
	assert.True(t, back.IsUnbounded())
}

func TestOverlap(t *testing.T) {
	lo := bound.LowerClosed[bound.Float64](2)
	upTouch := bound.UpperClosed[bound.Float64](2)
	upOpenTouch := bound.UpperOpen[bound.Float64](2)
	upFuture := bound.UpperClosed[bound.Float64](10)
	upPast := bound.UpperClosed[bound.Float64](1)

	assert.True(t, bound.Overlap(lo, upTouch))
	assert.False(t, bound.Overlap(lo, upOpenTouch))
	assert.True(t, bound.Overlap(lo, upFuture))
	assert.False(t, bound.Overlap(lo, upPast))

	assert.True(t, bound.Overlap(bound.LowerUnbounded[bound.Float64](), upPast))

	impossibleLower := bound.UpperUnbounded[bound.Float64]().Complement()
	assert.False(t, bound.Overlap(impossibleLower, upFuture))
}

func TestLowerUpperIntersection(t *testing.T) {
	a := bound.LowerClosed[bound.Float64](3)
	b := bound.LowerOpen[bound.Float64](3)
	assert.True(t, bound.LowerEqual(b, bound.LowerIntersection(a, b)))

	ua := bound.UpperClosed[bound.Float64](3)
	ub := bound.UpperOpen[bound.Float64](3)
	assert.True(t, bound.UpperEqual(ub, bound.UpperIntersection(ua, ub)))
}

func TestLowerAdd_StrictnessIsOr(t *testing.T) {
	a := bound.LowerClosed[bound.Float64](1)
	b := bound.LowerOpen[bound.Float64](2)
	sum := bound.LowerAdd(a, b)
	v, ok := sum.Value()
	assert.True(t, ok)
	assert.Equal(t, bound.Float64(3), v)
	assert.True(t, sum.Strict())
}
