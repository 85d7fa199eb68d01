package bound_test

import (
	"testing"

	"github.com/katalvlaran/zonealgebra/bound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64_Arithmetic(t *testing.T) {
	a, b := bound.Float64(3), bound.Float64(5)

	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
	assert.Equal(t, bound.Float64(8), a.Add(b))
	assert.Equal(t, bound.Float64(-2), a.Sub(b))
	assert.Equal(t, bound.Float64(0), a.Zero())
}

func TestRational_Arithmetic(t *testing.T) {
	a := bound.NewRational(1, 3)
	b := bound.NewRational(1, 6)

	assert.Equal(t, 1, a.Cmp(b))
	assert.Equal(t, bound.NewRational(1, 2), a.Add(b))
	assert.Equal(t, bound.NewRational(1, 6), a.Sub(b))
	assert.Equal(t, "0", a.Zero().String())
}

func TestRational_ParseRational(t *testing.T) {
	q, err := bound.ParseRational("7/2")
	require.NoError(t, err)
	assert.Equal(t, bound.NewRational(7, 2), q)

	_, err = bound.ParseRational("not-a-number")
	require.ErrorIs(t, err, bound.ErrInvalidRational)
}

func TestRational_FloatRoundTrip(t *testing.T) {
	q := bound.RationalFromFloat64(0.5)
	assert.Equal(t, bound.NewRational(1, 2), q)
	assert.InDelta(t, 0.5, q.Float64(), 1e-12)
}
