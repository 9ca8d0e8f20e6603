package acq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockFloatRangeInvariant(t *testing.T) {
	cases := []ComplexInt{
		{Real: 0, Imag: 0},
		{Real: 1, Imag: -1},
		{Real: 1 << 20, Imag: -(1 << 20)},
		{Real: 1<<30 - 1, Imag: -(1 << 29)},
	}
	for _, c := range cases {
		b := NewBlockFloat(c)
		assert.GreaterOrEqual(t, b.Real, int32(-512))
		assert.LessOrEqual(t, b.Real, int32(511))
		assert.GreaterOrEqual(t, b.Imag, int32(-512))
		assert.LessOrEqual(t, b.Imag, int32(511))
	}
}

func TestBlockFloatAddRenormalizes(t *testing.T) {
	a := NewBlockFloat(ComplexInt{Real: 500, Imag: 500})
	b := NewBlockFloat(ComplexInt{Real: 500, Imag: 500})
	sum := a.Add(b)
	require.LessOrEqual(t, sum.Real, int32(511))
	require.GreaterOrEqual(t, sum.Real, int32(-512))
	assert.Equal(t, 1, sum.Exp)
}

func TestBlockFloatAddAlignsExponent(t *testing.T) {
	small := BlockFloat{Real: 4, Imag: 4, Exp: 0}
	large := BlockFloat{Real: 4, Imag: 4, Exp: 3}
	sum := small.Add(large)
	assert.Equal(t, large.Exp, sum.Exp)
	assert.Equal(t, int32(4), sum.Real) // small's 4 shifted right 3 == 0, plus large's 4
}

func TestBlockFloatSubIsInverseOfAdd(t *testing.T) {
	a := NewBlockFloat(ComplexInt{Real: 100, Imag: -50})
	b := NewBlockFloat(ComplexInt{Real: 30, Imag: 10})
	back := a.Add(b).Sub(b)
	assert.InDelta(t, float64(a.Real), float64(back.Real), 1)
	assert.InDelta(t, float64(a.Imag), float64(back.Imag), 1)
}
