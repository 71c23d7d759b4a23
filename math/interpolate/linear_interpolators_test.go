package interpolate

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearInterpolation(t *testing.T) {
	line := func(x float64) float64 { return 2*x + 1 }
	xs := Float64s{0, 1, 3}
	lin, err := NewLinearInterpolation(xs, table(xs, line))
	require.NoError(t, err)

	tests := []struct {
		x, val, prim float64
	}{
		{0, 1, 0},
		{0.5, 2, 0.75},
		{1, 3, 2},
		{2, 5, 6},
		{3, 7, 12},
	}
	for _, test := range tests {
		v, err := lin.Value(test.x)
		require.NoError(t, err)
		assert.InDelta(t, test.val, v, 1e-12, "x = %g", test.x)

		d, err := lin.Derivative(test.x)
		require.NoError(t, err)
		assert.InDelta(t, 2, d, 1e-12, "x = %g", test.x)

		d2, err := lin.SecondDerivative(test.x)
		require.NoError(t, err)
		assert.Zero(t, d2)

		p, err := lin.Primitive(test.x)
		require.NoError(t, err)
		assert.InDelta(t, test.prim, p, 1e-12, "x = %g", test.x)
	}
}

func TestLinearExtrapolation(t *testing.T) {
	xs := Float64s{0, 1, 3}
	ys := Float64s{1, 3, 7}
	lin, err := NewLinearInterpolation(xs, ys)
	require.NoError(t, err)

	_, err = lin.Value(4)
	var oor *OutOfRangeError
	require.True(t, errors.As(err, &oor))
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.Equal(t, OutOfRangeError{X: 4, Min: 0, Max: 3}, *oor)
	assert.Panics(t, func() { lin.Eval(-1) })

	lin.EnableExtrapolation()
	assert.True(t, lin.Extrapolates())
	assert.InDelta(t, 9, lin.Eval(4), 1e-12)
	assert.InDelta(t, -1, lin.Eval(-1), 1e-12)

	// The copy keeps its own flag.
	ref := lin.Ref().(*Interpolation)
	lin.DisableExtrapolation()
	assert.InDelta(t, 9, ref.Eval(4), 1e-12)
	_, err = lin.Value(4)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestLinearUniform(t *testing.T) {
	rand.Seed(3)
	xs := Uniform{X0: -2, Dx: 0.25, N: 17}
	ys := make(Float64s, xs.N)
	for i := range ys {
		ys[i] = rand.Float64()
	}
	unif, err := NewLinearInterpolation(xs, ys)
	require.NoError(t, err)

	explicit := make(Float64s, xs.N)
	for i := range explicit {
		explicit[i] = xs.At(i)
	}
	ref, err := NewLinearInterpolation(explicit, ys)
	require.NoError(t, err)

	assert.Equal(t, -2.0, unif.XMin())
	assert.Equal(t, 2.0, unif.XMax())
	for i := 0; i < 200; i++ {
		x := -2 + 4*rand.Float64()
		assert.InDelta(t, ref.Eval(x), unif.Eval(x), 1e-12, "x = %g", x)
	}
}

func TestLinearEvalAll(t *testing.T) {
	lin, err := Linear{}.Interpolate(Float64s{0, 1}, Float64s{0, 10})
	require.NoError(t, err)

	xs := []float64{0, 0.25, 0.5, 1}
	out := make([]float64, len(xs))
	res := lin.EvalAll(xs, out)
	assert.Equal(t, []float64{0, 2.5, 5, 10}, out)
	assert.Equal(t, out, res)
	assert.Equal(t, out, lin.EvalAll(xs))
}

func TestLinearBadInput(t *testing.T) {
	tests := []struct {
		xs, ys Sequence
		err    error
	}{
		{Float64s{}, Float64s{}, ErrTooFewPoints},
		{Float64s{1}, Float64s{2}, ErrTooFewPoints},
		{Float64s{1, 2}, Float64s{2}, ErrLengthMismatch},
		{Uniform{0, 1, 3}, Float64s{1, 2}, ErrLengthMismatch},
	}
	for i, test := range tests {
		_, err := NewLinearInterpolation(test.xs, test.ys)
		assert.True(t, errors.Is(err, test.err), "%d) got %v", i, err)
	}

	xs, ys := Float64s{0, 1, 2}, Float64s{0, 1, 2}
	lin, err := NewLinearInterpolation(xs, ys)
	require.NoError(t, err)
	ys = ys[:2]
	lin.Interpolation.impl.(*linearImpl).ys = ys
	assert.True(t, errors.Is(lin.Update(), ErrLengthMismatch))
}

func TestFactoryLocality(t *testing.T) {
	tests := []struct {
		f      Factory
		global bool
	}{
		{Linear{}, false},
		{LogLinear{}, false},
		{Cubic{}, true},
		{NewLogCubic(), true},
		{LogCubic{}, true},
	}
	for _, test := range tests {
		assert.Equal(t, test.global, test.f.Global(), "%T", test.f)
	}
}
