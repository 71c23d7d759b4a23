package process

import (
	"errors"
	"math"
	"testing"

	"github.com/phil-mansfield/logterp/math/rand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrnsteinUhlenbeck(t *testing.T) {
	tests := []struct {
		speed, vol float64
		err        error
	}{
		{1, 0.2, nil},
		{0, 0, nil},
		{-0.1, 0.2, ErrNegativeSpeed},
		{0.5, -1, ErrNegativeVolatility},
	}
	for i, test := range tests {
		ou, err := NewOrnsteinUhlenbeck(test.speed, test.vol, 1, 2)
		if test.err != nil {
			assert.True(t, errors.Is(err, test.err), "%d) got %v", i, err)
			assert.Nil(t, ou)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, test.speed, ou.Speed())
		assert.Equal(t, test.vol, ou.Volatility())
		assert.Equal(t, 1.0, ou.X0())
		assert.Equal(t, 2.0, ou.Level())
	}
}

func TestOrnsteinUhlenbeckCoefficients(t *testing.T) {
	ou, err := NewOrnsteinUhlenbeck(0.5, 0.3, 1, 2)
	require.NoError(t, err)

	assert.InDelta(t, 0.5*(2-4), ou.Drift(0, 4), 1e-15)
	assert.InDelta(t, 0.5, ou.Drift(10, 1), 1e-15)
	assert.Equal(t, 0.3, ou.Diffusion(3, 100))
}

func TestOrnsteinUhlenbeckExpectation(t *testing.T) {
	ou, err := NewOrnsteinUhlenbeck(0.5, 0.3, 1, 2)
	require.NoError(t, err)

	assert.InDelta(t, 1, ou.Expectation(0, 1, 0), 1e-15)
	assert.InDelta(t, 2+(1-2)*math.Exp(-1), ou.Expectation(0, 1, 2), 1e-15)
	assert.InDelta(t, 2, ou.Expectation(0, 1, 200), 1e-12)

	// Chaining two steps is the same as one long step.
	mid := ou.Expectation(0, 1, 0.7)
	assert.InDelta(t, ou.Expectation(0, 1, 1.9),
		ou.Expectation(0.7, mid, 1.2), 1e-14)

	curve := ou.ExpectationCurve()
	assert.InDelta(t, ou.Expectation(0, 1, 3), curve(3), 1e-15)
}

func TestOrnsteinUhlenbeckVariance(t *testing.T) {
	ou, err := NewOrnsteinUhlenbeck(0.5, 0.3, 1, 2)
	require.NoError(t, err)

	dt := 2.0
	want := 0.09 / (2 * 0.5) * (1 - math.Exp(-2*0.5*dt))
	assert.InDelta(t, want, ou.Variance(0, 1, dt), 1e-15)
	assert.InDelta(t, math.Sqrt(want), ou.StdDeviation(0, 1, dt), 1e-15)
	assert.InDelta(t, math.Sqrt(want), ou.StdDeviationCurve()(dt), 1e-15)
	assert.Zero(t, ou.Variance(0, 1, 0))

	// Stationary variance.
	assert.InDelta(t, 0.09/(2*0.5), ou.Variance(0, 1, 1e3), 1e-15)

	// Without mean reversion the process is Brownian motion.
	bm, err := NewOrnsteinUhlenbeck(0, 0.3, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.09*dt, bm.Variance(0, 1, dt), 1e-15)
	assert.Equal(t, 1.0, bm.Expectation(0, 1, dt))

	// The small speed limit is continuous.
	slow, err := NewOrnsteinUhlenbeck(1e-6, 0.3, 1, 2)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.09*dt, slow.Variance(0, 1, dt), 1e-5)
}

func TestOrnsteinUhlenbeckEvolve(t *testing.T) {
	ou, err := NewOrnsteinUhlenbeck(0.5, 0.3, 1, 2)
	require.NoError(t, err)

	e, s := ou.Expectation(0, 1, 0.25), ou.StdDeviation(0, 1, 0.25)
	assert.InDelta(t, e, ou.Evolve(0, 1, 0.25, 0), 1e-15)
	assert.InDelta(t, e+1.5*s, ou.Evolve(0, 1, 0.25, 1.5), 1e-15)
	assert.InDelta(t, e-2*s, ou.Evolve(0, 1, 0.25, -2), 1e-15)
}

func TestPathMoments(t *testing.T) {
	ou, err := NewOrnsteinUhlenbeck(1.5, 0.4, 3, 1)
	require.NoError(t, err)

	const nPaths, steps, dt = 4000, 21, 0.1
	gen := rand.New(rand.Xorshift, 1337)
	paths := make([][]float64, nPaths)
	for i := range paths {
		paths[i] = make([]float64, steps)
		Path(ou, gen, dt, paths[i])
		assert.Equal(t, 3.0, paths[i][0])
	}

	mean, stdDev := Moments(paths)
	pcts := Percentiles(paths, []float64{0.16, 0.5, 0.84})
	require.Len(t, pcts, steps)
	assert.Equal(t, []float64{3, 3, 3}, pcts[0])
	require.Len(t, mean, steps)
	require.Len(t, stdDev, steps)
	assert.Zero(t, stdDev[0])

	for i := 1; i < steps; i++ {
		tt := float64(i) * dt
		s := ou.StdDeviation(0, 3, tt)
		// Five standard errors.
		assert.InDelta(t, ou.Expectation(0, 3, tt), mean[i],
			5*s/math.Sqrt(nPaths), "t = %g", tt)
		assert.InDelta(t, s, stdDev[i], 5*s/math.Sqrt(2*nPaths), "t = %g", tt)

		// The transition density is normal, so the median is the mean and
		// the 16th and 84th percentiles are one sigma away.
		e := ou.Expectation(0, 3, tt)
		assert.InDelta(t, e, pcts[i][1], 0.1*s, "t = %g", tt)
		assert.InDelta(t, e-s, pcts[i][0], 0.15*s, "t = %g", tt)
		assert.InDelta(t, e+s, pcts[i][2], 0.15*s, "t = %g", tt)
	}
}

func TestMomentsEdgeCases(t *testing.T) {
	mean, stdDev := Moments(nil)
	assert.Nil(t, mean)
	assert.Nil(t, stdDev)

	mean, stdDev = Moments([][]float64{{1, 2, 3}})
	assert.Equal(t, []float64{1, 2, 3}, mean)
	assert.Equal(t, []float64{0, 0, 0}, stdDev)

	assert.Nil(t, Percentiles(nil, []float64{0.5}))
	pcts := Percentiles([][]float64{{1, 5}, {3, 4}, {2, 6}}, []float64{0, 0.5, 1})
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, pcts)

	Path(&OrnsteinUhlenbeck{}, rand.New(rand.Golang, 0), 1, nil)
}
