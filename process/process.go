/*package process implements one dimensional stochastic processes of the form

	dx = mu(t, x) dt + sigma(t, x) dW

together with a simple path simulator. Processes with closed form transition
densities, like OrnsteinUhlenbeck, report exact expectations and variances
over arbitrary time steps.
*/
package process

import (
	"errors"
	"math"

	"github.com/phil-mansfield/logterp/math/rand"
	"github.com/phil-mansfield/logterp/math/sort"
)

var (
	// ErrNegativeSpeed is returned for a mean reversion speed below zero.
	ErrNegativeSpeed = errors.New("process: negative mean reversion speed")
	// ErrNegativeVolatility is returned for a volatility below zero.
	ErrNegativeVolatility = errors.New("process: negative volatility")
)

// Process1D is a one dimensional stochastic process.
type Process1D interface {
	// X0 is the initial value of the process.
	X0() float64
	Drift(t, x float64) float64
	Diffusion(t, x float64) float64
	// Expectation returns E[x(t0 + dt) | x(t0) = x0].
	Expectation(t0, x0, dt float64) float64
	// Variance returns Var[x(t0 + dt) | x(t0) = x0].
	Variance(t0, x0, dt float64) float64
	StdDeviation(t0, x0, dt float64) float64
	// Evolve returns the value after a step dt given a standard normal
	// deviate dw.
	Evolve(t0, x0, dt, dw float64) float64
}

// Path simulates one path of p starting at p.X0() with steps of size dt. out
// must have room for the initial value and every step: out[0] is X0 and
// out[i] is the value at time i*dt.
func Path(p Process1D, gen *rand.Generator, dt float64, out []float64) {
	if len(out) == 0 {
		return
	}
	out[0] = p.X0()
	for i := 1; i < len(out); i++ {
		t := float64(i-1) * dt
		out[i] = p.Evolve(t, out[i-1], dt, gen.Normal(0, 1))
	}
}

// Moments returns the sample mean and standard deviation of paths at each
// time step. All paths must have the same length.
func Moments(paths [][]float64) (mean, stdDev []float64) {
	if len(paths) == 0 {
		return nil, nil
	}
	steps := len(paths[0])
	mean, stdDev = make([]float64, steps), make([]float64, steps)
	n := float64(len(paths))

	for i := 0; i < steps; i++ {
		sum := 0.0
		for _, path := range paths {
			sum += path[i]
		}
		mean[i] = sum / n

		if len(paths) < 2 {
			continue
		}
		sqr := 0.0
		for _, path := range paths {
			d := path[i] - mean[i]
			sqr += d * d
		}
		stdDev[i] = math.Sqrt(sqr / (n - 1))
	}
	return mean, stdDev
}

// Percentiles returns, for every time step, the nearest-rank percentiles ps
// of the paths' values. out[i][j] is percentile ps[j] at step i. Every p must
// be in [0, 1].
func Percentiles(paths [][]float64, ps []float64) [][]float64 {
	if len(paths) == 0 {
		return nil
	}
	steps := len(paths[0])
	out := make([][]float64, steps)
	vals, buf := make([]float64, len(paths)), make([]float64, len(paths))

	for i := range out {
		for k, path := range paths {
			vals[k] = path[i]
		}
		out[i] = make([]float64, len(ps))
		for j, p := range ps {
			out[i][j] = sort.Percentile(vals, p, buf)
		}
	}
	return out
}
