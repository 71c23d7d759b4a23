package process

import (
	"math"
)

// sqrtEpsilon is the speed below which the process is treated as Brownian
// motion when computing variances.
var sqrtEpsilon = math.Sqrt(math.Nextafter(1, 2) - 1)

// OrnsteinUhlenbeck is the mean reverting process
//
//	dx = speed (level - x) dt + volatility dW
type OrnsteinUhlenbeck struct {
	x0, speed, level, volatility float64
}

var _ Process1D = &OrnsteinUhlenbeck{}

// NewOrnsteinUhlenbeck returns an Ornstein-Uhlenbeck process starting at x0
// and reverting towards level.
func NewOrnsteinUhlenbeck(
	speed, volatility, x0, level float64,
) (*OrnsteinUhlenbeck, error) {
	if speed < 0 {
		return nil, ErrNegativeSpeed
	} else if volatility < 0 {
		return nil, ErrNegativeVolatility
	}
	return &OrnsteinUhlenbeck{
		x0: x0, speed: speed, level: level, volatility: volatility,
	}, nil
}

func (ou *OrnsteinUhlenbeck) X0() float64         { return ou.x0 }
func (ou *OrnsteinUhlenbeck) Speed() float64      { return ou.speed }
func (ou *OrnsteinUhlenbeck) Level() float64      { return ou.level }
func (ou *OrnsteinUhlenbeck) Volatility() float64 { return ou.volatility }

func (ou *OrnsteinUhlenbeck) Drift(t, x float64) float64 {
	return ou.speed * (ou.level - x)
}

func (ou *OrnsteinUhlenbeck) Diffusion(t, x float64) float64 {
	return ou.volatility
}

func (ou *OrnsteinUhlenbeck) Expectation(t0, x0, dt float64) float64 {
	return ou.level + (x0-ou.level)*math.Exp(-ou.speed*dt)
}

func (ou *OrnsteinUhlenbeck) Variance(t0, x0, dt float64) float64 {
	v2 := ou.volatility * ou.volatility
	if ou.speed < sqrtEpsilon {
		return v2 * dt
	}
	return 0.5 * v2 / ou.speed * (1 - math.Exp(-2*ou.speed*dt))
}

func (ou *OrnsteinUhlenbeck) StdDeviation(t0, x0, dt float64) float64 {
	return math.Sqrt(ou.Variance(t0, x0, dt))
}

// Evolve samples the exact transition density, so dt need not be small.
func (ou *OrnsteinUhlenbeck) Evolve(t0, x0, dt, dw float64) float64 {
	return ou.Expectation(t0, x0, dt) + ou.StdDeviation(t0, x0, dt)*dw
}

// ExpectationCurve returns the expected value of the process as a function
// of time, starting from X0 at t = 0.
func (ou *OrnsteinUhlenbeck) ExpectationCurve() func(t float64) float64 {
	return func(t float64) float64 { return ou.Expectation(0, ou.x0, t) }
}

// StdDeviationCurve returns the standard deviation of the process as a
// function of time, starting from X0 at t = 0.
func (ou *OrnsteinUhlenbeck) StdDeviationCurve() func(t float64) float64 {
	return func(t float64) float64 { return ou.StdDeviation(0, ou.x0, t) }
}
