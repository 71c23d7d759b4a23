/*package calc provides some basic calculus routines.
*/
package calc

import (
	"fmt"
)

type derivParams struct{ out []float64 }
type internalDerivOption func(*derivParams)
type DerivOption internalDerivOption

// Out supplies a call to Deriv with a slice to write derivatives to.
func Out(out []float64) DerivOption {
	return func(p *derivParams) { p.out = out }
}

func (p *derivParams) loadOptions(opts []DerivOption) {
	for _, opt := range opts {
		opt(p)
	}
}

// Deriv computes the numerical derivative of a sequence of values, ys,
// sampled at evenly spaced points separated by dx. The interior uses central
// differences and the ends use one-sided stencils of the same order.
//
// The only supported orders are 2 and 4. Order 2 needs at least 3 points and
// order 4 needs at least 5.
func Deriv(ys []float64, dx float64, order int, opts ...DerivOption) ([]float64, error) {
	n := len(ys)

	p := new(derivParams)
	p.loadOptions(opts)
	out := p.out
	if out == nil {
		out = make([]float64, n)
	}

	if len(out) != n {
		return nil, fmt.Errorf("Length of out (%d) and ys (%d) are not the "+
			"same.", len(out), n)
	} else if dx == 0 {
		return nil, fmt.Errorf("Spacing of points is zero.")
	}

	switch order {
	case 2:
		if n < 3 {
			return nil, fmt.Errorf("Order 2 derivatives need at least 3 "+
				"points, but got %d.", n)
		}
		h := 2 * dx
		for i := 1; i < n-1; i++ {
			out[i] = (ys[i+1] - ys[i-1]) / h
		}
		out[0] = (-3*ys[0] + 4*ys[1] - ys[2]) / h
		out[n-1] = (3*ys[n-1] - 4*ys[n-2] + ys[n-3]) / h
	case 4:
		if n < 5 {
			return nil, fmt.Errorf("Order 4 derivatives need at least 5 "+
				"points, but got %d.", n)
		}
		h := 12 * dx
		for i := 2; i < n-2; i++ {
			out[i] = (-ys[i+2] + 8*ys[i+1] - 8*ys[i-1] + ys[i-2]) / h
		}
		out[0] = (-25*ys[0] + 48*ys[1] - 36*ys[2] + 16*ys[3] - 3*ys[4]) / h
		out[1] = (-3*ys[0] - 10*ys[1] + 18*ys[2] - 6*ys[3] + ys[4]) / h
		out[n-2] = (3*ys[n-1] + 10*ys[n-2] - 18*ys[n-3] + 6*ys[n-4] -
			ys[n-5]) / h
		out[n-1] = (25*ys[n-1] - 48*ys[n-2] + 36*ys[n-3] - 16*ys[n-4] +
			3*ys[n-5]) / h
	default:
		return nil, fmt.Errorf("Invalid derivative order %d.", order)
	}
	return out, nil
}
