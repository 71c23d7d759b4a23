/*package interpolate implements 1D interpolation schemes behind a single
evaluation interface: piecewise linear, cubic splines with configurable
boundary conditions and an optional monotonicity filter, and log-transformed
versions of both which interpolate ln(y) and exponentiate the result.

Here are some usage examples.

	xs := interpolate.Float64s{1, 2, 3, 4}
	ys := interpolate.Float64s{1, 2, 4, 8}

	// Build a handle directly.
	ll, err := interpolate.NewLogLinearInterpolation(xs, ys)
	v, err := ll.Value(2.5) // sqrt(8)

	// Or go through a factory, which is what curve builders are written
	// against.
	var f interpolate.Factory = interpolate.NewLogCubic()
	in, err := f.Interpolate(xs, ys)

The knots must be sorted in strictly increasing order and there must be at
least two of them. Ordering is not checked: unsorted knots give meaningless
results rather than an error.

None of the types here are safe to Update while another goroutine is
evaluating the same interpolation. Concurrent evaluation without Update is
safe.
*/
package interpolate

// Interpolator is the panicking convenience form of a 1D interpolator.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) float64
	// EvalAll evaluates a sequence of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) []float64
	// Ref creates a shallow copy of the interpolator which shares its
	// underlying implementation.
	Ref() Interpolator
}

var _ Interpolator = &Interpolation{}

// Impl is the contract every interpolation scheme implements. Value must
// extrapolate rather than fail outside [XMin(), XMax()]; range checking is
// done by Interpolation.
type Impl interface {
	// Update recomputes all internal state from the knot sequences.
	Update() error
	XMin() float64
	XMax() float64
	Value(x float64) float64
	Derivative(x float64) (float64, error)
	SecondDerivative(x float64) (float64, error)
	Primitive(x float64) (float64, error)
}

// Factory builds interpolations of one scheme from knot tables. Curve
// builders are parameterized over a Factory.
type Factory interface {
	Interpolate(xs, ys Sequence) (*Interpolation, error)
	// Global reports whether changing a single knot can change the curve
	// arbitrarily far away from it. When false, only the two segments next
	// to the knot are affected.
	Global() bool
}

// Interpolation is the handle callers evaluate. Copies of an Interpolation
// share the same Impl.
type Interpolation struct {
	impl        Impl
	extrapolate bool
}

// NewInterpolation wraps impl and runs its first Update, so the returned
// handle is ready for evaluation.
func NewInterpolation(impl Impl) (*Interpolation, error) {
	if err := impl.Update(); err != nil {
		return nil, err
	}
	return &Interpolation{impl: impl}, nil
}

// Update re-synchronizes the interpolation with its knot sequences. If it
// returns an error the interpolation must not be evaluated until a later
// Update succeeds.
func (in *Interpolation) Update() error { return in.impl.Update() }

func (in *Interpolation) XMin() float64 { return in.impl.XMin() }
func (in *Interpolation) XMax() float64 { return in.impl.XMax() }

// IsInRange returns true if x lies within the knot range.
func (in *Interpolation) IsInRange(x float64) bool {
	return x >= in.impl.XMin() && x <= in.impl.XMax()
}

// EnableExtrapolation lets every evaluation method accept points outside the
// knot range. How the curve is extended depends on the scheme.
func (in *Interpolation) EnableExtrapolation() { in.extrapolate = true }

// DisableExtrapolation restores range checking.
func (in *Interpolation) DisableExtrapolation() { in.extrapolate = false }

// Extrapolates returns true if extrapolation is enabled.
func (in *Interpolation) Extrapolates() bool { return in.extrapolate }

func (in *Interpolation) checkRange(x float64) error {
	if in.extrapolate || in.IsInRange(x) {
		return nil
	}
	return &OutOfRangeError{X: x, Min: in.impl.XMin(), Max: in.impl.XMax()}
}

// Value returns the interpolated value at x.
func (in *Interpolation) Value(x float64) (float64, error) {
	if err := in.checkRange(x); err != nil {
		return 0, err
	}
	return in.impl.Value(x), nil
}

// Derivative returns the first derivative at x.
func (in *Interpolation) Derivative(x float64) (float64, error) {
	if err := in.checkRange(x); err != nil {
		return 0, err
	}
	return in.impl.Derivative(x)
}

// SecondDerivative returns the second derivative at x.
func (in *Interpolation) SecondDerivative(x float64) (float64, error) {
	if err := in.checkRange(x); err != nil {
		return 0, err
	}
	return in.impl.SecondDerivative(x)
}

// Primitive returns the integral of the curve from XMin() to x.
func (in *Interpolation) Primitive(x float64) (float64, error) {
	if err := in.checkRange(x); err != nil {
		return 0, err
	}
	return in.impl.Primitive(x)
}

// Eval returns the interpolated value at x.
//
// Eval panics if x is out of range and extrapolation is disabled.
func (in *Interpolation) Eval(x float64) float64 {
	v, err := in.Value(x)
	if err != nil {
		panic(err.Error())
	}
	return v
}

// EvalAll evaluates the interpolation at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (in *Interpolation) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = in.Eval(x)
	}
	return out[0]
}

// Ref returns a copy of the handle. The copy shares the implementation but
// has its own extrapolation flag.
func (in *Interpolation) Ref() Interpolator {
	ref := *in
	return &ref
}
