package interpolate

///////////////////////////
// Linear Implementation //
///////////////////////////

// linearImpl is a piecewise linear curve through a knot table. Outside the
// table the first and last segments are extended.
type linearImpl struct {
	xs, ys Sequence

	search    searcher
	vals      []float64
	slopes    []float64
	primitive []float64
}

var _ Impl = &linearImpl{}

func newLinearImpl(xs, ys Sequence) (*linearImpl, error) {
	if err := checkKnots(xs, ys); err != nil {
		return nil, err
	}
	return &linearImpl{xs: xs, ys: ys}, nil
}

func (lin *linearImpl) Update() error {
	if err := checkKnots(lin.xs, lin.ys); err != nil {
		return err
	}
	lin.search.init(lin.xs)
	lin.vals = snapshot(lin.ys, lin.vals)

	n := len(lin.vals)
	if len(lin.slopes) != n-1 {
		lin.slopes = make([]float64, n-1)
		lin.primitive = make([]float64, n)
	}

	lin.primitive[0] = 0
	for i := 0; i < n-1; i++ {
		dx := lin.search.val(i+1) - lin.search.val(i)
		lin.slopes[i] = (lin.vals[i+1] - lin.vals[i]) / dx
		lin.primitive[i+1] = lin.primitive[i] +
			dx*(lin.vals[i]+lin.vals[i+1])/2
	}
	return nil
}

func (lin *linearImpl) XMin() float64 { return lin.search.min() }
func (lin *linearImpl) XMax() float64 { return lin.search.max() }

func (lin *linearImpl) Value(x float64) float64 {
	i := lin.search.search(x)
	return lin.vals[i] + (x-lin.search.val(i))*lin.slopes[i]
}

func (lin *linearImpl) Derivative(x float64) (float64, error) {
	return lin.slopes[lin.search.search(x)], nil
}

func (lin *linearImpl) SecondDerivative(x float64) (float64, error) {
	return 0, nil
}

func (lin *linearImpl) Primitive(x float64) (float64, error) {
	i := lin.search.search(x)
	dx := x - lin.search.val(i)
	return lin.primitive[i] + dx*(lin.vals[i]+dx*lin.slopes[i]/2), nil
}

// LinearInterpolation is a piecewise linear interpolation.
type LinearInterpolation struct {
	*Interpolation
}

// NewLinearInterpolation creates a linear interpolation through the points
// (xs[i], ys[i]). xs must be strictly increasing.
//
// Lookups will occur in O(log |xs|), possibly faster depending on the access
// pattern and data layout, and in O(1) if xs is a Uniform.
func NewLinearInterpolation(xs, ys Sequence) (*LinearInterpolation, error) {
	impl, err := newLinearImpl(xs, ys)
	if err != nil {
		return nil, err
	}
	in, err := NewInterpolation(impl)
	if err != nil {
		return nil, err
	}
	return &LinearInterpolation{in}, nil
}

// Linear is the factory for linear interpolations.
type Linear struct{}

var _ Factory = Linear{}

func (Linear) Interpolate(xs, ys Sequence) (*Interpolation, error) {
	lin, err := NewLinearInterpolation(xs, ys)
	if err != nil {
		return nil, err
	}
	return lin.Interpolation, nil
}

func (Linear) Global() bool { return false }
