package interpolate

import (
	"math"
)

// logImpl interpolates ln(y) with a wrapped scheme and exponentiates the
// result. The wrapped scheme is rebuilt from scratch on every Update.
type logImpl struct {
	scheme string
	xs, ys Sequence
	logY   []float64

	wrap  func(xs, logY Sequence) (Impl, error)
	inner Impl
}

var _ Impl = &logImpl{}

func newLogLinearImpl(xs, ys Sequence) *logImpl {
	return &logImpl{
		scheme: "LogLinear", xs: xs, ys: ys,
		wrap: func(xs, logY Sequence) (Impl, error) {
			return newLinearImpl(xs, logY)
		},
	}
}

func newLogCubicImpl(
	xs, ys Sequence, left, right BoundaryCondition, monotonic bool,
) *logImpl {
	return &logImpl{
		scheme: "LogCubic", xs: xs, ys: ys,
		wrap: func(xs, logY Sequence) (Impl, error) {
			return newCubicImpl(xs, logY, left, right, monotonic)
		},
	}
}

// Update requires every ordinate to be strictly positive and finite. On
// failure the
// returned error is an *InvalidInputError for the first offending index
// and the implementation is left partially updated.
func (l *logImpl) Update() error {
	if err := checkKnots(l.xs, l.ys); err != nil {
		return err
	}

	n := l.xs.Len()
	if len(l.logY) != n {
		l.logY = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		y := l.ys.At(i)
		if !(y > 0) || math.IsInf(y, 1) {
			return &InvalidInputError{Index: i, Value: y}
		}
		l.logY[i] = math.Log(y)
	}

	inner, err := l.wrap(l.xs, Float64s(l.logY))
	if err != nil {
		return err
	}
	if err = inner.Update(); err != nil {
		return err
	}
	l.inner = inner
	return nil
}

func (l *logImpl) XMin() float64 { return l.inner.XMin() }
func (l *logImpl) XMax() float64 { return l.inner.XMax() }

// Value extrapolates however the wrapped scheme does.
func (l *logImpl) Value(x float64) float64 {
	return math.Exp(l.inner.Value(x))
}

func (l *logImpl) Derivative(float64) (float64, error) {
	return 0, &NotSupportedError{Scheme: l.scheme, Op: "derivative"}
}

func (l *logImpl) SecondDerivative(float64) (float64, error) {
	return 0, &NotSupportedError{Scheme: l.scheme, Op: "secondDerivative"}
}

func (l *logImpl) Primitive(float64) (float64, error) {
	return 0, &NotSupportedError{Scheme: l.scheme, Op: "primitive"}
}

// LogLinearInterpolation is a linear interpolation of ln(y). It is strictly
// positive everywhere, including where it extrapolates.
type LogLinearInterpolation struct {
	*Interpolation
}

// NewLogLinearInterpolation creates a log-linear interpolation through the
// points (xs[i], ys[i]). xs must be strictly increasing and every ys[i] must
// be strictly positive and finite; the latter is checked on every Update.
//
// Derivative, SecondDerivative and Primitive always return ErrNotSupported.
func NewLogLinearInterpolation(xs, ys Sequence) (*LogLinearInterpolation, error) {
	in, err := NewInterpolation(newLogLinearImpl(xs, ys))
	if err != nil {
		return nil, err
	}
	return &LogLinearInterpolation{in}, nil
}

// LogCubicInterpolation is a cubic spline interpolation of ln(y).
type LogCubicInterpolation struct {
	*Interpolation
}

// NewLogCubicInterpolation creates a log-cubic interpolation through the
// points (xs[i], ys[i]). The boundary conditions and monotonicity flag apply
// to the spline of ln(y), so derivative values in left and right are
// derivatives of ln(y). xs must be strictly increasing and every ys[i] must be
// strictly positive.
//
// Derivative, SecondDerivative and Primitive always return ErrNotSupported.
func NewLogCubicInterpolation(
	xs, ys Sequence, left, right BoundaryCondition, monotonic bool,
) (*LogCubicInterpolation, error) {
	if err := checkBoundaries(left, right); err != nil {
		return nil, err
	}
	in, err := NewInterpolation(
		newLogCubicImpl(xs, ys, left, right, monotonic),
	)
	if err != nil {
		return nil, err
	}
	return &LogCubicInterpolation{in}, nil
}

// Numeric forms of Global() for the two log factories.
const (
	LogLinearGlobal = 0
	LogCubicGlobal  = 1
)

// LogLinear is the factory for log-linear interpolations.
type LogLinear struct{}

var _ Factory = LogLinear{}

func (LogLinear) Interpolate(xs, ys Sequence) (*Interpolation, error) {
	ll, err := NewLogLinearInterpolation(xs, ys)
	if err != nil {
		return nil, err
	}
	return ll.Interpolation, nil
}

func (LogLinear) Global() bool { return false }

// LogCubic is the factory for log-cubic interpolations. Use NewLogCubic to
// get the documented defaults; the zero value has a not-a-knot right end and
// no monotonicity filter.
type LogCubic struct {
	Left, Right BoundaryCondition
	Monotonic   bool
}

var _ Factory = LogCubic{}

// CubicOption overrides one of the LogCubic defaults.
type CubicOption func(*LogCubic)

// Left sets the boundary condition at the first knot.
func Left(kind BoundaryKind, value float64) CubicOption {
	return func(lc *LogCubic) { lc.Left = BoundaryCondition{kind, value} }
}

// Right sets the boundary condition at the last knot.
func Right(kind BoundaryKind, value float64) CubicOption {
	return func(lc *LogCubic) { lc.Right = BoundaryCondition{kind, value} }
}

// Monotonic turns the monotonicity filter on or off.
func Monotonic(on bool) CubicOption {
	return func(lc *LogCubic) { lc.Monotonic = on }
}

// NewLogCubic returns a LogCubic factory. By default the left end is
// not-a-knot, the right end has a zero second derivative, and the
// monotonicity filter is on.
func NewLogCubic(opts ...CubicOption) LogCubic {
	lc := LogCubic{
		Left:      BoundaryCondition{NotAKnot, 0},
		Right:     BoundaryCondition{SecondDerivative, 0},
		Monotonic: true,
	}
	for _, opt := range opts {
		opt(&lc)
	}
	return lc
}

func (lc LogCubic) Interpolate(xs, ys Sequence) (*Interpolation, error) {
	lci, err := NewLogCubicInterpolation(
		xs, ys, lc.Left, lc.Right, lc.Monotonic,
	)
	if err != nil {
		return nil, err
	}
	return lci.Interpolation, nil
}

func (LogCubic) Global() bool { return true }
