package interpolate

import (
	"fmt"
	"math"
	"strings"

	"github.com/gonum/matrix/mat64"
)

// BoundaryKind is a flag representing the rule used to close the spline
// equations at one end of the knot table.
type BoundaryKind int

const (
	// NotAKnot makes the third derivative continuous at the second (or
	// second to last) knot.
	NotAKnot BoundaryKind = iota
	// FirstDerivative fixes the first derivative at the end to Value.
	FirstDerivative
	// SecondDerivative fixes the second derivative at the end to Value. A
	// Value of zero gives the natural spline.
	SecondDerivative
	// Periodic matches the first and second derivatives at the two ends. If
	// either end is Periodic, both are.
	Periodic
	// Lagrange sets the end derivative to that of the parabola through the
	// three end knots.
	Lagrange
)

var boundaryKindNames = []string{
	"NotAKnot", "FirstDerivative", "SecondDerivative", "Periodic", "Lagrange",
}

func (k BoundaryKind) String() string {
	if k < 0 || int(k) >= len(boundaryKindNames) {
		return fmt.Sprintf("BoundaryKind(%d)", int(k))
	}
	return boundaryKindNames[k]
}

// ParseBoundaryKind converts a (case-insensitive) name to a BoundaryKind.
func ParseBoundaryKind(s string) (BoundaryKind, error) {
	for i, name := range boundaryKindNames {
		if strings.EqualFold(s, name) {
			return BoundaryKind(i), nil
		}
	}
	return 0, fmt.Errorf("interpolate: unrecognized boundary condition '%s'", s)
}

// BoundaryCondition describes one end of a spline. Value is only used by
// FirstDerivative and SecondDerivative.
type BoundaryCondition struct {
	Kind  BoundaryKind
	Value float64
}

func checkBoundaries(bcs ...BoundaryCondition) error {
	for _, bc := range bcs {
		if bc.Kind < NotAKnot || bc.Kind > Lagrange {
			return &InvalidBoundaryError{bc.Kind}
		}
	}
	return nil
}

type splineCoeff struct {
	a, b, c float64
}

// cubicImpl is a C1 piecewise cubic in Hermite form. Without the
// monotonicity filter it is the C2 cubic spline.
type cubicImpl struct {
	xs, ys      Sequence
	left, right BoundaryCondition
	monotonic   bool

	search    searcher
	vals      []float64
	coeffs    []splineCoeff
	primitive []float64
	adjusted  []bool
}

var _ Impl = &cubicImpl{}

func newCubicImpl(
	xs, ys Sequence, left, right BoundaryCondition, monotonic bool,
) (*cubicImpl, error) {
	if err := checkKnots(xs, ys); err != nil {
		return nil, err
	}
	if err := checkBoundaries(left, right); err != nil {
		return nil, err
	}
	return &cubicImpl{
		xs: xs, ys: ys, left: left, right: right, monotonic: monotonic,
	}, nil
}

func (sp *cubicImpl) Update() error {
	if err := checkKnots(sp.xs, sp.ys); err != nil {
		return err
	}
	sp.search.init(sp.xs)
	sp.vals = snapshot(sp.ys, sp.vals)

	n := len(sp.vals)
	dx, s := make([]float64, n-1), make([]float64, n-1)
	for i := range dx {
		dx[i] = sp.search.val(i+1) - sp.search.val(i)
		s[i] = (sp.vals[i+1] - sp.vals[i]) / dx[i]
	}

	d := make([]float64, n)
	var err error
	if sp.left.Kind == Periodic || sp.right.Kind == Periodic {
		err = periodicTangents(dx, s, d)
	} else {
		err = sp.tangents(dx, s, d)
	}
	if err != nil {
		return err
	}

	sp.adjusted = make([]bool, n)
	if sp.monotonic {
		hymanFilter(dx, s, d, sp.adjusted)
	}

	sp.calcCoeffs(dx, s, d)
	return nil
}

// tangents solves for the first derivative at every knot.
func (sp *cubicImpl) tangents(dx, s, d []float64) error {
	n := len(d)
	as, bs := make([]float64, n), make([]float64, n)
	cs, rs := make([]float64, n), make([]float64, n)

	for i := 1; i < n-1; i++ {
		as[i] = dx[i]
		bs[i] = 2 * (dx[i] + dx[i-1])
		cs[i] = dx[i-1]
		rs[i] = 3 * (dx[i]*s[i-1] + dx[i-1]*s[i])
	}
	left, right := sp.left, sp.right
	if n == 3 && left.Kind == NotAKnot && right.Kind == NotAKnot {
		// Both conditions collapse to the same equation. The not-a-knot
		// spline through three points is the parabola.
		left.Kind, right.Kind = Lagrange, Lagrange
	}
	bs[0], cs[0], rs[0] = leftRow(left, dx, s)
	as[n-1], bs[n-1], rs[n-1] = rightRow(right, dx, s)

	return TriDiagAt(as, bs, cs, rs, d)
}

// leftRow returns the diagonal, super-diagonal and right hand side of the
// first row of the tangent system.
func leftRow(bc BoundaryCondition, dx, s []float64) (b, c, r float64) {
	n := len(dx) + 1
	switch bc.Kind {
	case NotAKnot:
		if n < 3 {
			return 1, 0, s[0]
		}
		h0, h1 := dx[0], dx[1]
		return h1 * (h1 + h0), (h0 + h1) * (h0 + h1),
			s[0]*h1*(2*h1+3*h0) + s[1]*h0*h0
	case FirstDerivative:
		return 1, 0, bc.Value
	case SecondDerivative:
		return 2, 1, 3*s[0] - bc.Value*dx[0]/2
	case Lagrange:
		if n < 3 {
			return 1, 0, s[0]
		}
		h0, h1 := dx[0], dx[1]
		return 1, 0, ((2*h0+h1)*s[0] - h0*s[1]) / (h0 + h1)
	}
	panic(fmt.Sprintf("Unrecognized BoundaryKind %d.", int(bc.Kind)))
}

// rightRow returns the sub-diagonal, diagonal and right hand side of the last
// row of the tangent system.
func rightRow(bc BoundaryCondition, dx, s []float64) (a, b, r float64) {
	n := len(dx) + 1
	switch bc.Kind {
	case NotAKnot:
		if n < 3 {
			return 0, 1, s[n-2]
		}
		h1, h0 := dx[n-2], dx[n-3]
		return -(h1 + h0) * (h1 + h0), -h0 * (h0 + h1),
			-s[n-3]*h1*h1 - s[n-2]*h0*(3*h1+2*h0)
	case FirstDerivative:
		return 0, 1, bc.Value
	case SecondDerivative:
		return 1, 2, 3*s[n-2] + bc.Value*dx[n-2]/2
	case Lagrange:
		if n < 3 {
			return 0, 1, s[n-2]
		}
		h1, h0 := dx[n-2], dx[n-3]
		return 0, 1, ((2*h1+h0)*s[n-2] - h1*s[n-3]) / (h1 + h0)
	}
	panic(fmt.Sprintf("Unrecognized BoundaryKind %d.", int(bc.Kind)))
}

// periodicTangents solves the cyclic tangent system. The first and last
// knots share a tangent, so there are len(d) - 1 unknowns.
func periodicTangents(dx, s, d []float64) error {
	n := len(d)
	if n < 3 {
		d[0], d[1] = s[0], s[0]
		return nil
	}

	m := n - 1
	a := mat64.NewDense(m, m, nil)
	rhs := mat64.NewDense(m, 1, nil)
	for i := 0; i < m; i++ {
		p, q := (i-1+m)%m, (i+1)%m
		a.Set(i, p, a.At(i, p)+dx[i])
		a.Set(i, i, a.At(i, i)+2*(dx[i]+dx[p]))
		a.Set(i, q, a.At(i, q)+dx[p])
		rhs.Set(i, 0, 3*(dx[i]*s[p]+dx[p]*s[i]))
	}

	var sol mat64.Dense
	if err := sol.Solve(a, rhs); err != nil {
		return fmt.Errorf("%w: %s", ErrSingularSystem, err.Error())
	}
	for i := 0; i < m; i++ {
		d[i] = sol.At(i, 0)
	}
	d[n-1] = d[0]
	return nil
}

// hymanFilter limits the knot tangents so that the curve does not overshoot
// between monotonic knots. adjusted[i] is set for every tangent it changes.
func hymanFilter(dx, s, d []float64, adjusted []bool) {
	n := len(d)
	for i := 0; i < n; i++ {
		var correction float64
		switch {
		case i == 0:
			if d[i]*s[0] > 0 {
				correction = math.Copysign(
					math.Min(math.Abs(d[i]), math.Abs(3*s[0])), d[i],
				)
			}
		case i == n-1:
			if d[i]*s[n-2] > 0 {
				correction = math.Copysign(
					math.Min(math.Abs(d[i]), math.Abs(3*s[n-2])), d[i],
				)
			}
		default:
			pm := (s[i-1]*dx[i] + s[i]*dx[i-1]) / (dx[i-1] + dx[i])
			M := 3 * math.Min(math.Min(math.Abs(s[i-1]), math.Abs(s[i])),
				math.Abs(pm))
			if i > 1 && (s[i-1]-s[i-2])*(s[i]-s[i-1]) > 0 {
				pd := (s[i-1]*(2*dx[i-1]+dx[i-2]) - s[i-2]*dx[i-1]) /
					(dx[i-2] + dx[i-1])
				if pm*pd > 0 && pm*(s[i-1]-s[i-2]) > 0 {
					M = math.Max(M, 1.5*math.Min(math.Abs(pm), math.Abs(pd)))
				}
			}
			if i < n-2 && (s[i]-s[i-1])*(s[i+1]-s[i]) > 0 {
				pu := (s[i]*(2*dx[i]+dx[i+1]) - s[i+1]*dx[i]) /
					(dx[i] + dx[i+1])
				if pm*pu > 0 && -pm*(s[i]-s[i-1]) > 0 {
					M = math.Max(M, 1.5*math.Min(math.Abs(pm), math.Abs(pu)))
				}
			}
			if d[i]*pm > 0 {
				correction = math.Copysign(math.Min(math.Abs(d[i]), M), d[i])
			}
		}

		if correction != d[i] {
			d[i] = correction
			adjusted[i] = true
		}
	}
}

func (sp *cubicImpl) calcCoeffs(dx, s, d []float64) {
	n := len(sp.vals)
	if len(sp.coeffs) != n-1 {
		sp.coeffs = make([]splineCoeff, n-1)
		sp.primitive = make([]float64, n)
	}

	for i := range sp.coeffs {
		sp.coeffs[i].a = d[i]
		sp.coeffs[i].b = (3*s[i] - d[i+1] - 2*d[i]) / dx[i]
		sp.coeffs[i].c = (d[i+1] + d[i] - 2*s[i]) / (dx[i] * dx[i])
	}

	sp.primitive[0] = 0
	for i := 1; i < n; i++ {
		sp.primitive[i] = sp.primitive[i-1] +
			integTerm(&sp.coeffs[i-1], sp.vals[i-1], dx[i-1])
	}
}

// integTerm integrates one segment from its left knot over a width h.
func integTerm(coeff *splineCoeff, y, h float64) float64 {
	a, b, c := coeff.a, coeff.b, coeff.c
	return h * (y + h*(a/2+h*(b/3+h*c/4)))
}

func (sp *cubicImpl) XMin() float64 { return sp.search.min() }
func (sp *cubicImpl) XMax() float64 { return sp.search.max() }

func (sp *cubicImpl) Value(x float64) float64 {
	i := sp.search.search(x)
	h := x - sp.search.val(i)
	a, b, c := sp.coeffs[i].a, sp.coeffs[i].b, sp.coeffs[i].c
	return sp.vals[i] + h*(a+h*(b+h*c))
}

func (sp *cubicImpl) Derivative(x float64) (float64, error) {
	i := sp.search.search(x)
	h := x - sp.search.val(i)
	a, b, c := sp.coeffs[i].a, sp.coeffs[i].b, sp.coeffs[i].c
	return a + (2*b+3*c*h)*h, nil
}

func (sp *cubicImpl) SecondDerivative(x float64) (float64, error) {
	i := sp.search.search(x)
	h := x - sp.search.val(i)
	return 2*sp.coeffs[i].b + 6*sp.coeffs[i].c*h, nil
}

func (sp *cubicImpl) Primitive(x float64) (float64, error) {
	i := sp.search.search(x)
	h := x - sp.search.val(i)
	return sp.primitive[i] + integTerm(&sp.coeffs[i], sp.vals[i], h), nil
}

// CubicInterpolation is a cubic spline interpolation.
type CubicInterpolation struct {
	*Interpolation
	impl *cubicImpl
}

// NewCubicInterpolation creates a cubic spline through the points
// (xs[i], ys[i]) closed by the given boundary conditions. If monotonic is
// true the knot tangents are filtered so that the curve never overshoots
// between monotonic knots, at the cost of second derivative continuity.
// xs must be strictly increasing.
func NewCubicInterpolation(
	xs, ys Sequence, left, right BoundaryCondition, monotonic bool,
) (*CubicInterpolation, error) {
	impl, err := newCubicImpl(xs, ys, left, right, monotonic)
	if err != nil {
		return nil, err
	}
	in, err := NewInterpolation(impl)
	if err != nil {
		return nil, err
	}
	return &CubicInterpolation{in, impl}, nil
}

// MonotonicityAdjustments reports, for every knot, whether the monotonicity
// filter changed its tangent during the last Update.
func (ci *CubicInterpolation) MonotonicityAdjustments() []bool {
	out := make([]bool, len(ci.impl.adjusted))
	copy(out, ci.impl.adjusted)
	return out
}

// TriDiagAt solves the system of equations
//
// | b0 c0 ..       |   | out0 |   | r0 |
// | a1 b1 c1 ..    |   | out1 |   | r1 |
// | ..             | * | ..   | = | .. |
// | ..       an bn |   | outn |   | rn |
//
// For out0 .. outn in place in the given slice. a0 and cn are ignored.
func TriDiagAt(as, bs, cs, rs, out []float64) error {
	if len(as) != len(bs) || len(as) != len(cs) ||
		len(as) != len(out) || len(as) != len(rs) {

		panic("Length of arguments to TriDiagAt are unequal.")
	}

	tmp := make([]float64, len(as))

	beta := bs[0]
	if beta == 0 {
		return ErrSingularSystem
	}
	out[0] = rs[0] / beta

	for i := 1; i < len(out); i++ {
		tmp[i] = cs[i-1] / beta
		beta = bs[i] - as[i]*tmp[i]
		if beta == 0 {
			return ErrSingularSystem
		}
		out[i] = (rs[i] - as[i]*out[i-1]) / beta
	}

	for i := len(out) - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}
	return nil
}

// TriDiag solves the system of equations
//
// | b0 c0 ..       |   | u0 |   | r0 |
// | a1 b1 c1 ..    |   | u1 |   | r1 |
// | ..             | * | .. | = | .. |
// | ..       an bn |   | un |   | rn |
//
// For u0 .. un.
func TriDiag(as, bs, cs, rs []float64) ([]float64, error) {
	us := make([]float64, len(as))
	err := TriDiagAt(as, bs, cs, rs, us)
	return us, err
}

// Cubic is the factory for cubic spline interpolations.
type Cubic struct {
	Left, Right BoundaryCondition
	Monotonic   bool
}

var _ Factory = Cubic{}

func (c Cubic) Interpolate(xs, ys Sequence) (*Interpolation, error) {
	ci, err := NewCubicInterpolation(xs, ys, c.Left, c.Right, c.Monotonic)
	if err != nil {
		return nil, err
	}
	return ci.Interpolation, nil
}

func (Cubic) Global() bool { return true }
