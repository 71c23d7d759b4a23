package interpolate

// Sequence is a finite, randomly indexable sequence of reals. Every
// interpolator in this package reads its knots through a Sequence, so the
// same algorithm works no matter how the caller stores its data.
//
// Interpolators keep a reference to the Sequences they were built from and
// only read them inside Update. If the caller changes the underlying storage,
// calling Update again re-synchronizes the interpolator.
type Sequence interface {
	Len() int
	At(i int) float64
}

var (
	_ Sequence = Float64s(nil)
	_ Sequence = Float32s(nil)
	_ Sequence = Uniform{}
)

// Float64s adapts a []float64 to the Sequence interface.
type Float64s []float64

func (s Float64s) Len() int         { return len(s) }
func (s Float64s) At(i int) float64 { return s[i] }

// Float32s adapts a []float32 to the Sequence interface.
type Float32s []float32

func (s Float32s) Len() int         { return len(s) }
func (s Float32s) At(i int) float64 { return float64(s[i]) }

// Uniform is an implicit, evenly spaced sequence of N points starting at X0
// and separated by Dx. Lookups into interpolators built on a Uniform
// sequence are O(1).
type Uniform struct {
	X0, Dx float64
	N      int
}

func (u Uniform) Len() int         { return u.N }
func (u Uniform) At(i int) float64 { return u.X0 + float64(i)*u.Dx }

// checkKnots checks the only preconditions on a knot table that the
// algorithms themselves rely on. Ordering of xs is not checked.
func checkKnots(xs, ys Sequence) error {
	if xs.Len() != ys.Len() {
		return ErrLengthMismatch
	} else if xs.Len() < 2 {
		return ErrTooFewPoints
	}
	return nil
}

// snapshot copies seq into buf, reallocating only if the length changed.
func snapshot(seq Sequence, buf []float64) []float64 {
	if len(buf) != seq.Len() {
		buf = make([]float64, seq.Len())
	}
	for i := range buf {
		buf[i] = seq.At(i)
	}
	return buf
}
