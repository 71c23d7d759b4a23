package interpolate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates that a knot value cannot be used by the
	// requested scheme, e.g. a non-positive ordinate under a log transform.
	ErrInvalidInput = errors.New("interpolate: invalid input")
	// ErrNotSupported indicates that a scheme does not implement an
	// operation. It never depends on the data.
	ErrNotSupported = errors.New("interpolate: operation not supported")
	// ErrOutOfRange indicates evaluation outside the knot range on an
	// interpolation that does not extrapolate.
	ErrOutOfRange = errors.New("interpolate: point out of range")
	// ErrTooFewPoints indicates a knot table with fewer than two points.
	ErrTooFewPoints = errors.New("interpolate: at least two points are required")
	// ErrLengthMismatch indicates that xs and ys have different lengths.
	ErrLengthMismatch = errors.New("interpolate: xs and ys have different lengths")
	// ErrSingularSystem indicates that the spline equations could not be
	// solved for the given knots and boundary conditions.
	ErrSingularSystem = errors.New("interpolate: spline system cannot be solved")
)

// InvalidInputError reports the index and value of the first knot that
// failed validation.
type InvalidInputError struct {
	Index int
	Value float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("interpolate: invalid value (%g) at index %d",
		e.Value, e.Index)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NotSupportedError reports which scheme rejected which operation.
type NotSupportedError struct {
	Scheme, Op string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("interpolate: %s %s not implemented", e.Scheme, e.Op)
}

func (e *NotSupportedError) Is(target error) bool {
	return target == ErrNotSupported
}

// OutOfRangeError reports a point outside [Min, Max].
type OutOfRangeError struct {
	X, Min, Max float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("interpolate: point %g out of range [%g, %g]",
		e.X, e.Min, e.Max)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// InvalidBoundaryError reports a BoundaryKind outside the known set.
type InvalidBoundaryError struct {
	Kind BoundaryKind
}

func (e *InvalidBoundaryError) Error() string {
	return fmt.Sprintf("interpolate: unrecognized boundary condition %s",
		e.Kind)
}

func (e *InvalidBoundaryError) Is(target error) bool {
	return target == ErrInvalidInput
}
