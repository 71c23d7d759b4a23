package cmd

import (
	"fmt"
	"strings"

	"github.com/phil-mansfield/logterp/logging"
	"github.com/phil-mansfield/logterp/math/interpolate"
	"github.com/phil-mansfield/logterp/parse"
	"github.com/phil-mansfield/logterp/version"
)

// CurveConfig is the [curve] section shared by every mode that builds an
// interpolated curve from a table of knots.
type CurveConfig struct {
	version string

	scheme                        string
	xs, ys                        []float64
	leftCondition, rightCondition string
	leftValue, rightValue         float64
	monotonic, extrapolate        bool

	factory interpolate.Factory
}

var schemeNames = []string{"Linear", "Cubic", "LogLinear", "LogCubic"}

// curveVars registers the [curve] variables on vars.
func (config *CurveConfig) curveVars(vars *parse.ConfigVars) {
	vars.String(&config.version, "Version", version.SourceVersion)
	vars.String(&config.scheme, "Scheme", "LogCubic")
	vars.Floats(&config.xs, "Xs", []float64{})
	vars.Floats(&config.ys, "Ys", []float64{})
	vars.String(&config.leftCondition, "LeftCondition", "NotAKnot")
	vars.Float(&config.leftValue, "LeftValue", 0)
	vars.String(&config.rightCondition, "RightCondition", "SecondDerivative")
	vars.Float(&config.rightValue, "RightValue", 0)
	vars.Bool(&config.monotonic, "Monotonic", true)
	vars.Bool(&config.extrapolate, "Extrapolate", false)
}

// validate checks the [curve] variables and builds the factory they
// describe.
func (config *CurveConfig) validate() error {
	if err := validateVersion(config.version); err != nil {
		return err
	}

	if len(config.xs) < 2 {
		return fmt.Errorf("The 'Xs' variable must have at least two "+
			"elements, but it has %d.", len(config.xs))
	} else if len(config.xs) != len(config.ys) {
		return fmt.Errorf("The 'Xs' variable has %d elements, but the "+
			"'Ys' variable has %d.", len(config.xs), len(config.ys))
	}
	for i := 1; i < len(config.xs); i++ {
		if config.xs[i] <= config.xs[i-1] {
			return fmt.Errorf("The 'Xs' variable must be strictly "+
				"increasing, but element %d (%g) is not larger than "+
				"element %d (%g).", i, config.xs[i], i-1, config.xs[i-1])
		}
	}

	left, err := interpolate.ParseBoundaryKind(config.leftCondition)
	if err != nil {
		return fmt.Errorf("The 'LeftCondition' variable is set to '%s', "+
			"which I don't recognize.", config.leftCondition)
	}
	right, err := interpolate.ParseBoundaryKind(config.rightCondition)
	if err != nil {
		return fmt.Errorf("The 'RightCondition' variable is set to '%s', "+
			"which I don't recognize.", config.rightCondition)
	}
	lbc := interpolate.BoundaryCondition{Kind: left, Value: config.leftValue}
	rbc := interpolate.BoundaryCondition{Kind: right, Value: config.rightValue}

	switch strings.ToLower(config.scheme) {
	case "linear":
		config.factory = interpolate.Linear{}
	case "loglinear":
		config.factory = interpolate.LogLinear{}
	case "cubic":
		config.factory = interpolate.Cubic{
			Left: lbc, Right: rbc, Monotonic: config.monotonic,
		}
	case "logcubic":
		config.factory = interpolate.NewLogCubic(
			interpolate.Left(lbc.Kind, lbc.Value),
			interpolate.Right(rbc.Kind, rbc.Value),
			interpolate.Monotonic(config.monotonic),
		)
	case "":
		return fmt.Errorf("The 'Scheme' variable isn't set.")
	default:
		return fmt.Errorf("The 'Scheme' variable is set to '%s', which I "+
			"don't recognize. Supported schemes are %s.", config.scheme,
			strings.Join(schemeNames, ", "))
	}

	return nil
}

// Interpolation builds the curve described by the config.
func (config *CurveConfig) Interpolation() (*interpolate.Interpolation, error) {
	if config.factory == nil {
		return nil, fmt.Errorf("The [curve] config hasn't been read.")
	}

	logging.Printf("Interpolating %d knots with %T (global = %v).",
		len(config.xs), config.factory, config.factory.Global())
	in, err := config.factory.Interpolate(
		interpolate.Float64s(config.xs), interpolate.Float64s(config.ys),
	)
	if err != nil {
		return nil, fmt.Errorf("I couldn't interpolate the curve: %w", err)
	}
	if config.extrapolate {
		in.EnableExtrapolation()
	}
	return in, nil
}

const curveExampleConfig = `[curve]
# Target version of logterp. This option merely allows logterp to notice
# when its source and configuration files are not from the same version.
#
# This variable defaults to the source version if not included.
Version = %s

#####################
## Required Fields ##
#####################

# Xs and Ys are the knots of the curve. Xs must be strictly increasing and
# both lists must have the same length (at least two). The log schemes also
# need every element of Ys to be strictly positive.
Xs = 0.25, 0.5, 1, 2, 5, 10
Ys = 0.9975, 0.9940, 0.9860, 0.9650, 0.8950, 0.7800

#####################
## Optional Fields ##
#####################

# Scheme is one of Linear, Cubic, LogLinear or LogCubic. The log schemes
# interpolate ln(y) and exponentiate the result, so the curve stays positive.
# Defaults to LogCubic.
Scheme = LogCubic

# The boundary conditions of the cubic schemes. Supported conditions are
# NotAKnot, FirstDerivative, SecondDerivative, Periodic and Lagrange. The
# values are only used by FirstDerivative and SecondDerivative and refer to
# ln(y) for LogCubic. Defaults to NotAKnot on the left and a zero
# SecondDerivative on the right.
LeftCondition = NotAKnot
LeftValue = 0
RightCondition = SecondDerivative
RightValue = 0

# Monotonic turns on a filter which stops the cubic schemes from overshooting
# between monotonic knots. Defaults to true.
Monotonic = true

# Extrapolate allows the curve to be evaluated outside [Xs[0], Xs[n-1]].
# Defaults to false.
Extrapolate = false
`
