package cmd

import (
	"fmt"
	"strings"

	"github.com/phil-mansfield/logterp/logging"
	"github.com/phil-mansfield/logterp/parse"
	"github.com/phil-mansfield/logterp/version"
)

// EvalConfig evaluates a curve at the points given on stdin.
type EvalConfig struct {
	CurveConfig
	quantity string
}

var _ Mode = &EvalConfig{}

var quantityNames = []string{
	"Value", "Derivative", "SecondDerivative", "Primitive",
}

func (config *EvalConfig) ExampleConfig() string {
	return fmt.Sprintf(curveExampleConfig, version.SourceVersion) + `
# Quantity is the column written next to each x value. It is one of Value,
# Derivative, SecondDerivative or Primitive. The log schemes only support
# Value. Defaults to Value.
Quantity = Value`
}

func (config *EvalConfig) ReadConfig(fname string) error {
	vars := parse.NewConfigVars("curve")
	config.curveVars(vars)
	vars.String(&config.quantity, "Quantity", "Value")

	if fname == "" {
		return nil
	}
	if err := parse.ReadConfig(fname, vars); err != nil {
		return err
	}
	return config.validate()
}

func (config *EvalConfig) validate() error {
	if err := config.CurveConfig.validate(); err != nil {
		return err
	}
	for _, name := range quantityNames {
		if strings.EqualFold(name, config.quantity) {
			return nil
		}
	}
	return fmt.Errorf("The 'Quantity' variable is set to '%s', which I "+
		"don't recognize. Supported quantities are %s.", config.quantity,
		strings.Join(quantityNames, ", "))
}

// Run writes one "x y" line for every number on stdin.
func (config *EvalConfig) Run(flags []string, stdin []string) ([]string, error) {
	if err := noFlags("eval", flags); err != nil {
		return nil, err
	}
	xs, err := parseFloatLines(stdin)
	if err != nil {
		return nil, err
	}

	timer := logging.NewTimer("eval")
	defer timer.Stop()

	in, err := config.Interpolation()
	if err != nil {
		return nil, err
	}

	var f func(float64) (float64, error)
	switch strings.ToLower(config.quantity) {
	case "value":
		f = in.Value
	case "derivative":
		f = in.Derivative
	case "secondderivative":
		f = in.SecondDerivative
	case "primitive":
		f = in.Primitive
	}

	out := make([]string, len(xs))
	for i, x := range xs {
		y, err := f(x)
		if err != nil {
			return nil, fmt.Errorf("I couldn't evaluate the %s at x = %g: %w",
				strings.ToLower(config.quantity), x, err)
		}
		out[i] = fmt.Sprintf("%.10g %.10g", x, y)
	}
	logging.Printf("Evaluated %d points.", len(xs))

	return out, nil
}
