package cmd

import (
	"fmt"
	"math"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/logterp/math/calc"
	"github.com/phil-mansfield/logterp/parse"
	"github.com/phil-mansfield/logterp/version"
)

// PlotConfig draws a curve and its knots with matplotlib.
type PlotConfig struct {
	CurveConfig
	points   int64
	title    string
	min, max float64
	forwards bool
}

var _ Mode = &PlotConfig{}

func (config *PlotConfig) ExampleConfig() string {
	return fmt.Sprintf(curveExampleConfig, version.SourceVersion) + `
# Points is the number of evenly spaced points the curve is sampled at.
# Defaults to 200.
Points = 200

# Title is the title of the figure.
Title = Discount factors

# XMin and XMax set the plotted range. If they are not set, the range of Xs is
# used. Plotting outside of Xs requires Extrapolate = true.
# XMin = 0
# XMax = 12

# Forwards adds a second figure showing -d ln(y) / dx, which is the
# instantaneous forward rate when Ys are discount factors. It needs every
# sampled value to be positive. Defaults to false.
Forwards = false`
}

func (config *PlotConfig) ReadConfig(fname string) error {
	vars := parse.NewConfigVars("curve")
	config.curveVars(vars)
	vars.Int(&config.points, "Points", 200)
	vars.String(&config.title, "Title", "")
	vars.Float(&config.min, "XMin", 0)
	vars.Float(&config.max, "XMax", 0)
	vars.Bool(&config.forwards, "Forwards", false)

	if fname == "" {
		return nil
	}
	if err := parse.ReadConfig(fname, vars); err != nil {
		return err
	}

	if !vars.IsSet("XMin") && len(config.xs) > 0 {
		config.min = config.xs[0]
	}
	if !vars.IsSet("XMax") && len(config.xs) > 0 {
		config.max = config.xs[len(config.xs)-1]
	}
	return config.validate()
}

func (config *PlotConfig) validate() error {
	if err := config.CurveConfig.validate(); err != nil {
		return err
	}
	if config.points < 5 {
		return fmt.Errorf("The 'Points' variable is set to %d, but it must "+
			"be at least 5.", config.points)
	} else if config.max <= config.min {
		return fmt.Errorf("The plotted range [%g, %g] is empty.",
			config.min, config.max)
	}
	return nil
}

// sample evaluates the curve at the plotted points.
func (config *PlotConfig) sample() (xs, ys []float64, err error) {
	in, err := config.Interpolation()
	if err != nil {
		return nil, nil, err
	}

	n := int(config.points)
	xs, ys = make([]float64, n), make([]float64, n)
	dx := (config.max - config.min) / float64(n-1)
	for i := range xs {
		xs[i] = config.min + float64(i)*dx
	}
	xs[n-1] = config.max

	for i, x := range xs {
		if ys[i], err = in.Value(x); err != nil {
			return nil, nil, fmt.Errorf("I couldn't evaluate the curve at "+
				"x = %g: %w", x, err)
		}
	}
	return xs, ys, nil
}

// forwardRates returns -d ln(y) / dx at each sampled point.
func forwardRates(xs, ys []float64) ([]float64, error) {
	logYs := make([]float64, len(ys))
	for i, y := range ys {
		if !(y > 0) {
			return nil, fmt.Errorf("I can't plot forward rates because the "+
				"curve is %g at x = %g.", y, xs[i])
		}
		logYs[i] = math.Log(y)
	}

	dx := (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)
	fwd, err := calc.Deriv(logYs, dx, 4)
	if err != nil {
		return nil, err
	}
	for i := range fwd {
		fwd[i] = -fwd[i]
	}
	return fwd, nil
}

// Run shows the plot and blocks until the window is closed. It writes
// nothing to stdout.
func (config *PlotConfig) Run(flags []string, stdin []string) ([]string, error) {
	if err := noFlags("plot", flags); err != nil {
		return nil, err
	}
	xs, ys, err := config.sample()
	if err != nil {
		return nil, err
	}
	var fwd []float64
	if config.forwards {
		if fwd, err = forwardRates(xs, ys); err != nil {
			return nil, err
		}
	}

	plt.Reset()
	plt.Figure(plt.Num(0))
	if config.title != "" {
		plt.Title(config.title)
	}
	plt.Plot(xs, ys, "b", plt.Label(config.scheme), plt.LW(3))
	plt.Plot(config.xs, config.ys, "ok", plt.Label("Knots"))
	plt.XLim(config.min, config.max)
	plt.Legend(plt.Loc("upper right"), plt.FrameOn(false))

	if fwd != nil {
		plt.Figure(plt.Num(1))
		plt.Title("Forward rates")
		plt.Plot(xs, fwd, "r", plt.LW(3))
		plt.XLim(config.min, config.max)
	}
	plt.Show()

	return nil, nil
}
