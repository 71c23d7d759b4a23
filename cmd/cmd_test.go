package cmd

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/phil-mansfield/logterp/math/interpolate"
	"github.com/phil-mansfield/logterp/process"
	"github.com/phil-mansfield/logterp/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	fname := filepath.Join(t.TempDir(), "test.config")
	require.NoError(t, os.WriteFile(fname, []byte(text), 0644))
	return fname
}

func TestExampleFiles(t *testing.T) {
	for name, mode := range ModeNames {
		fname := writeConfig(t, mode.ExampleConfig())
		assert.NoError(t, mode.ReadConfig(fname), name)
	}
}

func curveConfig(body string) string {
	return fmt.Sprintf("[curve]\nVersion = %s\n%s", version.SourceVersion, body)
}

func parseColumns(t *testing.T, lines []string) [][]float64 {
	out := make([][]float64, len(lines))
	for i, line := range lines {
		for _, tok := range strings.Fields(line) {
			x, err := strconv.ParseFloat(tok, 64)
			require.NoError(t, err, line)
			out[i] = append(out[i], x)
		}
	}
	return out
}

func TestEvalRun(t *testing.T) {
	config := &EvalConfig{}
	require.NoError(t, config.ReadConfig(writeConfig(t, curveConfig(`
Scheme = LogLinear
Xs = 1, 2, 3, 4
Ys = 1, 2, 4, 8
`))))

	out, err := config.Run(nil, []string{"2.5", "", "# comment", " 1 ", "4"})
	require.NoError(t, err)
	cols := parseColumns(t, out)
	require.Len(t, cols, 3)
	assert.InDelta(t, math.Sqrt(8), cols[0][1], 1e-9)
	assert.InDelta(t, 1, cols[1][1], 1e-9)
	assert.InDelta(t, 8, cols[2][1], 1e-9)

	_, err = config.Run(nil, []string{"5"})
	assert.True(t, errors.Is(err, interpolate.ErrOutOfRange))

	_, err = config.Run(nil, []string{"meow"})
	assert.Error(t, err)
	_, err = config.Run([]string{"--fast"}, nil)
	assert.Error(t, err)
}

func TestEvalQuantity(t *testing.T) {
	config := &EvalConfig{}
	require.NoError(t, config.ReadConfig(writeConfig(t, curveConfig(`
Scheme = LogCubic
Xs = 1, 2, 3, 4
Ys = 1, 2, 4, 8
Quantity = derivative
`))))
	_, err := config.Run(nil, []string{"2"})
	assert.True(t, errors.Is(err, interpolate.ErrNotSupported))

	require.NoError(t, config.ReadConfig(writeConfig(t, curveConfig(`
Scheme = Linear
Xs = 0, 1, 3
Ys = 1, 3, 7
Quantity = Primitive
Extrapolate = true
`))))
	out, err := config.Run(nil, []string{"2", "4"})
	require.NoError(t, err)
	cols := parseColumns(t, out)
	assert.InDelta(t, 6, cols[0][1], 1e-9)
	assert.InDelta(t, 20, cols[1][1], 1e-9)
}

func TestEvalPositivity(t *testing.T) {
	config := &EvalConfig{}
	require.NoError(t, config.ReadConfig(writeConfig(t, curveConfig(`
Scheme = LogCubic
Xs = 1, 2, 3
Ys = 1, 0, 4
`))))
	_, err := config.Run(nil, []string{"1.5"})
	var invalid *interpolate.InvalidInputError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, 1, invalid.Index)
}

func TestCurveConfigErrors(t *testing.T) {
	tests := []struct {
		name, body, msg string
	}{
		{"too few", "Xs = 1\nYs = 1\n", "at least two"},
		{"mismatch", "Xs = 1, 2\nYs = 1\n", "'Ys' variable has 1"},
		{"unsorted", "Xs = 1, 3, 2\nYs = 1, 1, 1\n", "strictly increasing"},
		{"scheme", "Xs = 1, 2\nYs = 1, 1\nScheme = Quartic\n", "'Quartic'"},
		{"left", "Xs = 1, 2\nYs = 1, 1\nLeftCondition = Clamped\n",
			"'LeftCondition'"},
		{"right", "Xs = 1, 2\nYs = 1, 1\nRightCondition = Free\n",
			"'RightCondition'"},
		{"quantity", "Xs = 1, 2\nYs = 1, 1\nQuantity = Area\n", "'Quantity'"},
	}
	for _, test := range tests {
		config := &EvalConfig{}
		err := config.ReadConfig(writeConfig(t, curveConfig(test.body)))
		require.Error(t, err, test.name)
		assert.Contains(t, err.Error(), test.msg, test.name)
	}

	config := &EvalConfig{}
	err := config.ReadConfig(writeConfig(t,
		"[curve]\nVersion = 99.0.0\nXs = 1, 2\nYs = 1, 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'Version'")

	_, err = (&CurveConfig{}).Interpolation()
	assert.Error(t, err)
}

func TestCurveConfigFactories(t *testing.T) {
	tests := []struct {
		scheme string
		global bool
	}{
		{"Linear", false},
		{"loglinear", false},
		{"Cubic", true},
		{"LogCubic", true},
	}
	for _, test := range tests {
		config := &EvalConfig{}
		require.NoError(t, config.ReadConfig(writeConfig(t, curveConfig(
			"Scheme = "+test.scheme+"\nXs = 1, 2, 3\nYs = 1, 2, 3\n",
		))), test.scheme)
		assert.Equal(t, test.global, config.factory.Global(), test.scheme)
	}

	config := &EvalConfig{}
	require.NoError(t, config.ReadConfig(writeConfig(t, curveConfig(`
Xs = 1, 2, 3
Ys = 1, 2, 3
LeftCondition = firstDerivative
LeftValue = 0.25
Monotonic = false
`))))
	lc, ok := config.factory.(interpolate.LogCubic)
	require.True(t, ok)
	assert.Equal(t, interpolate.BoundaryCondition{
		Kind: interpolate.FirstDerivative, Value: 0.25,
	}, lc.Left)
	assert.Equal(t, interpolate.BoundaryCondition{
		Kind: interpolate.SecondDerivative,
	}, lc.Right)
	assert.False(t, lc.Monotonic)
}

func TestPlotSample(t *testing.T) {
	config := &PlotConfig{}
	require.NoError(t, config.ReadConfig(writeConfig(t, curveConfig(`
Scheme = Linear
Xs = 0, 1, 2
Ys = 0, 2, 4
Points = 5
`))))
	xs, ys, err := config.sample()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, xs)
	assert.InDeltaSlice(t, []float64{0, 1, 2, 3, 4}, ys, 1e-12)

	require.NoError(t, config.ReadConfig(writeConfig(t, curveConfig(`
Scheme = Linear
Xs = 0, 1, 2
Ys = 0, 2, 4
XMax = 3
Points = 7
`))))
	_, _, err = config.sample()
	assert.True(t, errors.Is(err, interpolate.ErrOutOfRange))

	err = config.ReadConfig(writeConfig(t, curveConfig(`
Xs = 0, 1, 2
Ys = 1, 2, 4
Points = 1
`)))
	assert.Error(t, err)
	err = config.ReadConfig(writeConfig(t, curveConfig(`
Xs = 0, 1, 2
Ys = 1, 2, 4
XMin = 2
XMax = 1
`)))
	assert.Error(t, err)
}

func TestForwardRates(t *testing.T) {
	config := &PlotConfig{}
	require.NoError(t, config.ReadConfig(writeConfig(t, curveConfig(`
Scheme = LogLinear
Xs = 0, 1, 2, 3
Ys = 1, 0.5, 0.25, 0.125
Points = 31
Forwards = true
`))))
	xs, ys, err := config.sample()
	require.NoError(t, err)
	fwd, err := forwardRates(xs, ys)
	require.NoError(t, err)
	for i := range fwd {
		assert.InDelta(t, math.Ln2, fwd[i], 1e-9, "x = %g", xs[i])
	}

	_, err = forwardRates([]float64{0, 1, 2, 3, 4}, []float64{1, 1, 0, 1, 1})
	assert.Error(t, err)
}

func ouConfig(body string) string {
	return fmt.Sprintf("[process]\nVersion = %s\n%s",
		version.SourceVersion, body)
}

func TestOURun(t *testing.T) {
	config := &OUConfig{}
	require.NoError(t, config.ReadConfig(writeConfig(t, ouConfig(`
Speed = 0.5
Volatility = 0.2
X0 = 1
Level = 2
Dt = 0.5
Steps = 4
`))))
	out, err := config.Run(nil, nil)
	require.NoError(t, err)
	cols := parseColumns(t, out)
	require.Len(t, cols, 5)

	ou, err := process.NewOrnsteinUhlenbeck(0.5, 0.2, 1, 2)
	require.NoError(t, err)
	for i, row := range cols {
		require.Len(t, row, 3)
		tt := float64(i) * 0.5
		assert.InDelta(t, tt, row[0], 1e-12)
		assert.InDelta(t, ou.Expectation(0, 1, tt), row[1], 1e-9)
		assert.InDelta(t, ou.StdDeviation(0, 1, tt), row[2], 1e-9)
	}
}

func TestOURunPaths(t *testing.T) {
	config := &OUConfig{}
	require.NoError(t, config.ReadConfig(writeConfig(t, ouConfig(`
Speed = 1
Volatility = 0.3
X0 = 0
Level = 1
Dt = 0.25
Steps = 8
Paths = 2000
Seed = 17
Generator = golang
`))))
	first, err := config.Run(nil, nil)
	require.NoError(t, err)
	cols := parseColumns(t, first)
	require.Len(t, cols, 9)

	for i, row := range cols {
		require.Len(t, row, 5)
		if i == 0 {
			assert.Zero(t, row[3])
			assert.Zero(t, row[4])
			continue
		}
		// Five standard errors.
		assert.InDelta(t, row[1], row[3], 5*row[2]/math.Sqrt(2000))
		assert.InDelta(t, row[2], row[4], 5*row[2]/math.Sqrt(4000))
	}

	require.NoError(t, config.ReadConfig(writeConfig(t, ouConfig(`
Speed = 1
Volatility = 0.3
Level = 1
Steps = 2
Paths = 50
Percentiles = 0, 1
`))))
	pcts, err := config.Run(nil, nil)
	require.NoError(t, err)
	require.Len(t, pcts, 3)
	for _, row := range parseColumns(t, pcts) {
		require.Len(t, row, 7)
		assert.LessOrEqual(t, row[5], row[3])
		assert.GreaterOrEqual(t, row[6], row[3])
	}

	require.NoError(t, config.ReadConfig(writeConfig(t, ouConfig(`
Speed = 1
Volatility = 0.3
X0 = 0
Level = 1
Dt = 0.25
Steps = 8
Paths = 2000
Seed = 17
Generator = golang
`))))
	again, err := config.Run(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestOUConfigErrors(t *testing.T) {
	tests := []struct {
		name, body, msg string
	}{
		{"dt", "Dt = 0\n", "'Dt'"},
		{"steps", "Steps = 0\n", "'Steps'"},
		{"paths", "Paths = -1\n", "'Paths'"},
		{"generator", "Generator = Tausworthe\n", "'Generator'"},
		{"percentile range", "Paths = 10\nPercentiles = 0.5, 95\n",
			"contains 95"},
		{"percentile paths", "Percentiles = 0.5\n", "'Paths' is 0"},
	}
	for _, test := range tests {
		config := &OUConfig{}
		err := config.ReadConfig(writeConfig(t, ouConfig(test.body)))
		require.Error(t, err, test.name)
		assert.Contains(t, err.Error(), test.msg, test.name)
	}

	config := &OUConfig{}
	require.NoError(t, config.ReadConfig(writeConfig(t, ouConfig(
		"Speed = -1\n",
	))))
	_, err := config.Run(nil, nil)
	assert.True(t, errors.Is(err, process.ErrNegativeSpeed))
}
