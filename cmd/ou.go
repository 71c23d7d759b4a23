package cmd

import (
	"fmt"

	"github.com/phil-mansfield/logterp/logging"
	"github.com/phil-mansfield/logterp/math/rand"
	"github.com/phil-mansfield/logterp/parse"
	"github.com/phil-mansfield/logterp/process"
	"github.com/phil-mansfield/logterp/version"
)

// OUConfig tabulates the moments of an Ornstein-Uhlenbeck process.
type OUConfig struct {
	version string

	speed, volatility, x0, level float64
	dt                           float64
	steps, paths, seed           int64
	generator                    string
	percentiles                  []float64

	genType rand.GeneratorType
}

var _ Mode = &OUConfig{}

func (config *OUConfig) ExampleConfig() string {
	return fmt.Sprintf(`[process]
# Target version of logterp. Defaults to the source version if not included.
Version = %s

#####################
## Required Fields ##
#####################

# The process is dx = Speed (Level - x) dt + Volatility dW with x(0) = X0.
# Speed and Volatility must be non-negative.
Speed = 0.5
Volatility = 0.2
X0 = 0.03
Level = 0.05

#####################
## Optional Fields ##
#####################

# The output table has Steps + 1 rows, spaced by Dt. Defaults to Dt = 0.25 and
# Steps = 40.
Dt = 0.25
Steps = 40

# If Paths is positive, that many paths are simulated and their sample mean
# and standard deviation are written as two extra columns. Generator is
# Xorshift or Golang. Defaults to 0 paths, Seed = 1, Generator = Xorshift.
Paths = 0
Seed = 1
Generator = Xorshift

# Percentiles adds a column for each listed percentile of the simulated paths
# at every time step. Values are fractions in [0, 1]. Requires Paths > 0.
# Percentiles = 0.05, 0.5, 0.95`, version.SourceVersion)
}

func (config *OUConfig) ReadConfig(fname string) error {
	vars := parse.NewConfigVars("process")
	vars.String(&config.version, "Version", version.SourceVersion)
	vars.Float(&config.speed, "Speed", 0)
	vars.Float(&config.volatility, "Volatility", 0)
	vars.Float(&config.x0, "X0", 0)
	vars.Float(&config.level, "Level", 0)
	vars.Float(&config.dt, "Dt", 0.25)
	vars.Int(&config.steps, "Steps", 40)
	vars.Int(&config.paths, "Paths", 0)
	vars.Int(&config.seed, "Seed", 1)
	vars.String(&config.generator, "Generator", "Xorshift")
	vars.Floats(&config.percentiles, "Percentiles", []float64{})

	if fname == "" {
		return nil
	}
	if err := parse.ReadConfig(fname, vars); err != nil {
		return err
	}
	return config.validate()
}

func (config *OUConfig) validate() error {
	if err := validateVersion(config.version); err != nil {
		return err
	}

	if config.dt <= 0 {
		return fmt.Errorf("The 'Dt' variable is set to %g, but it must be "+
			"positive.", config.dt)
	} else if config.steps < 1 {
		return fmt.Errorf("The 'Steps' variable is set to %d, but it must "+
			"be positive.", config.steps)
	} else if config.paths < 0 {
		return fmt.Errorf("The 'Paths' variable is set to %d, but it can't "+
			"be negative.", config.paths)
	}

	for _, p := range config.percentiles {
		if p < 0 || p > 1 {
			return fmt.Errorf("The 'Percentiles' variable contains %g, but "+
				"percentiles must be in the range [0, 1].", p)
		}
	}
	if len(config.percentiles) > 0 && config.paths == 0 {
		return fmt.Errorf("The 'Percentiles' variable is set, but 'Paths' " +
			"is 0.")
	}

	var err error
	if config.genType, err = rand.ParseGeneratorType(config.generator); err != nil {
		return fmt.Errorf("The 'Generator' variable is set to '%s', which "+
			"I don't recognize.", config.generator)
	}
	return nil
}

// Run writes a "t mean stddev" line for every time step, followed by the
// sample mean, sample standard deviation and requested percentiles if paths
// are simulated.
func (config *OUConfig) Run(flags []string, stdin []string) ([]string, error) {
	if err := noFlags("ou", flags); err != nil {
		return nil, err
	}

	ou, err := process.NewOrnsteinUhlenbeck(
		config.speed, config.volatility, config.x0, config.level,
	)
	if err != nil {
		return nil, fmt.Errorf("I couldn't create the process: %w", err)
	}

	var sampleMean, sampleStd []float64
	var pcts [][]float64
	if config.paths > 0 {
		timer := logging.NewTimer("ou paths")
		gen := rand.New(config.genType, uint64(config.seed))
		paths := make([][]float64, config.paths)
		for i := range paths {
			paths[i] = make([]float64, config.steps+1)
			process.Path(ou, gen, config.dt, paths[i])
		}
		sampleMean, sampleStd = process.Moments(paths)
		if len(config.percentiles) > 0 {
			pcts = process.Percentiles(paths, config.percentiles)
		}
		timer.Stop()
		logging.Printf("Simulated %d paths with the %s generator.",
			config.paths, config.genType)
	}

	mean, std := ou.ExpectationCurve(), ou.StdDeviationCurve()
	out := make([]string, config.steps+1)
	for i := range out {
		t := float64(i) * config.dt
		out[i] = fmt.Sprintf("%.6g %.10g %.10g", t, mean(t), std(t))
		if sampleMean != nil {
			out[i] += fmt.Sprintf(" %.10g %.10g", sampleMean[i], sampleStd[i])
		}
		if pcts != nil {
			for _, p := range pcts[i] {
				out[i] += fmt.Sprintf(" %.10g", p)
			}
		}
	}
	return out, nil
}
