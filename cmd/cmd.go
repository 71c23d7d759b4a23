/*package cmd contains code for running logterp in its various command line
modes.*/
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phil-mansfield/logterp/version"
)

var ModeNames map[string]Mode = map[string]Mode{
	"eval": &EvalConfig{},
	"plot": &PlotConfig{},
	"ou":   &OUConfig{},
}

// Mode represents the interface used by the main binary when interacting with
// a given command line mode.
type Mode interface {
	// ReadConfig reads a mode-specific config file and stores its contents
	// within the Mode.
	ReadConfig(fname string) error
	// ExampleConfig returns the text of an example config file of this mode.
	ExampleConfig() string
	// Run executes the mode. It takes a list of tokenized command line flags
	// and a slice of lines representing the contents of stdin. It will return
	// a slice of lines that should be written to stdout along with an error
	// if one occurs.
	Run(flags []string, stdin []string) ([]string, error)
}

// validateVersion checks the 'Version' variable of a config file.
func validateVersion(s string) error {
	if err := version.Check(s); err != nil {
		return fmt.Errorf("I couldn't use the 'Version' variable: %s",
			err.Error())
	}
	return nil
}

// noFlags returns an error if any flags were passed to a mode which doesn't
// take them.
func noFlags(mode string, flags []string) error {
	if len(flags) > 0 {
		return fmt.Errorf("The %s mode doesn't take any flags, but was "+
			"given %s.", mode, strings.Join(flags, " "))
	}
	return nil
}

// parseFloatLines parses one number per line. Blank lines and lines starting
// with '#' are skipped.
func parseFloatLines(lines []string) ([]float64, error) {
	out := []float64{}
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		x, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("I couldn't parse line %d of stdin, "+
				"'%s', as a number.", i+1, line)
		}
		out = append(out, x)
	}
	return out, nil
}
