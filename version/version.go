/*package version tracks the semantic version of logterp and of the config
files it reads.*/
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// SourceVersion is the version string representing the semantic version number
// of the source code.
const SourceVersion = "0.2.0"

// Parse parses a semantic version number string and returns an error if
// the string is invalid.
func Parse(s string) (major, minor, patch int, err error) {
	toks := strings.Split(strings.TrimSpace(s), ".")
	if len(toks) != 3 {
		return -1, -1, -1, fmt.Errorf("Version string '%s' does not take "+
			"the form of three period-separated non-negative numbers.", s)
	}

	vals := [3]int{}
	for i := range toks {
		vals[i], err = strconv.Atoi(toks[i])
		if err != nil || vals[i] < 0 {
			return -1, -1, -1, fmt.Errorf("Version string '%s' does not "+
				"take the form of three period-separated non-negative "+
				"numbers.", s)
		}
	}

	return vals[0], vals[1], vals[2], nil
}

// Later returns true if s1 represents a later version of the source than
// s2. An error is returned if either is invalid.
func Later(s1, s2 string) (bool, error) {
	major1, minor1, patch1, err := Parse(s1)
	if err != nil {
		return false, err
	}
	major2, minor2, patch2, err := Parse(s2)
	if err != nil {
		return false, err
	}

	switch {
	case major1 != major2:
		return major1 > major2, nil
	case minor1 != minor2:
		return minor1 > minor2, nil
	default:
		return patch1 > patch2, nil
	}
}

// Check returns an error if a config file written for version s cannot be
// read by this source: either s is malformed or it is later than
// SourceVersion.
func Check(s string) error {
	later, err := Later(s, SourceVersion)
	if err != nil {
		return err
	} else if later {
		return fmt.Errorf("The config file has version %s, but this is "+
			"logterp version %s.", s, SourceVersion)
	}
	return nil
}
