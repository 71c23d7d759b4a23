/*package parse reads logterp config files. A config file starts with a
[header] line naming its type, followed by "Name = value" assignments. Names
are case-insensitive, list values are comma separated, and everything after
a '#' is a comment.

	[curve]
	Version = 0.2.0
	Scheme = LogCubic
	Xs = 1, 2, 3, 4
	Ys = 1, 2, 4, 8 # doubling
*/
package parse

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

/////////////////////
// Conversion Code //
/////////////////////

type varType int

const (
	intVar varType = iota
	intsVar
	floatVar
	floatsVar
	stringVar
	stringsVar
	boolVar
	boolsVar
)

var varTypeNames = []string{
	"int", "int list", "float", "float list",
	"string", "string list", "bool", "bool list",
}

func (v varType) String() string { return varTypeNames[v] }

func (v varType) article() string {
	if v == intVar || v == intsVar {
		return "an"
	}
	return "a"
}

type conversionFunc func(string) bool

type configVar struct {
	name  string
	typ   varType
	conv  conversionFunc
	isSet bool
}

// ConfigVars is the set of variables a config file of one type may assign.
// Variables are registered with a pointer and a default value; ReadConfig
// overwrites the pointed-to value for every assignment it finds.
type ConfigVars struct {
	name string
	vars []configVar
}

func intConv(ptr *int64) conversionFunc {
	return func(s string) bool {
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return false
		}
		*ptr = i
		return true
	}
}

func floatConv(ptr *float64) conversionFunc {
	return func(s string) bool {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return false
		}
		*ptr = f
		return true
	}
}

func stringConv(ptr *string) conversionFunc {
	return func(s string) bool {
		*ptr = strings.TrimSpace(s)
		return true
	}
}

func boolConv(ptr *bool) conversionFunc {
	return func(s string) bool {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return false
		}
		*ptr = b
		return true
	}
}

// strToList splits a comma separated list. The empty string is the empty
// list.
func strToList(a string) []string {
	if strings.TrimSpace(a) == "" {
		return nil
	}
	strs := strings.Split(a, ",")
	for i := range strs {
		strs[i] = strings.TrimSpace(strs[i])
	}
	return strs
}

// The list conversions build a fresh slice so that a failed conversion
// leaves the default in place.

func intsConv(ptr *[]int64) conversionFunc {
	return func(s string) bool {
		toks := strToList(s)
		out := make([]int64, len(toks))
		for j := range toks {
			i, err := strconv.ParseInt(toks[j], 10, 64)
			if err != nil {
				return false
			}
			out[j] = i
		}
		*ptr = out
		return true
	}
}

func floatsConv(ptr *[]float64) conversionFunc {
	return func(s string) bool {
		toks := strToList(s)
		out := make([]float64, len(toks))
		for j := range toks {
			f, err := strconv.ParseFloat(toks[j], 64)
			if err != nil {
				return false
			}
			out[j] = f
		}
		*ptr = out
		return true
	}
}

func stringsConv(ptr *[]string) conversionFunc {
	return func(s string) bool {
		*ptr = strToList(s)
		return true
	}
}

func boolsConv(ptr *[]bool) conversionFunc {
	return func(s string) bool {
		toks := strToList(s)
		out := make([]bool, len(toks))
		for j := range toks {
			b, err := strconv.ParseBool(toks[j])
			if err != nil {
				return false
			}
			out[j] = b
		}
		*ptr = out
		return true
	}
}

// NewConfigVars creates an empty variable set for config files with the
// header [name].
func NewConfigVars(name string) *ConfigVars {
	return &ConfigVars{name: name}
}

func (vars *ConfigVars) add(name string, typ varType, conv conversionFunc) {
	vars.vars = append(vars.vars, configVar{
		name: strings.ToLower(name), typ: typ, conv: conv,
	})
}

func (vars *ConfigVars) Int(ptr *int64, name string, value int64) {
	*ptr = value
	vars.add(name, intVar, intConv(ptr))
}

func (vars *ConfigVars) Float(ptr *float64, name string, value float64) {
	*ptr = value
	vars.add(name, floatVar, floatConv(ptr))
}

func (vars *ConfigVars) String(ptr *string, name string, value string) {
	*ptr = value
	vars.add(name, stringVar, stringConv(ptr))
}

func (vars *ConfigVars) Bool(ptr *bool, name string, value bool) {
	*ptr = value
	vars.add(name, boolVar, boolConv(ptr))
}

func (vars *ConfigVars) Ints(ptr *[]int64, name string, value []int64) {
	*ptr = value
	vars.add(name, intsVar, intsConv(ptr))
}

func (vars *ConfigVars) Floats(ptr *[]float64, name string, value []float64) {
	*ptr = value
	vars.add(name, floatsVar, floatsConv(ptr))
}

func (vars *ConfigVars) Strings(ptr *[]string, name string, value []string) {
	*ptr = value
	vars.add(name, stringsVar, stringsConv(ptr))
}

func (vars *ConfigVars) Bools(ptr *[]bool, name string, value []bool) {
	*ptr = value
	vars.add(name, boolsVar, boolsConv(ptr))
}

// IsSet returns true if the last read config file assigned the named
// variable.
func (vars *ConfigVars) IsSet(name string) bool {
	v := vars.lookup(strings.ToLower(strings.TrimSpace(name)))
	return v != nil && v.isSet
}

func (vars *ConfigVars) lookup(name string) *configVar {
	for i := range vars.vars {
		if vars.vars[i].name == name {
			return &vars.vars[i]
		}
	}
	return nil
}

//////////////////
// Parsing Code //
//////////////////

// ReadConfig reads the config file fname into vars.
func ReadConfig(fname string, vars *ConfigVars) error {
	f, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	return Parse(f, fname, vars)
}

// Parse reads a config file from r into vars. source names the file in error
// messages.
func Parse(r io.Reader, source string, vars *ConfigVars) error {
	bs, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	for i := range vars.vars {
		vars.vars[i].isSet = false
	}

	lines, lineNums := removeComments(strings.Split(string(bs), "\n"))

	if len(lines) == 0 || lines[0] != fmt.Sprintf("[%s]", vars.name) {
		return fmt.Errorf(
			"I expected the config file %s to have the header "+
				"[%s] at the top, but didn't find it.", source, vars.name,
		)
	}
	lines, lineNums = lines[1:], lineNums[1:]

	for i, line := range lines {
		name, val, ok := assignment(line)
		if !ok {
			return fmt.Errorf(
				"I could not parse line %d of the config file %s because "+
					"it did not take the form of a variable assignment.",
				lineNums[i], source,
			)
		}

		v := vars.lookup(name)
		if v == nil {
			return fmt.Errorf(
				"Line %d of the config file %s assigns a value to the "+
					"variable '%s', but config files of type %s don't have "+
					"that variable.", lineNums[i], source, name, vars.name,
			)
		}

		if prev := firstAssignment(lines[:i], name); prev != -1 {
			return fmt.Errorf(
				"Lines %d and %d of the config file %s both assign a value "+
					"to the variable '%s'.", lineNums[prev], lineNums[i],
				source, name,
			)
		}

		if !v.conv(val) {
			return fmt.Errorf(
				"I could not parse line %d of the config file %s because "+
					"'%s' expects values of type %s and '%s' cannot be "+
					"converted to %s %s.", lineNums[i], source, name, v.typ,
				val, v.typ.article(), v.typ,
			)
		}
		v.isSet = true
	}

	return nil
}

// removeComments strips comments and blank lines and returns the remaining
// lines along with their one-indexed line numbers.
func removeComments(lines []string) ([]string, []int) {
	out, lineNums := []string{}, []int{}
	for i := range lines {
		line := lines[i]
		if comment := strings.Index(line, "#"); comment != -1 {
			line = line[:comment]
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		out = append(out, line)
		lineNums = append(lineNums, i+1)
	}
	return out, lineNums
}

func assignment(line string) (name, val string, ok bool) {
	eq := strings.Index(line, "=")
	if eq == -1 {
		return "", "", false
	}
	name = strings.ToLower(strings.TrimSpace(line[:eq]))
	if len(name) == 0 {
		return "", "", false
	}
	return name, strings.TrimSpace(line[eq+1:]), true
}

func firstAssignment(lines []string, name string) int {
	for i := range lines {
		if prev, _, ok := assignment(lines[i]); ok && prev == name {
			return i
		}
	}
	return -1
}
