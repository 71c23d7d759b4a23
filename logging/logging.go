/*package logging controls the diagnostic output of the logterp tool. Library
packages never log; only the command line modes do.*/
package logging

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"time"
)

type Flag int

const (
	Nil Flag = iota
	Performance
	Debug
)

// EnvVar names the environment variable that sets Mode at start up.
const EnvVar = "LOGTERP_MODE"

var flagNames = []string{"Nil", "Performance", "Debug"}

// This is handled this way so that the mode doesn't need to be threaded
// through every function in the project.
var (
	Mode Flag = Nil
)

func (f Flag) String() string {
	if f < 0 || int(f) >= len(flagNames) {
		return fmt.Sprintf("Flag(%d)", int(f))
	}
	return flagNames[f]
}

// ParseFlag converts a (case-insensitive) mode name to a Flag. The empty
// string is Nil.
func ParseFlag(s string) (Flag, error) {
	if s == "" {
		return Nil, nil
	}
	for i, name := range flagNames {
		if strings.EqualFold(s, name) {
			return Flag(i), nil
		}
	}
	return Nil, fmt.Errorf("Unrecognized logging mode '%s'. Valid modes "+
		"are %s.", s, strings.Join(flagNames, ", "))
}

// SetModeFromEnv sets Mode from the LOGTERP_MODE environment variable.
func SetModeFromEnv() error {
	flag, err := ParseFlag(os.Getenv(EnvVar))
	if err != nil {
		return err
	}
	Mode = flag
	return nil
}

// Printf logs a message through the standard logger in Debug mode and does
// nothing otherwise.
func Printf(format string, args ...interface{}) {
	if Mode == Debug {
		log.Printf(format, args...)
	}
}

// Timer measures the wall clock time of one stage of a run. It only reports
// in Performance mode.
type Timer struct {
	name  string
	start time.Time
}

// NewTimer starts a timer for the named stage.
func NewTimer(name string) *Timer {
	return &Timer{name, time.Now()}
}

// Elapsed returns the time since the timer started.
func (t *Timer) Elapsed() time.Duration { return time.Since(t.start) }

// Stop logs the elapsed time and memory usage in Performance mode.
func (t *Timer) Stop() {
	if Mode == Performance {
		log.Printf("%s: %.3g s; %s", t.name, t.Elapsed().Seconds(),
			MemString())
	}
}

// MemString returns a string containing various statistics on the current
// memory usage of logterp.
func MemString() string {
	ms := runtime.MemStats{}
	runtime.ReadMemStats(&ms)
	return fmt.Sprintf(
		"Alloc - %d MB; Sys - %d MB Integrated - %d MB",
		ms.Alloc>>20, ms.Sys>>20, ms.TotalAlloc>>20,
	)
}
