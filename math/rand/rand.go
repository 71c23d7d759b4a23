/*package rand provides seeded pseudo random number generators and the
Gaussian increments used to simulate stochastic processes.

Here are some usage examples for these generators.

	// Generate a single value
	gen := New(Xorshift, 1337)
	x := gen.Uniform(3, 7)

	// Standard normal increments for a path (faster)
	dw := make([]float64, 100)
	gen.NormalAt(0, 1, dw)

	// Use the time as a seed
	gen2 := NewTimeSeed(Golang)

Two types of generators are provided. Xorshift is very fast and has a small
state. Golang is a wrapper around Go's standard library generator.
*/
package rand

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// generatorBackend supplies uniform deviates in [0, 1) to a Generator.
type generatorBackend interface {
	Init(seed uint64)
	Next() float64
	NextSequence(target []float64)
}

// Generator is a random number generator.
type Generator struct {
	backend generatorBackend

	// Box-Muller produces deviates in pairs.
	spare    float64
	hasSpare bool
}

// GeneratorType is a flag used to indicate the desired algorithm for a random
// number generator.
type GeneratorType uint8

const (
	Xorshift GeneratorType = iota
	Golang
)

var generatorNames = []string{"Xorshift", "Golang"}

func (gt GeneratorType) String() string {
	if int(gt) >= len(generatorNames) {
		return fmt.Sprintf("GeneratorType(%d)", int(gt))
	}
	return generatorNames[gt]
}

// ParseGeneratorType converts a (case-insensitive) name to a GeneratorType.
func ParseGeneratorType(s string) (GeneratorType, error) {
	for i, name := range generatorNames {
		if strings.EqualFold(s, name) {
			return GeneratorType(i), nil
		}
	}
	return 0, fmt.Errorf("Unrecognized generator '%s'.", s)
}

// NewTimeSeed returns a new random number generator that uses the current
// time as the seed.
func NewTimeSeed(gt GeneratorType) *Generator {
	return New(gt, uint64(time.Now().UnixNano()))
}

// New returns a new random number generator.
func New(gt GeneratorType, seed uint64) *Generator {
	var backend generatorBackend

	switch gt {
	case Xorshift:
		backend = new(xorshiftGenerator)
	case Golang:
		backend = new(golangGenerator)
	default:
		panic("Unrecognized GeneratorType")
	}

	backend.Init(seed)
	return &Generator{backend: backend}
}

// Uniform returns a float uniformly at random within the range [low, high).
func (gen *Generator) Uniform(low, high float64) float64 {
	if low == 0.0 && high == 1.0 {
		return gen.backend.Next()
	}
	return (gen.backend.Next() * (high - low)) + low
}

// UniformAt writes floats generated uniformly at random in the range
// [low, high) to every element in a target slice. This is generally faster
// than calling Uniform the corresponding number of times.
func (gen *Generator) UniformAt(low, high float64, target []float64) {
	gen.backend.NextSequence(target)
	if low == 0.0 && high == 1.0 {
		return
	}
	for i := range target {
		target[i] = target[i]*(high-low) + low
	}
}

// Normal returns a normally distributed float with the given mean and
// standard deviation.
func (gen *Generator) Normal(mean, stdDev float64) float64 {
	if gen.hasSpare {
		gen.hasSpare = false
		return mean + stdDev*gen.spare
	}
	z0, z1 := gen.boxMuller()
	gen.spare, gen.hasSpare = z1, true
	return mean + stdDev*z0
}

// NormalAt writes normally distributed floats to every element of target.
func (gen *Generator) NormalAt(mean, stdDev float64, target []float64) {
	for i := range target {
		target[i] = gen.Normal(mean, stdDev)
	}
}

// boxMuller returns two independent standard normal deviates.
func (gen *Generator) boxMuller() (z0, z1 float64) {
	// 1 - u is in (0, 1], so the log is finite.
	u1 := 1 - gen.backend.Next()
	u2 := gen.backend.Next()
	r := math.Sqrt(-2 * math.Log(u1))
	sin, cos := math.Sincos(2 * math.Pi * u2)
	return r * cos, r * sin
}
