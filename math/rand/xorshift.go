package rand

import (
	"math"
)

const xorshiftScale = 1.0 / (float64(math.MaxUint32) + 1)

// xorshiftGenerator is Marsaglia's xor128.
type xorshiftGenerator struct {
	w, x, y, z uint32
}

func (gen *xorshiftGenerator) Init(seed uint64) {
	gen.x = 123456789
	gen.y = 362436069
	gen.z = 521288629 ^ uint32(seed>>32)
	gen.w = uint32(seed)
	if gen.w == 0 && gen.z == 0 {
		gen.w = 88675123
	}
}

func (gen *xorshiftGenerator) step() uint32 {
	t := gen.x ^ (gen.x << 11)
	gen.x, gen.y, gen.z = gen.y, gen.z, gen.w
	gen.w = gen.w ^ (gen.w >> 19) ^ (t ^ (t >> 8))
	return gen.w
}

// Next is in [0, 1).
func (gen *xorshiftGenerator) Next() float64 {
	return float64(gen.step()) * xorshiftScale
}

func (gen *xorshiftGenerator) NextSequence(target []float64) {
	for i := range target {
		target[i] = float64(gen.step()) * xorshiftScale
	}
}
