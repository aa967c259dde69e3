package noise

import (
	"math/rand"
	"time"

	"terraingen/internal/util"
)

// NewRand returns a generator for the given seed. A zero seed means
// "pick one from the clock", matching the behaviour of the config file.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// DefaultBaseStep is the coarsest sample spacing used when none is
// configured: half the shorter side, the widest grid that still lands on an
// interior sample of a field with a zeroed border.
func DefaultBaseStep(width, height int) int {
	side := util.MinInt(width, height)
	if side < 2 {
		return 1
	}
	return side / 2
}

// OctaveStep returns the sample spacing for octave o.
func OctaveStep(baseStep, o int) int {
	if o >= 63 {
		return 1
	}
	step := baseStep >> o
	if step < 1 {
		return 1
	}
	return step
}

// OctaveWeights returns the amplitude bias^o of each octave and their sum.
func OctaveWeights(octaves int, bias float32) ([]float32, float32) {
	weights := make([]float32, octaves)
	amplitude := float32(1)
	var total float32
	for o := range weights {
		weights[o] = amplitude
		total += amplitude
		amplitude *= bias
	}
	return weights, total
}

// Bilinear blends four corner samples. tx moves from the *0 to the *1 column,
// ty from the top row (s00, s10) to the bottom row (s01, s11).
func Bilinear(s00, s10, s01, s11, tx, ty float32) float32 {
	top := util.Lerp(s00, s10, tx)
	bottom := util.Lerp(s01, s11, tx)
	return util.Lerp(top, bottom, ty)
}
