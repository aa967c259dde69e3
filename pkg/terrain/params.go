package terrain

import (
	"fmt"
	"math"
)

// MaxWorldSide bounds chunkSize*numChunks. The largest configurable world
// (512 cells x 16 chunks) sits exactly on the limit.
const MaxWorldSide = 8192

// Params are the generation inputs for one world.
type Params struct {
	ChunkSize int     // cells per chunk edge
	NumChunks int     // chunks per world edge
	Octaves   int     // fractal layers, >= 1
	Bias      float32 // amplitude falloff per octave, in (0, 1] for the usual look
	BaseStep  int     // coarsest sample spacing; <= 0 picks half the world side
}

// WorldSide is the number of cells along each world edge.
func (p Params) WorldSide() int {
	return p.ChunkSize * p.NumChunks
}

// Validate rejects parameters that cannot produce a world.
func (p Params) Validate() error {
	if p.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size %d", ErrInvalidParams, p.ChunkSize)
	}
	if p.NumChunks <= 0 {
		return fmt.Errorf("%w: chunk count %d", ErrInvalidParams, p.NumChunks)
	}
	if p.ChunkSize > MaxWorldSide || p.NumChunks > MaxWorldSide || p.WorldSide() > MaxWorldSide {
		return fmt.Errorf("%w: %d x %d cells exceeds %d", ErrWorldTooLarge, p.ChunkSize, p.NumChunks, MaxWorldSide)
	}
	if err := validateOctaves(p.Octaves, p.Bias); err != nil {
		return err
	}
	return nil
}

func validateOctaves(octaves int, bias float32) error {
	if octaves < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidOctaves, octaves)
	}
	b := float64(bias)
	if math.IsNaN(b) || math.IsInf(b, 0) || b <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidBias, bias)
	}
	return nil
}
