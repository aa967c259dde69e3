package terrain

import (
	"fmt"
	"math/rand"
)

// GenerateSeed fills an N x N field (N = chunkSize*numChunks) with uniform
// samples in [0,1) drawn from rng, then zeroes the outer border so the
// synthesized terrain meets the world edge at height 0.
func GenerateSeed(rng *rand.Rand, chunkSize, numChunks int) (*Heightfield, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidParams)
	}
	if chunkSize <= 0 || numChunks <= 0 {
		return nil, fmt.Errorf("%w: chunk size %d, chunk count %d", ErrInvalidParams, chunkSize, numChunks)
	}
	if chunkSize > MaxWorldSide || numChunks > MaxWorldSide || chunkSize*numChunks > MaxWorldSide {
		return nil, fmt.Errorf("%w: %d x %d cells exceeds %d", ErrWorldTooLarge, chunkSize, numChunks, MaxWorldSide)
	}

	n := chunkSize * numChunks
	field, err := NewHeightfield(n, n)
	if err != nil {
		return nil, err
	}

	for i := range field.Data {
		field.Data[i] = rng.Float32()
	}

	zeroBorder(field)
	return field, nil
}

func zeroBorder(field *Heightfield) {
	last := field.Height - 1
	for x := 0; x < field.Width; x++ {
		field.Data[x] = 0
		field.Data[last*field.Width+x] = 0
	}
	for y := 0; y < field.Height; y++ {
		field.Data[y*field.Width] = 0
		field.Data[y*field.Width+field.Width-1] = 0
	}
}
