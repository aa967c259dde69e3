package terrain

import "fmt"

// Coord identifies a chunk in the chunk grid.
type Coord struct {
	X int
	Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Slice is one chunk's private copy of the world heightfield.
type Slice struct {
	Coord Coord
	Field *Heightfield
}

// Partition cuts world into numChunks x numChunks independent
// chunkSize x chunkSize copies. Local (row i, column j) of chunk (cx, cy)
// is world (row cy*chunkSize+i, column cx*chunkSize+j). Slices are
// returned with cx in the outer loop.
func Partition(world *Heightfield, numChunks, chunkSize int) ([]Slice, error) {
	if numChunks <= 0 || chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size %d, chunk count %d", ErrInvalidParams, chunkSize, numChunks)
	}
	if err := world.validate(); err != nil {
		return nil, err
	}
	side := numChunks * chunkSize
	if world.Width != side || world.Height != side {
		return nil, fmt.Errorf("%w: world is %dx%d, want %dx%d", ErrDimensionMismatch, world.Width, world.Height, side, side)
	}

	slices := make([]Slice, 0, numChunks*numChunks)
	for cx := 0; cx < numChunks; cx++ {
		for cy := 0; cy < numChunks; cy++ {
			field := &Heightfield{
				Width:  chunkSize,
				Height: chunkSize,
				Data:   make([]float32, chunkSize*chunkSize),
			}
			for i := 0; i < chunkSize; i++ {
				src := (cy*chunkSize+i)*side + cx*chunkSize
				copy(field.Data[i*chunkSize:(i+1)*chunkSize], world.Data[src:src+chunkSize])
			}
			slices = append(slices, Slice{Coord: Coord{X: cx, Y: cy}, Field: field})
		}
	}

	return slices, nil
}
