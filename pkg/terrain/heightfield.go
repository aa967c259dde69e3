package terrain

import (
	"fmt"
	"math"
)

// Heightfield is a row-major 2D scalar field. Width and Height always
// describe len(Data).
type Heightfield struct {
	Width  int
	Height int
	Data   []float32
}

// NewHeightfield allocates a zeroed width x height field.
func NewHeightfield(width, height int) (*Heightfield, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: heightfield %dx%d", ErrInvalidParams, width, height)
	}
	return &Heightfield{
		Width:  width,
		Height: height,
		Data:   make([]float32, width*height),
	}, nil
}

// At returns the sample at column x, row y. It panics on out-of-range
// coordinates, since those are programming errors.
func (h *Heightfield) At(x, y int) float32 {
	h.mustContain(x, y)
	return h.Data[y*h.Width+x]
}

// Set stores v at column x, row y.
func (h *Heightfield) Set(x, y int, v float32) {
	h.mustContain(x, y)
	h.Data[y*h.Width+x] = v
}

// Contains reports whether (x, y) lies inside the field.
func (h *Heightfield) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < h.Width && y < h.Height
}

func (h *Heightfield) mustContain(x, y int) {
	if !h.Contains(x, y) {
		panic(fmt.Sprintf("terrain: (%d,%d) outside %dx%d heightfield", x, y, h.Width, h.Height))
	}
}

// Row returns row y as a sub-slice of Data.
func (h *Heightfield) Row(y int) []float32 {
	h.mustContain(0, y)
	return h.Data[y*h.Width : (y+1)*h.Width]
}

// Clone returns an independent copy.
func (h *Heightfield) Clone() *Heightfield {
	data := make([]float32, len(h.Data))
	copy(data, h.Data)
	return &Heightfield{Width: h.Width, Height: h.Height, Data: data}
}

// Range returns the minimum and maximum sample.
func (h *Heightfield) Range() (min, max float32) {
	if len(h.Data) == 0 {
		return 0, 0
	}
	min, max = h.Data[0], h.Data[0]
	for _, v := range h.Data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Finite reports whether every sample is a finite number.
func (h *Heightfield) Finite() bool {
	for _, v := range h.Data {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return false
		}
	}
	return true
}

func (h *Heightfield) validate() error {
	if h == nil {
		return fmt.Errorf("%w: nil heightfield", ErrDimensionMismatch)
	}
	if h.Width <= 0 || h.Height <= 0 || len(h.Data) != h.Width*h.Height {
		return fmt.Errorf("%w: %dx%d with %d samples", ErrDimensionMismatch, h.Width, h.Height, len(h.Data))
	}
	return nil
}
