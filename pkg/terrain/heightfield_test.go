package terrain

import (
	"errors"
	"math"
	"testing"
)

func TestNewHeightfield(t *testing.T) {
	h, err := NewHeightfield(3, 2)
	if err != nil {
		t.Fatalf("NewHeightfield: %v", err)
	}
	if len(h.Data) != 6 {
		t.Fatalf("len(Data) = %d, want 6", len(h.Data))
	}

	for _, dims := range [][2]int{{0, 2}, {3, 0}, {-1, -1}} {
		if _, err := NewHeightfield(dims[0], dims[1]); !errors.Is(err, ErrInvalidParams) {
			t.Fatalf("NewHeightfield(%d, %d) err = %v", dims[0], dims[1], err)
		}
	}
}

func TestHeightfieldAccessors(t *testing.T) {
	h, _ := NewHeightfield(3, 2)
	h.Set(2, 1, 0.5)
	h.Set(0, 0, -0.25)

	if h.At(2, 1) != 0.5 || h.Data[5] != 0.5 {
		t.Fatalf("Set/At row-major mismatch: %v", h.Data)
	}
	if row := h.Row(1); len(row) != 3 || row[2] != 0.5 {
		t.Fatalf("Row(1) = %v", row)
	}
	if lo, hi := h.Range(); lo != -0.25 || hi != 0.5 {
		t.Fatalf("Range = %v, %v", lo, hi)
	}

	c := h.Clone()
	c.Set(2, 1, 9)
	if h.At(2, 1) != 0.5 {
		t.Fatal("Clone shares storage")
	}
}

func TestHeightfieldAtPanicsOutOfRange(t *testing.T) {
	h, _ := NewHeightfield(2, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("At(2, 0) should panic")
		}
	}()
	h.At(2, 0)
}

func TestHeightfieldFinite(t *testing.T) {
	h, _ := NewHeightfield(2, 1)
	if !h.Finite() {
		t.Fatal("zero field reported non-finite")
	}
	h.Data[1] = float32(math.Inf(-1))
	if h.Finite() {
		t.Fatal("-Inf not detected")
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		want error
	}{
		{"ok", Params{ChunkSize: 256, NumChunks: 8, Octaves: 5, Bias: 0.5}, nil},
		{"largest world", Params{ChunkSize: 512, NumChunks: 16, Octaves: 10, Bias: 1}, nil},
		{"negative chunk size", Params{ChunkSize: -1, NumChunks: 1, Octaves: 1, Bias: 1}, ErrInvalidParams},
		{"overflowing product", Params{ChunkSize: 1 << 40, NumChunks: 1 << 40, Octaves: 1, Bias: 1}, ErrWorldTooLarge},
		{"nan bias", Params{ChunkSize: 4, NumChunks: 1, Octaves: 1, Bias: float32(math.NaN())}, ErrInvalidBias},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
