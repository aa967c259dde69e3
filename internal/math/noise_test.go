package noise

import "testing"

func TestOctaveStep(t *testing.T) {
	tests := []struct {
		base, octave, want int
	}{
		{16, 0, 16},
		{16, 1, 8},
		{16, 4, 1},
		{16, 6, 1},
		{1, 0, 1},
		{0, 0, 1},
		{16, 80, 1},
	}
	for _, tt := range tests {
		if got := OctaveStep(tt.base, tt.octave); got != tt.want {
			t.Errorf("OctaveStep(%d, %d) = %d, want %d", tt.base, tt.octave, got, tt.want)
		}
	}
}

func TestDefaultBaseStep(t *testing.T) {
	tests := []struct {
		width, height, want int
	}{
		{4, 4, 2},
		{2048, 2048, 1024},
		{8, 4, 2},
		{3, 3, 1},
		{1, 1, 1},
		{0, 0, 1},
	}
	for _, tt := range tests {
		if got := DefaultBaseStep(tt.width, tt.height); got != tt.want {
			t.Errorf("DefaultBaseStep(%d, %d) = %d, want %d", tt.width, tt.height, got, tt.want)
		}
	}
}

func TestOctaveWeights(t *testing.T) {
	weights, total := OctaveWeights(3, 0.5)
	want := []float32{1, 0.5, 0.25}
	for i := range want {
		if weights[i] != want[i] {
			t.Fatalf("weights[%d] = %v, want %v", i, weights[i], want[i])
		}
	}
	if total != 1.75 {
		t.Fatalf("total = %v, want 1.75", total)
	}

	_, flat := OctaveWeights(4, 1)
	if flat != 4 {
		t.Fatalf("bias 1 total = %v, want 4", flat)
	}
}

func TestBilinear(t *testing.T) {
	if got := Bilinear(0, 0, 0, 0.5, 0.5, 0.5); got != 0.125 {
		t.Fatalf("centre blend = %v, want 0.125", got)
	}
	if got := Bilinear(0.25, 0.5, 0.75, 1, 0, 0); got != 0.25 {
		t.Fatalf("corner = %v, want 0.25", got)
	}
	if got := Bilinear(0.25, 0.5, 0.75, 1, 1, 1); got != 1 {
		t.Fatalf("opposite corner = %v, want 1", got)
	}
}

func TestNewRandFixedSeed(t *testing.T) {
	a, seedA := NewRand(42)
	b, seedB := NewRand(42)
	if seedA != 42 || seedB != 42 {
		t.Fatalf("fixed seed not preserved: %d %d", seedA, seedB)
	}
	for i := 0; i < 8; i++ {
		if a.Float32() != b.Float32() {
			t.Fatalf("streams diverged at %d", i)
		}
	}

	if _, seed := NewRand(0); seed == 0 {
		t.Fatal("zero seed must be replaced with a clock seed")
	}
}
