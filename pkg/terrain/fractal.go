package terrain

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	noise "terraingen/internal/math"
	"terraingen/internal/util"
)

// Synthesize layers octaves of bilinearly smoothed seed samples into a new
// field of the same size. Octave o samples every max(1, baseStep>>o) cells
// and is weighted by bias^o; the sum is divided by the total weight so the
// output stays inside the seed's value range whatever the octave count.
//
// baseStep <= 0 selects half the shorter side, so the coarsest octave spans
// the whole field and each extra octave adds a finer layer.
func Synthesize(seed *Heightfield, octaves int, bias float32, baseStep int) (*Heightfield, error) {
	return synthesize(context.Background(), seed, octaves, bias, baseStep, runtime.GOMAXPROCS(0))
}

func synthesize(ctx context.Context, seed *Heightfield, octaves int, bias float32, baseStep, workers int) (*Heightfield, error) {
	if err := seed.validate(); err != nil {
		return nil, err
	}
	if err := validateOctaves(octaves, bias); err != nil {
		return nil, err
	}
	if baseStep <= 0 {
		baseStep = noise.DefaultBaseStep(seed.Width, seed.Height)
	}

	weights, total := noise.OctaveWeights(octaves, bias)
	if math.IsInf(float64(total), 0) || math.IsNaN(float64(total)) {
		return nil, fmt.Errorf("%w: weight sum overflows for bias %v over %d octaves", ErrInvalidBias, bias, octaves)
	}

	steps := make([]int, octaves)
	for o := range steps {
		steps[o] = noise.OctaveStep(baseStep, o)
	}

	out, err := NewHeightfield(seed.Width, seed.Height)
	if err != nil {
		return nil, err
	}

	if workers < 1 {
		workers = 1
	}
	band := (seed.Height + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < seed.Height; start += band {
		y0, y1 := start, util.MinInt(start+band, seed.Height)
		g.Go(func() error {
			for y := y0; y < y1; y++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				row := out.Data[y*out.Width : (y+1)*out.Width]
				for x := range row {
					var acc float32
					for o, step := range steps {
						acc += sampleOctave(seed, x, y, step) * weights[o]
					}
					row[x] = acc / total
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// sampleOctave blends the four seed samples around (x, y) on a grid of the
// given step. Near the far edge the upper corner is clamped to the last
// row/column and the weight is measured over the shortened span, so the
// blend still reaches the edge sample.
func sampleOctave(seed *Heightfield, x, y, step int) float32 {
	x0 := (x / step) * step
	y0 := (y / step) * step
	x1 := util.MinInt(x0+step, seed.Width-1)
	y1 := util.MinInt(y0+step, seed.Height-1)

	w := seed.Width
	return noise.Bilinear(
		seed.Data[y0*w+x0], seed.Data[y0*w+x1],
		seed.Data[y1*w+x0], seed.Data[y1*w+x1],
		spanWeight(x, x0, x1), spanWeight(y, y0, y1),
	)
}

// spanWeight is the position of v between lo and hi in [0,1].
func spanWeight(v, lo, hi int) float32 {
	if hi <= lo {
		return 0
	}
	return float32(v-lo) / float32(hi-lo)
}
