package terrain

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"terraingen/internal/logger"
	noise "terraingen/internal/math"
	"terraingen/internal/util"
)

// ChunkSet is one complete generated world. It is never modified after
// Generate returns it.
type ChunkSet struct {
	Params     Params
	Seed       int64
	Generation uint64
	Chunks     []*Chunk
}

// Stats summarises a chunk set for logging.
func (s *ChunkSet) Stats() (vertices, triangles int) {
	for _, c := range s.Chunks {
		if m := c.Mesh(); m != nil {
			vertices += m.VertexCount()
			triangles += m.TriangleCount()
		}
	}
	return vertices, triangles
}

// Generator runs the seed -> noise -> partition -> mesh pipeline.
type Generator struct {
	logger  *logger.Logger
	workers int
}

// NewGenerator creates a generator. workers <= 0 uses GOMAXPROCS.
func NewGenerator(log *logger.Logger, workers int) *Generator {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Generator{
		logger:  log,
		workers: workers,
	}
}

// Workers returns the concurrency limit for noise rows and chunk meshing.
func (g *Generator) Workers() int {
	return g.workers
}

// Generate builds a new world. seed == 0 draws a seed from the clock; the
// seed actually used is recorded on the returned set.
func (g *Generator) Generate(ctx context.Context, p Params, seed int64) (*ChunkSet, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	defer util.TimeTrack(g.logger, time.Now(), "generate")

	rng, seed := noise.NewRand(seed)

	seedField, err := g.stage("seed field", func() (*Heightfield, error) {
		return GenerateSeed(rng, p.ChunkSize, p.NumChunks)
	})
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	world, err := g.stage("synthesize", func() (*Heightfield, error) {
		return synthesize(ctx, seedField, p.Octaves, p.Bias, p.BaseStep, g.workers)
	})
	if err != nil {
		return nil, err
	}

	start := time.Now()
	slices, err := Partition(world, p.NumChunks, p.ChunkSize)
	if err != nil {
		return nil, fmt.Errorf("partition: %w", err)
	}
	util.TimeTrack(g.logger, start, "partition")

	chunks, err := g.buildChunks(ctx, slices, p.ChunkSize)
	if err != nil {
		return nil, err
	}

	set := &ChunkSet{Params: p, Seed: seed, Chunks: chunks}
	if g.logger != nil {
		vertices, triangles := set.Stats()
		g.logger.Infof("generated %d chunks (%dx%d cells, %d octaves, bias %.2f, seed %d): %d vertices, %d triangles",
			len(chunks), p.WorldSide(), p.WorldSide(), p.Octaves, p.Bias, seed, vertices, triangles)
	}
	return set, nil
}

func (g *Generator) stage(name string, fn func() (*Heightfield, error)) (*Heightfield, error) {
	defer util.TimeTrack(g.logger, time.Now(), name)
	field, err := fn()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return field, nil
}

// buildChunks meshes every slice on a bounded errgroup. Output order
// follows the slice order.
func (g *Generator) buildChunks(ctx context.Context, slices []Slice, chunkSize int) ([]*Chunk, error) {
	defer util.TimeTrack(g.logger, time.Now(), "mesh")

	chunks := make([]*Chunk, len(slices))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)

	for i, s := range slices {
		i, s := i, s
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			chunk := NewChunk(s.Coord, ChunkOrigin(s.Coord), chunkSize, chunkSize)
			if err := chunk.GenerateTerrain(s.Field); err != nil {
				return err
			}
			chunks[i] = chunk
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return chunks, nil
}
