package terrain

import (
	"context"
	"sync"
	"sync/atomic"

	"terraingen/internal/logger"
)

// World holds the live chunk set. Readers call Current from any goroutine;
// regeneration builds a complete replacement and publishes it with a
// single atomic store, so a reader sees either the old or the new set.
type World struct {
	gen    *Generator
	logger *logger.Logger

	current    atomic.Pointer[ChunkSet]
	generation atomic.Uint64

	mu     sync.Mutex // serialises regenerations
	params Params
}

// NewWorld creates an empty world using p for the first generation.
func NewWorld(gen *Generator, log *logger.Logger, p Params) *World {
	return &World{
		gen:    gen,
		logger: log,
		params: p,
	}
}

// Current returns the live chunk set, or nil before the first generation.
func (w *World) Current() *ChunkSet {
	return w.current.Load()
}

// Params returns the parameters of the last successful generation, or the
// initial parameters if none has succeeded yet.
func (w *World) Params() Params {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.params
}

// Regenerate builds a world from p and seed and swaps it in. On error the
// previous set stays current.
func (w *World) Regenerate(ctx context.Context, p Params, seed int64) (*ChunkSet, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	set, err := w.gen.Generate(ctx, p, seed)
	if err != nil {
		if w.logger != nil {
			w.logger.Errorf("regeneration rejected, keeping previous terrain: %v", err)
		}
		return nil, err
	}

	set.Generation = w.generation.Add(1)
	w.params = p
	w.current.Store(set)
	return set, nil
}

// Reseed regenerates with the current parameters and a fresh clock seed.
func (w *World) Reseed(ctx context.Context) (*ChunkSet, error) {
	return w.Regenerate(ctx, w.Params(), 0)
}

// Update regenerates with new parameters, keeping the current seed so only
// the parameter change is visible.
func (w *World) Update(ctx context.Context, p Params) (*ChunkSet, error) {
	var seed int64
	if cur := w.Current(); cur != nil {
		seed = cur.Seed
	}
	return w.Regenerate(ctx, p, seed)
}
