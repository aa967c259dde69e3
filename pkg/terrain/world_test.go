package terrain

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestWorldRegenerateSwapsSet(t *testing.T) {
	w := NewWorld(NewGenerator(testLogger(), 2), testLogger(), smallParams())
	if w.Current() != nil {
		t.Fatal("world must start empty")
	}

	first, err := w.Regenerate(context.Background(), smallParams(), 10)
	if err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	if w.Current() != first || first.Generation != 1 {
		t.Fatalf("current = %p gen %d, want %p gen 1", w.Current(), first.Generation, first)
	}

	second, err := w.Reseed(context.Background())
	if err != nil {
		t.Fatalf("Reseed: %v", err)
	}
	if w.Current() != second || second.Generation != 2 {
		t.Fatalf("reseed did not publish a new set")
	}
	if second.Params != first.Params {
		t.Fatalf("reseed changed params: %+v", second.Params)
	}
}

func TestWorldKeepsPreviousSetOnError(t *testing.T) {
	w := NewWorld(NewGenerator(testLogger(), 2), testLogger(), smallParams())
	good, err := w.Regenerate(context.Background(), smallParams(), 10)
	if err != nil {
		t.Fatalf("Regenerate: %v", err)
	}

	bad := smallParams()
	bad.Octaves = 0
	if _, err := w.Update(context.Background(), bad); !errors.Is(err, ErrInvalidOctaves) {
		t.Fatalf("err = %v, want ErrInvalidOctaves", err)
	}
	if w.Current() != good {
		t.Fatal("failed regeneration replaced the live set")
	}
	if w.Params() != smallParams() {
		t.Fatalf("params changed after failure: %+v", w.Params())
	}
}

func TestWorldUpdateKeepsSeed(t *testing.T) {
	w := NewWorld(NewGenerator(testLogger(), 2), testLogger(), smallParams())
	if _, err := w.Regenerate(context.Background(), smallParams(), 31337); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}

	p := smallParams()
	p.Octaves = 5
	set, err := w.Update(context.Background(), p)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if set.Seed != 31337 || set.Params.Octaves != 5 {
		t.Fatalf("update produced seed %d octaves %d", set.Seed, set.Params.Octaves)
	}
}

func TestWorldReadersNeverSeePartialSets(t *testing.T) {
	w := NewWorld(NewGenerator(testLogger(), 2), testLogger(), smallParams())
	if _, err := w.Regenerate(context.Background(), smallParams(), 1); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	errs := make(chan string, 4)

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				set := w.Current()
				n := set.Params.NumChunks
				if len(set.Chunks) != n*n {
					errs <- "chunk count does not match params"
					return
				}
				for _, c := range set.Chunks {
					if c == nil || !c.Generated() {
						errs <- "observed chunk without geometry"
						return
					}
				}
			}
		}()
	}

	for i := 0; i < 6; i++ {
		p := smallParams()
		p.NumChunks = 1 + i%3
		if _, err := w.Regenerate(context.Background(), p, int64(i+2)); err != nil {
			t.Fatalf("Regenerate: %v", err)
		}
	}
	close(done)
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Fatal(msg)
	}
}
