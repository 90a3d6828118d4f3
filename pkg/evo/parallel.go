package evo

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvaluateAll runs a data-parallel "evaluate all" pass over pop, the only
// point in the engine where work is dispatched onto a worker pool. Each
// goroutine is assigned a single, distinct population index and calls
// Evaluate on it — the engine guarantees disjointness by construction, so
// no two workers ever touch the same Cached's slot (spec.md §5).
//
// workers bounds concurrency; a value <= 0 defaults to GOMAXPROCS. A panic
// inside any one solution's Evaluate propagates out of Wait, aborting the
// rest of the pass with no partial mutation beyond whichever slots had
// already been filled (spec.md §7.3: evaluation failures have no
// partial-failure recovery).
func EvaluateAll(ctx context.Context, pop []*Cached, workers int) error {
	if len(pop) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, workers)

	for _, c := range pop {
		c := c
		select {
		case sem <- struct{}{}:
		case <-gctx.Done():
			if err := g.Wait(); err != nil {
				return err
			}
			return gctx.Err()
		}
		g.Go(func() error {
			defer func() { <-sem }()
			c.Evaluate()
			return gctx.Err()
		})
	}

	return g.Wait()
}
