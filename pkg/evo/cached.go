package evo

import "sync"

// Cached wraps a Solution with a memoized fitness slot. Evaluating the
// fitness of a solution is nearly always the most computationally expensive
// part of an evolutionary run; Cached guarantees that computation happens
// at most once per distinct logical state of the wrapped solution, no
// matter how many goroutines call Evaluate concurrently.
//
// The slot is protected by a plain sync.RWMutex with double-checked
// locking, rather than atomic.Value or a sync.Once: Fitness is an
// interface, so storing it atomically would still require boxing through a
// mutex-guarded path on first write, and the engine's own concurrency
// model (the evaluate-all barrier in parallel.go) already guarantees that
// no two goroutines ever write to the same Cached's slot at once. The
// mutex exists to make concurrent *reads* during that barrier safe, not to
// arbitrate contention that can't happen by construction.
type Cached struct {
	mu      sync.RWMutex
	inner   Solution
	fitness Fitness // nil until filled
}

// NewCached wraps an existing solution with an empty fitness slot.
func NewCached(inner Solution) *Cached {
	return &Cached{inner: inner}
}

// Generate builds a Cached around a freshly generated solution.
func Generate(gen Generator) *Cached {
	return &Cached{inner: gen()}
}

// Evaluate returns the cached fitness if present, else computes it, stores
// it, and returns it.
func (c *Cached) Evaluate() Fitness {
	c.mu.RLock()
	if c.fitness != nil {
		f := c.fitness
		c.mu.RUnlock()
		return f
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fitness != nil {
		return c.fitness
	}
	f := c.inner.Evaluate()
	c.fitness = f
	return f
}

// Collapsed is a convenience wrapper returning Evaluate().Collapse().
func (c *Cached) Collapsed() float64 {
	return c.Evaluate().Collapse()
}

// Solution returns the wrapped solution, for read-only inspection.
func (c *Cached) Solution() Solution {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner
}

// CrossoverWith recombines the receiver and other's inner solutions in
// place, then invalidates both caches.
func (c *Cached) CrossoverWith(other *Cached) {
	c.mu.Lock()
	defer c.mu.Unlock()
	other.mu.Lock()
	defer other.mu.Unlock()

	c.inner.CrossoverWith(other.inner)
	c.fitness = nil
	other.fitness = nil
}

// Mutate perturbs the inner solution in place, then invalidates the cache.
func (c *Cached) Mutate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Mutate()
	c.fitness = nil
}

// Clone duplicates both the inner solution and the current slot contents.
// A clone with a filled slot is consistent because Evaluate is pure.
func (c *Cached) Clone() *Cached {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return &Cached{
		inner:   c.inner.Clone(),
		fitness: c.fitness,
	}
}

// IntoInner consumes the wrapper, returning the solution it contained and
// the fitness value that was cached, if any.
func (c *Cached) IntoInner() (Solution, Fitness) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner, c.fitness
}

// ClearCache deletes any cached fitness value, returning what was cached, if
// anything. Exposed for callers that must force re-evaluation (e.g. a
// Solution whose evaluation depends on external state); ordinary variation
// should never need it, since CrossoverWith/Mutate already invalidate the
// slot.
func (c *Cached) ClearCache() Fitness {
	c.mu.Lock()
	defer c.mu.Unlock()
	old := c.fitness
	c.fitness = nil
	return old
}

// weightedAt extracts the m-th weighted objective from a Cached solution
// whose fitness is a MultiObjective, evaluating it first if the cache is
// empty. Panics if the fitness isn't multi-objective; callers (NSGA-II,
// crowding distance) only ever invoke this after an evaluate-all pass.
func weightedAt(c *Cached, m int) float64 {
	mo, ok := c.Evaluate().(MultiObjective)
	if !ok {
		panic("evo: weightedAt called on a non-MultiObjective fitness")
	}
	return mo.At(m)
}

func weightedVector(c *Cached) []float64 {
	mo, ok := c.Evaluate().(MultiObjective)
	if !ok {
		panic("evo: weightedVector called on a non-MultiObjective fitness")
	}
	return mo.Weighted
}
