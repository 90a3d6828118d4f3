package evo

// Selector reduces a population to n winners, possibly with duplicates.
// Select is expected to mutate pop in place (via RetainIndices) and return
// the resulting slice, mirroring the original's `fn select(&self, n, &mut
// Vec<T>)`.
type Selector interface {
	Select(pop []*Cached, n int) []*Cached
}

// Stochastic marks a Selector as non-deterministic. Simple requires a
// stochastic selector (selecting N of N deterministically would be a
// no-op); this is encoded as a static capability via a marker interface
// with a single unexported method rather than a runtime check, so that passing e.g. a bare
// top-K/elite selector to Simple is a compile error instead of a silent
// misuse (spec.md §9, "Selector capability flags").
type Stochastic interface {
	stochastic()
}

// FindBest returns the index of the population member with the highest
// collapsed fitness. Assumes pop is non-empty and every member has already
// been evaluated.
func FindBest(pop []*Cached) int {
	best := 0
	for i := 1; i < len(pop); i++ {
		if pop[i].Collapsed() > pop[best].Collapsed() {
			best = i
		}
	}
	return best
}

func cloneCached(c *Cached) *Cached { return c.Clone() }
