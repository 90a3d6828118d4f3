package evo

// HallOfFame is a persistent record of the best solutions observed across
// all generations, independent of the live population.
type HallOfFame interface {
	Record(generation []*Cached)
}

// BestN keeps up to Max entries, sorted descending by collapsed fitness.
type BestN struct {
	Max  int
	best []*Cached
}

var _ HallOfFame = (*BestN)(nil)

// NewBestN creates a BestN hall of fame retaining at most max entries.
func NewBestN(max int) *BestN {
	return &BestN{Max: max, best: make([]*Cached, 0, max)}
}

// Entries returns the current sorted (descending) snapshot. Callers must
// not mutate the returned slice.
func (b *BestN) Entries() []*Cached { return b.best }

// Record inserts every member of generation that ranks among the top Max
// by collapsed fitness, keeping the stored entries independent clones.
// Insertion position is found by a linear scan over the existing sorted
// entries; ties may land before or after existing equal-fitness entries
// (spec.md §4.6: unspecified but consistent).
func (b *BestN) Record(generation []*Cached) {
	for _, c := range generation {
		b.insert(c)
	}
	if len(b.best) > b.Max {
		b.best = b.best[:b.Max]
	}
}

func (b *BestN) insert(c *Cached) {
	fitness := c.Collapsed()

	if len(b.best) >= b.Max && len(b.best) > 0 && fitness <= b.best[len(b.best)-1].Collapsed() {
		return
	}

	pos := len(b.best)
	for i, entry := range b.best {
		if fitness > entry.Collapsed() {
			pos = i
			break
		}
	}

	clone := c.Clone()
	b.best = append(b.best, nil)
	copy(b.best[pos+1:], b.best[pos:])
	b.best[pos] = clone

	if len(b.best) > b.Max {
		b.best = b.best[:b.Max]
	}
}

// BestPareto keeps the globally non-dominated set observed across all
// generations. Record is monotone: stored members can only be evicted by a
// newcomer that strictly dominates them, never by mere recency.
type BestPareto struct {
	front []*Cached
}

var _ HallOfFame = (*BestPareto)(nil)

// NewBestPareto creates an empty Pareto hall of fame.
func NewBestPareto() *BestPareto {
	return &BestPareto{}
}

// Front returns the current non-dominated set. Callers must not mutate the
// returned slice.
func (b *BestPareto) Front() []*Cached { return b.front }

// Record appends the incoming generation's rank-0 members to the stored
// front, then re-ranks the stored front and keeps only its own rank-0
// members — append-then-prune, with no graph of dominance links to
// maintain (spec.md §4.6, §9).
func (b *BestPareto) Record(generation []*Cached) {
	if len(generation) > 0 {
		genRanks, _ := RankNondominated(generation)
		for i, r := range genRanks {
			if r == 0 {
				b.front = append(b.front, generation[i].Clone())
			}
		}
	}

	if len(b.front) == 0 {
		return
	}

	ranks, _ := RankNondominated(b.front)
	kept := b.front[:0]
	for i, r := range ranks {
		if r == 0 {
			kept = append(kept, b.front[i])
		}
	}
	b.front = kept
}
