package evo

import "github.com/go-eviolite/eviolite/pkg/rng"

// Tournament is a stochastic, single-objective selector. Select(pop, n)
// runs n independent rounds; each round samples round_size distinct
// indices uniformly without replacement and keeps the one whose fitness
// (collapsed to scalar) compares greatest, ties broken by first-seen. The
// winners, which may contain duplicates, become the retained population.
type Tournament struct {
	roundSize int
}

var _ Selector = Tournament{}
var _ Stochastic = Tournament{}

// NewTournament creates a Tournament with the given round size. Panics if
// roundSize is 0, since a round with no participants has no winner.
func NewTournament(roundSize int) Tournament {
	if roundSize == 0 {
		panic("evo: Tournament needs at least one participant per round")
	}
	return Tournament{roundSize: roundSize}
}

// RoundSize returns the number of participants sampled per round.
func (t Tournament) RoundSize() int { return t.roundSize }

func (Tournament) stochastic() {}

// Select runs n rounds of tournament selection and retains the n winners.
// Panics if pop has fewer than RoundSize() members.
func (t Tournament) Select(pop []*Cached, n int) []*Cached {
	winners := make([]int, n)
	for i := 0; i < n; i++ {
		winners[i] = t.roundIdx(pop)
	}
	return RetainIndices(pop, winners, cloneCached)
}

// roundIdx runs a single tournament round and returns the winner's index
// into pop.
func (t Tournament) roundIdx(pop []*Cached) int {
	participants := rng.Default().SampleIndices(len(pop), t.roundSize)
	best := participants[0]
	for _, idx := range participants[1:] {
		if pop[idx].Collapsed() > pop[best].Collapsed() {
			best = idx
		}
	}
	return best
}
