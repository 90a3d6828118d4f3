package evo

import "github.com/go-eviolite/eviolite/pkg/rng"

// VarAnd applies in-place crossover-then-mutate variation to pop, per
// spec.md §4.4. For every index i from 0 to len(pop)-1: if i > 0 and a
// Bernoulli(cxpb) trial succeeds, crossover is applied between pop[i-1] and
// pop[i]; independently, if a Bernoulli(mutpb) trial succeeds, pop[i] is
// mutated. Both operations invalidate the affected caches through the
// Cached wrapper.
//
// The loop starts at i == 0 and guards the crossover with i > 0, rather
// than starting at i == 1 — spec.md §9's third Open Question notes both
// forms appear in the original source and are semantically identical once
// the i == 0 case is skipped; this is the form adopted here.
func VarAnd(pop []*Cached, cxpb, mutpb float64) {
	r := rng.Default()
	for i := 0; i < len(pop); i++ {
		if i > 0 && r.Bool(cxpb) {
			pop[i-1].CrossoverWith(pop[i])
		}
		if r.Bool(mutpb) {
			pop[i].Mutate()
		}
	}
}

// GenOr produces n offspring from pop by, for each one, independently
// drawing u in [0,1) and:
//   - u < cxpb: sampling 2 distinct parents without replacement, cloning
//     them, crossing them over, and keeping the first clone as the
//     offspring;
//   - cxpb <= u < cxpb+mutpb: sampling 1 parent with replacement, cloning
//     it, and mutating the clone;
//   - otherwise: sampling 1 parent with replacement and cloning it verbatim.
//
// Panics if cxpb+mutpb > 1.
func GenOr(pop []*Cached, n int, cxpb, mutpb float64) []*Cached {
	if cxpb+mutpb > 1 {
		panic("evo: GenOr requires cxpb + mutpb <= 1")
	}

	r := rng.Default()
	offspring := make([]*Cached, n)
	for i := 0; i < n; i++ {
		u := r.Float64()
		switch {
		case u < cxpb:
			idx := r.SampleIndices(len(pop), 2)
			a := pop[idx[0]].Clone()
			b := pop[idx[1]].Clone()
			a.CrossoverWith(b)
			offspring[i] = a
		case u < cxpb+mutpb:
			parent := pop[r.Intn(len(pop))].Clone()
			parent.Mutate()
			offspring[i] = parent
		default:
			offspring[i] = pop[r.Intn(len(pop))].Clone()
		}
	}
	return offspring
}
