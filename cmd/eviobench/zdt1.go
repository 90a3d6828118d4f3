package main

import (
	"math"

	"github.com/go-eviolite/eviolite/pkg/arrayvar"
	"github.com/go-eviolite/eviolite/pkg/evo"
	"github.com/go-eviolite/eviolite/pkg/rng"
)

// zdt1Solution is the classic ZDT1 bi-objective benchmark: variables in
// [0, 1]^n, Pareto-optimal front is convex. Both objectives are minimized
// in the textbook formulation; since the engine's dominance convention is
// "higher is better", both are negated before being wrapped as a
// MultiObjective, so maximizing here is equivalent to minimizing the
// textbook f1/f2.
type zdt1Solution struct {
	values []float64
}

var _ evo.Solution = (*zdt1Solution)(nil)

func newZDT1Solution(dimensions int) evo.Solution {
	values := make([]float64, dimensions)
	r := rng.Default()
	for i := range values {
		values[i] = r.Float64()
	}
	return &zdt1Solution{values: values}
}

func (z *zdt1Solution) f1() float64 {
	return z.values[0]
}

func (z *zdt1Solution) g() float64 {
	if len(z.values) == 1 {
		return 1
	}
	var sum float64
	for _, v := range z.values[1:] {
		sum += v
	}
	return 1 + 9*sum/float64(len(z.values)-1)
}

func (z *zdt1Solution) f2() float64 {
	g := z.g()
	return g * (1 - math.Sqrt(z.f1()/g))
}

func (z *zdt1Solution) Evaluate() evo.Fitness {
	return evo.Unweighted([]float64{-z.f1(), -z.f2()})
}

func (z *zdt1Solution) CrossoverWith(other evo.Solution) {
	o := other.(*zdt1Solution)
	arrayvar.Uniform(z.values, o.values)
	clampUnit(z.values)
	clampUnit(o.values)
}

func (z *zdt1Solution) Mutate() {
	arrayvar.Gaussian(z.values, 1.0/float64(len(z.values)), 0.05)
	clampUnit(z.values)
}

func (z *zdt1Solution) Clone() evo.Solution {
	cp := make([]float64, len(z.values))
	copy(cp, z.values)
	return &zdt1Solution{values: cp}
}

func clampUnit(values []float64) {
	for i, v := range values {
		switch {
		case v < 0:
			values[i] = 0
		case v > 1:
			values[i] = 1
		}
	}
}
