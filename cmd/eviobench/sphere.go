package main

import (
	"github.com/go-eviolite/eviolite/pkg/arrayvar"
	"github.com/go-eviolite/eviolite/pkg/evo"
	"github.com/go-eviolite/eviolite/pkg/rng"
)

// sphereSolution is a real-valued vector scored by the negated sphere
// function (sum of squares), so that the engine's "higher collapsed
// fitness is better" convention drives the search toward the origin.
type sphereSolution struct {
	values []float64
}

var _ evo.Solution = (*sphereSolution)(nil)

func newSphereSolution(dimensions int) evo.Solution {
	values := make([]float64, dimensions)
	r := rng.Default()
	for i := range values {
		values[i] = r.Float64()*10 - 5 // uniform in [-5, 5)
	}
	return &sphereSolution{values: values}
}

func (s *sphereSolution) Evaluate() evo.Fitness {
	var sumSquares float64
	for _, v := range s.values {
		sumSquares += v * v
	}
	return evo.ScalarFitness(-sumSquares)
}

func (s *sphereSolution) CrossoverWith(other evo.Solution) {
	o := other.(*sphereSolution)
	arrayvar.Uniform(s.values, o.values)
}

func (s *sphereSolution) Mutate() {
	arrayvar.Gaussian(s.values, 0.1, 0.5)
}

func (s *sphereSolution) Clone() evo.Solution {
	cp := make([]float64, len(s.values))
	copy(cp, s.values)
	return &sphereSolution{values: cp}
}
