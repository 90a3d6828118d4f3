package evo

// Fitness measures the quality of a solution. Implementations must be cheap
// to copy by value: ScalarFitness is a bare float64, and MultiObjective
// holds a small weighted slice.
type Fitness interface {
	// Collapse reduces the fitness to a single scalar, higher is better.
	Collapse() float64
}

// ScalarFitness is the simplest Fitness: a single real value, higher is
// better.
type ScalarFitness float64

// Collapse returns the value itself.
func (s ScalarFitness) Collapse() float64 { return float64(s) }

// Solution is a candidate in the search space. Implementations must be
// cheaply cloneable and safe to read concurrently from multiple goroutines;
// the engine never mutates a Solution and reads it from another goroutine
// at the same time (see the Cached wrapper and the evaluate-all barrier in
// parallel.go).
//
// Evaluate must be pure: calling it twice on the same logical state must
// return the same value. Randomness inside Evaluate is a contract violation
// the engine cannot detect (spec.md §7.2) — it silently breaks caching and
// reproducibility.
//
// Generate is deliberately not a Solution method: Go interfaces cannot
// express "produce a fresh instance of my own concrete type" without either
// generics keyed on the concrete type or a reflection-based factory, both of
// which would leak into every call site. Instead, callers supply a
// `func() Solution` generator directly to Evolution's constructor, exactly
// where the original's `T::generate()` would have been invoked.
type Solution interface {
	// Evaluate computes this solution's fitness. Must be deterministic.
	Evaluate() Fitness

	// CrossoverWith recombines the receiver and other in place, so that
	// afterward both carry information from both parents. Implementations
	// should panic if other is not the same concrete type as the receiver.
	CrossoverWith(other Solution)

	// Mutate perturbs the receiver in place.
	Mutate()

	// Clone returns an independent deep copy.
	Clone() Solution
}

// Generator produces a fresh, randomly initialized Solution. Supplied by
// callers in place of a `Solution.Generate()` method (see Solution's doc).
type Generator func() Solution
