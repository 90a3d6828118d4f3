// Package evo is the core of an evolutionary computation engine: the
// generation loop, the memoized fitness wrapper, the pluggable algorithms,
// and the selection operators used to drive iterative populations of
// candidate solutions through variation, evaluation, and selection.
//
// The package is domain-agnostic. Callers provide a Solution implementation
// describing how candidates are generated, evaluated, crossed over, and
// mutated; evo supplies the orchestration around it — Tournament and NSGA2
// selection, the Simple/MuPlusLambda/MuCommaLambda/NSGA2 algorithm
// strategies, BestN/BestPareto halls of fame, and per-generation statistics.
package evo
