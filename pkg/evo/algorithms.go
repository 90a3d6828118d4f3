package evo

import "context"

// Algorithm is a pluggable evolutionary strategy. The driver guarantees
// that every Cached's fitness is fresh on entry to Step; Step must
// re-establish that the population contains exactly PopSize() presentable
// solutions on return, though their fitness may be stale (the driver
// re-fills before the next observation).
type Algorithm interface {
	PopSize() int
	Step(ctx context.Context, pop []*Cached) ([]*Cached, error)
}

// Simple implements the textbook generational GA: select N from the
// population, then apply var_and. The selector must be Stochastic —
// selecting N of N deterministically would be a no-op — which is enforced
// at construction by requiring a value that implements both Selector and
// Stochastic.
type Simple struct {
	n           int
	cxpb, mutpb float64
	selector    interface {
		Selector
		Stochastic
	}
}

var _ Algorithm = Simple{}

// NewSimple builds a Simple algorithm with population size n.
func NewSimple(n int, cxpb, mutpb float64, selector interface {
	Selector
	Stochastic
}) Simple {
	return Simple{n: n, cxpb: cxpb, mutpb: mutpb, selector: selector}
}

func (s Simple) PopSize() int { return s.n }

func (s Simple) Step(_ context.Context, pop []*Cached) ([]*Cached, error) {
	pop = s.selector.Select(pop, s.n)
	VarAnd(pop, s.cxpb, s.mutpb)
	return pop, nil
}

// MuPlusLambda generates lambda offspring via GenOr, appends them to the
// mu-sized parent population (now mu+lambda), evaluates everyone, and
// selects mu survivors from the combined pool. Parents can survive
// unchanged.
type MuPlusLambda struct {
	mu, lambda  int
	cxpb, mutpb float64
	selector    Selector
	workers     int
}

var _ Algorithm = MuPlusLambda{}

// NewMuPlusLambda builds a (mu+lambda) algorithm.
func NewMuPlusLambda(mu, lambda int, cxpb, mutpb float64, selector Selector) MuPlusLambda {
	return MuPlusLambda{mu: mu, lambda: lambda, cxpb: cxpb, mutpb: mutpb, selector: selector}
}

// WithWorkers overrides the evaluate-all worker count (default:
// GOMAXPROCS).
func (a MuPlusLambda) WithWorkers(n int) MuPlusLambda {
	a.workers = n
	return a
}

func (a MuPlusLambda) PopSize() int { return a.mu }

func (a MuPlusLambda) Step(ctx context.Context, pop []*Cached) ([]*Cached, error) {
	offspring := GenOr(pop, a.lambda, a.cxpb, a.mutpb)
	combined := append(append([]*Cached(nil), pop...), offspring...)

	if err := EvaluateAll(ctx, combined, a.workers); err != nil {
		return nil, err
	}

	return a.selector.Select(combined, a.mu), nil
}

// MuCommaLambda generates lambda offspring via GenOr, discards the parent
// population entirely, and selects mu survivors from just the offspring.
// Requires mu <= lambda.
type MuCommaLambda struct {
	mu, lambda  int
	cxpb, mutpb float64
	selector    Selector
	workers     int
}

var _ Algorithm = MuCommaLambda{}

// NewMuCommaLambda builds a (mu,lambda) algorithm. Panics if mu > lambda.
func NewMuCommaLambda(mu, lambda int, cxpb, mutpb float64, selector Selector) MuCommaLambda {
	if mu > lambda {
		panic("evo: MuCommaLambda requires mu <= lambda")
	}
	return MuCommaLambda{mu: mu, lambda: lambda, cxpb: cxpb, mutpb: mutpb, selector: selector}
}

// WithWorkers overrides the evaluate-all worker count.
func (a MuCommaLambda) WithWorkers(n int) MuCommaLambda {
	a.workers = n
	return a
}

func (a MuCommaLambda) PopSize() int { return a.mu }

func (a MuCommaLambda) Step(ctx context.Context, pop []*Cached) ([]*Cached, error) {
	offspring := GenOr(pop, a.lambda, a.cxpb, a.mutpb)

	if err := EvaluateAll(ctx, offspring, a.workers); err != nil {
		return nil, err
	}

	return a.selector.Select(offspring, a.mu), nil
}

// NSGA2 is the NSGA-II multi-objective algorithm: generate N offspring via
// GenOr, evaluate them, then NSGA-II-select N survivors from the combined
// 2N population. Requires the wrapped Solution's fitness to be
// MultiObjective.
type NSGA2 struct {
	n           int
	cxpb, mutpb float64
	workers     int
}

var _ Algorithm = NSGA2{}

// NewNSGA2 builds an NSGA-II algorithm with population size n.
func NewNSGA2(n int, cxpb, mutpb float64) NSGA2 {
	return NSGA2{n: n, cxpb: cxpb, mutpb: mutpb}
}

// WithWorkers overrides the evaluate-all worker count.
func (a NSGA2) WithWorkers(n int) NSGA2 {
	a.workers = n
	return a
}

func (a NSGA2) PopSize() int { return a.n }

func (a NSGA2) Step(ctx context.Context, pop []*Cached) ([]*Cached, error) {
	offspring := GenOr(pop, a.n, a.cxpb, a.mutpb)
	combined := append(append([]*Cached(nil), pop...), offspring...)

	if err := EvaluateAll(ctx, combined, a.workers); err != nil {
		return nil, err
	}

	if len(combined) == 0 {
		panic("evo: NSGA2 requires a non-empty population")
	}

	return NSGA2Selector{}.Select(combined, a.n), nil
}
