package evo

import "math"

// epsilon is the tolerance used to compare MultiObjective fitness values for
// equality, per spec.md §3: "Two MultiObjective values compare equal iff
// every entry differs by less than machine epsilon."
const epsilon = 2.220446049250313e-16

// MultiObjective is a fixed-length vector of weighted objective values.
// weighted[i] = weight[i] * value[i]; Collapse sums the weighted entries.
type MultiObjective struct {
	Weighted []float64
}

// NewMultiObjective builds a MultiObjective from raw objective values and
// per-objective weights. Panics if the slices have different lengths.
func NewMultiObjective(weights, values []float64) MultiObjective {
	if len(weights) != len(values) {
		panic("evo: NewMultiObjective requires weights and values of equal length")
	}
	weighted := make([]float64, len(values))
	for i := range values {
		weighted[i] = weights[i] * values[i]
	}
	return MultiObjective{Weighted: weighted}
}

// Unweighted builds a MultiObjective whose weights are all 1, so
// Weighted == values.
func Unweighted(values []float64) MultiObjective {
	weighted := make([]float64, len(values))
	copy(weighted, values)
	return MultiObjective{Weighted: weighted}
}

// Len returns the number of objectives, M.
func (m MultiObjective) Len() int { return len(m.Weighted) }

// At returns the i-th weighted objective value.
func (m MultiObjective) At(i int) float64 { return m.Weighted[i] }

// Collapse sums the weighted entries into a single scalar.
func (m MultiObjective) Collapse() float64 {
	var total float64
	for _, v := range m.Weighted {
		total += v
	}
	return total
}

// Equal reports whether every entry of m and other differs by less than
// machine epsilon.
func (m MultiObjective) Equal(other MultiObjective) bool {
	if len(m.Weighted) != len(other.Weighted) {
		return false
	}
	for i := range m.Weighted {
		if math.Abs(m.Weighted[i]-other.Weighted[i]) >= epsilon {
			return false
		}
	}
	return true
}

// DomOrdering is the result of comparing two weighted-objective vectors for
// Pareto dominance.
type DomOrdering int

const (
	// Neither means neither vector dominates the other.
	Neither DomOrdering = iota
	// AOverB means a dominates b.
	AOverB
	// BOverA means b dominates a.
	BOverA
)

// CompareDominance reports how a and b relate under Pareto dominance: a
// dominates b iff a[i] >= b[i] for every i and a[i] > b[i] for at least one
// i (spec.md §4.2). Floating-point ties are treated as a non-strict loss for
// the side that isn't strictly ahead, per spec.md §9's first Open Question:
// equal entries are astronomically unlikely in practice, so the comparator
// below — "b wins this entry iff b[i] > a[i], otherwise a wins it" — is
// documented behavior rather than a bug. Panics if a and b have different
// lengths.
func CompareDominance(a, b []float64) DomOrdering {
	if len(a) != len(b) {
		panic("evo: CompareDominance requires equal-length vectors")
	}
	var aWin, bWin bool
	for i := range a {
		if b[i] > a[i] {
			bWin = true
		} else {
			aWin = true
		}
	}
	switch {
	case aWin && !bWin:
		return AOverB
	case bWin && !aWin:
		return BOverA
	default:
		return Neither
	}
}
