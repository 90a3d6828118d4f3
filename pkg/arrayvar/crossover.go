// Package arrayvar provides crossover and mutation primitives over slices,
// for Solution implementations that represent a candidate as a fixed-length
// array of values. It is a supplementary collaborator: the core evo package
// never imports it, and never calls it directly — a Solution.CrossoverWith
// or Solution.Mutate implementation opts in by calling these functions
// itself.
package arrayvar

import (
	"github.com/go-eviolite/eviolite/pkg/rng"
)

// SwapOne swaps one randomly chosen element between a and b. Panics if a
// and b have different lengths.
func SwapOne[T any](a, b []T) {
	mustSameLength(a, b)
	if len(a) == 0 {
		return
	}
	target := rng.Default().Intn(len(a))
	a[target], b[target] = b[target], a[target]
}

// SwapN swaps n randomly chosen distinct elements between a and b. Panics
// if a and b have different lengths, or if n exceeds their length.
func SwapN[T any](n int, a, b []T) {
	mustSameLength(a, b)
	if n > len(a) {
		panic("arrayvar: n must be less than or equal to the slice length")
	}
	targets := rng.Default().SampleIndices(len(a), n)
	for _, t := range targets {
		a[t], b[t] = b[t], a[t]
	}
}

// SwapEachRandom rolls an independent Bernoulli(indpb) trial for every
// index and swaps a[i]/b[i] on success. Panics if a and b have different
// lengths.
func SwapEachRandom[T any](indpb float64, a, b []T) {
	mustSameLength(a, b)
	r := rng.Default()
	for i := range a {
		if r.Bool(indpb) {
			a[i], b[i] = b[i], a[i]
		}
	}
}

// Uniform performs standard uniform crossover (discrete recombination) with
// an equal 0.5 mixing ratio. See UniformWithRatio.
func Uniform[T any](a, b []T) {
	UniformWithRatio(0.5, a, b)
}

// UniformWithRatio performs uniform crossover with a custom mixing ratio:
// for every index, an independent Bernoulli(mixingRatio) trial is rolled
// for both a[i] and b[i]. A success means that side takes b's value, a
// failure that it takes a's value: a success for a only swaps the pair, a
// success for b only leaves the pair as is, and equal outcomes copy the
// chosen value across (mirroring the two independent coin flips per element
// of the original's uniform_with_ratio, rather than a single shared flip).
// Panics if mixingRatio is outside [0, 1] or a and b differ in length.
func UniformWithRatio[T any](mixingRatio float64, a, b []T) {
	if mixingRatio < 0 || mixingRatio > 1 {
		panic("arrayvar: mixingRatio must be in [0, 1]")
	}
	mustSameLength(a, b)

	r := rng.Default()
	for i := range a {
		aChoice := r.Bool(mixingRatio)
		bChoice := r.Bool(mixingRatio)
		switch {
		case aChoice && !bChoice:
			a[i], b[i] = b[i], a[i]
		case !aChoice && !bChoice:
			b[i] = a[i]
		case aChoice && bChoice:
			a[i] = b[i]
		}
	}
}

// NPoint performs n-point crossover: nPivots distinct pivot indices are
// chosen uniformly from [0, len-1), and elements between successive pivots
// are alternately swapped. Panics if nPivots >= len(a), or a and b differ
// in length.
func NPoint[T any](nPivots int, a, b []T) {
	mustSameLength(a, b)
	if nPivots >= len(a) {
		panic("arrayvar: nPivots must be less than the slice length")
	}

	pivots := make(map[int]bool, nPivots)
	if nPivots > 0 {
		for _, p := range rng.Default().SampleIndices(len(a)-1, nPivots) {
			pivots[p] = true
		}
	}

	swap := false
	for i := range a {
		if swap {
			a[i], b[i] = b[i], a[i]
		}
		if pivots[i] {
			swap = !swap
		}
	}
}

// OnePoint is NPoint(1, a, b). Panics if len(a) <= 1.
func OnePoint[T any](a, b []T) { NPoint(1, a, b) }

// TwoPoint is NPoint(2, a, b). Panics if len(a) <= 2.
func TwoPoint[T any](a, b []T) { NPoint(2, a, b) }

func mustSameLength[T any](a, b []T) {
	if len(a) != len(b) {
		panic("arrayvar: a and b must have the same length")
	}
}
