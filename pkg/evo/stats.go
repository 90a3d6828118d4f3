package evo

import "math"

// GenerationStats is a pluggable per-generation analyzer. Analyze is called
// once per generation, after every member's fitness cache has been filled,
// and returns a fresh value describing that generation (self-returning,
// mirroring Solution.Clone's pattern, since Go interfaces can't express "I
// return a new instance of my own concrete type" any other way without
// generics spilling into every call site).
type GenerationStats interface {
	Analyze(generation []*Cached) GenerationStats
}

// NoOpStats produces no information; the default when nobody asked for
// per-generation statistics.
type NoOpStats struct{}

var _ GenerationStats = NoOpStats{}

// Analyze returns an empty NoOpStats.
func (NoOpStats) Analyze(_ []*Cached) GenerationStats { return NoOpStats{} }

// FitnessBasic reports the mean and variance of collapsed (scalar) fitness
// across a generation. Variance is divided by N (population variance), not
// left as a raw sum of squared deviations — spec.md §9's second Open
// Question flags the undivided sum in the original source as a bug; this
// implementation divides by N as the spec's own correction recommends.
type FitnessBasic struct {
	Mean     float64
	Variance float64
}

var _ GenerationStats = FitnessBasic{}

// Analyze computes the mean and population variance of collapsed fitness
// over generation.
func (FitnessBasic) Analyze(generation []*Cached) GenerationStats {
	n := float64(len(generation))
	if n == 0 {
		return FitnessBasic{}
	}

	var mean float64
	for _, c := range generation {
		mean += c.Collapsed()
	}
	mean /= n

	var variance float64
	for _, c := range generation {
		d := c.Collapsed() - mean
		variance += d * d
	}
	variance /= n

	return FitnessBasic{Mean: mean, Variance: variance}
}

// FitnessBasicMulti reports per-objective mean, variance, and standard
// deviation for a generation whose fitness is MultiObjective.
type FitnessBasicMulti struct {
	Mean     []float64
	Variance []float64
	Stdev    []float64
}

var _ GenerationStats = FitnessBasicMulti{}

// Analyze computes per-objective mean, population variance, and standard
// deviation over generation. Returns a zero FitnessBasicMulti if generation
// is empty; panics if its fitness isn't MultiObjective.
func (FitnessBasicMulti) Analyze(generation []*Cached) GenerationStats {
	if len(generation) == 0 {
		return FitnessBasicMulti{}
	}

	m := weightedVector(generation[0])
	numObjectives := len(m)
	n := float64(len(generation))

	mean := make([]float64, numObjectives)
	variance := make([]float64, numObjectives)
	stdev := make([]float64, numObjectives)

	for j := 0; j < numObjectives; j++ {
		for _, c := range generation {
			mean[j] += weightedAt(c, j)
		}
		mean[j] /= n

		for _, c := range generation {
			d := weightedAt(c, j) - mean[j]
			variance[j] += d * d
		}
		variance[j] /= n
		stdev[j] = math.Sqrt(variance[j])
	}

	return FitnessBasicMulti{Mean: mean, Variance: variance, Stdev: stdev}
}
