package arrayvar

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/go-eviolite/eviolite/pkg/rng"
)

// Gaussian rolls an independent Bernoulli(indpb) trial for each element of
// arr; on success, adds noise drawn from Normal(0, stdev). Panics if stdev
// is not finite or negative.
func Gaussian(arr []float64, indpb float64, stdev float64) {
	mustValidStdev(stdev)
	r := rng.Default()
	dist := distuv.Normal{Mu: 0, Sigma: stdev, Src: gonumSource{r}}
	for i := range arr {
		if r.Bool(indpb) {
			arr[i] += dist.Rand()
		}
	}
}

// GaussianWith is Gaussian with a per-element probability and standard
// deviation, letting individual elements opt out entirely by setting their
// stdev to zero. Panics if any element of stdevs is not finite or
// negative, or if probabilities/stdevs don't match arr's length.
func GaussianWith(arr []float64, probabilities, stdevs []float64) {
	if len(arr) != len(probabilities) || len(arr) != len(stdevs) {
		panic("arrayvar: arr, probabilities, and stdevs must have the same length")
	}
	r := rng.Default()
	for i := range arr {
		mustValidStdev(stdevs[i])
		if r.Bool(probabilities[i]) {
			dist := distuv.Normal{Mu: 0, Sigma: stdevs[i], Src: gonumSource{r}}
			arr[i] += dist.Rand()
		}
	}
}

// Shuffle rolls an independent Bernoulli(indpb) trial for each index; on
// success, swaps that element with another element chosen uniformly at
// random from the whole slice (which may be itself, a no-op).
func Shuffle[T any](arr []T, indpb float64) {
	r := rng.Default()
	n := len(arr)
	if n == 0 {
		return
	}
	for i := range arr {
		if r.Bool(indpb) {
			j := r.Intn(n)
			arr[i], arr[j] = arr[j], arr[i]
		}
	}
}

func mustValidStdev(stdev float64) {
	if math.IsNaN(stdev) || math.IsInf(stdev, 0) || stdev < 0 {
		panic("arrayvar: invalid standard deviation")
	}
}

// gonumSource adapts rng.Source to gonum's rand.Source interface so that
// distuv.Normal draws from the engine's own reproducible Xoshiro256**
// stream rather than Go's default, unseeded math/rand source.
type gonumSource struct {
	s *rng.Source
}

func (g gonumSource) Uint64() uint64 { return g.s.Uint64() }

// Seed is a no-op: the engine's stream is seeded once and never reseeded.
func (g gonumSource) Seed(uint64) {}
