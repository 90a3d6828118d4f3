package arrayvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGaussianPanicsOnInvalidStdev(t *testing.T) {
	arr := []float64{1, 2, 3}
	assert.Panics(t, func() {
		Gaussian(arr, 1.0, -1.0)
	})
}

func TestGaussianZeroProbabilityNoOp(t *testing.T) {
	arr := []float64{1, 2, 3}
	before := append([]float64(nil), arr...)
	Gaussian(arr, 0.0, 5.0)
	assert.Equal(t, before, arr)
}

func TestGaussianWithLengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		GaussianWith([]float64{1, 2}, []float64{1}, []float64{1, 1})
	})
}

func TestGaussianWithZeroStdevElementUntouched(t *testing.T) {
	arr := []float64{1, 2, 3}
	probs := []float64{1, 1, 1}
	stdevs := []float64{0, 0, 0}
	GaussianWith(arr, probs, stdevs)
	assert.Equal(t, []float64{1, 2, 3}, arr, "zero stdev must never perturb its element")
}

func TestShuffleEmptyIsNoOp(t *testing.T) {
	var arr []int
	assert.NotPanics(t, func() {
		Shuffle(arr, 1.0)
	})
}

func TestShufflePreservesMultiset(t *testing.T) {
	arr := []int{1, 2, 3, 4, 5}
	before := append([]int(nil), arr...)
	Shuffle(arr, 1.0)

	counts := make(map[int]int)
	for _, v := range before {
		counts[v]++
	}
	for _, v := range arr {
		counts[v]--
	}
	for _, c := range counts {
		assert.Equal(t, 0, c, "shuffle must preserve the multiset of elements")
	}
}
