package evo

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cloneScalarCached(c *Cached) *Cached { return c.Clone() }

func newScalarPopulation(values ...float64) []*Cached {
	pop := make([]*Cached, len(values))
	for i, v := range values {
		pop[i] = scalar(v)
	}
	return pop
}

func collapsedValues(pop []*Cached) []float64 {
	out := make([]float64, len(pop))
	for i, c := range pop {
		out[i] = c.Collapsed()
	}
	return out
}

func TestRetainIndicesMultisetWithDuplicates(t *testing.T) {
	pop := newScalarPopulation(10, 20, 30, 40, 50, 60)
	out := RetainIndices(pop, []int{5, 4, 5, 1}, cloneScalarCached)

	require.Len(t, out, 4)
	got := collapsedValues(out)
	want := []float64{60, 50, 60, 20}

	sortedGot := append([]float64(nil), got...)
	sortedWant := append([]float64(nil), want...)
	sort.Float64s(sortedGot)
	sort.Float64s(sortedWant)
	assert.Equal(t, sortedWant, sortedGot)
}

func TestRetainIndicesAllSameIndex(t *testing.T) {
	values := make([]float64, 10)
	for i := range values {
		values[i] = float64(i)
	}
	pop := newScalarPopulation(values...)

	idx := make([]int, 10)
	for i := range idx {
		idx[i] = 0
	}
	out := RetainIndices(pop, idx, cloneScalarCached)

	require.Len(t, out, 10)
	for _, c := range out {
		assert.Equal(t, 0.0, c.Collapsed())
	}
}

func TestRetainIndicesSingleIndex(t *testing.T) {
	pop := newScalarPopulation(1, 2, 3)
	out := RetainIndices(pop, []int{2}, cloneScalarCached)
	require.Len(t, out, 1)
	assert.Equal(t, 3.0, out[0].Collapsed())
}

func TestRetainIndicesPanicsOnEmpty(t *testing.T) {
	pop := newScalarPopulation(1, 2, 3)
	assert.Panics(t, func() {
		RetainIndices(pop, nil, cloneScalarCached)
	})
}
