package evo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnweightedRoundTrip(t *testing.T) {
	values := []float64{1, 2, 3}
	m := Unweighted(values)
	assert.Equal(t, values, m.Weighted)
}

func TestCompareDominanceOracle(t *testing.T) {
	assert.Equal(t, AOverB, CompareDominance([]float64{5, 5, 5}, []float64{-2, 3, 4.9}))
	assert.Equal(t, BOverA, CompareDominance([]float64{-1.9, 2, 3.1}, []float64{5, 5, 5}))
	assert.Equal(t, Neither, CompareDominance([]float64{-2, 3, 4.9}, []float64{-1.9, 2, 3.1}))
}

func TestCompareDominancePanicsOnLengthMismatch(t *testing.T) {
	assert.Panics(t, func() {
		CompareDominance([]float64{1, 2}, []float64{1})
	})
}

func TestMultiObjectiveEqual(t *testing.T) {
	a := Unweighted([]float64{1, 2, 3})
	b := Unweighted([]float64{1, 2, 3})
	c := Unweighted([]float64{1, 2, 3.1})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestNewMultiObjectivePanicsOnLengthMismatch(t *testing.T) {
	assert.Panics(t, func() {
		NewMultiObjective([]float64{1, 2}, []float64{1})
	})
}

func TestNewMultiObjectiveWeighting(t *testing.T) {
	m := NewMultiObjective([]float64{2, 0.5}, []float64{3, 4})
	require.Equal(t, 2, m.Len())
	assert.Equal(t, 6.0, m.At(0))
	assert.Equal(t, 2.0, m.At(1))
	assert.Equal(t, 8.0, m.Collapse())
}
