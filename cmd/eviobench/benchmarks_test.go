package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-eviolite/eviolite/pkg/evo"
)

func TestMain(m *testing.M) {
	if _, set := os.LookupEnv("EVIOLITE_SEED"); !set {
		os.Setenv("EVIOLITE_SEED", "1")
	}
	os.Exit(m.Run())
}

func TestSphereSolutionEvaluateIsNegatedSumOfSquares(t *testing.T) {
	s := &sphereSolution{values: []float64{3, 4}}
	fitness := s.Evaluate()
	assert.Equal(t, evo.ScalarFitness(-25), fitness)
}

func TestSphereSolutionCloneIsIndependent(t *testing.T) {
	s := &sphereSolution{values: []float64{1, 2, 3}}
	clone := s.Clone().(*sphereSolution)
	clone.values[0] = 99
	assert.NotEqual(t, s.values[0], clone.values[0])
}

func TestZDT1SolutionAtOriginMinimizesF1AndG(t *testing.T) {
	z := &zdt1Solution{values: []float64{0, 0, 0}}
	assert.Equal(t, 0.0, z.f1())
	assert.Equal(t, 1.0, z.g())
	assert.InDelta(t, 1.0, z.f2(), 1e-9)
}

func TestZDT1SolutionSingleVariableGIsOne(t *testing.T) {
	z := &zdt1Solution{values: []float64{0.5}}
	assert.Equal(t, 1.0, z.g())
}

func TestZDT1SolutionEvaluateNegatesBothObjectives(t *testing.T) {
	z := &zdt1Solution{values: []float64{0.25, 0, 0}}
	fitness := z.Evaluate().(evo.MultiObjective)
	require.Equal(t, 2, fitness.Len())
	assert.Equal(t, -z.f1(), fitness.At(0))
	assert.Equal(t, -z.f2(), fitness.At(1))
}

func TestClampUnitBoundsValues(t *testing.T) {
	values := []float64{-0.5, 0.5, 1.5}
	clampUnit(values)
	assert.Equal(t, []float64{0, 0.5, 1}, values)
}
