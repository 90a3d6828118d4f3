package evo

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestNoOpStatsProducesNothing(t *testing.T) {
	pop := newScalarPopulation(1, 2, 3)
	assert.Equal(t, NoOpStats{}, NoOpStats{}.Analyze(pop))
}

func TestFitnessBasicMeanAndVariance(t *testing.T) {
	pop := newScalarPopulation(2, 4, 4, 4, 5, 5, 7, 9)
	for _, c := range pop {
		c.Evaluate()
	}
	stat := FitnessBasic{}.Analyze(pop).(FitnessBasic)

	assert.InDelta(t, 5.0, stat.Mean, 1e-9)
	assert.InDelta(t, 4.0, stat.Variance, 1e-9)
}

func TestFitnessBasicEmptyGeneration(t *testing.T) {
	stat := FitnessBasic{}.Analyze(nil).(FitnessBasic)
	assert.Equal(t, 0.0, stat.Mean)
	assert.Equal(t, 0.0, stat.Variance)
}

func TestFitnessBasicMultiPerObjective(t *testing.T) {
	pop := []*Cached{
		vector(2, 10),
		vector(4, 20),
		vector(6, 30),
	}
	for _, c := range pop {
		c.Evaluate()
	}
	stat := FitnessBasicMulti{}.Analyze(pop).(FitnessBasicMulti)

	wantVar0 := ((2.0-4)*(2.0-4) + (4.0-4)*(4.0-4) + (6.0-4)*(6.0-4)) / 3
	wantVar1 := ((10.0-20)*(10.0-20) + (20.0-20)*(20.0-20) + (30.0-20)*(30.0-20)) / 3
	want := FitnessBasicMulti{
		Mean:     []float64{4.0, 20.0},
		Variance: []float64{wantVar0, wantVar1},
		Stdev:    []float64{math.Sqrt(wantVar0), math.Sqrt(wantVar1)},
	}

	if diff := cmp.Diff(want, stat, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("per-objective stats mismatch (-want +got):\n%s", diff)
	}
}
