package evo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateAllFillsEveryCache(t *testing.T) {
	pop := newScalarPopulation(1, 2, 3, 4, 5, 6, 7, 8)

	err := EvaluateAll(context.Background(), pop, 3)
	require.NoError(t, err)

	for _, c := range pop {
		_, fitness := c.IntoInner()
		assert.NotNil(t, fitness)
	}
}

func TestEvaluateAllEmptyPopulation(t *testing.T) {
	err := EvaluateAll(context.Background(), nil, 0)
	assert.NoError(t, err)
}

func TestEvaluateAllDefaultsWorkersWhenNonPositive(t *testing.T) {
	pop := newScalarPopulation(1, 2, 3)
	err := EvaluateAll(context.Background(), pop, 0)
	require.NoError(t, err)
	for _, c := range pop {
		assert.Equal(t, 1, c.Solution().(*scalarSolution).evals)
	}
}

func TestEvaluateAllPropagatesCancellation(t *testing.T) {
	pop := newScalarPopulation(1, 2, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := EvaluateAll(ctx, pop, 1)
	assert.Error(t, err)
}
