package evo

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scalarGenerator() Solution { return &scalarSolution{value: 0} }

func TestEvolutionRunForRunsExactlyNGenerationsAndLogsStats(t *testing.T) {
	alg := NewSimple(10, 0.5, 0.5, NewTournament(3))
	ev := NewEvolution(alg, scalarGenerator, NewBestN(3), FitnessBasic{})

	result, err := ev.RunFor(context.Background(), 5, nil)
	require.NoError(t, err)
	assert.Len(t, result.StatsLog, 5)
	assert.Len(t, result.Population, 10)
	for _, entry := range result.StatsLog {
		_, ok := entry.Stat.(FitnessBasic)
		assert.True(t, ok)
	}
}

func TestEvolutionRunForHonorsCallbackEarlyStop(t *testing.T) {
	alg := NewSimple(6, 0.5, 0.5, NewTournament(2))
	ev := NewEvolution(alg, scalarGenerator, NewBestN(3), NoOpStats{})

	seen := 0
	cb := func(generation int, pop []*Cached, hof HallOfFame, stat GenerationStats) bool {
		seen++
		return generation < 2 // stop after observing generation 2 (3rd call)
	}

	result, err := ev.RunFor(context.Background(), 100, cb)
	require.NoError(t, err)
	assert.Equal(t, 3, seen)
	assert.Len(t, result.StatsLog, 3)
}

func TestEvolutionRunUntilStopsWhenPredicateFires(t *testing.T) {
	alg := NewSimple(6, 0.5, 0.5, NewTournament(2))
	ev := NewEvolution(alg, scalarGenerator, NewBestN(3), NoOpStats{})

	pred := func(generation int, pop []*Cached, hof HallOfFame, stat GenerationStats) bool {
		return generation >= 2
	}

	result, err := ev.RunUntil(context.Background(), pred, nil)
	require.NoError(t, err)
	assert.Len(t, result.StatsLog, 3) // generations 0, 1, 2 observed; stops on 2 without stepping
}

func TestEvolutionPopulationIsFreshOnEveryObservation(t *testing.T) {
	alg := NewSimple(8, 0.5, 0.5, NewTournament(3))
	ev := NewEvolution(alg, scalarGenerator, NewBestN(3), NoOpStats{})

	cb := func(generation int, pop []*Cached, hof HallOfFame, stat GenerationStats) bool {
		for _, c := range pop {
			_, fitness := c.IntoInner()
			assert.NotNil(t, fitness, "every member must have fresh fitness at observation time")
		}
		return true
	}

	_, err := ev.RunFor(context.Background(), 4, cb)
	require.NoError(t, err)
}

// TestDeterministicReplay verifies spec.md §8's end-to-end scenario: with
// EVIOLITE_SEED fixed, two independent runs of run_for(n) produce identical
// final populations and stats logs. Because the process-wide RNG seeds
// itself once via sync.Once on first use (spec.md §6's thread-local
// semantics realized as a singleton, see pkg/rng), "independent runs" must
// mean independent processes; this test re-execs itself as a child process
// twice and diffs the two children's output, following the same
// self-reexec pattern the standard library uses to test process-global
// behavior (e.g. os/exec's TestHelperProcess).
func TestDeterministicReplay(t *testing.T) {
	if os.Getenv("EVIOLITE_REPLAY_CHILD") == "1" {
		runReplayChild()
		return
	}

	out1 := runReplaySubprocess(t)
	out2 := runReplaySubprocess(t)
	assert.Equal(t, out1, out2, "two independent seeded runs must reproduce identical populations and stats")
}

func runReplaySubprocess(t *testing.T) string {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run=TestDeterministicReplay")
	cmd.Env = append(os.Environ(), "EVIOLITE_REPLAY_CHILD=1", "EVIOLITE_SEED=42")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "replay child failed: %s", output)
	return string(output)
}

func runReplayChild() {
	alg := NewSimple(50, 0.5, 0.5, NewTournament(3))
	ev := NewEvolution(alg, scalarGenerator, NewBestN(5), FitnessBasic{})

	result, err := ev.RunFor(context.Background(), 100, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, c := range result.Population {
		fmt.Printf("%.12f\n", c.Collapsed())
	}
	for _, entry := range result.StatsLog {
		stat := entry.Stat.(FitnessBasic)
		fmt.Printf("%d %.12f %.12f\n", entry.Generation, stat.Mean, stat.Variance)
	}
}
