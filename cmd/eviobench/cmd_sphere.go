package main

import (
	"context"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-eviolite/eviolite/pkg/evo"
)

func newSphereCmd() *cobra.Command {
	var cfgOverride RunConfig

	cmd := &cobra.Command{
		Use:   "sphere",
		Short: "Minimize the sphere function with a single-objective GA",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadRunConfig(configPath)
			if err != nil {
				return err
			}
			cfg = mergeOverrides(cfg, cfgOverride, cmd)
			return runSphere(cfg)
		},
	}

	bindRunFlags(cmd, &cfgOverride)
	return cmd
}

func runSphere(cfg RunConfig) error {
	logger.Info("starting sphere run",
		zap.Int("population_size", cfg.PopulationSize),
		zap.Int("generations", cfg.Generations),
		zap.Int("dimensions", cfg.Dimensions))

	selector := evo.NewTournament(cfg.TournamentSize)
	alg := evo.NewSimple(cfg.PopulationSize, cfg.CrossoverRate, cfg.MutationRate, selector)
	gen := func() evo.Solution { return newSphereSolution(cfg.Dimensions) }
	hof := evo.NewBestN(5)

	ev := evo.NewEvolution(alg, gen, hof, evo.FitnessBasic{}).WithWorkers(cfg.Workers)

	generationsMetric, bestMetric, err := metricsServer(cfg.MetricsAddr)
	if err != nil {
		return err
	}

	bar := progressbar.Default(int64(cfg.Generations), "sphere")
	cb := progressCallback(bar, generationsMetric, bestMetric)

	result, err := ev.RunFor(context.Background(), cfg.Generations, cb)
	if err != nil {
		return err
	}

	best := hof.Entries()
	if len(best) > 0 {
		fmt.Printf("best collapsed fitness: %.6f\n", best[0].Collapsed())
	}
	fmt.Printf("final population size: %d, generations logged: %d\n",
		len(result.Population), len(result.StatsLog))
	return nil
}
