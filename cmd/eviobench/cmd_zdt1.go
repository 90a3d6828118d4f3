package main

import (
	"context"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-eviolite/eviolite/pkg/evo"
)

func newZDT1Cmd() *cobra.Command {
	var cfgOverride RunConfig

	cmd := &cobra.Command{
		Use:   "zdt1",
		Short: "Run the ZDT1 bi-objective benchmark through NSGA-II",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadRunConfig(configPath)
			if err != nil {
				return err
			}
			cfg = mergeOverrides(cfg, cfgOverride, cmd)
			return runZDT1(cfg)
		},
	}

	bindRunFlags(cmd, &cfgOverride)
	return cmd
}

func runZDT1(cfg RunConfig) error {
	logger.Info("starting zdt1 run",
		zap.Int("population_size", cfg.PopulationSize),
		zap.Int("generations", cfg.Generations),
		zap.Int("dimensions", cfg.Dimensions))

	alg := evo.NewNSGA2(cfg.PopulationSize, cfg.CrossoverRate, cfg.MutationRate).WithWorkers(cfg.Workers)
	gen := func() evo.Solution { return newZDT1Solution(cfg.Dimensions) }
	hof := evo.NewBestPareto()

	ev := evo.NewEvolution(alg, gen, hof, evo.FitnessBasicMulti{}).WithWorkers(cfg.Workers)

	generationsMetric, bestMetric, err := metricsServer(cfg.MetricsAddr)
	if err != nil {
		return err
	}

	bar := progressbar.Default(int64(cfg.Generations), "zdt1")
	cb := progressCallback(bar, generationsMetric, bestMetric)

	result, err := ev.RunFor(context.Background(), cfg.Generations, cb)
	if err != nil {
		return err
	}

	fmt.Printf("final Pareto front size: %d\n", len(hof.Front()))
	fmt.Printf("final population size: %d, generations logged: %d\n",
		len(result.Population), len(result.StatsLog))
	return nil
}
