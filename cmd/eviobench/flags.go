package main

import "github.com/spf13/cobra"

// bindRunFlags registers the per-subcommand flags that can override
// whatever RunConfig was loaded from --config. Unset flags are
// distinguished from explicit zero values via cmd.Flags().Changed in
// mergeOverrides.
func bindRunFlags(cmd *cobra.Command, override *RunConfig) {
	cmd.Flags().IntVar(&override.PopulationSize, "population", 0, "population size")
	cmd.Flags().IntVar(&override.Generations, "generations", 0, "number of generations to run")
	cmd.Flags().Float64Var(&override.CrossoverRate, "cxpb", 0, "crossover probability")
	cmd.Flags().Float64Var(&override.MutationRate, "mutpb", 0, "mutation probability")
	cmd.Flags().IntVar(&override.TournamentSize, "tournament-size", 0, "tournament round size (sphere only)")
	cmd.Flags().IntVar(&override.Dimensions, "dimensions", 0, "number of variables per solution")
}

// mergeOverrides layers explicitly-set flags in override on top of base,
// and folds in the root command's shared --metrics-addr/--workers flags.
func mergeOverrides(base, override RunConfig, cmd *cobra.Command) RunConfig {
	flags := cmd.Flags()
	if flags.Changed("population") {
		base.PopulationSize = override.PopulationSize
	}
	if flags.Changed("generations") {
		base.Generations = override.Generations
	}
	if flags.Changed("cxpb") {
		base.CrossoverRate = override.CrossoverRate
	}
	if flags.Changed("mutpb") {
		base.MutationRate = override.MutationRate
	}
	if flags.Changed("tournament-size") {
		base.TournamentSize = override.TournamentSize
	}
	if flags.Changed("dimensions") {
		base.Dimensions = override.Dimensions
	}

	if workersFlag != 0 {
		base.Workers = workersFlag
	}
	if metricsAddr != "" {
		base.MetricsAddr = metricsAddr
	}
	return base
}
