package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// RunConfig holds the tunable parameters shared by every eviobench
// subcommand. It loads from a TOML file via BurntSushi/toml, falling back
// to DefaultRunConfig when no file is given or the file doesn't exist.
type RunConfig struct {
	PopulationSize int     `toml:"population_size"`
	Generations    int     `toml:"generations"`
	CrossoverRate  float64 `toml:"crossover_rate"`
	MutationRate   float64 `toml:"mutation_rate"`
	TournamentSize int     `toml:"tournament_size"`
	Dimensions     int     `toml:"dimensions"`
	Workers        int     `toml:"workers"`
	MetricsAddr    string  `toml:"metrics_addr"`
}

// DefaultRunConfig returns the baseline configuration every subcommand
// starts from before flag overrides are applied.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		PopulationSize: 100,
		Generations:    200,
		CrossoverRate:  0.7,
		MutationRate:   0.2,
		TournamentSize: 3,
		Dimensions:     10,
		Workers:        0,
		MetricsAddr:    "",
	}
}

// LoadRunConfig reads path as TOML into a copy of DefaultRunConfig's
// fields. A missing path is not an error: the defaults are returned
// untouched, mirroring the teacher's config-loading fallback.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "decoding config file %q", path)
	}
	return cfg, nil
}
