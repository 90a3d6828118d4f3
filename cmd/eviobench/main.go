// Command eviobench is a small benchmark harness exercising the eviolite
// engine end-to-end on two toy problems: single-objective sphere
// minimization and the bi-objective ZDT1 benchmark.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-eviolite/eviolite/pkg/evo"
	"github.com/go-eviolite/eviolite/pkg/rng"
)

var (
	configPath  string
	seedFlag    string
	metricsAddr string
	workersFlag int
	verbose     bool

	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "eviobench",
		Short: "Benchmark harness for the eviolite evolutionary engine",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML run configuration")
	root.PersistentFlags().StringVar(&seedFlag, "seed", "", "fixed EVIOLITE_SEED value (decimal uint64)")
	root.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on, e.g. :9090")
	root.PersistentFlags().IntVar(&workersFlag, "workers", 0, "evaluate-all worker count (0 = GOMAXPROCS)")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	root.AddCommand(newSphereCmd(), newZDT1Cmd())
	return root
}

func setup() error {
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return errors.Wrap(err, "constructing logger")
	}
	rng.SetLogger(logger)

	if seedFlag != "" {
		os.Setenv(rng.SeedEnvVar, seedFlag)
	}

	return nil
}

// metricsServer starts a background Prometheus endpoint if addr is
// non-empty and returns the generation counter and best-fitness gauge for
// the caller to update as the run proceeds. Returns nil, nil, nil when addr
// is empty.
func metricsServer(addr string) (prometheus.Counter, prometheus.Gauge, error) {
	if addr == "" {
		return nil, nil, nil
	}

	generations := promauto.NewCounter(prometheus.CounterOpts{
		Name: "eviobench_generations_completed_total",
		Help: "Number of generations completed by the current run.",
	})
	best := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "eviobench_best_fitness",
		Help: "Best collapsed fitness in the most recently observed generation.",
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server stopped", zap.Error(err))
		}
	}()

	return generations, best, nil
}

// progressCallback builds an evo.Callback that advances bar and records
// metrics for every observed generation. It never requests early
// termination.
func progressCallback(bar *progressbar.ProgressBar, generations prometheus.Counter, best prometheus.Gauge) evo.Callback {
	return func(generation int, pop []*evo.Cached, hof evo.HallOfFame, stat evo.GenerationStats) bool {
		_ = bar.Add(1)
		if generations != nil {
			generations.Inc()
		}
		if best != nil && len(pop) > 0 {
			best.Set(pop[evo.FindBest(pop)].Collapsed())
		}
		return true
	}
}
