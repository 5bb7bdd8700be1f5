package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/born-ml/micrograd/internal/metrics"
	"github.com/born-ml/micrograd/internal/train"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// trainFlags holds the overrides accepted by train and sweep.
type trainFlags struct {
	configPath  string
	iterations  int
	lr          float64
	seed        int64
	optimizer   string
	momentum    float64
	metricsFile string
}

func newRootCmd() *cobra.Command {
	var logLevel string
	var flags trainFlags

	root := &cobra.Command{
		Use:   "micrograd",
		Short: "Train a tiny multi-layer perceptron with scalar reverse-mode autodiff",
		Long: `micrograd builds a fresh scalar computation graph every iteration,
backpropagates through it, and nudges every weight against its gradient.

Run without a subcommand to train the built-in four-example problem.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrain(cmd, flags)
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"log level (debug, info, warn, error)")
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		logger, err := newLogger(cmd.ErrOrStderr(), logLevel)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		return nil
	}

	root.AddCommand(newTrainCmd(), newSweepCmd(), newVersionCmd())
	return root
}

func newTrainCmd() *cobra.Command {
	var flags trainFlags

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the network and print loss and outputs per iteration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrain(cmd, flags)
		},
	}

	addTrainFlags(cmd, &flags)
	cmd.Flags().StringVar(&flags.metricsFile, "metrics-file", "",
		"write Prometheus metrics in text format to this file when training ends")
	return cmd
}

func newSweepCmd() *cobra.Command {
	var flags trainFlags
	var seeds []int64
	var workers int

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Train one independent network per seed and summarize the losses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			results, err := train.Sweep(cmd.Context(), cfg, seeds, workers,
				train.WithLogger(slog.Default()))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				if _, err := fmt.Fprintf(out, "seed=%d initial=%v final=%v\n", r.Seed, r.Initial, r.Final); err != nil {
					return err
				}
			}
			return nil
		},
	}

	addTrainFlags(cmd, &flags)
	cmd.Flags().Int64SliceVar(&seeds, "seeds", []int64{1, 2, 3}, "comma-separated seeds to train")
	cmd.Flags().IntVar(&workers, "parallel", 1, "maximum runs in flight")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "micrograd %s\n", version)
			return err
		},
	}
}

func addTrainFlags(cmd *cobra.Command, flags *trainFlags) {
	f := cmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "YAML config file overlaid on the defaults")
	f.IntVar(&flags.iterations, "iterations", 0, "number of iterations")
	f.Float64Var(&flags.lr, "lr", 0, "learning rate")
	f.Int64Var(&flags.seed, "seed", 0, "weight initialization seed")
	f.StringVar(&flags.optimizer, "optimizer", "", "update rule (sgd, momentum, adam)")
	f.Float64Var(&flags.momentum, "momentum", 0, "momentum factor for the momentum optimizer")
}

// loadConfig starts from the defaults, overlays the config file if given,
// then overlays every flag the user set explicitly.
func loadConfig(cmd *cobra.Command, flags trainFlags) (train.Config, error) {
	cfg := train.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := train.LoadConfig(flags.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("iterations") {
		cfg.Iterations = flags.iterations
	}
	if changed("lr") {
		cfg.LearningRate = flags.lr
	}
	if changed("seed") {
		cfg.Seed = flags.seed
	}
	if changed("optimizer") {
		cfg.Optimizer = flags.optimizer
	}
	if changed("momentum") {
		cfg.Momentum = flags.momentum
	}

	return cfg, cfg.Validate()
}

func runTrain(cmd *cobra.Command, flags trainFlags) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	opts := []train.Option{
		train.WithOutput(cmd.OutOrStdout()),
		train.WithLogger(slog.Default()),
	}

	var reg *prometheus.Registry
	if flags.metricsFile != "" {
		reg = prometheus.NewRegistry()
		opts = append(opts, train.WithMetrics(metrics.New(reg)))
	}

	trainer, err := train.New(cfg, opts...)
	if err != nil {
		return err
	}

	if _, err := trainer.Run(cmd.Context()); err != nil {
		return err
	}

	if reg != nil {
		return metrics.WriteFile(flags.metricsFile, reg)
	}
	return nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
