package train

import (
	"context"
	"fmt"
	"io"

	"github.com/born-ml/micrograd/internal/parallel"
)

// Result summarizes one run of a sweep.
type Result struct {
	Seed    int64
	RunID   string
	Initial float64
	Final   float64
}

// Sweep trains one independent model per seed, at most workers at a time,
// and returns the results in seed order. Report lines are discarded.
//
// Every run owns its own tape and model, so results are identical to
// running the seeds one after another.
func Sweep(ctx context.Context, cfg Config, seeds []int64, workers int, opts ...Option) ([]Result, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("%w: sweep needs at least one seed", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts = append(opts[:len(opts):len(opts)], WithOutput(io.Discard))
	results := make([]Result, len(seeds))

	err := parallel.For(ctx, len(seeds), parallel.DefaultConfig().WithWorkers(workers),
		func(ctx context.Context, i int) error {
			runCfg := cfg
			runCfg.Seed = seeds[i]

			trainer, err := New(runCfg, opts...)
			if err != nil {
				return err
			}

			history, err := trainer.Run(ctx)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seeds[i], err)
			}

			results[i] = Result{
				Seed:    seeds[i],
				RunID:   history.RunID,
				Initial: history.Initial(),
				Final:   history.Final(),
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	return results, nil
}
