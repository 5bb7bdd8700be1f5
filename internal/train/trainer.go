// Package train runs full-batch gradient descent on a multi-layer perceptron.
//
// Each iteration rebuilds the whole computation graph from scratch:
//
//	tape.Reset()                      // drop last iteration's graph
//	loss := Σ (target - MLP(x))²      // forward over every example
//	loss.Backward()                   // gradients on every parameter
//	fmt.Fprintln(out, loss, outputs)  // one report line
//	optimizer.Step(); optimizer.ZeroGrad()
//
// There is no convergence check and no early stop: a run always performs
// exactly Config.Iterations iterations unless its context is canceled.
package train

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/metrics"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
	"github.com/google/uuid"
)

// Step is the record of one iteration.
type Step struct {
	Iteration int
	Loss      float64
	Outputs   []float64 // Network outputs, example order then neuron order
}

// History is the record of a whole run.
type History struct {
	RunID string
	Seed  int64
	Steps []Step
}

// Losses returns the loss of every iteration in order.
func (h *History) Losses() []float64 {
	losses := make([]float64, len(h.Steps))
	for i, s := range h.Steps {
		losses[i] = s.Loss
	}
	return losses
}

// Initial returns the loss of the first iteration, or 0 for an empty run.
func (h *History) Initial() float64 {
	if len(h.Steps) == 0 {
		return 0
	}
	return h.Steps[0].Loss
}

// Final returns the loss of the last iteration, or 0 for an empty run.
func (h *History) Final() float64 {
	if len(h.Steps) == 0 {
		return 0
	}
	return h.Steps[len(h.Steps)-1].Loss
}

// Option configures a Trainer.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	out     io.Writer
	metrics *metrics.Metrics
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithOutput sets where per-iteration report lines go. The default is
// standard output.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithMetrics records per-iteration progress on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// Trainer owns one model, its tape, and its optimizer.
//
// A Trainer is not safe for concurrent use.
type Trainer struct {
	cfg       Config
	tape      *autodiff.Tape
	model     *nn.MLP
	optimizer optim.Optimizer

	runID    string
	logger   *slog.Logger
	out      io.Writer
	recorder *metrics.Recorder

	iteration int
}

// New validates cfg and builds a freshly initialized model for it.
func New(cfg Config, opts ...Option) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &options{
		logger: slog.New(slog.DiscardHandler),
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	tape := autodiff.NewTape()
	model := nn.NewMLP(tape, nn.NewRand(cfg.Seed), cfg.NumInputs(), cfg.Layers)
	runID := uuid.NewString()

	return &Trainer{
		cfg:       cfg,
		tape:      tape,
		model:     model,
		optimizer: newOptimizer(cfg, model.Parameters()),
		runID:     runID,
		logger:    o.logger.With("run_id", runID, "seed", cfg.Seed),
		out:       o.out,
		recorder:  o.metrics.Run(cfg.Seed),
	}, nil
}

// newOptimizer maps Config.Optimizer to an update rule.
func newOptimizer(cfg Config, params []*nn.Parameter) optim.Optimizer {
	switch cfg.Optimizer {
	case OptimizerMomentum:
		return optim.NewSGD(params, optim.SGDConfig{LR: cfg.LearningRate, Momentum: cfg.Momentum})
	case OptimizerAdam:
		return optim.NewAdam(params, optim.AdamConfig{LR: cfg.LearningRate})
	default:
		return optim.NewSGD(params, optim.SGDConfig{LR: cfg.LearningRate})
	}
}

// Model returns the network being trained.
func (t *Trainer) Model() *nn.MLP {
	return t.model
}

// RunID returns the identifier attached to this run's logs and results.
func (t *Trainer) RunID() string {
	return t.runID
}

// Step runs one iteration: forward, loss, backward, report, update.
func (t *Trainer) Step() (Step, error) {
	t.tape.Reset()

	predictions := make([]autodiff.Value, 0, len(t.cfg.Targets))
	for _, x := range t.cfg.Inputs {
		predictions = append(predictions, t.model.Predict(x)...)
	}
	loss := nn.SumSquaredError(predictions, t.cfg.Targets)

	start := time.Now()
	loss.Backward()
	elapsed := time.Since(start)

	outputs := make([]float64, len(predictions))
	for i, p := range predictions {
		outputs[i] = p.Data()
	}

	step := Step{Iteration: t.iteration, Loss: loss.Data(), Outputs: outputs}

	if _, err := fmt.Fprintln(t.out, step.Loss, step.Outputs); err != nil {
		return step, fmt.Errorf("write iteration %d: %w", t.iteration, err)
	}

	t.optimizer.Step()
	t.optimizer.ZeroGrad()

	t.recorder.ObserveIteration(step.Loss, t.tape.Len(), elapsed)
	t.logger.Debug("iteration",
		"iteration", step.Iteration,
		"loss", step.Loss,
		"nodes", t.tape.Len(),
		"backward", elapsed,
	)

	t.iteration++
	return step, nil
}

// Run performs Config.Iterations iterations. ctx is checked between
// iterations; on cancellation the steps completed so far are returned with
// ctx.Err().
func (t *Trainer) Run(ctx context.Context) (*History, error) {
	history := &History{
		RunID: t.runID,
		Seed:  t.cfg.Seed,
		Steps: make([]Step, 0, t.cfg.Iterations),
	}

	t.logger.Info("training started",
		"iterations", t.cfg.Iterations,
		"optimizer", t.cfg.Optimizer,
		"lr", t.cfg.LearningRate,
		"parameters", len(t.model.Parameters()),
	)

	for range t.cfg.Iterations {
		if err := ctx.Err(); err != nil {
			t.logger.Warn("training canceled", "completed", len(history.Steps), "error", err)
			return history, err
		}

		step, err := t.Step()
		if err != nil {
			return history, err
		}
		history.Steps = append(history.Steps, step)
	}

	t.logger.Info("training finished",
		"initial_loss", history.Initial(),
		"final_loss", history.Final(),
	)

	return history, nil
}
