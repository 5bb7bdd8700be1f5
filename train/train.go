// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train runs full-batch gradient descent on an MLP.
//
// Example:
//
//	trainer, err := train.New(train.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	history, err := trainer.Run(ctx)  // prints "<loss> [<outputs>]" per iteration
package train

import (
	"context"

	"github.com/born-ml/micrograd/internal/train"
)

// ErrInvalidConfig is returned (wrapped) for configurations that cannot be trained.
var ErrInvalidConfig = train.ErrInvalidConfig

// Config describes one training run.
type Config = train.Config

// Trainer owns one model, its tape, and its optimizer.
type Trainer = train.Trainer

// Option configures a Trainer.
type Option = train.Option

// Step is the record of one iteration.
type Step = train.Step

// History is the record of a whole run.
type History = train.History

// Result summarizes one run of a sweep.
type Result = train.Result

// Optimizer names.
const (
	OptimizerSGD      = train.OptimizerSGD
	OptimizerMomentum = train.OptimizerMomentum
	OptimizerAdam     = train.OptimizerAdam
)

// Options.
var (
	WithLogger = train.WithLogger
	WithOutput = train.WithOutput
)

// DefaultConfig returns the built-in four-example problem.
func DefaultConfig() Config {
	return train.DefaultConfig()
}

// LoadConfig reads a YAML file and overlays it onto DefaultConfig.
func LoadConfig(path string) (Config, error) {
	return train.LoadConfig(path)
}

// New validates cfg and builds a freshly initialized model.
func New(cfg Config, opts ...Option) (*Trainer, error) {
	return train.New(cfg, opts...)
}

// Sweep trains one independent model per seed and returns results in seed order.
func Sweep(ctx context.Context, cfg Config, seeds []int64, workers int, opts ...Option) ([]Result, error) {
	return train.Sweep(ctx, cfg, seeds, workers, opts...)
}
