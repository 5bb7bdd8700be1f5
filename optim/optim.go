// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides update rules for the parameters of an nn.MLP.
//
// # Overview
//
// This package contains:
//   - SGD: gradient descent with optional momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Training Loop Pattern
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for range iterations {
//	    tape.Reset()
//	    loss := nn.SumSquaredError(predictions, targets)
//	    loss.Backward()
//
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
//
// SGD without momentum is the same update as MLP.Nudge.
package optim

import (
	"github.com/born-ml/micrograd/internal/optim"
	"github.com/born-ml/micrograd/nn"
)

// Optimizer is the interface implemented by all update rules.
type Optimizer = optim.Optimizer

// SGD implements gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds SGD hyperparameters.
type SGDConfig = optim.SGDConfig

// Adam implements the Adam optimizer.
type Adam = optim.Adam

// AdamConfig holds Adam hyperparameters.
type AdamConfig = optim.AdamConfig

// NewSGD creates an SGD optimizer over params.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// NewAdam creates an Adam optimizer over params.
func NewAdam(params []*nn.Parameter, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}
