// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

// Module is implemented by Layer and MLP.
type Module = nn.Module

// Parameter is a named trainable scalar.
type Parameter = nn.Parameter

// Neuron computes tanh(bias + Σ wᵢxᵢ).
type Neuron = nn.Neuron

// Layer is a list of neurons applied to the same inputs.
type Layer = nn.Layer

// MLP is a stack of fully connected tanh layers.
type MLP = nn.MLP

// NewRand returns a deterministic random source for weight initialization.
func NewRand(seed int64) *rand.Rand {
	return nn.NewRand(seed)
}

// NewNeuron creates a neuron with nin weights.
func NewNeuron(tape *autodiff.Tape, rng *rand.Rand, nin int) *Neuron {
	return nn.NewNeuron(tape, rng, nin)
}

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(tape *autodiff.Tape, rng *rand.Rand, nin, nout int) *Layer {
	return nn.NewLayer(tape, rng, nin, nout)
}

// NewMLP creates a network with nin inputs and one layer per entry of nouts.
//
// Example:
//
//	model := nn.NewMLP(tape, nn.NewRand(42), 3, []int{4, 4, 1})  // 3→4→4→1
func NewMLP(tape *autodiff.Tape, rng *rand.Rand, nin int, nouts []int) *MLP {
	return nn.NewMLP(tape, rng, nin, nouts)
}

// SumSquaredError returns Σ (targets[i] - predictions[i])².
func SumSquaredError(predictions []autodiff.Value, targets []float64) autodiff.Value {
	return nn.SumSquaredError(predictions, targets)
}
