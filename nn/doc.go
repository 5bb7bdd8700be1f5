// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a scalar multi-layer perceptron.
//
// # Overview
//
// This package contains:
//   - Neuron: tanh(b + Σ wᵢxᵢ) with weights drawn from [-1, 1)
//   - Layer: independent neurons sharing the same inputs
//   - MLP: layers chained so each layer's outputs feed the next
//   - SumSquaredError: Σ (target - prediction)²
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/micrograd/autodiff"
//	    "github.com/born-ml/micrograd/nn"
//	)
//
//	func main() {
//	    tape := autodiff.NewTape()
//	    model := nn.NewMLP(tape, nn.NewRand(42), 3, []int{4, 4, 1})
//
//	    for range 50 {
//	        tape.Reset()
//	        loss := nn.SumSquaredError(model.Predict([]float64{2, 3, -1}), []float64{1})
//	        loss.Backward()
//	        model.Nudge(0.05)
//	    }
//	}
//
// # Parameters and the tape
//
// Parameters are created on the tape's pinned prefix, so they survive
// Tape.Reset while each iteration's graph is discarded. Create the whole
// model before building any expression on its tape.
package nn
