// Package nn implements neural network modules over scalar autodiff values.
//
// This package provides building blocks for small feed-forward networks:
//   - Module interface: Base interface for layered components
//   - Parameter: Named trainable leaf on the model's tape
//   - Neuron: tanh(b + Σ wᵢxᵢ)
//   - Layer: A row of neurons sharing the same inputs
//   - MLP: Layers chained input → hidden → … → output
//   - SumSquaredError: Σ (target - prediction)²
//
// Design inspired by PyTorch's nn.Module, scaled down to scalars.
package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Module is the base interface for layered network components.
//
// Modules can be composed to build deeper networks:
//
//	tape := autodiff.NewTape()
//	rng := rand.New(rand.NewSource(42))
//	model := nn.NewMLP(tape, rng, 3, []int{4, 4, 1})
type Module interface {
	// Forward computes the module's outputs from its inputs.
	//
	// Every call appends fresh nodes to the tape; nothing is cached
	// between calls.
	Forward(inputs []autodiff.Value) []autodiff.Value

	// Parameters returns all trainable parameters of this module,
	// in a stable order.
	Parameters() []*Parameter
}
