package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Neuron computes tanh(b + Σ wᵢxᵢ).
//
// Weights and bias are drawn uniformly from [-1, 1). The weighted sum is a
// left fold starting at the bias, one weight at a time, so the recorded graph
// is a chain rather than a tree.
//
// Neuron returns a single value and therefore is not itself a Module;
// Layer is the smallest Module.
type Neuron struct {
	weights []*Parameter
	bias    *Parameter
}

// NewNeuron creates a neuron with nin inputs. Its parameters are pinned on tape.
func NewNeuron(tape *autodiff.Tape, rng *rand.Rand, nin int) *Neuron {
	return newNeuron(tape, rng, nin, "")
}

func newNeuron(tape *autodiff.Tape, rng *rand.Rand, nin int, prefix string) *Neuron {
	weights := make([]*Parameter, nin)
	for i := range weights {
		name := fmt.Sprintf("%sw%d", prefix, i)
		weights[i] = NewParameter(name, tape.Parameter(Uniform(rng, -1, 1)))
	}
	bias := NewParameter(prefix+"b", tape.Parameter(Uniform(rng, -1, 1)))

	return &Neuron{
		weights: weights,
		bias:    bias,
	}
}

// Forward computes the neuron's activation.
//
// Panics if len(inputs) differs from the number of weights.
func (n *Neuron) Forward(inputs []autodiff.Value) autodiff.Value {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("nn: Neuron.Forward: expected %d inputs, got %d", len(n.weights), len(inputs)))
	}

	act := n.bias.Value()
	for i, w := range n.weights {
		act = act.Add(w.Value().Mul(inputs[i]))
	}
	return act.Tanh()
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// NumInputs returns the number of weights.
func (n *Neuron) NumInputs() int {
	return len(n.weights)
}
