package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Layer is a row of neurons that all read the same inputs.
//
// Example:
//
//	layer := nn.NewLayer(tape, rng, 3, 4)
//	outputs := layer.Forward(inputs) // len(outputs) == 4
type Layer struct {
	inFeatures int
	neurons    []*Neuron
}

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(tape *autodiff.Tape, rng *rand.Rand, nin, nout int) *Layer {
	return newLayer(tape, rng, nin, nout, "")
}

func newLayer(tape *autodiff.Tape, rng *rand.Rand, nin, nout int, prefix string) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = newNeuron(tape, rng, nin, fmt.Sprintf("%sneurons.%d.", prefix, i))
	}
	return &Layer{
		inFeatures: nin,
		neurons:    neurons,
	}
}

// Forward returns one output per neuron, in neuron order.
func (l *Layer) Forward(inputs []autodiff.Value) []autodiff.Value {
	outputs := make([]autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		outputs[i] = n.Forward(inputs)
	}
	return outputs
}

// Parameters returns every neuron's parameters, in neuron order.
func (l *Layer) Parameters() []*Parameter {
	var params []*Parameter
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// InFeatures returns the number of inputs.
func (l *Layer) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of neurons.
func (l *Layer) OutFeatures() int {
	return len(l.neurons)
}
