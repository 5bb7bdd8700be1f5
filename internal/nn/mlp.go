package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MLP is a multi-layer perceptron: layers chained so that each layer's
// outputs become the next layer's inputs.
//
// Example:
//
//	tape := autodiff.NewTape()
//	model := nn.NewMLP(tape, nn.NewRand(42), 3, []int{4, 4, 1})
//
//	for range iterations {
//	    tape.Reset()
//	    out := model.Predict([]float64{2, 3, -1})
//	    loss := nn.SumSquaredError(out, []float64{1})
//	    loss.Backward()
//	    model.Nudge(0.05)
//	}
type MLP struct {
	tape   *autodiff.Tape
	layers []*Layer
}

// NewMLP creates a network with nin inputs and one layer per entry of nouts.
//
// All parameters are pinned on tape, so tape must not hold transient nodes.
func NewMLP(tape *autodiff.Tape, rng *rand.Rand, nin int, nouts []int) *MLP {
	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range layers {
		layers[i] = newLayer(tape, rng, sizes[i], sizes[i+1], fmt.Sprintf("layers.%d.", i))
	}
	return &MLP{
		tape:   tape,
		layers: layers,
	}
}

// Forward feeds inputs through every layer and returns the last layer's outputs.
func (m *MLP) Forward(inputs []autodiff.Value) []autodiff.Value {
	outputs := inputs
	for _, layer := range m.layers {
		outputs = layer.Forward(outputs)
	}
	return outputs
}

// Predict wraps raw inputs as leaves on the model's tape and runs Forward.
func (m *MLP) Predict(inputs []float64) []autodiff.Value {
	return m.Forward(m.tape.Leaves(inputs))
}

// Parameters returns all parameters, layer by layer.
func (m *MLP) Parameters() []*Parameter {
	var params []*Parameter
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// Nudge applies one gradient-descent step to every parameter and then clears
// its gradient: data -= lr * grad; grad = 0.
//
// Call it once per backward pass. All parameters are updated from the same
// gradients; none is skipped.
func (m *MLP) Nudge(lr float64) {
	for _, p := range m.Parameters() {
		p.SetData(p.Data() - lr*p.Grad())
		p.ZeroGrad()
	}
}

// ZeroGrad clears every parameter's gradient.
func (m *MLP) ZeroGrad() {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// Tape returns the tape holding the model's parameters.
func (m *MLP) Tape() *autodiff.Tape {
	return m.tape
}

// Layers returns the model's layers in order.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// NumInputs returns the width of the input layer.
func (m *MLP) NumInputs() int {
	if len(m.layers) == 0 {
		return 0
	}
	return m.layers[0].InFeatures()
}

// NumOutputs returns the width of the last layer.
func (m *MLP) NumOutputs() int {
	if len(m.layers) == 0 {
		return 0
	}
	return m.layers[len(m.layers)-1].OutFeatures()
}
