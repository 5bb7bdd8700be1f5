package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Parameter represents a trainable parameter in a neural network.
//
// A parameter is a pinned leaf on the model's tape, so it survives
// Tape.Reset between iterations while the graph built on top of it does not.
//
// Example:
//
//	w := nn.NewParameter("w0", tape.Parameter(0.3))
//	loss.Backward()
//	w.SetData(w.Data() - lr*w.Grad())
//	w.ZeroGrad()
type Parameter struct {
	name  string         // Parameter name (e.g., "layers.0.neurons.1.w2")
	value autodiff.Value // Pinned leaf holding data and grad
}

// NewParameter wraps a pinned leaf as a named parameter.
func NewParameter(name string, value autodiff.Value) *Parameter {
	return &Parameter{
		name:  name,
		value: value,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the leaf used when building expressions.
func (p *Parameter) Value() autodiff.Value {
	return p.value
}

// Data returns the current parameter value.
func (p *Parameter) Data() float64 {
	return p.value.Data()
}

// SetData overwrites the parameter value.
//
// This is typically called by the optimizer after a backward pass.
func (p *Parameter) SetData(x float64) {
	p.value.SetData(x)
}

// Grad returns the gradient accumulated by the last backward pass.
func (p *Parameter) Grad() float64 {
	return p.value.Grad()
}

// ZeroGrad clears the gradient.
//
// This must run after every update so the next backward pass starts
// from zero instead of accumulating onto stale gradients.
func (p *Parameter) ZeroGrad() {
	p.value.ZeroGrad()
}
