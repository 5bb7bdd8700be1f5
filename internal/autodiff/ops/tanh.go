package ops

import "math"

// NewTanh creates a hyperbolic tangent node: output = tanh(a).
func NewTanh(a int, x float64) Operation {
	return Operation{
		Kind:     Tanh,
		Inputs:   [2]int{a},
		Operands: [2]float64{x},
		Output:   math.Tanh(x),
	}
}

// tanhBackward computes the gradient for tanh.
//
// For tanh(x):
// d(tanh(x))/dx = 1 - tanh²(x)
//
// Since we have the output tanh(x) already computed:
// grad_input = grad_output * (1 - output²).
func tanhBackward(op Operation, outputGrad float64) [2]float64 {
	t := op.Output
	return [2]float64{(1 - t*t) * outputGrad}
}
