package ops

import "math"

// NewExp creates an exponential node: output = e**a.
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = output
//   - grad_input = grad_output * output
func NewExp(a int, x float64) Operation {
	return Operation{
		Kind:     Exp,
		Inputs:   [2]int{a},
		Operands: [2]float64{x},
		Output:   math.Exp(x),
	}
}

func expBackward(op Operation, outputGrad float64) [2]float64 {
	return [2]float64{op.Output * outputGrad}
}
