package ops

import "math"

// NewPow creates a power node: output = a ** exponent.
//
// The exponent is a plain constant; no gradient flows into it.
//
// Backward pass:
//   - d(a**p)/da = p * a**(p-1)
func NewPow(a int, x, exponent float64) Operation {
	return Operation{
		Kind:     Pow,
		Inputs:   [2]int{a},
		Operands: [2]float64{x},
		Exponent: exponent,
		Output:   math.Pow(x, exponent),
	}
}

func powBackward(op Operation, outputGrad float64) [2]float64 {
	x, p := op.Operands[0], op.Exponent
	return [2]float64{p * math.Pow(x, p-1) * outputGrad}
}
