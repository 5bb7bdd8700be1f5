package ops

// NewSub creates a subtraction node: output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = outputGrad
//   - d(a-b)/db = -1, so grad_b = -outputGrad
func NewSub(a, b int, x, y float64) Operation {
	return Operation{
		Kind:     Sub,
		Inputs:   [2]int{a, b},
		Operands: [2]float64{x, y},
		Output:   x - y,
	}
}

// subBackward computes input gradients for subtraction.
// The subtrahend receives the negated gradient.
func subBackward(_ Operation, outputGrad float64) [2]float64 {
	return [2]float64{outputGrad, -outputGrad}
}
