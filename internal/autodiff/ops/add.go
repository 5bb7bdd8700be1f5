package ops

// NewAdd creates an addition node: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
func NewAdd(a, b int, x, y float64) Operation {
	return Operation{
		Kind:     Add,
		Inputs:   [2]int{a, b},
		Operands: [2]float64{x, y},
		Output:   x + y,
	}
}

// addBackward lets the gradient flow unchanged into both inputs.
func addBackward(_ Operation, outputGrad float64) [2]float64 {
	return [2]float64{outputGrad, outputGrad}
}
