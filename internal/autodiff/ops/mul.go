package ops

// NewMul creates a multiplication node: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
func NewMul(a, b int, x, y float64) Operation {
	return Operation{
		Kind:     Mul,
		Inputs:   [2]int{a, b},
		Operands: [2]float64{x, y},
		Output:   x * y,
	}
}

// mulBackward scales the gradient by the other operand's captured value.
func mulBackward(op Operation, outputGrad float64) [2]float64 {
	x, y := op.Operands[0], op.Operands[1]
	return [2]float64{y * outputGrad, x * outputGrad}
}
