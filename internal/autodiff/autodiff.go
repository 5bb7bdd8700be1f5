// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Architecture:
//   - Tape: an arena that records every node in creation order
//   - Value: a small handle (tape, index) used to build expressions
//   - ops.Operation: a tagged variant holding each node's local derivative rule
//   - Backward: a post-order DFS from the root, then each rule once in reverse
//
// Usage:
//
//	tape := autodiff.NewTape()
//	a := tape.Leaf(2)
//	b := tape.Leaf(-3)
//	d := a.Mul(b).Add(a) // d = a*b + a
//	d.Backward()
//	fmt.Println(a.Grad(), b.Grad()) // -2 2
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Add records a + b.
func (t *Tape) Add(a, b Value) Value {
	x, y := t.at(a).data, t.at(b).data
	return t.record(ops.NewAdd(a.id, b.id, x, y))
}

// Sub records a - b.
func (t *Tape) Sub(a, b Value) Value {
	x, y := t.at(a).data, t.at(b).data
	return t.record(ops.NewSub(a.id, b.id, x, y))
}

// Mul records a * b.
func (t *Tape) Mul(a, b Value) Value {
	x, y := t.at(a).data, t.at(b).data
	return t.record(ops.NewMul(a.id, b.id, x, y))
}

// Pow records a ** exponent. The exponent is a constant and receives no gradient.
func (t *Tape) Pow(a Value, exponent float64) Value {
	return t.record(ops.NewPow(a.id, t.at(a).data, exponent))
}

// Div records a / b as a * b**-1, reusing the Mul and Pow rules.
func (t *Tape) Div(a, b Value) Value {
	return t.Mul(a, t.Pow(b, -1))
}

// Tanh records tanh(a).
func (t *Tape) Tanh(a Value) Value {
	return t.record(ops.NewTanh(a.id, t.at(a).data))
}

// Exp records e ** a.
func (t *Tape) Exp(a Value) Value {
	return t.record(ops.NewExp(a.id, t.at(a).data))
}
