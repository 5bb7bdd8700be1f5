package autodiff

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Value is a handle to one node on a Tape.
//
// Two Values are the same node only if they have the same tape and ID;
// equal data says nothing about identity. The zero Value is not usable.
type Value struct {
	tape *Tape
	id   int
	gen  uint64
}

func (v Value) node() *node {
	return v.tape.at(v)
}

// Tape returns the tape that owns v.
func (v Value) Tape() *Tape {
	return v.tape
}

// ID returns the node's arena index, its identity on the tape.
func (v Value) ID() int {
	return v.id
}

// Data returns the forward value.
func (v Value) Data() float64 {
	return v.node().data
}

// SetData overwrites a leaf's value. Operator nodes are immutable.
func (v Value) SetData(x float64) {
	n := v.node()
	if n.op.Kind != ops.Leaf {
		panic(fmt.Sprintf("autodiff: SetData on %s node #%d", n.op.Kind, v.id))
	}
	n.data = x
	n.op.Output = x
}

// Grad returns the accumulated gradient.
func (v Value) Grad() float64 {
	return v.node().grad
}

// ZeroGrad resets the accumulated gradient to 0.
func (v Value) ZeroGrad() {
	v.node().grad = 0
}

// Kind returns the operation that produced v.
func (v Value) Kind() ops.Kind {
	return v.node().op.Kind
}

// IsLeaf reports whether v has no children.
func (v Value) IsLeaf() bool {
	return v.Kind() == ops.Leaf
}

// Children returns the operands v was built from, in operator order.
func (v Value) Children() []Value {
	ids := v.node().op.Children()
	out := make([]Value, len(ids))
	for i, id := range ids {
		out[i] = v.tape.handle(id)
	}
	return out
}

// String formats v as "Value(data=…, grad=…)".
func (v Value) String() string {
	n := v.node()
	return fmt.Sprintf("Value(data=%g, grad=%g)", n.data, n.grad)
}

// Add returns v + other.
func (v Value) Add(other Value) Value { return v.tape.Add(v, other) }

// Sub returns v - other.
func (v Value) Sub(other Value) Value { return v.tape.Sub(v, other) }

// Mul returns v * other.
func (v Value) Mul(other Value) Value { return v.tape.Mul(v, other) }

// Div returns v / other.
func (v Value) Div(other Value) Value { return v.tape.Div(v, other) }

// Pow returns v ** exponent.
func (v Value) Pow(exponent float64) Value { return v.tape.Pow(v, exponent) }

// Tanh returns tanh(v).
func (v Value) Tanh() Value { return v.tape.Tanh(v) }

// Exp returns e ** v.
func (v Value) Exp() Value { return v.tape.Exp(v) }

// Neg returns -v, recorded as v * -1.
func (v Value) Neg() Value { return v.MulScalar(-1) }

// Constant forms. The float is wrapped as a fresh childless leaf on v's tape.

// AddScalar returns v + c.
func (v Value) AddScalar(c float64) Value { return v.Add(v.constant(c)) }

// SubScalar returns v - c.
func (v Value) SubScalar(c float64) Value { return v.Sub(v.constant(c)) }

// MulScalar returns v * c.
func (v Value) MulScalar(c float64) Value { return v.Mul(v.constant(c)) }

// DivScalar returns v / c.
func (v Value) DivScalar(c float64) Value { return v.Div(v.constant(c)) }

// RAdd returns c + v.
func (v Value) RAdd(c float64) Value { return v.constant(c).Add(v) }

// RSub returns c - v.
func (v Value) RSub(c float64) Value { return v.constant(c).Sub(v) }

// RMul returns c * v.
func (v Value) RMul(c float64) Value { return v.constant(c).Mul(v) }

// RDiv returns c / v.
func (v Value) RDiv(c float64) Value { return v.constant(c).Div(v) }

// Detach returns a new leaf holding v's current data. Gradients stop there.
func (v Value) Detach() Value {
	return v.tape.Leaf(v.Data())
}

// Backward runs the backward pass with v as the root.
func (v Value) Backward() { v.tape.Backward(v) }

func (v Value) constant(c float64) Value {
	v.node()
	return v.tape.Constant(c)
}
