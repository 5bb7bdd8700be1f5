// Package ops defines the differentiable scalar operations recorded on a tape.
//
// An Operation is a tagged variant: the Kind selects the forward formula and
// the local derivative, while the remaining fields hold the input indices and
// the values captured when the node was created. The tape dispatches on the
// Kind during the backward pass instead of calling stored closures.
//
// Supported operations:
//   - Add: a + b (d/da = 1, d/db = 1)
//   - Sub: a - b (d/da = 1, d/db = -1)
//   - Mul: a * b (d/da = b, d/db = a)
//   - Pow: a ** p for a constant p (d/da = p * a**(p-1))
//   - Tanh: tanh(a) (d/da = 1 - tanh²(a))
//   - Exp: e**a (d/da = e**a)
package ops

import "fmt"

// Kind identifies the operation that produced a node.
type Kind uint8

// Operation kinds. Leaf marks inputs, parameters and constants.
const (
	Leaf Kind = iota
	Add
	Sub
	Mul
	Pow
	Tanh
	Exp
)

var kindNames = [...]string{
	Leaf: "leaf",
	Add:  "+",
	Sub:  "-",
	Mul:  "*",
	Pow:  "**",
	Tanh: "tanh",
	Exp:  "exp",
}

// String returns the operator symbol.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Arity returns the number of inputs an operation of this kind consumes.
func (k Kind) Arity() int {
	switch k {
	case Add, Sub, Mul:
		return 2
	case Pow, Tanh, Exp:
		return 1
	default:
		return 0
	}
}

// Operation records one node of the computation graph.
type Operation struct {
	Kind     Kind
	Inputs   [2]int     // Tape indices of the operands, Arity() of them are valid
	Operands [2]float64 // Operand values captured at construction
	Exponent float64    // Pow only
	Output   float64    // Forward result
}

// NewLeaf creates a childless operation holding x.
func NewLeaf(x float64) Operation {
	return Operation{Kind: Leaf, Output: x}
}

// Children returns the valid input indices in operator order.
func (op Operation) Children() []int {
	return op.Inputs[:op.Kind.Arity()]
}

// Backward returns the contribution of outputGrad to each input's gradient.
// Entries past Arity() are zero.
func (op Operation) Backward(outputGrad float64) [2]float64 {
	switch op.Kind {
	case Add:
		return addBackward(op, outputGrad)
	case Sub:
		return subBackward(op, outputGrad)
	case Mul:
		return mulBackward(op, outputGrad)
	case Pow:
		return powBackward(op, outputGrad)
	case Tanh:
		return tanhBackward(op, outputGrad)
	case Exp:
		return expBackward(op, outputGrad)
	default:
		return [2]float64{}
	}
}

// String renders the operation for debugging, e.g. "#3 * #5".
func (op Operation) String() string {
	switch op.Kind.Arity() {
	case 2:
		return fmt.Sprintf("#%d %s #%d", op.Inputs[0], op.Kind, op.Inputs[1])
	case 1:
		if op.Kind == Pow {
			return fmt.Sprintf("#%d ** %g", op.Inputs[0], op.Exponent)
		}
		return fmt.Sprintf("%s(#%d)", op.Kind, op.Inputs[0])
	default:
		return fmt.Sprintf("leaf(%g)", op.Output)
	}
}
