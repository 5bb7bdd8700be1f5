// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Every value lives on a Tape. Operators record new nodes on the tape, and
// Backward fills in d(root)/d(node) for every node the root depends on.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    tape := autodiff.NewTape()
//	    a := tape.Leaf(2.0)
//	    b := tape.Leaf(-3.0)
//	    c := tape.Leaf(10.0)
//
//	    d := a.Mul(b).Add(c)  // 4
//	    d.Backward()
//
//	    fmt.Println(a.Grad(), b.Grad())  // -3 2
//	}
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Tape is the arena that owns every node of a computation graph.
type Tape = autodiff.Tape

// Value is a handle to one node on a Tape.
type Value = autodiff.Value

// Kind identifies the operator that produced a Value.
type Kind = ops.Kind

// Operator kinds.
const (
	Leaf = ops.Leaf
	Add  = ops.Add
	Sub  = ops.Sub
	Mul  = ops.Mul
	Pow  = ops.Pow
	Tanh = ops.Tanh
	Exp  = ops.Exp
)

// NewTape creates an empty tape.
func NewTape() *Tape {
	return autodiff.NewTape()
}
