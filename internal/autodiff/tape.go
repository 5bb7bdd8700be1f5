package autodiff

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// node is one arena slot: forward value, accumulated gradient and the
// operation that produced it.
type node struct {
	data float64
	grad float64
	op   ops.Operation
	gen  uint64 // Tape generation at creation
}

// Tape is an arena holding every node of a scalar computation graph.
//
// Nodes are appended in creation order and identified by their index, so a
// node's children always precede it and the graph cannot contain a cycle.
//
// The arena has a pinned prefix holding trainable parameters. Reset drops
// everything after that prefix, which is how a training loop discards the
// per-iteration graph while keeping the model.
//
// Usage:
//
//	tape := NewTape()
//	w := tape.Parameter(0.5)
//	for range steps {
//	    tape.Reset()
//	    x := tape.Leaf(2)
//	    loss := w.Mul(x).SubScalar(1).Pow(2)
//	    loss.Backward()
//	    w.SetData(w.Data() - 0.1*w.Grad())
//	    w.ZeroGrad()
//	}
//
// A Tape is not safe for concurrent use.
type Tape struct {
	nodes      []node
	pinned     int    // nodes[:pinned] survive Reset
	generation uint64 // bumped by Reset so handles to dropped nodes go stale
}

// NewTape creates an empty tape.
func NewTape() *Tape {
	return &Tape{
		nodes: make([]node, 0, 64), // Pre-allocate for common case
	}
}

// Parameter creates a persistent leaf that survives Reset.
//
// Parameters must be created before any transient node of the current
// generation; call Reset first if a graph has already been built.
func (t *Tape) Parameter(x float64) Value {
	if len(t.nodes) != t.pinned {
		panic(fmt.Sprintf("autodiff: Parameter called with %d transient nodes on tape (call Reset first)",
			len(t.nodes)-t.pinned))
	}
	v := t.record(ops.NewLeaf(x))
	t.pinned++
	return v
}

// Leaf creates a transient input leaf.
func (t *Tape) Leaf(x float64) Value {
	return t.record(ops.NewLeaf(x))
}

// Constant creates a transient leaf for a numeric constant.
// It is identical to Leaf; the gradient it accumulates is simply never read.
func (t *Tape) Constant(x float64) Value {
	return t.record(ops.NewLeaf(x))
}

// Leaves wraps raw values as transient leaves, preserving order.
func (t *Tape) Leaves(xs []float64) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		out[i] = t.Leaf(x)
	}
	return out
}

// Reset discards every transient node. Parameters keep their data and grad.
// Handles to discarded nodes become stale and panic on use.
func (t *Tape) Reset() {
	clear(t.nodes[t.pinned:])
	t.nodes = t.nodes[:t.pinned]
	t.generation++
}

// ZeroGrad clears the gradient of every live node, parameters included.
func (t *Tape) ZeroGrad() {
	for i := range t.nodes {
		t.nodes[i].grad = 0
	}
}

// Len returns the number of live nodes, parameters included.
func (t *Tape) Len() int {
	return len(t.nodes)
}

// NumParameters returns the size of the pinned prefix.
func (t *Tape) NumParameters() int {
	return t.pinned
}

// record appends a node and returns its handle.
func (t *Tape) record(op ops.Operation) Value {
	id := len(t.nodes)
	t.nodes = append(t.nodes, node{data: op.Output, op: op, gen: t.generation})
	return Value{tape: t, id: id, gen: t.generation}
}

// at returns the node behind v after checking the handle is still live.
func (t *Tape) at(v Value) *node {
	if v.tape == nil {
		panic("autodiff: use of zero Value")
	}
	if v.tape != t {
		panic("autodiff: value belongs to a different tape")
	}
	if v.id >= len(t.nodes) || t.nodes[v.id].gen != v.gen {
		panic(fmt.Sprintf("autodiff: stale value #%d used after tape reset", v.id))
	}
	return &t.nodes[v.id]
}

// handle rebuilds a Value for an index known to be live.
func (t *Tape) handle(id int) Value {
	return Value{tape: t, id: id, gen: t.nodes[id].gen}
}
