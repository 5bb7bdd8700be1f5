package autodiff

// Backward computes d(root)/d(node) for every node reachable from root.
//
// Algorithm:
//  1. Seed root.grad = 1 (d(root)/d(root))
//  2. Build a topological order with a post-order DFS from root
//  3. Walk the order in reverse, applying each node's local rule exactly once
//
// Gradients accumulate with +=, so a node used in several places receives the
// sum of every contribution. Call ZeroGrad on leaves (or Reset the tape)
// between passes.
func (t *Tape) Backward(root Value) {
	t.BackwardFunc(root, nil)
}

// BackwardFunc is Backward with a hook called after each node's rule runs,
// in execution order. A nil visit is allowed.
func (t *Tape) BackwardFunc(root Value, visit func(Value)) {
	order := t.topological(root)

	t.nodes[root.id].grad = 1

	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		n := &t.nodes[id]
		if n.op.Kind.Arity() > 0 {
			contrib := n.op.Backward(n.grad)
			for j, child := range n.op.Children() {
				t.nodes[child].grad += contrib[j]
			}
		}
		if visit != nil {
			visit(t.handle(id))
		}
	}
}

// Topological returns every node reachable from root, each exactly once,
// ordered so that a node appears after all of its children. Root is last.
func (t *Tape) Topological(root Value) []Value {
	ids := t.topological(root)
	out := make([]Value, len(ids))
	for i, id := range ids {
		out[i] = t.handle(id)
	}
	return out
}

// frame is one DFS stack entry: a node and how many of its children have
// been pushed so far.
type frame struct {
	id   int
	next int
}

// topological is an iterative post-order DFS keyed by arena index.
func (t *Tape) topological(root Value) []int {
	t.at(root)

	// Children precede parents, so nothing above root.id is reachable.
	visited := make([]bool, root.id+1)
	order := make([]int, 0, root.id+1)
	stack := []frame{{id: root.id}}
	visited[root.id] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		children := t.nodes[top.id].op.Children()
		if top.next < len(children) {
			child := children[top.next]
			top.next++
			if !visited[child] {
				visited[child] = true
				stack = append(stack, frame{id: child})
			}
			continue
		}
		order = append(order, top.id)
		stack = stack[:len(stack)-1]
	}

	return order
}
