package scalar

// visit states for the depth-first walk.
const (
	unvisited = iota
	inProgress
	done
)

// Backward computes, for every Value reachable from v through operands,
// the partial derivative of v with respect to that Value, accumulated into
// its Grad field. v's own gradient is seeded to exactly 1.
//
// Algorithm:
//  1. Discover the reachable set and a depth-first post-order of it,
//     keyed by node identity (two nodes sharing a numeric value are
//     distinct graph nodes).
//  2. Reset every discovered node's Grad to 0. Earlier calls therefore do
//     not leak into this one; calling Backward twice on the same output
//     yields the same gradients both times.
//  3. Seed v.Grad = 1 and replay the post-order reversed, invoking each
//     node's operation rule once. Reversing the post-order guarantees a
//     node's rule fires only after every consumer has already added its
//     contribution, so diamond-shaped dependencies propagate the full
//     summed gradient, never a partial one.
//
// Values not reachable from v are untouched. Calling Backward on an
// interior node is supported: it computes the gradient of that node's
// value with respect to its own ancestry, ignoring any consumers the node
// has elsewhere (consumers are unreachable through operand edges).
func (v *Value) Backward() {
	order := topoOrder(v)

	for _, n := range order {
		n.Grad = 0
	}
	v.Grad = 1

	// order ends with v; walk it back to front so every node's consumers
	// run first.
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		if n.op != nil {
			n.op.Backward(n)
		}
	}
}

// topoOrder returns the depth-first post-order of root's ancestry,
// root last. Construction discipline makes a cycle structurally
// impossible; if one shows up anyway the graph is corrupt, so the walk
// fails fast rather than recurse forever.
func topoOrder(root *Value) []*Value {
	state := make(map[*Value]int)
	order := make([]*Value, 0, 64)

	var visit func(n *Value)
	visit = func(n *Value) {
		switch state[n] {
		case done:
			return
		case inProgress:
			panic("scalar: cycle detected in computation graph (internal invariant violated)")
		}
		state[n] = inProgress
		if n.op != nil {
			for _, operand := range n.op.Operands() {
				visit(operand)
			}
		}
		state[n] = done
		order = append(order, n)
	}
	visit(root)

	return order
}
