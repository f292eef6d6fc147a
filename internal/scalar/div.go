package scalar

// divOp represents division: out = a / b.
//
// Backward pass (quotient rule):
//   - d(a/b)/da = 1/b
//   - d(a/b)/db = -a/b²
//
// Division by exactly zero is a caller responsibility; the forward result
// and both gradient contributions follow IEEE-754 semantics.
type divOp struct {
	left  *Value
	right *Value
}

func (op *divOp) forward() *Value {
	return newFromOp(op.left.Data/op.right.Data, op)
}

// Backward accumulates gradients for division.
func (op *divOp) Backward(out *Value) {
	op.left.Grad += out.Grad / op.right.Data
	op.right.Grad += -out.Grad * op.left.Data / (op.right.Data * op.right.Data)
}

// Operands returns [a, b].
func (op *divOp) Operands() []*Value {
	return []*Value{op.left, op.right}
}

// Symbol returns the operation label.
func (op *divOp) Symbol() string {
	return "/"
}
