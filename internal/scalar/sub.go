package scalar

// subOp represents subtraction: out = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1
//   - d(a-b)/db = -1
type subOp struct {
	left  *Value
	right *Value
}

func (op *subOp) forward() *Value {
	return newFromOp(op.left.Data-op.right.Data, op)
}

// Backward accumulates gradients for subtraction.
func (op *subOp) Backward(out *Value) {
	op.left.Grad += out.Grad
	op.right.Grad -= out.Grad
}

// Operands returns [a, b].
func (op *subOp) Operands() []*Value {
	return []*Value{op.left, op.right}
}

// Symbol returns the operation label.
func (op *subOp) Symbol() string {
	return "-"
}
