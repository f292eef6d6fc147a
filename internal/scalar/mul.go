package scalar

// mulOp represents multiplication: out = a * b.
//
// Backward pass:
//   - d(a*b)/da = b
//   - d(a*b)/db = a
//
// Operand values are the snapshots taken at construction time.
type mulOp struct {
	left  *Value
	right *Value
}

func (op *mulOp) forward() *Value {
	return newFromOp(op.left.Data*op.right.Data, op)
}

// Backward accumulates gradients for multiplication.
func (op *mulOp) Backward(out *Value) {
	op.left.Grad += op.right.Data * out.Grad
	op.right.Grad += op.left.Data * out.Grad
}

// Operands returns [a, b].
func (op *mulOp) Operands() []*Value {
	return []*Value{op.left, op.right}
}

// Symbol returns the operation label.
func (op *mulOp) Symbol() string {
	return "*"
}
