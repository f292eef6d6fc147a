package scalar

// addOp represents addition: out = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1
//   - d(a+b)/db = 1
//
// The output gradient flows unchanged to both operands.
type addOp struct {
	left  *Value
	right *Value
}

func (op *addOp) forward() *Value {
	return newFromOp(op.left.Data+op.right.Data, op)
}

// Backward accumulates gradients for addition.
func (op *addOp) Backward(out *Value) {
	op.left.Grad += out.Grad
	op.right.Grad += out.Grad
}

// Operands returns [a, b].
func (op *addOp) Operands() []*Value {
	return []*Value{op.left, op.right}
}

// Symbol returns the operation label.
func (op *addOp) Symbol() string {
	return "+"
}
