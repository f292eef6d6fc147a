package scalar

// negOp represents negation: out = -x.
//
// Backward pass:
//   - d(-x)/dx = -1
type negOp struct {
	input *Value
}

func (op *negOp) forward() *Value {
	return newFromOp(-op.input.Data, op)
}

// Backward accumulates the gradient for negation.
func (op *negOp) Backward(out *Value) {
	op.input.Grad += -out.Grad
}

// Operands returns [x].
func (op *negOp) Operands() []*Value {
	return []*Value{op.input}
}

// Symbol returns the operation label.
func (op *negOp) Symbol() string {
	return "neg"
}
