package scalar

// reluOp represents the ReLU (Rectified Linear Unit) activation:
// out = max(0, x).
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if x > 0, else 0
type reluOp struct {
	input *Value
}

func (op *reluOp) forward() *Value {
	data := op.input.Data
	if data < 0 {
		data = 0
	}
	return newFromOp(data, op)
}

// Backward accumulates the gradient for ReLU. Gradient flows only where
// the input was strictly positive.
func (op *reluOp) Backward(out *Value) {
	if op.input.Data > 0 {
		op.input.Grad += out.Grad
	}
}

// Operands returns [x].
func (op *reluOp) Operands() []*Value {
	return []*Value{op.input}
}

// Symbol returns the operation label.
func (op *reluOp) Symbol() string {
	return "relu"
}
