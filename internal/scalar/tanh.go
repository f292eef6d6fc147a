package scalar

import "math"

// tanhOp represents the hyperbolic tangent activation: out = tanh(x).
//
// Backward pass:
//   - d(tanh(x))/dx = 1 - tanh²(x)
//
// Since the output already holds tanh(x):
// grad_input = grad_output * (1 - out²).
type tanhOp struct {
	input *Value
}

func (op *tanhOp) forward() *Value {
	return newFromOp(math.Tanh(op.input.Data), op)
}

// Backward accumulates the gradient for tanh.
func (op *tanhOp) Backward(out *Value) {
	op.input.Grad += (1 - out.Data*out.Data) * out.Grad
}

// Operands returns [x].
func (op *tanhOp) Operands() []*Value {
	return []*Value{op.input}
}

// Symbol returns the operation label.
func (op *tanhOp) Symbol() string {
	return "tanh"
}
