package scalar

import "math"

// expOp represents the exponential: out = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = out
//
// Since the output already holds exp(x), the rule reads it back instead of
// recomputing the exponential.
type expOp struct {
	input *Value
}

func (op *expOp) forward() *Value {
	return newFromOp(math.Exp(op.input.Data), op)
}

// Backward accumulates the gradient for exp.
func (op *expOp) Backward(out *Value) {
	op.input.Grad += out.Data * out.Grad
}

// Operands returns [x].
func (op *expOp) Operands() []*Value {
	return []*Value{op.input}
}

// Symbol returns the operation label.
func (op *expOp) Symbol() string {
	return "exp"
}
