package scalar

import "math"

// powOp represents raising to a constant exponent: out = a**k.
//
// Backward pass (power rule):
//   - d(a**k)/da = k * a**(k-1)
//
// The exponent is a plain float64, not a Value, so no gradient flows to it.
type powOp struct {
	base     *Value
	exponent float64
}

func (op *powOp) forward() *Value {
	return newFromOp(math.Pow(op.base.Data, op.exponent), op)
}

// Backward accumulates the gradient for the base.
func (op *powOp) Backward(out *Value) {
	op.base.Grad += op.exponent * math.Pow(op.base.Data, op.exponent-1) * out.Grad
}

// Operands returns [a].
func (op *powOp) Operands() []*Value {
	return []*Value{op.base}
}

// Symbol returns the operation label.
func (op *powOp) Symbol() string {
	return "**"
}
