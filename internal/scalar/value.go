// Package scalar implements reverse-mode automatic differentiation over
// scalar values.
//
// A Value wraps a float64 and records, at construction time, the operation
// that produced it. Combining Values through the arithmetic and activation
// methods builds a directed acyclic graph bottom-up; calling Backward on an
// output Value computes the partial derivative of that output with respect
// to every Value in its ancestry.
//
// Supported operations:
//   - Add, Sub, Mul, Div: binary arithmetic
//   - Pow: raise to a constant exponent
//   - Neg: negation
//   - Exp, Tanh, ReLU: unary activations
package scalar

import "strconv"

// Value is a node in the computation graph.
//
// Data is the forward result, computed once when the Value is constructed.
// It is a snapshot: mutating an operand's Data after a derived Value exists
// does not recompute the derived Value. Trainable parameters rely on this —
// an optimizer adjusts Data between passes and the next forward pass builds
// a fresh graph from the new snapshot.
//
// Grad accumulates the partial derivative of some output with respect to
// this Value. It is reset and populated by Backward; before any Backward
// call has reached the node it holds zero.
type Value struct {
	Data float64
	Grad float64
	op   Op // nil for leaves
}

// New creates a leaf Value from a raw number.
//
// Leaves have no operands and contribute nothing during the backward pass
// beyond receiving gradient from their consumers. Any float64 is accepted,
// including non-finite values; they propagate through later operations with
// ordinary IEEE-754 semantics.
func New(data float64) *Value {
	return &Value{Data: data}
}

// newFromOp creates a Value produced by op.
func newFromOp(data float64, op Op) *Value {
	return &Value{Data: data, op: op}
}

// Op returns the operation that produced this Value, or nil for a leaf.
func (v *Value) Op() Op {
	return v.op
}

// String returns the forward value, formatted like strconv.FormatFloat
// with the shortest representation.
func (v *Value) String() string {
	return strconv.FormatFloat(v.Data, 'g', -1, 64)
}

// Add returns a new Value holding v + other.
func (v *Value) Add(other *Value) *Value {
	return (&addOp{left: v, right: other}).forward()
}

// Sub returns a new Value holding v - other.
func (v *Value) Sub(other *Value) *Value {
	return (&subOp{left: v, right: other}).forward()
}

// Mul returns a new Value holding v * other.
func (v *Value) Mul(other *Value) *Value {
	return (&mulOp{left: v, right: other}).forward()
}

// Div returns a new Value holding v / other.
//
// Division by exactly zero is not guarded; the quotient follows IEEE-754
// semantics and the backward pass will produce non-finite gradients.
func (v *Value) Div(other *Value) *Value {
	return (&divOp{left: v, right: other}).forward()
}

// Pow returns a new Value holding v raised to the constant exponent k.
func (v *Value) Pow(k float64) *Value {
	return (&powOp{base: v, exponent: k}).forward()
}

// Neg returns a new Value holding -v.
func (v *Value) Neg() *Value {
	return (&negOp{input: v}).forward()
}

// Exp returns a new Value holding e**v.
func (v *Value) Exp() *Value {
	return (&expOp{input: v}).forward()
}

// Tanh returns a new Value holding tanh(v).
func (v *Value) Tanh() *Value {
	return (&tanhOp{input: v}).forward()
}

// ReLU returns a new Value holding max(0, v).
func (v *Value) ReLU() *Value {
	return (&reluOp{input: v}).forward()
}

// AddConst returns v + c. The constant is lifted to a leaf Value so the
// graph only ever contains Value-typed operands.
func (v *Value) AddConst(c float64) *Value {
	return v.Add(New(c))
}

// SubConst returns v - c.
func (v *Value) SubConst(c float64) *Value {
	return v.Sub(New(c))
}

// MulConst returns v * c.
func (v *Value) MulConst(c float64) *Value {
	return v.Mul(New(c))
}

// DivConst returns v / c.
func (v *Value) DivConst(c float64) *Value {
	return v.Div(New(c))
}
