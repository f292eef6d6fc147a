package scalar

// Op represents a differentiable operation in the computation graph.
// Each operation records its operands during the forward pass and, during
// the backward pass, converts the output's accumulated gradient into
// contributions added onto the operands' gradients.
type Op interface {
	// Backward applies the operation's local derivative rule.
	// out is the Value this operation produced; its Grad holds the final
	// accumulated gradient by the time Backward runs. Contributions are
	// added into each operand's Grad, never assigned, because an operand
	// may have several consumers whose contributions must sum.
	Backward(out *Value)

	// Operands returns the input Values in left-to-right order.
	// Order matters for asymmetric operations (Sub, Div, Pow).
	Operands() []*Value

	// Symbol returns a short label for the operation, used when the graph
	// is rendered for inspection.
	Symbol() string
}
