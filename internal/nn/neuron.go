package nn

import (
	"fmt"

	"github.com/grad-ml/grad/internal/scalar"
)

// Neuron is a single unit computing tanh(w·x + b).
//
// Weights and bias are leaf Values drawn from U(-1, 1) and exposed through
// Parameters so an optimizer can update them in place.
type Neuron struct {
	weights []*scalar.Value
	bias    *scalar.Value
}

// NewNeuron creates a Neuron taking in inputs.
func NewNeuron(in int) *Neuron {
	weights := make([]*scalar.Value, in)
	for i := range weights {
		weights[i] = scalar.New(Uniform(-1, 1))
	}
	return &Neuron{
		weights: weights,
		bias:    scalar.New(Uniform(-1, 1)),
	}
}

// Activate computes tanh(w·x + b) for the given inputs.
//
// Panics if the input length does not match the neuron's fan-in; arity is
// fixed at construction and a mismatch is a programming error.
func (n *Neuron) Activate(inputs []*scalar.Value) *scalar.Value {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("nn: input size mismatch: expected %d, got %d", len(n.weights), len(inputs)))
	}
	z := n.bias
	for i, w := range n.weights {
		z = z.Add(w.Mul(inputs[i]))
	}
	return z.Tanh()
}

// Forward implements Module; the output slice holds the single activation.
func (n *Neuron) Forward(inputs []*scalar.Value) []*scalar.Value {
	return []*scalar.Value{n.Activate(inputs)}
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*scalar.Value {
	params := make([]*scalar.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	params = append(params, n.bias)
	return params
}
