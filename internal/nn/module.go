// Package nn implements neural network building blocks on top of the
// scalar autodiff engine.
//
// This package provides:
//   - Module interface: base interface for all NN components
//   - Neuron: a single unit computing tanh(w·x + b)
//   - Layer: a fully connected layer of Neurons
//   - MLP: a multi-layer perceptron chaining Layers
//
// Every component is built purely from repeated scalar operations, so a
// forward pass extends the same computation graph the engine
// differentiates. Parameters returns the trainable leaves so an optimizer
// can adjust them between passes.
package nn

import "github.com/grad-ml/grad/internal/scalar"

// Module is the base interface for all neural network components.
//
// Modules can be composed to build deeper architectures:
//
//	model := nn.NewMLP([]int{2, 8, 8, 1})
//	out := model.Forward(inputs)
type Module interface {
	// Forward computes the module output for the given inputs.
	// The input slice length must match the module's expected input size.
	Forward(inputs []*scalar.Value) []*scalar.Value

	// Parameters returns all trainable parameters of this module,
	// including nested module parameters.
	Parameters() []*scalar.Value
}
