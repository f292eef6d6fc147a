package nn

import "github.com/grad-ml/grad/internal/scalar"

// MLP is a multi-layer perceptron: Layers chained so each layer consumes
// the previous layer's outputs.
//
// Example:
//
//	// 2 inputs, two hidden layers of 8, 1 output
//	model := nn.NewMLP([]int{2, 8, 8, 1})
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP from consecutive layer sizes. sizes[0] is the
// input width; each following entry is the width of one layer.
func NewMLP(sizes []int) *MLP {
	layers := make([]*Layer, 0, len(sizes)-1)
	for i := 1; i < len(sizes); i++ {
		layers = append(layers, NewLayer(sizes[i-1], sizes[i]))
	}
	return &MLP{layers: layers}
}

// Forward feeds the inputs through every layer in order.
func (m *MLP) Forward(inputs []*scalar.Value) []*scalar.Value {
	outputs := inputs
	for _, layer := range m.layers {
		outputs = layer.Forward(outputs)
	}
	return outputs
}

// Parameters returns the parameters of every layer.
func (m *MLP) Parameters() []*scalar.Value {
	var params []*scalar.Value
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}
