package nn

import "github.com/grad-ml/grad/internal/scalar"

// Layer is a fully connected layer of Neurons sharing the same inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a Layer of out Neurons, each taking in inputs.
func NewLayer(in, out int) *Layer {
	neurons := make([]*Neuron, out)
	for i := range neurons {
		neurons[i] = NewNeuron(in)
	}
	return &Layer{neurons: neurons}
}

// Forward applies every neuron to the inputs, one output per neuron.
func (l *Layer) Forward(inputs []*scalar.Value) []*scalar.Value {
	outputs := make([]*scalar.Value, len(l.neurons))
	for i, n := range l.neurons {
		outputs[i] = n.Activate(inputs)
	}
	return outputs
}

// Parameters returns the parameters of every neuron in the layer.
func (l *Layer) Parameters() []*scalar.Value {
	var params []*scalar.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}
