// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/grad-ml/grad/internal/nn"
)

// Module is the base interface for all neural network components.
type Module = nn.Module

// Neuron is a single unit computing tanh(w·x + b).
type Neuron = nn.Neuron

// Layer is a fully connected layer of Neurons.
type Layer = nn.Layer

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// NewNeuron creates a Neuron taking in inputs, with weights and bias drawn
// from U(-1, 1).
func NewNeuron(in int) *Neuron {
	return nn.NewNeuron(in)
}

// NewLayer creates a Layer of out Neurons, each taking in inputs.
func NewLayer(in, out int) *Layer {
	return nn.NewLayer(in, out)
}

// NewMLP creates an MLP from consecutive layer sizes.
//
// Example:
//
//	model := nn.NewMLP([]int{2, 8, 8, 1})
func NewMLP(sizes []int) *MLP {
	return nn.NewMLP(sizes)
}
