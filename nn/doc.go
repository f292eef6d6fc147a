// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers built from scalar operations.
//
// # Overview
//
// This package contains:
//   - Neuron: tanh of an affine combination of its inputs
//   - Layer: a fully connected layer of Neurons
//   - MLP: stacked Layers
//   - Module interface: Forward plus Parameters
//
// # Basic Usage
//
//	import (
//	    "github.com/grad-ml/grad/nn"
//	    "github.com/grad-ml/grad/optim"
//	    "github.com/grad-ml/grad/scalar"
//	)
//
//	func main() {
//	    model := nn.NewMLP([]int{2, 8, 8, 1})
//	    optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	    for epoch := 0; epoch < 100; epoch++ {
//	        optimizer.ZeroGrad()
//	        out := model.Forward([]*scalar.Value{scalar.New(0.5), scalar.New(-1.0)})
//	        loss := out[0].SubConst(1.0).Pow(2)
//	        loss.Backward()
//	        optimizer.Step()
//	    }
//	}
//
// # Parameter Management
//
// Access model parameters for optimization:
//
//	params := model.Parameters()
//	for _, p := range params {
//	    p.Data -= 0.01 * p.Grad
//	}
package nn
