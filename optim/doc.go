// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim implements optimization algorithms for training models
// built on the scalar autodiff engine.
//
// Example usage:
//
//	// Create optimizer
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR: 0.05,
//	})
//
//	// Training loop
//	for epoch := 0; epoch < epochs; epoch++ {
//	    optimizer.ZeroGrad()
//	    loss := computeLoss(model, data)
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim
