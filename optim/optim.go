// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/grad-ml/grad/internal/optim"
	"github.com/grad-ml/grad/internal/scalar"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// SGD represents the SGD optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	model := nn.NewMLP([]int{2, 8, 8, 1})
//	optimizer := optim.NewSGD(
//	    model.Parameters(),
//	    optim.SGDConfig{
//	        LR:       0.05,
//	        Momentum: 0.9,
//	    },
//	)
func NewSGD(params []*scalar.Value, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}
