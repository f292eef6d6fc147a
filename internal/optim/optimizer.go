// Package optim implements optimization algorithms for training models
// built on the scalar autodiff engine.
//
// Example usage:
//
//	model := nn.NewMLP([]int{2, 8, 8, 1})
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for epoch := range epochs {
//	    optimizer.ZeroGrad()
//	    loss := computeLoss(model, data)
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update trainable leaf Values in place based on the gradients
// left by the most recent Backward call.
type Optimizer interface {
	// Step applies one gradient update to all parameters.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// Backward resets gradients for the nodes it traverses, so this is
	// strictly needed only for parameters that may fall outside the next
	// traversal; clearing between steps keeps stale gradients from ever
	// being read.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate. Useful for scheduling.
	SetLR(lr float64)
}
