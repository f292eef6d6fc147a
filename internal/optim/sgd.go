package optim

import "github.com/grad-ml/grad/internal/scalar"

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param.Data -= lr * param.Grad
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + param.Grad
//	param.Data -= lr * velocity
//
// The update mutates the leaf's Data in place; the next forward pass
// builds a fresh graph from the updated snapshot.
type SGD struct {
	params     []*scalar.Value
	lr         float64
	momentum   float64
	velocities map[*scalar.Value]float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // learning rate (default: 0.01)
	Momentum float64 // momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD(params []*scalar.Value, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*scalar.Value]float64),
	}
}

// Step performs a single optimization step over all parameters.
func (s *SGD) Step() {
	for _, p := range s.params {
		if s.momentum == 0 {
			p.Data -= s.lr * p.Grad
			continue
		}
		v := s.momentum*s.velocities[p] + p.Grad
		s.velocities[p] = v
		p.Data -= s.lr * v
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.Grad = 0
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
