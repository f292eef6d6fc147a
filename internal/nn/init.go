package nn

import "math/rand"

// Uniform returns a sample drawn from U(low, high), used for weight and
// bias initialization.
//
//nolint:gosec // math/rand for weight initialization (not security-critical)
func Uniform(low, high float64) float64 {
	return low + rand.Float64()*(high-low)
}
