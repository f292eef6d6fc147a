// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides reverse-mode automatic differentiation over
// scalar values.
//
// Build an expression out of Values, then call Backward on the result to
// populate the gradient of every Value that contributed to it:
//
//	import "github.com/grad-ml/grad/scalar"
//
//	func main() {
//	    x := scalar.New(2.0)
//	    y := scalar.New(-3.0)
//	    z := x.Mul(y).Add(x.Pow(2)).Tanh()
//
//	    z.Backward()
//	    // x.Grad and y.Grad now hold dz/dx and dz/dy.
//	}
package scalar

import "github.com/grad-ml/grad/internal/scalar"

// Value is a node in the computation graph: a forward value, a gradient
// accumulator, and a record of the operation that produced it.
type Value = scalar.Value

// Op is the operation that produced a Value. Exporters use it to walk
// operands and label nodes; leaves have none.
type Op = scalar.Op

// New creates a leaf Value from a raw number.
func New(data float64) *Value {
	return scalar.New(data)
}
