// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package viz

import (
	"github.com/grad-ml/grad/internal/scalar"
	"github.com/grad-ml/grad/internal/viz"
)

// Format specifies the rendering output format.
type Format = viz.Format

const (
	FormatDOT     = viz.FormatDOT
	FormatMermaid = viz.FormatMermaid
)

// Options configures graph rendering.
type Options = viz.Options

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return viz.DefaultOptions()
}

// Render walks the graph rooted at root and returns it in the requested
// format, using default options.
//
// Example:
//
//	z := x.Mul(y).Tanh()
//	z.Backward()
//	dotSrc, err := viz.Render(z, viz.FormatDOT)
func Render(root *scalar.Value, format Format) (string, error) {
	return viz.Render(root, format)
}
