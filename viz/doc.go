// Copyright 2025 Grad ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package viz renders computation graphs for inspection.
//
// The exporter walks a Value's ancestry read-only and emits Graphviz DOT
// or Mermaid. Each Value renders as a node showing its data and gradient;
// each operation renders as its own labeled node, with edges
// operand -> operation -> result.
//
//	out, err := viz.Render(loss, viz.FormatDOT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("loss.dot", []byte(out), 0o644)
package viz
