// Package viz renders the computation graph behind a scalar Value for
// inspection.
//
// The exporter is read-only: it performs its own reachability walk over
// operand edges and never mutates a node, so a graph can be rendered
// before or after Backward has run. Gradients render as whatever the
// fields currently hold (zero if no backward pass reached them).
package viz

import (
	"fmt"
	"strings"

	"github.com/emicklei/dot"

	"github.com/grad-ml/grad/internal/scalar"
)

// Format specifies the rendering output format.
type Format string

const (
	FormatDOT     Format = "dot"
	FormatMermaid Format = "mermaid"
)

// Options configures graph rendering.
type Options struct {
	// Direction is the rank direction (LR, RL, TB, BT).
	// Default: "LR"
	Direction string
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{Direction: "LR"}
}

// Render walks the graph rooted at root and returns it in the requested
// format. Each Value renders as a node showing its data and gradient; each
// operation renders as its own node labeled with the operation symbol,
// with edges operand -> operation -> result.
func (o Options) Render(root *scalar.Value, format Format) (string, error) {
	if root == nil {
		return "", fmt.Errorf("viz: root value is required")
	}
	if o.Direction == "" {
		o.Direction = "LR"
	}

	switch format {
	case FormatDOT:
		return o.renderDOT(root), nil
	case FormatMermaid:
		return o.renderMermaid(root), nil
	default:
		return "", fmt.Errorf("viz: unsupported format: %s", format)
	}
}

// Render renders root with default options.
func Render(root *scalar.Value, format Format) (string, error) {
	return DefaultOptions().Render(root, format)
}

// walk collects every Value reachable from root through operand edges,
// in a deterministic discovery order, with a stable index per node.
// Identity, not numeric value, keys the visited set.
func walk(root *scalar.Value) ([]*scalar.Value, map[*scalar.Value]int) {
	var nodes []*scalar.Value
	ids := make(map[*scalar.Value]int)

	stack := []*scalar.Value{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := ids[v]; seen {
			continue
		}
		ids[v] = len(nodes)
		nodes = append(nodes, v)

		if op := v.Op(); op != nil {
			stack = append(stack, op.Operands()...)
		}
	}
	return nodes, ids
}

// renderDOT builds a Graphviz DOT document.
func (o Options) renderDOT(root *scalar.Value) string {
	nodes, ids := walk(root)

	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", o.Direction)

	valueNodes := make([]dot.Node, len(nodes))
	for i, v := range nodes {
		valueNodes[i] = g.Node(fmt.Sprintf("v%d", i)).
			Attr("shape", "record").
			Attr("label", fmt.Sprintf("{ data %.4f | grad %.4f }", v.Data, v.Grad))
	}

	for i, v := range nodes {
		op := v.Op()
		if op == nil {
			continue
		}
		opNode := g.Node(fmt.Sprintf("v%dop", i)).Attr("label", op.Symbol())
		g.Edge(opNode, valueNodes[i])
		for _, operand := range op.Operands() {
			g.Edge(valueNodes[ids[operand]], opNode)
		}
	}

	return g.String()
}

// renderMermaid builds a Mermaid flowchart.
func (o Options) renderMermaid(root *scalar.Value) string {
	nodes, ids := walk(root)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("flowchart %s\n", o.Direction))

	for i, v := range nodes {
		sb.WriteString(fmt.Sprintf("    v%d[\"data %.4f | grad %.4f\"]\n", i, v.Data, v.Grad))
	}
	for i, v := range nodes {
		op := v.Op()
		if op == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("    v%dop((\"%s\"))\n", i, op.Symbol()))
		sb.WriteString(fmt.Sprintf("    v%dop --> v%d\n", i, i))
		for _, operand := range op.Operands() {
			sb.WriteString(fmt.Sprintf("    v%d --> v%dop\n", ids[operand], i))
		}
	}

	return sb.String()
}
