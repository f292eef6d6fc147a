package viz_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grad-ml/grad/internal/scalar"
	"github.com/grad-ml/grad/internal/viz"
)

// TestRender_DOT tests that the DOT output contains a record node per
// Value, an op node per derived Value, and the rank direction.
func TestRender_DOT(t *testing.T) {
	x := scalar.New(2.0)
	y := scalar.New(3.0)
	z := x.Mul(y)

	out, err := viz.Render(z, viz.FormatDOT)
	require.NoError(t, err)

	assert.Contains(t, out, "rankdir=\"LR\"")
	assert.Contains(t, out, "{ data 2.0000 | grad 0.0000 }")
	assert.Contains(t, out, "{ data 3.0000 | grad 0.0000 }")
	assert.Contains(t, out, "{ data 6.0000 | grad 0.0000 }")
	assert.Contains(t, out, "\"*\"")
	// Three value nodes plus one op node.
	assert.Equal(t, 4, strings.Count(out, "label="))
}

// TestRender_DOTAfterBackward tests that gradients show up once Backward
// has populated them.
func TestRender_DOTAfterBackward(t *testing.T) {
	x := scalar.New(2.0)
	z := x.Mul(x)
	z.Backward()

	out, err := viz.Render(z, viz.FormatDOT)
	require.NoError(t, err)

	assert.Contains(t, out, "{ data 2.0000 | grad 4.0000 }")
	assert.Contains(t, out, "{ data 4.0000 | grad 1.0000 }")
}

// TestRender_Mermaid tests the Mermaid flowchart output.
func TestRender_Mermaid(t *testing.T) {
	x := scalar.New(1.0)
	z := x.Tanh()

	out, err := viz.Options{Direction: "TB"}.Render(z, viz.FormatMermaid)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "flowchart TB\n"))
	assert.Contains(t, out, "((\"tanh\"))")
	assert.Contains(t, out, "-->")
}

// TestRender_SharedOperandOnce tests that a diamond renders its shared
// operand as a single node.
func TestRender_SharedOperandOnce(t *testing.T) {
	x := scalar.New(3.0)
	y := x.Add(x)

	out, err := viz.Render(y, viz.FormatDOT)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "{ data 3.0000 | grad 0.0000 }"))
}

// TestRender_ReadOnly tests that rendering mutates nothing.
func TestRender_ReadOnly(t *testing.T) {
	x := scalar.New(2.0)
	z := x.Mul(x)

	_, err := viz.Render(z, viz.FormatDOT)
	require.NoError(t, err)

	assert.Zero(t, x.Grad)
	assert.Zero(t, z.Grad)
	assert.Equal(t, 2.0, x.Data)
	assert.Equal(t, 4.0, z.Data)
}

// TestRender_Errors tests input validation.
func TestRender_Errors(t *testing.T) {
	_, err := viz.Render(nil, viz.FormatDOT)
	assert.Error(t, err)

	_, err = viz.Render(scalar.New(1.0), viz.Format("svg"))
	assert.ErrorContains(t, err, "unsupported format")
}
