package scalar_test

import (
	"math"
	"testing"

	"github.com/grad-ml/grad/internal/scalar"
)

// TestForward_Arithmetic tests the forward result of each binary operation.
func TestForward_Arithmetic(t *testing.T) {
	if got := scalar.New(2.0).Add(scalar.New(3.5)).Data; got != 5.5 {
		t.Errorf("Add = %v, want 5.5", got)
	}
	if got := scalar.New(10.0).Sub(scalar.New(4.25)).Data; got != 5.75 {
		t.Errorf("Sub = %v, want 5.75", got)
	}
	if got := scalar.New(3.0).Mul(scalar.New(2.0)).Data; got != 6.0 {
		t.Errorf("Mul = %v, want 6", got)
	}
	if got := scalar.New(9.0).Div(scalar.New(3.0)).Data; got != 3.0 {
		t.Errorf("Div = %v, want 3", got)
	}
	if got := scalar.New(2.0).Pow(3).Data; got != 8.0 {
		t.Errorf("Pow = %v, want 8", got)
	}
}

// TestForward_Unary tests the forward result of each unary operation.
func TestForward_Unary(t *testing.T) {
	if got := scalar.New(4.0).Neg().Data; got != -4.0 {
		t.Errorf("Neg = %v, want -4", got)
	}
	if got := scalar.New(1.0).Exp().Data; math.Abs(got-math.E) > 1e-15 {
		t.Errorf("Exp = %v, want e", got)
	}
	if got := scalar.New(0.5).Tanh().Data; got != math.Tanh(0.5) {
		t.Errorf("Tanh = %v, want %v", got, math.Tanh(0.5))
	}
	if got := scalar.New(-2.0).ReLU().Data; got != 0 {
		t.Errorf("ReLU(-2) = %v, want 0", got)
	}
	if got := scalar.New(2.0).ReLU().Data; got != 2.0 {
		t.Errorf("ReLU(2) = %v, want 2", got)
	}
}

// TestConstSugar tests that constant-operand forms lift the constant to a
// leaf and delegate to the Value-Value rules.
func TestConstSugar(t *testing.T) {
	x := scalar.New(2.0)
	y := x.MulConst(3).AddConst(1).SubConst(2).DivConst(5)

	if y.Data != (2.0*3+1-2)/5 {
		t.Errorf("y.Data = %v, want 1", y.Data)
	}

	y.Backward()
	// dy/dx = 3/5
	if math.Abs(x.Grad-0.6) > 1e-15 {
		t.Errorf("x.Grad = %v, want 0.6", x.Grad)
	}
}

// TestLeaf tests leaf construction.
func TestLeaf(t *testing.T) {
	v := scalar.New(-3.0)
	if v.Data != -3.0 {
		t.Errorf("Data = %v, want -3", v.Data)
	}
	if v.Grad != 0 {
		t.Errorf("Grad = %v, want 0 before any Backward", v.Grad)
	}
	if v.Op() != nil {
		t.Error("leaf must have no producing operation")
	}
}

// TestString tests the textual form used in rendered graphs.
func TestString(t *testing.T) {
	if got := scalar.New(2.5).String(); got != "2.5" {
		t.Errorf("String() = %q, want %q", got, "2.5")
	}
	if got := scalar.New(-3.0).String(); got != "-3" {
		t.Errorf("String() = %q, want %q", got, "-3")
	}
}

// TestValueSnapshot tests that forward results are snapshots: mutating a
// leaf after a derived Value exists does not recompute the derived Value,
// and the backward pass uses the values the rules captured.
func TestValueSnapshot(t *testing.T) {
	x := scalar.New(2.0)
	y := x.Mul(x) // 4

	x.Data = 10.0

	if y.Data != 4.0 {
		t.Errorf("y.Data = %v, want 4 (forward values are cached at construction)", y.Data)
	}

	// Mul's rule reads the operand snapshot through the node, which now
	// holds the mutated value: d(x*x)/dx = 2 * current x.Data.
	y.Backward()
	if x.Grad != 20.0 {
		t.Errorf("x.Grad = %v, want 20", x.Grad)
	}
}

// TestNonFinitePropagation tests that division by zero is not guarded and
// follows floating-point semantics through later operations.
func TestNonFinitePropagation(t *testing.T) {
	q := scalar.New(1.0).Div(scalar.New(0.0))
	if !math.IsInf(q.Data, 1) {
		t.Errorf("1/0 = %v, want +Inf", q.Data)
	}

	r := q.AddConst(1)
	if !math.IsInf(r.Data, 1) {
		t.Errorf("Inf+1 = %v, want +Inf", r.Data)
	}
}
