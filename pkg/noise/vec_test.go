package noise

import (
	"math"
	"testing"
)

func TestApply2(t *testing.T) {
	m := Mat4{
		{1, 2, 0, 0},
		{3, 4, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	got := m.Apply2(Vec2{X: 5, Y: 7})
	if got.X != 19 || got.Y != 43 {
		t.Fatalf("Apply2 = %+v, want {19 43}", got)
	}
}

func TestApply3UsesLeadingSubmatrix(t *testing.T) {
	m := Mat4{
		{1, 0, 0, 99},
		{0, 1, 0, 99},
		{0, 0, 1, 99},
		{99, 99, 99, 99},
	}
	got := m.Apply3(Vec3{X: 1, Y: 2, Z: 3})
	if got != (Vec3{X: 1, Y: 2, Z: 3}) {
		t.Fatalf("Apply3 leaked the fourth row/column: got %+v", got)
	}
}

func TestApply4Identity(t *testing.T) {
	m := Identity()
	in := Vec4{X: 1.5, Y: -2.25, Z: 3.75, W: -0.5}
	if got := m.Apply4(in); got != in {
		t.Fatalf("identity Apply4 = %+v, want %+v", got, in)
	}
}

func TestSplitNegative(t *testing.T) {
	cell, fr := split(-1.25)
	if cell != -2 || math.Abs(fr-0.75) > 1e-15 {
		t.Fatalf("split(-1.25) = (%v, %v), want (-2, 0.75)", cell, fr)
	}
	if fr < 0 || fr >= 1 {
		t.Fatalf("fraction %v out of [0,1)", fr)
	}
}

func TestSmoothEndpoints(t *testing.T) {
	if smooth(0) != 0 {
		t.Fatalf("smooth(0) = %v, want 0", smooth(0))
	}
	if smooth(1) != 1 {
		t.Fatalf("smooth(1) = %v, want 1", smooth(1))
	}
	if smooth(0.5) != 0.5 {
		t.Fatalf("smooth(0.5) = %v, want 0.5", smooth(0.5))
	}
}

func TestSmoothZeroDerivativeAtEndpoints(t *testing.T) {
	const h = 1e-6

	// Forward difference at 0, backward difference at 1. The analytic
	// derivative 6f(1-f) vanishes at both ends.
	d0 := (smooth(h) - smooth(0)) / h
	d1 := (smooth(1) - smooth(1-h)) / h
	if math.Abs(d0) > 1e-5 {
		t.Fatalf("derivative at 0 = %v, want ~0", d0)
	}
	if math.Abs(d1) > 1e-5 {
		t.Fatalf("derivative at 1 = %v, want ~0", d1)
	}
}

func TestSmoothMatchesAnalyticDerivative(t *testing.T) {
	const h = 1e-6
	for i := 1; i < 100; i++ {
		f := float64(i) / 100
		num := (smooth(f+h) - smooth(f-h)) / (2 * h)
		ana := 6 * f * (1 - f)
		if math.Abs(num-ana) > 1e-4 {
			t.Fatalf("derivative mismatch at f=%v: numeric %v analytic %v", f, num, ana)
		}
	}
}

func TestDefaultMatrixRowsNotAxisAligned(t *testing.T) {
	m := DefaultParams().Matrix
	for i := 0; i < 4; i++ {
		var norm, maxAbs float64
		for j := 0; j < 4; j++ {
			norm += m[i][j] * m[i][j]
			if a := math.Abs(m[i][j]); a > maxAbs {
				maxAbs = a
			}
		}
		if math.Abs(math.Sqrt(norm)-1) > 0.01 {
			t.Fatalf("row %d is not unit length: |r| = %v", i, math.Sqrt(norm))
		}
		if maxAbs > 0.95 {
			t.Fatalf("row %d is nearly axis-aligned: max component %v", i, maxAbs)
		}
	}
}
