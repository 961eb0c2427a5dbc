package vec

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const epsilon = 1e-12

func assertVecNear(t *testing.T, got, want Vec3, eps float64) {
	t.Helper()
	if !scalar.EqualWithinAbs(got.X, want.X, eps) ||
		!scalar.EqualWithinAbs(got.Y, want.Y, eps) ||
		!scalar.EqualWithinAbs(got.Z, want.Z, eps) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestVecBasics(t *testing.T) {
	v := New(1, 2, 3)
	w := New(-4, 5, 0.5)

	assertVecNear(t, v.Add(w), New(-3, 7, 3.5), epsilon)
	assertVecNear(t, v.Sub(w), New(5, -3, 2.5), epsilon)
	assertVecNear(t, v.Scale(2), New(2, 4, 6), epsilon)
	assertVecNear(t, v.Neg(), New(-1, -2, -3), epsilon)

	if got := v.Dot(w); got != -4+10+1.5 {
		t.Fatalf("Dot = %v", got)
	}
	if got := v.Len(); !scalar.EqualWithinAbs(got, math.Sqrt(14), epsilon) {
		t.Fatalf("Len = %v", got)
	}
}

func TestCross(t *testing.T) {
	x := New(1, 0, 0)
	y := New(0, 1, 0)
	z := New(0, 0, 1)

	assertVecNear(t, x.Cross(y), z, 0)
	assertVecNear(t, y.Cross(z), x, 0)
	assertVecNear(t, z.Cross(x), y, 0)
	assertVecNear(t, y.Cross(x), z.Neg(), 0)

	// u x u = 0 and u x v is perpendicular to both.
	u := New(2, -3, 5)
	v := New(1, 4, -2)
	assertVecNear(t, u.Cross(u), Vec3{}, 0)
	c := u.Cross(v)
	if !scalar.EqualWithinAbs(c.Dot(u), 0, epsilon) || !scalar.EqualWithinAbs(c.Dot(v), 0, epsilon) {
		t.Fatalf("cross product not perpendicular: %v", c)
	}
}

func TestVecNormalizeSafe(t *testing.T) {
	n := New(3, 0, 4).Normalize()
	assertVecNear(t, n, New(0.6, 0, 0.8), epsilon)

	// Zero vector falls back to the canonical axis.
	assertVecNear(t, Vec3{}.Normalize(), New(0, 0, 1), 0)
}

func TestVecFromSlice(t *testing.T) {
	v, err := FromSlice([]float64{1, 2, 3})
	if err != nil || v != New(1, 2, 3) {
		t.Fatalf("FromSlice = %v, %v", v, err)
	}
	if _, err := FromSlice([]float64{1, 2}); err == nil {
		t.Fatal("FromSlice with 2 components should fail")
	}
}

func TestMat4Identity(t *testing.T) {
	v := New(1, -2, 3)
	assertVecNear(t, Identity().Apply(v), v, 0)
}

func TestMat4Mul(t *testing.T) {
	// Applying a product agrees with applying the factors in sequence.
	a := Mat4{
		1, 2, 0, 0,
		0, 1, 3, 0,
		4, 0, 1, 0,
		0, 0, 0, 1,
	}
	b := Mat4{
		0, 1, 0, 2,
		1, 0, 0, 0,
		0, 0, 2, 0,
		0, 0, 0, 1,
	}
	v := New(1, 2, 3)
	assertVecNear(t, a.Mul(b).Apply(v), a.Apply(b.Apply(v)), epsilon)
}

func TestMat4Transpose(t *testing.T) {
	m := Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	tr := m.Transpose()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if tr.At(r, c) != m.At(c, r) {
				t.Fatalf("Transpose[%d][%d] = %v, want %v", r, c, tr.At(r, c), m.At(c, r))
			}
		}
	}
	if tr.Transpose() != m {
		t.Fatal("double transpose should restore the matrix")
	}
}

func TestMat4AtSet(t *testing.T) {
	m := Identity().Set(1, 2, 7)
	if m.At(1, 2) != 7 {
		t.Fatalf("At(1,2) = %v, want 7", m.At(1, 2))
	}
	// Set returns a copy; the identity is unchanged.
	if Identity().At(1, 2) != 0 {
		t.Fatal("Identity mutated")
	}
}

func TestMatFromSlice(t *testing.T) {
	if _, err := MatFromSlice(make([]float64, 15)); err == nil {
		t.Fatal("MatFromSlice with 15 entries should fail")
	}
	id := Identity()
	m, err := MatFromSlice(id[:])
	if err != nil || m != Identity() {
		t.Fatalf("MatFromSlice = %v, %v", m, err)
	}
}
