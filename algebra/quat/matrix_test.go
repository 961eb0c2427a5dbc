package quat

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/lumenmath/hypermath/algebra/vec"
)

func zRotation(angle float64) Quaternion {
	return FromScalarVec(math.Cos(angle/2), vec.New(0, 0, math.Sin(angle/2)))
}

func TestRotationMatrixFixture(t *testing.T) {
	q := zRotation(math.Pi / 2)
	m := q.RotationMatrix()

	assertVecNear(t, m.Apply(vec.New(1, 0, 0)), vec.New(0, 1, 0), 1e-6)
	assertVecNear(t, m.Apply(vec.New(0, 1, 0)), vec.New(-1, 0, 0), 1e-6)
	assertVecNear(t, m.Apply(vec.New(0, 0, 1)), vec.New(0, 0, 1), 1e-6)
}

func TestRotationMatrixRightIsTranspose(t *testing.T) {
	q := New(1, 2, 3, 4)
	left := q.RotationMatrix()
	right := q.RotationMatrixRight()

	if right != left.Transpose() {
		t.Fatalf("right variant is not the transpose:\n%v\nvs\n%v", right, left.Transpose())
	}
}

func TestRotationMatrixNormalizesInput(t *testing.T) {
	q := zRotation(1.1)
	a := q.RotationMatrix()
	b := q.MulReal(5).RotationMatrix()
	for i := range a {
		if !scalar.EqualWithinAbs(a[i], b[i], 1e-12) {
			t.Fatalf("rotation matrix not scale invariant at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRotationMatrixMatchesRotate(t *testing.T) {
	q := New(0.3, -1.2, 0.8, 2.1)
	m := q.RotationMatrix()
	vs := []vec.Vec3{
		vec.New(1, 0, 0),
		vec.New(0, 1, 0),
		vec.New(1, -2, 3),
	}
	for _, v := range vs {
		assertVecNear(t, m.Apply(v), q.Rotate(v), 1e-12)
	}
}

func TestAngleAxisRoundTrip(t *testing.T) {
	tests := []struct {
		angle float64
		axis  vec.Vec3
	}{
		{math.Pi / 2, vec.New(0, 0, 1)},
		{1.0, vec.New(1, 1, 0)},
		{2.5, vec.New(-1, 2, 0.5)},
		{0.001, vec.New(0, 1, 0)},
	}
	for _, tt := range tests {
		unitAxis := tt.axis.Normalize()
		q := FromScalarVec(math.Cos(tt.angle/2), unitAxis.Scale(math.Sin(tt.angle/2)))
		angle, axis := q.AngleAxis()
		if !scalar.EqualWithinAbs(angle, tt.angle, 1e-9) {
			t.Errorf("angle = %v, want %v", angle, tt.angle)
		}
		assertVecNear(t, axis, unitAxis, 1e-9)
	}
}

func TestAngleAxisIdentity(t *testing.T) {
	angle, axis := Identity().AngleAxis()
	if angle != 0 {
		t.Fatalf("angle = %v, want 0", angle)
	}
	assertVecNear(t, axis, vec.New(0, 0, 1), 0)
}

func TestRotatePreservesLength(t *testing.T) {
	q := New(0.3, -1.2, 0.8, 2.1)
	v := vec.New(1, -2, 3)
	if got, want := q.Rotate(v).Len(), v.Len(); !scalar.EqualWithinAbs(got, want, 1e-12) {
		t.Fatalf("rotation changed length: %v vs %v", got, want)
	}
}
