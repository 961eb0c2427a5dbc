package rotation

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/lumenmath/hypermath/algebra/quat"
	"github.com/lumenmath/hypermath/algebra/vec"
)

func assertQuatNear(t *testing.T, got, want quat.Quaternion, eps float64) {
	t.Helper()
	if !scalar.EqualWithinAbs(got.W, want.W, eps) ||
		!scalar.EqualWithinAbs(got.X, want.X, eps) ||
		!scalar.EqualWithinAbs(got.Y, want.Y, eps) ||
		!scalar.EqualWithinAbs(got.Z, want.Z, eps) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func assertVecNear(t *testing.T, got, want vec.Vec3, eps float64) {
	t.Helper()
	if !scalar.EqualWithinAbs(got.X, want.X, eps) ||
		!scalar.EqualWithinAbs(got.Y, want.Y, eps) ||
		!scalar.EqualWithinAbs(got.Z, want.Z, eps) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFromAngleAxisFixture(t *testing.T) {
	q := FromAngleAxis(math.Pi/2, vec.New(0, 0, 1))
	assertVecNear(t, q.Rotate(vec.New(1, 0, 0)), vec.New(0, 1, 0), 1e-6)
}

func TestFromAngleAxisComponents(t *testing.T) {
	angle := 1.2
	q := FromAngleAxis(angle, vec.New(0, 2, 0)) // axis gets normalized
	want := quat.FromScalarVec(math.Cos(angle/2), vec.New(0, math.Sin(angle/2), 0))
	assertQuatNear(t, q, want, 1e-12)
}

func TestFromAngleAxisZeroAxis(t *testing.T) {
	// A numerically zero axis short-circuits to the identity instead of
	// propagating NaN.
	q := FromAngleAxis(1.5, vec.Vec3{})
	if q != quat.Identity() {
		t.Fatalf("got %v, want identity", q)
	}
	if !q.IsFinite() {
		t.Fatalf("non-finite result %v", q)
	}
}

func TestFromAngleAxisRoundTrip(t *testing.T) {
	angle := 2.1
	axis := vec.New(1, -2, 0.5).Normalize()
	gotAngle, gotAxis := FromAngleAxis(angle, axis).AngleAxis()
	if !scalar.EqualWithinAbs(gotAngle, angle, 1e-9) {
		t.Fatalf("angle = %v, want %v", gotAngle, angle)
	}
	assertVecNear(t, gotAxis, axis, 1e-9)
}

func TestFromEulerDefaultOrder(t *testing.T) {
	angles := []float64{0.3, -0.7, 1.1}
	def, err := FromEuler(angles, "")
	if err != nil {
		t.Fatalf("FromEuler: %v", err)
	}
	xyz, err := FromEuler(angles, "xyz")
	if err != nil {
		t.Fatalf("FromEuler: %v", err)
	}
	assertQuatNear(t, def, xyz, 0)
}

func TestFromEulerSingleAxis(t *testing.T) {
	// With no accumulated rotation, the rotating-frame and world-frame
	// selectors agree.
	for _, order := range []string{"x", "X", "y", "Y", "z", "Z"} {
		lower, err := FromEuler([]float64{0.9}, order)
		if err != nil {
			t.Fatalf("FromEuler(%q): %v", order, err)
		}
		var axis vec.Vec3
		switch order[0] | 0x20 {
		case 'x':
			axis = vec.New(1, 0, 0)
		case 'y':
			axis = vec.New(0, 1, 0)
		case 'z':
			axis = vec.New(0, 0, 1)
		}
		assertQuatNear(t, lower, FromAngleAxis(0.9, axis), 1e-12)
	}
}

func TestFromEulerRepeatedAxisAccumulates(t *testing.T) {
	// Two successive rotations about z, in either frame convention,
	// compose into a single rotation by the summed angle.
	for _, order := range []string{"zz", "ZZ"} {
		q, err := FromEuler([]float64{0.4, 0.5}, order)
		if err != nil {
			t.Fatalf("FromEuler(%q): %v", order, err)
		}
		assertQuatNear(t, q, FromAngleAxis(0.9, vec.New(0, 0, 1)), 1e-12)
	}
}

func TestFromEulerWorldFrameFixture(t *testing.T) {
	q, err := FromEuler([]float64{math.Pi / 2, math.Pi / 2}, "XY")
	if err != nil {
		t.Fatalf("FromEuler: %v", err)
	}
	assertQuatNear(t, q, quat.New(0.5, 0.5, 0.5, 0.5), 1e-12)
}

func TestFromEulerErrors(t *testing.T) {
	if _, err := FromEuler([]float64{1, 2}, "x"); err == nil {
		t.Fatal("length mismatch should fail")
	}
	if _, err := FromEuler([]float64{1}, "w"); err == nil {
		t.Fatal("unknown axis selector should fail")
	}
}

func TestRotateTo(t *testing.T) {
	tests := []struct {
		u, v vec.Vec3
	}{
		{vec.New(1, 0, 0), vec.New(0, 1, 0)},
		{vec.New(1, 2, 3), vec.New(-2, 0.5, 1)},
		{vec.New(0, 0, 5), vec.New(0.1, 0, -3)},
	}
	for _, tt := range tests {
		q := RotateTo(tt.u, tt.v)
		if !scalar.EqualWithinAbs(q.Len(), 1, 1e-12) {
			t.Errorf("RotateTo(%v, %v) not unit: |q| = %v", tt.u, tt.v, q.Len())
		}
		assertVecNear(t, q.Rotate(tt.u.Normalize()), tt.v.Normalize(), 1e-9)
	}
}

func TestRotateToSameDirection(t *testing.T) {
	u := vec.New(1, 2, 3)
	assertQuatNear(t, RotateTo(u, u.Scale(4)), quat.Identity(), 1e-12)
}

func TestRotateToZeroInput(t *testing.T) {
	if q := RotateTo(vec.Vec3{}, vec.New(1, 0, 0)); q != quat.Identity() {
		t.Fatalf("zero u: got %v, want identity", q)
	}
	if q := RotateTo(vec.New(1, 0, 0), vec.Vec3{}); q != quat.Identity() {
		t.Fatalf("zero v: got %v, want identity", q)
	}
}

func TestRotateToOpposite(t *testing.T) {
	us := []vec.Vec3{
		vec.New(1, 0, 0),
		vec.New(0, 0, 1),
		vec.New(1, 2, 3),
		vec.New(0, -2, 0.5),
	}
	for _, u := range us {
		q := RotateTo(u, u.Neg())
		if !q.IsFinite() {
			t.Fatalf("RotateTo(%v, -u) not finite: %v", u, q)
		}
		if !scalar.EqualWithinAbs(q.Len(), 1, 1e-12) {
			t.Fatalf("RotateTo(%v, -u) not unit: %v", u, q.Len())
		}
		assertVecNear(t, q.Rotate(u.Normalize()), u.Normalize().Neg(), 1e-9)
	}
}
