package quat

import (
	"math"

	"github.com/lumenmath/hypermath/algebra/vec"
)

// RotationMatrix returns the rotation q encodes as a 4x4 homogeneous matrix
// in the column-vector-on-the-left convention: transform v with m.Apply(v).
// q is normalized first.
func (q Quaternion) RotationMatrix() vec.Mat4 {
	return q.Normalize().rotationMatrix()
}

// RotationMatrixRight returns the rotation matrix for the
// row-vector-on-the-right convention, which is the transpose of
// RotationMatrix: it is built from the conjugated components.
func (q Quaternion) RotationMatrixRight() vec.Mat4 {
	return q.Normalize().Conj().rotationMatrix()
}

// rotationMatrix embeds the standard 3x3 rotation in a homogeneous 4x4
// matrix via the bilinear products of the (assumed unit) components.
func (q Quaternion) rotationMatrix() vec.Mat4 {
	a, b, c, d := q.W, q.X, q.Y, q.Z

	ab, ac, ad := 2*a*b, 2*a*c, 2*a*d
	bb, cc, dd := 2*b*b, 2*c*c, 2*d*d
	bc, bd, cd := 2*b*c, 2*b*d, 2*c*d

	return vec.Mat4{
		1 - cc - dd, bc - ad, bd + ac, 0,
		bc + ad, 1 - bb - dd, cd - ab, 0,
		bd - ac, cd + ab, 1 - bb - cc, 0,
		0, 0, 0, 1,
	}
}

// AngleAxis returns the rotation q encodes as an angle (radians) and a unit
// axis. q is normalized first; the angle is 2*acos(w) and the axis is the
// normalized vector part. A zero vector part (identity rotation) yields
// angle 0 and the canonical axis (0, 0, 1).
func (q Quaternion) AngleAxis() (angle float64, axis vec.Vec3) {
	n := q.Normalize()
	v := n.Vec()
	if v.IsZero() {
		return 0, vec.Vec3{Z: 1}
	}
	w := math.Max(-1, math.Min(1, n.W))
	return 2 * math.Acos(w), v.Normalize()
}

// Rotate applies q as a rotation to the free vector v via the sandwich
// product n * (0, v) * conj(n) with n the normalized q.
func (q Quaternion) Rotate(v vec.Vec3) vec.Vec3 {
	n := q.Normalize()
	return n.Mul(FromVec(v)).Mul(n.Conj()).Vec()
}
