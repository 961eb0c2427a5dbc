// Package rotation builds quaternions from rotation descriptions: angle and
// axis, Euler-angle sequences with configurable axis order and frame
// convention, and "rotate this vector onto that one" queries.
package rotation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/lumenmath/hypermath/algebra/quat"
	"github.com/lumenmath/hypermath/algebra/vec"
)

// zeroTol is the absolute threshold below which a vector length is treated
// as zero when picking degenerate-case branches.
const zeroTol = 1e-12

// FromAngleAxis returns the unit quaternion rotating by angle (radians)
// about axis. The axis is normalized first; a numerically zero axis
// short-circuits to the identity rather than propagating NaN.
func FromAngleAxis(angle float64, axis vec.Vec3) quat.Quaternion {
	n := quat.FromVec(axis).Normalize()
	if n == quat.Identity() {
		return n
	}
	return n.MulReal(math.Sin(angle / 2)).AddReal(math.Cos(angle / 2))
}

// FromEuler composes a quaternion from a sequence of Euler angles.
//
// order holds one axis selector per angle: lowercase 'x', 'y', 'z' rotate
// about that axis as seen in the already-rotated frame so far, uppercase
// 'X', 'Y', 'Z' rotate about the fixed world axis. An empty order defaults
// to "xyz". Each step is right-multiplied onto the accumulated rotation.
func FromEuler(angles []float64, order string) (quat.Quaternion, error) {
	if order == "" {
		order = "xyz"
	}
	if len(order) != len(angles) {
		return quat.Quaternion{}, fmt.Errorf("rotation: %d angles but %d axis selectors", len(angles), len(order))
	}

	acc := quat.Identity()
	for i, sel := range order {
		var axis vec.Vec3
		switch sel {
		case 'x', 'X':
			axis = vec.Vec3{X: 1}
		case 'y', 'Y':
			axis = vec.Vec3{Y: 1}
		case 'z', 'Z':
			axis = vec.Vec3{Z: 1}
		default:
			return quat.Quaternion{}, fmt.Errorf("rotation: unknown axis selector %q", sel)
		}
		if sel >= 'a' {
			// Rotating frame: resolve the axis through the rotation so far.
			axis = acc.Rotate(axis)
		}
		acc = acc.Mul(FromAngleAxis(angles[i], axis))
	}
	return acc, nil
}

// RotateTo returns the quaternion rotating free vector u onto v along the
// shorter arc. A zero-length input yields the identity. Exactly opposed
// inputs have no unique axis; a numerically stable orthogonal axis is
// picked from the two largest-magnitude components of u and the rotation
// is a half-turn about it.
func RotateTo(u, v vec.Vec3) quat.Quaternion {
	if scalar.EqualWithinAbs(u.Len(), 0, zeroTol) || scalar.EqualWithinAbs(v.Len(), 0, zeroTol) {
		return quat.Identity()
	}
	nu := u.Normalize()
	nv := v.Normalize()

	if scalar.EqualWithinAbs(nu.Add(nv).Len(), 0, zeroTol) {
		var axis vec.Vec3
		if math.Abs(u.X) > math.Abs(u.Z) {
			axis = vec.Vec3{X: -u.Y, Y: u.X}
		} else {
			axis = vec.Vec3{Y: -u.Z, Z: u.Y}
		}
		return quat.FromVec(axis.Normalize())
	}

	h := nu.Add(nv).Normalize()
	return quat.FromScalarVec(nu.Dot(h), nu.Cross(h))
}
