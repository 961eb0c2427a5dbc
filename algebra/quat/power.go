package quat

import (
	"math"

	"github.com/lumenmath/hypermath/algebra/vec"
)

// PowInt returns q raised to the integer power n: repeated Hamilton products
// for n > 0, the identity for n == 0, and powers of the reciprocal for
// n < 0. A negative power of the zero quaternion returns ErrZeroQuaternion.
func (q Quaternion) PowInt(n int) (Quaternion, error) {
	if n < 0 {
		r, err := q.Reciprocal()
		if err != nil {
			return Quaternion{}, err
		}
		return r.PowInt(-n)
	}
	out := Identity()
	for ; n > 0; n-- {
		out = out.Mul(q)
	}
	return out, nil
}

// PowReal returns q raised to the real power n, generalizing integer powers
// continuously along the rotation's geodesic: the unit part of q is carried
// a fraction n of the way from the identity along its arc (the closed form
// of slerp(identity, normalize(q), n)), and the result is scaled by |q|^n.
func (q Quaternion) PowReal(n float64) Quaternion {
	u := q.Normalize()
	// Half-angle of the rotation u encodes; clamp against rounding drift.
	w := math.Max(-1, math.Min(1, u.W))
	half := math.Acos(w)
	angle := half * n

	axis := u.Vec()
	if axis.IsZero() {
		// u is ±identity: the geodesic is degenerate, hold the z axis.
		axis = vec.Vec3{Z: 1}
	} else {
		axis = axis.Normalize()
	}

	scale := math.Pow(q.Len(), n)
	return FromScalarVec(math.Cos(angle), axis.Scale(math.Sin(angle))).MulReal(scale)
}

// ConjugateBy returns n * q * reciprocal(n): q conjugated by n, composing
// the rotation q with a change of frame. It returns ErrZeroQuaternion when
// n is the zero quaternion.
func (q Quaternion) ConjugateBy(n Quaternion) (Quaternion, error) {
	r, err := n.Reciprocal()
	if err != nil {
		return Quaternion{}, err
	}
	return n.Mul(q).Mul(r), nil
}
