// Package quat implements Hamilton quaternions as immutable value types:
// arithmetic with explicit scalar promotion, conjugation and reciprocals,
// integer and real powers, spherical metrics, and conversions to rotation
// matrices and angle-axis form.
package quat

import (
	"errors"
	"fmt"
	"math"

	"github.com/lumenmath/hypermath/algebra/vec"
)

// ErrZeroQuaternion is returned by operations that are undefined for the
// zero quaternion (reciprocal, division by it).
var ErrZeroQuaternion = errors.New("quat: zero quaternion has no reciprocal")

// Quaternion is an ordered 4-tuple (w, x, y, z): scalar part W, vector part
// (X, Y, Z). Unit quaternions double-cover the rotation group SO(3).
// It is an immutable value type; every operation returns a new value.
type Quaternion struct {
	W, X, Y, Z float64
}

// New creates a Quaternion from its four components.
func New(w, x, y, z float64) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// Identity returns the identity quaternion (1, 0, 0, 0).
func Identity() Quaternion {
	return Quaternion{W: 1}
}

// FromReal promotes a real scalar s to the quaternion (s, 0, 0, 0).
func FromReal(s float64) Quaternion {
	return Quaternion{W: s}
}

// FromScalarVec creates a Quaternion from a scalar part and a vector part.
func FromScalarVec(w float64, v vec.Vec3) Quaternion {
	return Quaternion{W: w, X: v.X, Y: v.Y, Z: v.Z}
}

// FromVec promotes a 3-vector to a pure quaternion (0, x, y, z).
func FromVec(v vec.Vec3) Quaternion {
	return Quaternion{X: v.X, Y: v.Y, Z: v.Z}
}

// FromSlice creates a Quaternion from a 4-element slice (w, x, y, z).
func FromSlice(s []float64) (Quaternion, error) {
	if len(s) != 4 {
		return Quaternion{}, fmt.Errorf("quat: need 4 components, got %d", len(s))
	}
	return Quaternion{W: s[0], X: s[1], Y: s[2], Z: s[3]}, nil
}

// Vec returns the vector part (x, y, z).
func (q Quaternion) Vec() vec.Vec3 {
	return vec.Vec3{X: q.X, Y: q.Y, Z: q.Z}
}

// Add returns q + p.
func (q Quaternion) Add(p Quaternion) Quaternion {
	return Quaternion{q.W + p.W, q.X + p.X, q.Y + p.Y, q.Z + p.Z}
}

// AddReal returns q + (s, 0, 0, 0).
func (q Quaternion) AddReal(s float64) Quaternion {
	return q.Add(FromReal(s))
}

// Sub returns q - p.
func (q Quaternion) Sub(p Quaternion) Quaternion {
	return Quaternion{q.W - p.W, q.X - p.X, q.Y - p.Y, q.Z - p.Z}
}

// SubReal returns q - (s, 0, 0, 0).
func (q Quaternion) SubReal(s float64) Quaternion {
	return q.Sub(FromReal(s))
}

// Mul returns the Hamilton product q * p. Quaternion multiplication is
// non-commutative; the order matters.
func (q Quaternion) Mul(p Quaternion) Quaternion {
	a, b, c, d := q.W, q.X, q.Y, q.Z
	e, f, g, h := p.W, p.X, p.Y, p.Z
	return Quaternion{
		W: a*e - b*f - c*g - d*h,
		X: a*f + b*e + c*h - d*g,
		Y: a*g - b*h + c*e + d*f,
		Z: a*h + b*g - c*f + d*e,
	}
}

// MulReal returns q scaled by the real scalar s.
func (q Quaternion) MulReal(s float64) Quaternion {
	return Quaternion{q.W * s, q.X * s, q.Y * s, q.Z * s}
}

// Div returns the right quotient q * Reciprocal(p). It returns
// ErrZeroQuaternion when p is the zero quaternion.
func (q Quaternion) Div(p Quaternion) (Quaternion, error) {
	r, err := p.Reciprocal()
	if err != nil {
		return Quaternion{}, err
	}
	return q.Mul(r), nil
}

// DivReal returns q / (s, 0, 0, 0).
func (q Quaternion) DivReal(s float64) (Quaternion, error) {
	if s == 0 {
		return Quaternion{}, fmt.Errorf("quat: DivReal: %w", ErrZeroQuaternion)
	}
	return q.MulReal(1 / s), nil
}

// Neg returns -q.
func (q Quaternion) Neg() Quaternion {
	return Quaternion{-q.W, -q.X, -q.Y, -q.Z}
}

// Conj returns the conjugate: vector part negated, scalar part kept.
func (q Quaternion) Conj() Quaternion {
	return Quaternion{q.W, -q.X, -q.Y, -q.Z}
}

// Reciprocal returns conj(q) / |q|^2, or ErrZeroQuaternion for the zero
// quaternion.
func (q Quaternion) Reciprocal() (Quaternion, error) {
	d := q.LenSq()
	if d == 0 {
		return Quaternion{}, fmt.Errorf("quat: Reciprocal: %w", ErrZeroQuaternion)
	}
	return q.Conj().MulReal(1 / d), nil
}

// Dot returns the 4-dimensional dot product of q and p.
func (q Quaternion) Dot(p Quaternion) float64 {
	return q.W*p.W + q.X*p.X + q.Y*p.Y + q.Z*p.Z
}

// Len returns the Euclidean length of q.
func (q Quaternion) Len() float64 {
	return math.Sqrt(q.LenSq())
}

// LenSq returns the squared length of q.
func (q Quaternion) LenSq() float64 {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Normalize returns q scaled to unit length. If the result is not finite
// (zero-length input), it returns the identity quaternion instead of
// propagating NaN.
func (q Quaternion) Normalize() Quaternion {
	l := q.Len()
	n := q.MulReal(1 / l)
	if !n.IsFinite() {
		return Identity()
	}
	return n
}

// SDist returns the spherical (geodesic) distance between q and p on the
// unit 3-sphere: both are normalized, then the chord length is converted to
// an arc via 2*asin(chord/2).
func (q Quaternion) SDist(p Quaternion) float64 {
	chord := q.Normalize().Sub(p.Normalize()).Len()
	return 2 * math.Asin(chord/2)
}

// SLen returns the spherical distance from the identity quaternion.
func (q Quaternion) SLen() float64 {
	return q.SDist(Identity())
}

// IsZero reports whether all components are exactly zero.
func (q Quaternion) IsZero() bool {
	return q.W == 0 && q.X == 0 && q.Y == 0 && q.Z == 0
}

// IsFinite reports whether all components are finite.
func (q Quaternion) IsFinite() bool {
	return !math.IsNaN(q.W) && !math.IsInf(q.W, 0) &&
		!math.IsNaN(q.X) && !math.IsInf(q.X, 0) &&
		!math.IsNaN(q.Y) && !math.IsInf(q.Y, 0) &&
		!math.IsNaN(q.Z) && !math.IsInf(q.Z, 0)
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.W, q.X, q.Y, q.Z)
}
