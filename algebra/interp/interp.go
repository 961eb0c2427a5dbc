// Package interp provides linear and spherical interpolation between
// quaternions, both as direct evaluation and as reusable evaluator objects
// that precompute the per-pair constants once.
//
// Both Lerp and Slerp assume unit input quaternions for speed; results are
// safely re-normalized where the path can leave the sphere.
package interp

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/lumenmath/hypermath/algebra/quat"
)

// antipodalTol is the absolute tolerance on |q+p| below which the pair is
// treated as antipodal. The zero check is deliberately tolerant rather than
// exact so that near-antipodal pairs take the stable midpoint branch
// instead of the generic formula.
const antipodalTol = 1e-12

// midpoint synthesizes a unit quaternion perpendicular to q, used to route
// interpolation between antipodal endpoints through a well-defined halfway
// rotation instead of degenerating through the origin.
func midpoint(q quat.Quaternion) quat.Quaternion {
	return quat.Quaternion{W: -q.Z, X: q.Y, Y: -q.X, Z: q.W}
}

func antipodal(q, p quat.Quaternion) bool {
	return scalar.EqualWithinAbs(q.Add(p).Len(), 0, antipodalTol)
}

// Lerp linearly blends from q to p at parameter t and safely re-normalizes.
// Antipodal endpoints (p = -q, the same rotation under double cover) are
// routed through a perpendicular midpoint in two half-steps so the path
// still passes through the correct rotation.
func Lerp(q, p quat.Quaternion, t float64) quat.Quaternion {
	if antipodal(q, p) {
		return lerpAntipodal(q, t)
	}
	return q.MulReal(1 - t).Add(p.MulReal(t)).Normalize()
}

// LerpFrom interpolates from the identity quaternion to p.
func LerpFrom(p quat.Quaternion, t float64) quat.Quaternion {
	return Lerp(quat.Identity(), p, t)
}

func lerpAntipodal(q quat.Quaternion, t float64) quat.Quaternion {
	mid := midpoint(q)
	return q.MulReal(1 - 2*t).Add(mid.MulReal(1 - math.Abs(2*t-1))).Normalize()
}

// Slerp spherically interpolates from q to p at parameter t, moving at
// constant angular velocity along the shorter geodesic arc. Antipodal
// endpoints are routed through a perpendicular midpoint in two half-arcs;
// identical or numerically coincident endpoints return q unchanged.
func Slerp(q, p quat.Quaternion, t float64) quat.Quaternion {
	if q == p {
		return q
	}
	if antipodal(q, p) {
		return slerpAntipodal(q, t)
	}
	return slerpArc(q, p, t)
}

// SlerpFrom interpolates from the identity quaternion to p.
func SlerpFrom(p quat.Quaternion, t float64) quat.Quaternion {
	return Slerp(quat.Identity(), p, t)
}

func slerpAntipodal(q quat.Quaternion, t float64) quat.Quaternion {
	mid := midpoint(q)
	if t <= 0.5 {
		return slerpArc(q, mid, 2*t)
	}
	return slerpArc(mid, q.Neg(), 2*t-1)
}

// slerpArc evaluates the standard two-coefficient slerp formula. When the
// arc is numerically degenerate (sin of the subtended angle is zero or
// NaN), it returns q rather than dividing by ~0.
func slerpArc(q, p quat.Quaternion, t float64) quat.Quaternion {
	cosOmega := q.Dot(p)
	sinOmega := math.Sqrt(1 - cosOmega*cosOmega)
	if sinOmega == 0 || math.IsNaN(sinOmega) {
		return q
	}
	omega := math.Acos(math.Max(-1, math.Min(1, cosOmega)))
	qc := math.Cos(omega*t) - cosOmega*math.Sin(omega*t)/sinOmega
	pc := math.Sin(omega*t) / sinOmega
	return q.MulReal(qc).Add(p.MulReal(pc))
}
