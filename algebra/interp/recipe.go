package interp

import (
	"math"

	"github.com/lumenmath/hypermath/algebra/quat"
)

// Lerper evaluates linear interpolation between a fixed pair of quaternions
// at varying t. The endpoints and the antipodal-case midpoint are resolved
// once at construction, so repeated evaluation does no re-detection.
type Lerper struct {
	q, p      quat.Quaternion
	mid       quat.Quaternion
	antipodal bool
}

// NewLerper creates a Lerper for the pair (q, p).
func NewLerper(q, p quat.Quaternion) *Lerper {
	l := &Lerper{q: q, p: p}
	if antipodal(q, p) {
		l.antipodal = true
		l.mid = midpoint(q)
	}
	return l
}

// NewLerperFrom creates a Lerper from the identity quaternion to p.
func NewLerperFrom(p quat.Quaternion) *Lerper {
	return NewLerper(quat.Identity(), p)
}

// At evaluates the interpolation at parameter t.
func (l *Lerper) At(t float64) quat.Quaternion {
	if l.antipodal {
		return l.q.MulReal(1 - 2*t).Add(l.mid.MulReal(1 - math.Abs(2*t-1))).Normalize()
	}
	return l.q.MulReal(1 - t).Add(l.p.MulReal(t)).Normalize()
}

// Slerper evaluates spherical interpolation between a fixed pair of
// quaternions at varying t. The subtended angle, its sine, and the
// antipodal/degenerate flags are precomputed once, avoiding the acos and
// sqrt on every call.
type Slerper struct {
	q, p       quat.Quaternion
	mid        quat.Quaternion
	cosOmega   float64
	sinOmega   float64
	omega      float64
	antipodal  bool
	degenerate bool
}

// NewSlerper creates a Slerper for the pair (q, p).
func NewSlerper(q, p quat.Quaternion) *Slerper {
	s := &Slerper{q: q, p: p}
	switch {
	case q == p:
		s.degenerate = true
	case antipodal(q, p):
		s.antipodal = true
		s.mid = midpoint(q)
	default:
		s.cosOmega = q.Dot(p)
		s.sinOmega = math.Sqrt(1 - s.cosOmega*s.cosOmega)
		if s.sinOmega == 0 || math.IsNaN(s.sinOmega) {
			s.degenerate = true
		} else {
			s.omega = math.Acos(math.Max(-1, math.Min(1, s.cosOmega)))
		}
	}
	return s
}

// NewSlerperFrom creates a Slerper from the identity quaternion to p.
func NewSlerperFrom(p quat.Quaternion) *Slerper {
	return NewSlerper(quat.Identity(), p)
}

// At evaluates the interpolation at parameter t.
func (s *Slerper) At(t float64) quat.Quaternion {
	switch {
	case s.degenerate:
		return s.q
	case s.antipodal:
		if t <= 0.5 {
			return slerpArc(s.q, s.mid, 2*t)
		}
		return slerpArc(s.mid, s.q.Neg(), 2*t-1)
	}
	qc := math.Cos(s.omega*t) - s.cosOmega*math.Sin(s.omega*t)/s.sinOmega
	pc := math.Sin(s.omega*t) / s.sinOmega
	return s.q.MulReal(qc).Add(s.p.MulReal(pc))
}
