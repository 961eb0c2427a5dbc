// Package cplx implements complex numbers as immutable value pairs with
// explicit scalar promotion, branch-aware powers and logarithms, and
// trigonometric extensions to complex arguments.
package cplx

import (
	"errors"
	"fmt"
	"math"
)

// Domain errors reported by operations that are undefined for their input.
// These are returned wrapped; check with errors.Is.
var (
	// ErrDivideByZero is returned when a divisor has zero length.
	ErrDivideByZero = errors.New("cplx: division by zero complex number")

	// ErrZeroBase is returned when a power or logarithm of the zero complex
	// number is requested with a non-integer or complex exponent, where the
	// branch/argument is undefined.
	ErrZeroBase = errors.New("cplx: zero base has no defined argument")

	// ErrPole is returned by Tan and Tanh when the argument sits exactly on
	// a pole of the function.
	ErrPole = errors.New("cplx: argument is a pole")
)

// Complex is a complex number (re, im) of IEEE double-precision floats.
// It is an immutable value type; every operation returns a new value.
type Complex struct {
	Re, Im float64
}

// New creates a Complex from its cartesian components.
func New(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// FromReal promotes a real scalar s to the complex number (s, 0).
func FromReal(s float64) Complex {
	return Complex{Re: s}
}

// FromSlice creates a Complex from a 2-element slice.
func FromSlice(s []float64) (Complex, error) {
	if len(s) != 2 {
		return Complex{}, fmt.Errorf("cplx: need 2 components, got %d", len(s))
	}
	return Complex{Re: s[0], Im: s[1]}, nil
}

// FromPolar creates a Complex from modulus r and argument theta.
func FromPolar(r, theta float64) Complex {
	return Complex{Re: r * math.Cos(theta), Im: r * math.Sin(theta)}
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{z.Re + w.Re, z.Im + w.Im}
}

// AddReal returns z + (s, 0).
func (z Complex) AddReal(s float64) Complex {
	return z.Add(FromReal(s))
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{z.Re - w.Re, z.Im - w.Im}
}

// SubReal returns z - (s, 0).
func (z Complex) SubReal(s float64) Complex {
	return z.Sub(FromReal(s))
}

// Mul returns the complex product z * w.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// MulReal returns z scaled by the real scalar s.
func (z Complex) MulReal(s float64) Complex {
	return Complex{z.Re * s, z.Im * s}
}

// Div returns z / w, computed as z * conj(w) / |w|^2. It returns
// ErrDivideByZero when w has zero length; the caller must guard.
func (z Complex) Div(w Complex) (Complex, error) {
	d := w.AbsSq()
	if d == 0 {
		return Complex{}, fmt.Errorf("cplx: Div: %w", ErrDivideByZero)
	}
	return z.Mul(w.Conj()).MulReal(1 / d), nil
}

// DivReal returns z / (s, 0).
func (z Complex) DivReal(s float64) (Complex, error) {
	if s == 0 {
		return Complex{}, fmt.Errorf("cplx: DivReal: %w", ErrDivideByZero)
	}
	return z.MulReal(1 / s), nil
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{-z.Re, -z.Im}
}

// Conj returns the complex conjugate (re, -im).
func (z Complex) Conj() Complex {
	return Complex{z.Re, -z.Im}
}

// Abs returns the modulus |z|.
func (z Complex) Abs() float64 {
	return math.Hypot(z.Re, z.Im)
}

// AbsSq returns the squared modulus.
func (z Complex) AbsSq() float64 {
	return z.Re*z.Re + z.Im*z.Im
}

// Arg returns the argument of z: the angle from the positive real axis,
// in the atan2 convention with range (-pi, pi].
func (z Complex) Arg() float64 {
	return math.Atan2(z.Im, z.Re)
}

// Normalize returns z scaled to unit modulus. If the result is not finite
// (zero-length input), it returns the canonical fallback (1, 0) instead of
// propagating NaN.
func (z Complex) Normalize() Complex {
	l := z.Abs()
	n := Complex{z.Re / l, z.Im / l}
	if !n.IsFinite() {
		return Complex{Re: 1}
	}
	return n
}

// Reciprocal returns 1/z, or ErrDivideByZero for the zero complex number.
func (z Complex) Reciprocal() (Complex, error) {
	d := z.AbsSq()
	if d == 0 {
		return Complex{}, fmt.Errorf("cplx: Reciprocal: %w", ErrDivideByZero)
	}
	return z.Conj().MulReal(1 / d), nil
}

// IsZero reports whether both components are exactly zero.
func (z Complex) IsZero() bool {
	return z.Re == 0 && z.Im == 0
}

// IsFinite reports whether both components are finite.
func (z Complex) IsFinite() bool {
	return !math.IsNaN(z.Re) && !math.IsInf(z.Re, 0) &&
		!math.IsNaN(z.Im) && !math.IsInf(z.Im, 0)
}

// String renders z in cartesian form using the default format.
func (z Complex) String() string {
	return NewFormatter(DefaultFormat()).Cartesian(z)
}
