package cplx

import (
	"fmt"
	"math"
)

// PowReal returns z raised to the real exponent n, on the branch selected by
// k: with r = |z| and theta = Arg(z), the result is
//
//	r^n * (cos((theta + 2k*pi)*n), sin((theta + 2k*pi)*n))
//
// The principal branch is k = 0. Raising the zero complex number to a
// negative or non-integer exponent returns ErrZeroBase, since the argument
// is undefined there.
func (z Complex) PowReal(n float64, k int) (Complex, error) {
	if z.IsZero() {
		if n == math.Trunc(n) && n >= 0 {
			if n == 0 {
				return FromReal(1), nil
			}
			return Complex{}, nil
		}
		return Complex{}, fmt.Errorf("cplx: PowReal: %w", ErrZeroBase)
	}
	r := math.Pow(z.Abs(), n)
	theta := (z.Arg() + 2*math.Pi*float64(k)) * n
	return FromPolar(r, theta), nil
}

// Pow returns z raised to the complex exponent w = (u, v), on the branch
// selected by k: with r = |z| and thetaK = Arg(z) + 2k*pi,
//
//	modulus  = r^u * exp(-v * thetaK)
//	argument = thetaK*u + ln(r)*v
//
// A zero base returns ErrZeroBase.
func (z Complex) Pow(w Complex, k int) (Complex, error) {
	if w.Im == 0 {
		return z.PowReal(w.Re, k)
	}
	if z.IsZero() {
		return Complex{}, fmt.Errorf("cplx: Pow: %w", ErrZeroBase)
	}
	r := z.Abs()
	thetaK := z.Arg() + 2*math.Pi*float64(k)
	mod := math.Pow(r, w.Re) * math.Exp(-w.Im*thetaK)
	arg := thetaK*w.Re + math.Log(r)*w.Im
	return FromPolar(mod, arg), nil
}

// Log returns the complex logarithm of z on branch k:
// (ln|z|, Arg(z) + 2k*pi). The zero complex number returns ErrZeroBase.
func (z Complex) Log(k int) (Complex, error) {
	if z.IsZero() {
		return Complex{}, fmt.Errorf("cplx: Log: %w", ErrZeroBase)
	}
	return Complex{
		Re: math.Log(z.Abs()),
		Im: z.Arg() + 2*math.Pi*float64(k),
	}, nil
}

// LogReal returns the complex logarithm of the real number n on branch k.
// For positive n this is (ln n, 2k*pi): the principal log of a positive
// real is real, but supplying a branch index promotes the result to model
// the multi-valued complex logarithm explicitly. Negative n lands on
// (ln|n|, pi + 2k*pi).
func LogReal(n float64, k int) (Complex, error) {
	return FromReal(n).Log(k)
}

// Exp returns e raised to the complex power z.
func (z Complex) Exp() Complex {
	return FromPolar(math.Exp(z.Re), z.Im)
}
