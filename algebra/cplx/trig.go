package cplx

import (
	"fmt"
	"math"
)

// Trigonometric and hyperbolic functions extended to complex arguments via
// the standard angle-sum identities.

// Sin returns the complex sine:
// sin(x+iy) = sin x * cosh y + i * cos x * sinh y.
func (z Complex) Sin() Complex {
	return Complex{
		Re: math.Sin(z.Re) * math.Cosh(z.Im),
		Im: math.Cos(z.Re) * math.Sinh(z.Im),
	}
}

// Cos returns the complex cosine:
// cos(x+iy) = cos x * cosh y - i * sin x * sinh y.
func (z Complex) Cos() Complex {
	return Complex{
		Re: math.Cos(z.Re) * math.Cosh(z.Im),
		Im: -math.Sin(z.Re) * math.Sinh(z.Im),
	}
}

// Sinh returns the complex hyperbolic sine:
// sinh(x+iy) = sinh x * cos y + i * cosh x * sin y.
func (z Complex) Sinh() Complex {
	return Complex{
		Re: math.Sinh(z.Re) * math.Cos(z.Im),
		Im: math.Cosh(z.Re) * math.Sin(z.Im),
	}
}

// Cosh returns the complex hyperbolic cosine:
// cosh(x+iy) = cosh x * cos y + i * sinh x * sin y.
func (z Complex) Cosh() Complex {
	return Complex{
		Re: math.Cosh(z.Re) * math.Cos(z.Im),
		Im: math.Sinh(z.Re) * math.Sin(z.Im),
	}
}

// Tan returns the complex tangent sin(z)/cos(z). The denominator
// |cos z|^2 = cos^2 x * cosh^2 y + sin^2 x * sinh^2 y; when it is exactly
// zero the argument sits on a pole and ErrPole is returned rather than a
// non-finite value.
func (z Complex) Tan() (Complex, error) {
	c := z.Cos()
	d := c.AbsSq()
	if d == 0 {
		return Complex{}, fmt.Errorf("cplx: Tan: %w", ErrPole)
	}
	return z.Sin().Mul(c.Conj()).MulReal(1 / d), nil
}

// Tanh returns the complex hyperbolic tangent sinh(z)/cosh(z), with the
// same pole handling as Tan.
func (z Complex) Tanh() (Complex, error) {
	c := z.Cosh()
	d := c.AbsSq()
	if d == 0 {
		return Complex{}, fmt.Errorf("cplx: Tanh: %w", ErrPole)
	}
	return z.Sinh().Mul(c.Conj()).MulReal(1 / d), nil
}
