package fourier

import "github.com/lumenmath/hypermath/algebra/cplx"

// Element is a tagged variant holding either a real scalar or a complex
// value. Arithmetic stays real while both operands are real and dispatches
// through the complex algebra as soon as either operand is complex-typed.
type Element struct {
	re        float64
	z         cplx.Complex
	isComplex bool
}

// NewReal creates a real-valued element.
func NewReal(x float64) Element {
	return Element{re: x}
}

// NewComplex creates a complex-valued element.
func NewComplex(z cplx.Complex) Element {
	return Element{z: z, isComplex: true}
}

// IsComplex reports whether the element carries a complex value.
func (e Element) IsComplex() bool {
	return e.isComplex
}

// Float returns the real scalar, or the real part for a complex element.
func (e Element) Float() float64 {
	if e.isComplex {
		return e.z.Re
	}
	return e.re
}

// Complex returns the value promoted to a complex number.
func (e Element) Complex() cplx.Complex {
	if e.isComplex {
		return e.z
	}
	return cplx.FromReal(e.re)
}

// Add returns e + f, promoting to complex when either operand is complex.
func (e Element) Add(f Element) Element {
	if e.isComplex || f.isComplex {
		return NewComplex(e.Complex().Add(f.Complex()))
	}
	return NewReal(e.re + f.re)
}

// Sub returns e - f with the same promotion rule as Add.
func (e Element) Sub(f Element) Element {
	if e.isComplex || f.isComplex {
		return NewComplex(e.Complex().Sub(f.Complex()))
	}
	return NewReal(e.re - f.re)
}

// Mul returns e * f with the same promotion rule as Add.
func (e Element) Mul(f Element) Element {
	if e.isComplex || f.isComplex {
		return NewComplex(e.Complex().Mul(f.Complex()))
	}
	return NewReal(e.re * f.re)
}
