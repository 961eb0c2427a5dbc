// Package fourier implements an iterative radix-2 Cooley-Tukey transform
// over a generic resizable numeric vector whose entries may be plain reals
// or complex values.
package fourier

import "github.com/lumenmath/hypermath/algebra/cplx"

// Vector is an ordered, resizable sequence of numeric elements. The zero
// value is an empty vector.
type Vector struct {
	elems []Element
}

// NewVector creates a vector of n real zero elements.
func NewVector(n int) *Vector {
	return &Vector{elems: make([]Element, n)}
}

// FromReals creates a vector whose elements are the given real scalars.
func FromReals(xs []float64) *Vector {
	v := NewVector(len(xs))
	for i, x := range xs {
		v.elems[i] = NewReal(x)
	}
	return v
}

// FromComplexes creates a vector whose elements are the given complex values.
func FromComplexes(zs []cplx.Complex) *Vector {
	v := NewVector(len(zs))
	for i, z := range zs {
		v.elems[i] = NewComplex(z)
	}
	return v
}

// Len returns the element count.
func (v *Vector) Len() int {
	return len(v.elems)
}

// At returns the element at index i.
func (v *Vector) At(i int) Element {
	return v.elems[i]
}

// Set replaces the element at index i.
func (v *Vector) Set(i int, e Element) {
	v.elems[i] = e
}

// Append appends elements to the vector.
func (v *Vector) Append(es ...Element) {
	v.elems = append(v.elems, es...)
}

// Resize grows or truncates the vector to n elements. New trailing entries
// are real zeros.
func (v *Vector) Resize(n int) {
	switch {
	case n <= len(v.elems):
		v.elems = v.elems[:n]
	default:
		grown := make([]Element, n)
		copy(grown, v.elems)
		v.elems = grown
	}
}

// Clone returns a deep copy of the vector.
func (v *Vector) Clone() *Vector {
	elems := make([]Element, len(v.elems))
	copy(elems, v.elems)
	return &Vector{elems: elems}
}

// Complexes returns the elements promoted to complex values.
func (v *Vector) Complexes() []cplx.Complex {
	out := make([]cplx.Complex, len(v.elems))
	for i, e := range v.elems {
		out[i] = e.Complex()
	}
	return out
}
