package fourier

import (
	"math"

	"github.com/lumenmath/hypermath/algebra/cplx"
	"github.com/lumenmath/hypermath/logging"
)

// Options controls a transform.
type Options struct {
	// Inverse negates the twiddle rotation direction. No 1/N normalization
	// is applied: a true round trip requires the caller to divide the
	// inverse output by N.
	Inverse bool
	// InPlace mutates and returns the input vector instead of a copy.
	InPlace bool
}

// FFT runs the iterative radix-2 Cooley-Tukey transform over the vector,
// padding it to a power-of-two size via BitReverse first. Entries may be
// real or complex; butterflies dispatch through the complex algebra as soon
// as a complex operand appears.
//
// Twiddle factors are generated by the trigonometric recurrence: per stage
// with butterfly half-width i, delta = pi/i (negated for the inverse
// direction), the multiplier step is (-2*sin^2(delta/2), sin(delta)), and
// the rotating factor starts at 1 and advances by fi <- step*fi + fi after
// the butterflies sharing it. This avoids transcendental calls inside the
// butterfly loop.
func FFT(v *Vector, opts Options) *Vector {
	out := BitReverse(v, opts.InPlace)
	n := out.Len()

	logging.Debug("fourier: transform", logging.Fields{
		"size":    n,
		"inverse": opts.Inverse,
	})

	for i := 1; i < n; i *= 2 {
		stride := 2 * i
		delta := math.Pi / float64(i)
		if opts.Inverse {
			delta = -delta
		}
		s := math.Sin(delta / 2)
		step := cplx.New(-2*s*s, math.Sin(delta))
		fi := cplx.FromReal(1)

		for g := 0; g < i; g++ {
			twiddle := NewComplex(fi)
			for ll := g; ll+i < n; ll += stride {
				p := ll + i
				t := twiddle.Mul(out.elems[p])
				out.elems[p] = out.elems[ll].Sub(t)
				out.elems[ll] = out.elems[ll].Add(t)
			}
			fi = step.Mul(fi).Add(fi)
		}
	}
	return out
}

// IFFT is shorthand for the inverse-direction transform. The result is not
// normalized; divide by the length for a round trip.
func IFFT(v *Vector, inPlace bool) *Vector {
	return FFT(v, Options{Inverse: true, InPlace: inPlace})
}
