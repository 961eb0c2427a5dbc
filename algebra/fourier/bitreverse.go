package fourier

import (
	"math/bits"

	"github.com/lumenmath/hypermath/logging"
)

// BitReverse permutes the vector into bit-reversed index order, the input
// ordering required by the iterative radix-2 transform. The vector is first
// padded with zero elements up to the next power of two m = 2^h; every
// index is then swapped with its bit reversal within h bits.
//
// A new vector of size m is returned unless inPlace is set, in which case
// the original vector is mutated and returned. Applied twice to a
// power-of-two-sized vector, the permutation is an involution.
func BitReverse(v *Vector, inPlace bool) *Vector {
	out := v
	if !inPlace {
		out = v.Clone()
	}

	n := out.Len()
	if n < 2 {
		return out
	}

	m := n
	if !isPowerOfTwo(n) {
		m = nextPowerOfTwo(n)
		logging.Debug("fourier: padding vector to power of two", logging.Fields{
			"from": n,
			"to":   m,
		})
		out.Resize(m)
	}

	h := bits.Len(uint(m)) - 1
	for k := 0; k < m; k++ {
		l := int(bits.Reverse64(uint64(k)) >> (64 - h))
		if l > k {
			out.elems[k], out.elems[l] = out.elems[l], out.elems[k]
		}
	}
	return out
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	power := 1
	for power < n {
		power <<= 1
	}
	return power
}
