package vec

import (
	"fmt"
	"strings"
)

// Mat4 is a 4x4 matrix of float64 in row-major order, used as a homogeneous
// rotation/affine transform. Only the operations needed by quaternion
// conversion are provided; general matrix algebra is out of scope here.
type Mat4 [16]float64

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// MatFromSlice creates a Mat4 from a 16-element row-major slice.
func MatFromSlice(s []float64) (Mat4, error) {
	if len(s) != 16 {
		return Mat4{}, fmt.Errorf("vec: need 16 matrix entries, got %d", len(s))
	}
	var m Mat4
	copy(m[:], s)
	return m, nil
}

// At returns the entry at row r, column c.
func (m Mat4) At(r, c int) float64 {
	return m[r*4+c]
}

// Set returns a copy of m with the entry at row r, column c replaced.
func (m Mat4) Set(r, c int, v float64) Mat4 {
	m[r*4+c] = v
	return m
}

// Mul returns the matrix product m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[r*4+k] * n[k*4+c]
			}
			out[r*4+c] = sum
		}
	}
	return out
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = m[r*4+c]
		}
	}
	return out
}

// Apply transforms v as a homogeneous point (column vector on the right,
// w component 1) and returns the transformed 3-vector.
func (m Mat4) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
	}
}

func (m Mat4) String() string {
	var b strings.Builder
	for r := 0; r < 4; r++ {
		fmt.Fprintf(&b, "[%g %g %g %g]", m[r*4], m[r*4+1], m[r*4+2], m[r*4+3])
		if r < 3 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
