package space

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// Matrix represents a 3D affine transformation matrix.
// It uses a 3x4 matrix in row-major order:
//
//	| a  b  c  d |
//	| e  f  g  h |
//	| i  j  k  l |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c*z + d
//	y' = e*x + f*y + g*z + h
//	z' = i*x + j*y + k*z + l
type Matrix struct {
	A, B, C, D float32
	E, F, G, H float32
	I, J, K, L float32
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1,
		F: 1,
		K: 1,
	}
}

// Translate creates a translation matrix.
func Translate(v ms3.Vec) Matrix {
	return Matrix{
		A: 1, D: v.X,
		F: 1, H: v.Y,
		K: 1, L: v.Z,
	}
}

// Scale creates a scaling matrix.
func Scale(v ms3.Vec) Matrix {
	return Matrix{
		A: v.X,
		F: v.Y,
		K: v.Z,
	}
}

// RotateX creates a rotation about the X axis (angle in radians).
func RotateX(angle float32) Matrix {
	sin, cos := math32.Sincos(angle)
	return Matrix{
		A: 1,
		F: cos, G: -sin,
		J: sin, K: cos,
	}
}

// RotateY creates a rotation about the Y axis (angle in radians).
func RotateY(angle float32) Matrix {
	sin, cos := math32.Sincos(angle)
	return Matrix{
		A: cos, C: sin,
		F: 1,
		I: -sin, K: cos,
	}
}

// RotateZ creates a rotation about the Z axis (angle in radians).
func RotateZ(angle float32) Matrix {
	sin, cos := math32.Sincos(angle)
	return Matrix{
		A: cos, B: -sin,
		E: sin, F: cos,
		K: 1,
	}
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		A: m.A*o.A + m.B*o.E + m.C*o.I,
		B: m.A*o.B + m.B*o.F + m.C*o.J,
		C: m.A*o.C + m.B*o.G + m.C*o.K,
		D: m.A*o.D + m.B*o.H + m.C*o.L + m.D,

		E: m.E*o.A + m.F*o.E + m.G*o.I,
		F: m.E*o.B + m.F*o.F + m.G*o.J,
		G: m.E*o.C + m.F*o.G + m.G*o.K,
		H: m.E*o.D + m.F*o.H + m.G*o.L + m.H,

		I: m.I*o.A + m.J*o.E + m.K*o.I,
		J: m.I*o.B + m.J*o.F + m.K*o.J,
		K: m.I*o.C + m.J*o.G + m.K*o.K,
		L: m.I*o.D + m.J*o.H + m.K*o.L + m.L,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p ms3.Vec) ms3.Vec {
	return ms3.Vec{
		X: m.A*p.X + m.B*p.Y + m.C*p.Z + m.D,
		Y: m.E*p.X + m.F*p.Y + m.G*p.Z + m.H,
		Z: m.I*p.X + m.J*p.Y + m.K*p.Z + m.L,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p ms3.Vec) ms3.Vec {
	return ms3.Vec{
		X: m.A*p.X + m.B*p.Y + m.C*p.Z,
		Y: m.E*p.X + m.F*p.Y + m.G*p.Z,
		Z: m.I*p.X + m.J*p.Y + m.K*p.Z,
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float32 {
	return m.A*(m.F*m.K-m.G*m.J) -
		m.B*(m.E*m.K-m.G*m.I) +
		m.C*(m.E*m.J-m.F*m.I)
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.Determinant()
	if !m.invertible(det) {
		return Identity()
	}
	inv := 1 / det

	r := Matrix{
		A: (m.F*m.K - m.G*m.J) * inv,
		B: (m.C*m.J - m.B*m.K) * inv,
		C: (m.B*m.G - m.C*m.F) * inv,

		E: (m.G*m.I - m.E*m.K) * inv,
		F: (m.A*m.K - m.C*m.I) * inv,
		G: (m.C*m.E - m.A*m.G) * inv,

		I: (m.E*m.J - m.F*m.I) * inv,
		J: (m.B*m.I - m.A*m.J) * inv,
		K: (m.A*m.F - m.B*m.E) * inv,
	}
	// Translation of the inverse is -R⁻¹·t.
	t := r.TransformVector(ms3.Vec{X: m.D, Y: m.H, Z: m.L})
	r.D, r.H, r.L = -t.X, -t.Y, -t.Z
	return r
}

// Transpose returns the transpose of the linear part with zero translation.
func (m Matrix) Transpose() Matrix {
	return Matrix{
		A: m.A, B: m.E, C: m.I,
		E: m.B, F: m.F, G: m.J,
		I: m.C, J: m.G, K: m.K,
	}
}

// NormalMatrix returns the matrix that transforms surface normals:
// the inverse transpose of the linear part, without translation.
// The result is not normalized; callers renormalize transformed normals.
func (m Matrix) NormalMatrix() Matrix {
	return m.Invert().Transpose()
}

// singularTolerance is the smallest |det| / maxAbs³ treated as invertible.
// It sits a few float32 rounding steps above zero, so the test depends on
// the shape of the linear part and not its overall scale.
const singularTolerance = 1e-6

// IsInvertible reports whether the linear part has a usable inverse.
// A uniformly scaled matrix is invertible at any non-zero scale.
func (m Matrix) IsInvertible() bool {
	return m.invertible(m.Determinant())
}

func (m Matrix) invertible(det float32) bool {
	scale := m.maxAbs()
	if scale == 0 || math32.IsInf(scale, 0) || math32.IsNaN(det) {
		return false
	}
	// Normalize before cubing so tiny and huge scales do not underflow.
	return math32.Abs(det/scale/scale/scale) >= singularTolerance
}

// maxAbs returns the largest absolute entry of the linear part.
func (m Matrix) maxAbs() float32 {
	v := float32(0)
	for _, x := range [...]float32{m.A, m.B, m.C, m.E, m.F, m.G, m.I, m.J, m.K} {
		v = math32.Max(v, math32.Abs(x))
	}
	return v
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
