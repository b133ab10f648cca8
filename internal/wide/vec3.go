package wide

import (
	"github.com/gogpu/noise/space"
	"github.com/soypat/glgl/math/ms3"
)

// F32x4x3 holds 4 three-component vectors in Structure-of-Arrays layout:
//
//	X: [x0, x1, x2, x3]
//	Y: [y0, y1, y2, y3]
//	Z: [z0, z1, z2, z3]
//
// It is the transposed form of 4 consecutive ms3.Vec values.
type F32x4x3 struct {
	X, Y, Z F32x4
}

// LoadVec3 transposes 4 vectors from src into SoA layout.
// src must have at least 4 elements.
func LoadVec3(src []ms3.Vec) F32x4x3 {
	_ = src[Lanes-1]
	var p F32x4x3
	for i := 0; i < Lanes; i++ {
		p.X[i] = src[i].X
		p.Y[i] = src[i].Y
		p.Z[i] = src[i].Z
	}
	return p
}

// Store transposes p back into 4 consecutive vectors of dst.
// dst must have at least 4 elements.
func (p F32x4x3) Store(dst []ms3.Vec) {
	_ = dst[Lanes-1]
	for i := 0; i < Lanes; i++ {
		dst[i] = ms3.Vec{X: p.X[i], Y: p.Y[i], Z: p.Z[i]}
	}
}

// Lane returns the vector held in lane i.
func (p F32x4x3) Lane(i int) ms3.Vec {
	return ms3.Vec{X: p.X[i], Y: p.Y[i], Z: p.Z[i]}
}

// MulScalar scales every component of every lane by s.
func (p F32x4x3) MulScalar(s F32x4) F32x4x3 {
	return F32x4x3{X: p.X.Mul(s), Y: p.Y.Mul(s), Z: p.Z.Mul(s)}
}

// LengthSq returns the squared length of each lane's vector.
func (p F32x4x3) LengthSq() F32x4 {
	return p.X.Mul(p.X).Add(p.Y.Mul(p.Y)).Add(p.Z.Mul(p.Z))
}

// Normalize scales each lane's vector to unit length.
// Zero vectors produce NaN lanes, matching IEEE 754 division.
func (p F32x4x3) Normalize() F32x4x3 {
	inv := SplatF32x4(1).Div(p.LengthSq().Sqrt())
	return p.MulScalar(inv)
}

// TransformPoints applies m to every lane, including translation.
func TransformPoints(m space.Matrix, p F32x4x3) F32x4x3 {
	return transform(m, p, 1)
}

// TransformVectors applies the linear part of m to every lane.
func TransformVectors(m space.Matrix, p F32x4x3) F32x4x3 {
	return transform(m, p, 0)
}

func transform(m space.Matrix, p F32x4x3, w float32) F32x4x3 {
	var r F32x4x3
	for i := 0; i < Lanes; i++ {
		x, y, z := p.X[i], p.Y[i], p.Z[i]
		r.X[i] = m.A*x + m.B*y + m.C*z + m.D*w
		r.Y[i] = m.E*x + m.F*y + m.G*z + m.H*w
		r.Z[i] = m.I*x + m.J*y + m.K*z + m.L*w
	}
	return r
}
