package voronoi

import (
	"github.com/gogpu/noise/internal/lattice"
	"github.com/gogpu/noise/internal/wide"
	"github.com/gogpu/noise/internal/xxhash"
)

// Voronoi1D places one feature point per cell along X.
type Voronoi1D[L lattice.Lattice, D Distance, F Function] struct{}

// Noise4 evaluates 4 samples.
func (Voronoi1D[L, D, F]) Noise4(positions wide.F32x4x3, hash xxhash.Hash4, frequency int) wide.F32x4 {
	var (
		l L
		d D
		f F
	)
	x := l.Span4(positions.X, frequency)

	m := NewMinima()
	for u := int32(-1); u <= 1; u++ {
		h := hash.Eat(l.ValidateSingleStep(x.P0.AddScalar(u), frequency))
		m = UpdateMinima(m, d.Distance1(h.Floats01A().AddScalar(float32(u)).Sub(x.G0)))
	}
	return f.Evaluate(d.Finalize1(m))
}

// Voronoi2D places two feature points per cell in the XZ plane, one from
// channels A and B, one from C and D.
type Voronoi2D[L lattice.Lattice, D Distance, F Function] struct{}

// Noise4 evaluates 4 samples.
func (Voronoi2D[L, D, F]) Noise4(positions wide.F32x4x3, hash xxhash.Hash4, frequency int) wide.F32x4 {
	var (
		l L
		d D
		f F
	)
	x := l.Span4(positions.X, frequency)
	z := l.Span4(positions.Z, frequency)

	m := NewMinima()
	for u := int32(-1); u <= 1; u++ {
		hx := hash.Eat(l.ValidateSingleStep(x.P0.AddScalar(u), frequency))
		xOffset := x.G0.Neg().AddScalar(float32(u))
		for v := int32(-1); v <= 1; v++ {
			h := hx.Eat(l.ValidateSingleStep(z.P0.AddScalar(v), frequency))
			zOffset := z.G0.Neg().AddScalar(float32(v))
			m = UpdateMinima(m, d.Distance2(
				h.Floats01A().Add(xOffset),
				h.Floats01B().Add(zOffset),
			))
			m = UpdateMinima(m, d.Distance2(
				h.Floats01C().Add(xOffset),
				h.Floats01D().Add(zOffset),
			))
		}
	}
	return f.Evaluate(d.Finalize2(m))
}

// Voronoi3D places two feature points per cell. A byte per coordinate would
// need six bytes, so each coordinate uses a 5-bit field instead.
type Voronoi3D[L lattice.Lattice, D Distance, F Function] struct{}

// Noise4 evaluates 4 samples.
func (Voronoi3D[L, D, F]) Noise4(positions wide.F32x4x3, hash xxhash.Hash4, frequency int) wide.F32x4 {
	var (
		l L
		d D
		f F
	)
	x := l.Span4(positions.X, frequency)
	y := l.Span4(positions.Y, frequency)
	z := l.Span4(positions.Z, frequency)

	m := NewMinima()
	for u := int32(-1); u <= 1; u++ {
		hx := hash.Eat(l.ValidateSingleStep(x.P0.AddScalar(u), frequency))
		xOffset := x.G0.Neg().AddScalar(float32(u))
		for v := int32(-1); v <= 1; v++ {
			hy := hx.Eat(l.ValidateSingleStep(y.P0.AddScalar(v), frequency))
			yOffset := y.G0.Neg().AddScalar(float32(v))
			for w := int32(-1); w <= 1; w++ {
				h := hy.Eat(l.ValidateSingleStep(z.P0.AddScalar(w), frequency))
				zOffset := z.G0.Neg().AddScalar(float32(w))
				m = UpdateMinima(m, d.Distance3(
					h.GetBitsAsFloats01(5, 0).Add(xOffset),
					h.GetBitsAsFloats01(5, 5).Add(yOffset),
					h.GetBitsAsFloats01(5, 10).Add(zOffset),
				))
				m = UpdateMinima(m, d.Distance3(
					h.GetBitsAsFloats01(5, 15).Add(xOffset),
					h.GetBitsAsFloats01(5, 20).Add(yOffset),
					h.GetBitsAsFloats01(5, 25).Add(zOffset),
				))
			}
		}
	}
	return f.Evaluate(d.Finalize3(m))
}
