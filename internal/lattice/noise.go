package lattice

import (
	"github.com/gogpu/noise/internal/gradient"
	"github.com/gogpu/noise/internal/wide"
	"github.com/gogpu/noise/internal/xxhash"
)

// Lattice1D interpolates G along the X axis.
type Lattice1D[L Lattice, G gradient.Gradient] struct{}

// Noise4 evaluates 4 samples. Positions are already domain-transformed.
func (Lattice1D[L, G]) Noise4(positions wide.F32x4x3, hash xxhash.Hash4, frequency int) wide.F32x4 {
	var (
		l L
		g G
	)
	x := l.Span4(positions.X, frequency)
	return g.AfterInterpolation(
		g.Evaluate1(hash.Eat(x.P0), x.G0).Lerp(g.Evaluate1(hash.Eat(x.P1), x.G1), x.T),
	)
}

// Lattice2D interpolates G over the XZ plane.
type Lattice2D[L Lattice, G gradient.Gradient] struct{}

// Noise4 evaluates 4 samples. Z is interpolated first, then X.
func (Lattice2D[L, G]) Noise4(positions wide.F32x4x3, hash xxhash.Hash4, frequency int) wide.F32x4 {
	var (
		l L
		g G
	)
	x := l.Span4(positions.X, frequency)
	z := l.Span4(positions.Z, frequency)
	h0, h1 := hash.Eat(x.P0), hash.Eat(x.P1)

	return g.AfterInterpolation(
		g.Evaluate2(h0.Eat(z.P0), x.G0, z.G0).
			Lerp(g.Evaluate2(h0.Eat(z.P1), x.G0, z.G1), z.T).
			Lerp(
				g.Evaluate2(h1.Eat(z.P0), x.G1, z.G0).
					Lerp(g.Evaluate2(h1.Eat(z.P1), x.G1, z.G1), z.T),
				x.T,
			),
	)
}

// Lattice3D interpolates G through XYZ space.
type Lattice3D[L Lattice, G gradient.Gradient] struct{}

// Noise4 evaluates 4 samples. Z is interpolated first, then Y, then X.
func (Lattice3D[L, G]) Noise4(positions wide.F32x4x3, hash xxhash.Hash4, frequency int) wide.F32x4 {
	var (
		l L
		g G
	)
	x := l.Span4(positions.X, frequency)
	y := l.Span4(positions.Y, frequency)
	z := l.Span4(positions.Z, frequency)

	h0, h1 := hash.Eat(x.P0), hash.Eat(x.P1)
	h00, h01 := h0.Eat(y.P0), h0.Eat(y.P1)
	h10, h11 := h1.Eat(y.P0), h1.Eat(y.P1)

	// line returns the Z interpolation between two corners sharing x and y.
	line := func(h xxhash.Hash4, gx, gy wide.F32x4) wide.F32x4 {
		return g.Evaluate3(h.Eat(z.P0), gx, gy, z.G0).
			Lerp(g.Evaluate3(h.Eat(z.P1), gx, gy, z.G1), z.T)
	}

	return g.AfterInterpolation(
		line(h00, x.G0, y.G0).Lerp(line(h01, x.G0, y.G1), y.T).
			Lerp(line(h10, x.G1, y.G0).Lerp(line(h11, x.G1, y.G1), y.T), x.T),
	)
}
