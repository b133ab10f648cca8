// Package lattice maps sample coordinates onto integer lattice cells and
// implements interpolated lattice noise on top of a gradient.
//
// A Lattice produces one Span4 per axis: the two cell indices around the
// sample, the sample's offset from each, and the smoothed interpolation
// weight. Normal never wraps; Tiling folds indices into [0, frequency) so
// the noise repeats seamlessly.
package lattice

import "github.com/gogpu/noise/internal/wide"

// Span4 describes where 4 samples sit on one lattice axis.
type Span4 struct {
	// P0 and P1 are the neighbouring cell indices entering the hash.
	P0, P1 wide.I32x4

	// G0 and G1 are the signed offsets from each cell to the sample.
	G0, G1 wide.F32x4

	// T is the C2-continuous interpolation weight between P0 and P1.
	T wide.F32x4
}

// Lattice computes spans for frequency-scaled coordinates.
type Lattice interface {
	Span4(coordinates wide.F32x4, frequency int) Span4

	// ValidateSingleStep corrects cell indices that were offset by ±1 from
	// a span's P0.
	ValidateSingleStep(points wide.I32x4, frequency int) wide.I32x4
}

// Normal is the unbounded lattice.
type Normal struct{}

// Span4 implements Lattice.
func (Normal) Span4(coordinates wide.F32x4, frequency int) Span4 {
	coordinates = coordinates.MulScalar(float32(frequency))
	points := coordinates.Floor()
	var s Span4
	s.P0 = points.ToI32()
	s.P1 = s.P0.AddScalar(1)
	s.G0 = coordinates.Sub(s.P0.ToF32())
	s.G1 = s.G0.SubScalar(1)
	s.T = Smooth(coordinates.Sub(points))
	return s
}

// ValidateSingleStep implements Lattice. Normal lattices never wrap.
func (Normal) ValidateSingleStep(points wide.I32x4, _ int) wide.I32x4 {
	return points
}

// Tiling wraps cell indices with period frequency.
type Tiling struct{}

// Span4 implements Lattice.
func (Tiling) Span4(coordinates wide.F32x4, frequency int) Span4 {
	f := int32(frequency) //nolint:gosec // frequency is validated to a small positive range
	coordinates = coordinates.MulScalar(float32(frequency))
	points := coordinates.Floor()
	var s Span4
	s.P0 = points.ToI32()
	s.G0 = coordinates.Sub(s.P0.ToF32())
	s.G1 = s.G0.SubScalar(1)

	// Remainder via ceiling division: the ceiling is taken in float space
	// before converting back, so quotients just below an integer cannot
	// round the wrong way.
	s.P0 = s.P0.Sub(points.DivScalar(float32(frequency)).Ceil().ToI32().MulScalar(f))
	s.P0 = wide.SelectI32(s.P0.LessScalar(0), s.P0.AddScalar(f), s.P0)

	s.P1 = s.P0.AddScalar(1)
	s.P1 = wide.SelectI32(s.P1.EqScalar(f), wide.I32x4{}, s.P1)
	s.T = Smooth(coordinates.Sub(points))
	return s
}

// ValidateSingleStep implements Lattice: frequency wraps to 0 and -1 wraps
// to frequency-1.
func (Tiling) ValidateSingleStep(points wide.I32x4, frequency int) wide.I32x4 {
	f := int32(frequency) //nolint:gosec // frequency is validated to a small positive range
	points = wide.SelectI32(points.EqScalar(f), wide.I32x4{}, points)
	return wide.SelectI32(points.EqScalar(-1), wide.SplatI32x4(f-1), points)
}

// Smooth applies the quintic t³(t(6t−15)+10). Unlike smoothstep its
// second derivative is continuous, so displaced surfaces show no creases.
func Smooth(t wide.F32x4) wide.F32x4 {
	var result wide.F32x4
	for i, v := range t {
		result[i] = v * v * v * (v*(v*6-15) + 10)
	}
	return result
}
