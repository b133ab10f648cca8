// Package gradient provides the per-corner functions interpolated by
// lattice noise.
//
// A gradient turns a corner hash and the sample's offset from that corner
// into a scalar. Value ignores the offset; Perlin takes a dot product with a
// hash-derived gradient vector. Turbulence wraps any gradient and folds the
// interpolated result to its absolute value.
package gradient

import (
	"github.com/gogpu/noise/internal/wide"
	"github.com/gogpu/noise/internal/xxhash"
)

// Gradient evaluates a lattice corner for 1, 2 or 3 axes.
//
// Implementations are stateless value types so that a zero value can be
// used directly as a type parameter.
type Gradient interface {
	Evaluate1(h xxhash.Hash4, x wide.F32x4) wide.F32x4
	Evaluate2(h xxhash.Hash4, x, y wide.F32x4) wide.F32x4
	Evaluate3(h xxhash.Hash4, x, y, z wide.F32x4) wide.F32x4

	// AfterInterpolation transforms the fully interpolated value.
	AfterInterpolation(value wide.F32x4) wide.F32x4
}

// Value is the constant gradient: each corner contributes a hash-derived
// value in [-1, 1] regardless of the offset.
type Value struct{}

func (Value) Evaluate1(h xxhash.Hash4, _ wide.F32x4) wide.F32x4 { return signed(h) }

func (Value) Evaluate2(h xxhash.Hash4, _, _ wide.F32x4) wide.F32x4 { return signed(h) }

func (Value) Evaluate3(h xxhash.Hash4, _, _, _ wide.F32x4) wide.F32x4 { return signed(h) }

func (Value) AfterInterpolation(value wide.F32x4) wide.F32x4 { return value }

// signed maps channel A to [-1, 1].
func signed(h xxhash.Hash4) wide.F32x4 {
	return h.Floats01A().MulScalar(2).SubScalar(1)
}

// Turbulence folds the interpolated result of G to its absolute value,
// producing ridged variants of any gradient.
type Turbulence[G Gradient] struct{}

func (Turbulence[G]) Evaluate1(h xxhash.Hash4, x wide.F32x4) wide.F32x4 {
	var g G
	return g.Evaluate1(h, x)
}

func (Turbulence[G]) Evaluate2(h xxhash.Hash4, x, y wide.F32x4) wide.F32x4 {
	var g G
	return g.Evaluate2(h, x, y)
}

func (Turbulence[G]) Evaluate3(h xxhash.Hash4, x, y, z wide.F32x4) wide.F32x4 {
	var g G
	return g.Evaluate3(h, x, y, z)
}

func (Turbulence[G]) AfterInterpolation(value wide.F32x4) wide.F32x4 {
	var g G
	return g.AfterInterpolation(value).Abs()
}
