// Package fractal sums octaves of a noise engine and runs the per-batch
// noise job.
package fractal

import (
	"github.com/gogpu/noise/internal/wide"
	"github.com/gogpu/noise/internal/xxhash"
)

// Noise is a 4-lane noise engine. Lattice, voronoi and simplex engines all
// satisfy it.
type Noise interface {
	Noise4(positions wide.F32x4x3, hash xxhash.Hash4, frequency int) wide.F32x4
}

// Params controls octave summation. Values are expected to be validated
// by the caller.
type Params struct {
	Seed        int
	Frequency   int
	Octaves     int
	Lacunarity  int
	Persistence float32
}

// Compose4 sums Octaves layers of n. Each octave advances the seed hash by
// its index, multiplies the frequency by Lacunarity and the amplitude by
// Persistence. The sum is divided by the total amplitude, so a single
// octave returns the engine's output unchanged.
func Compose4(n Noise, positions wide.F32x4x3, p Params) wide.F32x4 {
	hash := xxhash.Seed4(p.Seed)
	frequency := p.Frequency
	amplitude := float32(1)
	var amplitudeSum float32
	var sum wide.F32x4

	for o := 0; o < p.Octaves; o++ {
		sum = sum.Add(n.Noise4(positions, hash.Add(o), frequency).MulScalar(amplitude))
		amplitudeSum += amplitude
		frequency *= p.Lacunarity
		amplitude *= p.Persistence
	}
	return sum.DivScalar(amplitudeSum)
}
