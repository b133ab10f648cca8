// Package simplex adapts OpenSimplex noise to the 4-lane engine contract
// shared by the lattice and voronoi engines.
//
// OpenSimplex generators are seeded with an int64 and build permutation
// tables on construction. The finalized lane hash serves as that seed, and
// generators are cached per seed, so octaves (which advance the hash)
// each sample an independent field. The cache keeps at most maxGenerators
// tables and drops the least recently used ones beyond that.
package simplex

import (
	"github.com/gogpu/noise/internal/cache"
	"github.com/gogpu/noise/internal/wide"
	"github.com/gogpu/noise/internal/xxhash"
	"github.com/ojrac/opensimplex-go"
)

// maxGenerators covers every octave of a few dozen seeds.
const maxGenerators = 256

var generators = cache.New[uint32, opensimplex.Noise32](maxGenerators)

// generator returns the cached generator for seed, creating it on first use.
func generator(seed uint32) opensimplex.Noise32 {
	return generators.GetOrCreate(seed, func() opensimplex.Noise32 {
		return opensimplex.New32(int64(seed))
	})
}

// lanes returns the generator of every lane. Lanes usually share a seed,
// which then costs a single lookup.
func lanes(seeds wide.U32x4) [wide.Lanes]opensimplex.Noise32 {
	var gs [wide.Lanes]opensimplex.Noise32
	gs[0] = generator(seeds[0])
	for i := 1; i < wide.Lanes; i++ {
		if seeds[i] == seeds[0] {
			gs[i] = gs[0]
		} else {
			gs[i] = generator(seeds[i])
		}
	}
	return gs
}

// Simplex1D samples a line through the 2D field along X.
type Simplex1D struct{}

// Noise4 evaluates 4 samples.
func (Simplex1D) Noise4(positions wide.F32x4x3, hash xxhash.Hash4, frequency int) wide.F32x4 {
	f := float32(frequency)
	gs := lanes(hash.Value())
	var result wide.F32x4
	for i := range result {
		result[i] = gs[i].Eval2(positions.X[i]*f, 0)
	}
	return result
}

// Simplex2D samples the XZ plane.
type Simplex2D struct{}

// Noise4 evaluates 4 samples.
func (Simplex2D) Noise4(positions wide.F32x4x3, hash xxhash.Hash4, frequency int) wide.F32x4 {
	f := float32(frequency)
	gs := lanes(hash.Value())
	var result wide.F32x4
	for i := range result {
		result[i] = gs[i].Eval2(positions.X[i]*f, positions.Z[i]*f)
	}
	return result
}

// Simplex3D samples the full volume.
type Simplex3D struct{}

// Noise4 evaluates 4 samples.
func (Simplex3D) Noise4(positions wide.F32x4x3, hash xxhash.Hash4, frequency int) wide.F32x4 {
	f := float32(frequency)
	gs := lanes(hash.Value())
	var result wide.F32x4
	for i := range result {
		result[i] = gs[i].Eval3(positions.X[i]*f, positions.Y[i]*f, positions.Z[i]*f)
	}
	return result
}
