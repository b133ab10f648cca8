// Package noise provides deterministic procedural noise and parametric
// shape generation for Go.
//
// # Overview
//
// noise turns 3D sample positions into scalar noise values and square UV
// grids into surface points. Every evaluation is a pure function of its
// inputs: the same seed, settings and positions always produce bit-identical
// output, no matter how the work is split across goroutines.
//
// # Quick Start
//
//	import "github.com/gogpu/noise"
//
//	g := noise.NewGenerator()
//	defer g.Close()
//
//	// Place a sphere, then sample fractal Perlin noise on its surface.
//	res := 64
//	positions := make([]ms3.Vec, noise.ShapeSamples(res))
//	normals := make([]ms3.Vec, len(positions))
//	shape, _ := g.ScheduleShape(noise.ShapeSphere, res, space.DefaultTRS(), positions, normals, nil)
//
//	values := make([]float32, len(positions))
//	run, _ := g.ScheduleNoise(positions, values, noise.DefaultNoiseRequest(), shape)
//	run.Wait()
//
// # Noise Types
//
// Lattice noise interpolates per-cell gradients: Value, Perlin and their
// Turbulence variants, which fold the result to its absolute value. Voronoi
// noise measures distances to hash-placed feature points with the Worley
// (Euclidean) or Chebyshev metric and returns F1, F2 or F2-F1. Simplex
// noise is provided by OpenSimplex. Every lattice and Voronoi type is
// available in 1, 2 and 3 dimensions, plain or tiling.
//
// # Fractal Settings
//
// [Settings] controls octave summation. Each octave multiplies the frequency
// by Lacunarity and the amplitude by Persistence, and is seeded with a
// distinct hash so octaves do not align at the origin. The sum is divided
// by the total amplitude, keeping output near [-1, 1] (Voronoi: [0, 1]).
//
// # Tiling
//
// Tiling noise repeats with period 1 in domain space: for every frequency
// the lattice indices wrap so that noise(p) == noise(p + (1, 1, 1)).
//
// # Batches
//
// Samples are evaluated 4 at a time. Input and output buffers are padded
// to a multiple of 4 (see [LaneCount]); 4 adjacent elements form one lane
// batch. A run is split into tiles of batches and executed on a worker
// pool; the returned [Run] is a single completion barrier.
package noise
