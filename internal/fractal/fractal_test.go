package fractal

import (
	"testing"

	"github.com/gogpu/noise/internal/gradient"
	"github.com/gogpu/noise/internal/lattice"
	"github.com/gogpu/noise/internal/voronoi"
	"github.com/gogpu/noise/internal/wide"
	"github.com/gogpu/noise/internal/xxhash"
	"github.com/gogpu/noise/space"
	"github.com/soypat/glgl/math/ms3"
)

// recorder returns a constant per octave and records its inputs.
type recorder struct {
	frequencies *[]int
	hashes      *[]uint32
	values      []float32
}

func (r recorder) Noise4(_ wide.F32x4x3, hash xxhash.Hash4, frequency int) wide.F32x4 {
	o := len(*r.frequencies)
	*r.frequencies = append(*r.frequencies, frequency)
	*r.hashes = append(*r.hashes, hash.Value()[0])
	return wide.SplatF32x4(r.values[o])
}

func newRecorder(values ...float32) recorder {
	return recorder{frequencies: new([]int), hashes: new([]uint32), values: values}
}

// =============================================================================
// Compose4 Tests
// =============================================================================

func TestCompose4_Octaves(t *testing.T) {
	r := newRecorder(1, -1, 0.5)
	p := Params{Seed: 7, Frequency: 3, Octaves: 3, Lacunarity: 2, Persistence: 0.5}
	got := Compose4(r, wide.F32x4x3{}, p)

	wantFreq := []int{3, 6, 12}
	for i, f := range *r.frequencies {
		if f != wantFreq[i] {
			t.Errorf("octave %d frequency = %d, want %d", i, f, wantFreq[i])
		}
	}

	seed := xxhash.Seed4(7)
	for o, h := range *r.hashes {
		if want := seed.Add(o).Value()[0]; h != want {
			t.Errorf("octave %d hash = %d, want %d", o, h, want)
		}
	}

	// (1 - 0.5 + 0.125) / 1.75
	want := float32(1*1+(-1)*0.5+0.5*0.25) / 1.75
	if got != wide.SplatF32x4(want) {
		t.Errorf("Compose4 = %v, want %v", got, want)
	}
}

func TestCompose4_SingleOctaveIsIdentity(t *testing.T) {
	n := lattice.Lattice3D[lattice.Normal, gradient.Perlin]{}
	pos := wide.F32x4x3{
		X: wide.F32x4{0.1, 0.2, 0.3, 0.4},
		Y: wide.F32x4{-1, 0, 1, 2},
		Z: wide.F32x4{0.7, 0.5, 0.3, 0.1},
	}
	for _, persistence := range []float32{0, 0.5, 1} {
		p := Params{Seed: 3, Frequency: 4, Octaves: 1, Lacunarity: 2, Persistence: persistence}
		got := Compose4(n, pos, p)
		if want := n.Noise4(pos, xxhash.Seed4(3), 4); got != want {
			t.Errorf("persistence %v: Compose4 = %v, want %v", persistence, got, want)
		}
	}
}

func TestCompose4_ZeroPersistence(t *testing.T) {
	r := newRecorder(0.25, 100, 100)
	p := Params{Frequency: 1, Octaves: 3, Lacunarity: 2, Persistence: 0}
	if got := Compose4(r, wide.F32x4x3{}, p); got != wide.SplatF32x4(0.25) {
		t.Errorf("Compose4 = %v, want 0.25", got)
	}
}

func TestCompose4_TurbulenceNonNegative(t *testing.T) {
	engines := []Noise{
		lattice.Lattice3D[lattice.Normal, gradient.Turbulence[gradient.Perlin]]{},
		lattice.Lattice2D[lattice.Tiling, gradient.Turbulence[gradient.Value]]{},
	}
	for _, n := range engines {
		p := Params{Seed: 1, Frequency: 2, Octaves: 6, Lacunarity: 3, Persistence: 0.7}
		for i := 0; i < 200; i++ {
			f := float32(i) * 0.0377
			pos := wide.F32x4x3{X: wide.SplatF32x4(f), Y: wide.SplatF32x4(-f), Z: wide.SplatF32x4(f * 0.3)}
			for _, v := range Compose4(n, pos, p) {
				if v < 0 {
					t.Fatalf("%T sample %d = %v, want >= 0", n, i, v)
				}
			}
		}
	}
}

// =============================================================================
// Job Tests
// =============================================================================

func TestJob_Execute(t *testing.T) {
	positions := []ms3.Vec{
		{X: 0.1}, {X: 0.2}, {X: 0.3}, {X: 0.4},
		{Z: 0.5}, {Z: 0.6}, {Z: 0.7}, {Z: 0.8},
	}
	n := voronoi.Voronoi3D[lattice.Normal, voronoi.Worley, voronoi.F1]{}
	domain := space.TRS{
		Translation: ms3.Vec{X: 1, Y: 2, Z: 3},
		Rotation:    ms3.Vec{Y: 30},
		Scale:       ms3.Vec{X: 2, Y: 2, Z: 2},
	}.Matrix()
	p := Params{Seed: 11, Frequency: 2, Octaves: 2, Lacunarity: 2, Persistence: 0.5}

	j := &Job{Noise: n, Params: p, Domain: domain, Positions: positions, Out: make([]float32, 8)}
	j.ExecuteRange(0, 2)

	for b := 0; b < 2; b++ {
		pos := wide.TransformPoints(domain, wide.LoadVec3(positions[b*4:]))
		want := Compose4(n, pos, p)
		for i := 0; i < wide.Lanes; i++ {
			if got := j.Out[b*4+i]; got != want[i] {
				t.Errorf("out[%d] = %v, want %v", b*4+i, got, want[i])
			}
		}
	}
}

func TestJob_Deterministic(t *testing.T) {
	positions := make([]ms3.Vec, 64)
	for i := range positions {
		positions[i] = ms3.Vec{X: float32(i) * 0.03, Y: 0.5, Z: -float32(i) * 0.02}
	}
	run := func() []float32 {
		j := &Job{
			Noise:     lattice.Lattice3D[lattice.Tiling, gradient.Perlin]{},
			Params:    Params{Seed: -4, Frequency: 3, Octaves: 4, Lacunarity: 2, Persistence: 0.5},
			Domain:    space.Identity(),
			Positions: positions,
			Out:       make([]float32, len(positions)),
		}
		// Reverse order must not matter.
		for i := len(positions)/wide.Lanes - 1; i >= 0; i-- {
			j.Execute(i)
		}
		return j.Out
	}
	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("out[%d]: %v != %v", i, a[i], b[i])
		}
	}
}

func BenchmarkCompose4_Perlin3D(b *testing.B) {
	n := lattice.Lattice3D[lattice.Normal, gradient.Perlin]{}
	p := Params{Seed: 1, Frequency: 4, Octaves: 4, Lacunarity: 2, Persistence: 0.5}
	pos := wide.F32x4x3{X: wide.SplatF32x4(0.3), Y: wide.SplatF32x4(0.6), Z: wide.SplatF32x4(0.9)}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Compose4(n, pos, p)
	}
}
