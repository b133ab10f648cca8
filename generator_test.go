package noise

import (
	"errors"
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/gogpu/noise/internal/xxhash"
	"github.com/gogpu/noise/space"
	"github.com/soypat/glgl/math/ms3"
)

func newTestGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()
	g := NewGenerator(opts...)
	t.Cleanup(g.Close)
	return g
}

// grid returns n positions spread over a few cells of the unit cube.
func grid(n int) []ms3.Vec {
	positions := make([]ms3.Vec, n)
	for i := range positions {
		f := float32(i)
		positions[i] = ms3.Vec{X: f*0.0371 - 1, Y: f*0.0193 + 0.25, Z: 2 - f*0.0447}
	}
	return positions
}

func signedChannelA(h xxhash.SmallXXHash) float32 {
	return float32(h.Value()&255)*(1.0/255.0)*2 - 1
}

// =============================================================================
// Scenario Tests
// =============================================================================

func TestScheduleNoise_ValueScenario(t *testing.T) {
	g := newTestGenerator(t)
	req := NoiseRequest{
		Type:       TypeValue,
		Dimensions: 1,
		Settings:   Settings{Seed: 0, Frequency: 1, Octaves: 1, Lacunarity: 2, Persistence: 0.5},
		Domain:     space.DefaultTRS(),
	}
	positions := []ms3.Vec{{X: 0}, {X: 0.5}, {X: 0, Y: 3, Z: -7}, {X: 1}}
	out := make([]float32, 4)
	if err := g.RecomputeNoise(positions, out, req); err != nil {
		t.Fatalf("RecomputeNoise() = %v", err)
	}

	seed := xxhash.Seed(0)
	cell0 := signedChannelA(seed.Eat(0))
	cell1 := signedChannelA(seed.Eat(1))

	tests := []struct {
		name string
		got  float32
		want float32
	}{
		{"x=0 is cell 0", out[0], cell0},
		{"x=0.5 is the mean", out[1], (cell0 + cell1) / 2},
		{"1D ignores y and z", out[2], cell0},
		{"x=1 is cell 1", out[3], cell1},
	}
	for _, tt := range tests {
		if math32.Abs(tt.got-tt.want) > 1e-6 {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestScheduleNoise_Deterministic(t *testing.T) {
	positions := grid(4 * 97)
	serial := newTestGenerator(t, WithWorkers(1), WithTileSize(1))
	many := newTestGenerator(t, WithWorkers(8), WithTileSize(7))

	for _, typ := range Types() {
		req := DefaultNoiseRequest()
		req.Type = typ
		req.Settings = Settings{Seed: 12, Frequency: 2, Octaves: 3, Lacunarity: 2, Persistence: 0.5}
		req.Domain = space.TRS{Rotation: ms3.Vec{X: 10, Y: 20, Z: 30}, Scale: ms3.Vec{X: 2, Y: 2, Z: 2}}

		a := make([]float32, len(positions))
		b := make([]float32, len(positions))
		if err := serial.RecomputeNoise(positions, a, req); err != nil {
			t.Fatalf("%v: %v", typ, err)
		}
		if err := many.RecomputeNoise(positions, b, req); err != nil {
			t.Fatalf("%v: %v", typ, err)
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("%v sample %d: %v != %v", typ, i, a[i], b[i])
			}
		}
	}
}

func TestScheduleNoise_TilingPeriodicity(t *testing.T) {
	g := newTestGenerator(t)
	var base, shifted []ms3.Vec
	for i := 0; i < 32; i++ {
		p := ms3.Vec{X: float32(i%8) / 8, Y: float32(i%4)/4 - 0.5, Z: float32(i) / 32}
		base = append(base, p)
		shifted = append(shifted, ms3.Add(p, ms3.Vec{X: 1, Y: -1, Z: 2}))
	}
	for _, typ := range Types() {
		if typ == TypeSimplex {
			continue
		}
		for _, freq := range []int{2, 3, 4} {
			req := NoiseRequest{
				Type:       typ,
				Dimensions: 3,
				Tiling:     true,
				Settings:   Settings{Seed: 5, Frequency: freq, Octaves: 2, Lacunarity: 2, Persistence: 0.5},
				Domain:     space.DefaultTRS(),
			}
			a := make([]float32, len(base))
			b := make([]float32, len(base))
			if err := g.RecomputeNoise(base, a, req); err != nil {
				t.Fatal(err)
			}
			if err := g.RecomputeNoise(shifted, b, req); err != nil {
				t.Fatal(err)
			}
			for i := range a {
				if a[i] != b[i] {
					t.Fatalf("%v freq %d sample %d: %v != %v", typ, freq, i, a[i], b[i])
				}
			}
		}
	}
}

func TestScheduleNoise_Ranges(t *testing.T) {
	g := newTestGenerator(t)
	positions := grid(4 * 64)
	out := make([]float32, len(positions))
	for _, typ := range Types() {
		req := DefaultNoiseRequest()
		req.Type = typ
		req.Settings.Octaves = 4
		if err := g.RecomputeNoise(positions, out, req); err != nil {
			t.Fatal(err)
		}
		lo, hi := float32(-1.05), float32(1.05)
		switch {
		case typ.IsVoronoi():
			lo, hi = 0, 2
		case typ == TypePerlinTurbulence || typ == TypeValueTurbulence:
			lo = 0
		}
		for i, v := range out {
			if v < lo || v > hi || math32.IsNaN(v) {
				t.Fatalf("%v sample %d = %v, want within [%v, %v]", typ, i, v, lo, hi)
			}
		}
	}
}

// =============================================================================
// Shape and Hash Tests
// =============================================================================

func TestScheduleShape_Radius(t *testing.T) {
	g := newTestGenerator(t)
	res := 13
	positions := make([]ms3.Vec, ShapeSamples(res))
	normals := make([]ms3.Vec, ShapeSamples(res))
	for _, s := range []Shape{ShapeSphere, ShapeOctaSphere} {
		if err := g.RecomputeShape(s, res, space.DefaultTRS(), positions, normals); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < res*res; i++ {
			if r := ms3.Norm(positions[i]); math32.Abs(r-0.5) > 1e-5 {
				t.Fatalf("%v point %d radius %v", s, i, r)
			}
		}
	}
}

func TestScheduleShape_ThenNoise(t *testing.T) {
	g := newTestGenerator(t, WithTileSize(3))
	res := 20
	trs := space.TRS{Translation: ms3.Vec{Y: 1}, Rotation: ms3.Vec{Z: 30}, Scale: ms3.Vec{X: 1, Y: 2, Z: 1}}
	positions := make([]ms3.Vec, ShapeSamples(res))
	normals := make([]ms3.Vec, ShapeSamples(res))
	values := make([]float32, ShapeSamples(res))
	req := DefaultNoiseRequest()
	req.Type = TypeVoronoiWorleyF1

	shape, err := g.ScheduleShape(ShapeTorus, res, trs, positions, normals, nil)
	if err != nil {
		t.Fatal(err)
	}
	run, err := g.ScheduleNoise(positions, values, req, shape)
	if err != nil {
		t.Fatal(err)
	}
	select {
	case <-run.Done():
	case <-time.After(10 * time.Second):
		t.Fatal("dependent run did not complete")
	}
	if !shape.IsComplete() {
		t.Error("shape run incomplete after dependent noise run")
	}

	wantPositions := make([]ms3.Vec, len(positions))
	wantNormals := make([]ms3.Vec, len(normals))
	wantValues := make([]float32, len(values))
	if err := g.RecomputeShape(ShapeTorus, res, trs, wantPositions, wantNormals); err != nil {
		t.Fatal(err)
	}
	if err := g.RecomputeNoise(wantPositions, wantValues, req); err != nil {
		t.Fatal(err)
	}
	for i := range values {
		if values[i] != wantValues[i] || positions[i] != wantPositions[i] {
			t.Fatalf("sample %d differs between chained and sequential runs", i)
		}
	}
}

func TestScheduleHashes(t *testing.T) {
	g := newTestGenerator(t, WithTileSize(2))
	for _, res := range []int{1, 5, 16} {
		out := make([]uint32, res*res)
		run, err := g.ScheduleHashes(-3, res, out, nil)
		if err != nil {
			t.Fatal(err)
		}
		run.Wait()
		h := xxhash.Seed(-3)
		for i, got := range out {
			u, v := i%res, i/res
			if want := h.Eat(u).Eat(v).Value(); got != want {
				t.Fatalf("res %d cell (%d,%d) = %d, want %d", res, u, v, got, want)
			}
		}
		if run.Samples() != res*res {
			t.Errorf("Samples() = %d, want %d", run.Samples(), res*res)
		}
	}
}

// =============================================================================
// Error Tests
// =============================================================================

func TestGenerator_Errors(t *testing.T) {
	g := newTestGenerator(t)
	positions := make([]ms3.Vec, 8)
	out := make([]float32, 8)
	req := DefaultNoiseRequest()
	trs := space.DefaultTRS()

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{"positions not lane multiple", func() error {
			_, err := g.ScheduleNoise(positions[:5], out, req, nil)
			return err
		}, ErrBufferSize},
		{"output too short", func() error {
			_, err := g.ScheduleNoise(positions, out[:4], req, nil)
			return err
		}, ErrBufferSize},
		{"bad settings", func() error {
			bad := req
			bad.Settings.Lacunarity = 9
			_, err := g.ScheduleNoise(positions, out, bad, nil)
			return err
		}, ErrInvalidLacunarity},
		{"simplex tiling", func() error {
			bad := req
			bad.Type, bad.Tiling = TypeSimplex, true
			_, err := g.ScheduleNoise(positions, out, bad, nil)
			return err
		}, ErrUnsupported},
		{"resolution zero", func() error {
			_, err := g.ScheduleShape(ShapePlane, 0, trs, positions, positions, nil)
			return err
		}, ErrInvalidResolution},
		{"resolution too large", func() error {
			_, err := g.ScheduleShape(ShapePlane, MaxResolution+1, trs, positions, positions, nil)
			return err
		}, ErrInvalidResolution},
		{"unknown shape", func() error {
			_, err := g.ScheduleShape(Shape(7), 2, trs, positions, positions, nil)
			return err
		}, ErrUnsupported},
		{"shape buffers too short", func() error {
			_, err := g.ScheduleShape(ShapePlane, 3, trs, positions, positions, nil)
			return err
		}, ErrBufferSize},
		{"hash buffer too short", func() error {
			_, err := g.ScheduleHashes(0, 3, make([]uint32, 8), nil)
			return err
		}, ErrBufferSize},
		{"hash resolution", func() error {
			_, err := g.ScheduleHashes(0, -1, nil, nil)
			return err
		}, ErrInvalidResolution},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGenerator_Closed(t *testing.T) {
	g := NewGenerator(WithWorkers(1))
	g.Close()
	g.Close()

	if _, err := g.ScheduleNoise(nil, nil, DefaultNoiseRequest(), nil); !errors.Is(err, ErrClosed) {
		t.Errorf("ScheduleNoise after Close = %v, want ErrClosed", err)
	}
	if err := g.RecomputeShape(ShapePlane, 1, space.DefaultTRS(), nil, nil); !errors.Is(err, ErrClosed) {
		t.Errorf("RecomputeShape after Close = %v, want ErrClosed", err)
	}
	if _, err := g.ScheduleHashes(0, 1, make([]uint32, 1), nil); !errors.Is(err, ErrClosed) {
		t.Errorf("ScheduleHashes after Close = %v, want ErrClosed", err)
	}
}

func TestGenerator_CloseFinishesDependentRuns(t *testing.T) {
	res := 64
	trs := space.UniformTRS(2)
	req := DefaultNoiseRequest()
	req.Type = TypeVoronoiWorleyF2

	wantPositions := make([]ms3.Vec, ShapeSamples(res))
	wantNormals := make([]ms3.Vec, ShapeSamples(res))
	want := make([]float32, ShapeSamples(res))
	ref := newTestGenerator(t)
	if err := ref.RecomputeShape(ShapeSphere, res, trs, wantPositions, wantNormals); err != nil {
		t.Fatal(err)
	}
	if err := ref.RecomputeNoise(wantPositions, want, req); err != nil {
		t.Fatal(err)
	}

	for attempt := 0; attempt < 3; attempt++ {
		g := NewGenerator(WithWorkers(2), WithTileSize(1))
		positions := make([]ms3.Vec, ShapeSamples(res))
		normals := make([]ms3.Vec, ShapeSamples(res))
		values := make([]float32, ShapeSamples(res))

		shapeRun, err := g.ScheduleShape(ShapeSphere, res, trs, positions, normals, nil)
		if err != nil {
			t.Fatal(err)
		}
		noiseRun, err := g.ScheduleNoise(positions, values, req, shapeRun)
		if err != nil {
			t.Fatal(err)
		}
		g.Close()

		if !noiseRun.IsComplete() {
			t.Fatal("dependent run incomplete after Close")
		}
		if err := noiseRun.Err(); err != nil {
			t.Fatalf("dependent run Err() = %v", err)
		}
		for i := range values {
			if values[i] != want[i] {
				t.Fatalf("attempt %d sample %d = %v, want %v", attempt, i, values[i], want[i])
			}
		}
	}
}

func TestRun_Nil(t *testing.T) {
	var r *Run
	r.Wait()
	if !r.IsComplete() || r.Samples() != 0 || r.String() != "run(nil)" || r.Err() != nil {
		t.Error("nil run should be complete and empty")
	}
	select {
	case <-r.Done():
	default:
		t.Error("nil run Done() should be closed")
	}
}

func TestLaneCount(t *testing.T) {
	tests := []struct{ n, lanes, padded int }{
		{-1, 0, 0}, {0, 0, 0}, {1, 1, 4}, {4, 1, 4}, {5, 2, 8}, {400, 100, 400},
	}
	for _, tt := range tests {
		if got := LaneCount(tt.n); got != tt.lanes {
			t.Errorf("LaneCount(%d) = %d, want %d", tt.n, got, tt.lanes)
		}
		if got := PaddedLen(tt.n); got != tt.padded {
			t.Errorf("PaddedLen(%d) = %d, want %d", tt.n, got, tt.padded)
		}
	}
	if got := ShapeSamples(5); got != 28 {
		t.Errorf("ShapeSamples(5) = %d, want 28", got)
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkRecomputeNoise_Perlin3D(b *testing.B) {
	g := NewGenerator()
	defer g.Close()
	positions := make([]ms3.Vec, ShapeSamples(128))
	normals := make([]ms3.Vec, len(positions))
	if err := g.RecomputeShape(ShapeOctaSphere, 128, space.DefaultTRS(), positions, normals); err != nil {
		b.Fatal(err)
	}
	out := make([]float32, len(positions))
	req := DefaultNoiseRequest()
	req.Settings.Octaves = 4

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := g.RecomputeNoise(positions, out, req); err != nil {
			b.Fatal(err)
		}
	}
}
