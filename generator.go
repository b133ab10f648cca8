package noise

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/noise/internal/fractal"
	"github.com/gogpu/noise/internal/parallel"
	"github.com/gogpu/noise/internal/shape"
	"github.com/gogpu/noise/internal/wide"
	"github.com/gogpu/noise/internal/xxhash"
	"github.com/gogpu/noise/space"
	"github.com/soypat/glgl/math/ms3"
)

// NoiseRequest selects a noise function and its parameters.
type NoiseRequest struct {
	Type Type `json:"type"`

	// Dimensions is 1, 2 or 3. 1D noise varies along X, 2D noise over the
	// XZ plane.
	Dimensions int  `json:"dimensions"`
	Tiling     bool `json:"tiling"`

	Settings Settings `json:"settings"`

	// Domain transforms sample positions before evaluation.
	Domain space.TRS `json:"domain"`
}

// DefaultNoiseRequest returns 3D Perlin noise with default settings over a
// domain scaled by 8.
func DefaultNoiseRequest() NoiseRequest {
	return NoiseRequest{
		Type:       TypePerlin,
		Dimensions: 3,
		Settings:   DefaultSettings(),
		Domain:     space.UniformTRS(8),
	}
}

// Validate checks the settings and that an engine exists.
func (r NoiseRequest) Validate() error {
	if err := r.Settings.Validate(); err != nil {
		return err
	}
	if r.Dimensions < 1 || r.Dimensions > 3 {
		return fmt.Errorf("%w: got %d", ErrInvalidDimensions, r.Dimensions)
	}
	_, err := lookupEngine(r.Type, r.Dimensions, r.Tiling)
	return err
}

// Generator schedules noise, shape and hash evaluations on a worker pool.
//
// Thread safety: Generator is safe for concurrent use. Runs writing to the
// same buffers must be ordered through dependencies.
type Generator struct {
	pool       *parallel.WorkerPool
	dispatcher *parallel.Dispatcher
	log        *slog.Logger
}

// NewGenerator creates a Generator and starts its workers.
// Call Close to stop them.
func NewGenerator(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	pool := parallel.NewWorkerPool(o.workers)
	return &Generator{
		pool:       pool,
		dispatcher: parallel.NewDispatcher(pool, o.tileSize),
		log:        o.logger,
	}
}

// Close waits until every run scheduled before it has executed all of its
// tiles, including runs still waiting on a dependency, then stops the
// workers. Scheduling after Close returns ErrClosed.
func (g *Generator) Close() {
	g.dispatcher.Close()
}

// Workers returns the number of worker goroutines.
func (g *Generator) Workers() int {
	return g.pool.Workers()
}

func (g *Generator) logger() *slog.Logger {
	if g.log != nil {
		return g.log
	}
	return Logger()
}

func (g *Generator) checkOpen() error {
	if g.dispatcher.IsClosed() {
		return ErrClosed
	}
	return nil
}

// schedule hands fn to the dispatcher and wraps the handle.
func (g *Generator) schedule(kind string, samples int, fn func(start, end int), dep *Run) *Run {
	batches := LaneCount(samples)
	h := g.dispatcher.Schedule(batches, fn, dep.dependency())
	g.logger().Debug("noise: run scheduled",
		"kind", kind,
		"samples", samples,
		"batches", batches,
		"tiles", (batches+g.dispatcher.TileSize()-1)/g.dispatcher.TileSize(),
		"dependent", dep != nil)
	return &Run{handle: h, kind: kind, samples: samples}
}

// ScheduleNoise evaluates req at every position and writes the results to
// out, after dep completes. len(positions) must be a multiple of Lanes and
// out must be at least as long.
func (g *Generator) ScheduleNoise(positions []ms3.Vec, out []float32, req NoiseRequest, dep *Run) (*Run, error) {
	if err := g.checkOpen(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if len(positions)%Lanes != 0 {
		return nil, fmt.Errorf("%w: %d positions is not a multiple of %d", ErrBufferSize, len(positions), Lanes)
	}
	if len(out) < len(positions) {
		return nil, fmt.Errorf("%w: output holds %d values, need %d", ErrBufferSize, len(out), len(positions))
	}

	n, _ := lookupEngine(req.Type, req.Dimensions, req.Tiling)
	job := &fractal.Job{
		Noise:     n,
		Params:    req.Settings.params(),
		Domain:    req.Domain.Matrix(),
		Positions: positions,
		Out:       out,
	}
	return g.schedule("noise:"+req.Type.String(), len(positions), job.ExecuteRange, dep), nil
}

// ScheduleShape generates a resolution x resolution grid of s placed by trs
// into positions and normals, after dep completes. Both buffers must hold
// at least ShapeSamples(resolution) elements; the padding entries receive
// points past the end of the grid.
func (g *Generator) ScheduleShape(s Shape, resolution int, trs space.TRS, positions, normals []ms3.Vec, dep *Run) (*Run, error) {
	if err := g.checkOpen(); err != nil {
		return nil, err
	}
	sh, err := lookupShape(s)
	if err != nil {
		return nil, err
	}
	if resolution < 1 || resolution > MaxResolution {
		return nil, fmt.Errorf("%w: got %d, want [1, %d]", ErrInvalidResolution, resolution, MaxResolution)
	}
	samples := ShapeSamples(resolution)
	if len(positions) < samples || len(normals) < samples {
		return nil, fmt.Errorf("%w: shape needs %d points, got %d positions and %d normals",
			ErrBufferSize, samples, len(positions), len(normals))
	}

	job := shape.NewJob(sh, resolution, trs, positions, normals)
	if !job.Transform.IsInvertible() {
		g.logger().Warn("noise: shape transform is degenerate, normals are undefined",
			"shape", s, "scale", trs.Scale)
	}
	return g.schedule("shape:"+s.String(), samples, job.ExecuteRange, dep), nil
}

// ScheduleHashes fills out with the hash of every cell of a
// resolution x resolution grid, after dep completes: out[i] is the hash of
// seed, column i mod resolution and row i / resolution. out must hold at
// least resolution² values.
func (g *Generator) ScheduleHashes(seed, resolution int, out []uint32, dep *Run) (*Run, error) {
	if err := g.checkOpen(); err != nil {
		return nil, err
	}
	if resolution < 1 || resolution > MaxResolution {
		return nil, fmt.Errorf("%w: got %d, want [1, %d]", ErrInvalidResolution, resolution, MaxResolution)
	}
	count := resolution * resolution
	if len(out) < count {
		return nil, fmt.Errorf("%w: hash grid needs %d values, got %d", ErrBufferSize, count, len(out))
	}

	hash := xxhash.Seed(seed)
	fn := func(start, end int) {
		for i := start * wide.Lanes; i < end*wide.Lanes && i < count; i++ {
			v := i / resolution
			u := i - resolution*v
			out[i] = hash.Eat(u).Eat(v).Value()
		}
	}
	return g.schedule("hashes", count, fn, dep), nil
}

// RecomputeNoise schedules a noise run and waits for it.
func (g *Generator) RecomputeNoise(positions []ms3.Vec, out []float32, req NoiseRequest) error {
	start := time.Now()
	r, err := g.ScheduleNoise(positions, out, req, nil)
	if err != nil {
		return err
	}
	r.Wait()
	if err := r.Err(); err != nil {
		return err
	}
	g.logger().Debug("noise: run complete", "run", r, "elapsed", time.Since(start))
	return nil
}

// RecomputeShape schedules a shape run and waits for it.
func (g *Generator) RecomputeShape(s Shape, resolution int, trs space.TRS, positions, normals []ms3.Vec) error {
	start := time.Now()
	r, err := g.ScheduleShape(s, resolution, trs, positions, normals, nil)
	if err != nil {
		return err
	}
	r.Wait()
	if err := r.Err(); err != nil {
		return err
	}
	g.logger().Debug("noise: run complete", "run", r, "elapsed", time.Since(start))
	return nil
}
