package shape

import (
	"github.com/gogpu/noise/internal/wide"
	"github.com/gogpu/noise/space"
	"github.com/soypat/glgl/math/ms3"
)

// Job writes transformed points of Shape into Positions and Normals.
// Both slices hold 4 entries per batch.
type Job struct {
	Shape      Shape
	Resolution int

	// Transform places positions; NormalTransform is its inverse
	// transpose.
	Transform       space.Matrix
	NormalTransform space.Matrix

	Positions []ms3.Vec
	Normals   []ms3.Vec
}

// NewJob returns a job for shape s on a resolution x resolution grid
// placed by trs.
func NewJob(s Shape, resolution int, trs space.TRS, positions, normals []ms3.Vec) *Job {
	m := trs.Matrix()
	return &Job{
		Shape:           s,
		Resolution:      resolution,
		Transform:       m,
		NormalTransform: m.NormalMatrix(),
		Positions:       positions,
		Normals:         normals,
	}
}

// Batches returns the number of 4-point batches for a grid of the given
// resolution.
func Batches(resolution int) int {
	return (resolution*resolution + wide.Lanes - 1) / wide.Lanes
}

// Execute computes batch i.
func (j *Job) Execute(i int) {
	p := j.Shape.Point4(i, j.Resolution, 1/float32(j.Resolution))
	base := i * wide.Lanes
	wide.TransformPoints(j.Transform, p.Positions).Store(j.Positions[base:])
	wide.TransformVectors(j.NormalTransform, p.Normals).Normalize().Store(j.Normals[base:])
}

// ExecuteRange computes batches [start, end).
func (j *Job) ExecuteRange(start, end int) {
	for i := start; i < end; i++ {
		j.Execute(i)
	}
}
