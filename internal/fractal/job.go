package fractal

import (
	"github.com/gogpu/noise/internal/wide"
	"github.com/gogpu/noise/space"
	"github.com/soypat/glgl/math/ms3"
)

// Job evaluates fractal noise for lane batches of Positions into Out.
// Batch i covers elements [4i, 4i+4) of both slices.
type Job struct {
	Noise     Noise
	Params    Params
	Domain    space.Matrix
	Positions []ms3.Vec
	Out       []float32
}

// Execute evaluates batch i.
func (j *Job) Execute(i int) {
	base := i * wide.Lanes
	p := wide.TransformPoints(j.Domain, wide.LoadVec3(j.Positions[base:base+wide.Lanes]))
	v := Compose4(j.Noise, p, j.Params)
	copy(j.Out[base:base+wide.Lanes], v[:])
}

// ExecuteRange evaluates batches [start, end).
func (j *Job) ExecuteRange(start, end int) {
	for i := start; i < end; i++ {
		j.Execute(i)
	}
}
