// Package shape generates parametric surface points on a square UV grid.
//
// A grid of resolution r has r*r points. Point index i maps to the UV pair
// at column i mod r and row i / r, sampled at cell centres. Points are
// produced 4 at a time; batch i covers indices [4i, 4i+4).
//
// Every shape is unit-scale and centred on the origin. Job applies the
// caller's transform afterwards.
package shape

import (
	"github.com/chewxy/math32"
	"github.com/gogpu/noise/internal/wide"
)

// Point4 holds positions and normals for 4 grid points.
type Point4 struct {
	Positions wide.F32x4x3
	Normals   wide.F32x4x3
}

// Shape computes the model-space points of batch i.
type Shape interface {
	Point4(i, resolution int, invResolution float32) Point4
}

// IndexToUV4 returns the UV coordinates of the 4 indices in batch i.
// Rows and columns are split in integer arithmetic, so every index lands
// in its own cell at any resolution.
func IndexToUV4(i, resolution int, invResolution float32) (u, v wide.F32x4) {
	var col, row wide.F32x4
	for k := range wide.Lanes {
		idx := wide.Lanes*i + k
		r := idx / resolution
		row[k] = float32(r)
		col[k] = float32(idx - r*resolution)
	}
	u = col.AddScalar(0.5).MulScalar(invResolution)
	v = row.AddScalar(0.5).MulScalar(invResolution)
	return u, v
}

// Plane is the unit square in the XZ plane facing up.
type Plane struct{}

// Point4 implements Shape.
func (Plane) Point4(i, resolution int, invResolution float32) Point4 {
	u, v := IndexToUV4(i, resolution, invResolution)
	var p Point4
	p.Positions.X = u.SubScalar(0.5)
	p.Positions.Z = v.SubScalar(0.5)
	p.Normals.Y = wide.SplatF32x4(1)
	return p
}

// UVSphere is a sphere of radius 0.5 with latitude rows and longitude
// columns. Rows bunch up near the poles.
type UVSphere struct{}

// Point4 implements Shape.
func (UVSphere) Point4(i, resolution int, invResolution float32) Point4 {
	const r = 0.5
	u, v := IndexToUV4(i, resolution, invResolution)
	theta := u.MulScalar(2 * math32.Pi)
	phi := v.MulScalar(math32.Pi)

	s := phi.Sin().MulScalar(r)
	var p Point4
	p.Positions.X = s.Mul(theta.Sin())
	p.Positions.Y = phi.Cos().MulScalar(-r)
	p.Positions.Z = s.Mul(theta.Cos())
	p.Normals = p.Positions
	return p
}

// OctaSphere folds the UV square onto an octahedron and inflates it to a
// sphere of radius 0.5. Samples spread far more evenly than on UVSphere.
type OctaSphere struct{}

// Point4 implements Shape.
func (OctaSphere) Point4(i, resolution int, invResolution float32) Point4 {
	u, v := IndexToUV4(i, resolution, invResolution)
	var p Point4
	x := u.SubScalar(0.5)
	z := v.SubScalar(0.5)
	y := wide.SplatF32x4(0.5).Sub(x.Abs()).Sub(z.Abs())

	// The lower half of the octahedron lies outside the diamond; fold each
	// corner triangle back across its edge.
	offset := y.Neg().MaxScalar(0)
	x = x.Add(wide.SelectF32(x.LessScalar(0), offset, offset.Neg()))
	z = z.Add(wide.SelectF32(z.LessScalar(0), offset, offset.Neg()))

	p.Positions = wide.F32x4x3{X: x, Y: y, Z: z}
	scale := wide.SplatF32x4(0.5).Div(p.Positions.LengthSq().Sqrt())
	p.Positions = p.Positions.MulScalar(scale)
	p.Normals = p.Positions
	return p
}

// Torus has major radius 0.375 and minor radius 0.125 around the Y axis.
// U runs around the ring, V around the tube.
type Torus struct{}

// Point4 implements Shape.
func (Torus) Point4(i, resolution int, invResolution float32) Point4 {
	const (
		r1 = 0.375
		r2 = 0.125
	)
	u, v := IndexToUV4(i, resolution, invResolution)
	ring := u.MulScalar(2 * math32.Pi)
	tube := v.MulScalar(2 * math32.Pi)
	ringSin, ringCos := ring.Sin(), ring.Cos()

	s := tube.Cos().MulScalar(r2).AddScalar(r1)
	var p Point4
	p.Positions.X = s.Mul(ringSin)
	p.Positions.Y = tube.Sin().MulScalar(r2)
	p.Positions.Z = s.Mul(ringCos)

	p.Normals = p.Positions
	p.Normals.X = p.Normals.X.Sub(ringSin.MulScalar(r1))
	p.Normals.Z = p.Normals.Z.Sub(ringCos.MulScalar(r1))
	return p
}
