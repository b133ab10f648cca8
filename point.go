package noise

import (
	"fmt"

	"github.com/soypat/glgl/math/ms3"
)

// Point is a surface sample.
type Point struct {
	Position ms3.Vec
	Normal   ms3.Vec
}

// Displaced returns the position moved along the normal by amount*value.
func (p Point) Displaced(value, amount float32) ms3.Vec {
	return ms3.Add(p.Position, ms3.Scale(amount*value, p.Normal))
}

// PointAt returns element i of a shape's position and normal buffers.
func PointAt(positions, normals []ms3.Vec, i int) Point {
	return Point{Position: positions[i], Normal: normals[i]}
}

// Displace writes every position moved along its normal by amount times
// its noise value into dst. dst may alias positions.
func Displace(positions, normals []ms3.Vec, values []float32, amount float32, dst []ms3.Vec) error {
	n := len(positions)
	if len(normals) < n || len(values) < n || len(dst) < n {
		return fmt.Errorf("%w: displace %d points with %d normals, %d values into %d",
			ErrBufferSize, n, len(normals), len(values), len(dst))
	}
	for i := range positions {
		dst[i] = PointAt(positions, normals, i).Displaced(values[i], amount)
	}
	return nil
}
