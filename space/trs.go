package space

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// TRS is a translation, rotation and scale triple.
// Rotation holds Euler angles in degrees, applied around Z first, then X,
// then Y.
type TRS struct {
	Translation ms3.Vec `json:"translation"`
	Rotation    ms3.Vec `json:"rotation"`
	Scale       ms3.Vec `json:"scale"`
}

// DefaultTRS returns the identity transform with unit scale.
func DefaultTRS() TRS {
	return TRS{Scale: ms3.Vec{X: 1, Y: 1, Z: 1}}
}

// UniformTRS returns a transform that only scales by s on every axis.
func UniformTRS(s float32) TRS {
	return TRS{Scale: ms3.Vec{X: s, Y: s, Z: s}}
}

// Matrix returns the affine matrix T * Ry * Rx * Rz * S.
func (t TRS) Matrix() Matrix {
	const toRadians = math32.Pi / 180
	r := RotateY(t.Rotation.Y * toRadians).
		Multiply(RotateX(t.Rotation.X * toRadians)).
		Multiply(RotateZ(t.Rotation.Z * toRadians))
	return Translate(t.Translation).Multiply(r).Multiply(Scale(t.Scale))
}
