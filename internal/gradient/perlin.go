package gradient

import (
	"github.com/gogpu/noise/internal/wide"
	"github.com/gogpu/noise/internal/xxhash"
)

// Maximum interpolated magnitudes of the 2D and 3D gradient constructions,
// found numerically. Perlin divides by them to keep the field close to
// [-1, 1]. They are variables so output can be matched against other
// implementations that chose different bounds.
var (
	// Perlin2DMax is the maximum of x·s(1−x) + 0.5·s(x) on [0, 1], where s is
	// the quintic smoothing function.
	Perlin2DMax float32 = 0.53528

	// Perlin3DMax is the maximum of x·s(1−x) + Perlin2DMax·s(x) on [0, 1].
	Perlin3DMax float32 = 0.56290
)

// sign8 is the hash bit that selects the 1D gradient direction.
const sign8 = 1 << 8

// Perlin is the classic gradient noise function with gradient vectors
// derived from the corner hash.
type Perlin struct{}

// Evaluate1 returns (1 + A)·±x. The minimum slope of 1 keeps every span
// visibly varying while A still adds variation on top.
func (Perlin) Evaluate1(h xxhash.Hash4, x wide.F32x4) wide.F32x4 {
	v := h.Value()
	a := h.Floats01A()
	var result wide.F32x4
	for i := range result {
		g := x[i]
		if v[i]&sign8 != 0 {
			g = -g
		}
		result[i] = (1 + a[i]) * g
	}
	return result
}

// Evaluate2 picks a gradient on the boundary of a diamond: gx covers
// [-1, 1], gy = 0.5 − |gx|, then gx is folded back into [-0.5, 0.5].
func (Perlin) Evaluate2(h xxhash.Hash4, x, y wide.F32x4) wide.F32x4 {
	gx := h.Floats01A().MulScalar(2).SubScalar(1)
	gy := wide.SplatF32x4(0.5).Sub(gx.Abs())
	gx = gx.Sub(gx.AddScalar(0.5).Floor())
	return gx.Mul(x).Add(gy.Mul(y)).MulScalar(2 / Perlin2DMax)
}

// Evaluate3 picks a gradient on an octahedron: gx and gy come from two
// channels, gz = 1 − |gx| − |gy|, and the part of the square outside the
// diamond is folded back by quadrant.
func (Perlin) Evaluate3(h xxhash.Hash4, x, y, z wide.F32x4) wide.F32x4 {
	gx := h.Floats01A().MulScalar(2).SubScalar(1)
	gy := h.Floats01D().MulScalar(2).SubScalar(1)
	gz := wide.SplatF32x4(1).Sub(gx.Abs()).Sub(gy.Abs())
	offset := gz.Neg().MaxScalar(0)
	gx = gx.Add(wide.SelectF32(gx.LessScalar(0), offset, offset.Neg()))
	gy = gy.Add(wide.SelectF32(gy.LessScalar(0), offset, offset.Neg()))
	return gx.Mul(x).Add(gy.Mul(y)).Add(gz.Mul(z)).MulScalar(1 / Perlin3DMax)
}

func (Perlin) AfterInterpolation(value wide.F32x4) wide.F32x4 { return value }
