package wide

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/gogpu/noise/space"
	"github.com/soypat/glgl/math/ms3"
)

func TestVec3_LoadStore(t *testing.T) {
	src := []ms3.Vec{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}, {X: 7, Y: 8, Z: 9}, {X: -1, Y: -2, Z: -3}}
	p := LoadVec3(src)
	if want := (F32x4{1, 4, 7, -1}); p.X != want {
		t.Errorf("X = %v, want %v", p.X, want)
	}
	if got := p.Lane(2); got != src[2] {
		t.Errorf("Lane(2) = %v, want %v", got, src[2])
	}
	dst := make([]ms3.Vec, 4)
	p.Store(dst)
	for i := range src {
		if dst[i] != src[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], src[i])
		}
	}
}

func TestVec3_Normalize(t *testing.T) {
	p := F32x4x3{
		X: F32x4{3, 0, 1, -2},
		Y: F32x4{4, 0, 1, 0},
		Z: F32x4{0, 5, 1, 0},
	}
	if got, want := p.LengthSq(), (F32x4{25, 25, 3, 4}); got != want {
		t.Errorf("LengthSq = %v, want %v", got, want)
	}
	n := p.Normalize().LengthSq()
	for i, v := range n {
		if math32.Abs(v-1) > 1e-6 {
			t.Errorf("lane %d normalized length² = %v", i, v)
		}
	}
}

func TestVec3_Transform(t *testing.T) {
	m := space.Translate(ms3.Vec{X: 1, Y: 2, Z: 3}).Multiply(space.Scale(ms3.Vec{X: 2, Y: 2, Z: 2}))
	src := []ms3.Vec{{X: 1}, {Y: 1}, {Z: 1}, {X: 1, Y: 1, Z: 1}}
	p := LoadVec3(src)

	points := TransformPoints(m, p)
	vectors := TransformVectors(m, p)
	for i := range src {
		if got, want := points.Lane(i), m.TransformPoint(src[i]); got != want {
			t.Errorf("TransformPoints lane %d = %v, want %v", i, got, want)
		}
		if got, want := vectors.Lane(i), m.TransformVector(src[i]); got != want {
			t.Errorf("TransformVectors lane %d = %v, want %v", i, got, want)
		}
	}
}

func BenchmarkTransformPoints(b *testing.B) {
	m := space.TRS{
		Translation: ms3.Vec{X: 1},
		Rotation:    ms3.Vec{X: 15, Y: 30, Z: 45},
		Scale:       ms3.Vec{X: 2, Y: 2, Z: 2},
	}.Matrix()
	p := LoadVec3([]ms3.Vec{{X: 1}, {Y: 1}, {Z: 1}, {X: 1, Y: 1, Z: 1}})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = TransformPoints(m, p)
	}
}
