package voronoi

import "github.com/gogpu/noise/internal/wide"

// Function maps the finalized minima to the noise value.
type Function interface {
	Evaluate(m Minima) wide.F32x4
}

// F1 is the distance to the nearest feature point.
type F1 struct{}

func (F1) Evaluate(m Minima) wide.F32x4 { return m.Nearest }

// F2 is the distance to the second nearest feature point.
type F2 struct{}

func (F2) Evaluate(m Minima) wide.F32x4 { return m.Second }

// F2MinusF1 is zero on cell borders and grows toward feature points,
// which draws crack patterns.
type F2MinusF1 struct{}

func (F2MinusF1) Evaluate(m Minima) wide.F32x4 { return m.Second.Sub(m.Nearest) }
