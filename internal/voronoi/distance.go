package voronoi

import "github.com/gogpu/noise/internal/wide"

// Distance is a metric between a sample and a feature point, given the
// per-axis offsets between them.
type Distance interface {
	Distance1(x wide.F32x4) wide.F32x4
	Distance2(x, y wide.F32x4) wide.F32x4
	Distance3(x, y, z wide.F32x4) wide.F32x4

	Finalize1(m Minima) Minima
	Finalize2(m Minima) Minima
	Finalize3(m Minima) Minima
}

// Worley is the Euclidean metric. In 2D and 3D it tracks squared distances
// and takes the square root once in Finalize; squaring is monotonic so the
// minima are the same.
type Worley struct{}

func (Worley) Distance1(x wide.F32x4) wide.F32x4 { return x.Abs() }

func (Worley) Distance2(x, y wide.F32x4) wide.F32x4 {
	return x.Mul(x).Add(y.Mul(y))
}

func (Worley) Distance3(x, y, z wide.F32x4) wide.F32x4 {
	return x.Mul(x).Add(y.Mul(y)).Add(z.Mul(z))
}

func (Worley) Finalize1(m Minima) Minima { return m }

// Finalize2 clamps to 1 before the square root: with at most two points per
// cell the true nearest distance can occasionally exceed a cell.
func (Worley) Finalize2(m Minima) Minima {
	return Minima{
		Nearest: m.Nearest.MinScalar(1).Sqrt(),
		Second:  m.Second.MinScalar(1).Sqrt(),
	}
}

func (w Worley) Finalize3(m Minima) Minima { return w.Finalize2(m) }

// Chebyshev is the chessboard metric: the largest per-axis offset.
type Chebyshev struct{}

func (Chebyshev) Distance1(x wide.F32x4) wide.F32x4 { return x.Abs() }

func (Chebyshev) Distance2(x, y wide.F32x4) wide.F32x4 {
	return x.Abs().Max(y.Abs())
}

func (Chebyshev) Distance3(x, y, z wide.F32x4) wide.F32x4 {
	return x.Abs().Max(y.Abs()).Max(z.Abs())
}

func (Chebyshev) Finalize1(m Minima) Minima { return m }
func (Chebyshev) Finalize2(m Minima) Minima { return m }
func (Chebyshev) Finalize3(m Minima) Minima { return m }
