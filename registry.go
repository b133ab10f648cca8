package noise

import (
	"fmt"

	"github.com/gogpu/noise/internal/fractal"
	"github.com/gogpu/noise/internal/gradient"
	"github.com/gogpu/noise/internal/lattice"
	"github.com/gogpu/noise/internal/shape"
	"github.com/gogpu/noise/internal/simplex"
	"github.com/gogpu/noise/internal/voronoi"
)

// engineKey identifies one monomorphized engine.
type engineKey struct {
	typ        Type
	dimensions int
	tiling     bool
}

// engines is filled once in init and read-only afterwards.
var engines = make(map[engineKey]fractal.Noise)

var shapes = [shapeCount]shape.Shape{
	ShapePlane:      shape.Plane{},
	ShapeSphere:     shape.UVSphere{},
	ShapeOctaSphere: shape.OctaSphere{},
	ShapeTorus:      shape.Torus{},
}

func init() {
	registerLattice[gradient.Perlin](TypePerlin)
	registerLattice[gradient.Turbulence[gradient.Perlin]](TypePerlinTurbulence)
	registerLattice[gradient.Value](TypeValue)
	registerLattice[gradient.Turbulence[gradient.Value]](TypeValueTurbulence)

	registerVoronoi[voronoi.Worley, voronoi.F1](TypeVoronoiWorleyF1)
	registerVoronoi[voronoi.Worley, voronoi.F2](TypeVoronoiWorleyF2)
	registerVoronoi[voronoi.Worley, voronoi.F2MinusF1](TypeVoronoiWorleyF2MinusF1)
	registerVoronoi[voronoi.Chebyshev, voronoi.F1](TypeVoronoiChebyshevF1)
	registerVoronoi[voronoi.Chebyshev, voronoi.F2](TypeVoronoiChebyshevF2)
	registerVoronoi[voronoi.Chebyshev, voronoi.F2MinusF1](TypeVoronoiChebyshevF2MinusF1)

	engines[engineKey{TypeSimplex, 1, false}] = simplex.Simplex1D{}
	engines[engineKey{TypeSimplex, 2, false}] = simplex.Simplex2D{}
	engines[engineKey{TypeSimplex, 3, false}] = simplex.Simplex3D{}
}

func registerLattice[G gradient.Gradient](t Type) {
	engines[engineKey{t, 1, false}] = lattice.Lattice1D[lattice.Normal, G]{}
	engines[engineKey{t, 2, false}] = lattice.Lattice2D[lattice.Normal, G]{}
	engines[engineKey{t, 3, false}] = lattice.Lattice3D[lattice.Normal, G]{}
	engines[engineKey{t, 1, true}] = lattice.Lattice1D[lattice.Tiling, G]{}
	engines[engineKey{t, 2, true}] = lattice.Lattice2D[lattice.Tiling, G]{}
	engines[engineKey{t, 3, true}] = lattice.Lattice3D[lattice.Tiling, G]{}
}

func registerVoronoi[D voronoi.Distance, F voronoi.Function](t Type) {
	engines[engineKey{t, 1, false}] = voronoi.Voronoi1D[lattice.Normal, D, F]{}
	engines[engineKey{t, 2, false}] = voronoi.Voronoi2D[lattice.Normal, D, F]{}
	engines[engineKey{t, 3, false}] = voronoi.Voronoi3D[lattice.Normal, D, F]{}
	engines[engineKey{t, 1, true}] = voronoi.Voronoi1D[lattice.Tiling, D, F]{}
	engines[engineKey{t, 2, true}] = voronoi.Voronoi2D[lattice.Tiling, D, F]{}
	engines[engineKey{t, 3, true}] = voronoi.Voronoi3D[lattice.Tiling, D, F]{}
}

// lookupEngine returns the engine for a validated dimension count.
func lookupEngine(t Type, dimensions int, tiling bool) (fractal.Noise, error) {
	if n, ok := engines[engineKey{t, dimensions, tiling}]; ok {
		return n, nil
	}
	return nil, fmt.Errorf("%w: %v %dD tiling=%t", ErrUnsupported, t, dimensions, tiling)
}

// Supports reports whether an engine exists for the combination.
func Supports(t Type, dimensions int, tiling bool) bool {
	_, ok := engines[engineKey{t, dimensions, tiling}]
	return ok
}

func lookupShape(s Shape) (shape.Shape, error) {
	if s < 0 || s >= shapeCount {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, s)
	}
	return shapes[s], nil
}
