package noise

import (
	"fmt"
	"strings"
)

// Type selects a noise function.
type Type int

const (
	// TypePerlin is gradient noise.
	TypePerlin Type = iota
	// TypePerlinTurbulence is the absolute value of Perlin noise.
	TypePerlinTurbulence
	// TypeValue interpolates random values at lattice points.
	TypeValue
	// TypeValueTurbulence is the absolute value of Value noise.
	TypeValueTurbulence
	// TypeVoronoiWorleyF1 is the Euclidean distance to the nearest feature point.
	TypeVoronoiWorleyF1
	// TypeVoronoiWorleyF2 is the Euclidean distance to the second nearest
	// feature point.
	TypeVoronoiWorleyF2
	// TypeVoronoiWorleyF2MinusF1 is F2 - F1 with the Euclidean metric.
	TypeVoronoiWorleyF2MinusF1
	// TypeVoronoiChebyshevF1 is the Chebyshev distance to the nearest
	// feature point.
	TypeVoronoiChebyshevF1
	// TypeVoronoiChebyshevF2 is the Chebyshev distance to the second nearest
	// feature point.
	TypeVoronoiChebyshevF2
	// TypeVoronoiChebyshevF2MinusF1 is F2 - F1 with the Chebyshev metric.
	TypeVoronoiChebyshevF2MinusF1
	// TypeSimplex is OpenSimplex noise. It has no tiling variant.
	TypeSimplex

	typeCount
)

var typeNames = [typeCount]string{
	TypePerlin:                    "perlin",
	TypePerlinTurbulence:          "perlin-turbulence",
	TypeValue:                     "value",
	TypeValueTurbulence:           "value-turbulence",
	TypeVoronoiWorleyF1:           "voronoi-worley-f1",
	TypeVoronoiWorleyF2:           "voronoi-worley-f2",
	TypeVoronoiWorleyF2MinusF1:    "voronoi-worley-f2-f1",
	TypeVoronoiChebyshevF1:        "voronoi-chebyshev-f1",
	TypeVoronoiChebyshevF2:        "voronoi-chebyshev-f2",
	TypeVoronoiChebyshevF2MinusF1: "voronoi-chebyshev-f2-f1",
	TypeSimplex:                   "simplex",
}

// Types returns every noise type in declaration order.
func Types() []Type {
	types := make([]Type, typeCount)
	for i := range types {
		types[i] = Type(i)
	}
	return types
}

// String returns the type's name as accepted by ParseType.
func (t Type) String() string {
	if t < 0 || t >= typeCount {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// IsVoronoi reports whether t is a cellular type. Voronoi output is a
// non-negative distance instead of a value in [-1, 1]. 2D and 3D Worley
// distances are clamped to 1; 1D Worley and every Chebyshev variant are
// only bounded by 2.
func (t Type) IsVoronoi() bool {
	return t >= TypeVoronoiWorleyF1 && t <= TypeVoronoiChebyshevF2MinusF1
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if t < 0 || t >= typeCount {
		return nil, fmt.Errorf("%w: type %d", ErrUnsupported, int(t))
	}
	return []byte(typeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseType returns the type with the given name, ignoring case.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown noise type %q", ErrUnsupported, name)
}

// Shape selects a parametric surface.
type Shape int

const (
	// ShapePlane is the unit square in the XZ plane.
	ShapePlane Shape = iota
	// ShapeSphere is a UV sphere of radius 0.5.
	ShapeSphere
	// ShapeOctaSphere is an octahedron inflated to a sphere of radius 0.5.
	ShapeOctaSphere
	// ShapeTorus has major radius 0.375 and minor radius 0.125.
	ShapeTorus

	shapeCount
)

var shapeNames = [shapeCount]string{
	ShapePlane:      "plane",
	ShapeSphere:     "sphere",
	ShapeOctaSphere: "octasphere",
	ShapeTorus:      "torus",
}

// Shapes returns every shape in declaration order.
func Shapes() []Shape {
	shapes := make([]Shape, shapeCount)
	for i := range shapes {
		shapes[i] = Shape(i)
	}
	return shapes
}

// String returns the shape's name as accepted by ParseShape.
func (s Shape) String() string {
	if s < 0 || s >= shapeCount {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	if s < 0 || s >= shapeCount {
		return nil, fmt.Errorf("%w: shape %d", ErrUnsupported, int(s))
	}
	return []byte(shapeNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseShape returns the shape with the given name, ignoring case.
func ParseShape(name string) (Shape, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown shape %q", ErrUnsupported, name)
}
