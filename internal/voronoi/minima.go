package voronoi

import "github.com/gogpu/noise/internal/wide"

// initialMinimum exceeds every distance reachable from the 1-ring search.
const initialMinimum = 2

// Minima tracks the nearest and second nearest distance per lane.
// Nearest <= Second holds after every UpdateMinima.
type Minima struct {
	Nearest, Second wide.F32x4
}

// NewMinima returns minima initialised above any reachable distance.
func NewMinima() Minima {
	return Minima{
		Nearest: wide.SplatF32x4(initialMinimum),
		Second:  wide.SplatF32x4(initialMinimum),
	}
}

// UpdateMinima folds new distances into m. A new nearest pushes the old
// nearest into second place; otherwise a smaller distance replaces second.
func UpdateMinima(m Minima, distances wide.F32x4) Minima {
	newMinimum := distances.Less(m.Nearest)
	m.Second = wide.SelectF32(
		newMinimum,
		m.Nearest,
		wide.SelectF32(distances.Less(m.Second), distances, m.Second),
	)
	m.Nearest = wide.SelectF32(newMinimum, distances, m.Nearest)
	return m
}
