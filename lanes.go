package noise

import "github.com/gogpu/noise/internal/wide"

// Lanes is the number of samples evaluated together.
const Lanes = wide.Lanes

// MaxResolution bounds shape and hash grid resolution. It keeps a shape's
// buffers, MaxResolution² points each, within a few hundred megabytes.
const MaxResolution = 4096

// LaneCount returns the number of lane batches needed for n samples.
func LaneCount(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + Lanes - 1) / Lanes
}

// PaddedLen rounds n up to a multiple of Lanes.
func PaddedLen(n int) int {
	return LaneCount(n) * Lanes
}

// ShapeSamples returns the buffer length needed for a shape of the given
// resolution: resolution² rounded up to a multiple of Lanes.
func ShapeSamples(resolution int) int {
	return PaddedLen(resolution * resolution)
}
