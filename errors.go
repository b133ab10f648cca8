package noise

import "errors"

// Errors returned by Settings validation and Generator scheduling.
// Returned errors wrap these values; test with errors.Is.
var (
	// ErrInvalidFrequency is returned when Frequency is below 1 or the last
	// octave exceeds MaxFrequency.
	ErrInvalidFrequency = errors.New("noise: frequency out of range")

	// ErrInvalidOctaves is returned when Octaves is outside [1, 6].
	ErrInvalidOctaves = errors.New("noise: octaves must be in [1, 6]")

	// ErrInvalidLacunarity is returned when Lacunarity is outside [2, 4].
	ErrInvalidLacunarity = errors.New("noise: lacunarity must be in [2, 4]")

	// ErrInvalidPersistence is returned when Persistence is outside [0, 1].
	ErrInvalidPersistence = errors.New("noise: persistence must be in [0, 1]")

	// ErrInvalidDimensions is returned when a request asks for other than
	// 1, 2 or 3 dimensions.
	ErrInvalidDimensions = errors.New("noise: dimensions must be 1, 2 or 3")

	// ErrInvalidResolution is returned for a shape or hash grid resolution
	// outside [1, MaxResolution].
	ErrInvalidResolution = errors.New("noise: resolution out of range")

	// ErrBufferSize is returned when an input or output buffer is too short
	// or not a multiple of the lane width.
	ErrBufferSize = errors.New("noise: invalid buffer size")

	// ErrUnsupported is returned for a combination of type, dimensions and
	// tiling that has no engine, or an unknown type or shape.
	ErrUnsupported = errors.New("noise: unsupported combination")

	// ErrClosed is returned when scheduling on a closed Generator.
	ErrClosed = errors.New("noise: generator is closed")
)
