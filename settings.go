package noise

import (
	"fmt"
	"math"

	"github.com/gogpu/noise/internal/fractal"
)

// Settings bounds.
const (
	MinOctaves    = 1
	MaxOctaves    = 6
	MinLacunarity = 2
	MaxLacunarity = 4

	// MaxFrequency bounds the frequency of the last octave. Lattice indices
	// are int32 and sample coordinates are scaled by the frequency in
	// float32.
	MaxFrequency = 1 << 20
)

// Settings controls fractal octave summation.
type Settings struct {
	// Seed selects the hash stream.
	Seed int `json:"seed"`

	// Frequency is the number of lattice cells per domain unit in the first
	// octave. Must be at least 1, and the last octave's frequency at most
	// MaxFrequency.
	Frequency int `json:"frequency"`

	// Octaves is the number of layers summed, in [1, 6].
	Octaves int `json:"octaves"`

	// Lacunarity multiplies the frequency of each successive octave, in [2, 4].
	Lacunarity int `json:"lacunarity"`

	// Persistence multiplies the amplitude of each successive octave, in [0, 1].
	Persistence float32 `json:"persistence"`
}

// DefaultSettings returns a single octave at frequency 4.
func DefaultSettings() Settings {
	return Settings{
		Frequency:   4,
		Octaves:     1,
		Lacunarity:  2,
		Persistence: 0.5,
	}
}

// Validate reports the first out-of-range field.
func (s Settings) Validate() error {
	if s.Frequency < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidFrequency, s.Frequency)
	}
	if s.Octaves < MinOctaves || s.Octaves > MaxOctaves {
		return fmt.Errorf("%w: got %d", ErrInvalidOctaves, s.Octaves)
	}
	if s.Lacunarity < MinLacunarity || s.Lacunarity > MaxLacunarity {
		return fmt.Errorf("%w: got %d", ErrInvalidLacunarity, s.Lacunarity)
	}
	if f := s.FinalFrequency(); f > MaxFrequency {
		return fmt.Errorf("%w: last octave reaches %d, limit %d", ErrInvalidFrequency, f, MaxFrequency)
	}
	p := float64(s.Persistence)
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidPersistence, s.Persistence)
	}
	return nil
}

// FinalFrequency returns the frequency of the last octave. Once the
// running product passes MaxFrequency it stops multiplying, so the result
// cannot overflow.
func (s Settings) FinalFrequency() int {
	f := s.Frequency
	for o := 1; o < s.Octaves && f <= MaxFrequency; o++ {
		f *= s.Lacunarity
	}
	return f
}

func (s Settings) params() fractal.Params {
	return fractal.Params{
		Seed:        s.Seed,
		Frequency:   s.Frequency,
		Octaves:     s.Octaves,
		Lacunarity:  s.Lacunarity,
		Persistence: s.Persistence,
	}
}
