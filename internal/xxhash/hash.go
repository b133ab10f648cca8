package xxhash

import "math/bits"

const (
	primeA uint32 = 0b10011110001101110111100110110001
	primeB uint32 = 0b10000101111010111100101001110111
	primeC uint32 = 0b11000010101100101010111000111101
	primeD uint32 = 0b00100111110101001110101100101111
	primeE uint32 = 0b00010110010101100110011110110001
)

// SmallXXHash is a scalar hash accumulator. It is a value type: every
// operation returns a new state.
type SmallXXHash struct {
	accumulator uint32
}

// Seed starts a new hash from seed.
func Seed(seed int) SmallXXHash {
	return SmallXXHash{accumulator: uint32(seed) + primeE} //nolint:gosec // wrapping is intended
}

// Eat folds a 32-bit value into the hash.
func (h SmallXXHash) Eat(data int) SmallXXHash {
	return SmallXXHash{
		accumulator: bits.RotateLeft32(h.accumulator+uint32(data)*primeC, 17) * primeD, //nolint:gosec // wrapping is intended
	}
}

// EatByte folds a single byte into the hash using the xxHash32 byte step.
func (h SmallXXHash) EatByte(data byte) SmallXXHash {
	return SmallXXHash{
		accumulator: bits.RotateLeft32(h.accumulator+uint32(data)*primeE, 11) * primeA,
	}
}

// Add advances the raw accumulator by v without mixing.
func (h SmallXXHash) Add(v int) SmallXXHash {
	return SmallXXHash{accumulator: h.accumulator + uint32(v)} //nolint:gosec // wrapping is intended
}

// Value returns the finalized hash. It does not modify h and may be
// called any number of times.
func (h SmallXXHash) Value() uint32 {
	return avalanche(h.accumulator)
}

// avalanche spreads the influence of every accumulator bit over the result.
func avalanche(x uint32) uint32 {
	x ^= x >> 15
	x *= primeB
	x ^= x >> 13
	x *= primeC
	x ^= x >> 16
	return x
}
