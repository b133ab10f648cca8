package xxhash

import "github.com/gogpu/noise/internal/wide"

// Hash4 is a 4-lane SmallXXHash. Lanes never interact.
type Hash4 struct {
	accumulator wide.U32x4
}

// Seed4 starts all 4 lanes from the same seed.
func Seed4(seed int) Hash4 {
	return Broadcast(Seed(seed))
}

// Broadcast copies a scalar hash state into every lane.
func Broadcast(h SmallXXHash) Hash4 {
	return Hash4{accumulator: wide.SplatU32x4(h.accumulator)}
}

// Eat folds one 32-bit value per lane into the hash.
func (h Hash4) Eat(data wide.I32x4) Hash4 {
	var acc wide.U32x4
	for i := range acc {
		acc[i] = h.accumulator[i] + uint32(data[i])*primeC //nolint:gosec // wrapping is intended
	}
	return Hash4{accumulator: acc.RotateLeft(17).MulScalar(primeD)}
}

// Add advances every lane's raw accumulator by v without mixing.
func (h Hash4) Add(v int) Hash4 {
	return Hash4{accumulator: h.accumulator.AddScalar(uint32(v))} //nolint:gosec // wrapping is intended
}

// Lane extracts the scalar state of lane i.
func (h Hash4) Lane(i int) SmallXXHash {
	return SmallXXHash{accumulator: h.accumulator[i]}
}

// Value returns the finalized hash of every lane.
func (h Hash4) Value() wide.U32x4 {
	return h.accumulator.
		XorShr(15).MulScalar(primeB).
		XorShr(13).MulScalar(primeC).
		XorShr(16)
}

// BytesA returns bits 0-7 of the finalized hash.
func (h Hash4) BytesA() wide.U32x4 { return h.Value().AndScalar(255) }

// BytesB returns bits 8-15 of the finalized hash.
func (h Hash4) BytesB() wide.U32x4 { return h.Value().Shr(8).AndScalar(255) }

// BytesC returns bits 16-23 of the finalized hash.
func (h Hash4) BytesC() wide.U32x4 { return h.Value().Shr(16).AndScalar(255) }

// BytesD returns bits 24-31 of the finalized hash.
func (h Hash4) BytesD() wide.U32x4 { return h.Value().Shr(24) }

// Floats01A returns BytesA mapped to [0, 1].
func (h Hash4) Floats01A() wide.F32x4 { return h.BytesA().ToF32().MulScalar(1.0 / 255.0) }

// Floats01B returns BytesB mapped to [0, 1].
func (h Hash4) Floats01B() wide.F32x4 { return h.BytesB().ToF32().MulScalar(1.0 / 255.0) }

// Floats01C returns BytesC mapped to [0, 1].
func (h Hash4) Floats01C() wide.F32x4 { return h.BytesC().ToF32().MulScalar(1.0 / 255.0) }

// Floats01D returns BytesD mapped to [0, 1].
func (h Hash4) Floats01D() wide.F32x4 { return h.BytesD().ToF32().MulScalar(1.0 / 255.0) }

// GetBits returns count bits of the finalized hash starting at shift.
func (h Hash4) GetBits(count, shift uint) wide.U32x4 {
	return h.Value().Shr(shift).AndScalar(uint32(1)<<count - 1)
}

// GetBitsAsFloats01 returns GetBits mapped to [0, 1].
func (h Hash4) GetBitsAsFloats01(count, shift uint) wide.F32x4 {
	return h.GetBits(count, shift).ToF32().MulScalar(1 / float32(uint32(1)<<count-1))
}
