package wide

// U32x4 represents 4 uint32 lanes, used for hash accumulators.
// All arithmetic wraps modulo 2^32.
type U32x4 [Lanes]uint32

// SplatU32x4 creates U32x4 with all lanes set to n.
func SplatU32x4(n uint32) U32x4 {
	return U32x4{n, n, n, n}
}

// Add performs element-wise wrapping addition.
func (v U32x4) Add(other U32x4) U32x4 {
	var result U32x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// AddScalar adds s to every lane.
func (v U32x4) AddScalar(s uint32) U32x4 {
	var result U32x4
	for i := range v {
		result[i] = v[i] + s
	}
	return result
}

// MulScalar multiplies every lane by s.
func (v U32x4) MulScalar(s uint32) U32x4 {
	var result U32x4
	for i := range v {
		result[i] = v[i] * s
	}
	return result
}

// RotateLeft rotates every lane left by steps bits.
// Written as two shifts and an or so the loop stays vectorizable.
func (v U32x4) RotateLeft(steps uint) U32x4 {
	var result U32x4
	for i := range v {
		result[i] = v[i]<<steps | v[i]>>(32-steps)
	}
	return result
}

// Shr shifts every lane right by n bits.
func (v U32x4) Shr(n uint) U32x4 {
	var result U32x4
	for i := range v {
		result[i] = v[i] >> n
	}
	return result
}

// XorShr returns v ^ (v >> n) per lane.
func (v U32x4) XorShr(n uint) U32x4 {
	var result U32x4
	for i := range v {
		result[i] = v[i] ^ v[i]>>n
	}
	return result
}

// AndScalar masks every lane with s.
func (v U32x4) AndScalar(s uint32) U32x4 {
	var result U32x4
	for i := range v {
		result[i] = v[i] & s
	}
	return result
}

// ToF32 converts every lane to float32.
func (v U32x4) ToF32() F32x4 {
	var result F32x4
	for i := range v {
		result[i] = float32(v[i])
	}
	return result
}
