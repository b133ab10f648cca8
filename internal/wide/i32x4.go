package wide

// I32x4 represents 4 int32 lanes, used for lattice cell indices.
type I32x4 [Lanes]int32

// SplatI32x4 creates I32x4 with all lanes set to n.
func SplatI32x4(n int32) I32x4 {
	return I32x4{n, n, n, n}
}

// Add performs element-wise addition (wrapping on overflow).
func (v I32x4) Add(other I32x4) I32x4 {
	var result I32x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// AddScalar adds s to every lane.
func (v I32x4) AddScalar(s int32) I32x4 {
	var result I32x4
	for i := range v {
		result[i] = v[i] + s
	}
	return result
}

// Sub performs element-wise subtraction.
func (v I32x4) Sub(other I32x4) I32x4 {
	var result I32x4
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// MulScalar multiplies every lane by s.
func (v I32x4) MulScalar(s int32) I32x4 {
	var result I32x4
	for i := range v {
		result[i] = v[i] * s
	}
	return result
}

// ToF32 converts every lane to float32.
func (v I32x4) ToF32() F32x4 {
	var result F32x4
	for i := range v {
		result[i] = float32(v[i])
	}
	return result
}

// EqScalar compares every lane for equality with s.
func (v I32x4) EqScalar(s int32) Mask4 {
	var result Mask4
	for i := range v {
		result[i] = v[i] == s
	}
	return result
}

// LessScalar compares every lane against s.
func (v I32x4) LessScalar(s int32) Mask4 {
	var result Mask4
	for i := range v {
		result[i] = v[i] < s
	}
	return result
}

// SelectI32 returns ifTrue[i] where mask[i] is set and ifFalse[i] elsewhere.
func SelectI32(mask Mask4, ifTrue, ifFalse I32x4) I32x4 {
	var result I32x4
	for i := range mask {
		if mask[i] {
			result[i] = ifTrue[i]
		} else {
			result[i] = ifFalse[i]
		}
	}
	return result
}
