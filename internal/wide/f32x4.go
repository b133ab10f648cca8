package wide

import "github.com/chewxy/math32"

// Lanes is the number of samples processed together by every batched operation.
const Lanes = 4

// F32x4 represents 4 float32 lanes for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
// Lanes never interact; every operation is applied element-wise.
type F32x4 [Lanes]float32

// SplatF32x4 creates F32x4 with all lanes set to n.
func SplatF32x4(n float32) F32x4 {
	return F32x4{n, n, n, n}
}

// Add performs element-wise addition.
func (v F32x4) Add(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// AddScalar adds s to every lane.
func (v F32x4) AddScalar(s float32) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] + s
	}
	return result
}

// Sub performs element-wise subtraction.
func (v F32x4) Sub(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// SubScalar subtracts s from every lane.
func (v F32x4) SubScalar(s float32) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] - s
	}
	return result
}

// Mul performs element-wise multiplication.
func (v F32x4) Mul(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// MulScalar multiplies every lane by s.
func (v F32x4) MulScalar(s float32) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] * s
	}
	return result
}

// Div performs element-wise division.
// Division by zero results in +Inf, -Inf, or NaN according to IEEE 754.
func (v F32x4) Div(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] / other[i]
	}
	return result
}

// DivScalar divides every lane by s.
func (v F32x4) DivScalar(s float32) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] / s
	}
	return result
}

// Neg negates every lane.
func (v F32x4) Neg() F32x4 {
	return F32x4{-v[0], -v[1], -v[2], -v[3]}
}

// Abs returns the absolute value of every lane.
func (v F32x4) Abs() F32x4 {
	var result F32x4
	for i := range v {
		result[i] = math32.Abs(v[i])
	}
	return result
}

// Floor rounds every lane toward negative infinity.
func (v F32x4) Floor() F32x4 {
	var result F32x4
	for i := range v {
		result[i] = math32.Floor(v[i])
	}
	return result
}

// Ceil rounds every lane toward positive infinity.
func (v F32x4) Ceil() F32x4 {
	var result F32x4
	for i := range v {
		result[i] = math32.Ceil(v[i])
	}
	return result
}

// Sqrt computes the square root of every lane.
// Negative values result in NaN according to IEEE 754.
func (v F32x4) Sqrt() F32x4 {
	var result F32x4
	for i := range v {
		result[i] = math32.Sqrt(v[i])
	}
	return result
}

// Sin computes the sine of every lane (radians).
func (v F32x4) Sin() F32x4 {
	var result F32x4
	for i := range v {
		result[i] = math32.Sin(v[i])
	}
	return result
}

// Cos computes the cosine of every lane (radians).
func (v F32x4) Cos() F32x4 {
	var result F32x4
	for i := range v {
		result[i] = math32.Cos(v[i])
	}
	return result
}

// Min performs element-wise minimum.
func (v F32x4) Min(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = math32.Min(v[i], other[i])
	}
	return result
}

// MinScalar clamps every lane to at most s.
func (v F32x4) MinScalar(s float32) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = math32.Min(v[i], s)
	}
	return result
}

// Max performs element-wise maximum.
func (v F32x4) Max(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = math32.Max(v[i], other[i])
	}
	return result
}

// MaxScalar clamps every lane to at least s.
func (v F32x4) MaxScalar(s float32) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = math32.Max(v[i], s)
	}
	return result
}

// Lerp performs linear interpolation: v*(1-t) + other*t.
// The result is exact at both t=0 and t=1.
func (v F32x4) Lerp(other F32x4, t F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i]*(1-t[i]) + other[i]*t[i]
	}
	return result
}

// Less compares lanes: result[i] = v[i] < other[i].
func (v F32x4) Less(other F32x4) Mask4 {
	var result Mask4
	for i := range v {
		result[i] = v[i] < other[i]
	}
	return result
}

// LessScalar compares every lane against s.
func (v F32x4) LessScalar(s float32) Mask4 {
	var result Mask4
	for i := range v {
		result[i] = v[i] < s
	}
	return result
}

// ToI32 converts every lane to int32, truncating toward zero.
func (v F32x4) ToI32() I32x4 {
	var result I32x4
	for i := range v {
		result[i] = int32(v[i])
	}
	return result
}

// SelectF32 returns ifTrue[i] where mask[i] is set and ifFalse[i] elsewhere.
func SelectF32(mask Mask4, ifTrue, ifFalse F32x4) F32x4 {
	var result F32x4
	for i := range mask {
		if mask[i] {
			result[i] = ifTrue[i]
		} else {
			result[i] = ifFalse[i]
		}
	}
	return result
}
