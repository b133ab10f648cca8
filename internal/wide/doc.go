// Package wide provides SIMD-friendly 4-lane types for batch noise evaluation.
//
// Every noise evaluation processes 4 samples at once. F32x4, I32x4 and
// U32x4 hold one value per sample, Mask4 one comparison result, and F32x4x3
// a batch of 4 positions in Structure-of-Arrays layout. Operations are
// simple loops over fixed-size arrays so the Go compiler can keep the lanes
// in vector registers on supported architectures (SSE, AVX, NEON).
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - Select instead of branch where lanes may disagree
//
// # Usage Example
//
//	// Transform 4 positions and measure them
//	p := wide.LoadVec3(positions[i : i+4])
//	p = wide.TransformPoints(m, p)
//	lengths := p.LengthSq().Sqrt()
package wide
