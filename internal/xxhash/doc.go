// Package xxhash implements SmallXXHash, a cut-down xxHash32 used to turn
// lattice cell indices into pseudo-random values.
//
// The hash is a streaming accumulator: Seed starts it, Eat folds one value
// in, and Value applies the avalanche finalizer without changing the state.
// Hash4 runs the same algorithm on 4 independent lanes.
//
// One finalized value yields four channels (Floats01A..D), one per byte,
// each mapped to [0, 1]. GetBitsAsFloats01 slices narrower fields when more
// than four numbers are needed from a single hash.
package xxhash
