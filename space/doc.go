// Package space provides the affine domain transforms applied to noise
// sample positions and generated shapes.
//
// A TRS describes translation, rotation and scale the way a scene transform
// does. Its Matrix is a 3x4 affine matrix; NormalMatrix is the inverse
// transpose of the linear part, which keeps normals perpendicular to the
// surface under non-uniform scale.
//
// Vectors use ms3.Vec from github.com/soypat/glgl so positions and normals
// can be passed straight from geometry code.
package space
