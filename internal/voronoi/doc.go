// Package voronoi implements cellular (Worley) noise.
//
// Every lattice cell holds one or two hash-placed feature points. For each
// sample the 1-ring of neighbouring cells is searched and the two smallest
// distances are tracked in a Minima. A Distance metric measures and
// finalizes the distances; a Function selects the output (F1, F2 or
// F2−F1).
package voronoi
