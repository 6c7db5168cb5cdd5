// Package hemi implements the hemisphere-coverage predicate for
// diffusion-gradient direction schemes: given unit vectors on the sphere,
// Test reports whether a single hemisphere (boundary inclusive) contains all
// of them and, when one exists, a representative pole for it.
//
// The candidate poles are the normalized pairwise cross products of the
// inputs; a candidate whose angle to every input is at most 90 degrees
// certifies coverage, and the reported pole is the renormalized mean of all
// such candidates. The function is pure and deterministic with no logging
// or other side effects.
package hemi
