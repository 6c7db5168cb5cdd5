// Package qc exposes the high-level hemisphere check for diffusion
// acquisition schemes. It accepts either a prebuilt gradient table or a
// pair of bval/bvec file paths, strips b0 samples, and delegates to the
// core predicate in package hemi.
package qc
