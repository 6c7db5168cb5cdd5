// Package gradient models diffusion-MRI gradient tables: paired b-values
// and b-vectors, a mask for b0 (near-zero gradient strength) samples, and a
// loader for FSL-style whitespace-separated bval/bvec text files. Only the
// non-b0 direction vectors are meaningful input for directional analysis
// such as the hemisphere test in package hemi.
package gradient
