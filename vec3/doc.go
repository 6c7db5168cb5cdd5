// Package vec3 provides fixed-arity 3-component vector math in double
// precision: dot and cross products, Euclidean norm, normalization, and
// angles between unit directions. It is the numeric substrate for the
// hemisphere predicate in package hemi.
package vec3
