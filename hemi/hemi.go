package hemi

import (
	"errors"
	"fmt"
	"math"

	"github.com/dmriqc/hemicheck/vec3"
)

// DefaultTolerance is the default absolute tolerance for the unit-norm
// precondition on input vectors.
const DefaultTolerance = 1e-3

// minCrossNorm is the magnitude below which a pairwise cross product is
// treated as degenerate: the pair is (anti)parallel and contributes no
// usable candidate pole. Normalizing such a vector would amplify noise or
// divide by zero outright.
const minCrossNorm = 1e-12

var (
	// ErrInvalidDimension reports an input vector whose length is not 3.
	ErrInvalidDimension = errors.New("hemi: input vectors must be 3D vectors")

	// ErrNotUnitVector reports an input vector whose norm deviates from 1
	// beyond the allowed tolerance.
	ErrNotUnitVector = errors.New("hemi: input vectors must be unit vectors")
)

// Result is the outcome of a hemisphere test.
type Result struct {
	// IsHemispherical is true when some hemisphere (boundary inclusive)
	// contains every input vector.
	IsHemispherical bool

	// Pole is the direction of the containing hemisphere's center,
	// unit length when IsHemispherical is true and the zero vector
	// otherwise. It is the renormalized centroid of all admissible
	// candidate poles, a representative rather than an optimal choice.
	Pole vec3.Vec3
}

// Test reports whether all input vectors lie within a single hemisphere.
//
// Every vector must have exactly 3 components and unit Euclidean norm
// within tol; violations are reported as ErrInvalidDimension and
// ErrNotUnitVector respectively, with no partial result.
//
// Fewer than two vectors trivially fit any hemisphere: a single vector
// yields {true, the vector} and an empty input yields {true, zero}.
func Test(vectors [][]float64, tol float64) (Result, error) {
	vecs, err := validate(vectors, tol)
	if err != nil {
		return Result{}, err
	}

	switch len(vecs) {
	case 0:
		return Result{IsHemispherical: true}, nil
	case 1:
		return Result{IsHemispherical: true, Pole: vecs[0]}, nil
	}

	// Candidate poles are the normalized cross products of every ordered
	// pair. The cross product is antisymmetric, so (i, j) and (j, i)
	// contribute opposite candidates and both orderings matter.
	var (
		sum      vec3.Vec3
		first    vec3.Vec3
		vertices int
	)
	for i := range vecs {
		for j := range vecs {
			if i == j {
				continue
			}
			c := vecs[i].Cross(vecs[j])
			n := c.Norm()
			if n < minCrossNorm {
				continue
			}
			c = c.Scale(1 / n)
			if !containsAll(c, vecs) {
				continue
			}
			if vertices == 0 {
				first = c
			}
			sum = sum.Add(c)
			vertices++
		}
	}

	if vertices == 0 {
		return Result{}, nil
	}

	pole := sum.Scale(1 / float64(vertices))
	if n := pole.Norm(); n < minCrossNorm {
		// Admissible candidates cancel out (a symmetric arrangement);
		// any one of them is a valid pole, so keep the first.
		pole = first
	} else {
		pole = pole.Scale(1 / n)
	}
	return Result{IsHemispherical: true, Pole: pole}, nil
}

// containsAll reports whether every input vector lies within 90 degrees
// (inclusive) of the candidate pole c.
func containsAll(c vec3.Vec3, vecs []vec3.Vec3) bool {
	for _, v := range vecs {
		if c.AngleTo(v) > math.Pi/2 {
			return false
		}
	}
	return true
}

// validate checks dimensionality and the unit-norm precondition and
// converts the inputs to vec3 values.
func validate(vectors [][]float64, tol float64) ([]vec3.Vec3, error) {
	const expectedNorm = 1.0
	threshold := tol + tol*expectedNorm

	out := make([]vec3.Vec3, len(vectors))
	for i, v := range vectors {
		if len(v) != 3 {
			return nil, fmt.Errorf("hemi: vector %d has %d components: %w", i, len(v), ErrInvalidDimension)
		}
		u := vec3.Vec3{v[0], v[1], v[2]}
		if n := u.Norm(); math.Abs(n-expectedNorm) > threshold {
			return nil, fmt.Errorf("hemi: vector %d has norm %v: %w", i, n, ErrNotUnitVector)
		}
		out[i] = u
	}
	return out, nil
}
