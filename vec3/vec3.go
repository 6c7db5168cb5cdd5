package vec3

import "math"

// Vec3 is a 3-component vector with float64 components.
type Vec3 [3]float64

// Zero reports whether every component is exactly zero.
func (v Vec3) Zero() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// Add returns the component-wise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Scale returns v multiplied by the scalar s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Cross returns the cross product v × o. The result is orthogonal to both
// operands; its magnitude vanishes when the operands are parallel or
// antiparallel.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Norm returns the Euclidean norm of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged; callers that need to distinguish that case should test Norm
// first.
func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

// AngleTo returns the angle in radians between v and o, both assumed to be
// unit vectors. The dot product is clamped to [-1, 1] so that floating-point
// overshoot cannot push math.Acos outside its domain.
func (v Vec3) AngleTo(o Vec3) float64 {
	d := v.Dot(o)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return math.Acos(d)
}
