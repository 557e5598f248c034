package common

import "math"

// Dot3 computes the dot product of two 3-component vectors.
//
// Parameters:
//   - a: first vector
//   - b: second vector
//
// Returns:
//   - float32: a · b
func Dot3(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross3 computes the cross product of two 3-component vectors.
//
// Parameters:
//   - a: first vector
//   - b: second vector
//
// Returns:
//   - [3]float32: a × b
func Cross3(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Length3 computes the Euclidean length of a 3-component vector.
//
// Parameters:
//   - v: the vector
//
// Returns:
//   - float32: |v|
func Length3(v [3]float32) float32 {
	return float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
}

// Normalize3 returns the unit-length vector pointing in the direction of v.
// A zero vector is returned unchanged rather than producing NaN components.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - [3]float32: v / |v|, or v itself when |v| == 0
func Normalize3(v [3]float32) [3]float32 {
	l := Length3(v)
	if l == 0 {
		return v
	}
	inv := 1.0 / l
	return [3]float32{v[0] * inv, v[1] * inv, v[2] * inv}
}

// Add3 adds two 3-component vectors component-wise.
//
// Parameters:
//   - a: first vector
//   - b: second vector
//
// Returns:
//   - [3]float32: a + b
func Add3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub3 subtracts b from a component-wise.
//
// Parameters:
//   - a: first vector
//   - b: second vector
//
// Returns:
//   - [3]float32: a - b
func Sub3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale3 multiplies every component of v by s.
//
// Parameters:
//   - v: the vector
//   - s: the scalar factor
//
// Returns:
//   - [3]float32: v * s
func Scale3(v [3]float32, s float32) [3]float32 {
	return [3]float32{v[0] * s, v[1] * s, v[2] * s}
}

// Hadamard3 multiplies two 3-component vectors component-wise.
//
// Parameters:
//   - a: first vector
//   - b: second vector
//
// Returns:
//   - [3]float32: (a.x*b.x, a.y*b.y, a.z*b.z)
func Hadamard3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Mix linearly interpolates between a and b by t (t=0 yields a, t=1 yields b).
// t is not clamped.
//
// Parameters:
//   - a: start value
//   - b: end value
//   - t: interpolation factor
//
// Returns:
//   - float32: a + (b-a)*t
func Mix(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Mix3 linearly interpolates between two 3-component vectors by t.
// t is not clamped.
//
// Parameters:
//   - a: start vector
//   - b: end vector
//   - t: interpolation factor
//
// Returns:
//   - [3]float32: a + (b-a)*t component-wise
func Mix3(a, b [3]float32, t float32) [3]float32 {
	return [3]float32{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}

// Clamp constrains x to the range [lo, hi].
//
// Parameters:
//   - x: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: x clamped to [lo, hi]
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
