// Package math provides float32 math types and functions for real-time
// 3D transform pipelines: 3-component vectors, 3x3/4x4 column-major
// matrices and quaternions.
//
// Every operation that produces a vector, matrix or quaternion takes a
// trailing dst pointer. A nil dst allocates a fresh result; otherwise
// the result is written through dst and dst itself is returned. dst may
// alias the receiver or any argument of the call, and the numeric result
// is identical either way. Arguments that are not passed as dst are
// never modified.
package math

import "github.com/chewxy/math32"

// Epsilon is the default tolerance of the approximate-equality
// predicates.
const Epsilon float32 = 1e-6

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * (math32.Pi / 180)
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * (180 / math32.Pi)
}

// Clamp limits v to the range [min, max].
func Clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Lerp interpolates linearly from a to b. Values of t outside [0, 1]
// extrapolate.
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// EqualApprox reports whether a and b differ by at most Epsilon.
func EqualApprox(a, b float32) bool {
	return math32.Abs(a-b) <= Epsilon
}
