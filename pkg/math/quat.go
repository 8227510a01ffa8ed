package math

import "github.com/chewxy/math32"

// Quat represents a rotation quaternion. Components are stored as
// X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// EulerOrder selects the axis order of QuatFromEuler. Orders are
// intrinsic: each rotation is applied about the axis of the frame
// produced by the previous ones, left to right.
type EulerOrder string

const (
	OrderXYZ EulerOrder = "xyz"
	OrderXZY EulerOrder = "xzy"
	OrderYXZ EulerOrder = "yxz"
	OrderYZX EulerOrder = "yzx"
	OrderZXY EulerOrder = "zxy"
	OrderZYX EulerOrder = "zyx"
)

// QuatIdentity stores the identity quaternion (no rotation) in dst and
// returns dst.
func QuatIdentity(dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	dst.X, dst.Y, dst.Z, dst.W = 0, 0, 0, 1
	return dst
}

// Clone returns a newly allocated copy of q.
func (q *Quat) Clone() *Quat {
	return &Quat{q.X, q.Y, q.Z, q.W}
}

// Copy stores q in dst and returns dst.
func (q *Quat) Copy(dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	*dst = *q
	return dst
}

// EqualApprox reports whether every component of q is within Epsilon of
// the corresponding component of p.
func (q *Quat) EqualApprox(p *Quat) bool {
	return math32.Abs(q.X-p.X) <= Epsilon &&
		math32.Abs(q.Y-p.Y) <= Epsilon &&
		math32.Abs(q.Z-p.Z) <= Epsilon &&
		math32.Abs(q.W-p.W) <= Epsilon
}

// QuatFromAxisAngle stores the rotation of rad radians around axis in
// dst and returns dst. axis must be normalized.
func QuatFromAxisAngle(axis *Vec3, rad float32, dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	s, c := math32.Sincos(rad / 2)
	x, y, z := axis.X, axis.Y, axis.Z
	dst.X = x * s
	dst.Y = y * s
	dst.Z = z * s
	dst.W = c
	return dst
}

// QuatFromEuler stores the unit quaternion composing the rotations of
// x, y and z radians about their axes in the given intrinsic order in
// dst and returns dst. The three half-angle axis quaternions are
// multiplied left to right: order "xyz" yields qx * qy * qz, which
// rotates about x first, then y in the rotated frame, then z.
// Unrecognized orders fall back to OrderXYZ.
func QuatFromEuler(x, y, z float32, order EulerOrder, dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	sx, cx := math32.Sincos(x / 2)
	sy, cy := math32.Sincos(y / 2)
	sz, cz := math32.Sincos(z / 2)

	qx := Quat{sx, 0, 0, cx}
	qy := Quat{0, sy, 0, cy}
	qz := Quat{0, 0, sz, cz}

	var first, second, third *Quat
	switch order {
	case OrderXZY:
		first, second, third = &qx, &qz, &qy
	case OrderYXZ:
		first, second, third = &qy, &qx, &qz
	case OrderYZX:
		first, second, third = &qy, &qz, &qx
	case OrderZXY:
		first, second, third = &qz, &qx, &qy
	case OrderZYX:
		first, second, third = &qz, &qy, &qx
	default:
		first, second, third = &qx, &qy, &qz
	}
	first.Mul(second, dst)
	return dst.Mul(third, dst)
}

// Mul stores the Hamilton product q * p in dst and returns dst. The
// product applies p's rotation first, then q's. All source components
// are read before dst is written, so dst may be q or p.
func (q *Quat) Mul(p, dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	qx, qy, qz, qw := q.X, q.Y, q.Z, q.W
	px, py, pz, pw := p.X, p.Y, p.Z, p.W
	dst.X = qw*px + qx*pw + qy*pz - qz*py
	dst.Y = qw*py - qx*pz + qy*pw + qz*px
	dst.Z = qw*pz + qx*py - qy*px + qz*pw
	dst.W = qw*pw - qx*px - qy*py - qz*pz
	return dst
}

// Dot returns the dot product of q and p.
func (q *Quat) Dot(p *Quat) float32 {
	return q.X*p.X + q.Y*p.Y + q.Z*p.Z + q.W*p.W
}

// Length returns the norm of q.
func (q *Quat) Length() float32 {
	return math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize stores q scaled to unit norm in dst and returns dst. A
// near-zero q yields the identity quaternion.
func (q *Quat) Normalize(dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	l := q.Length()
	if l < 1e-4 {
		return QuatIdentity(dst)
	}
	inv := 1 / l
	dst.X = q.X * inv
	dst.Y = q.Y * inv
	dst.Z = q.Z * inv
	dst.W = q.W * inv
	return dst
}

// Negate stores -q in dst and returns dst. -q represents the same
// rotation as q.
func (q *Quat) Negate(dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	dst.X = -q.X
	dst.Y = -q.Y
	dst.Z = -q.Z
	dst.W = -q.W
	return dst
}

// Lerp stores the normalized linear interpolation from q to p at t in
// dst and returns dst. Use Slerp for constant-velocity rotation
// interpolation; this is for cheap blending.
func (q *Quat) Lerp(p *Quat, t float32, dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	dst.X = q.X + t*(p.X-q.X)
	dst.Y = q.Y + t*(p.Y-q.Y)
	dst.Z = q.Z + t*(p.Z-q.Z)
	dst.W = q.W + t*(p.W-q.W)
	return dst.Normalize(dst)
}

// Slerp stores the spherical linear interpolation from q to p at t in
// dst and returns dst. The shorter arc is taken, and nearly parallel
// quaternions fall back to normalized linear interpolation to avoid a
// vanishing divisor.
func (q *Quat) Slerp(p *Quat, t float32, dst *Quat) *Quat {
	if dst == nil {
		dst = &Quat{}
	}
	a, b := *q, *p

	dot := a.Dot(&b)
	if dot < 0 {
		b.Negate(&b)
		dot = -dot
	}

	if dot > 0.9995 {
		return a.Lerp(&b, t, dst)
	}

	theta0 := math32.Acos(dot)
	theta := theta0 * t
	sinTheta := math32.Sin(theta)
	sinTheta0 := math32.Sin(theta0)

	s0 := math32.Cos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	dst.X = a.X*s0 + b.X*s1
	dst.Y = a.Y*s0 + b.Y*s1
	dst.Z = a.Z*s0 + b.Z*s1
	dst.W = a.W*s0 + b.W*s1
	return dst
}
