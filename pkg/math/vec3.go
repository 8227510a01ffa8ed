package math

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/rand"
)

// Vec3 is a 3-component float32 vector.
type Vec3 struct {
	X, Y, Z float32
}

// NewVec3 returns a vector with the given components.
func NewVec3(x, y, z float32) *Vec3 {
	return &Vec3{x, y, z}
}

// Set sets the components of v and returns v.
func (v *Vec3) Set(x, y, z float32) *Vec3 {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// Zero sets all components of v to zero and returns v.
func (v *Vec3) Zero() *Vec3 {
	v.X, v.Y, v.Z = 0, 0, 0
	return v
}

// Clone returns a newly allocated copy of v.
func (v *Vec3) Clone() *Vec3 {
	return &Vec3{v.X, v.Y, v.Z}
}

// Copy stores v in dst and returns dst.
func (v *Vec3) Copy(dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst.X, dst.Y, dst.Z = v.X, v.Y, v.Z
	return dst
}

// Equal reports whether v and u have exactly equal components.
func (v *Vec3) Equal(u *Vec3) bool {
	return v.X == u.X && v.Y == u.Y && v.Z == u.Z
}

// EqualApprox reports whether every component of v is within Epsilon of
// the corresponding component of u.
func (v *Vec3) EqualApprox(u *Vec3) bool {
	return math32.Abs(v.X-u.X) <= Epsilon &&
		math32.Abs(v.Y-u.Y) <= Epsilon &&
		math32.Abs(v.Z-u.Z) <= Epsilon
}

// Add stores v + u in dst and returns dst.
func (v *Vec3) Add(u, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst.X = v.X + u.X
	dst.Y = v.Y + u.Y
	dst.Z = v.Z + u.Z
	return dst
}

// Sub stores v - u in dst and returns dst.
func (v *Vec3) Sub(u, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst.X = v.X - u.X
	dst.Y = v.Y - u.Y
	dst.Z = v.Z - u.Z
	return dst
}

// Mul stores the component-wise product of v and u in dst and returns
// dst.
func (v *Vec3) Mul(u, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst.X = v.X * u.X
	dst.Y = v.Y * u.Y
	dst.Z = v.Z * u.Z
	return dst
}

// Div stores the component-wise quotient v / u in dst and returns dst.
func (v *Vec3) Div(u, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst.X = v.X / u.X
	dst.Y = v.Y / u.Y
	dst.Z = v.Z / u.Z
	return dst
}

// Scale stores v * s in dst and returns dst.
func (v *Vec3) Scale(s float32, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst.X = v.X * s
	dst.Y = v.Y * s
	dst.Z = v.Z * s
	return dst
}

// DivScale stores v / s in dst and returns dst.
func (v *Vec3) DivScale(s float32, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst.X = v.X / s
	dst.Y = v.Y / s
	dst.Z = v.Z / s
	return dst
}

// AddScaled stores v + u*s in dst and returns dst.
func (v *Vec3) AddScaled(u *Vec3, s float32, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst.X = v.X + u.X*s
	dst.Y = v.Y + u.Y*s
	dst.Z = v.Z + u.Z*s
	return dst
}

// Negate stores -v in dst and returns dst.
func (v *Vec3) Negate(dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst.X = -v.X
	dst.Y = -v.Y
	dst.Z = -v.Z
	return dst
}

// Inverse stores the component-wise reciprocal of v in dst and returns
// dst.
func (v *Vec3) Inverse(dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst.X = 1 / v.X
	dst.Y = 1 / v.Y
	dst.Z = 1 / v.Z
	return dst
}

// Dot returns the dot product of v and u.
func (v *Vec3) Dot(u *Vec3) float32 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross stores the right-handed cross product v x u in dst and returns
// dst. All source components are read before dst is written, so dst may
// be v or u.
func (v *Vec3) Cross(u, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	x := v.Y*u.Z - v.Z*u.Y
	y := v.Z*u.X - v.X*u.Z
	z := v.X*u.Y - v.Y*u.X
	dst.X, dst.Y, dst.Z = x, y, z
	return dst
}

// Length returns the magnitude of v.
func (v *Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSq returns the squared magnitude of v.
func (v *Vec3) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Distance returns the distance between the points v and u.
func (v *Vec3) Distance(u *Vec3) float32 {
	dx := v.X - u.X
	dy := v.Y - u.Y
	dz := v.Z - u.Z
	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}

// DistanceSq returns the squared distance between the points v and u.
func (v *Vec3) DistanceSq(u *Vec3) float32 {
	dx := v.X - u.X
	dy := v.Y - u.Y
	dz := v.Z - u.Z
	return dx*dx + dy*dy + dz*dz
}

// Normalize stores the unit vector in the direction of v in dst and
// returns dst. A zero-length v yields the zero vector, never NaN.
func (v *Vec3) Normalize(dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	l := v.Length()
	if l == 0 {
		dst.X, dst.Y, dst.Z = 0, 0, 0
		return dst
	}
	dst.X = v.X / l
	dst.Y = v.Y / l
	dst.Z = v.Z / l
	return dst
}

// Angle returns the angle between v and u in radians, in [0, pi].
// The atan2 of |v x u| and v.u stays accurate near 0 and pi, where a
// plain acos of the normalized dot product loses precision, and it is
// invariant under positive scaling of either operand.
func (v *Vec3) Angle(u *Vec3) float32 {
	cx := v.Y*u.Z - v.Z*u.Y
	cy := v.Z*u.X - v.X*u.Z
	cz := v.X*u.Y - v.Y*u.X
	sin := math32.Sqrt(cx*cx + cy*cy + cz*cz)
	return math32.Atan2(sin, v.Dot(u))
}

// Lerp stores v + t*(u-v) in dst and returns dst. Values of t outside
// [0, 1] extrapolate.
func (v *Vec3) Lerp(u *Vec3, t float32, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst.X = v.X + t*(u.X-v.X)
	dst.Y = v.Y + t*(u.Y-v.Y)
	dst.Z = v.Z + t*(u.Z-v.Z)
	return dst
}

// Clamp limits each component of v to the range spanned by the
// corresponding components of min and max, storing the result in dst.
func (v *Vec3) Clamp(min, max, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst.X = Clamp(v.X, min.X, max.X)
	dst.Y = Clamp(v.Y, min.Y, max.Y)
	dst.Z = Clamp(v.Z, min.Z, max.Z)
	return dst
}

// Ceil stores the component-wise ceiling of v in dst and returns dst.
func (v *Vec3) Ceil(dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst.X = math32.Ceil(v.X)
	dst.Y = math32.Ceil(v.Y)
	dst.Z = math32.Ceil(v.Z)
	return dst
}

// Floor stores the component-wise floor of v in dst and returns dst.
func (v *Vec3) Floor(dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst.X = math32.Floor(v.X)
	dst.Y = math32.Floor(v.Y)
	dst.Z = math32.Floor(v.Z)
	return dst
}

// Round stores v rounded component-wise to the nearest integer in dst
// and returns dst. Halfway values round away from zero.
func (v *Vec3) Round(dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	dst.X = math32.Round(v.X)
	dst.Y = math32.Round(v.Y)
	dst.Z = math32.Round(v.Z)
	return dst
}

// SetLength stores v rescaled to magnitude l in dst and returns dst.
func (v *Vec3) SetLength(l float32, dst *Vec3) *Vec3 {
	return v.Normalize(dst).Scale(l, dst)
}

// Truncate stores v unchanged in dst if its length is at most max,
// otherwise rescaled down to length max, and returns dst.
func (v *Vec3) Truncate(max float32, dst *Vec3) *Vec3 {
	if v.Length() > max {
		return v.SetLength(max, dst)
	}
	return v.Copy(dst)
}

// Midpoint stores the component-wise average of v and u in dst and
// returns dst.
func (v *Vec3) Midpoint(u *Vec3, dst *Vec3) *Vec3 {
	return v.Lerp(u, 0.5, dst)
}

// RandomVec3 stores a uniformly distributed point on the sphere of
// radius scale in dst and returns dst. The direction comes from a
// uniform z in [-1, 1] and a uniform azimuth, so no rejection loop is
// needed. A nil rng falls back to the package-global source.
func RandomVec3(scale float32, rng *rand.Rand, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	var u, a float32
	if rng != nil {
		u, a = rng.Float32(), rng.Float32()
	} else {
		u, a = rand.Float32(), rand.Float32()
	}
	z := u*2 - 1
	sin, cos := math32.Sincos(a * 2 * math32.Pi)
	r := math32.Sqrt(1 - z*z)
	dst.X = r * cos * scale
	dst.Y = r * sin * scale
	dst.Z = z * scale
	return dst
}

// RotateX rotates the point v about the axis through origin parallel to
// the x axis by rad radians (right-handed), storing the result in dst.
// A zero origin gives a pure axis rotation.
func (v *Vec3) RotateX(origin *Vec3, rad float32, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	ox, oy, oz := origin.X, origin.Y, origin.Z
	px := v.X - ox
	py := v.Y - oy
	pz := v.Z - oz
	sin, cos := math32.Sincos(rad)
	dst.X = px + ox
	dst.Y = py*cos - pz*sin + oy
	dst.Z = py*sin + pz*cos + oz
	return dst
}

// RotateY rotates the point v about the axis through origin parallel to
// the y axis by rad radians (right-handed), storing the result in dst.
func (v *Vec3) RotateY(origin *Vec3, rad float32, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	ox, oy, oz := origin.X, origin.Y, origin.Z
	px := v.X - ox
	py := v.Y - oy
	pz := v.Z - oz
	sin, cos := math32.Sincos(rad)
	dst.X = pz*sin + px*cos + ox
	dst.Y = py + oy
	dst.Z = pz*cos - px*sin + oz
	return dst
}

// RotateZ rotates the point v about the axis through origin parallel to
// the z axis by rad radians (right-handed), storing the result in dst.
func (v *Vec3) RotateZ(origin *Vec3, rad float32, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	ox, oy, oz := origin.X, origin.Y, origin.Z
	px := v.X - ox
	py := v.Y - oy
	pz := v.Z - oz
	sin, cos := math32.Sincos(rad)
	dst.X = px*cos - py*sin + ox
	dst.Y = px*sin + py*cos + oy
	dst.Z = pz + oz
	return dst
}

// TransformMat3 applies the 3x3 linear map m to the direction v,
// storing the result in dst and returning dst.
func (v *Vec3) TransformMat3(m *Mat3, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	x, y, z := v.X, v.Y, v.Z
	dst.X = m[0]*x + m[3]*y + m[6]*z
	dst.Y = m[1]*x + m[4]*y + m[7]*z
	dst.Z = m[2]*x + m[5]*y + m[8]*z
	return dst
}

// TransformMat4 applies the full 4x4 map m to the point v (implicit
// w = 1), including translation and the perspective divide, storing the
// result in dst and returning dst. A computed w of zero is treated as
// one.
func (v *Vec3) TransformMat4(m *Mat4, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	x, y, z := v.X, v.Y, v.Z
	w := m[3]*x + m[7]*y + m[11]*z + m[15]
	if w == 0 {
		w = 1
	}
	dst.X = (m[0]*x + m[4]*y + m[8]*z + m[12]) / w
	dst.Y = (m[1]*x + m[5]*y + m[9]*z + m[13]) / w
	dst.Z = (m[2]*x + m[6]*y + m[10]*z + m[14]) / w
	return dst
}

// TransformMat4Upper3x3 applies only the upper-left 3x3 block of m to
// the direction v, ignoring translation, storing the result in dst and
// returning dst.
func (v *Vec3) TransformMat4Upper3x3(m *Mat4, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	x, y, z := v.X, v.Y, v.Z
	dst.X = m[0]*x + m[4]*y + m[8]*z
	dst.Y = m[1]*x + m[5]*y + m[9]*z
	dst.Z = m[2]*x + m[6]*y + m[10]*z
	return dst
}

// TransformQuat rotates v by the unit quaternion q, storing the result
// in dst and returning dst. Uses v' = v + 2w*(q.xyz x v) +
// 2*(q.xyz x (q.xyz x v)), which preserves |v| for unit q.
func (v *Vec3) TransformQuat(q *Quat, dst *Vec3) *Vec3 {
	if dst == nil {
		dst = &Vec3{}
	}
	qx, qy, qz, qw := q.X, q.Y, q.Z, q.W
	x, y, z := v.X, v.Y, v.Z

	// uv = q.xyz x v
	uvx := qy*z - qz*y
	uvy := qz*x - qx*z
	uvz := qx*y - qy*x

	// uuv = q.xyz x uv
	uuvx := qy*uvz - qz*uvy
	uuvy := qz*uvx - qx*uvz
	uuvz := qx*uvy - qy*uvx

	dst.X = x + 2*(qw*uvx+uuvx)
	dst.Y = y + 2*(qw*uvy+uuvy)
	dst.Z = z + 2*(qw*uvz+uuvz)
	return dst
}
