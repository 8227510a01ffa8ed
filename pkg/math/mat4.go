package math

import "github.com/chewxy/math32"

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
//
// Construct one from an explicit component list with a composite
// literal, written column by column.
type Mat4 [16]float32

// Mat4Identity stores the identity matrix in dst and returns dst.
func Mat4Identity(dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	*dst = Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	return dst
}

// Clone returns a newly allocated copy of m.
func (m *Mat4) Clone() *Mat4 {
	out := *m
	return &out
}

// Copy stores m in dst and returns dst.
func (m *Mat4) Copy(dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	*dst = *m
	return dst
}

// EqualApprox reports whether every component of m is within Epsilon of
// the corresponding component of n.
func (m *Mat4) EqualApprox(n *Mat4) bool {
	for i := range m {
		d := m[i] - n[i]
		if d < -Epsilon || d > Epsilon {
			return false
		}
	}
	return true
}

// Translate stores a translation matrix in dst and returns dst.
func Translate(x, y, z float32, dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	*dst = Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
	return dst
}

// Scale stores a scale matrix in dst and returns dst.
func Scale(x, y, z float32, dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	*dst = Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
	return dst
}

// RotateX stores a rotation matrix of rad radians around the X axis in
// dst and returns dst.
func RotateX(rad float32, dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	s, c := math32.Sincos(rad)
	*dst = Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
	return dst
}

// RotateY stores a rotation matrix of rad radians around the Y axis in
// dst and returns dst.
func RotateY(rad float32, dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	s, c := math32.Sincos(rad)
	*dst = Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
	return dst
}

// RotateZ stores a rotation matrix of rad radians around the Z axis in
// dst and returns dst.
func RotateZ(rad float32, dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	s, c := math32.Sincos(rad)
	*dst = Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	return dst
}

// RotateAxis stores a rotation matrix of rad radians around an
// arbitrary axis in dst and returns dst. axis must be normalized.
func RotateAxis(axis *Vec3, rad float32, dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	s, c := math32.Sincos(rad)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	*dst = Mat4{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
	return dst
}

// Perspective stores a perspective projection matrix in dst and returns
// dst. fovY is in radians, aspect is width/height.
func Perspective(fovY, aspect, near, far float32, dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	f := 1 / math32.Tan(fovY/2)
	nf := 1 / (near - far)

	*dst = Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
	return dst
}

// Ortho stores an orthographic projection matrix in dst and returns
// dst. left, right, bottom, top bound the view volume; near and far
// bound the depth range.
func Ortho(left, right, bottom, top, near, far float32, dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	fn := 1 / (far - near)

	*dst = Mat4{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1,
	}
	return dst
}

// LookAt stores a view matrix looking from eye toward center with the
// given up direction in dst and returns dst.
func LookAt(eye, center, up *Vec3, dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	var f, s, u Vec3
	center.Sub(eye, &f).Normalize(&f)
	f.Cross(up, &s).Normalize(&s)
	s.Cross(&f, &u)

	*dst = Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
	return dst
}

// Mul stores the product m * n in dst and returns dst. Both operands
// are copied before dst is written, so dst may be m or n.
func (m *Mat4) Mul(n, dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	a, b := *m, *n
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			dst[col*4+row] = a[0*4+row]*b[col*4+0] +
				a[1*4+row]*b[col*4+1] +
				a[2*4+row]*b[col*4+2] +
				a[3*4+row]*b[col*4+3]
		}
	}
	return dst
}

// Transpose stores the transpose of m in dst and returns dst.
func (m *Mat4) Transpose(dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	a := *m
	*dst = Mat4{
		a[0], a[4], a[8], a[12],
		a[1], a[5], a[9], a[13],
		a[2], a[6], a[10], a[14],
		a[3], a[7], a[11], a[15],
	}
	return dst
}

// Inverse stores the inverse of m in dst and returns dst. A singular m
// yields the identity matrix.
func (m *Mat4) Inverse(dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	a := *m

	c00 := a[5]*a[10]*a[15] - a[5]*a[11]*a[14] - a[9]*a[6]*a[15] + a[9]*a[7]*a[14] + a[13]*a[6]*a[11] - a[13]*a[7]*a[10]
	c01 := -a[1]*a[10]*a[15] + a[1]*a[11]*a[14] + a[9]*a[2]*a[15] - a[9]*a[3]*a[14] - a[13]*a[2]*a[11] + a[13]*a[3]*a[10]
	c02 := a[1]*a[6]*a[15] - a[1]*a[7]*a[14] - a[5]*a[2]*a[15] + a[5]*a[3]*a[14] + a[13]*a[2]*a[7] - a[13]*a[3]*a[6]
	c03 := -a[1]*a[6]*a[11] + a[1]*a[7]*a[10] + a[5]*a[2]*a[11] - a[5]*a[3]*a[10] - a[9]*a[2]*a[7] + a[9]*a[3]*a[6]

	c10 := -a[4]*a[10]*a[15] + a[4]*a[11]*a[14] + a[8]*a[6]*a[15] - a[8]*a[7]*a[14] - a[12]*a[6]*a[11] + a[12]*a[7]*a[10]
	c11 := a[0]*a[10]*a[15] - a[0]*a[11]*a[14] - a[8]*a[2]*a[15] + a[8]*a[3]*a[14] + a[12]*a[2]*a[11] - a[12]*a[3]*a[10]
	c12 := -a[0]*a[6]*a[15] + a[0]*a[7]*a[14] + a[4]*a[2]*a[15] - a[4]*a[3]*a[14] - a[12]*a[2]*a[7] + a[12]*a[3]*a[6]
	c13 := a[0]*a[6]*a[11] - a[0]*a[7]*a[10] - a[4]*a[2]*a[11] + a[4]*a[3]*a[10] + a[8]*a[2]*a[7] - a[8]*a[3]*a[6]

	c20 := a[4]*a[9]*a[15] - a[4]*a[11]*a[13] - a[8]*a[5]*a[15] + a[8]*a[7]*a[13] + a[12]*a[5]*a[11] - a[12]*a[7]*a[9]
	c21 := -a[0]*a[9]*a[15] + a[0]*a[11]*a[13] + a[8]*a[1]*a[15] - a[8]*a[3]*a[13] - a[12]*a[1]*a[11] + a[12]*a[3]*a[9]
	c22 := a[0]*a[5]*a[15] - a[0]*a[7]*a[13] - a[4]*a[1]*a[15] + a[4]*a[3]*a[13] + a[12]*a[1]*a[7] - a[12]*a[3]*a[5]
	c23 := -a[0]*a[5]*a[11] + a[0]*a[7]*a[9] + a[4]*a[1]*a[11] - a[4]*a[3]*a[9] - a[8]*a[1]*a[7] + a[8]*a[3]*a[5]

	c30 := -a[4]*a[9]*a[14] + a[4]*a[10]*a[13] + a[8]*a[5]*a[14] - a[8]*a[6]*a[13] - a[12]*a[5]*a[10] + a[12]*a[6]*a[9]
	c31 := a[0]*a[9]*a[14] - a[0]*a[10]*a[13] - a[8]*a[1]*a[14] + a[8]*a[2]*a[13] + a[12]*a[1]*a[10] - a[12]*a[2]*a[9]
	c32 := -a[0]*a[5]*a[14] + a[0]*a[6]*a[13] + a[4]*a[1]*a[14] - a[4]*a[2]*a[13] - a[12]*a[1]*a[6] + a[12]*a[2]*a[5]
	c33 := a[0]*a[5]*a[10] - a[0]*a[6]*a[9] - a[4]*a[1]*a[10] + a[4]*a[2]*a[9] + a[8]*a[1]*a[6] - a[8]*a[2]*a[5]

	det := a[0]*c00 + a[4]*c01 + a[8]*c02 + a[12]*c03
	if det == 0 {
		return Mat4Identity(dst)
	}
	inv := 1 / det

	*dst = Mat4{
		c00 * inv, c01 * inv, c02 * inv, c03 * inv,
		c10 * inv, c11 * inv, c12 * inv, c13 * inv,
		c20 * inv, c21 * inv, c22 * inv, c23 * inv,
		c30 * inv, c31 * inv, c32 * inv, c33 * inv,
	}
	return dst
}

// Mat4FromMat3 stores m extended with a zero translation column in dst
// and returns dst.
func Mat4FromMat3(m *Mat3, dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	a := *m
	*dst = Mat4{
		a[0], a[1], a[2], 0,
		a[3], a[4], a[5], 0,
		a[6], a[7], a[8], 0,
		0, 0, 0, 1,
	}
	return dst
}

// Mat4FromQuat stores the rotation matrix of the unit quaternion q in
// dst and returns dst.
func Mat4FromQuat(q *Quat, dst *Mat4) *Mat4 {
	if dst == nil {
		dst = &Mat4{}
	}
	x, y, z, w := q.X, q.Y, q.Z, q.W
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	*dst = Mat4{
		1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0,
		2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0,
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
	return dst
}
