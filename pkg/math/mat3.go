package math

// Mat3 is a 3x3 matrix in column-major order: columns occupy indices
// 0-2, 3-5 and 6-8. Construct one from an explicit component list with
// a composite literal, written column by column.
type Mat3 [9]float32

// Mat3Identity stores the identity matrix in dst and returns dst.
func Mat3Identity(dst *Mat3) *Mat3 {
	if dst == nil {
		dst = &Mat3{}
	}
	*dst = Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
	return dst
}

// Clone returns a newly allocated copy of m.
func (m *Mat3) Clone() *Mat3 {
	out := *m
	return &out
}

// Copy stores m in dst and returns dst.
func (m *Mat3) Copy(dst *Mat3) *Mat3 {
	if dst == nil {
		dst = &Mat3{}
	}
	*dst = *m
	return dst
}

// EqualApprox reports whether every component of m is within Epsilon of
// the corresponding component of n.
func (m *Mat3) EqualApprox(n *Mat3) bool {
	for i := range m {
		d := m[i] - n[i]
		if d < -Epsilon || d > Epsilon {
			return false
		}
	}
	return true
}

// Mul stores the product m * n in dst and returns dst. Both operands
// are copied before dst is written, so dst may be m or n.
func (m *Mat3) Mul(n, dst *Mat3) *Mat3 {
	if dst == nil {
		dst = &Mat3{}
	}
	a, b := *m, *n
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			dst[col*3+row] = a[0*3+row]*b[col*3+0] +
				a[1*3+row]*b[col*3+1] +
				a[2*3+row]*b[col*3+2]
		}
	}
	return dst
}

// Transpose stores the transpose of m in dst and returns dst.
func (m *Mat3) Transpose(dst *Mat3) *Mat3 {
	if dst == nil {
		dst = &Mat3{}
	}
	a := *m
	*dst = Mat3{
		a[0], a[3], a[6],
		a[1], a[4], a[7],
		a[2], a[5], a[8],
	}
	return dst
}

// Determinant returns the determinant of m.
func (m *Mat3) Determinant() float32 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[3]*(m[1]*m[8]-m[2]*m[7]) +
		m[6]*(m[1]*m[5]-m[2]*m[4])
}

// Mat3FromMat4 stores the upper-left 3x3 block of m in dst and returns
// dst.
func Mat3FromMat4(m *Mat4, dst *Mat3) *Mat3 {
	if dst == nil {
		dst = &Mat3{}
	}
	*dst = Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
	return dst
}

// Mat3FromQuat stores the rotation matrix of the unit quaternion q in
// dst and returns dst.
func Mat3FromQuat(q *Quat, dst *Mat3) *Mat3 {
	if dst == nil {
		dst = &Mat3{}
	}
	x, y, z, w := q.X, q.Y, q.Z, q.W
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	*dst = Mat3{
		1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy),
		2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx),
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy),
	}
	return dst
}
