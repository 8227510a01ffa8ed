package math

import (
	"math"
	"testing"
)

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity(nil)
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("identity off-diagonal should be 0")
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := Translate(1, 2, 3, nil)
	got := m.Mul(Mat4Identity(nil), nil)
	if *got != *m {
		t.Errorf("M * I = %v, want %v", *got, *m)
	}
}

func TestMat4Translate(t *testing.T) {
	m := Translate(5, 10, 15, nil)
	// translation lives in the fourth column (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate column = (%v, %v, %v), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestMat4Scale(t *testing.T) {
	m := Scale(2, 3, 4, nil)
	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal = (%v, %v, %v), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestMat4RotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi/2), nil)
	p := NewVec3(1, 0, 0)
	got := p.TransformMat4(m, nil)
	if !vecNear(got, &Vec3{0, 0, -1}, 1e-6) {
		t.Errorf("RotateY 90 applied to x = %v, want {0 0 -1}", *got)
	}
}

func TestMat4RotateAxisMatchesAxisRotations(t *testing.T) {
	const rad = 0.9
	pairs := []struct {
		name  string
		axis  *Vec3
		fixed *Mat4
	}{
		{"x", NewVec3(1, 0, 0), RotateX(rad, nil)},
		{"y", NewVec3(0, 1, 0), RotateY(rad, nil)},
		{"z", NewVec3(0, 0, 1), RotateZ(rad, nil)},
	}
	for _, p := range pairs {
		got := RotateAxis(p.axis, rad, nil)
		if !got.EqualApprox(p.fixed) {
			t.Errorf("RotateAxis %s = %v, want %v", p.name, *got, *p.fixed)
		}
	}
}

func TestMat4MulComposition(t *testing.T) {
	// T * S applied to a point scales first, then translates
	m := Translate(10, 0, 0, nil).Mul(Scale(2, 2, 2, nil), nil)
	v := NewVec3(1, 1, 1)
	got := v.TransformMat4(m, nil)
	if (*got != Vec3{12, 2, 2}) {
		t.Errorf("T*S applied = %v, want {12 2 2}", *got)
	}
	// non-commutative the other way around
	m = Scale(2, 2, 2, nil).Mul(Translate(10, 0, 0, nil), nil)
	got = v.TransformMat4(m, nil)
	if (*got != Vec3{22, 2, 2}) {
		t.Errorf("S*T applied = %v, want {22 2 2}", *got)
	}
}

func TestMat4MulAliasing(t *testing.T) {
	a := Translate(1, 2, 3, nil)
	b := RotateZ(0.5, nil)
	fresh := a.Mul(b, nil)

	x := a.Clone()
	if out := x.Mul(b, x); out != x || *x != *fresh {
		t.Errorf("Mul with dst == a = %v, want %v", *x, *fresh)
	}
	y := b.Clone()
	if out := a.Mul(y, y); *out != *fresh {
		t.Errorf("Mul with dst == b = %v, want %v", *out, *fresh)
	}
	if *a != *Translate(1, 2, 3, nil) {
		t.Error("Mul modified its first operand")
	}
}

func TestMat4Perspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100, nil)
	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero focal elements")
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] = %v, want -1", m[11])
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] = %v, want 0", m[15])
	}
}

func TestMat4Ortho(t *testing.T) {
	m := Ortho(-10, 10, -5, 5, 0.1, 100, nil)
	// center of the volume maps near the origin in x/y
	v := NewVec3(0, 0, -50)
	got := v.TransformMat4(m, nil)
	if !near(got.X, 0, 1e-6) || !near(got.Y, 0, 1e-6) {
		t.Errorf("Ortho center = %v, want x=y=0", *got)
	}
	// corners map to +-1
	corner := NewVec3(10, 5, -50)
	got = corner.TransformMat4(m, nil)
	if !near(got.X, 1, 1e-6) || !near(got.Y, 1, 1e-6) {
		t.Errorf("Ortho corner = %v, want x=y=1", *got)
	}
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(0, 0, 5)
	center := NewVec3(0, 0, 0)
	up := NewVec3(0, 1, 0)
	m := LookAt(eye, center, up, nil)

	if m[15] != 1 {
		t.Errorf("LookAt [15] = %v, want 1", m[15])
	}
	// the eye maps to the origin of view space
	got := eye.TransformMat4(m, nil)
	if !vecNear(got, &Vec3{}, 1e-5) {
		t.Errorf("LookAt applied to eye = %v, want origin", *got)
	}
	// the center lies on the negative z axis in view space
	got = center.TransformMat4(m, nil)
	if !near(got.X, 0, 1e-5) || !near(got.Y, 0, 1e-5) || got.Z >= 0 {
		t.Errorf("LookAt applied to center = %v, want on -z", *got)
	}
}

func TestMat4Transpose(t *testing.T) {
	m := Translate(1, 2, 3, nil)
	got := m.Transpose(nil)
	if got[3] != 1 || got[7] != 2 || got[11] != 3 {
		t.Errorf("Transpose moved translation to %v %v %v, want row 3", got[3], got[7], got[11])
	}
	c := m.Clone()
	if out := c.Transpose(c); *out != *got {
		t.Errorf("Transpose in place = %v, want %v", *out, *got)
	}
}

func TestMat4Inverse(t *testing.T) {
	m := Translate(1, 2, 3, nil).
		Mul(RotateY(0.7, nil), nil).
		Mul(Scale(2, 2, 2, nil), nil)
	inv := m.Inverse(nil)
	got := m.Mul(inv, nil)
	id := Mat4Identity(nil)
	for i := range got {
		if !near(got[i], id[i], 1e-5) {
			t.Errorf("M * M^-1 [%d] = %v, want %v", i, got[i], id[i])
		}
	}

	// singular matrix falls back to identity
	var zero Mat4
	if got := zero.Inverse(nil); *got != *Mat4Identity(nil) {
		t.Errorf("Inverse of singular = %v, want identity", *got)
	}

	// in place
	c := m.Clone()
	if out := c.Inverse(c); *out != *inv {
		t.Errorf("Inverse in place = %v, want %v", *out, *inv)
	}
}

func TestMat4FromMat3(t *testing.T) {
	m3 := &Mat3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	m4 := Mat4FromMat3(m3, nil)
	if m4[0] != 1 || m4[1] != 2 || m4[2] != 3 {
		t.Error("Mat4FromMat3 column 0 incorrect")
	}
	if m4[4] != 4 || m4[5] != 5 || m4[6] != 6 {
		t.Error("Mat4FromMat3 column 1 incorrect")
	}
	if m4[15] != 1 {
		t.Errorf("Mat4FromMat3 [15] = %v, want 1", m4[15])
	}
	// the 3x3 block round-trips
	back := Mat3FromMat4(m4, nil)
	if *back != *m3 {
		t.Errorf("Mat3FromMat4 round trip = %v, want %v", *back, *m3)
	}
}

func TestMat4FromQuatIdentity(t *testing.T) {
	m := Mat4FromQuat(QuatIdentity(nil), nil)
	if !m.EqualApprox(Mat4Identity(nil)) {
		t.Errorf("Mat4FromQuat identity = %v, want identity", *m)
	}
}
