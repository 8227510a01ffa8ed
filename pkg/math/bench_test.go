package math

import "testing"

func BenchmarkVec3Cross(b *testing.B) {
	v := NewVec3(1, 2, 3)
	u := NewVec3(4, 5, 6)
	var dst Vec3
	for i := 0; i < b.N; i++ {
		v.Cross(u, &dst)
	}
}

func BenchmarkVec3TransformQuat(b *testing.B) {
	q := QuatFromEuler(0.3, 1.1, -0.5, OrderXYZ, nil)
	v := NewVec3(1, 2, 3)
	var dst Vec3
	for i := 0; i < b.N; i++ {
		v.TransformQuat(q, &dst)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m := Translate(1, 2, 3, nil)
	n := RotateY(0.7, nil)
	var dst Mat4
	for i := 0; i < b.N; i++ {
		m.Mul(n, &dst)
	}
}

func BenchmarkMat4Inverse(b *testing.B) {
	m := Translate(1, 2, 3, nil).Mul(RotateY(0.7, nil), nil)
	var dst Mat4
	for i := 0; i < b.N; i++ {
		m.Inverse(&dst)
	}
}
