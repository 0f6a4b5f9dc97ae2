// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package vmath

import "github.com/chewxy/math32"

// Mat4 is a 4x4 column-major matrix.
type Mat4 [16]float32

// Identity4 returns the identity matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a translation matrix.
func Translation(x, y, z float32) Mat4 {
	m := Identity4()
	m[12], m[13], m[14] = x, y, z
	return m
}

// RotationQuat returns the rotation matrix for the unit quaternion q.
func RotationQuat(q Quat) Mat4 {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z

	return Mat4{
		1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0,
		2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0,
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}

// Pose returns the matrix that rotates by rot and then translates by pos.
func Pose(pos Vec3, rot Quat) Mat4 {
	m := RotationQuat(rot)
	m[12], m[13], m[14] = pos.X, pos.Y, pos.Z
	return m
}

// Frustum returns a perspective projection for the given clip planes,
// mapping depth to the [0, 1] range used by WebGPU.
func Frustum(left, right, bottom, top, near, far float32) Mat4 {
	dx := right - left
	dy := top - bottom
	dz := far - near

	return Mat4{
		2 * near / dx, 0, 0, 0,
		0, 2 * near / dy, 0, 0,
		(right + left) / dx, (top + bottom) / dy, -far / dz, -1,
		0, 0, -far * near / dz, 0,
	}
}

// Perspective returns a symmetric perspective projection.
// vfov is the vertical field of view in radians.
func Perspective(vfov, aspect, near, far float32) Mat4 {
	top := near * math32.Tan(vfov*0.5)
	right := top * aspect
	return Frustum(-right, right, -top, top, near, far)
}

// Mul returns m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * n[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// Translate returns m followed by a translation.
func (m Mat4) Translate(x, y, z float32) Mat4 {
	return Translation(x, y, z).Mul(m)
}

// Position returns the translation part of m.
func (m Mat4) Position() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// TransformPoint applies m to the point p (w = 1).
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
	}
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			r[row*4+col] = m[col*4+row]
		}
	}
	return r
}

// InverseRigid returns the inverse of a matrix composed only of a rotation
// and a translation. It is cheaper and more stable than a general inverse,
// and is what view matrices built from tracked poses need.
func (m Mat4) InverseRigid() Mat4 {
	r := Mat4{
		m[0], m[4], m[8], 0,
		m[1], m[5], m[9], 0,
		m[2], m[6], m[10], 0,
		0, 0, 0, 1,
	}
	t := r.TransformPoint(m.Position())
	r[12], r[13], r[14] = -t.X, -t.Y, -t.Z
	return r
}

// ApproxEqual reports whether every element of m and n differs by at most eps.
func (m Mat4) ApproxEqual(n Mat4, eps float32) bool {
	for i := range m {
		if math32.Abs(m[i]-n[i]) > eps {
			return false
		}
	}
	return true
}
