// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Quat is quaternion with X,Y,Z and W components.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewQuat returns a new quaternion from the specified components.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// QuatIdentity returns the identity quaternion.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// IsIdentity returns if this is an identity quaternion.
func (q Quat) IsIdentity() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 1
}

// Length returns the length of this quaternion
func (q Quat) Length() float32 {
	return Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize normalizes this quaternion.
func (q *Quat) Normalize() {
	l := q.Length()
	if l == 0 {
		*q = QuatIdentity()
		return
	}
	l = 1 / l
	q.X *= l
	q.Y *= l
	q.Z *= l
	q.W *= l
}

// Euler returns the XYZ ordered [Euler] angles of this rotation.
func (q Quat) Euler() Euler {
	// rotation matrix terms needed for the XYZ decomposition
	m11 := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	m12 := 2 * (q.X*q.Y - q.Z*q.W)
	m13 := 2 * (q.X*q.Z + q.Y*q.W)
	m22 := 1 - 2*(q.X*q.X+q.Z*q.Z)
	m23 := 2 * (q.Y*q.Z - q.X*q.W)
	m32 := 2 * (q.Y*q.Z + q.X*q.W)
	m33 := 1 - 2*(q.X*q.X+q.Y*q.Y)

	e := Euler{Order: XYZ}
	e.Y = Asin(Clamp(m13, -1, 1))
	if Abs(m13) < 0.9999999 {
		e.X = Atan2(-m23, m33)
		e.Z = Atan2(-m12, m11)
	} else {
		e.X = Atan2(m32, m22)
		e.Z = 0
	}
	return e
}
