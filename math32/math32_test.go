// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-4

func TestVectorLength(t *testing.T) {
	assert.InDelta(t, 5, Vec2(3, 4).Length(), tol)
	assert.InDelta(t, 3, Vec3(1, 2, 2).Length(), tol)
	assert.InDelta(t, 1, Vec3(0, 0, 7).Normal().Length(), tol)
	assert.Equal(t, Vector3{}, Vector3{}.Normal())
	assert.Equal(t, Vec3(1, 2, 3), Vector4FromVector3(Vec3(1, 2, 3), 1).Vector3())
	assert.Equal(t, Vec4(1, 2, 3, 1), Vector4FromVector3(Vec3(1, 2, 3), 1))
}

func TestEulerQuat(t *testing.T) {
	q, err := Euler{}.Quat()
	assert.NoError(t, err)
	assert.True(t, q.IsIdentity())

	for _, order := range []EulerOrder{XYZ, ZYX} {
		q, err = Euler{X: DegToRad(90), Order: order}.Quat()
		assert.NoError(t, err)
		assert.InDelta(t, Sin(Pi/4), q.X, tol)
		assert.InDelta(t, Cos(Pi/4), q.W, tol)
		assert.InDelta(t, 1, q.Length(), tol)
	}

	assert.InDelta(t, 90, RadToDeg(Pi/2), tol)

	q, err = Euler{Order: "QRS"}.Quat()
	assert.Error(t, err)
	assert.True(t, q.IsIdentity())
}

func TestQuatEuler(t *testing.T) {
	e := NewEuler(0.3, -0.2, 0.1)
	q, err := e.Quat()
	assert.NoError(t, err)
	back := q.Euler()
	assert.InDelta(t, e.X, back.X, tol)
	assert.InDelta(t, e.Y, back.Y, tol)
	assert.InDelta(t, e.Z, back.Z, tol)

	q = Quat{}
	q.Normalize()
	assert.True(t, q.IsIdentity())
}

func TestColorHex(t *testing.T) {
	c, err := ParseColorHex("0xffffff")
	assert.NoError(t, err)
	assert.Equal(t, Color{R: 1, G: 1, B: 1}, c)
	assert.Equal(t, uint32(0x336699), ColorHex(0x336699).Hex())

	_, err = ParseColorHex("#12")
	assert.Error(t, err)
}
