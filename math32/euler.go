// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// EulerOrder is the order in which the axis rotations of an [Euler]
// are applied.
type EulerOrder string

const (
	// XYZ applies the X rotation first. It is the default order.
	XYZ EulerOrder = "XYZ"

	// ZYX applies the Z rotation first.
	ZYX EulerOrder = "ZYX"
)

// Euler is a rotation expressed as angles in radians around the
// X, Y and Z axes, applied in the given Order.
// The zero Order is treated as [XYZ].
type Euler struct {
	X     float32
	Y     float32
	Z     float32
	Order EulerOrder
}

// NewEuler returns a new [Euler] with the given angles in the default order.
func NewEuler(x, y, z float32) Euler {
	return Euler{X: x, Y: y, Z: z, Order: XYZ}
}

// Quat returns the quaternion representing the same rotation.
// An error is returned for an unsupported order, in which
// case the identity quaternion is returned.
func (e Euler) Quat() (Quat, error) {
	c1 := Cos(e.X / 2)
	c2 := Cos(e.Y / 2)
	c3 := Cos(e.Z / 2)
	s1 := Sin(e.X / 2)
	s2 := Sin(e.Y / 2)
	s3 := Sin(e.Z / 2)

	switch e.Order {
	case XYZ, "":
		return Quat{
			X: s1*c2*c3 + c1*s2*s3,
			Y: c1*s2*c3 - s1*c2*s3,
			Z: c1*c2*s3 + s1*s2*c3,
			W: c1*c2*c3 - s1*s2*s3,
		}, nil
	case ZYX:
		return Quat{
			X: s1*c2*c3 - c1*s2*s3,
			Y: c1*s2*c3 + s1*c2*s3,
			Z: c1*c2*s3 - s1*s2*c3,
			W: c1*c2*c3 + s1*s2*s3,
		}, nil
	}
	return QuatIdentity(), fmt.Errorf("math32.Euler: unsupported order %q", e.Order)
}

// Vector3 returns the angles as a [Vector3], dropping the order.
func (e Euler) Vector3() Vector3 {
	return Vec3(e.X, e.Y, e.Z)
}
