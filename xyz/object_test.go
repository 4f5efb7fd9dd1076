// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"cogentcore.org/proptypes/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObject(t *testing.T) {
	sc := NewObject("THREE.Scene")
	assert.Equal(t, "THREE.Scene", sc.TypeName())
	assert.True(t, sc.AutoUpdate)
	assert.True(t, sc.Visible)
	assert.Equal(t, math32.Vector3Scalar(1), sc.Scale)
	assert.True(t, sc.Quaternion.IsIdentity())

	cam := NewObject("THREE.PerspectiveCamera")
	assert.Equal(t, float32(50), cam.Fov)
	assert.Equal(t, float32(2000), cam.Far)

	lt := NewObject("THREE.PointLight")
	assert.Equal(t, float32(1), lt.Intensity)
	assert.Equal(t, float32(2), lt.Decay)
	assert.Equal(t, uint32(0xffffff), lt.Color.Hex())
}

func TestSetProp(t *testing.T) {
	ob := NewObject("THREE.Scene")
	assert.True(t, ob.SetProp("position", math32.Vec3(1, 2, 3)))
	assert.Equal(t, math32.Vec3(1, 2, 3), ob.Position)

	assert.True(t, ob.SetProp("scale", &math32.Vector3{X: 2, Y: 2, Z: 2}))
	assert.Equal(t, math32.Vector3Scalar(2), ob.Scale)

	assert.True(t, ob.SetProp("renderOrder", 5.0))
	assert.Equal(t, 5, ob.RenderOrder)

	assert.True(t, ob.SetProp("fog", NewFog(0xffffff, 1, 100)))
	assert.Equal(t, uint32(0xffffff), ob.Fog.FogColor().Hex())

	assert.True(t, ob.SetProp("name", "root"))
	assert.Equal(t, "root", ob.Name)

	assert.False(t, ob.SetProp("position", math32.Vec2(1, 1)))
	assert.False(t, ob.SetProp("renderOrder", "five"))
	assert.False(t, ob.SetProp("name", 9))
	assert.False(t, ob.SetProp("fog", "0xffffff"))
	assert.False(t, ob.SetProp("unknown", true))
	assert.Equal(t, math32.Vec3(1, 2, 3), ob.Position)
	assert.Equal(t, 5, ob.RenderOrder)
	assert.Equal(t, map[string]any{
		"position":    math32.Vec2(1, 1),
		"renderOrder": "five",
		"name":        9,
		"fog":         "0xffffff",
		"unknown":     true,
	}, ob.Extra)
}

func TestRotationSync(t *testing.T) {
	ob := NewObject("THREE.Group")
	require.True(t, ob.SetProp("rotation", math32.NewEuler(math32.Pi/2, 0, 0)))
	assert.InDelta(t, math32.Sin(math32.Pi/4), ob.Quaternion.X, 1e-5)

	require.True(t, ob.SetProp("quaternion", math32.QuatIdentity()))
	assert.Equal(t, float32(0), ob.Rotation.X)

	require.True(t, ob.SetProp("rotation", math32.Euler{X: 1, Order: "QRS"}))
	assert.True(t, ob.Quaternion.IsIdentity())

	require.True(t, ob.SetProp("lookAt", math32.Vec3(0, 0, -1)))
	assert.True(t, ob.HasLookAt)
}

func TestChildren(t *testing.T) {
	sc := NewObject("THREE.Scene")
	g := NewObject("THREE.Group")
	m := NewObject("THREE.Mesh")
	sc.AddChild(g)
	g.AddChild(m)

	var classes []string
	sc.WalkDown(func(o *Object) bool {
		classes = append(classes, o.Class)
		return true
	})
	assert.Equal(t, []string{"THREE.Scene", "THREE.Group", "THREE.Mesh"}, classes)

	sc.AddChild(m)
	assert.Empty(t, g.Children)
	assert.Same(t, sc, m.Parent)
	assert.True(t, sc.RemoveChild(g))
	assert.False(t, sc.RemoveChild(g))
	assert.Nil(t, g.Parent)

	assert.Contains(t, PropNames(), "renderOrder")
	assert.Contains(t, PropNames(), "target")
}
