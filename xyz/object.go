// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz provides the engine-facing objects that committed scene
// nodes are applied to.
package xyz

import (
	"strings"

	"cogentcore.org/proptypes/math32"
)

// Object is the engine-facing representation of a committed scene node.
// Fields with a prop tag are set from the node's props by [Object.SetProp];
// the defaults come from [NewObject].
type Object struct {

	// Class is the engine class of the object (eg: THREE.Scene),
	// which is also its nominal type name.
	Class string

	// Kind is the node kind the object was committed from (eg: scene).
	Kind string

	Name string `prop:"name"`

	Position math32.Vector3 `prop:"position"`

	// Rotation and Quaternion are kept in sync: setting one sets the other.
	Rotation math32.Euler `prop:"rotation"`

	Quaternion math32.Quat `prop:"quaternion"`

	Scale math32.Vector3 `prop:"scale"`

	Up math32.Vector3 `prop:"up"`

	// LookAt is the point the object faces, if HasLookAt.
	LookAt math32.Vector3 `prop:"lookAt"`

	HasLookAt bool

	RenderOrder int `prop:"renderOrder"`

	Visible bool `prop:"visible"`

	CastShadow bool `prop:"castShadow"`

	ReceiveShadow bool `prop:"receiveShadow"`

	FrustumCulled bool `prop:"frustumCulled"`

	// Fog is the fog of a scene.
	Fog Fogger `prop:"fog"`

	// AutoUpdate is whether a scene updates its world matrices automatically.
	AutoUpdate bool `prop:"autoUpdate"`

	// camera props
	Fov    float32 `prop:"fov"`
	Aspect float32 `prop:"aspect"`
	Near   float32 `prop:"near"`
	Far    float32 `prop:"far"`
	Left   float32 `prop:"left"`
	Right  float32 `prop:"right"`
	Top    float32 `prop:"top"`
	Bottom float32 `prop:"bottom"`

	// light props
	Color     math32.Color `prop:"color"`
	Intensity float32      `prop:"intensity"`
	Distance  float32      `prop:"distance"`
	Decay     float32      `prop:"decay"`
	Target    *Object      `prop:"target" copier:"-"`

	// Extra has the supplied props that could not be applied to a field,
	// because the object has no such field or the value does not fit it.
	Extra map[string]any

	Parent *Object `copier:"-"`

	Children []*Object `copier:"-"`
}

// NewObject returns a new [Object] of the given class with the
// engine defaults for that class.
func NewObject(class string) *Object {
	ob := &Object{
		Class:         class,
		Quaternion:    math32.QuatIdentity(),
		Rotation:      math32.Euler{Order: math32.XYZ},
		Scale:         math32.Vector3Scalar(1),
		Up:            math32.Vec3(0, 1, 0),
		Visible:       true,
		FrustumCulled: true,
	}
	switch {
	case class == "THREE.Scene":
		ob.AutoUpdate = true
	case class == "THREE.PerspectiveCamera":
		ob.Fov, ob.Aspect, ob.Near, ob.Far = 50, 1, 0.1, 2000
	case class == "THREE.OrthographicCamera":
		ob.Left, ob.Right, ob.Top, ob.Bottom = -1, 1, 1, -1
		ob.Near, ob.Far = 0.1, 2000
	case strings.HasSuffix(class, "Light"):
		ob.Color = math32.ColorHex(0xffffff)
		ob.Intensity = 1
		if class == "THREE.PointLight" {
			ob.Decay = 2
		}
	}
	return ob
}

// TypeName returns the engine class, so that objects can be
// supplied as props expecting an instance of an engine class.
// A nil object has no class.
func (ob *Object) TypeName() string {
	if ob == nil {
		return ""
	}
	return ob.Class
}

// AddChild adds the given object as the last child of this object,
// removing it from its previous parent.
func (ob *Object) AddChild(child *Object) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = ob
	ob.Children = append(ob.Children, child)
}

// RemoveChild removes the given child, returning false if it
// is not a child of this object.
func (ob *Object) RemoveChild(child *Object) bool {
	for i, c := range ob.Children {
		if c == child {
			ob.Children = append(ob.Children[:i], ob.Children[i+1:]...)
			child.Parent = nil
			return true
		}
	}
	return false
}

// WalkDown calls the given function on this object and all of its
// descendants in depth-first order, skipping the descendants of any
// object for which the function returns false.
func (ob *Object) WalkDown(fun func(o *Object) bool) {
	if !fun(ob) {
		return
	}
	for _, c := range ob.Children {
		c.WalkDown(fun)
	}
}
