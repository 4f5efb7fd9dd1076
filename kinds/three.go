// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinds

import (
	"cogentcore.org/proptypes/math32"
	"cogentcore.org/proptypes/types"
	"cogentcore.org/proptypes/xyz"
)

// The family roots of the engine types. A mismatch between two types
// of the same family is reported as a wrong subtype rather than a
// wrong kind.
const (
	// MathFamily is the root of the vector, rotation and color types.
	// It is not an engine class.
	MathFamily = "THREE.Math"

	// FogFamily is the root of the fog types.
	FogFamily = "THREE.Fog"

	// ObjectFamily is the root of the scene object classes.
	ObjectFamily = "THREE.Object3D"
)

// threeTypes are the engine types in registration order, each with
// its parent and an optional Go instance to bind. Scene object classes
// are not bound: [xyz.Object] reports its class through TypeName.
var threeTypes = []struct {
	name, parent string
	instance     any
}{
	{MathFamily, "", nil},
	{"THREE.Vector2", MathFamily, math32.Vector2{}},
	{"THREE.Vector3", MathFamily, math32.Vector3{}},
	{"THREE.Vector4", MathFamily, math32.Vector4{}},
	{"THREE.Euler", MathFamily, math32.Euler{}},
	{"THREE.Quaternion", MathFamily, math32.Quat{}},
	{"THREE.Color", MathFamily, math32.Color{}},

	{FogFamily, "", xyz.Fog{}},
	{"THREE.FogExp2", FogFamily, xyz.FogExp2{}},

	{ObjectFamily, "", nil},
	{"THREE.Scene", ObjectFamily, nil},
	{"THREE.Group", ObjectFamily, nil},
	{"THREE.Mesh", ObjectFamily, nil},
	{"THREE.Camera", ObjectFamily, nil},
	{"THREE.PerspectiveCamera", "THREE.Camera", nil},
	{"THREE.OrthographicCamera", "THREE.Camera", nil},
	{"THREE.Light", ObjectFamily, nil},
	{"THREE.AmbientLight", "THREE.Light", nil},
	{"THREE.DirectionalLight", "THREE.Light", nil},
	{"THREE.PointLight", "THREE.Light", nil},
}

// RegisterThree registers the engine types in the given registry and
// binds the Go types that represent them.
func RegisterThree(reg *types.Registry) error {
	for _, tp := range threeTypes {
		if _, err := reg.Register(tp.name, tp.parent); err != nil {
			return err
		}
		if tp.instance == nil {
			continue
		}
		if err := reg.Bind(tp.name, tp.instance); err != nil {
			return err
		}
	}
	return nil
}
