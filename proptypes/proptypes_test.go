// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proptypes

import (
	"testing"

	"cogentcore.org/proptypes/base/errors"
	"cogentcore.org/proptypes/math32"
	"cogentcore.org/proptypes/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fog struct{ Near, Far float32 }

type opaque struct{}

type node struct{ class string }

func (n *node) TypeName() string { return n.class }

func testRegistry(t *testing.T) *types.Registry {
	r := types.NewRegistry()
	for _, tp := range []struct {
		name, parent string
		instance     any
	}{
		{"THREE.Math", "", nil},
		{"THREE.Vector2", "THREE.Math", math32.Vector2{}},
		{"THREE.Vector3", "THREE.Math", math32.Vector3{}},
		{"THREE.Euler", "THREE.Math", math32.Euler{}},
		{"THREE.Quaternion", "THREE.Math", math32.Quat{}},
		{"THREE.Fog", "", fog{}},
	} {
		_, err := r.Register(tp.name, tp.parent)
		require.NoError(t, err)
		if tp.instance != nil {
			require.NoError(t, r.Bind(tp.name, tp.instance))
		}
	}
	require.NoError(t, r.Freeze())
	return r
}

func sceneContract(t *testing.T) *Contract {
	c, err := NewContract(
		Prop{"position", Nominal("THREE.Vector3")},
		Prop{"rotation", Nominal("THREE.Euler")},
		Prop{"quaternion", Nominal("THREE.Quaternion")},
		Prop{"fog", Nominal("THREE.Fog")},
		Prop{"renderOrder", Primitive(types.Number)},
		Prop{"name", Primitive(types.String)},
	)
	require.NoError(t, err)
	return c
}

func TestMatch(t *testing.T) {
	r := testRegistry(t)
	tests := []struct {
		name     string
		expected Expected
		actual   any
		want     Result
	}{
		{"number", Primitive(types.Number), 5, Result{Outcome: Pass}},
		{"string", Primitive(types.String), "scene", Result{Outcome: Pass}},
		{"boolean", Primitive(types.Boolean), true, Result{Outcome: Pass}},
		{"string for number", Primitive(types.Number), "five", Result{Outcome: WrongPrimitive, Actual: "string"}},
		{"number for string", Primitive(types.String), 9, Result{Outcome: WrongPrimitive, Actual: "number"}},
		{"object for boolean", Primitive(types.Boolean), math32.Vector3{}, Result{Outcome: WrongPrimitive, Actual: "object"}},
		{"self", Nominal("THREE.Vector3"), math32.Vector3{}, Result{Outcome: Pass}},
		{"pointer self", Nominal("THREE.Vector3"), &math32.Vector3{}, Result{Outcome: Pass}},
		{"ancestor", Nominal("THREE.Math"), math32.Euler{}, Result{Outcome: Pass}},
		{"sibling", Nominal("THREE.Vector3"), math32.Vector2{}, Result{Outcome: WrongSubtype, Actual: "THREE.Vector2"}},
		{"other family", Nominal("THREE.Fog"), math32.Vector2{}, Result{Outcome: WrongKind, Actual: "THREE.Vector2"}},
		{"string for nominal", Nominal("THREE.Fog"), "0xffffff", Result{Outcome: WrongKind, Actual: "String"}},
		{"number for nominal", Nominal("THREE.Euler"), 1.5, Result{Outcome: WrongKind, Actual: "Number"}},
		{"unbound object", Nominal("THREE.Euler"), opaque{}, Result{Outcome: WrongKind, Actual: "Object"}},
		{"unknown expected", Nominal("THREE.Color"), math32.Vector2{}, Result{Outcome: WrongKind, Actual: "THREE.Vector2"}},
		{"named node", Nominal("THREE.Math"), &node{class: "THREE.Vector3"}, Result{Outcome: Pass}},
		{"nil named node", Nominal("THREE.Fog"), (*node)(nil), Result{Outcome: WrongKind, Actual: "Object"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want.Expected = tt.expected
			assert.Equal(t, tt.want, Match(r, tt.expected, tt.actual))
		})
	}
}

func TestFormat(t *testing.T) {
	r := testRegistry(t)
	assert.Equal(t, "", Format("scene", "name", Match(r, Primitive(types.String), "x")))
	assert.Equal(t, "Invalid prop `renderOrder` of type `string` supplied to `scene`, expected `number`.",
		Format("scene", "renderOrder", Match(r, Primitive(types.Number), "five")))
	assert.Equal(t, "Invalid prop `position` of type `THREE.Vector2` supplied to `scene`, expected instance of `THREE.Vector3`.",
		Format("scene", "position", Match(r, Nominal("THREE.Vector3"), math32.Vector2{})))
	assert.Equal(t, "Invalid prop `fog` of type `String` supplied to `scene`, expected instance of `THREE.Fog`.",
		Format("scene", "fog", Match(r, Nominal("THREE.Fog"), "0xffffff")))

	d := NewDiagnostic("scene", "name", Match(r, Primitive(types.String), 9))
	assert.Equal(t, Diagnostic{Prop: "name", Owner: "scene", Actual: "number", Expected: "string", Outcome: WrongPrimitive}, d)
	assert.Equal(t, "Invalid prop `name` of type `number` supplied to `scene`, expected `string`.", d.String())
	assert.Equal(t, "Warning: Failed propType: "+d.String(), d.Warning())
}

func TestValidateValid(t *testing.T) {
	r := testRegistry(t)
	diags := Validate(r, "scene", sceneContract(t), map[string]any{
		"position":   math32.Vector3{},
		"rotation":   math32.Euler{},
		"quaternion": math32.Quat{},
	})
	assert.Empty(t, diags)
}

func TestValidateAllInvalid(t *testing.T) {
	r := testRegistry(t)
	supplied := map[string]any{
		"name":        9,
		"renderOrder": "five",
		"fog":         "0xffffff",
		"quaternion":  math32.Euler{},
		"rotation":    math32.Vector3{},
		"position":    math32.Vector2{},
		"undeclared":  "ignored",
	}
	want := []string{
		"Invalid prop `position` of type `THREE.Vector2` supplied to `scene`, expected instance of `THREE.Vector3`.",
		"Invalid prop `rotation` of type `THREE.Vector3` supplied to `scene`, expected instance of `THREE.Euler`.",
		"Invalid prop `quaternion` of type `THREE.Euler` supplied to `scene`, expected instance of `THREE.Quaternion`.",
		"Invalid prop `fog` of type `String` supplied to `scene`, expected instance of `THREE.Fog`.",
		"Invalid prop `renderOrder` of type `string` supplied to `scene`, expected `number`.",
		"Invalid prop `name` of type `number` supplied to `scene`, expected `string`.",
	}
	for range 3 {
		diags := Validate(r, "scene", sceneContract(t), supplied)
		got := make([]string, len(diags))
		for i, d := range diags {
			got[i] = d.String()
		}
		assert.Equal(t, want, got)
	}
}

func TestValidateAbsent(t *testing.T) {
	r := testRegistry(t)
	diags := Validate(r, "scene", sceneContract(t), map[string]any{"name": nil, "other": 3})
	assert.Empty(t, diags)
	assert.Empty(t, Validate(r, "scene", nil, map[string]any{"name": 9}))

	var position *math32.Vector3
	diags = Validate(r, "scene", sceneContract(t), map[string]any{"position": position, "fog": (*node)(nil)})
	assert.Empty(t, diags)
}

type recorder []Diagnostic

func (r *recorder) Report(d Diagnostic) { *r = append(*r, d) }

func TestValidator(t *testing.T) {
	var rec recorder
	v := &Validator{Registry: testRegistry(t), Reporter: &rec}
	diags := v.Check("scene", sceneContract(t), map[string]any{"name": 9, "renderOrder": 2})
	require.Len(t, diags, 1)
	assert.Equal(t, []Diagnostic(rec), diags)

	var zero Validator
	assert.Len(t, zero.Check("scene", sceneContract(t), map[string]any{"name": 9}), 1)
}

func TestContract(t *testing.T) {
	c := sceneContract(t)
	assert.Equal(t, 6, c.Len())
	assert.Equal(t, []string{"position", "rotation", "quaternion", "fog", "renderOrder", "name"}, c.Names())

	e, ok := c.Lookup("fog")
	assert.True(t, ok)
	assert.Equal(t, Nominal("THREE.Fog"), e)
	_, ok = c.Lookup("color")
	assert.False(t, ok)

	ext, err := c.Extend(Prop{"visible", Primitive(types.Boolean)})
	require.NoError(t, err)
	assert.Equal(t, 7, ext.Len())
	assert.Equal(t, 6, c.Len())
	assert.Equal(t, "visible", ext.Names()[6])

	_, err = c.Extend(Prop{"name", Primitive(types.String)})
	assert.Error(t, err)
	_, err = NewContract(Prop{"", Primitive(types.String)})
	assert.Error(t, err)
	_, err = NewContract(Prop{"x", Expected{}})
	assert.Error(t, err)
	_, err = NewContract(Prop{"x", Nominal("")})
	assert.Error(t, err)

	props := c.Props()
	props[0].Name = "changed"
	assert.Equal(t, "position", c.Names()[0])
	assert.Equal(t, "{renderOrder: number, fog: instance of THREE.Fog}",
		errors.Must1(NewContract(Prop{"renderOrder", Primitive(types.Number)}, Prop{"fog", Nominal("THREE.Fog")})).String())
}

func TestParseExpected(t *testing.T) {
	assert.Equal(t, Primitive(types.Number), ParseExpected("number"))
	assert.Equal(t, Nominal("THREE.Fog"), ParseExpected("THREE.Fog"))
	assert.Equal(t, "number", ParseExpected("number").Label())
	assert.Equal(t, "THREE.Fog", ParseExpected("THREE.Fog").Label())
	assert.Equal(t, "wrong-subtype", WrongSubtype.String())
}
