// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"reflect"
	"slices"
	"sync"

	"cogentcore.org/proptypes/base/errors"
	"cogentcore.org/proptypes/types"
)

// propFields maps prop names to [Object] field indexes.
var propFields = sync.OnceValue(func() map[string]int {
	fields := map[string]int{}
	rt := reflect.TypeFor[Object]()
	for i := range rt.NumField() {
		if tag := rt.Field(i).Tag.Get("prop"); tag != "" {
			fields[tag] = i
		}
	}
	return fields
})

// PropNames returns the sorted names of the props that [Object] has fields for.
func PropNames() []string {
	nms := make([]string, 0, len(propFields()))
	for nm := range propFields() {
		nms = append(nms, nm)
	}
	slices.Sort(nms)
	return nms
}

// SetProp sets the field for the given prop to the given value, and
// returns whether it did. A value that does not fit the field, or a
// prop with no field, is stored in [Object.Extra] instead, so that
// every supplied prop ends up on the object.
func (ob *Object) SetProp(name string, v any) bool {
	if ob.setField(name, v) {
		ob.syncProp(name)
		return true
	}
	if ob.Extra == nil {
		ob.Extra = map[string]any{}
	}
	ob.Extra[name] = v
	return false
}

func (ob *Object) setField(name string, v any) bool {
	idx, ok := propFields()[name]
	if !ok || v == nil {
		return false
	}
	fv := reflect.ValueOf(ob).Elem().Field(idx)
	val := reflect.ValueOf(v)
	switch {
	case val.Type().AssignableTo(fv.Type()):
		fv.Set(val)
	case val.Kind() == reflect.Pointer && !val.IsNil() && val.Elem().Type().AssignableTo(fv.Type()):
		fv.Set(val.Elem())
	case types.KindOf(v) == types.Number && types.KindOf(fv.Interface()) == types.Number:
		fv.Set(val.Convert(fv.Type()))
	default:
		return false
	}
	return true
}

// syncProp updates the fields that depend on the given prop.
func (ob *Object) syncProp(name string) {
	switch name {
	case "rotation":
		q, err := ob.Rotation.Quat()
		if errors.Log(err) == nil {
			ob.Quaternion = q
		}
	case "quaternion":
		ob.Rotation = ob.Quaternion.Euler()
	case "lookAt":
		ob.HasLookAt = true
	}
}
