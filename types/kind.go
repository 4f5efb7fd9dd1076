// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "reflect"

// Kind is the primitive kind of a value.
type Kind int32

const (
	// Invalid is the kind of a nil value.
	Invalid Kind = iota

	// String is the kind of all Go string types.
	String

	// Number is the kind of all Go integer and floating point types.
	Number

	// Boolean is the kind of all Go bool types.
	Boolean

	// Object is the kind of every other non-nil value.
	Object
)

var kindLabels = [...]string{"undefined", "string", "number", "boolean", "object"}

var kindClassNames = [...]string{"Undefined", "String", "Number", "Boolean", "Object"}

// String returns the lowercase label of the kind (eg: number),
// used when a primitive is expected.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindLabels) {
		return kindLabels[Invalid]
	}
	return kindLabels[k]
}

// ClassName returns the capitalized class label of the kind
// (eg: String), used when an instance of a nominal type is expected.
func (k Kind) ClassName() string {
	if k < 0 || int(k) >= len(kindClassNames) {
		return kindClassNames[Invalid]
	}
	return kindClassNames[k]
}

// IsPrimitive returns whether the kind is [String], [Number] or [Boolean].
func (k Kind) IsPrimitive() bool {
	return k == String || k == Number || k == Boolean
}

// ParseKind returns the primitive kind with the given lowercase label.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "string":
		return String, true
	case "number":
		return Number, true
	case "boolean", "bool":
		return Boolean, true
	}
	return Invalid, false
}

// KindOf returns the kind of the given value. Pointers are not
// dereferenced: a pointer to a number is an [Object].
func KindOf(v any) Kind {
	if v == nil {
		return Invalid
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.String:
		return String
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return Number
	case reflect.Bool:
		return Boolean
	}
	return Object
}

// IsNil returns whether the given value is nil, including a typed
// nil such as a nil pointer stored in an interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
