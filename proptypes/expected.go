// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package proptypes checks the props supplied to a scene node
// against the declared [Contract] of its node kind, producing
// one [Diagnostic] per mismatched prop.
package proptypes

import (
	"cogentcore.org/proptypes/types"
)

// Expected is the declared type of a prop: either a primitive
// kind or a nominal type name in a [types.Registry].
// The zero value expects nothing and is invalid in a [Contract].
type Expected struct {
	// Kind is the expected primitive kind, or [types.Object]
	// for a nominal type.
	Kind types.Kind

	// Name is the expected nominal type name, if Kind is [types.Object].
	Name string
}

// Primitive returns an [Expected] for the given primitive kind.
func Primitive(k types.Kind) Expected {
	return Expected{Kind: k}
}

// Nominal returns an [Expected] for an instance of the given nominal type.
func Nominal(name string) Expected {
	return Expected{Kind: types.Object, Name: name}
}

// ParseExpected returns the [Expected] for a type string as written in
// node kind definitions: a primitive label (string, number, boolean)
// or a nominal type name.
func ParseExpected(s string) Expected {
	if k, ok := types.ParseKind(s); ok {
		return Primitive(k)
	}
	return Nominal(s)
}

// IsNominal returns whether an instance of a nominal type is expected.
func (e Expected) IsNominal() bool {
	return e.Kind == types.Object
}

// IsValid returns whether e is a primitive or a named nominal type.
func (e Expected) IsValid() bool {
	if e.IsNominal() {
		return e.Name != ""
	}
	return e.Kind.IsPrimitive()
}

// Label returns the label of the expected type used in diagnostics.
func (e Expected) Label() string {
	if e.IsNominal() {
		return e.Name
	}
	return e.Kind.String()
}

func (e Expected) String() string {
	if e.IsNominal() {
		return "instance of " + e.Name
	}
	return e.Kind.String()
}
