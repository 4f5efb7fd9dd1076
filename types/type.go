// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"
	"strings"
)

// Type represents a nominal (named, non-primitive) type in a [Registry],
// such as THREE.Vector3.
type Type struct {
	// Name is the fully qualified name of the type (eg: THREE.Vector3).
	// It is also the label used for the type in diagnostics.
	Name string

	// Parent is the name of the parent type, or "" for a root type.
	// It may name a type that has not been registered yet.
	Parent string

	// Instance is an optional instance of the Go type bound to this type
	// through [Registry.Bind].
	Instance any

	// ID is the unique type ID number within its registry,
	// in order of registration.
	ID uint64
}

func (tp *Type) String() string {
	return tp.Name
}

// ShortName returns the name of the type without its
// namespace (eg: Vector3 for THREE.Vector3).
func (tp *Type) ShortName() string {
	li := strings.LastIndex(tp.Name, ".")
	return tp.Name[li+1:]
}

// IsRoot returns whether the type has no parent.
func (tp *Type) IsRoot() bool {
	return tp.Parent == ""
}

// GoString returns a Go-syntax representation of the type,
// omitting any zero values.
func (tp Type) GoString() string {
	strs := []string{fmt.Sprintf("Name: %q", tp.Name)}
	if tp.Parent != "" {
		strs = append(strs, fmt.Sprintf("Parent: %q", tp.Parent))
	}
	if tp.Instance != nil {
		strs = append(strs, fmt.Sprintf("Instance: %T", tp.Instance))
	}
	if tp.ID != 0 {
		strs = append(strs, fmt.Sprintf("ID: %d", tp.ID))
	}
	return "{" + strings.Join(strs, ", ") + "}"
}
