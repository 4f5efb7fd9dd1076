// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFrozen is returned when a frozen [Registry] is modified.
var ErrFrozen = errors.New("types: registry is frozen")

// DuplicateTypeError is returned by [Registry.Register] when
// a type with the same name is already registered.
type DuplicateTypeError struct {
	Name string
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("types: type %q is already registered", e.Name)
}

// CycleError is returned by [Registry.Register] when the new
// parent link would make a type its own ancestor.
type CycleError struct {
	Name string

	// Path is the chain of parent links that leads back to Name,
	// starting and ending with Name.
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("types: registering %q would create a cycle: %s", e.Name, strings.Join(e.Path, " -> "))
}
