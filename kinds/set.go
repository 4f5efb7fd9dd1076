// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kinds defines the node kinds of the scene renderer: the
// engine types that props are checked against, and the prop
// [proptypes.Contract] of each node kind. The built-in kinds are
// loaded into [Default] at init; more can be loaded from TOML or
// YAML definition files.
package kinds

import (
	"fmt"
	"slices"

	"cogentcore.org/proptypes/proptypes"
	"cogentcore.org/proptypes/types"
)

// Kind is a named category of scene node with a fixed contract.
type Kind struct {
	// Name is the node kind name used in the scene description (eg: scene).
	Name string

	// Class is the engine class that the node is committed as (eg: THREE.Scene).
	Class string

	// Extends is the name of the kind whose props this kind starts with, if any.
	Extends string

	// Contract is the prop contract of the kind.
	Contract *proptypes.Contract
}

// Set is an ordered set of node kinds along with the registry of the
// types their contracts refer to.
type Set struct {
	// Registry has the nominal types the contracts refer to.
	Registry *types.Registry

	kinds map[string]*Kind
	order []string
}

// NewSet returns a new empty [Set] using the given registry.
func NewSet(reg *types.Registry) *Set {
	return &Set{Registry: reg, kinds: map[string]*Kind{}}
}

// Add adds the given kind. It is an error to add a kind with the
// name of an existing kind, whose class is not a registered type,
// without a contract, or whose contract refers to an unregistered
// nominal type.
func (s *Set) Add(k *Kind) error {
	if _, has := s.kinds[k.Name]; has {
		return fmt.Errorf("kinds.Set.Add: kind %q is already defined", k.Name)
	}
	if k.Class == "" {
		return fmt.Errorf("kinds.Set.Add: kind %q has no class", k.Name)
	}
	if s.Registry.TypeByName(k.Class) == nil {
		return fmt.Errorf("kinds.Set.Add: class %q of kind %q is not a registered type", k.Class, k.Name)
	}
	if k.Contract == nil {
		return fmt.Errorf("kinds.Set.Add: kind %q has no contract", k.Name)
	}
	for _, p := range k.Contract.Props() {
		if p.Type.IsNominal() && s.Registry.TypeByName(p.Type.Name) == nil {
			return fmt.Errorf("kinds.Set.Add: prop %q of kind %q refers to unregistered type %q", p.Name, k.Name, p.Type.Name)
		}
	}
	s.kinds[k.Name] = k
	s.order = append(s.order, k.Name)
	return nil
}

// Kind returns the kind with the given name, or nil.
func (s *Set) Kind(name string) *Kind {
	return s.kinds[name]
}

// KindTry returns the kind with the given name, or an error if not found.
func (s *Set) KindTry(name string) (*Kind, error) {
	k, has := s.kinds[name]
	if !has {
		return nil, fmt.Errorf("node kind %q not found", name)
	}
	return k, nil
}

// Names returns the kind names in the order they were added.
func (s *Set) Names() []string {
	return slices.Clone(s.order)
}
