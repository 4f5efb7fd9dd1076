// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// Registry records nominal types and their parent links, forming
// a forest that answers subtype queries. It is populated once at
// process start and then frozen; it is not safe to register types
// concurrently with queries.
type Registry struct {
	// types is keyed by type name.
	types map[string]*Type

	// order is the type names in registration order.
	order []string

	// bindings maps Go types (non-pointer) to type names.
	bindings map[reflect.Type]string

	// idCounter is incremented for assigning new [Type.ID] numbers.
	idCounter uint64

	frozen bool
}

// Default is the process-wide registry populated by node kind definitions.
var Default = NewRegistry()

// NewRegistry returns a new empty [Registry].
func NewRegistry() *Registry {
	return &Registry{
		types:    map[string]*Type{},
		bindings: map[reflect.Type]string{},
	}
}

// Register adds a new nominal type with the given name and parent
// ("" for a root type) and returns it. The parent does not need to be
// registered yet, but it must be before the registry is frozen.
// It returns a [*DuplicateTypeError] if the name already exists and a
// [*CycleError] if the parent link would make the type its own ancestor.
func (r *Registry) Register(name, parent string) (*Type, error) {
	if r.frozen {
		return nil, fmt.Errorf("%w: cannot register %q", ErrFrozen, name)
	}
	if name == "" {
		return nil, fmt.Errorf("types.Registry.Register: empty type name")
	}
	if _, has := r.types[name]; has {
		return nil, &DuplicateTypeError{Name: name}
	}
	path := []string{name}
	for p := parent; p != ""; {
		path = append(path, p)
		if p == name {
			return nil, &CycleError{Name: name, Path: path}
		}
		pt, has := r.types[p]
		if !has {
			break
		}
		p = pt.Parent
	}
	r.idCounter++
	tp := &Type{Name: name, Parent: parent, ID: r.idCounter}
	r.types[name] = tp
	r.order = append(r.order, name)
	return tp, nil
}

// Bind binds the Go type of the given instance to the registered type
// with the given name, so that values of that Go type (or pointers to it)
// report that nominal type. A Go type can only be bound to one name.
func (r *Registry) Bind(name string, instance any) error {
	if r.frozen {
		return fmt.Errorf("%w: cannot bind %q", ErrFrozen, name)
	}
	tp, has := r.types[name]
	if !has {
		return fmt.Errorf("types.Registry.Bind: type %q is not registered", name)
	}
	rt := nonPointerType(reflect.TypeOf(instance))
	if rt == nil {
		return fmt.Errorf("types.Registry.Bind: nil instance for type %q", name)
	}
	if prev, has := r.bindings[rt]; has && prev != name {
		return fmt.Errorf("types.Registry.Bind: Go type %v is already bound to %q", rt, prev)
	}
	r.bindings[rt] = name
	tp.Instance = instance
	return nil
}

// Clone returns an independent copy of the registry, including its
// bindings and frozen state. Registering types in the copy does not
// affect the original.
func (r *Registry) Clone() *Registry {
	cl := &Registry{
		types:     make(map[string]*Type, len(r.types)),
		order:     slices.Clone(r.order),
		bindings:  maps.Clone(r.bindings),
		idCounter: r.idCounter,
		frozen:    r.frozen,
	}
	for nm, tp := range r.types {
		cp := *tp
		cl.types[nm] = &cp
	}
	return cl
}

// Freeze makes the registry read-only. It fails if any type has a
// parent that was never registered.
func (r *Registry) Freeze() error {
	if un := r.Unresolved(); len(un) > 0 {
		return fmt.Errorf("types.Registry.Freeze: unregistered parent types: %s", strings.Join(un, ", "))
	}
	r.frozen = true
	return nil
}

// Frozen returns whether [Registry.Freeze] has succeeded.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// Unresolved returns the sorted names of parent types that are
// referenced but not registered.
func (r *Registry) Unresolved() []string {
	var un []string
	for _, nm := range r.order {
		p := r.types[nm].Parent
		if p == "" {
			continue
		}
		if _, has := r.types[p]; !has && !slices.Contains(un, p) {
			un = append(un, p)
		}
	}
	slices.Sort(un)
	return un
}

// TypeByName returns the type with the given name, or nil.
func (r *Registry) TypeByName(nm string) *Type {
	return r.types[nm]
}

// TypeByNameTry returns the type with the given name, or an error if not found.
func (r *Registry) TypeByNameTry(nm string) (*Type, error) {
	tp, has := r.types[nm]
	if !has {
		return nil, fmt.Errorf("type %q not found", nm)
	}
	return tp, nil
}

// Names returns the names of all types in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.order)
}

// IsSubtypeOrSelf returns whether the type with the given name is the
// ancestor type or has it as an ancestor. Unknown names are never
// subtypes of anything.
func (r *Registry) IsSubtypeOrSelf(name, ancestor string) bool {
	tp, has := r.types[name]
	if !has {
		return false
	}
	if _, has := r.types[ancestor]; !has {
		return false
	}
	for n := 0; tp != nil && n <= len(r.order); n++ {
		if tp.Name == ancestor {
			return true
		}
		tp = r.types[tp.Parent]
	}
	return false
}

// Root returns the name of the topmost registered ancestor of the type
// with the given name (the type itself for a root), or "" if the type
// is unknown.
func (r *Registry) Root(name string) string {
	tp, has := r.types[name]
	if !has {
		return ""
	}
	for n := 0; n <= len(r.order); n++ {
		pt, has := r.types[tp.Parent]
		if !has {
			break
		}
		tp = pt
	}
	return tp.Name
}

// SameFamily returns whether the two types are both registered and
// share the same root.
func (r *Registry) SameFamily(a, b string) bool {
	ra := r.Root(a)
	return ra != "" && ra == r.Root(b)
}

// NominalOf returns the nominal type name of the given value, and
// whether it has one. The name comes from the [Namer] capability
// if the value implements it, and otherwise from a Go type bound
// with [Registry.Bind]. Primitive values and nil (typed or not) have
// no nominal type.
func (r *Registry) NominalOf(v any) (string, bool) {
	if IsNil(v) || KindOf(v).IsPrimitive() {
		return "", false
	}
	if nm, ok := v.(Namer); ok {
		if tn := nm.TypeName(); tn != "" {
			return tn, true
		}
	}
	name, has := r.bindings[nonPointerType(reflect.TypeOf(v))]
	return name, has
}

// Namer is implemented by values that report their own nominal type name.
type Namer interface {
	TypeName() string
}

// nonPointerType returns a non-pointer version of the given type.
func nonPointerType(typ reflect.Type) reflect.Type {
	if typ == nil {
		return typ
	}
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ
}
