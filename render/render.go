// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render commits scene nodes to engine-facing [xyz.Object]s,
// checking their props against the contracts of their node kinds on
// the way. Prop type diagnostics never prevent a commit.
package render

import (
	"log/slog"
	"maps"
	"slices"

	"cogentcore.org/proptypes/diag"
	"cogentcore.org/proptypes/kinds"
	"cogentcore.org/proptypes/proptypes"
	"cogentcore.org/proptypes/xyz"
	"github.com/jinzhu/copier"
)

// Renderer commits scene nodes of the kinds in its set.
type Renderer struct {
	// Kinds is the set of node kinds that can be committed.
	Kinds *kinds.Set

	// Validator checks the props of each committed node.
	Validator proptypes.Validator

	// protos has the default object of each kind, keyed by kind name.
	protos map[string]*xyz.Object
}

// NewRenderer returns a new [Renderer] for the given set of kinds,
// reporting diagnostics to the given sink. Nil arguments select
// [kinds.Default] and [diag.Default].
func NewRenderer(set *kinds.Set, sink *diag.Sink) *Renderer {
	if set == nil {
		set = kinds.Default
	}
	if sink == nil {
		sink = diag.Default
	}
	return &Renderer{
		Kinds:     set,
		Validator: proptypes.Validator{Registry: set.Registry, Reporter: sink},
		protos:    map[string]*xyz.Object{},
	}
}

// Commit checks the given props of a node of the given kind, reporting
// any diagnostics, and then commits the node: it returns a new object
// with the defaults of the kind's class and every supplied prop applied
// (see [xyz.Object.SetProp]), added as the last child of the given
// parent if it is non-nil. Declared props are applied in contract
// order, followed by the undeclared ones in sorted order.
// The only error is for an unknown kind.
func (r *Renderer) Commit(parent *xyz.Object, kind string, props map[string]any) (*xyz.Object, error) {
	k, err := r.Kinds.KindTry(kind)
	if err != nil {
		return nil, err
	}
	diags := r.Validator.Check(k.Name, k.Contract, props)

	ob := &xyz.Object{}
	if err := copier.CopyWithOption(ob, r.proto(k), copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	ob.Kind = k.Name
	for _, nm := range k.Contract.Names() {
		if v, has := props[nm]; has {
			ob.SetProp(nm, v)
		}
	}
	for _, nm := range slices.Sorted(maps.Keys(props)) {
		if _, declared := k.Contract.Lookup(nm); !declared {
			ob.SetProp(nm, props[nm])
		}
	}
	if parent != nil {
		parent.AddChild(ob)
	}
	slog.Debug("render: committed node", "kind", k.Name, "class", ob.Class, "diagnostics", len(diags))
	return ob, nil
}

// proto returns the default object for the given kind.
func (r *Renderer) proto(k *kinds.Kind) *xyz.Object {
	if p, has := r.protos[k.Name]; has {
		return p
	}
	if r.protos == nil {
		r.protos = map[string]*xyz.Object{}
	}
	p := xyz.NewObject(k.Class)
	r.protos[k.Name] = p
	return p
}
