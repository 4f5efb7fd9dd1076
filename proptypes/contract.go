// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proptypes

import (
	"fmt"
	"slices"
	"strings"
)

// Prop is one declared prop of a [Contract].
type Prop struct {
	Name string
	Type Expected
}

func (p Prop) String() string {
	return p.Name + ": " + p.Type.String()
}

// Contract is the ordered list of props declared by a node kind,
// with a map from prop names to indexes to support fast lookup.
// Props are checked in declaration order. A Contract is immutable
// once made; use [Contract.Extend] to derive a new one.
type Contract struct {
	props []Prop

	// indexes is the name-to-index mapping.
	indexes map[string]int
}

// NewContract returns a new [Contract] with the given props, in order.
// An error is returned for a duplicate or empty prop name, or an
// invalid expected type.
func NewContract(props ...Prop) (*Contract, error) {
	c := &Contract{indexes: make(map[string]int, len(props))}
	if err := c.add(props); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Contract) add(props []Prop) error {
	for _, p := range props {
		if p.Name == "" {
			return fmt.Errorf("proptypes.Contract: empty prop name")
		}
		if !p.Type.IsValid() {
			return fmt.Errorf("proptypes.Contract: prop %q has an invalid type", p.Name)
		}
		if _, has := c.indexes[p.Name]; has {
			return fmt.Errorf("proptypes.Contract: prop %q is declared more than once", p.Name)
		}
		c.indexes[p.Name] = len(c.props)
		c.props = append(c.props, p)
	}
	return nil
}

// Extend returns a new [Contract] with the props of this contract
// followed by the given props, which must not redeclare any of them.
// This contract is not modified.
func (c *Contract) Extend(props ...Prop) (*Contract, error) {
	nc := &Contract{indexes: make(map[string]int, c.Len()+len(props))}
	if err := nc.add(slices.Concat(c.Props(), props)); err != nil {
		return nil, err
	}
	return nc, nil
}

// Len returns the number of declared props.
func (c *Contract) Len() int {
	if c == nil {
		return 0
	}
	return len(c.props)
}

// Props returns a copy of the declared props, in order.
func (c *Contract) Props() []Prop {
	if c == nil {
		return nil
	}
	return slices.Clone(c.props)
}

// Names returns the declared prop names, in order.
func (c *Contract) Names() []string {
	nms := make([]string, c.Len())
	for i := range nms {
		nms[i] = c.props[i].Name
	}
	return nms
}

// Lookup returns the expected type of the prop with the given name,
// with false returned if it is not declared.
func (c *Contract) Lookup(name string) (Expected, bool) {
	if c == nil {
		return Expected{}, false
	}
	idx, ok := c.indexes[name]
	if !ok {
		return Expected{}, false
	}
	return c.props[idx].Type, true
}

// String returns a string representation of the contract.
func (c *Contract) String() string {
	strs := make([]string, c.Len())
	for i := range strs {
		strs[i] = c.props[i].String()
	}
	return "{" + strings.Join(strs, ", ") + "}"
}
