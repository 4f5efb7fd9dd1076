// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proptypes

import (
	"cogentcore.org/proptypes/types"
)

// Validate checks the supplied props of the given owner node against
// the contract, in the contract's declaration order, and returns one
// [Diagnostic] per mismatched prop. Declared props that are not
// supplied (or are nil, including typed nil pointers) are skipped, as are supplied props that are
// not declared.
func Validate(reg *types.Registry, owner string, c *Contract, supplied map[string]any) []Diagnostic {
	var diags []Diagnostic
	for i := range c.Len() {
		p := c.props[i]
		v, has := supplied[p.Name]
		if !has || types.IsNil(v) {
			continue
		}
		res := Match(reg, p.Type, v)
		if res.OK() {
			continue
		}
		diags = append(diags, NewDiagnostic(owner, p.Name, res))
	}
	return diags
}

// Reporter receives the diagnostics found by a [Validator].
type Reporter interface {
	Report(d Diagnostic)
}

// Validator runs [Validate] against a registry and sends every
// diagnostic to a [Reporter]. Its zero value uses [types.Default]
// and discards diagnostics.
type Validator struct {
	// Registry is the registry of nominal types; nil means [types.Default].
	Registry *types.Registry

	// Reporter receives the diagnostics; it may be nil.
	Reporter Reporter
}

// Check validates the supplied props of the given owner node,
// reports each diagnostic, and returns them. It never fails:
// the caller proceeds with the node regardless of the result.
func (v *Validator) Check(owner string, c *Contract, supplied map[string]any) []Diagnostic {
	reg := v.Registry
	if reg == nil {
		reg = types.Default
	}
	diags := Validate(reg, owner, c, supplied)
	if v.Reporter != nil {
		for _, d := range diags {
			v.Reporter.Report(d)
		}
	}
	return diags
}
