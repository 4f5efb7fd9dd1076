// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proptypes

import (
	"cogentcore.org/proptypes/types"
)

// Outcome is the outcome of matching a value against an [Expected] type.
type Outcome int32

const (
	// Pass means the value has the expected type.
	Pass Outcome = iota

	// WrongPrimitive means a primitive was expected and the value
	// is of another kind.
	WrongPrimitive

	// WrongSubtype means a nominal type was expected and the value
	// is of a nominal type in the same family that is not a subtype
	// of the expected one.
	WrongSubtype

	// WrongKind means a nominal type was expected and the value is
	// a primitive, has no nominal type, or is of an unrelated nominal type.
	WrongKind
)

var outcomeNames = [...]string{"pass", "wrong-primitive", "wrong-subtype", "wrong-kind"}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Result is the result of [Match].
type Result struct {
	Outcome Outcome

	// Actual is the label of the actual value's type.
	Actual string

	// Expected is the expected type.
	Expected Expected
}

// OK returns whether the match passed.
func (r Result) OK() bool {
	return r.Outcome == Pass
}

// Match matches the given actual value against the expected type,
// using the given registry for nominal types. It never panics on
// arbitrary values: values without a discoverable nominal type
// are reported as [WrongKind].
func Match(reg *types.Registry, expected Expected, actual any) Result {
	res := Result{Outcome: Pass, Expected: expected}
	kind := types.KindOf(actual)
	if !expected.IsNominal() {
		if kind != expected.Kind {
			res.Outcome = WrongPrimitive
			res.Actual = kind.String()
		}
		return res
	}
	name, ok := reg.NominalOf(actual)
	switch {
	case !ok:
		res.Outcome = WrongKind
		res.Actual = kind.ClassName()
	case reg.IsSubtypeOrSelf(name, expected.Name):
	case reg.SameFamily(name, expected.Name):
		res.Outcome = WrongSubtype
		res.Actual = name
	default:
		res.Outcome = WrongKind
		res.Actual = name
	}
	return res
}
