// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proptypes

import "fmt"

// WarningPrefix is the prefix of the developer console line for a
// failed prop type; see [Diagnostic.Warning].
const WarningPrefix = "Warning: Failed propType: "

// Format returns the diagnostic message for the given failed match of
// the given prop of the given owner node. It returns "" for a passing
// result. The message only depends on its inputs.
func Format(owner, prop string, res Result) string {
	if res.OK() {
		return ""
	}
	return message(res.Outcome, owner, prop, res.Actual, res.Expected.Label())
}

func message(o Outcome, owner, prop, actual, expected string) string {
	if o == WrongPrimitive {
		return fmt.Sprintf("Invalid prop `%s` of type `%s` supplied to `%s`, expected `%s`.", prop, actual, owner, expected)
	}
	return fmt.Sprintf("Invalid prop `%s` of type `%s` supplied to `%s`, expected instance of `%s`.", prop, actual, owner, expected)
}

// Diagnostic is one failed prop type check. Diagnostics are
// comparable values: two with equal fields are the same fact.
type Diagnostic struct {
	// Prop is the name of the prop.
	Prop string

	// Owner is the name of the node kind the prop was supplied to.
	Owner string

	// Actual is the label of the supplied value's type.
	Actual string

	// Expected is the label of the expected type.
	Expected string

	// Outcome is the failed outcome.
	Outcome Outcome
}

// NewDiagnostic returns the [Diagnostic] for the given failed match.
func NewDiagnostic(owner, prop string, res Result) Diagnostic {
	return Diagnostic{
		Prop:     prop,
		Owner:    owner,
		Actual:   res.Actual,
		Expected: res.Expected.Label(),
		Outcome:  res.Outcome,
	}
}

// String returns the diagnostic message, as produced by [Format].
func (d Diagnostic) String() string {
	return message(d.Outcome, d.Owner, d.Prop, d.Actual, d.Expected)
}

// Warning returns the developer console line for the diagnostic.
func (d Diagnostic) Warning() string {
	return WarningPrefix + d.String()
}
