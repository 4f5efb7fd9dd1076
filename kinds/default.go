// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinds

import (
	_ "embed"

	"cogentcore.org/proptypes/base/errors"
	"cogentcore.org/proptypes/types"
)

//go:embed builtin.toml
var builtinTOML []byte

// Default is the set of built-in node kinds, using [types.Default],
// which is frozen once they are loaded.
var Default = NewSet(types.Default)

func init() {
	errors.Must(LoadBuiltin(Default))
	errors.Must(types.Default.Freeze())
}

// LoadBuiltin registers the engine types (see [RegisterThree]) in the
// registry of the given set and adds the built-in node kinds to it.
func LoadBuiltin(s *Set) error {
	if err := RegisterThree(s.Registry); err != nil {
		return err
	}
	return s.LoadTOML(builtinTOML)
}
