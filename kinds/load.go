// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kinds

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/proptypes/proptypes"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/iancoleman/strcase"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Definitions is the content of a node kind definition file.
type Definitions struct {
	// Types are nominal types to register before the kinds are added.
	Types []TypeDef `toml:"types" yaml:"types"`

	// Kinds are the node kinds, in order; a kind can only extend
	// a kind defined before it.
	Kinds []KindDef `toml:"kinds" yaml:"kinds"`
}

// TypeDef defines a nominal type.
type TypeDef struct {
	Name   string `toml:"name" yaml:"name"`
	Parent string `toml:"parent" yaml:"parent"`
}

// KindDef defines a node kind.
type KindDef struct {
	Name    string    `toml:"name" yaml:"name"`
	Class   string    `toml:"class" yaml:"class"`
	Extends string    `toml:"extends" yaml:"extends"`
	Props   []PropDef `toml:"props" yaml:"props"`
}

// PropDef defines a prop of a node kind. Type is a primitive label
// (string, number, boolean) or a nominal type name. Name is converted
// to lower camel case, so render_order and render-order are renderOrder.
type PropDef struct {
	Name string `toml:"name" yaml:"name"`
	Type string `toml:"type" yaml:"type"`
}

// suggestThreshold is the minimum similarity for a registered type
// name to be suggested in place of an unknown one.
const suggestThreshold = 0.6

// Load loads the definitions in the given TOML (.toml) or YAML
// (.yaml, .yml) file into the set. A leading ~ in the path is
// expanded to the home directory.
func (s *Set) Load(path string) error {
	fpath, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(fpath)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(fpath)); ext {
	case ".toml":
		err = s.LoadTOML(data)
	case ".yaml", ".yml":
		err = s.LoadYAML(data)
	default:
		return fmt.Errorf("kinds.Set.Load: unsupported definition file extension %q", ext)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadTOML loads the given TOML definitions into the set.
func (s *Set) LoadTOML(data []byte) error {
	var defs Definitions
	if err := toml.Unmarshal(data, &defs); err != nil {
		return err
	}
	return s.Apply(&defs)
}

// LoadYAML loads the given YAML definitions into the set.
func (s *Set) LoadYAML(data []byte) error {
	var defs Definitions
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return err
	}
	return s.Apply(&defs)
}

// Apply registers the types and adds the kinds of the given definitions.
// The definitions are applied to a copy of the set first, so that on
// error neither the set nor its registry is changed.
func (s *Set) Apply(defs *Definitions) error {
	staged := &Set{Registry: s.Registry.Clone(), kinds: maps.Clone(s.kinds), order: slices.Clone(s.order)}
	if err := staged.apply(defs); err != nil {
		return err
	}
	for _, td := range defs.Types {
		if _, err := s.Registry.Register(td.Name, td.Parent); err != nil {
			return err
		}
	}
	s.kinds, s.order = staged.kinds, staged.order
	return nil
}

// apply does the work of [Set.Apply], stopping at the first error.
func (s *Set) apply(defs *Definitions) error {
	for _, td := range defs.Types {
		if _, err := s.Registry.Register(td.Name, td.Parent); err != nil {
			return err
		}
	}
	for _, kd := range defs.Kinds {
		k, err := s.makeKind(kd)
		if err != nil {
			return err
		}
		if err := s.Add(k); err != nil {
			return err
		}
	}
	return nil
}

func (s *Set) makeKind(kd KindDef) (*Kind, error) {
	if kd.Name == "" {
		return nil, fmt.Errorf("kind with no name")
	}
	props := make([]proptypes.Prop, len(kd.Props))
	for i, pd := range kd.Props {
		p := proptypes.Prop{Name: strcase.ToLowerCamel(pd.Name), Type: proptypes.ParseExpected(pd.Type)}
		if p.Type.IsNominal() && s.Registry.TypeByName(p.Type.Name) == nil {
			return nil, fmt.Errorf("prop %q of kind %q has unknown type %q%s", p.Name, kd.Name, pd.Type, s.suggest(pd.Type))
		}
		props[i] = p
	}
	k := &Kind{Name: kd.Name, Class: kd.Class, Extends: kd.Extends}
	var err error
	if kd.Extends != "" {
		base := s.Kind(kd.Extends)
		if base == nil {
			return nil, fmt.Errorf("kind %q extends unknown kind %q", kd.Name, kd.Extends)
		}
		if k.Class == "" {
			k.Class = base.Class
		}
		k.Contract, err = base.Contract.Extend(props...)
	} else {
		k.Contract, err = proptypes.NewContract(props...)
	}
	if err != nil {
		return nil, fmt.Errorf("kind %q: %w", kd.Name, err)
	}
	return k, nil
}

// suggest returns a " (did you mean ...?)" hint naming the registered
// type most similar to the given unknown name, or "" if none is close.
func (s *Set) suggest(name string) string {
	best, bestSim := "", 0.0
	lev := metrics.NewLevenshtein()
	for _, nm := range s.Registry.Names() {
		if sim := strutil.Similarity(name, nm, lev); sim > bestSim {
			best, bestSim = nm, sim
		}
	}
	if bestSim < suggestThreshold {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}
