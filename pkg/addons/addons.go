// D64CE Launcher
// Copyright (c) 2026 The D64CE Launcher Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of D64CE Launcher.
//
// D64CE Launcher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// D64CE Launcher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with D64CE Launcher.  If not, see <http://www.gnu.org/licenses/>.

// Package addons loads the declarative addon catalog (addons.yml) that maps
// addon names to the WAD/pk3 files they need.
package addons

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// NoneAddon is the sentinel entry shown first in the primary addon list.
const NoneAddon = "None"

// Spec describes one catalog entry. Entries with a Secondary tag are
// offered as toggleable secondary addons; the rest are mutually exclusive
// primary addons.
type Spec struct {
	Secondary string   `yaml:"secondary,omitempty"`
	Required  []string `yaml:"required"           validate:"required,min=1,dive,required"`
	Optional  []string `yaml:"optional,omitempty"`
}

// Catalog is the filtered set of usable addons from one addons.yml.
type Catalog struct {
	fs     afero.Fs
	addons map[string]Spec
}

type catalogFile struct {
	Addons map[string]Spec `yaml:"addons" validate:"required"`
}

// LoadCatalog reads and validates an addons.yml. Entries named "none" and
// entries whose required files are missing are dropped; a malformed entry
// fails the whole load so broken catalogs are noticed instead of silently
// shrinking the addon list.
func LoadCatalog(fs afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read addon catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse addon catalog: %w", err)
	}

	validate := validator.New()
	addons := make(map[string]Spec, len(file.Addons))
	for name, spec := range file.Addons {
		if strings.EqualFold(name, NoneAddon) {
			continue
		}
		if err := validate.Struct(&spec); err != nil {
			return nil, fmt.Errorf("invalid addon %q: %w", name, err)
		}

		missing := false
		for _, req := range spec.Required {
			if exists, _ := afero.Exists(fs, req); !exists {
				log.Info().Msgf(
					"addon %s skipped: required file missing: %s", name, req)
				missing = true
				break
			}
		}
		if missing {
			continue
		}

		addons[name] = spec
	}

	return &Catalog{fs: fs, addons: addons}, nil
}

// Get returns the spec for a named addon.
func (c *Catalog) Get(name string) (Spec, bool) {
	spec, ok := c.addons[name]
	return spec, ok
}

// Primary returns the selectable primary addon names, with the None
// sentinel first and the rest sorted.
func (c *Catalog) Primary() []string {
	names := []string{NoneAddon}
	var rest []string
	for name, spec := range c.addons {
		if spec.Secondary == "" {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// Secondary returns the toggleable secondary addon names, sorted.
func (c *Catalog) Secondary() []string {
	var names []string
	for name, spec := range c.addons {
		if spec.Secondary != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// FilesFor resolves one addon to its file list: all required files plus
// any optional files that exist. Unknown names (including None) resolve
// to nothing.
func (c *Catalog) FilesFor(name string) []string {
	spec, ok := c.addons[name]
	if !ok {
		return nil
	}

	files := make([]string, 0, len(spec.Required)+len(spec.Optional))
	files = append(files, spec.Required...)
	for _, opt := range spec.Optional {
		if exists, _ := afero.Exists(c.fs, opt); exists {
			files = append(files, opt)
		}
	}
	return files
}

// FilesForSelection resolves a primary addon plus a set of secondary addons
// into the ordered -file argument list for the launch.
func (c *Catalog) FilesForSelection(primary string, secondaries []string) []string {
	files := c.FilesFor(primary)
	for _, name := range secondaries {
		files = append(files, c.FilesFor(name)...)
	}
	return files
}
