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

package builds

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/andygrunwald/vdf"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/Talon1024/d64ce-launcher/pkg/helpers"
)

// lookupKey finds a VDF map key case-insensitively; Steam is not
// consistent about casing across client versions.
func lookupKey(m map[string]any, key string) (any, bool) {
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

// SteamLibraries parses libraryfolders.vdf inside steamappsDir and returns
// the configured library root paths. A missing or unparsable file yields an
// empty list, matching a machine without Steam.
func SteamLibraries(filesystem afero.Fs, steamappsDir string) []string {
	path := filepath.Join(steamappsDir, "libraryfolders.vdf")
	f, err := filesystem.Open(path)
	if err != nil {
		log.Debug().Err(err).Msgf("no Steam library index: %s", path)
		return nil
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing libraryfolders.vdf")
		}
	}()

	m, err := vdf.NewParser(f).Parse()
	if err != nil {
		log.Error().Err(err).Msg("error parsing libraryfolders.vdf")
		return nil
	}

	folders, ok := lookupKey(m, "libraryfolders")
	if !ok {
		log.Error().Msg("libraryfolders key missing")
		return nil
	}
	fm, ok := folders.(map[string]any)
	if !ok {
		log.Error().Msg("libraryfolders is not a map")
		return nil
	}

	var libs []string
	for id, v := range fm {
		lib, ok := v.(map[string]any)
		if !ok {
			log.Error().Msgf("library %s is not a map", id)
			continue
		}
		p, ok := lookupKey(lib, "path")
		if !ok {
			continue
		}
		if pathStr, ok := p.(string); ok {
			libs = append(libs, pathStr)
		}
	}

	sort.Strings(libs)
	return libs
}

// ScanSteamIWADs walks every installed Steam app in every library and
// returns the IWAD files found in their install directories. Doom 64 and
// the classic Doom releases all ship their WADs this way.
func ScanSteamIWADs(filesystem afero.Fs, steamappsDir string) []string {
	var iwads []string
	for _, lib := range SteamLibraries(filesystem, steamappsDir) {
		appsDir := filepath.Join(lib, "steamapps")
		entries, err := afero.ReadDir(filesystem, appsDir)
		if err != nil {
			log.Error().Err(err).Msgf("error listing steamapps folder: %s", appsDir)
			continue
		}

		for _, entry := range entries {
			if !strings.HasPrefix(entry.Name(), "appmanifest_") {
				continue
			}
			installDir := manifestInstallDir(filesystem, filepath.Join(appsDir, entry.Name()))
			if installDir == "" {
				continue
			}
			gameDir := filepath.Join(appsDir, "common", installDir)
			iwads = append(iwads, findIWADs(filesystem, gameDir)...)
		}
	}

	sort.Strings(iwads)
	return iwads
}

// manifestInstallDir extracts the installdir field from one
// appmanifest_*.acf file.
func manifestInstallDir(filesystem afero.Fs, path string) string {
	f, err := filesystem.Open(path)
	if err != nil {
		log.Error().Err(err).Msgf("error opening manifest: %s", path)
		return ""
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msgf("error closing manifest: %s", path)
		}
	}()

	m, err := vdf.NewParser(f).Parse()
	if err != nil {
		log.Error().Err(err).Msgf("error parsing manifest: %s", path)
		return ""
	}

	state, ok := lookupKey(m, "AppState")
	if !ok {
		return ""
	}
	sm, ok := state.(map[string]any)
	if !ok {
		return ""
	}
	dir, ok := lookupKey(sm, "installdir")
	if !ok {
		return ""
	}
	dirStr, _ := dir.(string)
	return dirStr
}

// findIWADs walks an install directory looking for IWAD files. Install
// dirs are shallow, so a full walk is cheap.
func findIWADs(filesystem afero.Fs, dir string) []string {
	var iwads []string
	err := afero.Walk(filesystem, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			//nolint:nilerr // Unreadable entries are skipped, not fatal
			return nil
		}
		if helpers.IsIWAD(filesystem, path) {
			iwads = append(iwads, path)
		}
		return nil
	})
	if err != nil {
		log.Debug().Err(err).Msgf("error walking install dir: %s", dir)
	}
	return iwads
}
