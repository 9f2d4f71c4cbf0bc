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
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLibraryFolders = `"libraryfolders"
{
	"0"
	{
		"path"		"/library"
	}
}
`

const testAppManifest = `"AppState"
{
	"appid"		"1148590"
	"name"		"DOOM 64"
	"installdir"		"DOOM 64"
}
`

func newSteamFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs,
		"/steam/steamapps/libraryfolders.vdf", []byte(testLibraryFolders), 0o644))
	require.NoError(t, afero.WriteFile(fs,
		"/library/steamapps/appmanifest_1148590.acf", []byte(testAppManifest), 0o644))
	require.NoError(t, afero.WriteFile(fs,
		"/library/steamapps/common/DOOM 64/DOOM64.WAD",
		[]byte("IWAD\x00\x00\x00\x00lumps"), 0o644))
	require.NoError(t, afero.WriteFile(fs,
		"/library/steamapps/common/DOOM 64/launcher.cfg", []byte("x"), 0o644))
	return fs
}

func TestSteamLibraries(t *testing.T) {
	t.Parallel()

	fs := newSteamFs(t)
	assert.Equal(t, []string{"/library"}, SteamLibraries(fs, "/steam/steamapps"))
}

func TestSteamLibrariesMissingIndex(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	assert.Empty(t, SteamLibraries(fs, "/nowhere/steamapps"))
}

func TestSteamLibrariesMalformedIndex(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs,
		"/steam/steamapps/libraryfolders.vdf", []byte(`"libraryfolders" {`), 0o644))
	assert.Empty(t, SteamLibraries(fs, "/steam/steamapps"))
}

func TestScanSteamIWADs(t *testing.T) {
	t.Parallel()

	fs := newSteamFs(t)
	iwads := ScanSteamIWADs(fs, "/steam/steamapps")
	assert.Equal(t, []string{"/library/steamapps/common/DOOM 64/DOOM64.WAD"}, iwads)
}

func TestScanSteamIWADsManifestWithoutInstallDir(t *testing.T) {
	t.Parallel()

	fs := newSteamFs(t)
	require.NoError(t, afero.WriteFile(fs,
		"/library/steamapps/appmanifest_2.acf",
		[]byte("\"AppState\"\n{\n\t\"appid\"\t\t\"2\"\n}\n"), 0o644))

	iwads := ScanSteamIWADs(fs, "/steam/steamapps")
	assert.Equal(t, []string{"/library/steamapps/common/DOOM 64/DOOM64.WAD"}, iwads)
}
