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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigCreatesDefaultFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, CfgFile))
	assert.True(t, cfg.QuitOnLaunch())
	assert.Empty(t, cfg.SelectedBuild())
}

func TestConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	cfg.SetSelectedBuild("/opt/gzdoom/gzdoom")
	cfg.SetIWAD("/data/DOOM64.WAD")
	cfg.SetExtraArgs("MANGOHUD=1 %command% -glversion 4.2")
	cfg.SetPrimaryAddon("Doom 64 CE")
	cfg.SetSecondaryAddons([]string{"Music", "Weapons"})
	require.NoError(t, cfg.Save())

	reloaded, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)
	assert.Equal(t, "/opt/gzdoom/gzdoom", reloaded.SelectedBuild())
	assert.Equal(t, "/data/DOOM64.WAD", reloaded.IWAD())
	assert.Equal(t, "MANGOHUD=1 %command% -glversion 4.2", reloaded.ExtraArgs())
	assert.Equal(t, "Doom 64 CE", reloaded.PrimaryAddon())
	assert.Equal(t, []string{"Music", "Weapons"}, reloaded.SecondaryAddons())
}

func TestConfigMissingFieldsKeepDefaults(t *testing.T) {
	dir := t.TempDir()

	partial := "config_schema = 1\nselected_build = \"/usr/bin/gzdoom\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, CfgFile), []byte(partial), 0o600))

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/gzdoom", cfg.SelectedBuild())
	// Not in the file, comes from defaults.
	assert.True(t, cfg.QuitOnLaunch())
}

func TestConfigSchemaMismatch(t *testing.T) {
	dir := t.TempDir()

	bad := "config_schema = 999\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, CfgFile), []byte(bad), 0o600))

	_, err := NewConfig(dir, BaseDefaults)
	assert.Error(t, err)
}

func TestConfigEnvOverridesPath(t *testing.T) {
	dir := t.TempDir()
	altPath := filepath.Join(dir, "elsewhere", "alt.toml")
	t.Setenv(CfgEnv, altPath)

	cfg, err := NewConfig(t.TempDir(), BaseDefaults)
	require.NoError(t, err)
	assert.Equal(t, altPath, cfg.Path())
	assert.FileExists(t, altPath)
}

func TestSecondaryAddonsCopied(t *testing.T) {
	dir := t.TempDir()

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	in := []string{"a", "b"}
	cfg.SetSecondaryAddons(in)
	in[0] = "mutated"

	out := cfg.SecondaryAddons()
	assert.Equal(t, []string{"a", "b"}, out)

	out[1] = "mutated"
	assert.Equal(t, []string{"a", "b"}, cfg.SecondaryAddons())
}
