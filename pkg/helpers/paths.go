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

package helpers

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/Talon1024/d64ce-launcher/pkg/config"
)

// ConfigDir is where the TOML settings file lives.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, config.AppName)
}

// DataDir is where the addon catalog is looked up if the working directory
// has none.
func DataDir() string {
	return filepath.Join(xdg.DataHome, config.AppName)
}

// LogDir is where rotated log files are written.
func LogDir() string {
	return filepath.Join(xdg.StateHome, config.AppName)
}

// DefaultBuildGlob is the fallback pattern for locating GZDoom executables
// when the config has none set.
func DefaultBuildGlob() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, "Games", "doom", "gzdoom-*", "**", "gzdoom*")
}

// DefaultSteamDir is the usual steamapps location on Linux, used when the
// config has no steam_dir set.
func DefaultSteamDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".steam", "steam", "steamapps")
}
