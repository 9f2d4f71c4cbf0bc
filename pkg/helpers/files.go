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
	"bytes"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var iwadMagic = []byte("IWAD")

// IsIWAD reports whether the file at path starts with the IWAD magic
// number. Unreadable or short files are not IWADs.
func IsIWAD(fs afero.Fs, path string) bool {
	f, err := fs.Open(path)
	if err != nil {
		log.Debug().Err(err).Msgf("cannot open candidate IWAD: %s", path)
		return false
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msgf("error closing file: %s", path)
		}
	}()

	magic := make([]byte, len(iwadMagic))
	if _, err := io.ReadFull(f, magic); err != nil {
		return false
	}
	return bytes.Equal(magic, iwadMagic)
}
