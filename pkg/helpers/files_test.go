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
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsIWAD(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  []byte
		expected bool
	}{
		{
			name:     "iwad magic",
			content:  []byte("IWAD\x01\x02\x03\x04 rest of wad directory"),
			expected: true,
		},
		{
			name:     "pwad rejected",
			content:  []byte("PWAD\x01\x02\x03\x04"),
			expected: false,
		},
		{
			name:     "short file rejected",
			content:  []byte("IW"),
			expected: false,
		},
		{
			name:     "empty file rejected",
			content:  []byte{},
			expected: false,
		},
		{
			name:     "lowercase magic rejected",
			content:  []byte("iwad data"),
			expected: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "/candidate.wad", tt.content, 0o644))
			assert.Equal(t, tt.expected, IsIWAD(fs, "/candidate.wad"))
		})
	}
}

func TestIsIWADMissingFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	assert.False(t, IsIWAD(fs, "/does/not/exist.wad"))
}
