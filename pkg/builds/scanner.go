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

// Package builds discovers candidate GZDoom executables and IWADs on disk,
// by glob pattern and from installed Steam libraries.
package builds

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/Talon1024/d64ce-launcher/pkg/helpers"
)

// Scan walks the filesystem under the pattern's static prefix and returns
// every executable file matching the glob, sorted. The pattern supports
// '*' and '?' within a path segment and '**' across segments, the same
// shapes users bring over from their old launcher scripts.
func Scan(filesystem afero.Fs, pattern string) ([]string, error) {
	if pattern == "" {
		return nil, errors.New("empty build glob pattern")
	}

	re, err := compileGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad build glob pattern: %w", err)
	}
	root := staticPrefix(pattern)

	var mu sync.Mutex
	var found []string

	conf := fastwalk.Config{Follow: true}
	err = fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are normal under a broad glob.
			log.Debug().Err(err).Msgf("skipping during build scan: %s", path)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !re.MatchString(filepath.ToSlash(path)) {
			return nil
		}
		if !helpers.IsExecutable(filesystem, path) {
			return nil
		}
		mu.Lock()
		found = append(found, path)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("build scan failed: %w", err)
	}

	sort.Strings(found)
	return found, nil
}

// ScanIWADs returns the files directly inside dir that carry the IWAD
// magic number, sorted.
func ScanIWADs(filesystem afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(filesystem, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list IWAD directory: %w", err)
	}

	var iwads []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if helpers.IsIWAD(filesystem, path) {
			iwads = append(iwads, path)
		}
	}

	sort.Strings(iwads)
	return iwads, nil
}

// staticPrefix returns the longest leading run of pattern segments with no
// glob metacharacters, the point the walk starts from.
func staticPrefix(pattern string) string {
	segments := strings.Split(filepath.ToSlash(pattern), "/")
	var static []string
	for _, seg := range segments {
		if strings.ContainsAny(seg, "*?[") {
			break
		}
		static = append(static, seg)
	}
	if len(static) == 0 {
		return "."
	}
	prefix := strings.Join(static, "/")
	if prefix == "" {
		// Pattern was absolute with a glob in the first segment.
		return "/"
	}
	return filepath.FromSlash(prefix)
}

// compileGlob converts a glob pattern to an anchored regexp over
// slash-separated paths. '*' and '?' stop at separators; '**' does not,
// and "**/" also matches zero directories.
func compileGlob(pattern string) (*regexp.Regexp, error) {
	pattern = filepath.ToSlash(pattern)
	var sb strings.Builder
	sb.WriteString("^")
	for i := 0; i < len(pattern); i++ {
		switch ch := pattern[i]; ch {
		case '*':
			if i+1 < len(pattern) && pattern[i+1] == '*' {
				i++
				if i+1 < len(pattern) && pattern[i+1] == '/' {
					i++
					sb.WriteString(`(?:.*/)?`)
				} else {
					sb.WriteString(`.*`)
				}
			} else {
				sb.WriteString(`[^/]*`)
			}
		case '?':
			sb.WriteString(`[^/]`)
		default:
			sb.WriteString(regexp.QuoteMeta(string(ch)))
		}
	}
	sb.WriteString("$")

	re, err := regexp.Compile(sb.String())
	if err != nil {
		//nolint:wrapcheck // Caller wraps with the offending pattern
		return nil, err
	}
	return re, nil
}
