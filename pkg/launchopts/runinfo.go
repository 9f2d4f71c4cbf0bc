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

package launchopts

import "strings"

// Placeholder is the literal marker that splits a launch options string into
// an environment/executable prefix and an argument suffix, following the
// Steam launch options convention.
const Placeholder = "%command%"

// EnvVar is a single environment override from the prefix of a launch
// options string. Keys may repeat; overrides are applied in order and the
// host environment's last-write-wins semantics resolve duplicates.
type EnvVar struct {
	Key   string
	Value string
}

// RunInfo is the launch plan parsed from a launch options string. Exec is
// empty when no replacement executable was named. It is a pure value; every
// call to ParseRunInfo builds a fresh one.
type RunInfo struct {
	Exec string
	Env  []EnvVar
	Args []string
}

// ParseRunInfo parses a raw launch options string around the first
// %command% placeholder.
//
// Without a placeholder the whole string is tokenized verbatim into Args.
// With one, the prefix's leading run of KEY=VALUE tokens becomes Env (values
// unquoted and unescaped), the first non-pair token is claimed as the
// replacement executable (stored raw), remaining prefix tokens become Args,
// then defaultExe is appended so a wrapper like mangohud receives the real
// program as its first argument, and finally the suffix tokens are appended
// with bounding quotes trimmed but escapes left alone.
//
// The three branches deliberately de-quote differently; see the package
// tests before changing any of them.
func ParseRunInfo(extraArgs, defaultExe string) RunInfo {
	var info RunInfo

	prefix, suffix, found := strings.Cut(extraArgs, Placeholder)
	if !found {
		info.Args = Tokens(extraArgs)
		return info
	}

	parsingEnv := true
	sc := NewScanner(prefix)
	for tok, ok := sc.Next(); ok; tok, ok = sc.Next() {
		if parsingEnv {
			if key, val, isPair := strings.Cut(tok, "="); isPair {
				info.Env = append(info.Env, EnvVar{Key: key, Value: Unquote(val)})
				continue
			}
			// First token without a '=' ends environment parsing for
			// good, and is itself handled as a positional token below.
			parsingEnv = false
		}
		if info.Exec == "" {
			info.Exec = tok
		} else {
			info.Args = append(info.Args, tok)
		}
	}

	// With a replacement executable, the program that would have run
	// becomes its first argument ("mangohud %command%" style).
	if info.Exec != "" {
		info.Args = append(info.Args, defaultExe)
	}

	sc = NewScanner(suffix)
	for tok, ok := sc.Next(); ok; tok, ok = sc.Next() {
		info.Args = append(info.Args, trimQuotes(tok))
	}

	return info
}
