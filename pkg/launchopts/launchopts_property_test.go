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

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// wordGen generates tokens with no whitespace, quotes or escapes.
func wordGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-zA-Z0-9=._/-]{1,16}`)
}

// spaceGen generates a non-empty run of ASCII whitespace.
func spaceGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[ \t\n\v\f\r]{1,4}`)
}

// TestPropertyScannerSplitsPlainWords verifies that joining plain words with
// arbitrary whitespace runs and tokenizing the result returns the words.
func TestPropertyScannerSplitsPlainWords(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfN(wordGen(), 0, 8).Draw(t, "words")

		var sb strings.Builder
		sb.WriteString(spaceGen().Draw(t, "lead"))
		for i, w := range words {
			if i > 0 {
				sb.WriteString(spaceGen().Draw(t, "sep"))
			}
			sb.WriteString(w)
		}

		got := Tokens(sb.String())
		if len(got) != len(words) {
			t.Fatalf("token count mismatch: got %d, want %d", len(got), len(words))
		}
		for i := range words {
			if got[i] != words[i] {
				t.Fatalf("token %d: got %q, want %q", i, got[i], words[i])
			}
		}
	})
}

// TestPropertyUnquoteUnquotedUnchanged verifies Unquote is the identity on
// any string not bounded by quotes on both ends.
func TestPropertyUnquoteUnquotedUnchanged(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
			t.Skip("quote-bounded")
		}
		if got := Unquote(s); got != s {
			t.Fatalf("Unquote(%q) = %q, want unchanged", s, got)
		}
	})
}

// TestPropertyScannerTokensAreSubstrings verifies every token is a
// substring of the input and tokens appear in input order.
func TestPropertyScannerTokensAreSubstrings(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.String().Draw(t, "input")
		pos := 0
		for _, tok := range Tokens(input) {
			idx := strings.Index(input[pos:], tok)
			if idx < 0 {
				t.Fatalf("token %q not found in input %q after offset %d", tok, input, pos)
			}
			pos += idx + len(tok)
		}
	})
}

// TestPropertyParseRunInfoDeterministic verifies repeated parses of the same
// input are identical, since the builder keeps no state between calls.
func TestPropertyParseRunInfoDeterministic(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.String().Draw(t, "input")
		exe := wordGen().Draw(t, "exe")

		a := ParseRunInfo(input, exe)
		b := ParseRunInfo(input, exe)

		if a.Exec != b.Exec || len(a.Env) != len(b.Env) || len(a.Args) != len(b.Args) {
			t.Fatalf("non-deterministic parse: %+v vs %+v", a, b)
		}
	})
}

// TestPropertyEnvPairsComeFromPrefix verifies no environment pair is ever
// produced without a placeholder in the input.
func TestPropertyEnvPairsComeFromPrefix(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.String().Draw(t, "input")
		if strings.Contains(input, Placeholder) {
			t.Skip("has placeholder")
		}
		info := ParseRunInfo(input, "gzdoom")
		if len(info.Env) != 0 {
			t.Fatalf("environment parsed without placeholder: %+v", info.Env)
		}
		if info.Exec != "" {
			t.Fatalf("executable claimed without placeholder: %q", info.Exec)
		}
	})
}
