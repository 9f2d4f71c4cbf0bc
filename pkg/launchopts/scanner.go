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

// Package launchopts parses Steam-style launch options strings: shell-like
// tokens, KEY=VALUE environment pairs and the %command% placeholder.
package launchopts

import "strings"

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' ||
		ch == '\v' || ch == '\f' || ch == '\r'
}

// Scanner splits a launch options string into whitespace-delimited tokens.
// Double-quoted spans and backslash escapes suppress splitting; the quote
// and escape characters are kept in the token. Quote state carries over
// between calls to Next, so a scanner must not be reused for another string.
type Scanner struct {
	text     string
	pos      int
	escape   bool
	inQuotes bool
}

// NewScanner returns a scanner positioned at the start of text.
func NewScanner(text string) *Scanner {
	return &Scanner{text: text}
}

// Next returns the next token, or false once the input is exhausted. Tokens
// are substrings of the original input; no unescaping is performed here.
// An unterminated quote or trailing escape is not an error, the token just
// extends to the end of the input.
func (s *Scanner) Next() (string, bool) {
	start := s.pos
	for start < len(s.text) && isSpace(s.text[start]) {
		start++
	}
	if start >= len(s.text) {
		s.pos = start
		return "", false
	}

	end := start
	for end < len(s.text) {
		ch := s.text[end]
		switch {
		case ch == '\\' && !s.escape:
			s.escape = true
		case ch == '"':
			s.inQuotes = !s.inQuotes
			s.escape = false
		case !s.escape && !s.inQuotes && isSpace(ch):
			s.pos = end
			return s.text[start:end], true
		default:
			s.escape = false
		}
		end++
	}

	s.pos = end
	return s.text[start:end], true
}

// Tokens scans all remaining tokens from text in one call.
func Tokens(text string) []string {
	var toks []string
	sc := NewScanner(text)
	for tok, ok := sc.Next(); ok; tok, ok = sc.Next() {
		toks = append(toks, tok)
	}
	return toks
}

// Unquote strips one bounding double quote from each end of s, then removes
// every backslash that is not itself escaped. A string that is not quoted on
// both ends is returned unchanged. Quote and backslash are single-byte ASCII,
// so byte-level scanning is safe on well-formed UTF-8 input.
func Unquote(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	inner := s[1 : len(s)-1]
	if !strings.Contains(inner, "\\") {
		return inner
	}
	var b strings.Builder
	b.Grow(len(inner))
	escape := false
	for i := 0; i < len(inner); i++ {
		ch := inner[i]
		if ch == '\\' && !escape {
			escape = true
			continue
		}
		escape = false
		b.WriteByte(ch)
	}
	return b.String()
}

// trimQuotes removes one bounding double quote from each end of s, without
// touching escapes. Suffix arguments after %command% get this treatment
// instead of a full Unquote.
func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
