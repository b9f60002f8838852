// Copyright 2026, the lizards authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lizards

// matcher runs the greedy LZSS pass: at every position it takes the
// longest window match against the read window ahead, or falls back to
// a single literal. Greedy longest-match is not globally optimal, but it
// is linear in the number of tokens and fully deterministic, which the
// format requires for reproducible output.
type matcher struct {
	win *lookback
	src []byte
	pos int
}

func newMatcher(win *lookback, src []byte) *matcher {
	return &matcher{win: win, src: src}
}

// next produces the next token and advances the input and window.
// It reports false once the input is exhausted.
func (m *matcher) next() (token, bool) {
	if m.pos >= len(m.src) {
		return token{}, false
	}

	upcoming := m.src[m.pos:]
	if len(upcoming) > maxMatch {
		upcoming = upcoming[:maxMatch]
	}

	if offset, length := m.win.findMatch(upcoming); length >= minMatch {
		m.win.recordAll(m.src[m.pos : m.pos+length])
		m.pos += length
		return matchToken(offset, length), true
	}

	b := m.src[m.pos]
	m.win.record(b)
	m.pos++
	return literalToken(b), true
}
