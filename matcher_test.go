// Copyright 2026, the lizards authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lizards

import (
	"bytes"
	"testing"

	"github.com/tehsmeely/lizards/internal/testutil"
)

func tokenize(src []byte, windowSize int) []token {
	var toks []token
	m := newMatcher(newLookback(windowSize), src)
	for {
		t, ok := m.next()
		if !ok {
			return toks
		}
		toks = append(toks, t)
	}
}

func TestMatcherTokens(t *testing.T) {
	var vectors = []struct {
		input  string
		tokens []token
	}{
		{input: "", tokens: nil},
		{input: "a", tokens: []token{literalToken('a')}},
		{input: "ABA", tokens: []token{
			literalToken('A'), literalToken('B'), literalToken('A'),
		}},
		{input: "abab", tokens: []token{
			literalToken('a'), literalToken('b'), literalToken('a'), literalToken('b'),
		}},
		{input: "aaaaaaaaaa", tokens: []token{
			literalToken('a'), matchToken(1, 9),
		}},
		{input: "abcabcabc", tokens: []token{
			literalToken('a'), literalToken('b'), literalToken('c'), matchToken(3, 6),
		}},
	}

	for i, v := range vectors {
		got := tokenize([]byte(v.input), DefaultWindowSize)
		if len(got) != len(v.tokens) {
			t.Errorf("test %d, token count mismatch: got %d, want %d", i, len(got), len(v.tokens))
			continue
		}
		for j := range got {
			if got[j] != v.tokens[j] {
				t.Errorf("test %d, token %d mismatch: got %+v, want %+v", i, j, got[j], v.tokens[j])
			}
		}
	}
}

// TestMatcherReplay checks every emitted token against the stream
// contract: match references stay inside the produced output and the
// window capacity, and replaying the tokens reproduces the input.
func TestMatcherReplay(t *testing.T) {
	const windowSize = 256
	input := testutil.RandRepeats(1<<16, 5)
	toks := tokenize(input, windowSize)

	var out []byte
	for i, tk := range toks {
		switch tk.kind {
		case tokenLiteral:
			out = append(out, tk.lit)
		case tokenMatch:
			if tk.offset < 1 || tk.offset > windowSize || tk.offset > len(out) {
				t.Fatalf("token %d, offset out of range: %d (output %d)", i, tk.offset, len(out))
			}
			if tk.length < minMatch || tk.length > maxMatch {
				t.Fatalf("token %d, length out of range: %d", i, tk.length)
			}
			for j := 0; j < tk.length; j++ {
				out = append(out, out[len(out)-tk.offset])
			}
		}
	}
	if !bytes.Equal(out, input) {
		t.Errorf("replayed output differs from input: got %d bytes, want %d bytes", len(out), len(input))
	}
}
