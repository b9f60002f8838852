// Copyright 2026, the lizards authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lizards

import (
	"bytes"
	"testing"

	"github.com/dsnet/golib/bits"

	"github.com/tehsmeely/lizards/internal/huffman"
)

func testCodeTable(t *testing.T) (*huffman.Tree, codeTable) {
	t.Helper()
	var freqs [numSymbols]int64
	freqs['a'] = 5
	freqs['b'] = 3
	freqs[symMatch] = 2
	freqs[symStop] = 1
	tree, err := huffman.Build(freqs[:])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tree, newCodeTable(tree.Codes())
}

func TestEncodeChunkAlignment(t *testing.T) {
	_, ct := testCodeTable(t)
	toks := []token{
		literalToken('a'), literalToken('b'), matchToken(1, 3), literalToken('a'),
	}

	bb := bits.NewBuffer(nil)
	for n := 0; n <= len(toks); n++ {
		encodeChunk(bb, &ct, windowBits(MinWindowSize), toks[:n])
		if !bb.WriteAligned() {
			t.Errorf("chunk of %d tokens, writer not byte aligned", n)
		}
		if bb.BitsWritten()%8 != 0 {
			t.Errorf("chunk of %d tokens, bit count mismatch: got %d, want multiple of 8",
				n, bb.BitsWritten())
		}
	}
}

func TestChunkRoundTrip(t *testing.T) {
	tree, ct := testCodeTable(t)
	chunks := [][]token{
		{literalToken('a'), literalToken('b'), matchToken(2, 4)},
		{matchToken(1, 17), literalToken('b')},
		{},
	}

	offsetBits := windowBits(MinWindowSize)
	bb := bits.NewBuffer(nil)
	for _, toks := range chunks {
		encodeChunk(bb, &ct, offsetBits, toks)
	}

	cr := countingBitReader{br: bits.NewReader(bytes.NewReader(bb.Bytes()))}
	for i, toks := range chunks {
		var got []token
		for {
			sym, err := tree.Decode(&cr)
			if err != nil {
				t.Fatalf("chunk %d, unexpected error: %v", i, err)
			}
			if sym == symStop {
				if err := cr.skipPads(); err != nil {
					t.Fatalf("chunk %d, unexpected error: %v", i, err)
				}
				break
			}
			if sym == symMatch {
				off, err := cr.ReadBits(offsetBits)
				if err != nil {
					t.Fatalf("chunk %d, unexpected error: %v", i, err)
				}
				cnt, err := cr.ReadBits(lengthBits)
				if err != nil {
					t.Fatalf("chunk %d, unexpected error: %v", i, err)
				}
				got = append(got, matchToken(int(off)+1, int(cnt)+minMatch))
				continue
			}
			got = append(got, literalToken(byte(sym)))
		}

		if cr.n%8 != 0 {
			t.Errorf("chunk %d, reader not byte aligned: %d bits", i, cr.n)
		}
		if len(got) != len(toks) {
			t.Errorf("chunk %d, token count mismatch: got %d, want %d", i, len(got), len(toks))
			continue
		}
		for j := range got {
			if got[j] != toks[j] {
				t.Errorf("chunk %d, token %d mismatch: got %+v, want %+v", i, j, got[j], toks[j])
			}
		}
	}
	if cr.n != bb.BitsWritten() {
		t.Errorf("consumed bits mismatch: got %d, want %d", cr.n, bb.BitsWritten())
	}
}
