// Copyright 2026, the lizards authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lizards

import (
	"fmt"
	"io"
	"strconv"

	"github.com/tehsmeely/lizards/internal/huffman"
)

// dumpDebug writes a human-readable account of one compression pass:
// the code table, symbol frequencies, the token stream per chunk, and
// the tree as a Graphviz digraph. It only ever reads snapshots; the
// compressed output is byte-identical with or without it.
func dumpDebug(w io.Writer, windowSize int, chunks [][]token, freqs []int64, codes []huffman.Code, tree *huffman.Tree) {
	fmt.Fprintf(w, "window=%d chunks=%d symbols=%d\n", windowSize, len(chunks), len(codes))

	fmt.Fprintln(w, "codes:")
	for _, c := range codes {
		fmt.Fprintf(w, "\t%s  len=%2d val=%0*b  freq=%d\n",
			symName(int(c.Sym)), c.Len, int(c.Len), reverseBits(c.Val, c.Len), freqs[c.Sym])
	}

	for i, toks := range chunks {
		fmt.Fprintf(w, "chunk %d: %d tokens\n", i, len(toks))
		for _, t := range toks {
			switch t.kind {
			case tokenLiteral:
				fmt.Fprintf(w, "\tlit   %s\n", symName(int(t.lit)))
			case tokenMatch:
				fmt.Fprintf(w, "\tmatch (%d,%d)\n", t.offset, t.length)
			}
		}
	}

	fmt.Fprintln(w, "tree:")
	tree.Dot(w)
}

// symName renders a symbol for humans: printable bytes show their
// character, the two synthetic symbols show their role.
func symName(sym int) string {
	switch {
	case sym == symMatch:
		return "<match>"
	case sym == symStop:
		return "<stop> "
	case sym < 0x80 && strconv.IsPrint(rune(sym)):
		return fmt.Sprintf("%3d %q", sym, rune(sym))
	default:
		return fmt.Sprintf("%3d    ", sym)
	}
}

// reverseBits renders a code MSB-first so the dump reads in tree-walk
// order (bit 0 of Val is the first branch taken).
func reverseBits(val uint64, n uint8) uint64 {
	var out uint64
	for i := uint8(0); i < n; i++ {
		out = out<<1 | val>>i&1
	}
	return out
}
