// Copyright 2026, the lizards authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lizards

import (
	"github.com/dsnet/golib/bits"

	"github.com/tehsmeely/lizards/internal/huffman"
)

// codeTable maps every symbol to its code; absent symbols have Len 0.
type codeTable [numSymbols]huffman.Code

func newCodeTable(codes []huffman.Code) codeTable {
	var ct codeTable
	for _, c := range codes {
		ct[c.Sym] = c
	}
	return ct
}

// writeBits appends nb bits of val, LSB first, splitting wide values so
// the buffer only ever sees narrow writes.
func writeBits(bb *bits.Buffer, val uint64, nb int) {
	for nb > 16 {
		bb.WriteBits(uint(val&0xffff), 16)
		val >>= 16
		nb -= 16
	}
	bb.WriteBits(uint(val&(1<<uint(nb)-1)), nb)
}

func writeCode(bb *bits.Buffer, c huffman.Code) {
	writeBits(bb, c.Val, int(c.Len))
}

// encodeChunk emits the codes for one chunk's tokens followed by the
// stop code, then pads the final partial byte with leading bits of the
// stop code so the chunk ends byte-aligned. The stop code demarcates the
// end, so the pad bits are never interpreted.
func encodeChunk(bb *bits.Buffer, ct *codeTable, offsetBits int, toks []token) {
	for _, t := range toks {
		switch t.kind {
		case tokenLiteral:
			writeCode(bb, ct[t.lit])
		case tokenMatch:
			writeCode(bb, ct[symMatch])
			writeBits(bb, uint64(t.offset-1), offsetBits)
			writeBits(bb, uint64(t.length-minMatch), lengthBits)
		}
	}
	stop := ct[symStop]
	writeCode(bb, stop)
	for i := uint8(0); !bb.WriteAligned(); i++ {
		bb.WriteBits(uint(stop.Val>>(i%stop.Len)&1), 1)
	}
}

// countingBitReader counts consumed bits so the decoder can skip the
// alignment padding after each stop code.
type countingBitReader struct {
	br *bits.Reader
	n  int64
}

func (cr *countingBitReader) ReadBit() (bool, error) {
	bit, err := cr.br.ReadBit()
	if err == nil {
		cr.n++
	}
	return bit, err
}

func (cr *countingBitReader) ReadBits(nb int) (uint, error) {
	val, cnt, err := cr.br.ReadBits(nb)
	cr.n += int64(cnt)
	return val, err
}

// skipPads discards the 0-7 bits padding the current chunk to a byte
// boundary.
func (cr *countingBitReader) skipPads() error {
	pads := int(-cr.n & 7)
	if pads == 0 {
		return nil
	}
	_, err := cr.ReadBits(pads)
	return err
}
