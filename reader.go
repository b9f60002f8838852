// Copyright 2026, the lizards authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lizards

import (
	"bufio"
	"bytes"
	"hash/crc32"
	"io"

	"github.com/dsnet/golib/bits"
	"github.com/dsnet/golib/errs"

	"github.com/tehsmeely/lizards/internal/huffman"
)

// ReaderConfig configures decompression. The zero value (and nil)
// selects the defaults: checksum verification on.
type ReaderConfig struct {
	// SkipChecksum disables CRC-32 verification of the decoded output.
	SkipChecksum bool
}

// The read interface needed by the decoder; readers lacking it are
// wrapped with bufio.
type byteReader interface {
	io.Reader
	io.ByteReader
}

// A Reader decompresses a lizard stream read from an underlying
// io.Reader. The header is consumed by NewReader; chunks are decoded
// on demand.
type Reader struct {
	rd         byteReader
	cr         countingBitReader
	tree       *huffman.Tree
	win        *lookback
	offsetBits int
	verify     bool

	buf      []byte // decoded bytes not yet delivered
	crc      uint32
	wantCRC  uint32
	inChunk  bool
	sawChunk bool
	err      error
}

// NewReader creates a new Reader reading from rd. The container header
// is parsed immediately; a corrupt header fails here, before any chunk
// is touched.
func NewReader(rd io.Reader, conf *ReaderConfig) (*Reader, error) {
	brd, ok := rd.(byteReader)
	if !ok {
		brd = bufio.NewReader(rd)
	}
	windowSize, wantCRC, tree, err := readHeader(brd)
	if err != nil {
		return nil, err
	}
	zr := &Reader{
		rd:         brd,
		tree:       tree,
		win:        newLookback(windowSize),
		offsetBits: windowBits(windowSize),
		verify:     conf == nil || !conf.SkipChecksum,
		wantCRC:    wantCRC,
	}
	zr.cr = countingBitReader{br: bits.NewReader(brd)}
	return zr, nil
}

func (zr *Reader) Read(buf []byte) (int, error) {
	for {
		if len(zr.buf) > 0 {
			cnt := copy(buf, zr.buf)
			zr.buf = zr.buf[cnt:]
			return cnt, nil
		}
		if zr.err != nil {
			return 0, zr.err
		}
		zr.fetch()
	}
}

// Close closes the Reader. The underlying reader is not closed.
func (zr *Reader) Close() error {
	if zr.err != ErrClosed && zr.err != nil && zr.err != io.EOF {
		return zr.err
	}
	zr.err = ErrClosed
	return nil
}

// fetch decodes symbols until some output is buffered, the stream ends,
// or an error occurs. Decode state persists across calls, so a chunk
// larger than the fetch budget is simply resumed.
func (zr *Reader) fetch() {
	defer errRecover(&zr.err)

	start := len(zr.buf)
	defer func() {
		zr.crc = crc32.Update(zr.crc, crc32.IEEETable, zr.buf[start:])
	}()

	for len(zr.buf) < 1<<12 {
		sym, err := zr.tree.Decode(&zr.cr)
		if err == io.EOF && !zr.inChunk && zr.sawChunk {
			// Exhaustion on a chunk boundary is the normal end of the
			// stream. A valid stream carries at least one stop-terminated
			// chunk, so exhaustion before the first one is truncation.
			errs.Assert(!zr.verify || zr.crc == zr.wantCRC, ErrChecksum)
			panic(io.EOF)
		}
		switch err {
		case nil:
		case io.EOF, io.ErrUnexpectedEOF:
			panic(ErrUnexpectedEOF)
		case huffman.ErrDesync:
			panic(ErrTreeMismatch)
		default:
			panic(err)
		}
		zr.inChunk = true

		switch {
		case sym == symStop:
			errs.Panic(bitsErr(zr.cr.skipPads()))
			zr.inChunk, zr.sawChunk = false, true
			return
		case sym == symMatch:
			offset, length := zr.readMatch()
			errs.Assert(offset <= zr.win.filled(), ErrInvalidMatch)
			for i := 0; i < length; i++ {
				b := zr.win.byteAt(offset)
				zr.win.record(b)
				zr.buf = append(zr.buf, b)
			}
		default:
			b := byte(sym)
			zr.win.record(b)
			zr.buf = append(zr.buf, b)
		}
	}
}

func (zr *Reader) readMatch() (offset, length int) {
	off, err := zr.cr.ReadBits(zr.offsetBits)
	errs.Panic(bitsErr(err))
	cnt, err := zr.cr.ReadBits(lengthBits)
	errs.Panic(bitsErr(err))
	return int(off) + 1, int(cnt) + minMatch
}

// bitsErr maps bit-source exhaustion to ErrUnexpectedEOF; any other
// failure of the underlying reader passes through unchanged.
func bitsErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrUnexpectedEOF
	}
	return err
}

// Decompress decodes a complete lizard stream from src.
func Decompress(src []byte, conf *ReaderConfig) ([]byte, error) {
	zr, err := NewReader(bytes.NewReader(src), conf)
	if err != nil {
		return nil, err
	}
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	return out, nil
}
