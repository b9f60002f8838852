// Copyright 2026, the lizards authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lizards

import (
	"hash/crc32"
	"io"

	"github.com/dsnet/golib/bits"

	"github.com/tehsmeely/lizards/internal/huffman"
)

// WriterConfig configures compression. The zero value (and nil) selects
// the defaults.
type WriterConfig struct {
	// WindowSize is the lookback window capacity in bytes. It must be a
	// power of two between MinWindowSize and MaxWindowSize and is fixed
	// for the whole file. Zero selects DefaultWindowSize.
	WindowSize int

	// DebugWriter, if set, receives a human-readable dump of the token
	// stream, frequencies, and code table. It never affects the
	// compressed bytes.
	DebugWriter io.Writer

	// Stats, if set, is filled with read-only encoding statistics.
	Stats *Stats
}

// Stats is a read-only snapshot of one compression pass, exposed for
// debug tooling.
type Stats struct {
	InputSize  int64
	OutputSize int64
	Literals   int64
	Matches    int64
	Chunks     int

	// SymbolFreqs and CodeLens are indexed by symbol (0-255 literals,
	// 256 match marker, 257 stop). CodeLens is 0 for uncoded symbols.
	SymbolFreqs []int64
	CodeLens    []uint8
}

func (conf *WriterConfig) windowSize() int {
	if conf == nil || conf.WindowSize == 0 {
		return DefaultWindowSize
	}
	return conf.WindowSize
}

func (conf *WriterConfig) verify() error {
	if conf != nil && conf.WindowSize != 0 && !validWindowSize(conf.WindowSize) {
		return ErrInvalidConfig
	}
	return nil
}

// Compress encodes src as a complete lizard stream.
func Compress(src []byte, conf *WriterConfig) ([]byte, error) {
	if err := conf.verify(); err != nil {
		return nil, err
	}
	windowSize := conf.windowSize()

	// Pass 1: tokenize the whole input and count symbol frequencies.
	// Tokens are grouped into chunks by input-byte budget; the window
	// carries across chunk boundaries.
	var (
		chunks  [][]token
		current []token
		budget  int
		freqs   [numSymbols]int64
		nLit    int64
		nMatch  int64
	)
	m := newMatcher(newLookback(windowSize), src)
	for {
		t, ok := m.next()
		if !ok {
			break
		}
		switch t.kind {
		case tokenLiteral:
			freqs[t.lit]++
			nLit++
		case tokenMatch:
			freqs[symMatch]++
			nMatch++
		}
		current = append(current, t)
		if budget += t.inputLen(); budget >= chunkSize {
			chunks = append(chunks, current)
			current, budget = nil, 0
		}
	}
	if len(current) > 0 || len(chunks) == 0 {
		// Empty input still produces one chunk holding only the stop
		// code, so the decoder always sees a well-formed stream.
		chunks = append(chunks, current)
	}

	// The stop symbol is coded once per chunk. Weighting it by the
	// chunk count keeps its code honest while guaranteeing it always
	// receives a leaf.
	freqs[symStop] = int64(len(chunks))

	tree, err := huffman.Build(freqs[:])
	if err != nil {
		return nil, err
	}
	codes := tree.Codes()
	ct := newCodeTable(codes)

	hdr, err := marshalHeader(windowSize, crc32.ChecksumIEEE(src), codes)
	if err != nil {
		return nil, err
	}

	// Pass 2: entropy-code each chunk.
	bb := bits.NewBuffer(nil)
	offsetBits := windowBits(windowSize)
	for _, toks := range chunks {
		encodeChunk(bb, &ct, offsetBits, toks)
	}

	out := make([]byte, 0, len(hdr)+len(bb.Bytes()))
	out = append(out, hdr...)
	out = append(out, bb.Bytes()...)

	if conf != nil && conf.Stats != nil {
		*conf.Stats = Stats{
			InputSize:   int64(len(src)),
			OutputSize:  int64(len(out)),
			Literals:    nLit,
			Matches:     nMatch,
			Chunks:      len(chunks),
			SymbolFreqs: append([]int64(nil), freqs[:]...),
			CodeLens:    codeLens(&ct),
		}
	}
	if conf != nil && conf.DebugWriter != nil {
		dumpDebug(conf.DebugWriter, windowSize, chunks, freqs[:], codes, tree)
	}
	return out, nil
}

func codeLens(ct *codeTable) []uint8 {
	lens := make([]uint8, numSymbols)
	for sym, c := range ct {
		lens[sym] = c.Len
	}
	return lens
}

// A Writer compresses data written to it into an underlying io.Writer.
// The format carries a single per-file code tree, so input is buffered
// and the stream is produced when Close is called.
type Writer struct {
	// OutputOffset is the number of bytes written to the underlying
	// writer, valid after Close.
	OutputOffset int64

	wr   io.Writer
	buf  []byte
	conf *WriterConfig
	err  error
}

// NewWriter creates a new Writer writing to wr.
func NewWriter(wr io.Writer, conf *WriterConfig) (*Writer, error) {
	if err := conf.verify(); err != nil {
		return nil, err
	}
	return &Writer{wr: wr, conf: conf}, nil
}

func (zw *Writer) Write(buf []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}
	zw.buf = append(zw.buf, buf...)
	return len(buf), nil
}

// Close compresses the buffered input, writes the stream, and closes
// the Writer. The underlying writer is not closed.
func (zw *Writer) Close() error {
	if zw.err == ErrClosed {
		return nil
	}
	if zw.err != nil {
		return zw.err
	}
	out, err := Compress(zw.buf, zw.conf)
	if err != nil {
		zw.err = err
		return err
	}
	cnt, err := zw.wr.Write(out)
	zw.OutputOffset = int64(cnt)
	if err != nil {
		zw.err = err
		return err
	}
	zw.buf, zw.err = nil, ErrClosed
	return nil
}
