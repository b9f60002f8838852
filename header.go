// Copyright 2026, the lizards authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lizards

import (
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tehsmeely/lizards/internal/huffman"
)

// fileHeader carries everything the decoder needs before the first
// chunk: the window capacity it must allocate, the checksum of the
// original data, and the code map governing every chunk. The body is
// MessagePack; only code-equivalence matters, not the frequency-derived
// tree shape, so codes are stored explicitly rather than the tree.
type fileHeader struct {
	WindowSize uint32      `msgpack:"window"`
	DataCRC    uint32      `msgpack:"crc"`
	Codes      []codeEntry `msgpack:"codes"`
}

type codeEntry struct {
	Sym uint16 `msgpack:"s"`
	Len uint8  `msgpack:"l"`
	Val uint64 `msgpack:"v"`
}

// Wire layout: magic, version byte, big-endian uint16 body length, the
// MessagePack body, then a CRC-32/IEEE of the body. The body checksum
// exists so corruption of the capacity or code fields surfaces as
// ErrMalformedHeader instead of garbage output.
const (
	hdrFixedLen = len(hdrMagic) + 1 + 2
	hdrCRCLen   = 4
)

func marshalHeader(windowSize int, dataCRC uint32, codes []huffman.Code) ([]byte, error) {
	hdr := fileHeader{
		WindowSize: uint32(windowSize),
		DataCRC:    dataCRC,
		Codes:      make([]codeEntry, 0, len(codes)),
	}
	for _, c := range codes {
		hdr.Codes = append(hdr.Codes, codeEntry{Sym: uint16(c.Sym), Len: c.Len, Val: c.Val})
	}

	body, err := msgpack.Marshal(&hdr)
	if err != nil {
		return nil, err
	}
	if len(body) > 1<<16-1 {
		return nil, ErrInvalidConfig
	}

	out := make([]byte, 0, hdrFixedLen+len(body)+hdrCRCLen)
	out = append(out, hdrMagic...)
	out = append(out, hdrVersion)
	out = binary.BigEndian.AppendUint16(out, uint16(len(body)))
	out = append(out, body...)
	out = binary.BigEndian.AppendUint32(out, crc32.ChecksumIEEE(body))
	return out, nil
}

// readHeader consumes the header from rd and returns the window size,
// expected data checksum, and the rebuilt decode tree. Every failure
// mode maps to ErrMalformedHeader: corruption in the header is not
// recoverable and decode must not start.
func readHeader(rd io.Reader) (windowSize int, dataCRC uint32, tree *huffman.Tree, err error) {
	var fixed [hdrFixedLen]byte
	if _, err := io.ReadFull(rd, fixed[:]); err != nil {
		return 0, 0, nil, ErrMalformedHeader
	}
	if string(fixed[:len(hdrMagic)]) != hdrMagic || fixed[len(hdrMagic)] != hdrVersion {
		return 0, 0, nil, ErrMalformedHeader
	}

	bodyLen := int(binary.BigEndian.Uint16(fixed[hdrFixedLen-2:]))
	body := make([]byte, bodyLen+hdrCRCLen)
	if _, err := io.ReadFull(rd, body); err != nil {
		return 0, 0, nil, ErrMalformedHeader
	}
	sum := binary.BigEndian.Uint32(body[bodyLen:])
	body = body[:bodyLen]
	if crc32.ChecksumIEEE(body) != sum {
		return 0, 0, nil, ErrMalformedHeader
	}

	var hdr fileHeader
	if err := msgpack.Unmarshal(body, &hdr); err != nil {
		return 0, 0, nil, ErrMalformedHeader
	}
	if !validWindowSize(int(hdr.WindowSize)) || len(hdr.Codes) == 0 {
		return 0, 0, nil, ErrMalformedHeader
	}

	codes := make([]huffman.Code, 0, len(hdr.Codes))
	for _, c := range hdr.Codes {
		if c.Sym >= numSymbols {
			return 0, 0, nil, ErrMalformedHeader
		}
		codes = append(codes, huffman.Code{Sym: huffman.Symbol(c.Sym), Len: c.Len, Val: c.Val})
	}
	tree, err = huffman.FromCodes(codes)
	if err != nil {
		return 0, 0, nil, ErrMalformedHeader
	}
	return int(hdr.WindowSize), hdr.DataCRC, tree, nil
}
