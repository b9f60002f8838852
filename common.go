// Copyright 2026, the lizards authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lizards implements the lizard compressed data format.
//
// The format combines LZSS dictionary substitution with dynamic Huffman
// entropy coding. Repeated byte runs are replaced by (offset, length)
// back-references into a bounded lookback window, and the resulting token
// stream is packed with variable-length prefix codes built from the
// file's observed symbol frequencies. A reserved stop symbol terminates
// each chunk so the bit stream needs no out-of-band length field.
package lizards

import "runtime"

// Format constants.
const (
	hdrMagic   = "LZRD"
	hdrVersion = 1

	// A back-reference shorter than minMatch costs more bits than the
	// literals it replaces.
	minMatch   = 3
	lengthBits = 11
	maxMatch   = minMatch + 1<<lengthBits - 1

	// Number of input bytes coded per chunk.
	chunkSize = 1 << 16

	MinWindowSize     = 1 << 6
	MaxWindowSize     = 1 << 16
	DefaultWindowSize = 1 << 12
)

// Symbol space for the entropy coder: literal byte values, a match
// marker introducing the raw offset/length fields, and the stop symbol.
const (
	symMatch   = 256
	symStop    = 257
	numSymbols = 258
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "lizards: " + string(e) }

var (
	// ErrMalformedHeader reports a missing or corrupt container header.
	ErrMalformedHeader error = Error("malformed header")
	// ErrTreeMismatch reports a bit sequence that cannot reach any leaf
	// of the decode tree.
	ErrTreeMismatch error = Error("bit stream does not match code tree")
	// ErrUnexpectedEOF reports a bit source that ended before a symbol
	// or match field resolved.
	ErrUnexpectedEOF error = Error("truncated stream")
	// ErrInvalidMatch reports a back-reference beyond the filled portion
	// of the lookback window.
	ErrInvalidMatch error = Error("match reference outside window")
	// ErrChecksum reports decoded output whose CRC-32 does not match the
	// header.
	ErrChecksum error = Error("checksum mismatch")
	// ErrInvalidConfig reports an out-of-range configuration value.
	ErrInvalidConfig error = Error("invalid configuration")
	// ErrClosed reports use of a closed Writer or Reader.
	ErrClosed error = Error("stream is closed")
)

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}

// windowBits reports the number of bits needed to store an offset into a
// window of size n. Window sizes are always powers of two.
func windowBits(n int) int {
	bits := 0
	for 1<<uint(bits) < n {
		bits++
	}
	return bits
}

func validWindowSize(n int) bool {
	return n >= MinWindowSize && n <= MaxWindowSize && n&(n-1) == 0
}
