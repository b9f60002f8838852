// Copyright 2026, the lizards authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lizards

// lookback is the sliding window of the most recently emitted bytes.
// It is backed by a single growing slice that is compacted once it
// reaches twice the window size, so record is O(1) amortized and match
// sources can be addressed with plain index arithmetic.
//
// The window is owned by exactly one encode or decode pass. The decoder
// replays matches through the same structure the encoder searched, which
// keeps both sides bit-exact.
type lookback struct {
	hist []byte // recent history; the last min(len, size) bytes are live
	size int    // window capacity, fixed for the life of the stream
}

func newLookback(size int) *lookback {
	return &lookback{hist: make([]byte, 0, 2*size), size: size}
}

// filled reports how many bytes are available as match sources.
func (lb *lookback) filled() int {
	if len(lb.hist) > lb.size {
		return lb.size
	}
	return len(lb.hist)
}

// record appends one emitted byte, evicting the oldest once the window
// is full.
func (lb *lookback) record(b byte) {
	if len(lb.hist) == cap(lb.hist) {
		n := copy(lb.hist, lb.hist[len(lb.hist)-lb.size:])
		lb.hist = lb.hist[:n]
	}
	lb.hist = append(lb.hist, b)
}

// recordAll appends a run of emitted bytes.
func (lb *lookback) recordAll(p []byte) {
	for _, b := range p {
		lb.record(b)
	}
}

// byteAt returns the byte dist positions behind the current output
// position. The caller guarantees 1 <= dist <= filled().
func (lb *lookback) byteAt(dist int) byte {
	return lb.hist[len(lb.hist)-dist]
}

// findMatch returns the longest run such that copying length bytes from
// offset positions back reproduces a prefix of upcoming. Ties are broken
// toward the smallest offset, since closer references are no more
// expensive and keep the stream deterministic. A match may run past the
// end of recorded history into the bytes it is itself producing
// (repetition runs); those bytes are, by construction, the already
// matched prefix of upcoming.
//
// Returns (0, 0) when no run reaches minMatch.
func (lb *lookback) findMatch(upcoming []byte) (offset, length int) {
	live := lb.filled()
	base := len(lb.hist) - live
	for dist := 1; dist <= live; dist++ {
		start := base + live - dist
		n := 0
		for n < len(upcoming) {
			var ref byte
			if idx := start + n; idx < len(lb.hist) {
				ref = lb.hist[idx]
			} else {
				ref = upcoming[idx-len(lb.hist)]
			}
			if ref != upcoming[n] {
				break
			}
			n++
		}
		if n > length {
			offset, length = dist, n
			if length == len(upcoming) {
				break
			}
		}
	}
	if length < minMatch {
		return 0, 0
	}
	return offset, length
}
