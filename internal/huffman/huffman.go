// Copyright 2026, the lizards authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman builds prefix code trees from symbol frequencies and
// walks them bit-by-bit for decoding.
//
// Construction is the standard greedy algorithm: repeatedly merge the
// two lowest-weight nodes until a single root remains. Ties are broken
// by insertion order, so the same frequency table always produces the
// same tree shape and therefore the same codes, on every run and on
// both sides of a stream.
package huffman

import (
	"container/heap"
	"io"
	"sort"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "huffman: " + string(e) }

var (
	// ErrNoSymbols reports a frequency table with no positive counts.
	ErrNoSymbols error = Error("no symbols with positive frequency")
	// ErrCodeTooLong reports a tree deeper than 64 levels. Frequencies
	// would need to grow faster than Fibonacci numbers for this to
	// happen, which no realistic input can produce.
	ErrCodeTooLong error = Error("code longer than 64 bits")
	// ErrDesync reports a tree walk that stepped off the tree. The bit
	// stream was not produced by this tree.
	ErrDesync error = Error("bit stream does not resolve to a leaf")
	// ErrInvalidCodes reports a serialized code set that does not form a
	// valid prefix code.
	ErrInvalidCodes error = Error("code set is not prefix-free")
)

// Symbol identifies one value in the coded alphabet.
type Symbol uint16

// Code is the bit sequence assigned to one symbol. Bit 0 of Val is the
// first bit consumed when walking from the root (left=0, right=1), which
// matches the LSB-first order of the underlying bit stream.
type Code struct {
	Sym Symbol
	Val uint64
	Len uint8
}

// Tree is a binary prefix code tree. Leaves hold symbols; internal
// nodes hold only children.
type Tree struct {
	root *node
}

type node struct {
	left  *node
	right *node
	sym   Symbol
	leaf  bool
}

// buildNode pairs a tree node with its weight and insertion order while
// the tree is under construction.
type buildNode struct {
	n      *node
	weight int64
	order  int
}

type buildHeap []buildNode

func (h buildHeap) Len() int { return len(h) }
func (h buildHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].order < h[j].order
}
func (h buildHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *buildHeap) Push(x interface{}) { *h = append(*h, x.(buildNode)) }
func (h *buildHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Build constructs a tree from freqs, where freqs[sym] is the observed
// count for Symbol(sym). Symbols with zero frequency receive no leaf.
// A single-symbol alphabet still yields a code of length 1; zero-length
// codes never exist.
func Build(freqs []int64) (*Tree, error) {
	h := make(buildHeap, 0, len(freqs))
	order := 0
	for sym, cnt := range freqs {
		if cnt <= 0 {
			continue
		}
		h = append(h, buildNode{
			n:      &node{sym: Symbol(sym), leaf: true},
			weight: cnt,
			order:  order,
		})
		order++
	}
	if len(h) == 0 {
		return nil, ErrNoSymbols
	}
	heap.Init(&h)

	if len(h) == 1 {
		// Degenerate alphabet: hang the only leaf off an internal root
		// so its code is "0" rather than the empty string.
		only := heap.Pop(&h).(buildNode)
		return &Tree{root: &node{left: only.n}}, nil
	}

	for len(h) > 1 {
		a := heap.Pop(&h).(buildNode)
		b := heap.Pop(&h).(buildNode)
		heap.Push(&h, buildNode{
			n:      &node{left: a.n, right: b.n},
			weight: a.weight + b.weight,
			order:  order,
		})
		order++
	}
	t := &Tree{root: heap.Pop(&h).(buildNode).n}
	if t.depth(t.root, 0) > 64 {
		return nil, ErrCodeTooLong
	}
	return t, nil
}

func (t *Tree) depth(nd *node, d int) int {
	if nd == nil || nd.leaf {
		return d
	}
	l := t.depth(nd.left, d+1)
	r := t.depth(nd.right, d+1)
	if l > r {
		return l
	}
	return r
}

// Codes derives the symbol-to-bits mapping by depth-first traversal,
// appending 0 for a left branch and 1 for a right branch. The result is
// sorted by symbol and depends only on the tree shape.
func (t *Tree) Codes() []Code {
	var codes []Code
	var walk func(nd *node, val uint64, depth uint8)
	walk = func(nd *node, val uint64, depth uint8) {
		if nd == nil {
			return
		}
		if nd.leaf {
			codes = append(codes, Code{Sym: nd.sym, Val: val, Len: depth})
			return
		}
		walk(nd.left, val, depth+1)
		walk(nd.right, val|1<<depth, depth+1)
	}
	walk(t.root, 0, 0)
	sort.Slice(codes, func(i, j int) bool { return codes[i].Sym < codes[j].Sym })
	return codes
}

// BitReader is the bit source consumed by Decode.
type BitReader interface {
	ReadBit() (bool, error)
}

// Decode walks from the root, consuming one bit per branch, until a
// leaf resolves. io.EOF is returned only when the source is exhausted
// before the first bit; exhaustion mid-walk is io.ErrUnexpectedEOF.
// Stepping onto a missing child reports ErrDesync.
func (t *Tree) Decode(rd BitReader) (Symbol, error) {
	nd := t.root
	for first := true; ; first = false {
		bit, err := rd.ReadBit()
		if err != nil {
			if err == io.EOF && !first {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		if bit {
			nd = nd.right
		} else {
			nd = nd.left
		}
		if nd == nil {
			return 0, ErrDesync
		}
		if nd.leaf {
			return nd.sym, nil
		}
	}
}

// FromCodes reconstructs a decode tree from a serialized code set. The
// tree decodes identically to the one the codes were derived from, even
// though unlabeled internal structure is not preserved.
func FromCodes(codes []Code) (*Tree, error) {
	if len(codes) == 0 {
		return nil, ErrNoSymbols
	}
	root := &node{}
	for _, c := range codes {
		if c.Len == 0 || c.Len > 64 {
			return nil, ErrInvalidCodes
		}
		nd := root
		for i := uint8(0); i < c.Len; i++ {
			if nd.leaf {
				return nil, ErrInvalidCodes
			}
			if c.Val>>i&1 == 0 {
				if nd.left == nil {
					nd.left = &node{}
				}
				nd = nd.left
			} else {
				if nd.right == nil {
					nd.right = &node{}
				}
				nd = nd.right
			}
		}
		if nd.leaf || nd.left != nil || nd.right != nil {
			return nil, ErrInvalidCodes
		}
		nd.sym, nd.leaf = c.Sym, true
	}
	return &Tree{root: root}, nil
}
