// Copyright 2026, the lizards authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"fmt"
	"io"
	"strconv"
)

// Dot writes the tree as a Graphviz digraph for human inspection.
// Leaves are labeled with their symbol, printable byte symbols also with
// their character. The output never feeds back into encoding.
func (t *Tree) Dot(w io.Writer) error {
	if t.root == nil {
		_, err := fmt.Fprintln(w, "digraph G {\n}")
		return err
	}

	id := 0
	var walk func(nd *node, parent int, edge string) error
	walk = func(nd *node, parent int, edge string) error {
		if nd == nil {
			return nil
		}
		id++
		this := id
		label := ""
		if nd.leaf {
			label = strconv.Itoa(int(nd.sym))
			if nd.sym < 0x80 && strconv.IsPrint(rune(nd.sym)) {
				label = fmt.Sprintf("%d %q", nd.sym, rune(nd.sym))
			}
		}
		if _, err := fmt.Fprintf(w, "\tn%d [label=%q];\n", this, label); err != nil {
			return err
		}
		if parent >= 0 {
			if _, err := fmt.Fprintf(w, "\tn%d -> n%d [label=%q];\n", parent, this, edge); err != nil {
				return err
			}
		}
		if err := walk(nd.left, this, "0"); err != nil {
			return err
		}
		return walk(nd.right, this, "1")
	}

	if _, err := fmt.Fprintln(w, "digraph G {"); err != nil {
		return err
	}
	if err := walk(t.root, -1, ""); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
