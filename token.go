// Copyright 2026, the lizards authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lizards

// tokenKind discriminates the closed set of token variants. Using a
// tagged struct instead of an interface keeps token handling exhaustive
// and allocation free.
type tokenKind uint8

const (
	tokenLiteral tokenKind = iota
	tokenMatch
)

// token is one unit of the LZSS stream: either a single literal byte or
// a back-reference of length bytes starting offset positions behind the
// current output position.
type token struct {
	kind   tokenKind
	lit    byte
	offset int // 1..window size
	length int // minMatch..maxMatch
}

func literalToken(b byte) token {
	return token{kind: tokenLiteral, lit: b}
}

func matchToken(offset, length int) token {
	return token{kind: tokenMatch, offset: offset, length: length}
}

// inputLen reports how many input bytes the token covers.
func (t token) inputLen() int {
	switch t.kind {
	case tokenLiteral:
		return 1
	case tokenMatch:
		return t.length
	}
	panic("lizards: unknown token kind")
}
