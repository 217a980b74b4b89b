// Copyright 2014 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package encoding

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Replacement is written in place of a rune that has no Latin-1 byte.
const Replacement = '?'

// A Substitution records one rune that could not be encoded.
type Substitution struct {
	Pos  int // byte index of the rune in the normalised input
	Rune rune
}

// Latin1 converts UTF-8 text to the single-byte encoding used for the
// standard Type1 fonts. The text is NFC-normalised first so that
// decomposed accents still map to their precomposed Latin-1 byte.
// Unencodable runes become Replacement and are reported in subs.
func Latin1(s string) (b []byte, subs []Substitution) {
	s = norm.NFC.String(s)
	b = make([]byte, 0, len(s))
	for i, r := range s {
		c, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			subs = append(subs, Substitution{Pos: i, Rune: r})
			c = Replacement
		}
		b = append(b, c)
	}
	return b, subs
}

// Latin1Decode converts bytes painted with a Latin-1 font back to UTF-8.
func Latin1Decode(raw string) string {
	for i := 0; i < len(raw); i++ {
		if raw[i] >= 0x80 {
			goto Decode
		}
	}
	return raw

Decode:
	r := make([]rune, len(raw))
	for i := 0; i < len(raw); i++ {
		r[i] = charmap.ISO8859_1.DecodeByte(raw[i])
	}
	return string(r)
}

// Escape prefixes the literal-string delimiters \, ( and ) with a backslash.
// All other bytes pass through unchanged.
func Escape(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		switch c {
		case '\\', '(', ')':
			out = append(out, '\\')
		}
		out = append(out, c)
	}
	return out
}
