// Copyright 2014 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Tokenizing of the PDF syntax written by Serialize, used to read it back.
//
// Only the token forms Serialize can produce are accepted: integers and
// reals, plain names, literal strings with the \\, \( and \) escapes,
// dictionaries, arrays, indirect references and definitions, and
// unfiltered streams. Anything else is reported as malformed.

package pdf

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ScriptRock/textpdf/internal/types"
)

// A token is one of:
//
//	bool, int64, float64
//	string, the bytes of a literal string
//	keyword, a bare word or one of the delimiters <<, >>, [ and ]
//	types.Name, a name without the leading slash
type token any

type keyword string

// A buffer reads tokens from a section of the file, or from a content stream.
type buffer struct {
	r      io.Reader
	buf    []byte
	pos    int
	offset int64 // file offset just past buf
	tmp    []byte
	unread []token
	eof    bool

	// content streams end at EOF and hold neither references nor streams
	content bool
	objptr  types.Objptr
}

func newBuffer(r io.Reader, offset int64) *buffer {
	return &buffer{r: r, offset: offset, buf: make([]byte, 0, 4096)}
}

func newContentBuffer(r io.Reader) *buffer {
	b := newBuffer(r, 0)
	b.content = true
	return b
}

func (b *buffer) errorf(format string, args ...any) {
	panic(fmt.Errorf(format, args...))
}

// readByte returns '\n' once the input is exhausted, so every token
// is terminated.
func (b *buffer) readByte() byte {
	if b.pos == len(b.buf) && !b.fill() {
		return '\n'
	}
	c := b.buf[b.pos]
	b.pos++
	return c
}

func (b *buffer) fill() bool {
	n, err := b.r.Read(b.buf[:cap(b.buf)])
	b.buf, b.pos = b.buf[:n], 0
	b.offset += int64(n)
	if n > 0 {
		return true
	}
	if err == io.EOF && b.content {
		b.eof = true
		return false
	}
	if err == nil {
		err = io.ErrNoProgress
	}
	b.errorf("malformed PDF: reading at offset %d: %v", b.offset, err)
	return false
}

func (b *buffer) unreadByte() {
	if b.pos > 0 {
		b.pos--
	}
}

// readOffset is the file offset of the next unread byte.
func (b *buffer) readOffset() int64 {
	return b.offset - int64(len(b.buf)-b.pos)
}

func (b *buffer) unreadToken(t token) {
	b.unread = append(b.unread, t)
}

func (b *buffer) readToken() token {
	if n := len(b.unread); n > 0 {
		t := b.unread[n-1]
		b.unread = b.unread[:n-1]
		return t
	}

	c := b.readByte()
	for isSpace(c) || c == '%' {
		if b.eof {
			return io.EOF
		}
		if c == '%' {
			for c != '\n' && c != '\r' {
				c = b.readByte()
			}
			continue
		}
		c = b.readByte()
	}

	switch c {
	case '(':
		return b.readLiteralString()
	case '/':
		return types.Name(b.readWord())
	case '[', ']':
		return keyword([]byte{c})
	case '<', '>':
		if b.readByte() != c {
			b.errorf("malformed PDF: unexpected %q at offset %d", c, b.readOffset()-1)
		}
		return keyword([]byte{c, c})
	}
	if isDelim(c) {
		b.errorf("malformed PDF: unexpected delimiter %q", c)
	}
	b.unreadByte()
	return b.readBareWord()
}

// readLiteralString is the inverse of encoding.Escape. Balanced
// parentheses may also appear unescaped.
func (b *buffer) readLiteralString() token {
	tmp := b.tmp[:0]
	for depth := 1; ; {
		if b.eof {
			b.errorf("unterminated literal string")
		}
		c := b.readByte()
		switch c {
		case '(':
			depth++
		case ')':
			if depth--; depth == 0 {
				b.tmp = tmp
				return string(tmp)
			}
		case '\\':
			switch c = b.readByte(); c {
			case '\\', '(', ')':
			default:
				b.errorf("unsupported escape sequence \\%c", c)
			}
		}
		tmp = append(tmp, c)
	}
}

func (b *buffer) readWord() string {
	tmp := b.tmp[:0]
	for {
		c := b.readByte()
		if isDelim(c) || isSpace(c) {
			b.unreadByte()
			break
		}
		tmp = append(tmp, c)
	}
	b.tmp = tmp
	return string(tmp)
}

// readBareWord reads a boolean, a number or a keyword.
func (b *buffer) readBareWord() token {
	s := b.readWord()
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if tok, ok := parseNumber(s); ok {
		return tok
	}
	return keyword(s)
}

// parseNumber returns s as an int64 if it has no decimal point and as a
// float64 if it has exactly one.
func parseNumber(s string) (token, bool) {
	digits := s
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
	}
	dots := 0
	for i := 0; i < len(digits); i++ {
		switch c := digits[i]; {
		case c == '.':
			dots++
		case c < '0' || c > '9':
			return nil, false
		}
	}
	if len(digits) == dots || dots > 1 {
		return nil, false
	}
	if dots == 0 {
		x, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, false
		}
		return x, true
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return x, true
}

func (b *buffer) readObject() types.Object {
	tok := b.readToken()
	switch tok {
	case keyword("null"):
		return nil
	case keyword("<<"):
		return b.readDict()
	case keyword("["):
		return b.readArray()
	}
	if kw, ok := tok.(keyword); ok {
		b.errorf("unexpected keyword %q parsing object", kw)
	}
	if id, ok := tok.(int64); ok && !b.content {
		return b.readReference(id)
	}
	return tok
}

// readReference completes "id gen R" or "id gen obj ... endobj" after id
// has been read. A lone integer is returned unchanged.
func (b *buffer) readReference(id int64) types.Object {
	tok2 := b.readToken()
	gen, ok := tok2.(int64)
	if !ok || int64(uint32(id)) != id || int64(uint16(gen)) != gen {
		b.unreadToken(tok2)
		return id
	}
	ptr := types.Objptr{ID: uint32(id), Gen: uint16(gen)}

	switch tok3 := b.readToken(); tok3 {
	case keyword("R"):
		return ptr
	case keyword("obj"):
		outer := b.objptr
		b.objptr = ptr
		obj := b.readObject()
		if _, ok := obj.(types.Stream); !ok && b.readToken() != keyword("endobj") {
			b.errorf("missing endobj after %v", ptr)
		}
		b.objptr = outer
		return types.Objdef{Ptr: ptr, Obj: obj}
	default:
		b.unreadToken(tok3)
	}
	b.unreadToken(tok2)
	return id
}

func (b *buffer) readArray() types.Object {
	var x types.Array
	for {
		switch tok := b.readToken(); tok {
		case io.EOF:
			b.errorf("stream ended with open array")
		case keyword("]"):
			return x
		default:
			b.unreadToken(tok)
			x = append(x, b.readObject())
		}
	}
}

func (b *buffer) readDict() types.Object {
	x := make(types.Dict)
	for {
		tok := b.readToken()
		if tok == io.EOF {
			b.errorf("stream ended with open dict")
		}
		if tok == keyword(">>") {
			break
		}
		n, ok := tok.(types.Name)
		if !ok {
			b.errorf("unexpected non-name key %#v parsing dictionary", tok)
		}
		x[n] = b.readObject()
	}

	if b.content {
		return x
	}
	if tok := b.readToken(); tok != keyword("stream") {
		b.unreadToken(tok)
		return x
	}
	if b.readByte() != '\n' {
		b.errorf("stream keyword not followed by newline")
	}
	return types.Stream{Hdr: x, Ptr: b.objptr, Offset: b.readOffset()}
}

func isSpace(c byte) bool {
	switch c {
	case '\x00', '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

func isDelim(c byte) bool {
	switch c {
	case '<', '>', '(', ')', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}
