// Copyright 2014 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ScriptRock/textpdf/internal/types"
	"github.com/ScriptRock/textpdf/text"
)

// A Reader is a single PDF file open for reading.
//
// Only the subset of PDF that Serialize writes is understood: a classic
// cross-reference table, a single trailer without /Prev, and unfiltered
// streams. That is enough to read a generated document back and check it.
type Reader struct {
	f       io.ReaderAt
	end     int64
	xref    []types.Xref
	startx  int64
	trailer types.Dict
}

// Open opens a file for reading.
// Reader.Close should be called when done with the Reader.
func Open(file string) (*Reader, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	r, err := NewReader(f, fi.Size())
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// NewReader opens a file for reading, using the data in f with the given total size.
func NewReader(f io.ReaderAt, size int64) (r *Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r = nil
			err = fmt.Errorf("%v", rec)
		}
	}()

	buf := make([]byte, 10)
	f.ReadAt(buf, 0)
	if !bytes.HasPrefix(buf, []byte("%PDF-1.")) || buf[7] < '0' || buf[7] > '7' || buf[8] != '\r' && buf[8] != '\n' {
		return nil, fmt.Errorf("not a PDF file: invalid header")
	}
	end := size
	endChunk := int64(100)
	if endChunk > end {
		endChunk = end
	}
	buf = make([]byte, endChunk)
	f.ReadAt(buf, end-endChunk)
	buf = bytes.TrimRight(buf, "\r\n\t ")
	if !bytes.HasSuffix(buf, []byte("%%EOF")) {
		return nil, fmt.Errorf("not a PDF file: missing %%%%EOF")
	}
	i := findLastLine(buf, "startxref")
	if i < 0 {
		return nil, fmt.Errorf("malformed PDF file: missing final startxref")
	}

	r = &Reader{
		f:   f,
		end: end,
	}
	pos := end - endChunk + int64(i)
	b := newBuffer(io.NewSectionReader(f, pos, end-pos), pos)
	if b.readToken() != keyword("startxref") {
		return nil, fmt.Errorf("malformed PDF file: missing startxref")
	}
	startxref, ok := b.readToken().(int64)
	if !ok {
		return nil, fmt.Errorf("malformed PDF file: startxref not followed by integer")
	}
	if startxref < 0 || startxref >= end {
		return nil, fmt.Errorf("malformed PDF file: startxref %d out of range", startxref)
	}
	b = newBuffer(io.NewSectionReader(r.f, startxref, r.end-startxref), startxref)
	if tok := b.readToken(); tok != keyword("xref") {
		return nil, fmt.Errorf("malformed PDF: cross-reference table not found: %v", tok)
	}
	xref, trailer, err := readXrefTable(b)
	if err != nil {
		return nil, err
	}
	r.xref = xref
	r.trailer = trailer
	r.startx = startxref
	return r, nil
}

// Close closes the underlying Reader if it is an io.Closer.
func (r *Reader) Close() error {
	if c, ok := r.f.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// Xref returns a copy of the cross-reference table, indexed by object number.
func (r *Reader) Xref() []types.Xref {
	return append([]types.Xref(nil), r.xref...)
}

// StartXref returns the byte offset named after the startxref keyword.
func (r *Reader) StartXref() int64 { return r.startx }

// Trailer returns the file's trailer dictionary.
func (r *Reader) Trailer() Value {
	return Value{r: r, data: r.trailer}
}

// Object returns the indirect object with the given number.
func (r *Reader) Object(id int) (v Value, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("loading object %d: %v", id, rec)
		}
	}()
	if id <= 0 || id >= len(r.xref) || !r.xref[id].InUse {
		return Value{}, fmt.Errorf("object %d not in cross-reference table", id)
	}
	return r.resolve(types.Objptr{}, r.xref[id].Ptr), nil
}

// Text returns the text painted on each page.
func (r *Reader) Text() ([]text.Text, error) {
	var tt []text.Text
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		t, err := p.Text()
		if err != nil {
			return nil, fmt.Errorf("failed to read page text: %w", err)
		}
		tt = append(tt, t)
	}

	return tt, nil
}

func readXrefTable(b *buffer) ([]types.Xref, types.Dict, error) {
	var table []types.Xref

	for {
		tok := b.readToken()
		if tok == keyword("trailer") {
			break
		}
		start, ok1 := tok.(int64)
		n, ok2 := b.readToken().(int64)
		if !ok1 || !ok2 {
			return nil, nil, fmt.Errorf("malformed PDF: malformed xref table")
		}
		for i := 0; i < int(n); i++ {
			off, ok1 := b.readToken().(int64)
			gen, ok2 := b.readToken().(int64)
			alloc, ok3 := b.readToken().(keyword)
			if !ok1 || !ok2 || !ok3 || alloc != keyword("f") && alloc != keyword("n") {
				return nil, nil, fmt.Errorf("malformed PDF: malformed xref table")
			}
			x := int(start) + i
			for len(table) <= x {
				table = append(table, types.Xref{})
			}
			table[x] = types.Xref{
				Ptr:    types.Objptr{ID: uint32(x), Gen: uint16(gen)},
				InUse:  alloc == keyword("n"),
				Offset: off,
			}
		}
	}

	trailer, ok := b.readObject().(types.Dict)
	if !ok {
		return nil, nil, fmt.Errorf("malformed PDF: xref table not followed by trailer dictionary")
	}
	if trailer["Prev"] != nil {
		return nil, nil, fmt.Errorf("unsupported PDF: incremental update (trailer has /Prev)")
	}

	if _, ok := trailer[types.Name("Size")].(int64); !ok {
		return nil, nil, fmt.Errorf("malformed PDF: trailer missing /Size entry")
	}

	return table, trailer, nil
}

func findLastLine(buf []byte, s string) int {
	bs := []byte(s)
	max := len(buf)
	for {
		i := bytes.LastIndex(buf[:max], bs)
		if i <= 0 || i+len(bs) >= len(buf) {
			return -1
		}
		if (buf[i-1] == '\n' || buf[i-1] == '\r') && (buf[i+len(bs)] == '\n' || buf[i+len(bs)] == '\r') {
			return i
		}
		max = i
	}
}

func (r *Reader) resolve(parent types.Objptr, x types.Object) Value {
	if ptr, ok := x.(types.Objptr); ok {
		if ptr.ID >= uint32(len(r.xref)) {
			return Value{}
		}
		xref := r.xref[ptr.ID]
		if xref.Ptr != ptr || !xref.InUse {
			return Value{}
		}
		b := newBuffer(io.NewSectionReader(r.f, xref.Offset, r.end-xref.Offset), xref.Offset)
		obj := b.readObject()
		def, ok := obj.(types.Objdef)
		if !ok {
			panic(fmt.Errorf("loading %v: found %T instead of types.Objdef", ptr, obj))
		}
		if def.Ptr != ptr {
			panic(fmt.Errorf("loading %v: found %v", ptr, def.Ptr))
		}
		x = def.Obj
		parent = ptr
	}

	switch x := x.(type) {
	case nil, bool, int64, float64, types.Name, types.Dict, types.Array, types.Stream, string:
		return Value{r: r, ptr: parent, data: x}
	default:
		panic(fmt.Errorf("unexpected value type %T in resolve", x))
	}
}

type errorReadCloser struct {
	err error
}

func (e *errorReadCloser) Read([]byte) (int, error) {
	return 0, e.err
}

func (e *errorReadCloser) Close() error {
	return e.err
}

// Reader returns the data contained in the stream v.
// If v.Kind() != StreamKind, or the stream is filtered, Reader returns a
// ReadCloser that responds to all reads with an error.
func (v Value) Reader() io.ReadCloser {
	x, ok := v.data.(types.Stream)
	if !ok {
		return &errorReadCloser{fmt.Errorf("stream not present")}
	}
	if f := v.Key("Filter"); f.Kind() != NullKind {
		return &errorReadCloser{fmt.Errorf("unsupported filter %v", f)}
	}
	rd := io.NewSectionReader(v.r.f, x.Offset, v.Key("Length").Int64())
	return io.NopCloser(rd)
}
