// Copyright 2014 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/ScriptRock/textpdf/internal/state"
	"github.com/ScriptRock/textpdf/text"
)

// A Page represent a single page in a PDF file.
// The methods interpret a Page dictionary stored in V.
type Page struct {
	V Value
}

// Page returns page num, counting from 1. If there is no such page the
// returned Page has a null V. Only the single level of /Kids that
// Serialize writes is searched.
func (r *Reader) Page(num int) Page {
	kids := r.Trailer().Key("Root").Key("Pages").Key("Kids")
	if num < 1 || num > kids.Len() {
		return Page{}
	}
	kid := kids.Index(num - 1)
	if kid.Key("Type").Name() != "Page" {
		return Page{}
	}
	return Page{kid}
}

// NumPage returns the number of pages in the PDF file.
func (r *Reader) NumPage() int {
	return int(r.Trailer().Key("Root").Key("Pages").Key("Count").Int64())
}

func (p Page) findInherited(key string) Value {
	for v := p.V; !v.IsNull(); v = v.Key("Parent") {
		if r := v.Key(key); !r.IsNull() {
			return r
		}
	}
	return Value{}
}

// MediaBox returns the page's width and height.
func (p Page) MediaBox() (width, height float64) {
	box := p.findInherited("MediaBox")
	return box.Index(2).Float64() - box.Index(0).Float64(), box.Index(3).Float64() - box.Index(1).Float64()
}

// Resources returns the resources dictionary associated with the page.
func (p Page) Resources() Value {
	return p.findInherited("Resources")
}

// Fonts returns the resource names of the fonts associated with the page.
func (p Page) Fonts() []string {
	return p.Resources().Key("Font").Keys()
}

// Font returns the font with the given resource name.
func (p Page) Font(name string) *Font {
	return NewFont(p.Resources().Key("Font").Key(name))
}

// Content returns the raw bytes of the page's content stream.
func (p Page) Content() ([]byte, error) {
	v := p.V.Key("Contents")
	if v.Kind() != StreamKind {
		return nil, fmt.Errorf("malformed PDF: page /Contents is not a stream: %v", v)
	}
	rd := v.Reader()
	defer rd.Close()
	return io.ReadAll(rd)
}

// Text interprets the page's content stream and returns the painted text,
// one line per text-showing operator.
func (p Page) Text() (result text.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("failed to read page text: %v\n%s", r, debug.Stack())
		}
	}()

	decoders := make(map[string]decoder)
	names := make(map[string]string)
	for _, name := range p.Fonts() {
		f := p.Font(name)
		decoders[name] = f
		names[name] = f.Name()
	}

	content := p.V.Key("Contents")
	if content.Kind() != StreamKind {
		return nil, fmt.Errorf("malformed PDF: page /Contents is not a stream: %v", content)
	}

	var (
		out    text.Builder
		gState state.Graphics
	)
	r := renderFunc(func(x, y, size float64, resource, raw string) {
		dec, ok := decoders[resource]
		if !ok {
			panic(fmt.Errorf("text shown with unknown font resource %q", resource))
		}
		out.Render(x, y, size, names[resource], dec.Decode(raw))
	})

	rd := content.Reader()
	defer rd.Close()
	Interpret(rd, func(stk *Stack, op string) {
		n := stk.Len()
		args := make([]Value, n)
		for i := n - 1; i >= 0; i-- {
			args[i] = stk.Pop()
		}
		if want, ok := operandCount[op]; ok && n != want {
			panic(fmt.Errorf("operator %s: got %d operands, want %d", op, n, want))
		}

		switch op {
		case "q":
			gState.Push()
		case "Q":
			gState.Pop()
		case "cm":
			gState.CM(args[0].Float64(), args[1].Float64(), args[2].Float64(), args[3].Float64(), args[4].Float64(), args[5].Float64())
		case "rg":
			gState.RG(args[0].Float64(), args[1].Float64(), args[2].Float64())

		case "TL":
			gState.TL(args[0].Float64())
		case "BT":
			gState.BT()
		case "ET":
			gState.ET()
		case "Td":
			gState.Td(args[0].Float64(), args[1].Float64())
		case "TD":
			gState.TD(args[0].Float64(), args[1].Float64())
		case "Tm":
			gState.Tm(args[0].Float64(), args[1].Float64(), args[2].Float64(), args[3].Float64(), args[4].Float64(), args[5].Float64())
		case "T*":
			gState.Tstar()
		case "Tf":
			gState.Tf(args[0].Name(), args[1].Float64())
		case `'`:
			gState.Tstar()
			fallthrough
		case "Tj":
			gState.Tj(r, args[0].RawString())
		case "TJ":
			arr := args[0]
			for i := 0; i < arr.Len(); i++ {
				if e := arr.Index(i); e.Kind() == StringKind {
					gState.Tj(r, e.RawString())
				}
			}
		}
	})

	return out.Text(), nil
}

var operandCount = map[string]int{
	"q": 0, "Q": 0, "cm": 6, "rg": 3,
	"TL": 1, "BT": 0, "ET": 0, "Td": 2, "TD": 2, "Tm": 6, "T*": 0, "Tf": 2,
	"'": 1, "Tj": 1, "TJ": 1,
}

type renderFunc func(x, y, size float64, font, raw string)

func (f renderFunc) Render(x, y, size float64, font, raw string) { f(x, y, size, font, raw) }
