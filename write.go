package pdf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

const header = "%PDF-1.4\n"

// The fixed object graph of a one-page document, in object-number order.
type objectKind int

const (
	catalogObject objectKind = iota + 1
	pagesObject
	pageObject
	bodyFontObject
	headingFontObject
	contentsObject
)

// catalogID is the /Root of the trailer.
const catalogID = int(catalogObject)

// objectCount is the number of indirect objects in every document.
const objectCount = int(contentsObject)

type object struct {
	id   int
	kind objectKind
	body []byte
}

func objectGraph(content []byte, opts *Options) []object {
	stream := fmt.Appendf(nil, "<< /Length %d >>\nstream\n", len(content))
	stream = append(stream, content...)
	stream = append(stream, "\nendstream"...)

	page := fmt.Sprintf("<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %s %s] "+
		"/Resources << /Font << /%s %d 0 R /%s %d 0 R >> >> /Contents %d 0 R >>",
		pagesObject, num(opts.Page.Width), num(opts.Page.Height),
		Body.Resource(), bodyFontObject, Heading.Resource(), headingFontObject,
		contentsObject)

	return []object{
		{id: catalogID, kind: catalogObject,
			body: fmt.Appendf(nil, "<< /Type /Catalog /Pages %d 0 R >>", pagesObject)},
		{id: int(pagesObject), kind: pagesObject,
			body: fmt.Appendf(nil, "<< /Type /Pages /Kids [%d 0 R] /Count 1 >>", pageObject)},
		{id: int(pageObject), kind: pageObject, body: []byte(page)},
		{id: int(bodyFontObject), kind: bodyFontObject, body: fontDict(opts.Fonts.BaseFont(Body))},
		{id: int(headingFontObject), kind: headingFontObject, body: fontDict(opts.Fonts.BaseFont(Heading))},
		{id: int(contentsObject), kind: contentsObject, body: stream},
	}
}

func fontDict(base string) []byte {
	return []byte("<< /Type /Font /Subtype /Type1 /BaseFont /" + base + " >>")
}

// accumulator is threaded through the object fold; offsets[i] is the
// position of object i+1 in buf, taken just before it was appended.
type accumulator struct {
	buf     []byte
	offsets []int
}

func (a accumulator) object(o object) accumulator {
	a.offsets = append(a.offsets, len(a.buf))
	a.buf = fmt.Appendf(a.buf, "%d 0 obj\n", o.id)
	a.buf = append(a.buf, o.body...)
	a.buf = append(a.buf, "\nendobj\n"...)
	return a
}

func (a accumulator) trailer(root int) []byte {
	xrefPos := len(a.buf)
	size := len(a.offsets) + 1
	buf := fmt.Appendf(a.buf, "xref\n0 %d\n", size)
	buf = append(buf, "0000000000 65535 f \n"...)
	for _, off := range a.offsets {
		buf = fmt.Appendf(buf, "%010d 00000 n \n", off)
	}
	return fmt.Appendf(buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, root, xrefPos)
}

// Serialize writes instrs as the content stream of a single-page PDF file.
// The result depends only on its arguments.
func Serialize(instrs []Instruction, opts *Options) []byte {
	if opts == nil {
		opts = DefaultOptions()
	}
	content := bytes.Join(toBytes(instrs), []byte{'\n'})

	acc := accumulator{buf: []byte(header)}
	for _, o := range objectGraph(content, opts) {
		acc = acc.object(o)
	}
	return acc.trailer(catalogID)
}

func toBytes(instrs []Instruction) [][]byte {
	bb := make([][]byte, len(instrs))
	for i, in := range instrs {
		bb[i] = in
	}
	return bb
}

// Encode lays out lines and serializes the result.
// Substitution warnings are logged through opts.Logger.
func Encode(lines []StyledLine, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	l, err := Layout(lines, opts)
	if err != nil {
		return nil, err
	}
	return Serialize(l.Instructions, opts), nil
}

// WriteFile writes data to name, creating parent directories as needed.
func WriteFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(name, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
