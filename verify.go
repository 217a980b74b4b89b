package pdf

import (
	"bytes"
	"fmt"
	"strconv"
)

// Verify reads data back and checks the bookkeeping Serialize is
// responsible for: every in-use cross-reference offset points at the
// matching "<id> 0 obj" line, the trailer /Size matches the table, /Root
// is a catalog, startxref points at the table, and the content stream's
// /Length is its exact byte count.
func Verify(data []byte) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed PDF: %v", rec)
		}
	}()

	r, err := NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return err
	}

	if !bytes.HasPrefix(data[r.StartXref():], []byte("xref")) {
		return fmt.Errorf("malformed PDF: startxref %d does not point at xref", r.StartXref())
	}

	xref := r.Xref()
	if size := r.Trailer().Key("Size").Int64(); size != int64(len(xref)) {
		return fmt.Errorf("malformed PDF: trailer /Size %d, xref has %d entries", size, len(xref))
	}
	if len(xref) == 0 || xref[0].InUse {
		return fmt.Errorf("malformed PDF: xref entry 0 must be the free-list head")
	}
	for id := 1; id < len(xref); id++ {
		e := xref[id]
		if !e.InUse {
			continue
		}
		want := strconv.Itoa(id) + " 0 obj"
		if e.Offset < 0 || e.Offset >= int64(len(data)) || !bytes.HasPrefix(data[e.Offset:], []byte(want)) {
			return fmt.Errorf("malformed PDF: xref offset %d for object %d does not start %q", e.Offset, id, want)
		}
	}

	if typ := r.Trailer().Key("Root").Key("Type").Name(); typ != "Catalog" {
		return fmt.Errorf("malformed PDF: /Root has /Type /%s", typ)
	}

	p := r.Page(1)
	if p.V.IsNull() {
		return fmt.Errorf("malformed PDF: no first page")
	}
	contents := p.V.Key("Contents")
	if contents.Kind() != StreamKind {
		return fmt.Errorf("malformed PDF: page /Contents is not a stream: %v", contents)
	}
	start := contents.StreamOffset()
	n := contents.Key("Length").Int64()
	if n < 0 || start+n > int64(len(data)) || !bytes.HasPrefix(data[start+n:], []byte("\nendstream")) {
		return fmt.Errorf("malformed PDF: content stream /Length %d does not end at endstream", n)
	}
	return nil
}
