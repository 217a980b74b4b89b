package pdf

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ScriptRock/textpdf/internal/encoding"
	"github.com/ScriptRock/textpdf/internal/types"
	"github.com/ScriptRock/textpdf/text"
)

func TestReader_Xref(t *testing.T) {
	data := encode(t, scenario)
	r, err := NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	xref := r.Xref()
	if len(xref) != objectCount+1 {
		t.Fatalf("got %d xref entries, want %d", len(xref), objectCount+1)
	}
	if xref[0].InUse {
		t.Error("entry 0 should be free")
	}
	for id := 1; id < len(xref); id++ {
		e := xref[id]
		if !e.InUse || e.Ptr != (types.Objptr{ID: uint32(id)}) {
			t.Errorf("entry %d = %+v", id, e)
		}
	}
	if got := r.Trailer().Key("Size").Int64(); got != 7 {
		t.Errorf("/Size = %d, want 7", got)
	}
	if got := r.Trailer().Key("Root").Ptr(); got != (types.Objptr{ID: 1}) {
		t.Errorf("/Root = %v, want 1 0 R", got)
	}
}

func TestReader_Objects(t *testing.T) {
	data := encode(t, scenario)
	r, err := NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}

	testCases := map[string]struct {
		id   int
		want string
	}{
		"catalog":      {id: 1, want: "<</Pages 2 0 R /Type /Catalog>>"},
		"pages":        {id: 2, want: "<</Count 1 /Kids [3 0 R] /Type /Pages>>"},
		"body font":    {id: 4, want: "<</BaseFont /Helvetica /Subtype /Type1 /Type /Font>>"},
		"heading font": {id: 5, want: "<</BaseFont /Helvetica-Bold /Subtype /Type1 /Type /Font>>"},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			v, err := r.Object(tc.id)
			if err != nil {
				t.Fatal(err)
			}
			if got := v.String(); got != tc.want {
				t.Errorf("object %d = %s, want %s", tc.id, got, tc.want)
			}
		})
	}

	if _, err := r.Object(objectCount + 1); err == nil {
		t.Error("expected error for object outside the table")
	}
}

func TestPage(t *testing.T) {
	data := encode(t, []StyledLine{
		{Kind: KindTitle, Text: "Summary"},
		{Kind: KindBlank},
		{Kind: KindHeading, Text: "What it is"},
		{Kind: KindParagraph, Text: `A (small) \ café`},
		{Kind: KindBullet, Text: "first"},
		{Kind: KindBullet, Text: "second"},
	})
	r, err := NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	if n := r.NumPage(); n != 1 {
		t.Fatalf("NumPage() = %d, want 1", n)
	}
	if p := r.Page(2); !p.V.IsNull() {
		t.Error("Page(2) should be null")
	}

	p := r.Page(1)
	if w, h := p.MediaBox(); w != 612 || h != 792 {
		t.Errorf("MediaBox() = %v x %v", w, h)
	}
	if diff := cmp.Diff([]string{"F1", "F2"}, p.Fonts()); diff != "" {
		t.Error("fonts did not match:", diff)
	}
	if f := p.Font("F2"); f.Name() != "Helvetica-Bold" || !f.Bold() {
		t.Errorf("F2 = %q bold=%v", f.Name(), f.Bold())
	}

	got, err := p.Text()
	if err != nil {
		t.Fatal(err)
	}
	want := text.Text{
		{Size: 18, Weight: text.Bold, Content: "Summary"},
		{Size: 12, Weight: text.Bold, Content: "\n\nWhat it is"},
		{Size: 10.5, Content: "\nA (small) \\ café"},
		{Size: 10.2, Content: "\n- first\n- second"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error("page text did not match:", diff)
	}

	all, err := r.Text()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0].String() != got.String() {
		t.Errorf("Reader.Text() = %v", all)
	}
}

func TestPage_Content(t *testing.T) {
	opts := quietOptions()
	l, err := Layout(scenario, opts)
	if err != nil {
		t.Fatal(err)
	}
	data := Serialize(l.Instructions, opts)
	r, err := NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}

	got, err := r.Page(1).Content()
	if err != nil {
		t.Fatal(err)
	}
	want := bytes.Join(toBytes(l.Instructions), []byte("\n"))
	if !bytes.Equal(got, want) {
		t.Errorf("Content() = %q, want %q", got, want)
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	for _, s := range []string{
		"",
		"plain",
		"Hello (world)",
		`\`,
		`\\(`,
		`)(`,
		`a\(b\)c`,
		"((nested))",
		`end\`,
	} {
		lit := "(" + string(encoding.Escape([]byte(s))) + ")"
		b := newContentBuffer(strings.NewReader(lit))
		got, ok := b.readToken().(string)
		if !ok || got != s {
			t.Errorf("round trip of %q via %q = %q", s, lit, got)
		}
	}
}

var lengthEntry = regexp.MustCompile(`/Length \d+ `)

func TestVerify(t *testing.T) {
	good := encode(t, scenario)
	if err := Verify(good); err != nil {
		t.Fatalf("Verify(good) = %v", err)
	}

	testCases := map[string]struct {
		mutate func([]byte) []byte
		want   string
	}{
		"not a pdf": {
			mutate: func(b []byte) []byte { return []byte("hello") },
			want:   "invalid header",
		},
		"renumbered object": {
			mutate: func(b []byte) []byte {
				return bytes.Replace(b, []byte("4 0 obj\n"), []byte("4 1 obj\n"), 1)
			},
			want: "does not start",
		},
		"wrong length": {
			mutate: func(b []byte) []byte {
				// same width, so no offsets move
				return lengthEntry.ReplaceAllFunc(b, func(m []byte) []byte {
					return bytes.Map(func(r rune) rune {
						if '0' <= r && r <= '9' {
							return '1'
						}
						return r
					}, m)
				})
			},
			want: "does not end at endstream",
		},
		"wrong size": {
			mutate: func(b []byte) []byte {
				return bytes.Replace(b, []byte("/Size 7 "), []byte("/Size 6 "), 1)
			},
			want: "/Size",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			data := tc.mutate(append([]byte(nil), good...))
			err := Verify(data)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Verify() = %v, want error containing %q", err, tc.want)
			}
		})
	}
}
