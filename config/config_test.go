package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	pdf "github.com/ScriptRock/textpdf"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault_MatchesLayoutDefaults(t *testing.T) {
	opts, err := Default().Options()
	if err != nil {
		t.Fatal(err)
	}
	want := pdf.DefaultOptions()
	if diff := cmp.Diff(want, opts); diff != "" {
		t.Error("default options did not match:", diff)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	for name, path := range map[string]string{
		"empty path":   "",
		"missing file": filepath.Join(t.TempDir(), "missing.yaml"),
	} {
		t.Run(name, func(t *testing.T) {
			d, err := LoadOrDefault(path)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(Default(), d); diff != "" {
				t.Error("expected the default document:", diff)
			}
		})
	}
}

func TestLoad_LineForms(t *testing.T) {
	path := writeFile(t, `
lines:
  - [title, "Report: Q3"]
  - blank
  - {kind: p, text: "true"}
  - [b, "x (y)"]
  - [n]
`)
	d, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []pdf.StyledLine{
		{Kind: pdf.KindTitle, Text: "Report: Q3"},
		{Kind: pdf.KindBlank},
		{Kind: pdf.KindParagraph, Text: "true"},
		{Kind: pdf.KindBullet, Text: "x (y)"},
		{Kind: pdf.KindNumbered},
	}
	if diff := cmp.Diff(want, d.StyledLines()); diff != "" {
		t.Error("lines did not match:", diff)
	}
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := writeFile(t, `
page:
  bottom: 72
styles:
  quote: {font: body, size: 9, indent: 18, leading: 12}
lines:
  - [quote, "hi"]
`)
	d, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	opts, err := d.Options()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Page.Bottom != 72 || opts.Page.Top != 752 || opts.Page.Width != 612 {
		t.Errorf("page = %+v", opts.Page)
	}
	if got := opts.Styles["quote"]; got != (pdf.Style{Font: pdf.Body, Size: 9, Indent: 18, Leading: 12}) {
		t.Errorf("quote style = %+v", got)
	}
	if got := opts.Styles[pdf.KindHeading]; got.Font != pdf.Heading || got.Size != 12 {
		t.Errorf("default heading style lost: %+v", got)
	}
}

func TestLoad_Invalid(t *testing.T) {
	testCases := map[string]struct {
		yaml string
		want string
	}{
		"parse error": {
			yaml: "lines: [",
			want: "failed to parse config",
		},
		"too many items": {
			yaml: "lines:\n  - [p, a, b]\n",
			want: "want [kind, text]",
		},
		"unknown kind": {
			yaml: "lines:\n  - [quote, a]\n",
			want: `unknown line kind "quote"`,
		},
		"margins crossed": {
			yaml: "page: {top: 40, bottom: 48}\n",
			want: "must be above bottom margin",
		},
		"zero leading": {
			yaml: "styles:\n  p: {font: body, size: 10}\n",
			want: `style "p": leading 0 must be positive`,
		},
		"bad font ref": {
			yaml: "styles:\n  p: {font: italic, size: 10, leading: 12}\n",
			want: `unknown font "italic"`,
		},
		"nan leading": {
			yaml: "styles:\n  p: {font: body, size: 10, leading: .nan}\n",
			want: `style "p": dimension is not a finite number`,
		},
		"infinite size": {
			yaml: "styles:\n  p: {font: body, size: .inf, leading: 12}\n",
			want: `style "p": dimension is not a finite number`,
		},
		"nan margin": {
			yaml: "page: {bottom: .nan}\n",
			want: "dimension is not a finite number",
		},
		"infinite width": {
			yaml: "page: {width: .inf}\n",
			want: "dimension is not a finite number",
		},
		"embedded font": {
			yaml: "fonts: {body: Inter}\n",
			want: `font "Inter" is not a standard Type1 font`,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, tc.yaml))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Load() = %v, want error containing %q", err, tc.want)
			}
		})
	}
}

func TestLoad_UnknownKindIsErrUnknownKind(t *testing.T) {
	_, err := Load(writeFile(t, "lines:\n  - [quote, a]\n"))
	if !errors.Is(err, pdf.ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestValidate_NotFinite(t *testing.T) {
	d := Default()
	d.Styles["p"] = StyleConfig{Font: "body", Size: 10, Leading: math.NaN()}
	if err := d.Validate(); !errors.Is(err, pdf.ErrNotFinite) {
		t.Errorf("Validate() = %v, want ErrNotFinite", err)
	}
	if opts, err := d.Options(); err == nil || opts != nil {
		t.Errorf("Options() = %v, %v; want an error", opts, err)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	d := Default()
	d.Lines = append(d.Lines,
		Line{Kind: "p", Text: "yes"},
		Line{Kind: "p", Text: "42"},
		Line{Kind: "p", Text: "a: b, [c]"},
		Line{Kind: "p", Text: `back\slash "quoted"`},
	)
	path := filepath.Join(t.TempDir(), "nested", "doc.yaml")
	if err := d.Save(path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(d, got); diff != "" {
		t.Error("document did not survive a save and load:", diff)
	}
}

func TestSummaryFitsThePage(t *testing.T) {
	d := Default()
	opts, err := d.Options()
	if err != nil {
		t.Fatal(err)
	}
	l, err := pdf.Layout(d.StyledLines(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if l.Cursor != 314 {
		t.Errorf("cursor = %v, want 314", l.Cursor)
	}
	if len(l.Warnings) != 0 {
		t.Errorf("unexpected substitutions: %v", l.Warnings)
	}
}
