package pdf_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	pdf "github.com/ScriptRock/textpdf"
	"github.com/ScriptRock/textpdf/config"
)

func TestGolden(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("testdata", "summary.pdf"))
	if err != nil {
		t.Fatal(err)
	}

	testCases := map[string]func(t *testing.T) *config.Document{
		"default document": func(t *testing.T) *config.Document {
			return config.Default()
		},
		"yaml document": func(t *testing.T) *config.Document {
			d, err := config.Load(filepath.Join("testdata", "summary.yaml"))
			if err != nil {
				t.Fatal(err)
			}
			return d
		},
	}
	for name, load := range testCases {
		t.Run(name, func(t *testing.T) {
			d := load(t)
			opts, err := d.Options()
			if err != nil {
				t.Fatal(err)
			}
			opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

			got, err := pdf.Encode(d.StyledLines(), opts)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, want) {
				t.Error("output differs from testdata/summary.pdf:",
					cmp.Diff(strings.Split(string(want), "\n"), strings.Split(string(got), "\n")))
			}
			if err := pdf.Verify(got); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestGolden_ReadBack(t *testing.T) {
	r, err := pdf.Open(filepath.Join("testdata", "summary.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	tt, err := r.Text()
	if err != nil {
		t.Fatal(err)
	}
	if len(tt) != 1 {
		t.Fatalf("got %d pages, want 1", len(tt))
	}

	var want []string
	for _, l := range config.Default().StyledLines() {
		switch l.Kind {
		case pdf.KindBlank:
		case pdf.KindBullet:
			want = append(want, pdf.BulletMarker+l.Text)
		default:
			want = append(want, l.Text)
		}
	}
	var got []string
	for _, line := range tt[0].Lines() {
		got = append(got, line.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error("painted lines did not match:", diff)
	}
}
