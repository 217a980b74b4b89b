package pdf

import (
	"log/slog"
	"strings"

	"github.com/ScriptRock/textpdf/internal/encoding"
)

// standardFonts are the base-14 Type1 fonts every reader provides.
var standardFonts = map[string]bool{
	"Times-Roman": true, "Times-Bold": true, "Times-Italic": true, "Times-BoldItalic": true,
	"Helvetica": true, "Helvetica-Bold": true, "Helvetica-Oblique": true, "Helvetica-BoldOblique": true,
	"Courier": true, "Courier-Bold": true, "Courier-Oblique": true, "Courier-BoldOblique": true,
	"Symbol": true, "ZapfDingbats": true,
}

// IsStandardFont reports whether name is one of the 14 standard Type1 fonts,
// which can be referenced without embedding.
func IsStandardFont(name string) bool { return standardFonts[name] }

// NewFont interprets v as a font dictionary.
func NewFont(v Value) *Font {
	f := &Font{
		V:    v,
		name: v.Key("BaseFont").Name(),
	}
	if st := v.Key("Subtype").Name(); st != "Type1" {
		slog.Debug("unexpected font subtype", slog.String("subtype", st), slog.String("font", f.name))
	}
	return f
}

// A Font represent a font in a PDF file.
// The methods interpret a Font dictionary stored in V.
type Font struct {
	V    Value
	name string
}

// Name returns the font's name (BaseFont property).
func (f Font) Name() string { return f.name }

// Bold reports whether the base font is a bold face.
func (f Font) Bold() bool {
	return strings.Contains(f.name, "-Bold")
}

// Decode converts shown bytes to UTF-8. Fonts written by this package
// carry no /Encoding, and their text bytes are Latin-1.
func (f Font) Decode(raw string) string {
	return encoding.Latin1Decode(raw)
}
