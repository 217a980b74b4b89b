package pdf

import (
	"log/slog"
	"strconv"
)

// A Kind selects the Style a line is painted with.
type Kind string

// The line kinds understood by DefaultStyles.
const (
	KindTitle     Kind = "title"
	KindHeading   Kind = "h"
	KindParagraph Kind = "p"
	KindBullet    Kind = "b"
	KindNumbered  Kind = "n"
	KindBlank     Kind = "blank"
)

// BulletMarker is prepended to the text of KindBullet lines.
const BulletMarker = "- "

// A StyledLine is one entry of the content script.
type StyledLine struct {
	Kind Kind
	Text string
}

// A FontRef names one of the two font resources of the page.
type FontRef int

const (
	Body FontRef = iota
	Heading
)

// Resource returns the name the page's resource dictionary gives the font.
func (f FontRef) Resource() string {
	if f == Heading {
		return "F2"
	}
	return "F1"
}

func (f FontRef) String() string {
	switch f {
	case Body:
		return "body"
	case Heading:
		return "heading"
	}
	return "FontRef(" + strconv.Itoa(int(f)) + ")"
}

// Style is the fixed rendering of one Kind, in points.
type Style struct {
	Font    FontRef
	Size    float64
	Indent  float64
	Leading float64
}

type StyleSheet map[Kind]Style

// DefaultStyles returns the style sheet of the summary report.
func DefaultStyles() StyleSheet {
	return StyleSheet{
		KindTitle:     {Font: Heading, Size: 18, Indent: 0, Leading: 24},
		KindHeading:   {Font: Heading, Size: 12, Indent: 0, Leading: 17},
		KindParagraph: {Font: Body, Size: 10.5, Indent: 0, Leading: 14},
		KindBullet:    {Font: Body, Size: 10.2, Indent: 0, Leading: 13},
		KindNumbered:  {Font: Body, Size: 10.2, Indent: 0, Leading: 13},
		KindBlank:     {Font: Body, Size: 10, Indent: 0, Leading: 8},
	}
}

// Geometry holds the page size and margins, in points.
type Geometry struct {
	Width, Height float64
	Left          float64
	Top, Bottom   float64
}

// DefaultGeometry returns a US Letter page with 48pt margins.
func DefaultGeometry() Geometry {
	return Geometry{Width: 612, Height: 792, Left: 48, Top: 752, Bottom: 48}
}

// Fonts names the standard Type1 fonts behind the two font resources.
type Fonts struct {
	Body    string
	Heading string
}

func DefaultFonts() Fonts {
	return Fonts{Body: "Helvetica", Heading: "Helvetica-Bold"}
}

// BaseFont returns the font name bound to ref.
func (f Fonts) BaseFont(ref FontRef) string {
	if ref == Heading {
		return f.Heading
	}
	return f.Body
}

// Options configures Layout and Serialize. A nil *Options means DefaultOptions.
type Options struct {
	Page   Geometry
	Styles StyleSheet
	Fonts  Fonts

	// Logger receives a warning for each substituted character.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

func DefaultOptions() *Options {
	return &Options{
		Page:   DefaultGeometry(),
		Styles: DefaultStyles(),
		Fonts:  DefaultFonts(),
	}
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// num formats v in its shortest round-trip decimal form: 18, 10.5, 741.5.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
