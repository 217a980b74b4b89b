package pdf

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/ScriptRock/textpdf/internal/encoding"
)

// ErrUnknownKind is returned by Layout for a line whose Kind has no Style.
var ErrUnknownKind = errors.New("unknown line kind")

// ErrNotFinite is returned by Layout when a page or style dimension is NaN
// or infinite; such a value cannot be written as a PDF number.
var ErrNotFinite = errors.New("dimension is not a finite number")

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// An Instruction is one serialized content-stream line.
type Instruction []byte

func background(p Geometry) Instruction {
	return Instruction("1 1 1 rg 0 0 " + num(p.Width) + " " + num(p.Height) + " re f")
}

func fillBlack() Instruction {
	return Instruction("0 0 0 rg")
}

func showText(s Style, x, y float64, escaped []byte) Instruction {
	in := make(Instruction, 0, 48+len(escaped))
	in = fmt.Appendf(in, "BT /%s %s Tf %s %s Td (", s.Font.Resource(), num(s.Size), num(x), num(y))
	in = append(in, escaped...)
	return append(in, ") Tj ET"...)
}

// PageLayout is the result of laying out a content script.
type PageLayout struct {
	// Instructions are the background fill, the switch to black,
	// then one text instruction per non-blank line, in input order.
	Instructions []Instruction
	// Cursor is the baseline below the last line.
	Cursor   float64
	Warnings []SubstitutionWarning
}

// OverflowError reports a content script that does not fit the page.
type OverflowError struct {
	Cursor float64
	Bottom float64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("content overflow: y=%s is below bottom margin %s", num(e.Cursor), num(e.Bottom))
}

// A SubstitutionWarning records a character that has no byte in the
// font encoding and was painted as encoding.Replacement instead.
type SubstitutionWarning struct {
	Line int // index into the content script
	Pos  int // byte index within the line's normalised text
	Rune rune
}

func (w SubstitutionWarning) String() string {
	return fmt.Sprintf("line %d: %U %q replaced by %q", w.Line, w.Rune, w.Rune, encoding.Replacement)
}

// Layout positions lines top to bottom on the page described by opts.
//
// Each non-blank line becomes one text instruction at x = Left+Indent and
// y = the current cursor; every line, blank or not, then moves the cursor
// down by its style's Leading. If the cursor ends below the bottom margin
// Layout returns an *OverflowError and no layout.
//
// Text is NFC-normalised before it is encoded, so a decomposed accent
// such as "e\u0301" is painted as the single Latin-1 byte for "é".
// SubstitutionWarning positions are byte offsets into that normalised text.
func Layout(lines []StyledLine, opts *Options) (*PageLayout, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	page := opts.Page
	log := opts.logger()
	if !finite(page.Width, page.Height, page.Left, page.Top, page.Bottom) {
		return nil, fmt.Errorf("page geometry %+v: %w", page, ErrNotFinite)
	}

	out := &PageLayout{
		Instructions: make([]Instruction, 0, len(lines)+2),
		Cursor:       page.Top,
	}
	out.Instructions = append(out.Instructions, background(page), fillBlack())

	for i, line := range lines {
		style, ok := opts.Styles[line.Kind]
		if !ok {
			return nil, fmt.Errorf("line %d: %w %q", i, ErrUnknownKind, line.Kind)
		}
		if !finite(style.Size, style.Indent, style.Leading) {
			return nil, fmt.Errorf("line %d: style %q: %w", i, line.Kind, ErrNotFinite)
		}
		if line.Kind != KindBlank {
			label := line.Text
			if line.Kind == KindBullet {
				label = BulletMarker + label
			}
			raw, subs := encoding.Latin1(label)
			for _, sub := range subs {
				w := SubstitutionWarning{Line: i, Pos: sub.Pos, Rune: sub.Rune}
				log.Warn("substituted unencodable character",
					slog.Int("line", i),
					slog.String("rune", fmt.Sprintf("%U", sub.Rune)),
					slog.Int("pos", sub.Pos))
				out.Warnings = append(out.Warnings, w)
			}
			x := page.Left + style.Indent
			out.Instructions = append(out.Instructions, showText(style, x, out.Cursor, encoding.Escape(raw)))
		}
		out.Cursor -= style.Leading
	}

	if !(out.Cursor >= page.Bottom) {
		return nil, &OverflowError{Cursor: out.Cursor, Bottom: page.Bottom}
	}
	return out, nil
}
