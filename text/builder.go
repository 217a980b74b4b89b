package text

import (
	"strings"
)

// Builder accumulates painted strings into Text, inserting line and
// paragraph breaks from the change in baseline.
type Builder struct {
	y    float64
	text Text
}

// Render records content painted at baseline y with the given font size.
// A drop of more than two line heights, or any rise, starts a new paragraph.
func (b *Builder) Render(x, y, size float64, font, content string) {
	if len(content) == 0 {
		return
	}

	switch {
	case len(b.text) == 0:
	case y > b.y, y < b.y-2*size:
		content = "\n\n" + content
	case y < b.y:
		content = "\n" + content
	}
	b.y = y

	var weight int
	if strings.HasSuffix(font, "-Bold") {
		weight = Bold
	}

	b.add(size, weight, content)
}

func (b *Builder) add(size float64, weight int, content string) {
	isWhitespace := len(strings.TrimSpace(content)) == 0
	var lastPiece *Part
	if l := len(b.text); l > 0 {
		lastPiece = &b.text[l-1]
	}

	if lastPiece != nil && (isWhitespace || (lastPiece.Size == size && lastPiece.Weight == weight)) {
		lastPiece.Content += content
		return
	}

	b.text = append(b.text, Part{Size: size, Weight: weight, Content: content})
}

func (b Builder) Text() Text { return b.text }
