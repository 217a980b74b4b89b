package text

import (
	"fmt"
	"strings"
	"unicode"
)

// Bold is the Weight bit set for parts painted with a bold font.
const Bold = 1

// Text is the painted text of a page, split wherever size or weight changes.
type Text []Part

// Part is a part of Text with the same size and font weight.
type Part struct {
	Size float64
	// bitmask of styles, currently just Bold.
	Weight  int
	Content string
}

// String renders the Text without sizing information.
func (t Text) String() string {
	var b strings.Builder
	for _, p := range t {
		b.WriteString(p.Content)
	}

	return b.String()
}

// DebugString renders the Text as a string with annotation at each change of
// text size.
func (t Text) DebugString() string {
	var b strings.Builder
	for _, p := range t {
		fmt.Fprintf(&b, "[%.1f|%b]", p.Size, p.Weight)
		b.WriteString(p.Content)
	}

	return b.String()
}

// TrimSpace trims whitespace from both ends of the Text, dropping parts
// that end up empty.
func (t Text) TrimSpace() Text {
	var trimmed Text
	for _, p := range t {
		if len(trimmed) == 0 {
			p.Content = strings.TrimLeftFunc(p.Content, unicode.IsSpace)
		}
		if len(p.Content) > 0 {
			trimmed = append(trimmed, p)
		}
	}
	for n := len(trimmed); n > 0; n = len(trimmed) {
		last := &trimmed[n-1]
		if last.Content = strings.TrimRightFunc(last.Content, unicode.IsSpace); len(last.Content) > 0 {
			break
		}
		trimmed = trimmed[:n-1]
	}

	return trimmed
}

// Split splits the Text by the separator.
func (t Text) Split(sep string) []Text {
	var (
		parts   []Text
		current Text
	)

	for _, p := range t {
		lines := strings.Split(p.Content, sep)
		for i, line := range lines {
			if i > 0 {
				parts = append(parts, current)
				current = nil
			}
			current = append(current, Part{Size: p.Size, Weight: p.Weight, Content: line})
		}
	}

	if len(current) > 0 {
		parts = append(parts, current)
	}

	return parts
}

// Lines returns the non-empty lines of the Text, trimmed of surrounding space.
func (t Text) Lines() []Text {
	var lines []Text
	for _, line := range t.Split("\n") {
		if line = line.TrimSpace(); len(line) > 0 {
			lines = append(lines, line)
		}
	}
	return lines
}
