// Package config loads one-page documents described in YAML.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	pdf "github.com/ScriptRock/textpdf"
)

// Document is the root configuration structure: the page geometry, the
// fonts, the style of each line kind and the content script itself.
type Document struct {
	Page   PageConfig             `yaml:"page"`
	Fonts  FontsConfig            `yaml:"fonts"`
	Styles map[string]StyleConfig `yaml:"styles"`
	Lines  []Line                 `yaml:"lines"`
}

// PageConfig holds the page size and margins, in points.
type PageConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// FontsConfig names the standard Type1 fonts behind the body and heading resources.
type FontsConfig struct {
	Body    string `yaml:"body"`
	Heading string `yaml:"heading"`
}

// StyleConfig is the rendering of one line kind.
// Font is "body" or "heading".
type StyleConfig struct {
	Font    string  `yaml:"font"`
	Size    float64 `yaml:"size"`
	Indent  float64 `yaml:"indent"`
	Leading float64 `yaml:"leading"`
}

// Line is one entry of the content script. In YAML it is written either
// as a [kind, text] pair, as a bare kind (for blank lines), or as a
// mapping with kind and text keys.
type Line struct {
	Kind string `yaml:"kind"`
	Text string `yaml:"text,omitempty"`
}

func (l *Line) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		*l = Line{}
		return n.Decode(&l.Kind)
	case yaml.SequenceNode:
		var pair []string
		if err := n.Decode(&pair); err != nil {
			return err
		}
		if len(pair) < 1 || len(pair) > 2 {
			return fmt.Errorf("line %d: want [kind, text], got %d items", n.Line, len(pair))
		}
		*l = Line{Kind: pair[0]}
		if len(pair) == 2 {
			l.Text = pair[1]
		}
		return nil
	}
	type plain Line
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*l = Line(p)
	return nil
}

func (l Line) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: l.Kind})
	if l.Text != "" {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: l.Text})
	}
	return n, nil
}

// Default returns the summary document with the default page, fonts and styles.
func Default() *Document {
	opts := pdf.DefaultOptions()
	d := &Document{
		Page: PageConfig{
			Width:  opts.Page.Width,
			Height: opts.Page.Height,
			Left:   opts.Page.Left,
			Top:    opts.Page.Top,
			Bottom: opts.Page.Bottom,
		},
		Fonts: FontsConfig{
			Body:    opts.Fonts.Body,
			Heading: opts.Fonts.Heading,
		},
		Styles: make(map[string]StyleConfig, len(opts.Styles)),
		Lines:  append([]Line(nil), summary...),
	}
	for kind, s := range opts.Styles {
		d.Styles[string(kind)] = StyleConfig{
			Font:    s.Font.String(),
			Size:    s.Size,
			Indent:  s.Indent,
			Leading: s.Leading,
		}
	}
	return d
}

// Load loads a document from a file. Fields the file leaves out keep
// their default values; a style named in the file replaces the default
// style of that kind as a whole.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	d := Default()
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return d, nil
}

// LoadOrDefault loads a document from path, or returns the default if
// path is empty or does not exist.
func LoadOrDefault(path string) (*Document, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	return Load(path)
}

// Save writes the document to a file.
func (d *Document) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks that every line has a style, that every style is
// drawable, that both fonts are standard Type1 fonts and that the
// margins leave room on the page.
func (d *Document) Validate() error {
	p := d.Page
	if !finite(p.Width, p.Height, p.Left, p.Top, p.Bottom) {
		return fmt.Errorf("page %+v: %w", p, pdf.ErrNotFinite)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("page size %vx%v must be positive", p.Width, p.Height)
	}
	if p.Top <= p.Bottom {
		return fmt.Errorf("top margin %v must be above bottom margin %v", p.Top, p.Bottom)
	}
	if p.Top > p.Height || p.Bottom < 0 {
		return fmt.Errorf("margins %v..%v fall outside the page", p.Bottom, p.Top)
	}

	for _, name := range []string{d.Fonts.Body, d.Fonts.Heading} {
		if !pdf.IsStandardFont(name) {
			return fmt.Errorf("font %q is not a standard Type1 font", name)
		}
	}

	kinds := make([]string, 0, len(d.Styles))
	for kind := range d.Styles {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		s := d.Styles[kind]
		if !finite(s.Size, s.Indent, s.Leading) {
			return fmt.Errorf("style %q: %w", kind, pdf.ErrNotFinite)
		}
		if _, err := fontRef(s.Font); err != nil {
			return fmt.Errorf("style %q: %w", kind, err)
		}
		if s.Size <= 0 {
			return fmt.Errorf("style %q: size %v must be positive", kind, s.Size)
		}
		if s.Leading <= 0 {
			return fmt.Errorf("style %q: leading %v must be positive", kind, s.Leading)
		}
		if s.Indent < 0 {
			return fmt.Errorf("style %q: indent %v must not be negative", kind, s.Indent)
		}
	}

	for i, l := range d.Lines {
		if _, ok := d.Styles[l.Kind]; !ok {
			return fmt.Errorf("line %d: %w %q", i, pdf.ErrUnknownKind, l.Kind)
		}
	}
	return nil
}

// finite rejects the .nan and .inf that YAML floats may hold.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func fontRef(name string) (pdf.FontRef, error) {
	switch name {
	case pdf.Body.String():
		return pdf.Body, nil
	case pdf.Heading.String():
		return pdf.Heading, nil
	}
	return 0, fmt.Errorf("unknown font %q, want %q or %q", name, pdf.Body, pdf.Heading)
}

// Options returns the layout options the document describes.
// The Logger is left nil.
func (d *Document) Options() (*pdf.Options, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	opts := &pdf.Options{
		Page: pdf.Geometry{
			Width:  d.Page.Width,
			Height: d.Page.Height,
			Left:   d.Page.Left,
			Top:    d.Page.Top,
			Bottom: d.Page.Bottom,
		},
		Fonts:  pdf.Fonts{Body: d.Fonts.Body, Heading: d.Fonts.Heading},
		Styles: make(pdf.StyleSheet, len(d.Styles)),
	}
	for kind, s := range d.Styles {
		ref, _ := fontRef(s.Font)
		opts.Styles[pdf.Kind(kind)] = pdf.Style{
			Font:    ref,
			Size:    s.Size,
			Indent:  s.Indent,
			Leading: s.Leading,
		}
	}
	return opts, nil
}

// StyledLines returns the content script.
func (d *Document) StyledLines() []pdf.StyledLine {
	lines := make([]pdf.StyledLine, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = pdf.StyledLine{Kind: pdf.Kind(l.Kind), Text: l.Text}
	}
	return lines
}
