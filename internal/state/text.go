package state

// Text holds the text state defined in:
// PDF_ISO_32000-2: Table 102: Text state parameters
//
// Methods on Text implement the operators from:
// PDF_ISO_32000-2: Table 103: Text state operators
// and
// PDF_ISO_32000-2: Table 106: Text-positioning operators
//
// Glyph widths are not tracked, so the text matrix does not advance
// after Tj; every line written by the encoder starts with its own Td.
type Text struct {
	tl  float64
	tf  string
	tfs float64
	tm  *matrix
	tlm *matrix
}

func (t *Text) TL(v float64) { t.tl = v }

func (t *Text) Tf(font string, size float64) {
	t.tf = font
	t.tfs = size
}

func (t *Text) BT() {
	t.tlm = identity()
	t.tm = t.tlm
}

func (t *Text) ET() {
	t.tlm = nil
	t.tm = nil
}

func (t *Text) Td(tx, ty float64) {
	if t.tlm == nil {
		t.BT()
	}
	t.tlm = translate(tx, ty).Mul(t.tlm)
	t.tm = t.tlm
}

func (t *Text) TD(tx, ty float64) {
	t.TL(-ty)
	t.Td(tx, ty)
}

func (t *Text) Tm(a, b, c, d, e, f float64) {
	t.tlm = &matrix{
		{a, b, 0},
		{c, d, 0},
		{e, f, 1},
	}
	t.tm = t.tlm
}

func (t *Text) Tstar() {
	t.TD(0, -t.tl)
}

// A Renderer receives each shown string with its device-space origin.
type Renderer interface {
	Render(x, y, size float64, font, raw string)
}

func (t *Text) Tj(ctm *matrix, r Renderer, raw string) {
	if t.tm == nil {
		t.BT()
	}
	rm := t.tm.Mul(ctm)
	r.Render(rm[2][0], rm[2][1], t.tfs*rm[1][1], t.tf, raw)
}
