package state

// Graphics holds the part of the graphics state that the page painter
// touches, see PDF_ISO_32000-2: 8.4.2 Graphics state stack.
//
// Methods on Graphics implement the operators q, Q, cm and rg.
type Graphics struct {
	gState
	stack []gState
}

type gState struct {
	ctm  *matrix
	fill [3]float64
	Text
}

func (g *Graphics) init() {
	if g.gState.ctm == nil {
		g.gState.ctm = identity()
	}
}

func (g *Graphics) Push() {
	g.init()
	g.stack = append(g.stack, g.gState)
}

// Pop restores the state saved by the matching Push.
// An unbalanced Q is ignored.
func (g *Graphics) Pop() {
	n := len(g.stack)
	if n == 0 {
		return
	}
	g.gState = g.stack[n-1]
	g.stack = g.stack[:n-1]
}

func (g *Graphics) CM(a, b, c, d, e, f float64) {
	g.init()
	m := &matrix{
		{a, b, 0},
		{c, d, 0},
		{e, f, 1},
	}
	g.gState.ctm = m.Mul(g.gState.ctm)
}

// RG sets the nonstroking colour in DeviceRGB.
func (g *Graphics) RG(r, gr, b float64) {
	g.gState.fill = [3]float64{r, gr, b}
}

// Fill returns the current nonstroking colour.
func (g *Graphics) Fill() [3]float64 { return g.gState.fill }

func (g *Graphics) Tj(r Renderer, raw string) {
	g.init()
	g.gState.Text.Tj(g.gState.ctm, r, raw)
}
