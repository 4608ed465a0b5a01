package view

import "strings"

const (
	glyphClosed  = '#'
	glyphOpen    = ' '
	glyphUp      = '^'
	glyphDown    = 'v'
	glyphUpDown  = 'x'
	glyphViewer  = '@'
	glyphNothing = ' '
)

// Glyph returns the character drawn for s.
func Glyph(s Slot) rune {
	switch {
	case s.ClosedBound():
		return glyphClosed
	case s.OpenBound():
		return glyphOpen
	case s.Ascending() && s.Descending():
		return glyphUpDown
	case s.Ascending():
		return glyphUp
	case s.Descending():
		return glyphDown
	}
	return glyphNothing
}

// Render draws g one character per slot.
func Render(g *Grid) string {
	return render(g, -1, -1)
}

// RenderWithViewer is Render with the cell at view position (i, j) marked.
func RenderWithViewer(g *Grid, i, j int) string {
	return render(g, 2*i+1, 2*j+1)
}

func render(g *Grid, mx, my int) string {
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x == mx && y == my {
				b.WriteRune(glyphViewer)
				continue
			}
			b.WriteRune(Glyph(g.At(x, y)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Rows renders g as one string per row.
func Rows(g *Grid) []string {
	return strings.Split(strings.TrimSuffix(Render(g), "\n"), "\n")
}
