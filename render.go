package balda

import (
	"strings"

	"github.com/vyevs/ansi"
)

// String renders g one row per line with cells separated by a space.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow(g.Rows() * (2*g.Cols() + 1))
	for _, row := range g {
		for c, ch := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(ch)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the word followed by its placement grid.
func (f Finding) String() string {
	var b strings.Builder
	b.WriteString("WORD: ")
	b.WriteString(f.Word)
	b.WriteByte('\n')
	b.WriteString(f.Placement.String())
	return b.String()
}

// ColorString renders the word over grid, the grid it was found in, with the
// path highlighted. The cell whose wildcard was filled in gets its own color.
func (f Finding) ColorString(grid Grid) string {
	const (
		pathColor   = "green"
		filledColor = "yellow"
	)

	var b strings.Builder
	b.Grow(128)

	b.WriteString(ansi.FGColorName(pathColor))
	b.WriteString(f.Word)
	b.WriteString(ansi.Clear)
	b.WriteByte('\n')

	cellToColor := make(map[Cell]string, len(f.Path))
	for _, cell := range f.Path {
		if grid[cell[0]][cell[1]] == Wildcard {
			cellToColor[cell] = filledColor
		} else {
			cellToColor[cell] = pathColor
		}
	}

	for r, row := range grid {
		for c, ch := range row {
			if c > 0 {
				b.WriteByte(' ')
			}

			cell := Cell{r, c}
			color, onPath := cellToColor[cell]
			if onPath {
				ch = f.Placement[r][c]
			}

			b.WriteString(ansi.FGColorName(color))
			b.WriteRune(ch)
		}
		b.WriteByte('\n')
	}

	b.WriteString(ansi.Clear)

	return b.String()
}
