package balda

import "slices"

// Wildcard marks the grid cell whose letter is chosen during the search.
// Placement grids also use it for cells that are not part of a word.
const Wildcard = '_'

// Grid is a rectangular grid of letters, indexed [row][col].
type Grid [][]rune

// Rows returns the number of rows in g.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns in g.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Wildcards returns the cells holding the Wildcard marker in raster order.
func (g Grid) Wildcards() []Cell {
	var cells []Cell
	for r, row := range g {
		for c, ch := range row {
			if ch == Wildcard {
				cells = append(cells, Cell{r, c})
			}
		}
	}
	return cells
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = slices.Clone(row)
	}
	return out
}

// newPlacement returns a grid shaped like g with every cell set to Wildcard.
func newPlacement(g Grid) Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = make([]rune, len(row))
		for j := range out[i] {
			out[i][j] = Wildcard
		}
	}
	return out
}

func makeBoolGrid(g Grid) [][]bool {
	out := make([][]bool, 0, len(g))
	for _, r := range g {
		out = append(out, make([]bool, len(r)))
	}
	return out
}
