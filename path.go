package balda

import "slices"

// Cell is a grid coordinate, {row, col}.
type Cell [2]int

// Path is an ordered sequence of grid cells.
type Path []Cell

func (p Path) clone() Path {
	return slices.Clone(p)
}

// Simple reports whether p visits no cell twice and every step moves to an
// orthogonally adjacent cell.
func (p Path) Simple() bool {
	seen := make(map[Cell]struct{}, len(p))
	for i, cell := range p {
		if _, ok := seen[cell]; ok {
			return false
		}
		seen[cell] = struct{}{}

		if i > 0 && !adjacent(p[i-1], cell) {
			return false
		}
	}
	return true
}

func adjacent(a, b Cell) bool {
	dr, dc := a[0]-b[0], a[1]-b[1]
	return dr*dr+dc*dc == 1
}
