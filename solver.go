package balda

import (
	"slices"
	"unicode/utf8"
)

// Finding is a dictionary word found on the grid.
type Finding struct {
	Word string
	// Placement has the shape of the searched grid. Cells on the word's path
	// hold the letter used there, including the letter chosen for the
	// wildcard. All other cells hold Wildcard.
	Placement Grid
	// Path is the cells spelling Word, in order.
	Path Path
}

// Solve returns every word of dict, longer than one letter, that can be
// spelled along a simple path of orthogonally adjacent cells of grid, where
// the path may fill in at most one Wildcard cell with any letter.
//
// Each word is reported once, with the placement of the first path found.
// Findings are sorted by decreasing word length; words of equal length keep
// the order in which they were found, scanning start cells row by row and
// stepping west, south, east, north from every cell.
func Solve(grid Grid, dict *Dictionary) []Finding {
	s := solver{
		grid: grid,
		used: makeBoolGrid(grid),
		seen: make(map[string]struct{}, 64),

		findings: make([]Finding, 0, 64),
	}

	for r, row := range grid {
		for c := range row {
			s.cursor = dict.Cursor()
			s.path = s.path[:0]
			s.walk(r, c, false)
		}
	}

	slices.SortStableFunc(s.findings, func(a, b Finding) int {
		return utf8.RuneCountInString(b.Word) - utf8.RuneCountInString(a.Word)
	})

	return s.findings
}

type solver struct {
	grid Grid     // Never changes.
	used [][]bool // Whether a cell is on the current path.

	// cursor and path advance together: cursor.cur[i] is the letter placed on path[i].
	cursor *Cursor
	path   Path

	seen     map[string]struct{} // Words already in findings.
	findings []Finding
}

// walk extends the current path to cell (r, c). substituted is whether the
// path has already filled in a wildcard; it is scoped to this path only.
func (s *solver) walk(r, c int, substituted bool) {
	if r < 0 || r >= len(s.grid) || c < 0 || c >= len(s.grid[r]) {
		return
	}
	if s.used[r][c] {
		return
	}

	var one [1]rune
	var letters []rune
	if ch := s.grid[r][c]; ch == Wildcard {
		if substituted {
			return
		}
		substituted = true
		// Only letters that keep the prefix alive, not the whole alphabet.
		letters = s.cursor.NextLetters()
	} else {
		one[0] = ch
		letters = one[:]
	}

	for _, l := range letters {
		if !s.cursor.Advance(l) {
			continue
		}

		s.used[r][c] = true
		s.path = append(s.path, Cell{r, c})

		if s.cursor.Depth() > 1 {
			if w, ok := s.cursor.Word(); ok {
				s.record(w)
			}
		}

		s.walk(r, c-1, substituted)
		s.walk(r+1, c, substituted)
		s.walk(r, c+1, substituted)
		s.walk(r-1, c, substituted)

		s.path = s.path[:len(s.path)-1]
		s.used[r][c] = false
		if !s.cursor.Retreat() {
			panic("balda: cursor retreat past the root")
		}
	}
}

func (s *solver) record(word string) {
	if _, ok := s.seen[word]; ok {
		return
	}
	s.seen[word] = struct{}{}

	placement := newPlacement(s.grid)
	for i, cell := range s.path {
		placement[cell[0]][cell[1]] = s.cursor.cur[i]
	}

	s.findings = append(s.findings, Finding{
		Word:      word,
		Placement: placement,
		Path:      s.path.clone(),
	})
}
