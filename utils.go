package balda

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	// ErrEmptyGrid is returned when a grid has no rows.
	ErrEmptyGrid = errors.New("grid has no rows")
	// ErrRaggedGrid is returned when grid rows differ in length.
	ErrRaggedGrid = errors.New("grid rows differ in length")
	// ErrMalformedRow is returned when grid cells are not separated by single spaces.
	ErrMalformedRow = errors.New("grid cells must be separated by single spaces")
)

// ReadDictionaryFromFile uses ReadDictionary to read from the specified file.
// Files ending in .gz or .zst are decompressed first.
func ReadDictionaryFromFile(file string) ([]string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(file)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip dictionary: %w", err)
		}
		defer zr.Close()
		return ReadDictionary(zr)

	case ".zst", ".zstd":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd dictionary: %w", err)
		}
		defer zr.Close()
		return ReadDictionary(zr)
	}

	return ReadDictionary(f)
}

// ReadDictionary reads a newline-delimited sequence of strings from r and returns them in a slice.
func ReadDictionary(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)

	dict := make([]string, 0, 1<<12)
	for sc.Scan() {
		line := sc.Text()
		line = strings.TrimSpace(line)
		if line != "" {
			dict = append(dict, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}

	return dict, nil
}

// ReadGridFromFile reads a grid from the specified file.
// Files ending in .toml hold a rows array of strings, e.g. rows = ["c a", "_ t"].
// Anything else is read with ReadGrid.
func ReadGridFromFile(file string) (Grid, error) {
	if strings.ToLower(filepath.Ext(file)) == ".toml" {
		var puzzle struct {
			Rows []string `toml:"rows"`
		}
		if _, err := toml.DecodeFile(file, &puzzle); err != nil {
			return nil, fmt.Errorf("failed to decode grid file: %w", err)
		}
		return gridFromRows(puzzle.Rows)
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open grid file: %w", err)
	}
	defer f.Close()
	return ReadGrid(f)
}

// ReadGrid reads a grid from r, one row per line, with cells separated by
// single spaces. Reading stops at the first blank line.
func ReadGrid(r io.Reader) (Grid, error) {
	rows := make([]string, 0, 8)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			break
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("error reading grid: %w", err)
	}

	return gridFromRows(rows)
}

func gridFromRows(rows []string) (Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	grid := make(Grid, 0, len(rows))
	for i, line := range rows {
		row, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i+1, len(row), len(grid[0]), ErrRaggedGrid)
		}
		grid = append(grid, row)
	}

	return grid, nil
}

// parseRow splits "c a _ t" into its cells. Every other rune must be a space.
func parseRow(line string) ([]rune, error) {
	runes := []rune(line)
	row := make([]rune, 0, len(runes)/2+1)
	for i := 0; i < len(runes); i += 2 {
		if i+1 < len(runes) && runes[i+1] != ' ' {
			return nil, fmt.Errorf("unexpected %q after cell %d: %w", runes[i+1], len(row)+1, ErrMalformedRow)
		}
		if runes[i] == ' ' {
			return nil, fmt.Errorf("empty cell %d: %w", len(row)+1, ErrMalformedRow)
		}
		row = append(row, unicode.ToLower(runes[i]))
	}
	return row, nil
}

// NormalizeWord lower-cases s and removes spaces, apostrophes and hyphens.
func NormalizeWord(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}
