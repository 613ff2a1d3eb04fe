package domain

import (
	"errors"
	"strings"
)

// Grid is a 9x9 Sudoku grid. 0 means empty, 1..9 a placed digit.
// Plain value semantics: assigning a Grid copies the whole board.
type Grid [9][9]uint8

// Board holds current values and which cells are fixed givens.
type Board struct {
	Values Grid       `json:"board"`
	Fixed  [9][9]bool `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a suggested placement for the UI.
type Hint struct {
	Message string    `json:"message,omitempty"`
	Cell    CellCoord `json:"cell"`
	Digit   uint8     `json:"digit"`
}

// Puzzle is a generated Sudoku with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Board      Board      `json:"board"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}

// Clues counts the filled cells.
func (g *Grid) Clues() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// String renders the grid as an 81-character row-major line, '.' for empties.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := g[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
	}
	return sb.String()
}

var errBadGridString = errors.New("grid needs 81 cells of 1-9, '.', '0' or '_'")

// ParseGrid reads the 81-cell format produced by Grid.String.
// Whitespace is skipped, so multi-line input works too.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	i := 0
	for _, ch := range s {
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			continue
		case ch >= '1' && ch <= '9':
			if i >= 81 {
				return Grid{}, errBadGridString
			}
			g[i/9][i%9] = uint8(ch - '0')
			i++
		case ch == '.' || ch == '0' || ch == '_':
			if i >= 81 {
				return Grid{}, errBadGridString
			}
			i++
		default:
			return Grid{}, errBadGridString
		}
	}
	if i != 81 {
		return Grid{}, errBadGridString
	}
	return g, nil
}
