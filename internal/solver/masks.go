package solver

import "svw.info/sudoku-cli/internal/domain"

// masks is the derived constraint index over a grid: one DigitSet per row,
// column and 3x3 box recording the digits already placed there. It is never
// a source of truth; every search builds a fresh one from its grid copy and
// keeps the pair in lockstep through place/unplace only.
type masks struct {
	rows, cols, boxes [9]DigitSet
}

func boxIndex(r, c int) int { return (r/3)*3 + c/3 }

// newMasks scans all 81 cells once. It does not validate; an illegal grid
// simply yields the union of whatever duplicates it contains.
func newMasks(g *domain.Grid) masks {
	var m masks
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := g[r][c]; v != 0 {
				bit := digitBit(v)
				m.rows[r] |= bit
				m.cols[c] |= bit
				m.boxes[boxIndex(r, c)] |= bit
			}
		}
	}
	return m
}

// candidates returns the digits excluded by none of the cell's three units.
// Meaningful only for empty cells.
func (m *masks) candidates(r, c int) DigitSet {
	return AllDigits &^ (m.rows[r] | m.cols[c] | m.boxes[boxIndex(r, c)])
}

// place sets an empty cell and its three mask bits.
func (m *masks) place(g *domain.Grid, r, c int, v uint8) {
	g[r][c] = v
	bit := digitBit(v)
	m.rows[r] |= bit
	m.cols[c] |= bit
	m.boxes[boxIndex(r, c)] |= bit
}

// unplace clears a cell and its mask bits; no-op if already empty.
func (m *masks) unplace(g *domain.Grid, r, c int) {
	v := g[r][c]
	if v == 0 {
		return
	}
	bit := digitBit(v)
	m.rows[r] &^= bit
	m.cols[c] &^= bit
	m.boxes[boxIndex(r, c)] &^= bit
	g[r][c] = 0
}

// Candidates answers "which digits may legally go at (r,c)" for a single
// cell without running a search. The UI uses it for move checks and hints.
func Candidates(b *domain.Board, r, c int) DigitSet {
	m := newMasks(&b.Values)
	return m.candidates(r, c)
}
