package solver

import (
	"errors"

	"svw.info/sudoku-cli/internal/domain"
)

// MRVSolver is a recursive backtracking solver over a grid plus its
// constraint masks. Cell selection follows minimum remaining values;
// candidate digits are tried in ascending order, so exploration is
// deterministic for a fixed grid.
type MRVSolver struct{}

func NewMRVSolver() *MRVSolver { return &MRVSolver{} }

// ErrUnsolvable is the ordinary "no completion exists" outcome of Solve.
var ErrUnsolvable = errors.New("no solution exists")

type choice struct {
	r, c int
	cand DigitSet
}

// pickCell scans the empty cells and returns the one with the fewest
// candidates, first in row-major order on ties. ok is false when no cell is
// empty. A returned empty candidate set marks a dead end; a 1-candidate
// cell short-circuits the scan since it cannot be improved on.
func pickCell(g *domain.Grid, m *masks) (choice, bool) {
	best := choice{r: -1}
	bestCount := 10
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				continue
			}
			cand := m.candidates(r, c)
			cnt := cand.Count()
			if cnt >= bestCount {
				continue
			}
			best = choice{r: r, c: c, cand: cand}
			bestCount = cnt
			if cnt <= 1 {
				return best, true
			}
		}
	}
	return best, best.r >= 0
}
