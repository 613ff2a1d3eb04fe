package solver

import (
	"context"
	"time"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/ports"
)

// Solve returns the first completion of b, or ErrUnsolvable. The search
// owns one grid copy and one set of masks for the whole call and mutates
// them in place, undoing on backtrack. A board that is already complete
// comes back unchanged.
func (s *MRVSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	m := newMasks(&grid)
	nodes := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		ch, ok := pickCell(&grid, &m)
		if !ok {
			return true // complete
		}
		for cand := ch.cand; cand != 0; {
			bit := cand & -cand
			cand ^= bit
			nodes++
			m.place(&grid, ch.r, ch.c, bit.Lowest())
			if dfs() {
				return true
			}
			m.unplace(&grid, ch.r, ch.c)
		}
		return false
	}

	if !dfs() {
		err := ErrUnsolvable
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
