package solver

import (
	"context"
	"time"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/ports"
)

// CountSolutions explores the whole constraint tree but returns as soon as
// the count reaches limit, so the result is min(actual, limit). A dead cell
// is ordinary backtracking, never an error.
func (s *MRVSolver) CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats, error) {
	start := time.Now()
	if limit <= 0 {
		return 0, ports.Stats{}, nil
	}
	grid := b.Values
	m := newMasks(&grid)
	nodes := 0
	count := 0

	var dfs func()
	dfs = func() {
		if ctx.Err() != nil || count >= limit {
			return
		}
		ch, ok := pickCell(&grid, &m)
		if !ok {
			count++
			return
		}
		for cand := ch.cand; cand != 0 && count < limit; {
			bit := cand & -cand
			cand ^= bit
			nodes++
			m.place(&grid, ch.r, ch.c, bit.Lowest())
			dfs()
			m.unplace(&grid, ch.r, ch.c)
		}
	}
	dfs()

	return count, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
}
