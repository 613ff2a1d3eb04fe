package hint

import (
	"context"
	"fmt"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/solver"
)

// Singles suggests naked singles: empty cells whose candidate set has
// exactly one digit left.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first naked single in row-major order, if any.
func (h *Singles) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			cand := solver.Candidates(b, r, c)
			if cand.Count() != 1 {
				continue
			}
			v := cand.Lowest()
			return domain.Hint{
				Message: fmt.Sprintf("only %d fits at row %d, col %d", v, r+1, c+1),
				Cell:    domain.CellCoord{Row: r, Col: c},
				Digit:   v,
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}
