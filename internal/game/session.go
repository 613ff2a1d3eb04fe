package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/solver"
	"svw.info/sudoku-cli/internal/usecase"
)

// Session is the live state of one game: the original puzzle (immutable
// after setup), a full solution consistent with it, and the user-editable
// current grid. Cells filled in Puzzle are exactly the fixed givens.
type Session struct {
	Meta     *domain.Puzzle
	Puzzle   domain.Grid
	Solution domain.Grid
	Current  domain.Grid
}

var (
	ErrFixedCell = errors.New("cell is a given")
	ErrConflict  = errors.New("digit conflicts with its row, column or box")
)

// NewSession generates a puzzle and prepares it for play. The generated grid
// is re-checked for legality and uniqueness; on failure the
// session regenerates once from a fresh seed rather than repairing the grid.
// A second failure means the generation pipeline itself is broken.
func NewSession(ctx context.Context, svc *usecase.Service, seed int64, diff domain.Difficulty, logger *slog.Logger) (*Session, error) {
	var p *domain.Puzzle
	for attempt := 0; ; attempt++ {
		pz, genStats, err := svc.Generate(ctx, seed, diff)
		if err != nil {
			return nil, err
		}
		legal, _, err := svc.Validate(ctx, &pz.Board)
		if err != nil {
			return nil, err
		}
		n := 0
		if legal {
			n, _, err = svc.CountSolutions(ctx, &domain.Board{Values: pz.Board.Values}, 2)
			if err != nil {
				return nil, err
			}
		}
		if legal && n == 1 {
			p = pz
			logger.Info("generated",
				"id", p.ID,
				"seed", p.Seed,
				"difficulty", diff.String(),
				"clues", p.Board.Values.Clues(),
				"nodes", genStats.Nodes,
				"dur", genStats.Duration,
			)
			break
		}
		if attempt >= 1 {
			return nil, fmt.Errorf("generated puzzle failed verification twice (legal=%v solutions=%d)", legal, n)
		}
		logger.Warn("generated puzzle failed verification, regenerating", "legal", legal, "solutions", n)
		seed++
	}

	solved, _, err := svc.Solve(ctx, &domain.Board{Values: p.Board.Values})
	if err != nil {
		return nil, fmt.Errorf("solve generated puzzle: %w", err)
	}
	return &Session{
		Meta:     p,
		Puzzle:   p.Board.Values,
		Solution: solved.Values,
		Current:  p.Board.Values,
	}, nil
}

// Fixed reports whether (r,c) is a given of the original puzzle.
func (s *Session) Fixed(r, c int) bool { return s.Puzzle[r][c] != 0 }

// Board wraps the current grid for the solver/validator/hinter ports.
func (s *Session) Board() *domain.Board {
	var fixed [9][9]bool
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = s.Fixed(r, c)
		}
	}
	return &domain.Board{Values: s.Current, Fixed: fixed}
}

// Set places v at (r,c). Givens cannot be overwritten, and the placement
// must not duplicate v in the cell's row, column or box.
func (s *Session) Set(r, c int, v uint8) error {
	if s.Fixed(r, c) {
		return ErrFixedCell
	}
	probe := s.Current
	probe[r][c] = 0 // replacing a cell's own value is not a conflict
	if !solver.Candidates(&domain.Board{Values: probe}, r, c).Has(v) {
		return ErrConflict
	}
	s.Current[r][c] = v
	return nil
}

// Clear empties a non-given cell.
func (s *Session) Clear(r, c int) error {
	if s.Fixed(r, c) {
		return ErrFixedCell
	}
	s.Current[r][c] = 0
	return nil
}

// Reveal fills (r,c) with the solution's digit and returns it.
func (s *Session) Reveal(r, c int) (uint8, error) {
	if s.Fixed(r, c) {
		return 0, ErrFixedCell
	}
	v := s.Solution[r][c]
	s.Current[r][c] = v
	return v, nil
}

// Restart reverts the current grid to the original puzzle.
func (s *Session) Restart() { s.Current = s.Puzzle }

// Filled reports whether every cell of the current grid holds a digit.
func (s *Session) Filled() bool { return s.Current.Clues() == 81 }
