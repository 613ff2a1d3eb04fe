package ports

import (
	"context"
	"time"

	"svw.info/sudoku-cli/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver completes a board and counts its solutions.
type Solver interface {
	// Solve returns the first completion found, or an error when the
	// search tree is exhausted without one.
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	// CountSolutions explores exhaustively but stops as soon as the
	// accumulated count reaches limit; it returns min(actual, limit).
	// Uniqueness certification calls it with limit=2.
	CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical placement, if one is forced.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error)
}
