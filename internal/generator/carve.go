package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/ports"
)

// maxAttempts caps the number of removal attempts per puzzle. It bounds
// worst-case carving cost; hitting it just leaves more clues than the
// difficulty target asked for.
const maxAttempts = 20000

// SymmetricCarver builds puzzles by clearing point-symmetric cell pairs from
// a complete grid, keeping a removal only when the provided Solver certifies
// the result still has exactly one solution.
type SymmetricCarver struct {
	Solver ports.Solver
}

func NewSymmetricCarver(s ports.Solver) *SymmetricCarver {
	return &SymmetricCarver{Solver: s}
}

// Generate creates a puzzle with a unique solution from seed and difficulty.
// All randomness comes from the seeded rng, so a fixed seed reproduces the
// whole pipeline.
func (g *SymmetricCarver) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	solution := Complete(rng)
	puzzle, st, err := g.Carve(ctx, rng, solution, diff)
	if err != nil {
		return nil, st, err
	}

	var fixed [9][9]bool
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = puzzle[r][c] != 0
		}
	}
	p := &domain.Puzzle{
		ID:         uuid.NewString(),
		Seed:       seed,
		Difficulty: diff,
		Board:      domain.Board{Values: puzzle, Fixed: fixed},
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: st.Nodes, Duration: time.Since(start)}, nil
}

// Carve removes clues from a copy of solution until the difficulty's clue
// target is reached or the attempt budget runs out. Each candidate position
// is tried together with its point-symmetric partner (8-r, 8-c); the pair is
// accepted atomically or not at all, so the final clue count may overshoot
// the target when uniqueness cannot be preserved further.
func (g *SymmetricCarver) Carve(ctx context.Context, rng *rand.Rand, solution domain.Grid, diff domain.Difficulty) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	puzzle := solution
	target := diff.TargetClues()
	clues := 81
	nodes := 0

	attempts := 0
	for _, pos := range rng.Perm(81) {
		if clues <= target || attempts >= maxAttempts {
			break
		}
		if ctx.Err() != nil {
			return puzzle, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
		}
		r, c := pos/9, pos%9
		if puzzle[r][c] == 0 {
			continue
		}
		sr, sc := 8-r, 8-c

		scratch := puzzle
		scratch[r][c] = 0
		removed := 1
		if (sr != r || sc != c) && scratch[sr][sc] != 0 {
			scratch[sr][sc] = 0
			removed++
		}
		if clues-removed < target {
			// a pair removal here would undershoot the target
			attempts++
			continue
		}

		n, st, err := g.Solver.CountSolutions(ctx, &domain.Board{Values: scratch}, 2)
		nodes += st.Nodes
		if err != nil {
			return puzzle, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if n == 1 {
			puzzle = scratch
			clues -= removed
		}
		attempts++
	}
	return puzzle, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
