package solver

import (
	"context"
	"testing"

	"svw.info/sudoku-cli/internal/domain"
)

func TestCountSolutionsUniquePuzzle(t *testing.T) {
	s := NewMRVSolver()
	n, _, err := s.CountSolutions(context.Background(), &domain.Board{Values: sample}, 2)
	if err != nil {
		t.Fatalf("CountSolutions failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("sample puzzle should be unique, counted %d", n)
	}
}

func TestCountSolutionsClippedAtLimit(t *testing.T) {
	s := NewMRVSolver()
	empty := &domain.Board{}
	prev := 0
	for _, limit := range []int{0, 1, 2, 5} {
		n, _, err := s.CountSolutions(context.Background(), empty, limit)
		if err != nil {
			t.Fatalf("limit=%d: %v", limit, err)
		}
		if n != limit {
			t.Fatalf("empty grid at limit=%d: counted %d, want the limit", limit, n)
		}
		if n < prev {
			t.Fatalf("count decreased from %d to %d as limit grew", prev, n)
		}
		prev = n
	}
}

func TestCountSolutionsDeadEnd(t *testing.T) {
	var g domain.Grid
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1)
	}
	g[1][8] = 9
	s := NewMRVSolver()
	n, _, err := s.CountSolutions(context.Background(), &domain.Board{Values: g}, 2)
	if err != nil {
		t.Fatalf("CountSolutions failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("blocked grid counted %d solutions, want 0", n)
	}
}

func TestCountSolutionsCompleteGrid(t *testing.T) {
	s := NewMRVSolver()
	n, _, err := s.CountSolutions(context.Background(), &domain.Board{Values: sampleSolution}, 2)
	if err != nil {
		t.Fatalf("CountSolutions failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("complete grid counted %d solutions, want 1", n)
	}
}
