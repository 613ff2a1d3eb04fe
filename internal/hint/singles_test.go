package hint

import (
	"context"
	"testing"

	"svw.info/sudoku-cli/internal/domain"
)

var solved = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestHintFindsNakedSingle(t *testing.T) {
	g := solved
	g[4][4] = 0
	h, found, err := NewSingles().Hint(context.Background(), &domain.Board{Values: g})
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !found {
		t.Fatal("no hint for a grid with one forced cell")
	}
	if h.Cell != (domain.CellCoord{Row: 4, Col: 4}) || h.Digit != 5 {
		t.Fatalf("hint = %+v, want digit 5 at (4,4)", h)
	}
	if h.Message == "" {
		t.Fatal("hint has no message")
	}
}

func TestHintNoneOnEmptyBoard(t *testing.T) {
	_, found, err := NewSingles().Hint(context.Background(), &domain.Board{})
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if found {
		t.Fatal("empty board should have no single-candidate cell")
	}
}

func TestHintRowMajorOrder(t *testing.T) {
	g := solved
	g[0][0] = 0
	g[8][8] = 0
	h, found, err := NewSingles().Hint(context.Background(), &domain.Board{Values: g})
	if err != nil || !found {
		t.Fatalf("Hint failed: found=%v err=%v", found, err)
	}
	if h.Cell != (domain.CellCoord{Row: 0, Col: 0}) {
		t.Fatalf("hint at %+v, want the first empty cell in row-major order", h.Cell)
	}
}
