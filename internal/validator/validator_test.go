package validator

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

func TestValidateCleanBoard(t *testing.T) {
	v := New()
	ok, conf, err := v.Validate(context.Background(), &domain.Board{Values: solved})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !ok || len(conf) != 0 {
		t.Fatalf("solved grid flagged: conflicts=%v", conf)
	}
}

func TestValidateEmptyBoard(t *testing.T) {
	v := New()
	ok, conf, err := v.Validate(context.Background(), &domain.Board{})
	if err != nil || !ok || len(conf) != 0 {
		t.Fatalf("empty grid flagged: ok=%v conflicts=%v err=%v", ok, conf, err)
	}
}

func TestValidateFindsConflicts(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.Grid)
	}{
		{"row", func(g *domain.Grid) { g[0][1] = g[0][0] }},
		{"col", func(g *domain.Grid) { g[1][0] = g[0][0] }},
		{"box", func(g *domain.Grid) { g[1][1] = g[0][0] }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := solved
			tc.mutate(&g)
			ok, conf, err := New().Validate(context.Background(), &domain.Board{Values: g})
			if err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			if ok || len(conf) == 0 {
				t.Fatalf("%s conflict not reported", tc.name)
			}
		})
	}
}

func TestComplete(t *testing.T) {
	v := New()
	ctx := context.Background()
	if !v.Complete(ctx, &domain.Board{Values: solved}) {
		t.Fatal("solved grid not reported complete")
	}
	g := solved
	g[4][4] = 0
	if v.Complete(ctx, &domain.Board{Values: g}) {
		t.Fatal("grid with a hole reported complete")
	}
	g = solved
	g[0][1] = g[0][0]
	if v.Complete(ctx, &domain.Board{Values: g}) {
		t.Fatal("conflicting grid reported complete")
	}
}
