package generator

import (
	"math/rand"

	"svw.info/sudoku-cli/internal/domain"
)

// Complete produces a fully-filled valid grid: a canonical Latin-square base
// followed by randomized transformations that each preserve the row, column
// and box constraints. No step needs backtracking or validation.
func Complete(rng *rand.Rand) domain.Grid {
	g := baseGrid()
	relabelDigits(rng, &g)
	shuffleRowsWithinBands(rng, &g)
	shuffleColsWithinStacks(rng, &g)
	shuffleBands(rng, &g)
	shuffleStacks(rng, &g)
	return g
}

// baseGrid is the standard Latin pattern (r*3 + r/3 + c) mod 9 + 1, which
// already satisfies all Sudoku constraints.
func baseGrid() domain.Grid {
	var g domain.Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g[r][c] = uint8((r*3+r/3+c)%9) + 1
		}
	}
	return g
}

// relabelDigits applies a random permutation of 1..9 to every cell; a
// bijective relabeling cannot create duplicates.
func relabelDigits(rng *rand.Rand, g *domain.Grid) {
	perm := rng.Perm(9)
	var relabel [10]uint8
	for i, p := range perm {
		relabel[i+1] = uint8(p) + 1
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g[r][c] = relabel[g[r][c]]
		}
	}
}

// shuffleRowsWithinBands permutes the 3 rows inside each band.
func shuffleRowsWithinBands(rng *rand.Rand, g *domain.Grid) {
	for band := 0; band < 3; band++ {
		perm := rng.Perm(3)
		var tmp [3][9]uint8
		for i, p := range perm {
			tmp[i] = g[band*3+p]
		}
		for i := range tmp {
			g[band*3+i] = tmp[i]
		}
	}
}

// shuffleColsWithinStacks permutes the 3 columns inside each stack.
func shuffleColsWithinStacks(rng *rand.Rand, g *domain.Grid) {
	for stack := 0; stack < 3; stack++ {
		perm := rng.Perm(3)
		var tmp [3][9]uint8
		for i, p := range perm {
			for r := 0; r < 9; r++ {
				tmp[i][r] = g[r][stack*3+p]
			}
		}
		for i := range tmp {
			for r := 0; r < 9; r++ {
				g[r][stack*3+i] = tmp[i][r]
			}
		}
	}
}

// shuffleBands reorders the three row bands as whole blocks.
func shuffleBands(rng *rand.Rand, g *domain.Grid) {
	perm := rng.Perm(3)
	src := *g
	for i, p := range perm {
		for r := 0; r < 3; r++ {
			g[i*3+r] = src[p*3+r]
		}
	}
}

// shuffleStacks reorders the three column stacks as whole blocks.
func shuffleStacks(rng *rand.Rand, g *domain.Grid) {
	perm := rng.Perm(3)
	src := *g
	for i, p := range perm {
		for c := 0; c < 3; c++ {
			for r := 0; r < 9; r++ {
				g[r][i*3+c] = src[r][p*3+c]
			}
		}
	}
}
