package game

import (
	"fmt"
	"io"

	"svw.info/sudoku-cli/internal/domain"
)

// Render writes the box-drawn board with 1-based coordinates, '.' marking
// empty cells.
func Render(w io.Writer, g *domain.Grid) {
	fmt.Fprintln(w, "    1 2 3   4 5 6   7 8 9")
	fmt.Fprintln(w, "  +-------+-------+-------+")
	for r := 0; r < 9; r++ {
		fmt.Fprintf(w, "%d |", r+1)
		for c := 0; c < 9; c++ {
			if v := g[r][c]; v != 0 {
				fmt.Fprintf(w, " %d", v)
			} else {
				fmt.Fprint(w, " .")
			}
			if (c+1)%3 == 0 {
				fmt.Fprint(w, " |")
			}
		}
		fmt.Fprintln(w)
		if (r+1)%3 == 0 {
			fmt.Fprintln(w, "  +-------+-------+-------+")
		}
	}
}
