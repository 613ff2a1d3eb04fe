package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/game"
	"svw.info/sudoku-cli/internal/solver"
)

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [grid]",
		Short: "Solve a grid given as 81 cells (1-9, '.' for empty), or on stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			} else {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				input = string(data)
			}
			grid, err := domain.ParseGrid(input)
			if err != nil {
				return err
			}

			out, st, err := a.svc.Solve(cmd.Context(), &domain.Board{Values: grid})
			if err != nil {
				if errors.Is(err, solver.ErrUnsolvable) {
					fmt.Println("No solution exists.")
					return nil
				}
				return err
			}
			a.log.Info("solved", "nodes", st.Nodes, "dur", st.Duration)
			game.Render(os.Stdout, &out.Values)
			fmt.Println(out.Values.String())
			return nil
		},
	}
	return cmd
}
