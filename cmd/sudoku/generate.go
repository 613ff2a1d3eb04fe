package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/game"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		difficulty   string
		seed         int64
		asJSON       bool
		withSolution bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one puzzle and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if difficulty == "" {
				difficulty = a.cfg.Difficulty
			}
			diff := domain.ParseDifficulty(difficulty)
			s := a.resolveSeed(seed)

			p, st, err := a.svc.Generate(cmd.Context(), s, diff)
			if err != nil {
				return err
			}
			a.log.Info("generated",
				"id", p.ID,
				"seed", s,
				"difficulty", diff.String(),
				"clues", p.Board.Values.Clues(),
				"nodes", st.Nodes,
				"dur", st.Duration,
			)

			var solution *domain.Grid
			if withSolution {
				solved, _, err := a.svc.Solve(cmd.Context(), &domain.Board{Values: p.Board.Values})
				if err != nil {
					return fmt.Errorf("solve generated puzzle: %w", err)
				}
				solution = &solved.Values
			}

			if asJSON {
				out := struct {
					Puzzle   *domain.Puzzle `json:"puzzle"`
					Solution *domain.Grid   `json:"solution,omitempty"`
				}{Puzzle: p, Solution: solution}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			game.Render(os.Stdout, &p.Board.Values)
			fmt.Println(p.Board.Values.String())
			if solution != nil {
				fmt.Println("\nSolution:")
				game.Render(os.Stdout, solution)
				fmt.Println(solution.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "easy|medium|hard (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "generation seed (0 = random)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a rendered board")
	cmd.Flags().BoolVar(&withSolution, "solution", false, "also print the solution")
	return cmd
}
