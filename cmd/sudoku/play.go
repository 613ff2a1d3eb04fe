package main

import (
	"os"

	"github.com/spf13/cobra"

	"svw.info/sudoku-cli/internal/domain"
	"svw.info/sudoku-cli/internal/game"
)

func newPlayCmd(a *app) *cobra.Command {
	var (
		difficulty string
		seed       int64
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game",
		RunE: func(cmd *cobra.Command, args []string) error {
			if difficulty == "" {
				difficulty = a.cfg.Difficulty
			}
			diff := domain.ParseDifficulty(difficulty)
			sess, err := game.NewSession(cmd.Context(), a.svc, a.resolveSeed(seed), diff, a.log)
			if err != nil {
				return err
			}
			repl := &game.REPL{
				Svc:     a.svc,
				Session: sess,
				In:      os.Stdin,
				Out:     os.Stdout,
				Log:     a.log,
			}
			return repl.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "easy|medium|hard (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "generation seed (0 = random)")
	return cmd
}
