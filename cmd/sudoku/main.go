package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/sudoku-cli/internal/config"
	"svw.info/sudoku-cli/internal/generator"
	"svw.info/sudoku-cli/internal/hint"
	"svw.info/sudoku-cli/internal/ports"
	"svw.info/sudoku-cli/internal/solver"
	"svw.info/sudoku-cli/internal/usecase"
	"svw.info/sudoku-cli/internal/validator"
)

// app carries the wired dependencies shared by all subcommands.
type app struct {
	configPath string
	logLevel   string

	cfg config.Config
	log *slog.Logger
	svc *usecase.Service
}

func newSolver(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "dlx":
		return solver.NewDLXSolver()
	default:
		return solver.NewMRVSolver()
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setup loads the config file and wires providers → use cases. It runs as
// PersistentPreRunE so every subcommand sees the same stack.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	a.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(level)}))

	s := newSolver(cfg.Solver)
	g := generator.NewSymmetricCarver(s)
	v := validator.New()
	h := hint.NewSingles()
	a.svc = usecase.NewService(s, g, v, h)
	return nil
}

// resolveSeed prefers the flag, then the config file, then a random draw.
func (a *app) resolveSeed(flagSeed int64) int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if a.cfg.Seed != 0 {
		return a.cfg.Seed
	}
	return generator.RandomSeed()
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "sudoku",
		Short:             "Generate, solve and play 9x9 Sudoku in the terminal",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "sudoku.yaml", "path to YAML config (missing file = defaults)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error (overrides config)")
	root.AddCommand(newPlayCmd(a), newGenerateCmd(a), newSolveCmd(a))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
