package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"svw.info/sudoku-cli/internal/solver"
	"svw.info/sudoku-cli/internal/usecase"
)

// REPL is the line-oriented command interpreter around one game session.
type REPL struct {
	Svc     *usecase.Service
	Session *Session
	In      io.Reader
	Out     io.Writer
	Log     *slog.Logger
}

const helpText = `Commands:
  set r c v     - place value v (1..9) at row r, col c (1..9)
  clear r c     - clear cell at (r,c)
  hint          - suggest a cell with only one candidate left
  hint r c      - fill the correct value for (r,c)
  check         - verify no rule is violated
  solve         - fill the whole solution
  restart       - revert to the original puzzle
  print         - show the current board
  help          - show this help
  quit          - exit`

// Run reads commands until quit or EOF.
func (p *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(p.Out, "\nSudoku")
	Render(p.Out, &p.Session.Current)
	fmt.Fprintln(p.Out, "Type 'help' for commands.")

	sc := bufio.NewScanner(p.In)
	for {
		fmt.Fprint(p.Out, "\n> ")
		if !sc.Scan() {
			return sc.Err()
		}
		fields := strings.Fields(strings.ToLower(sc.Text()))
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "q", "exit":
			fmt.Fprintln(p.Out, "Bye!")
			return nil
		case "help", "h":
			fmt.Fprintln(p.Out, helpText)
		case "print", "p":
			Render(p.Out, &p.Session.Current)
		case "restart":
			p.Session.Restart()
			fmt.Fprintln(p.Out, "Restarted.")
			Render(p.Out, &p.Session.Current)
		case "check":
			p.check(ctx)
		case "set":
			p.set(ctx, args)
		case "clear":
			p.clear(args)
		case "hint":
			p.hint(ctx, args)
		case "solve":
			p.solve(ctx)
		default:
			fmt.Fprintln(p.Out, "Unknown command. Type 'help' for options.")
		}
	}
}

// cellArgs parses 1-based coordinates (plus an optional digit) and converts
// to 0-based rows and columns.
func (p *REPL) cellArgs(args []string, withDigit bool) (r, c int, v uint8, ok bool) {
	need := 2
	if withDigit {
		need = 3
	}
	if len(args) != need {
		return 0, 0, 0, false
	}
	nums := make([]int, need)
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return 0, 0, 0, false
		}
		nums[i] = n
	}
	if nums[0] < 1 || nums[0] > 9 || nums[1] < 1 || nums[1] > 9 {
		return 0, 0, 0, false
	}
	if withDigit {
		if nums[2] < 1 || nums[2] > 9 {
			return 0, 0, 0, false
		}
		v = uint8(nums[2])
	}
	return nums[0] - 1, nums[1] - 1, v, true
}

func (p *REPL) set(ctx context.Context, args []string) {
	r, c, v, ok := p.cellArgs(args, true)
	if !ok {
		fmt.Fprintln(p.Out, "Usage: set r c v  (all in 1..9)")
		return
	}
	switch err := p.Session.Set(r, c, v); {
	case errors.Is(err, ErrFixedCell):
		fmt.Fprintln(p.Out, "That cell is a given; cannot change it.")
		return
	case errors.Is(err, ErrConflict):
		fmt.Fprintln(p.Out, "Illegal move (conflict).")
		return
	}
	Render(p.Out, &p.Session.Current)
	if p.completed(ctx) {
		fmt.Fprintln(p.Out, "Solved! 🎉")
	}
}

func (p *REPL) clear(args []string) {
	r, c, _, ok := p.cellArgs(args, false)
	if !ok {
		fmt.Fprintln(p.Out, "Usage: clear r c  (both in 1..9)")
		return
	}
	if err := p.Session.Clear(r, c); err != nil {
		fmt.Fprintln(p.Out, "That cell is a given; cannot clear.")
		return
	}
	Render(p.Out, &p.Session.Current)
}

func (p *REPL) hint(ctx context.Context, args []string) {
	if len(args) == 0 {
		h, found, err := p.Svc.Hint(ctx, p.Session.Board())
		if err != nil {
			fmt.Fprintln(p.Out, "Hint failed:", err)
			return
		}
		if !found {
			fmt.Fprintln(p.Out, "No single-candidate cell right now. Try 'hint r c'.")
			return
		}
		fmt.Fprintf(p.Out, "Hint: %s\n", h.Message)
		return
	}
	r, c, _, ok := p.cellArgs(args, false)
	if !ok {
		fmt.Fprintln(p.Out, "Usage: hint [r c]  (both in 1..9)")
		return
	}
	v, err := p.Session.Reveal(r, c)
	if err != nil {
		fmt.Fprintln(p.Out, "That cell is a given.")
		return
	}
	fmt.Fprintf(p.Out, "Hint: set (%d,%d) = %d\n", r+1, c+1, v)
	Render(p.Out, &p.Session.Current)
	if p.completed(ctx) {
		fmt.Fprintln(p.Out, "Solved! 🎉")
	}
}

func (p *REPL) check(ctx context.Context) {
	legal, conflicts, err := p.Svc.Validate(ctx, p.Session.Board())
	if err != nil {
		fmt.Fprintln(p.Out, "Check failed:", err)
		return
	}
	switch {
	case !legal:
		fmt.Fprintf(p.Out, "There are rule violations (%d conflicting cells).\n", len(conflicts))
	case p.Session.Filled():
		fmt.Fprintln(p.Out, "Looks complete and correct. Nice!")
	default:
		fmt.Fprintln(p.Out, "So far so good. No violations detected.")
	}
}

func (p *REPL) solve(ctx context.Context) {
	out, st, err := p.Svc.Solve(ctx, p.Session.Board())
	if err != nil {
		if errors.Is(err, solver.ErrUnsolvable) {
			fmt.Fprintln(p.Out, "No solution from current state (there may be conflicts). Try 'check'.")
			return
		}
		fmt.Fprintln(p.Out, "Solve failed:", err)
		return
	}
	p.Log.Debug("solved", "nodes", st.Nodes, "dur", st.Duration)
	p.Session.Current = out.Values
	fmt.Fprintln(p.Out, "Solution:")
	Render(p.Out, &p.Session.Current)
}

func (p *REPL) completed(ctx context.Context) bool {
	if !p.Session.Filled() {
		return false
	}
	legal, _, err := p.Svc.Validate(ctx, p.Session.Board())
	return err == nil && legal
}
