package game

import (
	"context"
	"strings"
	"testing"
)

func runScript(t *testing.T, s *Session, script string) string {
	t.Helper()
	var out strings.Builder
	repl := &REPL{
		Svc:     newTestService(),
		Session: s,
		In:      strings.NewReader(script),
		Out:     &out,
		Log:     discardLogger(),
	}
	if err := repl.Run(context.Background()); err != nil {
		t.Fatalf("REPL failed: %v", err)
	}
	return out.String()
}

func TestREPLSetAndCheck(t *testing.T) {
	out := runScript(t, fixtureSession(), "set 1 3 4\ncheck\nquit\n")
	if !strings.Contains(out, "So far so good") {
		t.Fatalf("check after a legal move:\n%s", out)
	}
	if !strings.Contains(out, "Bye!") {
		t.Fatal("quit not acknowledged")
	}
}

func TestREPLRejectsIllegalMoves(t *testing.T) {
	out := runScript(t, fixtureSession(), "set 1 1 9\nset 1 3 5\nset 0 1 1\nquit\n")
	if !strings.Contains(out, "That cell is a given") {
		t.Fatalf("fixed-cell rejection missing:\n%s", out)
	}
	if !strings.Contains(out, "Illegal move") {
		t.Fatalf("conflict rejection missing:\n%s", out)
	}
	if !strings.Contains(out, "Usage: set") {
		t.Fatalf("out-of-range usage message missing:\n%s", out)
	}
}

func TestREPLCompletesGame(t *testing.T) {
	// Two holes: fill one by hand, reveal the other.
	out := runScript(t, fixtureSession(), "set 1 3 4\nhint 9 9\nquit\n")
	if !strings.Contains(out, "Hint: set (9,9) = 9") {
		t.Fatalf("reveal hint missing:\n%s", out)
	}
	if !strings.Contains(out, "Solved!") {
		t.Fatalf("completion not announced:\n%s", out)
	}
}

func TestREPLSolveCommand(t *testing.T) {
	out := runScript(t, fixtureSession(), "solve\ncheck\nquit\n")
	if !strings.Contains(out, "Solution:") {
		t.Fatalf("solve output missing:\n%s", out)
	}
	if !strings.Contains(out, "complete and correct") {
		t.Fatalf("solved board not recognized by check:\n%s", out)
	}
}

func TestREPLNakedSingleHint(t *testing.T) {
	s := fixtureSession()
	out := runScript(t, s, "hint\nquit\n")
	// both open cells are forced, so a suggestion must exist
	if !strings.Contains(out, "only 4 fits at row 1, col 3") {
		t.Fatalf("naked single hint missing:\n%s", out)
	}
}

func TestREPLUnknownCommand(t *testing.T) {
	out := runScript(t, fixtureSession(), "frobnicate\nquit\n")
	if !strings.Contains(out, "Unknown command") {
		t.Fatalf("unknown command not reported:\n%s", out)
	}
}
