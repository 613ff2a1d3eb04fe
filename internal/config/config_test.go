package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoadOverridesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sudoku.yaml")
	body := "difficulty: HARD\nsolver: DLX\nseed: 1234\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Difficulty != "hard" || cfg.Solver != "dlx" || cfg.Seed != 1234 {
		t.Fatalf("got %+v", cfg)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unset log level should default to info, got %q", cfg.LogLevel)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"difficulty", "difficulty: brutal\n"},
		{"solver", "solver: quantum\n"},
		{"log-level", "log_level: loud\n"},
		{"yaml", "difficulty: [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sudoku.yaml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Fatalf("bad config %q accepted", tc.body)
			}
		})
	}
}
