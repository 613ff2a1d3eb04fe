package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI defaults loadable from a YAML file. Flags override
// anything set here.
type Config struct {
	Difficulty string `yaml:"difficulty"` // easy | medium | hard
	Solver     string `yaml:"solver"`     // backtrack | dlx
	Seed       int64  `yaml:"seed"`       // 0 = draw from crypto/rand
	LogLevel   string `yaml:"log_level"`  // debug | info | warn | error
}

func Default() Config {
	return Config{
		Difficulty: "medium",
		Solver:     "backtrack",
		Seed:       0,
		LogLevel:   "info",
	}
}

// Load reads path and fills unset fields with defaults. A missing file is
// not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.finalize(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) finalize() error {
	c.Difficulty = strings.ToLower(strings.TrimSpace(c.Difficulty))
	c.Solver = strings.ToLower(strings.TrimSpace(c.Solver))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.Difficulty == "" {
		c.Difficulty = "medium"
	}
	if c.Solver == "" {
		c.Solver = "backtrack"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	switch c.Difficulty {
	case "easy", "medium", "hard":
	default:
		return fmt.Errorf("unknown difficulty %q", c.Difficulty)
	}
	switch c.Solver {
	case "backtrack", "backtracking", "dlx":
	default:
		return fmt.Errorf("unknown solver %q", c.Solver)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
