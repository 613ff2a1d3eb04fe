package domain

import "strings"

// Difficulty selects how aggressively clues are carved from a full grid.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// TargetClues maps a difficulty to the clue count carving aims for.
// The carver treats this as a lower bound on removal aggressiveness,
// not an exact output contract.
func (d Difficulty) TargetClues() int {
	switch d {
	case Easy:
		return 45
	case Hard:
		return 27
	default:
		return 36
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// ParseDifficulty is lenient: unrecognized input means Medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Medium
	}
}
