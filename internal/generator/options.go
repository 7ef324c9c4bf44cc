package generator

import "time"

const (
	// MinClues is the proven minimum for a uniquely-solvable 9x9 Sudoku.
	// The generator clamps every target into [MinClues, MaxClues].
	MinClues = 17
	MaxClues = 81

	// Level 1 maps to the most clues, level 10 to the fewest.
	easiestLevelClues = 60
	hardestLevelClues = 22
)

// Options configures puzzle generation behavior.
type Options struct {
	ClueCount    int           // explicit clue target; 0 derives it from the level
	EnsureUnique bool          // verify single solution while removing clues
	Timeout      time.Duration // budget for uniqueness-preserving removal
}

// DefaultOptions returns standard generator options.
func DefaultOptions() *Options {
	return &Options{
		ClueCount:    0,
		EnsureUnique: false,
		Timeout:      2 * time.Second,
	}
}
