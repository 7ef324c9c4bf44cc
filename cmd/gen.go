package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nourmourtada10/sudoku-go/internal/domain"
	"github.com/nourmourtada10/sudoku-go/internal/generator"
)

var (
	numPuzzles   int
	genLevel     int
	genClues     int
	genSeed      int64
	genUnique    bool
	genTimeout   time.Duration
	genOutput    string
	genProfiling bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Sudoku puzzles",
		Long: `Generate one or more Sudoku puzzles at a target difficulty.

Examples:
  sudoku gen --level 7
  sudoku gen -n 5 --clues 30
  sudoku gen --clues 24 --unique --timeout 5s -o puzzles.json`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "number of puzzles to generate")
	genCmd.Flags().IntVarP(&genLevel, "level", "l", 5, "difficulty level 1-10 (higher is harder)")
	genCmd.Flags().IntVarP(&genClues, "clues", "c", 0, "explicit clue count 17-81 (overrides --level)")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "seed for reproducible puzzles (0 = random)")
	genCmd.Flags().BoolVar(&genUnique, "unique", false, "verify a unique solution while removing clues")
	genCmd.Flags().DurationVar(&genTimeout, "timeout", 2*time.Second, "uniqueness-check budget per puzzle")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "write generated puzzles to a JSON file")
	genCmd.Flags().BoolVar(&genProfiling, "profile", false, "write a CPU profile to the current directory")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	if genProfiling {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	gen := generator.New(newSolver(), &generator.Options{
		ClueCount:    genClues,
		EnsureUnique: genUnique,
		Timeout:      genTimeout,
	})

	puzzles := make([]*domain.Puzzle, 0, numPuzzles)
	for i := 0; i < numPuzzles; i++ {
		seed := genSeed + int64(i)
		if genSeed == 0 {
			seed = time.Now().UnixNano()
		}
		p, st, err := gen.Generate(context.Background(), seed, genLevel)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		log.WithFields(logrus.Fields{
			"seed":  seed,
			"level": p.Level,
			"clues": p.Clues,
			"nodes": st.Nodes,
			"dur":   st.Duration.Round(time.Millisecond),
		}).Info("generated puzzle")
		fmt.Println(formatGrid(p.Board.Values))
		puzzles = append(puzzles, p)
	}

	if genOutput != "" {
		data, err := json.MarshalIndent(puzzles, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(genOutput, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", genOutput, err)
		}
		log.WithField("file", genOutput).Info("puzzles written")
	}
	return nil
}
