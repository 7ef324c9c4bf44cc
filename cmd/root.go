package cmd

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nourmourtada10/sudoku-go/internal/ports"
	"github.com/nourmourtada10/sudoku-go/internal/solver"
)

var log = logrus.New()

var (
	verbose    bool
	solverName string
)

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Sudoku puzzle engine",
	Long: `A Sudoku engine built on an exact-cover dancing-links solver.

Generate puzzles of controllable difficulty, solve arbitrary grids, or run
the JSON HTTP API used by presentation layers.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&solverName, "solver", "dlx", "solver backend: dlx|backtrack|sat")
}

func newSolver() ports.Solver {
	switch strings.ToLower(strings.TrimSpace(solverName)) {
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver()
	case "sat":
		return solver.NewSATSolver()
	default:
		return solver.NewDLXSolver()
	}
}
