package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nourmourtada10/sudoku-go/internal/solver"
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a Sudoku grid",
		Long: `Solve a grid read from a file or stdin.

The input must contain 81 cells; digits 1-9 are givens, '0' or '.' mark
empty cells, any other character is ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}

	grid, err := parseGrid(string(data))
	if err != nil {
		return err
	}

	out, st, err := newSolver().Solve(context.Background(), grid)
	if errors.Is(err, solver.ErrNoSolution) {
		log.WithFields(logrus.Fields{"nodes": st.Nodes, "dur": st.Duration}).Warn("no solution exists")
		fmt.Println("no solution")
		return nil
	}
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"nodes": st.Nodes,
		"dur":   st.Duration.Round(time.Microsecond),
	}).Info("solved")
	fmt.Println(formatGrid(out))
	return nil
}
