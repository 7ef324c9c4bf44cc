package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nourmourtada10/sudoku-go/internal/game"
	"github.com/nourmourtada10/sudoku-go/internal/generator"
	"github.com/nourmourtada10/sudoku-go/internal/infrastructure/storage"
	"github.com/nourmourtada10/sudoku-go/internal/usecase"
)

var (
	playLevel   int
	playSeed    int64
	playPersist string
	playResume  string
)

func init() {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play a Sudoku game in the terminal",
		Long: `Play a generated puzzle interactively.

Commands at the prompt:
  p ROW COL VALUE   place a value (1-based coordinates)
  e ROW COL         erase a cell
  h                 reveal a hint
  c                 check progress
  r                 reset to the original deal
  s [NAME]          save the game
  q                 quit`,
		RunE: runPlay,
	}
	playCmd.Flags().IntVarP(&playLevel, "level", "l", 5, "difficulty level 1-10 (higher is harder)")
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "seed for a reproducible puzzle (0 = random)")
	playCmd.Flags().StringVar(&playPersist, "persist-path", "./data", "save directory")
	playCmd.Flags().StringVar(&playResume, "resume", "", "saved-game ID to resume")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	store := storage.NewFS(playPersist)
	uc := usecase.NewService(newSolver(), nil, nil, nil, store)

	var s *game.Session
	if playResume != "" {
		sg, err := uc.LoadGame(context.Background(), playResume)
		if err != nil {
			return fmt.Errorf("failed to resume %s: %w", playResume, err)
		}
		s = game.Restore(sg)
		log.WithField("id", playResume).Info("game resumed")
	} else {
		seed := playSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		gen := generator.New(newSolver(), nil)
		p, _, err := gen.Generate(context.Background(), seed, playLevel)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		s = game.NewSession(p)
		log.WithField("seed", seed).Debug("new game")
	}

	start := time.Now()
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println(formatGrid(s.Current))
		fmt.Printf("score %d  mistakes %d/%d\n> ", s.Score, s.Mistakes, game.MaxMistakes)
		if !in.Scan() {
			return in.Err()
		}
		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "p", "place":
			r, c, v, err := parseMove(fields[1:], true)
			if err != nil {
				fmt.Println(err)
				continue
			}
			if err := s.Place(r, c, v); err != nil {
				fmt.Println(err)
			}
		case "e", "erase":
			r, c, _, err := parseMove(fields[1:], false)
			if err != nil {
				fmt.Println(err)
				continue
			}
			if err := s.Erase(r, c); err != nil {
				fmt.Println(err)
			}
		case "h", "hint":
			hh, ok, err := s.Hint()
			if err != nil {
				fmt.Println(err)
			} else if ok {
				fmt.Println(hh.Message)
			}
		case "c", "check":
			wrong, empty := s.Check()
			fmt.Printf("%d wrong, %d empty\n", wrong, empty)
		case "r", "reset":
			s.Reset()
			start = time.Now()
		case "s", "save":
			s.SetElapsed(int(time.Since(start).Seconds()))
			sg := s.Snapshot()
			sg.ID = playResume
			if len(fields) > 1 {
				sg.Name = strings.Join(fields[1:], " ")
			}
			id, err := uc.SaveGame(context.Background(), sg)
			if err != nil {
				fmt.Println(err)
				continue
			}
			playResume = id
			fmt.Printf("saved as %s\n", id)
		case "q", "quit":
			return nil
		default:
			fmt.Println("unknown command")
		}

		if s.Over {
			fmt.Println(formatGrid(s.Current))
			if s.Won {
				fmt.Printf("solved! score %d in %s\n", s.Score, time.Since(start).Round(time.Second))
			} else {
				fmt.Println("game over: too many mistakes")
			}
			return nil
		}
	}
}

// parseMove reads 1-based "ROW COL [VALUE]" arguments.
func parseMove(args []string, withValue bool) (r, c int, v uint8, err error) {
	want := 2
	usage := "usage: ROW COL"
	if withValue {
		want = 3
		usage = "usage: ROW COL VALUE"
	}
	if len(args) != want {
		return 0, 0, 0, errors.New(usage)
	}
	nums := make([]int, want)
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("not a number: %s", a)
		}
		nums[i] = n
	}
	if nums[0] < 1 || nums[0] > 9 || nums[1] < 1 || nums[1] > 9 {
		return 0, 0, 0, errors.New("row and column must be in 1..9")
	}
	if withValue {
		if nums[2] < 1 || nums[2] > 9 {
			return 0, 0, 0, errors.New("value must be in 1..9")
		}
		v = uint8(nums[2])
	}
	return nums[0] - 1, nums[1] - 1, v, nil
}
