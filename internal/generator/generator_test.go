package generator

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/nourmourtada10/sudoku-go/internal/domain"
	"github.com/nourmourtada10/sudoku-go/internal/solver"
	"github.com/nourmourtada10/sudoku-go/internal/validator"
)

func TestCluesForLevelMonotonicAndClamped(t *testing.T) {
	prev := MaxClues + 1
	for level := domain.MinLevel; level <= domain.MaxLevel; level++ {
		clues := CluesForLevel(level)
		if clues < MinClues || clues > MaxClues {
			t.Fatalf("level %d maps to %d clues, outside [%d,%d]", level, clues, MinClues, MaxClues)
		}
		if clues > prev {
			t.Fatalf("level %d maps to %d clues, more than level %d", level, clues, level-1)
		}
		prev = clues
	}
	// out-of-range levels clamp rather than fail
	if CluesForLevel(-3) != CluesForLevel(domain.MinLevel) {
		t.Fatal("levels below range must clamp to the easiest mapping")
	}
	if CluesForLevel(99) != CluesForLevel(domain.MaxLevel) {
		t.Fatal("levels above range must clamp to the hardest mapping")
	}
}

func TestFillGridProducesValidSolution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g, ok := FillGrid(context.Background(), rng)
	if !ok {
		t.Fatal("fill of an empty grid must succeed")
	}
	if !validator.IsComplete(g) || !validator.IsFullyValid(g) {
		t.Fatalf("filled grid is not a valid solution:\n%v", g)
	}
}

func TestMakePuzzleClamping(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	full, _ := FillGrid(context.Background(), rng)

	cases := []struct {
		name   string
		target int
		want   int
	}{
		{"below minimum", 5, MinClues},
		{"above maximum", 200, 81},
		{"exact", 30, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			puzzle, fixed := MakePuzzle(rng, full, tc.target)
			if got := puzzle.CountFilled(); got != tc.want {
				t.Fatalf("clue count = %d, want %d", got, tc.want)
			}
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if fixed[r][c] != (puzzle[r][c] != 0) {
						t.Fatalf("fixed mask disagrees with puzzle at (%d,%d)", r, c)
					}
					if puzzle[r][c] != 0 && puzzle[r][c] != full[r][c] {
						t.Fatalf("puzzle cell (%d,%d) is not a subset of the full grid", r, c)
					}
				}
			}
		})
	}
}

func TestGenerateSolvableAndConsistent(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s := solver.NewDLXSolver()
	g := New(s, &Options{ClueCount: 30})

	p, st, err := g.Generate(ctx, 12345, 5)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if p.Clues != 30 {
		t.Fatalf("clue count = %d, want 30", p.Clues)
	}
	if !validator.IsFullyValid(p.Solution) {
		t.Fatal("reported solution is not fully valid")
	}

	solved, _, err := s.Solve(ctx, p.Board.Values)
	if err != nil {
		t.Fatalf("generated puzzle is unsolvable: %v (nodes=%d)", err, st.Nodes)
	}
	// fixed cells of any solve agree with the reported solution
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if p.Board.Fixed[r][c] {
				if solved[r][c] != p.Board.Values[r][c] {
					t.Fatalf("solve changed fixed cell (%d,%d)", r, c)
				}
				if p.Solution[r][c] != p.Board.Values[r][c] {
					t.Fatalf("solution disagrees with fixed cell (%d,%d)", r, c)
				}
			}
		}
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	ctx := context.Background()
	s := solver.NewDLXSolver()

	a, _, err := New(s, &Options{ClueCount: 34}).Generate(ctx, 777, 5)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := New(s, &Options{ClueCount: 34}).Generate(ctx, 777, 5)
	if err != nil {
		t.Fatal(err)
	}
	if a.Board.Values != b.Board.Values {
		t.Fatal("same seed must generate the same puzzle")
	}
	if a.Solution != b.Solution {
		t.Fatal("same seed must generate the same solution")
	}
}

func TestGenerateUnique(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s := solver.NewDLXSolver()
	g := New(s, &Options{ClueCount: 32, EnsureUnique: true, Timeout: 5 * time.Second})

	p, _, err := g.Generate(ctx, 99, 5)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	unique, _, err := s.Unique(ctx, p.Board.Values)
	if err != nil {
		t.Fatal(err)
	}
	if !unique {
		t.Fatal("EnsureUnique puzzle does not have a unique solution")
	}
}

func TestGenerateLevelDrivesClueCount(t *testing.T) {
	ctx := context.Background()
	s := solver.NewDLXSolver()
	g := New(s, nil) // no explicit clue count: derive from level

	p, _, err := g.Generate(ctx, 4242, 1)
	if err != nil {
		t.Fatal(err)
	}
	if p.Clues != CluesForLevel(1) {
		t.Fatalf("level 1 puzzle has %d clues, want %d", p.Clues, CluesForLevel(1))
	}
}
