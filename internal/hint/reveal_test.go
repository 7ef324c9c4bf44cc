package hint

import (
	"context"
	"math/rand"
	"testing"

	"github.com/nourmourtada10/sudoku-go/internal/domain"
)

var revealSolution = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestHintRevealsSolutionValue(t *testing.T) {
	current := revealSolution
	current[0][0] = 0
	current[4][4] = 0
	current[8][8] = 3 // wrong value counts too

	h := NewReveal(rand.New(rand.NewSource(1)))
	for i := 0; i < 20; i++ {
		hint, ok, err := h.Hint(context.Background(), current, revealSolution)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatal("expected a hint on an unfinished grid")
		}
		r, c := hint.Cell.Row, hint.Cell.Col
		if current[r][c] == revealSolution[r][c] {
			t.Fatalf("hint targeted (%d,%d), which already matches the solution", r, c)
		}
		if hint.Value != revealSolution[r][c] {
			t.Fatalf("hint value %d at (%d,%d), want %d", hint.Value, r, c, revealSolution[r][c])
		}
		if hint.Message == "" {
			t.Fatal("empty hint message")
		}
	}
}

func TestHintOnCompleteGrid(t *testing.T) {
	h := NewReveal(nil)
	_, ok, err := h.Hint(context.Background(), revealSolution, revealSolution)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("no hint expected when the grid matches the solution")
	}
}
