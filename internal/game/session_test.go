package game

import (
	"errors"
	"testing"

	"github.com/nourmourtada10/sudoku-go/internal/domain"
)

var solution = domain.Grid{
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

// newTestSession deals the solved grid with the given cells cleared.
func newTestSession(holes ...domain.CellCoord) *Session {
	values := solution
	for _, h := range holes {
		values[h.Row][h.Col] = 0
	}
	var fixed domain.Mask
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = values[r][c] != 0
		}
	}
	return NewSession(&domain.Puzzle{
		Board:    domain.Board{Values: values, Fixed: fixed},
		Solution: solution,
		Level:    5,
	})
}

func TestPlaceOnFixedCellIsMistake(t *testing.T) {
	s := newTestSession(domain.CellCoord{Row: 0, Col: 2})
	err := s.Place(4, 4, 9)
	if !errors.Is(err, ErrFixedCell) {
		t.Fatalf("expected ErrFixedCell, got %v", err)
	}
	if s.Mistakes != 1 {
		t.Fatalf("mistakes = %d, want 1", s.Mistakes)
	}
	if s.Current[4][4] != solution[4][4] {
		t.Fatal("fixed cell must keep its value")
	}
}

func TestPlaceRuleViolationIsMistake(t *testing.T) {
	s := newTestSession(domain.CellCoord{Row: 0, Col: 2})
	// 5 already sits at (0,0)
	if err := s.Place(0, 2, 5); err != nil {
		t.Fatalf("rule violation should not return an error: %v", err)
	}
	if s.Mistakes != 1 {
		t.Fatalf("mistakes = %d, want 1", s.Mistakes)
	}
	if s.Current[0][2] != 0 {
		t.Fatal("violating placement must leave the cell unchanged")
	}
	if s.Marks[0][2] != domain.MarkInvalid {
		t.Fatal("cell must be marked invalid")
	}
}

func TestThreeMistakesEndTheGame(t *testing.T) {
	s := newTestSession(domain.CellCoord{Row: 0, Col: 2})
	for i := 0; i < MaxMistakes; i++ {
		if s.Over {
			t.Fatalf("game over after only %d mistakes", i)
		}
		_ = s.Place(0, 2, 5)
	}
	if !s.Over {
		t.Fatal("game must be over after three mistakes")
	}
	if err := s.Place(0, 2, 4); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
}

func TestCorrectFinalPlacementWins(t *testing.T) {
	s := newTestSession(domain.CellCoord{Row: 0, Col: 2})
	if err := s.Place(0, 2, 4); err != nil {
		t.Fatal(err)
	}
	if !s.Won || !s.Over {
		t.Fatalf("completing the grid must win: won=%v over=%v", s.Won, s.Over)
	}
	if s.Score == 0 {
		t.Fatal("a scoring placement must raise the score")
	}
	if s.Marks[0][2] != domain.MarkValid {
		t.Fatal("cell must be marked valid")
	}
}

func TestEraseClearsCellAndMark(t *testing.T) {
	s := newTestSession(
		domain.CellCoord{Row: 0, Col: 2},
		domain.CellCoord{Row: 8, Col: 8},
	)
	if err := s.Place(0, 2, 4); err != nil {
		t.Fatal(err)
	}
	if err := s.Erase(0, 2); err != nil {
		t.Fatal(err)
	}
	if s.Current[0][2] != 0 || s.Marks[0][2] != domain.MarkUnset {
		t.Fatal("erase must clear the value and the mark")
	}
}

func TestHintRevealsSolutionValue(t *testing.T) {
	holes := []domain.CellCoord{{Row: 0, Col: 2}, {Row: 3, Col: 3}, {Row: 7, Col: 1}}
	s := newTestSession(holes...)
	h, ok, err := s.Hint()
	if err != nil || !ok {
		t.Fatalf("hint failed: ok=%v err=%v", ok, err)
	}
	if h.Value != solution[h.Cell.Row][h.Cell.Col] {
		t.Fatalf("hint value %d disagrees with solution %d", h.Value, solution[h.Cell.Row][h.Cell.Col])
	}
	if s.Current[h.Cell.Row][h.Cell.Col] != h.Value {
		t.Fatal("hint must place the revealed value")
	}
}

func TestCheckCountsWrongAndEmpty(t *testing.T) {
	// (3,5)/(3,8)/(4,5)/(4,8) hold 1/3/3/1: with all four cleared, the
	// swapped value 3 is legal at (3,5) but disagrees with the solution
	s := newTestSession(
		domain.CellCoord{Row: 3, Col: 5},
		domain.CellCoord{Row: 3, Col: 8},
		domain.CellCoord{Row: 4, Col: 5},
		domain.CellCoord{Row: 4, Col: 8},
	)
	if err := s.Place(3, 5, 3); err != nil {
		t.Fatal(err)
	}
	if s.Mistakes != 0 {
		t.Fatalf("legal placement must not count as mistake, got %d", s.Mistakes)
	}
	wrong, empty := s.Check()
	if wrong != 1 || empty != 3 {
		t.Fatalf("check = (%d wrong, %d empty), want (1, 3)", wrong, empty)
	}
}

func TestResetRestoresDeal(t *testing.T) {
	s := newTestSession(domain.CellCoord{Row: 0, Col: 2})
	_ = s.Place(0, 2, 5) // mistake
	s.SetElapsed(120)
	s.Reset()
	if s.Current != s.Original {
		t.Fatal("reset must restore the original deal")
	}
	if s.Mistakes != 0 || s.Score != 0 || s.ElapsedS != 0 || s.Over {
		t.Fatal("reset must clear all counters")
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	s := newTestSession(
		domain.CellCoord{Row: 0, Col: 2},
		domain.CellCoord{Row: 8, Col: 8},
	)
	if err := s.Place(0, 2, 4); err != nil {
		t.Fatal(err)
	}
	s.SetElapsed(42)

	sg := s.Snapshot()
	if sg.Magic != domain.SaveMagic || sg.Version != domain.SaveVersion {
		t.Fatal("snapshot must carry the format tag")
	}

	r := Restore(sg)
	if r.Current != s.Current || r.Original != s.Original || r.Solution != s.Solution {
		t.Fatal("restore must reproduce the grids")
	}
	if r.Fixed != s.Fixed {
		t.Fatal("restore must reproduce the fixed mask")
	}
	if r.Score != s.Score || r.Mistakes != s.Mistakes || r.ElapsedS != 42 {
		t.Fatal("restore must reproduce the counters")
	}
	if r.Marks[0][2] != domain.MarkValid {
		t.Fatal("restore must re-derive marks for placed cells")
	}
}
