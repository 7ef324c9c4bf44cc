package validator

import (
	"context"
	"testing"

	"github.com/nourmourtada10/sudoku-go/internal/domain"
)

// solvedGrid is the unique solution of the classic example puzzle.
var solvedGrid = domain.Grid{
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

func TestIsPlacementSafeEmptyGrid(t *testing.T) {
	var g domain.Grid
	if !IsPlacementSafe(g, 0, 0, 5) {
		t.Fatal("placing 5 at (0,0) on an empty grid must be safe")
	}
	g[0][0] = 5
	if IsPlacementSafe(g, 0, 5, 5) {
		t.Fatal("placing a second 5 in row 0 must be unsafe")
	}
	if IsPlacementSafe(g, 5, 0, 5) {
		t.Fatal("placing a second 5 in column 0 must be unsafe")
	}
	if IsPlacementSafe(g, 1, 1, 5) {
		t.Fatal("placing a second 5 in the top-left box must be unsafe")
	}
	if !IsPlacementSafe(g, 5, 5, 5) {
		t.Fatal("5 at (5,5) shares no unit with (0,0)")
	}
}

func TestIsPlacementSafeSkipsOwnCell(t *testing.T) {
	// every placed value of a solved grid must be safe in place
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !IsPlacementSafe(solvedGrid, r, c, solvedGrid[r][c]) {
				t.Fatalf("value %d at (%d,%d) should check safe in place", solvedGrid[r][c], r, c)
			}
		}
	}
}

func TestIsComplete(t *testing.T) {
	if !IsComplete(solvedGrid) {
		t.Fatal("solved grid must be complete")
	}
	g := solvedGrid
	g[4][4] = 0
	if IsComplete(g) {
		t.Fatal("grid with an empty cell must not be complete")
	}
}

func TestIsFullyValid(t *testing.T) {
	if !IsFullyValid(solvedGrid) {
		t.Fatal("solved grid must be fully valid")
	}

	g := solvedGrid
	g[0][0], g[0][1] = g[0][1], g[0][0] // keeps the row valid, breaks two columns
	if IsFullyValid(g) {
		t.Fatal("grid with swapped cells must not be fully valid")
	}

	var incomplete domain.Grid
	if IsFullyValid(incomplete) {
		t.Fatal("empty grid must not be fully valid")
	}
}

func TestSingleFullRow(t *testing.T) {
	var g domain.Grid
	for c := 0; c < 9; c++ {
		g[0][c] = uint8(c + 1)
	}
	if IsComplete(g) {
		t.Fatal("grid with one filled row is not complete")
	}
	if !RowHasNoDuplicates(g, 0) {
		t.Fatal("row 0 holds 1..9 and must pass the duplicate check")
	}
	g[0][8] = 1
	if RowHasNoDuplicates(g, 0) {
		t.Fatal("row with two 1s must fail the duplicate check")
	}
}

func TestFastValidatorConflicts(t *testing.T) {
	ctx := context.Background()
	v := New()

	ok, conflicts, err := v.Validate(ctx, solvedGrid)
	if err != nil || !ok || len(conflicts) != 0 {
		t.Fatalf("solved grid should validate: ok=%v conflicts=%v err=%v", ok, conflicts, err)
	}

	var g domain.Grid
	g[2][3] = 7
	g[2][6] = 7
	ok, conflicts, err = v.Validate(ctx, g)
	if err != nil {
		t.Fatal(err)
	}
	if ok || len(conflicts) == 0 {
		t.Fatal("duplicate 7s in row 2 must be reported")
	}
	found := false
	for _, cc := range conflicts {
		if cc.Row == 2 && cc.Col == 6 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected conflict at (2,6), got %v", conflicts)
	}
}
