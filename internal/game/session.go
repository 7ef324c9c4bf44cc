package game

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/nourmourtada10/sudoku-go/internal/domain"
	"github.com/nourmourtada10/sudoku-go/internal/hint"
	"github.com/nourmourtada10/sudoku-go/internal/validator"
)

// MaxMistakes ends the game when reached.
const MaxMistakes = 3

const placementScore = 10

var (
	ErrGameOver   = errors.New("game is over")
	ErrFixedCell  = errors.New("cell is a fixed given")
	ErrOutOfRange = errors.New("cell coordinates out of range")
)

// Session is a single-player game in progress: the live grid, the puzzle as
// dealt, its solution, the fixed-given mask, per-cell validation marks, and
// the gameplay counters. Fixed cells always keep their original value.
type Session struct {
	Current  domain.Grid
	Original domain.Grid
	Solution domain.Grid
	Fixed    domain.Mask
	Marks    [9][9]domain.CellMark

	Level    int
	Score    int
	Mistakes int
	ElapsedS int
	Over     bool
	Won      bool

	rng *rand.Rand
}

// NewSession starts a game from a generated puzzle.
func NewSession(p *domain.Puzzle) *Session {
	return &Session{
		Current:  p.Board.Values,
		Original: p.Board.Values,
		Solution: p.Solution,
		Fixed:    p.Board.Fixed,
		Level:    p.Level,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *Session) mistake() {
	s.Mistakes++
	if s.Mistakes >= MaxMistakes {
		s.Over = true
	}
}

// Place sets value v at (r, c). Placing on a fixed cell or violating a
// row/column/box rule counts as a mistake and leaves the grid unchanged;
// the third mistake ends the game. v = 0 erases. Completing the grid
// correctly wins.
func (s *Session) Place(r, c int, v uint8) error {
	if s.Over {
		return ErrGameOver
	}
	if r < 0 || r >= 9 || c < 0 || c >= 9 || v > 9 {
		return ErrOutOfRange
	}
	if s.Fixed[r][c] {
		s.mistake()
		return ErrFixedCell
	}
	if v == 0 {
		s.Current[r][c] = 0
		s.Marks[r][c] = domain.MarkUnset
		return nil
	}
	if !validator.IsPlacementSafe(s.Current, r, c, v) {
		s.Marks[r][c] = domain.MarkInvalid
		s.mistake()
		return nil
	}
	s.Current[r][c] = v
	s.Marks[r][c] = domain.MarkValid
	s.Score += placementScore

	if validator.IsComplete(s.Current) && validator.IsFullyValid(s.Current) {
		s.Won = true
		s.Over = true
	}
	return nil
}

// Erase clears a non-fixed cell.
func (s *Session) Erase(r, c int) error {
	return s.Place(r, c, 0)
}

// Hint reveals the solution value of a random empty-or-wrong cell and
// places it.
func (s *Session) Hint() (domain.Hint, bool, error) {
	if s.Over {
		return domain.Hint{}, false, ErrGameOver
	}
	h, ok, err := hint.NewReveal(s.rng).Hint(context.Background(), s.Current, s.Solution)
	if err != nil || !ok {
		return domain.Hint{}, false, err
	}
	s.Current[h.Cell.Row][h.Cell.Col] = h.Value
	s.Marks[h.Cell.Row][h.Cell.Col] = domain.MarkValid
	if validator.IsComplete(s.Current) && validator.IsFullyValid(s.Current) {
		s.Won = true
		s.Over = true
	}
	return h, true, nil
}

// Check reports how many cells differ from the solution and how many are
// still empty.
func (s *Session) Check() (wrong, empty int) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			switch {
			case s.Current[r][c] == 0:
				empty++
			case s.Current[r][c] != s.Solution[r][c]:
				wrong++
			}
		}
	}
	return wrong, empty
}

// Reset restores the puzzle as dealt and clears counters and marks.
func (s *Session) Reset() {
	s.Current = s.Original
	s.Marks = [9][9]domain.CellMark{}
	s.Score = 0
	s.Mistakes = 0
	s.ElapsedS = 0
	s.Over = false
	s.Won = false
}

// SetElapsed records play time; the clock itself belongs to the caller.
func (s *Session) SetElapsed(seconds int) {
	if seconds >= 0 {
		s.ElapsedS = seconds
	}
}

// Snapshot produces the persistable form of the session.
func (s *Session) Snapshot() *domain.SavedGame {
	return &domain.SavedGame{
		Magic:     domain.SaveMagic,
		Version:   domain.SaveVersion,
		Current:   s.Current,
		Fixed:     s.Fixed,
		Original:  s.Original,
		Solution:  s.Solution,
		Level:     s.Level,
		Score:     s.Score,
		Mistakes:  s.Mistakes,
		ElapsedS:  s.ElapsedS,
		GameOver:  s.Over,
		CreatedAt: time.Now().UnixNano(),
	}
}

// Restore rebuilds a session from a saved record. The record's format tag
// must already have been verified by the loader.
func Restore(sg *domain.SavedGame) *Session {
	s := &Session{
		Current:  sg.Current,
		Original: sg.Original,
		Solution: sg.Solution,
		Fixed:    sg.Fixed,
		Level:    sg.Level,
		Score:    sg.Score,
		Mistakes: sg.Mistakes,
		ElapsedS: sg.ElapsedS,
		Over:     sg.GameOver,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	// re-derive marks from the live grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if s.Current[r][c] != 0 && !s.Fixed[r][c] {
				if validator.IsPlacementSafe(s.Current, r, c, s.Current[r][c]) {
					s.Marks[r][c] = domain.MarkValid
				} else {
					s.Marks[r][c] = domain.MarkInvalid
				}
			}
		}
	}
	return s
}
