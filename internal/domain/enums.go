package domain

// Level is a numeric difficulty in [1,10]; higher means fewer clues.
const (
	MinLevel = 1
	MaxLevel = 10
)

// CellMark annotates a cell of the live grid after a placement attempt.
type CellMark uint8

const (
	MarkUnset   CellMark = iota // no placement attempted yet
	MarkValid                   // last placement was rule-consistent
	MarkInvalid                 // last placement attempt violated a rule
)
