package mines

import (
	"fmt"
	"strconv"
)

type Kind uint8

const (
	KindUnknown Kind = iota
	KindQuestionMark
	KindFlagged
	KindEmpty
	KindRevealed
)

func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "Unknown"
	case KindQuestionMark:
		return "QuestionMark"
	case KindFlagged:
		return "Flagged"
	case KindEmpty:
		return "Empty"
	case KindRevealed:
		return "Revealed"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

/*
CellState is what the player knows about a cell:

  - Unknown: nothing has been done to the cell yet.
  - QuestionMark: the player marked the cell as doubtful. It is still
    unopened.
  - Flagged: the player (or auto-flag) marked the cell as a mine.
  - Empty: opened, no adjacent mines.
  - Revealed(n): opened, n in 1..8 adjacent mines.

The zero value is Unknown.
*/
type CellState struct {
	kind  Kind
	count uint8
}

var (
	Unknown      = CellState{kind: KindUnknown}
	QuestionMark = CellState{kind: KindQuestionMark}
	Flagged      = CellState{kind: KindFlagged}
	Empty        = CellState{kind: KindEmpty}
)

// Revealed returns the open state for a cell with n adjacent mines. A zero
// count yields Empty.
//
// panics [AssertionError] if n is outside 0..8
func Revealed(n int) CellState {
	if n < 0 || n > 8 {
		panic(AssertionError{fmt.Sprintf("near mine count out of range: %d", n)})
	}
	if n == 0 {
		return Empty
	}
	return CellState{kind: KindRevealed, count: uint8(n)}
}

func (s CellState) Kind() Kind { return s.kind }

// IsUnknown reports whether the cell is still unopened and unflagged. A
// question mark counts as unknown.
func (s CellState) IsUnknown() bool {
	return s.kind == KindUnknown || s.kind == KindQuestionMark
}

func (s CellState) IsQuestionMark() bool { return s.kind == KindQuestionMark }

func (s CellState) IsFlagged() bool { return s.kind == KindFlagged }

func (s CellState) IsEmpty() bool { return s.kind == KindEmpty }

// IsOpen reports whether the cell has been revealed (Empty or Revealed(n)).
func (s CellState) IsOpen() bool {
	return s.kind == KindEmpty || s.kind == KindRevealed
}

// NearMineCount is -1 for cells that are not open, 0 for Empty and n for
// Revealed(n).
func (s CellState) NearMineCount() int {
	switch s.kind {
	case KindEmpty:
		return 0
	case KindRevealed:
		return int(s.count)
	default:
		return -1
	}
}

// CellState implements [fmt.Stringer]
func (s CellState) String() string {
	if s.kind == KindRevealed {
		return "Revealed(" + strconv.Itoa(int(s.count)) + ")"
	}
	return s.kind.String()
}

// Symbol is the single-character form used by debug dumps.
func (s CellState) Symbol() string {
	switch s.kind {
	case KindUnknown:
		return "#"
	case KindQuestionMark:
		return "?"
	case KindFlagged:
		return "*"
	case KindEmpty:
		return "."
	default:
		return strconv.Itoa(int(s.count))
	}
}
