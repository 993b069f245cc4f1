package game

import (
	"fmt"

	"github.com/vancomm/minesweeper-term/internal/mines"
)

// Command is an abstract player intent. Raw keys never reach the session.
type Command uint8

const (
	None Command = iota
	Reveal
	Flag
	ExpandUp
	ExpandRight
	ExpandDown
	ExpandLeft
	JumpToUnknownUp
	JumpToUnknownRight
	JumpToUnknownDown
	JumpToUnknownLeft
	MoveUp
	MoveRight
	MoveDown
	MoveLeft
	MoveHome
	MoveEnd
	MoveTop
	MoveBottom
	Unselect
	Pause
	Cancel
	Redraw
	HintMines
)

var commandNames = [...]string{
	None:               "None",
	Reveal:             "Reveal",
	Flag:               "Flag",
	ExpandUp:           "ExpandUp",
	ExpandRight:        "ExpandRight",
	ExpandDown:         "ExpandDown",
	ExpandLeft:         "ExpandLeft",
	JumpToUnknownUp:    "JumpToUnknownUp",
	JumpToUnknownRight: "JumpToUnknownRight",
	JumpToUnknownDown:  "JumpToUnknownDown",
	JumpToUnknownLeft:  "JumpToUnknownLeft",
	MoveUp:             "MoveUp",
	MoveRight:          "MoveRight",
	MoveDown:           "MoveDown",
	MoveLeft:           "MoveLeft",
	MoveHome:           "MoveHome",
	MoveEnd:            "MoveEnd",
	MoveTop:            "MoveTop",
	MoveBottom:         "MoveBottom",
	Unselect:           "Unselect",
	Pause:              "Pause",
	Cancel:             "Cancel",
	Redraw:             "Redraw",
	HintMines:          "HintMines",
}

// Command implements [fmt.Stringer]
func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// direction maps a directional command to its direction.
func (c Command) direction() mines.Direction {
	switch c {
	case ExpandUp, JumpToUnknownUp, MoveUp:
		return mines.Up
	case ExpandRight, JumpToUnknownRight, MoveRight:
		return mines.Right
	case ExpandDown, JumpToUnknownDown, MoveDown:
		return mines.Down
	default:
		return mines.Left
	}
}
