package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/vancomm/minesweeper-term/internal/game"
)

func isCtrlC(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && unicode.ToLower(ev.Rune()) == 'c')
}

func arrow(key tcell.Key, mod tcell.ModMask) game.Command {
	var move, expand, jump game.Command
	switch key {
	case tcell.KeyUp:
		move, expand, jump = game.MoveUp, game.ExpandUp, game.JumpToUnknownUp
	case tcell.KeyRight:
		move, expand, jump = game.MoveRight, game.ExpandRight, game.JumpToUnknownRight
	case tcell.KeyDown:
		move, expand, jump = game.MoveDown, game.ExpandDown, game.JumpToUnknownDown
	default:
		move, expand, jump = game.MoveLeft, game.ExpandLeft, game.JumpToUnknownLeft
	}
	switch {
	case mod&tcell.ModShift != 0:
		return expand
	case mod&(tcell.ModAlt|tcell.ModCtrl) != 0:
		return jump
	default:
		return move
	}
}

// Decode maps a key press during a round to a command, or [game.None].
func Decode(ev *tcell.EventKey) game.Command {
	if isCtrlC(ev) {
		return game.Cancel
	}

	mod := ev.Modifiers()
	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyRight, tcell.KeyDown, tcell.KeyLeft:
		return arrow(ev.Key(), mod)
	case tcell.KeyHome:
		if mod&tcell.ModCtrl != 0 {
			return game.MoveTop
		}
		return game.MoveHome
	case tcell.KeyEnd:
		if mod&tcell.ModCtrl != 0 {
			return game.MoveBottom
		}
		return game.MoveEnd
	case tcell.KeyEscape:
		return game.Unselect
	case tcell.KeyEnter:
		if mod&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return game.Flag
		}
		return game.Reveal
	case tcell.KeyRune:
		if mod&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return game.None
		}
		switch unicode.ToLower(ev.Rune()) {
		case 'a':
			return game.Reveal
		case 's':
			return game.Flag
		case 'p':
			return game.Pause
		case 'q':
			return game.Cancel
		case 'r':
			return game.Redraw
		case ' ':
			return game.HintMines
		}
	}
	return game.None
}

type PromptAction uint8

const (
	PromptNone PromptAction = iota
	PromptNewGame
	PromptQuit
	PromptInterrupt
)

// DecodePrompt maps a key press on the end-of-round screen.
func DecodePrompt(ev *tcell.EventKey) PromptAction {
	switch {
	case isCtrlC(ev):
		return PromptInterrupt
	case ev.Key() == tcell.KeyEnter:
		return PromptNewGame
	case ev.Key() == tcell.KeyRune && unicode.ToLower(ev.Rune()) == 'q':
		return PromptQuit
	default:
		return PromptNone
	}
}

type Key struct {
	Key, Description string
}

// Keys lists the bindings for the guide.
var Keys = []Key{
	{"A, Enter", "Open selected cells"},
	{"S, Alt/Ctrl+Enter", "Flag selected cells"},
	{"Arrow", "Move selection"},
	{"Shift+Arrow", "Expand selection"},
	{"Alt/Ctrl+Arrow", "Jump to next unknown cell"},
	{"Home, End", "Go to the start or end of the row"},
	{"Ctrl+Home, Ctrl+End", "Go to the first or last cell"},
	{"Esc", "Select a single cell"},
	{"P", "Pause game"},
	{"R", "Redraw"},
	{"Q, Ctrl+C", "Cancel game"},
	{"Space", "Show mines (debug mode)"},
}
