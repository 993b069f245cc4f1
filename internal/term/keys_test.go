package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-term/internal/game"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
		mod  tcell.ModMask
		want game.Command
	}{
		{"up", tcell.KeyUp, 0, tcell.ModNone, game.MoveUp},
		{"shift right", tcell.KeyRight, 0, tcell.ModShift, game.ExpandRight},
		{"alt down", tcell.KeyDown, 0, tcell.ModAlt, game.JumpToUnknownDown},
		{"ctrl left", tcell.KeyLeft, 0, tcell.ModCtrl, game.JumpToUnknownLeft},
		{"home", tcell.KeyHome, 0, tcell.ModNone, game.MoveHome},
		{"ctrl home", tcell.KeyHome, 0, tcell.ModCtrl, game.MoveTop},
		{"end", tcell.KeyEnd, 0, tcell.ModNone, game.MoveEnd},
		{"ctrl end", tcell.KeyEnd, 0, tcell.ModCtrl, game.MoveBottom},
		{"escape", tcell.KeyEscape, 0, tcell.ModNone, game.Unselect},
		{"enter", tcell.KeyEnter, 0, tcell.ModNone, game.Reveal},
		{"alt enter", tcell.KeyEnter, 0, tcell.ModAlt, game.Flag},
		{"ctrl enter", tcell.KeyEnter, 0, tcell.ModCtrl, game.Flag},
		{"a", tcell.KeyRune, 'a', tcell.ModNone, game.Reveal},
		{"S", tcell.KeyRune, 'S', tcell.ModShift, game.Flag},
		{"p", tcell.KeyRune, 'p', tcell.ModNone, game.Pause},
		{"q", tcell.KeyRune, 'q', tcell.ModNone, game.Cancel},
		{"r", tcell.KeyRune, 'r', tcell.ModNone, game.Redraw},
		{"space", tcell.KeyRune, ' ', tcell.ModNone, game.HintMines},
		{"ctrl c", tcell.KeyCtrlC, 0, tcell.ModCtrl, game.Cancel},
		{"alt a", tcell.KeyRune, 'a', tcell.ModAlt, game.None},
		{"unbound rune", tcell.KeyRune, 'z', tcell.ModNone, game.None},
		{"unbound key", tcell.KeyF1, 0, tcell.ModNone, game.None},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ev := tcell.NewEventKey(test.key, test.ch, test.mod)
			assert.Equal(t, test.want, Decode(ev))
		})
	}
}

func TestKeysListEveryFlagBinding(t *testing.T) {
	var flag *Key
	for i, k := range Keys {
		if k.Description == "Flag selected cells" {
			flag = &Keys[i]
		}
	}
	require.NotNil(t, flag)

	for _, mod := range []tcell.ModMask{tcell.ModAlt, tcell.ModCtrl} {
		require.Equal(t, game.Flag, Decode(tcell.NewEventKey(tcell.KeyEnter, 0, mod)))
	}
	assert.Contains(t, flag.Key, "Alt")
	assert.Contains(t, flag.Key, "Ctrl")
	assert.Contains(t, flag.Key, "Enter")
}

func TestDecodePrompt(t *testing.T) {
	assert.Equal(t, PromptNewGame, DecodePrompt(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.Equal(t, PromptQuit, DecodePrompt(tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModShift)))
	assert.Equal(t, PromptInterrupt, DecodePrompt(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.Equal(t, PromptNone, DecodePrompt(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)))
}
