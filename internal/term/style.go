package term

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/vancomm/minesweeper-term/internal/config"
)

type CellFormat struct {
	Char  rune
	Style tcell.Style
}

func newCellFormat(f config.Format) CellFormat {
	char := ' '
	if r, _ := utf8.DecodeRuneInString(f.Char); r != utf8.RuneError {
		char = r
	}
	style := tcell.StyleDefault
	if f.Fg != "" {
		style = style.Foreground(tcell.GetColor(f.Fg))
	}
	if f.Bg != "" {
		style = style.Background(tcell.GetColor(f.Bg))
	}
	return CellFormat{Char: char, Style: style}
}

// Theme holds the parsed cell formats.
type Theme struct {
	Separator          CellFormat
	Unknown            CellFormat
	QuestionMark       CellFormat
	Empty              CellFormat
	Flagged            CellFormat
	IncorrectlyFlagged CellFormat
	Mine               CellFormat
	HitMine            CellFormat
	Numbers            [8]CellFormat

	selectedFg, selectedBg string
}

func NewTheme(f config.Formats) Theme {
	t := Theme{
		Separator:          newCellFormat(f.Separator),
		Unknown:            newCellFormat(f.Unknown),
		QuestionMark:       newCellFormat(f.QuestionMark),
		Empty:              newCellFormat(f.Empty),
		Flagged:            newCellFormat(f.Flagged),
		IncorrectlyFlagged: newCellFormat(f.IncorrectlyFlagged),
		Mine:               newCellFormat(f.Mine),
		HitMine:            newCellFormat(f.HitMine),
		selectedFg:         f.Selected.Fg,
		selectedBg:         f.Selected.Bg,
	}
	for i := range t.Numbers {
		if i < len(f.Numbers) {
			t.Numbers[i] = newCellFormat(f.Numbers[i])
		}
	}
	return t
}

// Selected recolors s with the selection colors that are configured.
func (t Theme) Selected(s tcell.Style) tcell.Style {
	if t.selectedFg != "" {
		s = s.Foreground(tcell.GetColor(t.selectedFg))
	}
	if t.selectedBg != "" {
		s = s.Background(tcell.GetColor(t.selectedBg))
	}
	return s
}

var (
	hintBackground = tcell.ColorDarkGray
	wonStyle       = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	lostStyle      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle      = tcell.StyleDefault
	emphasisStyle  = tcell.StyleDefault.Bold(true)
)
