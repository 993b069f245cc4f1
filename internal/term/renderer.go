package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/vancomm/minesweeper-term/internal/game"
	"github.com/vancomm/minesweeper-term/internal/mines"
)

type Options struct {
	ShowSeparator bool
	ShowMineCount bool
}

/*
Renderer draws rounds on a tcell screen. The optional mine counter takes
the first line, the field follows, and the end-of-round summary goes below
the field. With separators every cell is preceded by a separator column.
*/
type Renderer struct {
	screen tcell.Screen
	theme  Theme
	opts   Options
}

func NewRenderer(screen tcell.Screen, theme Theme, opts Options) *Renderer {
	return &Renderer{screen: screen, theme: theme, opts: opts}
}

func (r *Renderer) fieldTop() int {
	if r.opts.ShowMineCount {
		return 1
	}
	return 0
}

func (r *Renderer) cellX(column int) int {
	if r.opts.ShowSeparator {
		return 2*column + 1
	}
	return column
}

// FieldWidth is the number of screen columns a field of the given width
// takes.
func (r *Renderer) FieldWidth(width int) int {
	if r.opts.ShowSeparator {
		return 2*width + 1
	}
	return width
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) int {
	for _, c := range text {
		r.screen.SetContent(x, y, c, nil, style)
		x++
	}
	return x
}

func (r *Renderer) clearLine(y, width int) {
	for x := range width {
		r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

// Draw implements [game.View]
func (r *Renderer) Draw(fr game.Frame) {
	r.screen.Clear()

	f := fr.Field
	if fr.Mode == game.HideAll {
		const paused = "PAUSED"
		x := max(0, (r.FieldWidth(f.Width())-len(paused))/2)
		r.drawText(x, r.fieldTop()+f.Height()/2, emphasisStyle, paused)
		r.screen.Show()
		return
	}

	r.drawMineCount(f)
	sep := r.theme.Separator
	for i := range f.Height() {
		for j := range f.Width() {
			if r.opts.ShowSeparator {
				r.screen.SetContent(2*j, r.fieldTop()+i, sep.Char, nil, sep.Style)
			}
			r.drawCell(fr, mines.Pos{Row: i, Column: j})
		}
		if r.opts.ShowSeparator {
			r.screen.SetContent(2*f.Width(), r.fieldTop()+i, sep.Char, nil, sep.Style)
		}
	}
	r.screen.Show()
}

// DrawCells implements [game.View]
func (r *Renderer) DrawCells(fr game.Frame, cells []mines.Pos) {
	if fr.Mode != game.HideAll {
		r.drawMineCount(fr.Field)
	}
	for _, p := range cells {
		r.drawCell(fr, p)
	}
	r.screen.Show()
}

func (r *Renderer) drawMineCount(f *mines.Field) {
	if !r.opts.ShowMineCount {
		return
	}
	w, _ := r.screen.Size()
	r.clearLine(0, max(w, r.FieldWidth(f.Width())))
	r.drawText(0, 0, textStyle, fmt.Sprintf("Mines: %d", f.RemainingMines()))
}

func (r *Renderer) format(fr game.Frame, cell *mines.Cell) CellFormat {
	state := cell.State()
	switch {
	case state.IsUnknown():
		if fr.Mode == game.ShowMines {
			if !cell.ContainsMine() {
				return r.theme.Empty
			}
			if hit, ok := fr.Field.HitCell(); ok && hit == cell.Pos {
				return r.theme.HitMine
			}
			return r.theme.Mine
		}
		if state.IsQuestionMark() {
			return r.theme.QuestionMark
		}
		return r.theme.Unknown
	case state.IsFlagged():
		if fr.Mode == game.ShowMines && !cell.ContainsMine() {
			return r.theme.IncorrectlyFlagged
		}
		return r.theme.Flagged
	case state.IsEmpty():
		return r.theme.Empty
	default:
		return r.theme.Numbers[state.NearMineCount()-1]
	}
}

func (r *Renderer) drawCell(fr game.Frame, p mines.Pos) {
	x, y := r.cellX(p.Column), r.fieldTop()+p.Row

	if fr.Mode == game.HideAll {
		r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		return
	}

	cell := fr.Field.Cell(p)
	cf := r.format(fr, cell)
	style := cf.Style
	if fr.Mode == game.HintMines && cell.ContainsMine() && (cell.IsUnknown() || cell.IsFlagged()) {
		style = style.Background(hintBackground)
	}
	if fr.Selection != nil && fr.Selection.Contains(p) {
		style = r.theme.Selected(style)
	}
	r.screen.SetContent(x, y, cf.Char, nil, style)
}

// DrawSummary writes the outcome of the round under the field, followed by
// extra lines and the new game prompt. When the field reaches the bottom of
// the screen the summary is lifted so that the prompt stays visible.
func (r *Renderer) DrawSummary(f *mines.Field, s game.Summary, extra []string) {
	type summaryLine struct {
		style tcell.Style
		text  string
	}
	var lines []summaryLine

	switch s.Result {
	case game.Won:
		lines = append(lines, summaryLine{wonStyle, "Congratulations, you won!"})
	case game.Lost:
		lines = append(lines, summaryLine{lostStyle, "You hit a mine!"})
	default:
		lines = append(lines, summaryLine{textStyle, "Game canceled."})
	}
	if s.Result != game.Canceled {
		lines = append(lines, summaryLine{textStyle, "Elapsed time: " + s.ElapsedSeconds() + " s"})
	}
	for _, line := range extra {
		lines = append(lines, summaryLine{textStyle, line})
	}
	lines = append(lines, summaryLine{textStyle, "Press Enter to start a new game, Q to quit"})

	w, h := r.screen.Size()
	y := max(0, min(r.fieldTop()+f.Height(), h-len(lines)))
	for _, line := range lines {
		r.clearLine(y, max(w, r.FieldWidth(f.Width())))
		r.drawText(0, y, line.style, line.text)
		y++
	}
	r.screen.Show()
}
